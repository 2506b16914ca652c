package seed

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/qasyoun/qasyounextra/internal/app/models"
	"github.com/qasyoun/qasyounextra/internal/app/repositories"
	"github.com/qasyoun/qasyounextra/internal/pkg/auth"
)

// Sample account credentials. Both use SamplePassword.
const (
	SampleTeacherUsername = "teacher_sara"
	SampleTeacherEmail    = "sara@qasyounextra.com"
	SampleStudentUsername = "student_omar"
	SampleStudentEmail    = "omar@qasyounextra.com"
	SamplePassword        = "password123"
)

// Seeder fills a Storage with a small connected data set. Run does the work
// at most once per Seeder.
type Seeder struct {
	store repositories.Storage
	lgr   zerolog.Logger

	once sync.Once
	err  error
}

// NewSeeder creates a seeder for store.
func NewSeeder(store repositories.Storage, lgr zerolog.Logger) *Seeder {
	return &Seeder{store: store, lgr: lgr}
}

// Run seeds the sample data on its first call and returns that call's result
// on every later call.
func (s *Seeder) Run(ctx context.Context) error {
	s.once.Do(func() {
		s.lgr.Info().Msg("Seeding sample data...")
		s.err = s.seed(ctx)
		if s.err != nil {
			s.lgr.Error().Err(s.err).Msg("Sample data seeding failed")
			return
		}
		s.lgr.Info().Msg("Sample data seeded")
	})
	return s.err
}

func (s *Seeder) seed(ctx context.Context) error {
	hash, err := auth.HashPassword(SamplePassword)
	if err != nil {
		return fmt.Errorf("hash sample password: %w", err)
	}

	uni, err := s.store.CreateUniversity(ctx, models.UniversityInput{
		Name:     "Damascus University",
		Location: "Damascus",
		Website:  strPtr("https://damascusuniversity.edu.sy"),
	})
	if err != nil {
		return fmt.Errorf("seed university: %w", err)
	}

	science := models.FacultyScience
	teacher, err := s.store.CreateUser(ctx, models.UserInput{
		Username:     SampleTeacherUsername,
		Email:        SampleTeacherEmail,
		Password:     hash,
		Role:         models.RoleTeacher,
		FullName:     "Sara Haddad",
		Bio:          strPtr("Mathematics teacher with ten years of experience."),
		Experience:   strPtr("10 years"),
		UniversityID: &uni.ID,
		Faculty:      &science,
	})
	if err != nil {
		return fmt.Errorf("seed teacher: %w", err)
	}

	firstYear := models.AcademicYearFirst
	student, err := s.store.CreateUser(ctx, models.UserInput{
		Username:     SampleStudentUsername,
		Email:        SampleStudentEmail,
		Password:     hash,
		Role:         models.RoleStudent,
		FullName:     "Omar Khaled",
		UniversityID: &uni.ID,
		Faculty:      &science,
		AcademicYear: &firstYear,
		StudentID:    strPtr("20240001"),
	})
	if err != nil {
		return fmt.Errorf("seed student: %w", err)
	}

	programming, err := s.store.CreateCategory(ctx, models.CategoryInput{
		Name:        "Programming",
		Description: strPtr("Software development courses"),
		Icon:        "code",
		Color:       "#2196F3",
	})
	if err != nil {
		return fmt.Errorf("seed category: %w", err)
	}
	chemistry, err := s.store.CreateCategory(ctx, models.CategoryInput{
		Name:  "Chemistry",
		Icon:  "beaker",
		Color: "#009688",
	})
	if err != nil {
		return fmt.Errorf("seed category: %w", err)
	}

	official := true
	calculus, err := s.store.CreateCourse(ctx, models.CourseInput{
		Title:        "Calculus I",
		Description:  "Limits, derivatives and integrals.",
		Price:        15000,
		CategoryID:   &programming.ID,
		TeacherID:    &teacher.ID,
		UniversityID: &uni.ID,
		Faculty:      &science,
		AcademicYear: &firstYear,
		IsOfficial:   &official,
		CourseCode:   strPtr("MATH101"),
		Level:        "beginner",
	})
	if err != nil {
		return fmt.Errorf("seed course: %w", err)
	}
	organic, err := s.store.CreateCourse(ctx, models.CourseInput{
		Title:       "Organic Chemistry Basics",
		Description: "Structure and reactions of carbon compounds.",
		Price:       0,
		CategoryID:  &chemistry.ID,
		TeacherID:   &teacher.ID,
		Level:       "intermediate",
	})
	if err != nil {
		return fmt.Errorf("seed course: %w", err)
	}

	materials := []models.MaterialInput{
		{CourseID: calculus.ID, Title: "Introduction to limits", Type: models.MaterialTypeVideo, URL: "https://videos.qasyounextra.com/calc1/limits.mp4"},
		{CourseID: organic.ID, Title: "Functional groups cheat sheet", Type: models.MaterialTypePDF, URL: "https://files.qasyounextra.com/chem/groups.pdf"},
	}
	for _, m := range materials {
		if _, err := s.store.CreateMaterial(ctx, m); err != nil {
			return fmt.Errorf("seed material: %w", err)
		}
	}

	if _, err := s.store.CreateEnrollment(ctx, models.EnrollmentInput{StudentID: student.ID, CourseID: calculus.ID}); err != nil {
		return fmt.Errorf("seed enrollment: %w", err)
	}

	if _, err := s.store.CreateReview(ctx, models.ReviewInput{
		CourseID:  calculus.ID,
		StudentID: student.ID,
		Rating:    5,
		Comment:   strPtr("Clear explanations and good exercises."),
	}); err != nil {
		return fmt.Errorf("seed review: %w", err)
	}

	messages := []models.MessageInput{
		{SenderID: student.ID, ReceiverID: teacher.ID, Content: "Hello, is there homework for chapter two?"},
		{SenderID: teacher.ID, ReceiverID: student.ID, Content: "Yes, exercises 1 to 10."},
	}
	for _, m := range messages {
		if _, err := s.store.CreateMessage(ctx, m); err != nil {
			return fmt.Errorf("seed message: %w", err)
		}
	}

	return nil
}

func strPtr(s string) *string { return &s }
