package services

import (
	"context"
	"fmt"

	"github.com/qasyoun/qasyounextra/internal/app/models"
	"github.com/qasyoun/qasyounextra/internal/app/models/dto"
	"github.com/qasyoun/qasyounextra/internal/app/repositories"
	"github.com/qasyoun/qasyounextra/internal/pkg/apperrors"
	"github.com/qasyoun/qasyounextra/internal/pkg/dberrors"
	"github.com/qasyoun/qasyounextra/internal/pkg/validation"
)

// LearningService covers enrollments and reviews
type LearningService interface {
	Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error)
	GetEnrollments(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	GetReviews(ctx context.Context, courseID int64) ([]*models.Review, error)
	CreateReview(ctx context.Context, studentID, courseID int64, req *dto.CreateReviewRequest) (*models.Review, error)
}

type learningServiceImpl struct {
	courses     repositories.CourseRepository
	enrollments repositories.EnrollmentRepository
	reviews     repositories.ReviewRepository
}

// NewLearningService creates a new LearningService
func NewLearningService(
	courses repositories.CourseRepository,
	enrollments repositories.EnrollmentRepository,
	reviews repositories.ReviewRepository,
) LearningService {
	return &learningServiceImpl{
		courses:     courses,
		enrollments: enrollments,
		reviews:     reviews,
	}
}

// Enroll enrolls a student once per course. The application check covers
// backends that accept duplicates; the store constraint covers races.
func (s *learningServiceImpl) Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	if _, err := requireCourse(ctx, s.courses, courseID); err != nil {
		return nil, err
	}

	enrolled, err := s.isEnrolled(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if enrolled {
		return nil, apperrors.ErrAlreadyEnrolled
	}

	e, err := s.enrollments.CreateEnrollment(ctx, models.EnrollmentInput{StudentID: studentID, CourseID: courseID})
	if dberrors.IsUniqueViolation(err, repositories.ConstraintEnrollmentStudent) {
		return nil, apperrors.ErrAlreadyEnrolled
	}
	if err != nil {
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}
	return e, nil
}

func (s *learningServiceImpl) GetEnrollments(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	list, err := s.enrollments.GetEnrollmentsByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error getting enrollments: %w", err)
	}
	return list, nil
}

func (s *learningServiceImpl) GetReviews(ctx context.Context, courseID int64) ([]*models.Review, error) {
	list, err := s.reviews.GetReviewsByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error getting reviews: %w", err)
	}
	return list, nil
}

// CreateReview stores a 1-5 rating from an enrolled student
func (s *learningServiceImpl) CreateReview(ctx context.Context, studentID, courseID int64, req *dto.CreateReviewRequest) (*models.Review, error) {
	if !validation.NewNumericValidation(req.Rating).Between(models.MinRating, models.MaxRating).Validate() {
		return nil, apperrors.ErrInvalidRating
	}
	if _, err := requireCourse(ctx, s.courses, courseID); err != nil {
		return nil, err
	}

	enrolled, err := s.isEnrolled(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, apperrors.ErrNotEnrolled
	}

	r, err := s.reviews.CreateReview(ctx, models.ReviewInput{
		CourseID:  courseID,
		StudentID: studentID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating review: %w", err)
	}
	return r, nil
}

func (s *learningServiceImpl) isEnrolled(ctx context.Context, studentID, courseID int64) (bool, error) {
	list, err := s.enrollments.GetEnrollmentsByStudent(ctx, studentID)
	if err != nil {
		return false, fmt.Errorf("error getting enrollments: %w", err)
	}
	for _, e := range list {
		if e.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}
