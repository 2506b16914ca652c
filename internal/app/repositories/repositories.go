// Package repositories defines the storage contract shared by every backend.
//
// A lookup that finds nothing returns a nil record and a nil error. Errors are
// reserved for failures of the backing medium and are returned unchanged.
package repositories

import (
	"context"
	"errors"

	"github.com/qasyoun/qasyounextra/internal/app/models"
)

// Backend tags the concrete implementation behind a Storage.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendPostgres Backend = "postgres"
)

// Capabilities describes the integrity guarantees a backend provides.
type Capabilities struct {
	Backend Backend
	// EnforcesUniqueness is true when duplicate usernames, emails and
	// (student, course) enrollments are rejected on create.
	EnforcesUniqueness bool
	// EnforcesReferences is true when foreign keys are checked on write.
	EnforcesReferences bool
}

// ErrUniqueViolation is matched by errors.Is for uniqueness failures raised by
// backends that check uniqueness in process.
var ErrUniqueViolation = errors.New("unique constraint violated")

// UniversityRepository covers the universities table.
type UniversityRepository interface {
	GetUniversity(ctx context.Context, id int64) (*models.University, error)
	GetUniversities(ctx context.Context) ([]*models.University, error)
	CreateUniversity(ctx context.Context, in models.UniversityInput) (*models.University, error)
}

// UserRepository covers the users table.
type UserRepository interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetTeachers(ctx context.Context) ([]*models.User, error)
	CreateUser(ctx context.Context, in models.UserInput) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error)
}

// CategoryRepository covers the categories table.
type CategoryRepository interface {
	GetCategories(ctx context.Context) ([]*models.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*models.Category, error)
	CreateCategory(ctx context.Context, in models.CategoryInput) (*models.Category, error)
}

// CourseRepository covers the courses table.
type CourseRepository interface {
	GetCourses(ctx context.Context) ([]*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetCoursesByCategory(ctx context.Context, categoryID int64) ([]*models.Course, error)
	GetCoursesByTeacher(ctx context.Context, teacherID int64) ([]*models.Course, error)
	GetCoursesByUniversity(ctx context.Context, universityID int64) ([]*models.Course, error)
	CreateCourse(ctx context.Context, in models.CourseInput) (*models.Course, error)
}

// MaterialRepository covers the materials table.
type MaterialRepository interface {
	GetMaterialsByCourse(ctx context.Context, courseID int64) ([]*models.Material, error)
	CreateMaterial(ctx context.Context, in models.MaterialInput) (*models.Material, error)
}

// EnrollmentRepository covers the enrollments table.
type EnrollmentRepository interface {
	GetEnrollmentsByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	GetEnrollmentsByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error)
	CreateEnrollment(ctx context.Context, in models.EnrollmentInput) (*models.Enrollment, error)
}

// ReviewRepository covers the reviews table.
type ReviewRepository interface {
	GetReviewsByCourse(ctx context.Context, courseID int64) ([]*models.Review, error)
	CreateReview(ctx context.Context, in models.ReviewInput) (*models.Review, error)
}

// MessageRepository covers the messages table.
type MessageRepository interface {
	// GetMessagesByUser returns every message the user sent, followed by every
	// message the user received, each half in storage order.
	GetMessagesByUser(ctx context.Context, userID int64) ([]*models.Message, error)
	CreateMessage(ctx context.Context, in models.MessageInput) (*models.Message, error)
	// MarkMessageAsRead sets is_read. An unknown id is a no-op.
	MarkMessageAsRead(ctx context.Context, messageID int64) error
}

// Storage is the single seam between the API layer and persistence.
type Storage interface {
	UniversityRepository
	UserRepository
	CategoryRepository
	CourseRepository
	MaterialRepository
	EnrollmentRepository
	ReviewRepository
	MessageRepository

	Capabilities() Capabilities
	Close()
}

// Constraint names shared by the SQL schema and the in-process checks.
const (
	ConstraintUsername          = "users_username_key"
	ConstraintEmail             = "users_email_key"
	ConstraintEnrollmentStudent = "enrollments_student_course_key"
)

// UniqueViolationError reports a rejected duplicate for the named constraint.
type UniqueViolationError struct {
	Constraint string
}

func (e *UniqueViolationError) Error() string {
	return "duplicate key value violates unique constraint \"" + e.Constraint + "\""
}

func (e *UniqueViolationError) Unwrap() error { return ErrUniqueViolation }
