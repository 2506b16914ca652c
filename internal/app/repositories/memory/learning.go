package memory

import (
	"context"

	"github.com/qasyoun/qasyounextra/internal/app/models"
	"github.com/qasyoun/qasyounextra/internal/app/repositories"
)

func (r *Repository) GetEnrollmentsByStudent(_ context.Context, studentID int64) ([]*models.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.enrollments.filter(func(e *models.Enrollment) bool { return e.StudentID == studentID }), nil
}

func (r *Repository) GetEnrollmentsByCourse(_ context.Context, courseID int64) ([]*models.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.enrollments.filter(func(e *models.Enrollment) bool { return e.CourseID == courseID }), nil
}

// CreateEnrollment stores a new enrollment. Without WithUniqueness a second
// enrollment for the same student and course is accepted.
func (r *Repository) CreateEnrollment(_ context.Context, in models.EnrollmentInput) (*models.Enrollment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.enforceUniqueness {
		dup := r.enrollments.find(func(e *models.Enrollment) bool {
			return e.StudentID == in.StudentID && e.CourseID == in.CourseID
		})
		if dup != nil {
			return nil, &repositories.UniqueViolationError{Constraint: repositories.ConstraintEnrollmentStudent}
		}
	}

	e := models.NewEnrollmentRecord(r.enrollments.nextID(), in, r.now())
	return r.enrollments.insert(e.ID, e), nil
}

func (r *Repository) GetReviewsByCourse(_ context.Context, courseID int64) ([]*models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.reviews.filter(func(rv *models.Review) bool { return rv.CourseID == courseID }), nil
}

// CreateReview stores a new review. The rating range is the caller's concern.
func (r *Repository) CreateReview(_ context.Context, in models.ReviewInput) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rv := models.NewReviewRecord(r.reviews.nextID(), in, r.now())
	return r.reviews.insert(rv.ID, rv), nil
}
