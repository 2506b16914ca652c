package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/qasyoun/qasyounextra/internal/app/models"
)

var enrollmentColumns = []string{
	"id", "student_id", "course_id", "enrolled_at", "COALESCE(is_completed, FALSE) AS is_completed",
}

func scanEnrollment(row scanner) (*models.Enrollment, error) {
	var e models.Enrollment
	if err := row.Scan(&e.ID, &e.StudentID, &e.CourseID, &e.EnrolledAt, &e.IsCompleted); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) GetEnrollmentsByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	q := r.sb.Select(enrollmentColumns...).From("enrollments").Where(squirrel.Eq{"student_id": studentID}).OrderBy("id ASC")
	return getMany(ctx, r, q, scanEnrollment)
}

func (r *Repository) GetEnrollmentsByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	q := r.sb.Select(enrollmentColumns...).From("enrollments").Where(squirrel.Eq{"course_id": courseID}).OrderBy("id ASC")
	return getMany(ctx, r, q, scanEnrollment)
}

// CreateEnrollment inserts an enrollment. A second row for the same student
// and course fails on enrollments_student_course_key.
func (r *Repository) CreateEnrollment(ctx context.Context, in models.EnrollmentInput) (*models.Enrollment, error) {
	e := models.NewEnrollmentRecord(0, in, timeZero)
	q := r.sb.Insert("enrollments").
		Columns("student_id", "course_id", "is_completed").
		Values(e.StudentID, e.CourseID, e.IsCompleted).
		Suffix("RETURNING " + joinColumns(enrollmentColumns))
	return insertOne(ctx, r, q, scanEnrollment)
}

var reviewColumns = []string{"id", "course_id", "student_id", "rating", "comment", "created_at"}

func scanReview(row scanner) (*models.Review, error) {
	var rv models.Review
	if err := row.Scan(&rv.ID, &rv.CourseID, &rv.StudentID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *Repository) GetReviewsByCourse(ctx context.Context, courseID int64) ([]*models.Review, error) {
	q := r.sb.Select(reviewColumns...).From("reviews").Where(squirrel.Eq{"course_id": courseID}).OrderBy("id ASC")
	return getMany(ctx, r, q, scanReview)
}

func (r *Repository) CreateReview(ctx context.Context, in models.ReviewInput) (*models.Review, error) {
	rv := models.NewReviewRecord(0, in, timeZero)
	q := r.sb.Insert("reviews").
		Columns("course_id", "student_id", "rating", "comment").
		Values(rv.CourseID, rv.StudentID, rv.Rating, rv.Comment).
		Suffix("RETURNING " + joinColumns(reviewColumns))
	return insertOne(ctx, r, q, scanReview)
}
