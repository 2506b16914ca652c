package models

import "time"

// Enrollment defines the model based on the 'enrollments' table.
// Progress shown in dashboards is computed by clients and not stored.
type Enrollment struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	CourseID    int64     `json:"courseId" db:"course_id"`
	EnrolledAt  time.Time `json:"enrolledAt" db:"enrolled_at"`
	IsCompleted bool      `json:"isCompleted" db:"is_completed"`
}

// EnrollmentInput holds the caller-supplied fields of a new enrollment.
type EnrollmentInput struct {
	StudentID   int64
	CourseID    int64
	IsCompleted *bool
}

// NewEnrollmentRecord builds the stored enrollment row. IsCompleted defaults to false.
func NewEnrollmentRecord(id int64, in EnrollmentInput, now time.Time) *Enrollment {
	return &Enrollment{
		ID:          id,
		StudentID:   in.StudentID,
		CourseID:    in.CourseID,
		EnrolledAt:  now,
		IsCompleted: flag(in.IsCompleted),
	}
}

func (e *Enrollment) Clone() *Enrollment {
	c := *e
	return &c
}
