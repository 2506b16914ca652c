package models

import "time"

// Rating bounds accepted by the API layer. Storage does not check them.
const (
	MinRating = 1
	MaxRating = 5
)

// Review defines the model based on the 'reviews' table
type Review struct {
	ID        int64     `json:"id" db:"id"`
	CourseID  int64     `json:"courseId" db:"course_id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   *string   `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// ReviewInput holds the caller-supplied fields of a new review.
type ReviewInput struct {
	CourseID  int64
	StudentID int64
	Rating    int
	Comment   *string
}

// NewReviewRecord builds the stored review row.
func NewReviewRecord(id int64, in ReviewInput, now time.Time) *Review {
	return &Review{
		ID:        id,
		CourseID:  in.CourseID,
		StudentID: in.StudentID,
		Rating:    in.Rating,
		Comment:   optionalText(in.Comment),
		CreatedAt: now,
	}
}

func (r *Review) Clone() *Review {
	c := *r
	c.Comment = clonePtr(r.Comment)
	return &c
}
