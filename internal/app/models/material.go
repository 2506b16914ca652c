package models

import "time"

// Material types seen in practice; the column is free text.
const (
	MaterialTypeVideo = "video"
	MaterialTypePDF   = "pdf"
	MaterialTypeQuiz  = "quiz"
)

// Material defines the model based on the 'materials' table
type Material struct {
	ID        int64     `json:"id" db:"id"`
	CourseID  int64     `json:"courseId" db:"course_id"`
	Title     string    `json:"title" db:"title"`
	Type      string    `json:"type" db:"type"`
	URL       string    `json:"url" db:"url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// MaterialInput holds the caller-supplied fields of a new material.
type MaterialInput struct {
	CourseID int64
	Title    string
	Type     string
	URL      string
}

// NewMaterialRecord builds the stored material row.
func NewMaterialRecord(id int64, in MaterialInput, now time.Time) *Material {
	return &Material{
		ID:        id,
		CourseID:  in.CourseID,
		Title:     in.Title,
		Type:      in.Type,
		URL:       in.URL,
		CreatedAt: now,
	}
}

// Clone returns a copy of m. Materials hold no pointer fields.
func (m *Material) Clone() *Material {
	c := *m
	return &c
}
