package dto

import "github.com/qasyoun/qasyounextra/internal/app/models"

// CourseResponse is a course with its category and teacher resolved
type CourseResponse struct {
	*models.Course
	Category *models.Category `json:"category"`
	Teacher  *models.User     `json:"teacher"`
}

// CreateMaterialRequest represents a new course material
type CreateMaterialRequest struct {
	Title string `json:"title" binding:"required"`
	Type  string `json:"type" binding:"required" example:"video"`
	URL   string `json:"url" binding:"required,url"`
}

// CreateReviewRequest represents a course review
type CreateReviewRequest struct {
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment *string `json:"comment"`
}

// SendMessageRequest represents a direct message
type SendMessageRequest struct {
	ReceiverID int64  `json:"receiverId" binding:"required,min=1"`
	Content    string `json:"content" binding:"required"`
}
