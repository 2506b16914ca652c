package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qasyoun/qasyounextra/internal/app/models/dto"
	"github.com/qasyoun/qasyounextra/internal/app/services"
	"github.com/qasyoun/qasyounextra/internal/middleware"
)

// LearningController handles enrollments and reviews
type LearningController struct {
	learningService services.LearningService
}

// NewLearningController creates a new LearningController
func NewLearningController(learningService services.LearningService) *LearningController {
	return &LearningController{learningService: learningService}
}

// Enroll enrolls the calling student in a course
// @Summary Enroll in course
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 201 {object} dto.APIResponse{data=models.Enrollment} "Enrolled"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Already enrolled"
// @Router /courses/{id}/enroll [post]
func (c *LearningController) Enroll(ctx *gin.Context) {
	studentID, ok := callerID(ctx)
	if !ok {
		return
	}
	courseID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	enrollment, err := c.learningService.Enroll(ctx.Request.Context(), studentID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(enrollment))
}

// GetEnrollments lists the caller's enrollments
// @Summary List own enrollments
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Enrollment} "Enrollments"
// @Router /enrollments [get]
func (c *LearningController) GetEnrollments(ctx *gin.Context) {
	studentID, ok := callerID(ctx)
	if !ok {
		return
	}

	enrollments, err := c.learningService.GetEnrollments(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(enrollments))
}

// GetReviews lists a course's reviews
// @Summary List course reviews
// @Tags reviews
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Review} "Reviews, empty for an unknown course"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Router /courses/{id}/reviews [get]
func (c *LearningController) GetReviews(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	reviews, err := c.learningService.GetReviews(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(reviews))
}

// CreateReview reviews a course the caller is enrolled in
// @Summary Review course
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Param request body dto.CreateReviewRequest true "Review"
// @Success 201 {object} dto.APIResponse{data=models.Review} "Review created"
// @Failure 400 {object} dto.ErrorResponse "Rating out of range"
// @Failure 403 {object} dto.ErrorResponse "Not enrolled"
// @Router /courses/{id}/reviews [post]
func (c *LearningController) CreateReview(ctx *gin.Context) {
	studentID, ok := callerID(ctx)
	if !ok {
		return
	}
	courseID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingError(ctx, "Invalid review request", err)
		return
	}

	review, err := c.learningService.CreateReview(ctx.Request.Context(), studentID, courseID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(review))
}
