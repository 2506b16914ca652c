package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qasyoun/qasyounextra/internal/app/models"
	"github.com/qasyoun/qasyounextra/internal/app/models/dto"
	"github.com/qasyoun/qasyounextra/internal/middleware"
	"github.com/qasyoun/qasyounextra/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubLearning struct {
	enrolled []int64
	err      error
}

func (s *stubLearning) Enroll(_ context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.enrolled = append(s.enrolled, courseID)
	return &models.Enrollment{ID: 1, StudentID: studentID, CourseID: courseID}, nil
}

func (s *stubLearning) GetEnrollments(context.Context, int64) ([]*models.Enrollment, error) {
	return []*models.Enrollment{}, nil
}

func (s *stubLearning) GetReviews(context.Context, int64) ([]*models.Review, error) {
	return []*models.Review{}, nil
}

func (s *stubLearning) CreateReview(context.Context, int64, int64, *dto.CreateReviewRequest) (*models.Review, error) {
	return nil, s.err
}

// asUser authenticates every request as id
func asUser(id int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, id)
		c.Set(middleware.ContextRole, models.RoleStudent)
		c.Next()
	}
}

func serve(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestEnrollUsesCallerAndPath(t *testing.T) {
	svc := &stubLearning{}
	r := gin.New()
	r.POST("/courses/:id/enroll", asUser(5), NewLearningController(svc).Enroll)

	w := serve(r, http.MethodPost, "/courses/9/enroll")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    models.Enrollment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(5), resp.Data.StudentID)
	assert.Equal(t, []int64{9}, svc.enrolled)
}

func TestInvalidPathID(t *testing.T) {
	svc := &stubLearning{}
	r := gin.New()
	r.POST("/courses/:id/enroll", asUser(5), NewLearningController(svc).Enroll)

	for _, id := range []string{"abc", "0", "-3"} {
		w := serve(r, http.MethodPost, "/courses/"+id+"/enroll")
		assert.Equal(t, http.StatusBadRequest, w.Code, id)
	}
	assert.Empty(t, svc.enrolled)
}

func TestMissingCaller(t *testing.T) {
	r := gin.New()
	r.GET("/enrollments", NewLearningController(&stubLearning{}).GetEnrollments)

	w := serve(r, http.MethodGet, "/enrollments")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestServiceErrorsAreMapped(t *testing.T) {
	r := gin.New()
	r.POST("/courses/:id/enroll", asUser(5), NewLearningController(&stubLearning{err: apperrors.ErrAlreadyEnrolled}).Enroll)

	w := serve(r, http.MethodPost, "/courses/1/enroll")
	assert.Equal(t, http.StatusConflict, w.Code)
}
