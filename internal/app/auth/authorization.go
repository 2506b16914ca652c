package auth

import (
	"context"
	"fmt"

	"github.com/qasyoun/qasyounextra/internal/app/models"
	"github.com/qasyoun/qasyounextra/internal/app/repositories"
	"github.com/qasyoun/qasyounextra/internal/pkg/apperrors"
)

// AuthorizationService answers ownership questions from the stored records,
// not from token claims.
type AuthorizationService struct {
	users   repositories.UserRepository
	courses repositories.CourseRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(users repositories.UserRepository, courses repositories.CourseRepository) *AuthorizationService {
	return &AuthorizationService{
		users:   users,
		courses: courses,
	}
}

func (s *AuthorizationService) user(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// IsTeacher checks if the user is a teacher
func (s *AuthorizationService) IsTeacher(ctx context.Context, userID int64) (bool, error) {
	user, err := s.user(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.IsTeacher(), nil
}

// ValidateTeacher returns a forbidden error unless the user is a teacher
func (s *AuthorizationService) ValidateTeacher(ctx context.Context, userID int64) error {
	isTeacher, err := s.IsTeacher(ctx, userID)
	if err != nil {
		return err
	}
	if !isTeacher {
		return apperrors.NewForbiddenError("only teachers can perform this action")
	}
	return nil
}

// CanModifyCourse reports whether the user owns the course or is an admin
func (s *AuthorizationService) CanModifyCourse(ctx context.Context, courseID, userID int64) (bool, error) {
	user, err := s.user(ctx, userID)
	if err != nil {
		return false, err
	}
	if user.Role == models.RoleAdmin {
		return true, nil
	}

	course, err := s.courses.GetCourseByID(ctx, courseID)
	if err != nil {
		return false, fmt.Errorf("error getting course: %w", err)
	}
	if course == nil {
		return false, apperrors.ErrCourseNotFound
	}
	return course.TeacherID != nil && *course.TeacherID == userID, nil
}

// ValidateCourseOwner returns a forbidden error unless CanModifyCourse holds
func (s *AuthorizationService) ValidateCourseOwner(ctx context.Context, courseID, userID int64) error {
	ok, err := s.CanModifyCourse(ctx, courseID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewForbiddenError("only the course teacher can modify this course")
	}
	return nil
}
