package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/qasyoun/qasyounextra/internal/app/models"
	"github.com/qasyoun/qasyounextra/internal/app/models/dto"
	"github.com/qasyoun/qasyounextra/internal/app/repositories"
	"github.com/qasyoun/qasyounextra/internal/pkg/apperrors"
	"github.com/qasyoun/qasyounextra/internal/pkg/auth"
	"github.com/qasyoun/qasyounextra/internal/pkg/dberrors"
	"github.com/qasyoun/qasyounextra/internal/pkg/validation"
)

// UserService covers profiles and the public teacher directory
type UserService interface {
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error)
	GetTeachers(ctx context.Context) ([]*models.User, error)
	GetTeacher(ctx context.Context, teacherID int64) (*models.User, error)
	GetTeacherCourses(ctx context.Context, teacherID int64) ([]*models.Course, error)
}

type userServiceImpl struct {
	users        repositories.UserRepository
	universities repositories.UniversityRepository
	courses      repositories.CourseRepository
}

// NewUserService creates a new UserService
func NewUserService(
	users repositories.UserRepository,
	universities repositories.UniversityRepository,
	courses repositories.CourseRepository,
) UserService {
	return &userServiceImpl{
		users:        users,
		universities: universities,
		courses:      courses,
	}
}

// UpdateProfile replaces the caller's profile. Username and role are kept.
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error) {
	if err := validateID("user ID", userID); err != nil {
		return nil, err
	}

	current, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	if current == nil {
		return nil, apperrors.ErrUserNotFound
	}

	email := strings.TrimSpace(req.Email)
	if !validation.NewStringValidation(email).WithPattern(validation.CompiledPatterns.Email).Validate() {
		return nil, apperrors.ErrInvalidEmail
	}
	if err := checkUniversity(ctx, s.universities, req.UniversityID); err != nil {
		return nil, err
	}

	if email != current.Email {
		other, err := s.users.GetUserByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("error checking email: %w", err)
		}
		if other != nil && other.ID != userID {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}

	upd := models.UpdateFromUser(current)
	upd.Email = email
	upd.FullName = req.FullName
	upd.ProfilePicture = req.ProfilePicture
	upd.Bio = req.Bio
	upd.Experience = req.Experience
	upd.UniversityID = req.UniversityID
	upd.Faculty = req.Faculty
	upd.AcademicYear = req.AcademicYear
	upd.StudentID = req.StudentID

	if req.Password != "" {
		if !validation.NewStringValidation(req.Password).WithMinLength(validation.PasswordMinLength).Validate() {
			return nil, apperrors.ErrInvalidPassword
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		upd.Password = hash
	}

	updated, err := s.users.UpdateUser(ctx, userID, upd)
	if dberrors.IsUniqueViolation(err, repositories.ConstraintEmail) {
		return nil, apperrors.ErrEmailAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	if updated == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return updated, nil
}

func (s *userServiceImpl) GetTeachers(ctx context.Context) ([]*models.User, error) {
	teachers, err := s.users.GetTeachers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting teachers: %w", err)
	}
	return teachers, nil
}

// GetTeacher returns the user only when they hold the teacher role
func (s *userServiceImpl) GetTeacher(ctx context.Context, teacherID int64) (*models.User, error) {
	if err := validateID("teacher ID", teacherID); err != nil {
		return nil, err
	}
	user, err := s.users.GetUser(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("error getting teacher: %w", err)
	}
	if user == nil || !user.IsTeacher() {
		return nil, apperrors.ErrTeacherNotFound
	}
	return user, nil
}

func (s *userServiceImpl) GetTeacherCourses(ctx context.Context, teacherID int64) ([]*models.Course, error) {
	if _, err := s.GetTeacher(ctx, teacherID); err != nil {
		return nil, err
	}
	courses, err := s.courses.GetCoursesByTeacher(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("error getting teacher courses: %w", err)
	}
	return courses, nil
}
