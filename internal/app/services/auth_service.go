package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/qasyoun/qasyounextra/internal/app/models"
	"github.com/qasyoun/qasyounextra/internal/app/models/dto"
	"github.com/qasyoun/qasyounextra/internal/app/repositories"
	"github.com/qasyoun/qasyounextra/internal/pkg/apperrors"
	"github.com/qasyoun/qasyounextra/internal/pkg/auth"
	"github.com/qasyoun/qasyounextra/internal/pkg/dberrors"
	"github.com/qasyoun/qasyounextra/internal/pkg/validation"
)

// AuthService handles registration, login and the current user
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetCurrentUser(ctx context.Context, userID int64) (*models.User, error)
}

type authServiceImpl struct {
	users        repositories.UserRepository
	universities repositories.UniversityRepository
	jwtService   *auth.JWTService
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	users repositories.UserRepository,
	universities repositories.UniversityRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		users:        users,
		universities: universities,
		jwtService:   jwtService,
		logger:       logger,
	}
}

// Register creates an account. Email and username must be unused; the
// application check runs first and the store's own constraint covers races.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)

	if err := validation.Registration(req.Username, req.Email, req.Password, req.FullName); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidationFailed, err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}
	if role != models.RoleStudent && role != models.RoleTeacher {
		return nil, fmt.Errorf("%w: role must be student or teacher", apperrors.ErrValidationFailed)
	}

	if err := checkUniversity(ctx, s.universities, req.UniversityID); err != nil {
		return nil, err
	}

	existing, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	existing, err = s.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUsernameAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, models.UserInput{
		Username:       req.Username,
		Email:          req.Email,
		Password:       hash,
		Role:           role,
		FullName:       req.FullName,
		ProfilePicture: req.ProfilePicture,
		Bio:            req.Bio,
		Experience:     req.Experience,
		UniversityID:   req.UniversityID,
		Faculty:        req.Faculty,
		AcademicYear:   req.AcademicYear,
		StudentID:      req.StudentID,
	})
	switch {
	case dberrors.IsUniqueViolation(err, repositories.ConstraintEmail):
		return nil, apperrors.ErrEmailAlreadyExists
	case dberrors.IsUniqueViolation(err, repositories.ConstraintUsername):
		return nil, apperrors.ErrUsernameAlreadyExists
	case dberrors.IsForeignKeyViolation(err):
		return nil, apperrors.ErrUniversityNotFound
	case err != nil:
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")
	return user, nil
}

// Login authenticates by email and password and issues an access token
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	if user == nil || !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   int64(expiresIn),
		},
		User: user,
	}, nil
}

// GetCurrentUser returns the authenticated user's record
func (s *authServiceImpl) GetCurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}
