package dto

import "github.com/qasyoun/qasyounextra/internal/app/models"

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Username       string               `json:"username" binding:"required" example:"omar_k"`
	Email          string               `json:"email" binding:"required,email" example:"omar@example.com"`
	Password       string               `json:"password" binding:"required" example:"secret123"`
	FullName       string               `json:"fullName" binding:"required" example:"Omar Khaled"`
	Role           models.Role          `json:"role" example:"student" enums:"student,teacher"`
	ProfilePicture *string              `json:"profilePicture"`
	Bio            *string              `json:"bio"`
	Experience     *string              `json:"experience"`
	UniversityID   *int64               `json:"universityId"`
	Faculty        *models.Faculty      `json:"faculty"`
	AcademicYear   *models.AcademicYear `json:"academicYear"`
	StudentID      *string              `json:"studentId"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  *models.User  `json:"user"`
}

// UpdateProfileRequest replaces the caller's profile fields. Omitted optional
// fields are cleared; an empty password keeps the current one.
type UpdateProfileRequest struct {
	Email          string               `json:"email" binding:"required,email"`
	FullName       string               `json:"fullName" binding:"required"`
	Password       string               `json:"password"`
	ProfilePicture *string              `json:"profilePicture"`
	Bio            *string              `json:"bio"`
	Experience     *string              `json:"experience"`
	UniversityID   *int64               `json:"universityId"`
	Faculty        *models.Faculty      `json:"faculty"`
	AcademicYear   *models.AcademicYear `json:"academicYear"`
	StudentID      *string              `json:"studentId"`
}
