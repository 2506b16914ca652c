package models

import (
	"time"

	"github.com/google/uuid"
)

// User defines the user model based on the 'users' table
type User struct {
	ID             int64         `json:"id" db:"id"`
	UUID           uuid.UUID     `json:"uuid" db:"uuid"`
	Username       string        `json:"username" db:"username"`
	Email          string        `json:"email" db:"email"`
	Password       string        `json:"-" db:"password"` // hashed, never serialized
	Role           Role          `json:"role" db:"role"`
	FullName       string        `json:"fullName" db:"full_name"`
	ProfilePicture *string       `json:"profilePicture" db:"profile_picture"`
	Bio            *string       `json:"bio" db:"bio"`
	Experience     *string       `json:"experience" db:"experience"`
	UniversityID   *int64        `json:"universityId" db:"university_id"`
	Faculty        *Faculty      `json:"faculty" db:"faculty"`
	AcademicYear   *AcademicYear `json:"academicYear" db:"academic_year"`
	StudentID      *string       `json:"studentId" db:"student_id"`
	CreatedAt      time.Time     `json:"createdAt" db:"created_at"`
}

// IsTeacher reports whether the user has the teacher role.
func (u *User) IsTeacher() bool { return u.Role == RoleTeacher }

// UserInput holds the caller-supplied fields of a new user.
type UserInput struct {
	Username       string
	Email          string
	Password       string
	Role           Role
	FullName       string
	ProfilePicture *string
	Bio            *string
	Experience     *string
	UniversityID   *int64
	Faculty        *Faculty
	AcademicYear   *AcademicYear
	StudentID      *string
}

// UserUpdate replaces every mutable column of a user. Username, UUID and
// CreatedAt are fixed at creation.
type UserUpdate struct {
	Email          string
	Password       string
	Role           Role
	FullName       string
	ProfilePicture *string
	Bio            *string
	Experience     *string
	UniversityID   *int64
	Faculty        *Faculty
	AcademicYear   *AcademicYear
	StudentID      *string
}

// NewUserRecord builds the stored user row. The role defaults to student.
func NewUserRecord(id int64, in UserInput, now time.Time) *User {
	role := in.Role
	if role == "" {
		role = RoleStudent
	}
	return &User{
		ID:             id,
		UUID:           uuid.New(),
		Username:       in.Username,
		Email:          in.Email,
		Password:       in.Password,
		Role:           role,
		FullName:       in.FullName,
		ProfilePicture: optionalText(in.ProfilePicture),
		Bio:            optionalText(in.Bio),
		Experience:     optionalText(in.Experience),
		UniversityID:   optionalID(in.UniversityID),
		Faculty:        optionalFaculty(in.Faculty),
		AcademicYear:   optionalAcademicYear(in.AcademicYear),
		StudentID:      optionalText(in.StudentID),
		CreatedAt:      now,
	}
}

// Apply returns a copy of u with every mutable column replaced by upd.
func (upd UserUpdate) Apply(u *User) *User {
	role := upd.Role
	if role == "" {
		role = RoleStudent
	}
	out := *u
	out.Email = upd.Email
	out.Password = upd.Password
	out.Role = role
	out.FullName = upd.FullName
	out.ProfilePicture = optionalText(upd.ProfilePicture)
	out.Bio = optionalText(upd.Bio)
	out.Experience = optionalText(upd.Experience)
	out.UniversityID = optionalID(upd.UniversityID)
	out.Faculty = optionalFaculty(upd.Faculty)
	out.AcademicYear = optionalAcademicYear(upd.AcademicYear)
	out.StudentID = optionalText(upd.StudentID)
	return &out
}

// UpdateFromUser returns the update that leaves every mutable column of u unchanged.
func UpdateFromUser(u *User) UserUpdate {
	return UserUpdate{
		Email:          u.Email,
		Password:       u.Password,
		Role:           u.Role,
		FullName:       u.FullName,
		ProfilePicture: u.ProfilePicture,
		Bio:            u.Bio,
		Experience:     u.Experience,
		UniversityID:   u.UniversityID,
		Faculty:        u.Faculty,
		AcademicYear:   u.AcademicYear,
		StudentID:      u.StudentID,
	}
}

// Clone returns a copy of u that shares no pointers with it.
func (u *User) Clone() *User {
	c := *u
	c.ProfilePicture = clonePtr(u.ProfilePicture)
	c.Bio = clonePtr(u.Bio)
	c.Experience = clonePtr(u.Experience)
	c.UniversityID = clonePtr(u.UniversityID)
	c.Faculty = clonePtr(u.Faculty)
	c.AcademicYear = clonePtr(u.AcademicYear)
	c.StudentID = clonePtr(u.StudentID)
	return &c
}
