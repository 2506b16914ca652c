package models

import "time"

// Course defines the model based on the 'courses' table.
// Price is stored in the smallest currency unit.
type Course struct {
	ID           int64         `json:"id" db:"id"`
	Title        string        `json:"title" db:"title"`
	Description  string        `json:"description" db:"description"`
	Thumbnail    *string       `json:"thumbnail" db:"thumbnail"`
	Price        int64         `json:"price" db:"price"`
	CategoryID   *int64        `json:"categoryId" db:"category_id"`
	TeacherID    *int64        `json:"teacherId" db:"teacher_id"`
	UniversityID *int64        `json:"universityId" db:"university_id"`
	Faculty      *Faculty      `json:"faculty" db:"faculty"`
	AcademicYear *AcademicYear `json:"academicYear" db:"academic_year"`
	IsOfficial   bool          `json:"isOfficial" db:"is_official"`
	CourseCode   *string       `json:"courseCode" db:"course_code"`
	Level        string        `json:"level" db:"level"`
	CreatedAt    time.Time     `json:"createdAt" db:"created_at"`
}

// CourseInput holds the caller-supplied fields of a new course.
type CourseInput struct {
	Title        string        `json:"title" binding:"required"`
	Description  string        `json:"description" binding:"required"`
	Thumbnail    *string       `json:"thumbnail"`
	Price        int64         `json:"price" binding:"min=0"`
	CategoryID   *int64        `json:"categoryId"`
	TeacherID    *int64        `json:"teacherId"`
	UniversityID *int64        `json:"universityId"`
	Faculty      *Faculty      `json:"faculty"`
	AcademicYear *AcademicYear `json:"academicYear"`
	IsOfficial   *bool         `json:"isOfficial"`
	CourseCode   *string       `json:"courseCode"`
	Level        string        `json:"level" binding:"required"`
}

// NewCourseRecord builds the stored course row. IsOfficial defaults to false.
func NewCourseRecord(id int64, in CourseInput, now time.Time) *Course {
	return &Course{
		ID:           id,
		Title:        in.Title,
		Description:  in.Description,
		Thumbnail:    optionalText(in.Thumbnail),
		Price:        in.Price,
		CategoryID:   optionalID(in.CategoryID),
		TeacherID:    optionalID(in.TeacherID),
		UniversityID: optionalID(in.UniversityID),
		Faculty:      optionalFaculty(in.Faculty),
		AcademicYear: optionalAcademicYear(in.AcademicYear),
		IsOfficial:   flag(in.IsOfficial),
		CourseCode:   optionalText(in.CourseCode),
		Level:        in.Level,
		CreatedAt:    now,
	}
}

// Clone returns a copy of c that shares no pointers with it.
func (c *Course) Clone() *Course {
	out := *c
	out.Thumbnail = clonePtr(c.Thumbnail)
	out.CategoryID = clonePtr(c.CategoryID)
	out.TeacherID = clonePtr(c.TeacherID)
	out.UniversityID = clonePtr(c.UniversityID)
	out.Faculty = clonePtr(c.Faculty)
	out.AcademicYear = clonePtr(c.AcademicYear)
	out.CourseCode = clonePtr(c.CourseCode)
	return &out
}
