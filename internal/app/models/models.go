package models

// Role is the user_role enum.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the user_role enum values.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// Faculty is the university_faculty enum.
type Faculty string

const (
	FacultyEngineering Faculty = "engineering"
	FacultyMedicine    Faculty = "medicine"
	FacultyScience     Faculty = "science"
	FacultyArts        Faculty = "arts"
	FacultyBusiness    Faculty = "business"
	FacultyLaw         Faculty = "law"
	FacultyEducation   Faculty = "education"
	FacultyOther       Faculty = "other"
)

// AcademicYear is the academic_year enum.
type AcademicYear string

const (
	AcademicYearFirst    AcademicYear = "first"
	AcademicYearSecond   AcademicYear = "second"
	AcademicYearThird    AcademicYear = "third"
	AcademicYearFourth   AcademicYear = "fourth"
	AcademicYearFifth    AcademicYear = "fifth"
	AcademicYearSixth    AcademicYear = "sixth"
	AcademicYearGraduate AcademicYear = "graduate"
)

// optionalText returns nil for a missing or empty value, otherwise a fresh copy.
func optionalText(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

func optionalID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func optionalFaculty(f *Faculty) *Faculty {
	if f == nil || *f == "" {
		return nil
	}
	v := *f
	return &v
}

func optionalAcademicYear(y *AcademicYear) *AcademicYear {
	if y == nil || *y == "" {
		return nil
	}
	v := *y
	return &v
}

func flag(b *bool) bool {
	return b != nil && *b
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
