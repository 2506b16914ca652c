package memory

import (
	"context"

	"github.com/qasyoun/qasyounextra/internal/app/models"
)

// GetUniversity returns the university with id, or nil.
func (r *Repository) GetUniversity(_ context.Context, id int64) (*models.University, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.universities.lookup(id), nil
}

func (r *Repository) GetUniversities(_ context.Context) ([]*models.University, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.universities.filter(nil), nil
}

func (r *Repository) CreateUniversity(_ context.Context, in models.UniversityInput) (*models.University, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := models.NewUniversityRecord(r.universities.nextID(), in, r.now())
	return r.universities.insert(u.ID, u), nil
}

func (r *Repository) GetCategories(_ context.Context) ([]*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.categories.filter(nil), nil
}

// GetCategoryByID returns the category with id, or nil.
func (r *Repository) GetCategoryByID(_ context.Context, id int64) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.categories.lookup(id), nil
}

func (r *Repository) CreateCategory(_ context.Context, in models.CategoryInput) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.createCategoryLocked(in), nil
}

func (r *Repository) createCategoryLocked(in models.CategoryInput) *models.Category {
	cat := models.NewCategoryRecord(r.categories.nextID(), in)
	return r.categories.insert(cat.ID, cat)
}

func (r *Repository) GetCourses(_ context.Context) ([]*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.courses.filter(nil), nil
}

// GetCourseByID returns the course with id, or nil.
func (r *Repository) GetCourseByID(_ context.Context, id int64) (*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.courses.lookup(id), nil
}

func (r *Repository) GetCoursesByCategory(_ context.Context, categoryID int64) ([]*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.courses.filter(func(c *models.Course) bool { return refEquals(c.CategoryID, categoryID) }), nil
}

func (r *Repository) GetCoursesByTeacher(_ context.Context, teacherID int64) ([]*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.courses.filter(func(c *models.Course) bool { return refEquals(c.TeacherID, teacherID) }), nil
}

func (r *Repository) GetCoursesByUniversity(_ context.Context, universityID int64) ([]*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.courses.filter(func(c *models.Course) bool { return refEquals(c.UniversityID, universityID) }), nil
}

// CreateCourse stores a new course. Referenced ids are not checked.
func (r *Repository) CreateCourse(_ context.Context, in models.CourseInput) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	course := models.NewCourseRecord(r.courses.nextID(), in, r.now())
	return r.courses.insert(course.ID, course), nil
}

func (r *Repository) GetMaterialsByCourse(_ context.Context, courseID int64) ([]*models.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.materials.filter(func(m *models.Material) bool { return m.CourseID == courseID }), nil
}

// CreateMaterial stores a new material. The course id is not checked.
func (r *Repository) CreateMaterial(_ context.Context, in models.MaterialInput) (*models.Material, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := models.NewMaterialRecord(r.materials.nextID(), in, r.now())
	return r.materials.insert(m.ID, m), nil
}

func refEquals(ref *int64, id int64) bool {
	return ref != nil && *ref == id
}
