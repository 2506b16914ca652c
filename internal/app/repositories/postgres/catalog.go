package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/qasyoun/qasyounextra/internal/app/models"
)

var universityColumns = []string{"id", "name", "location", "logo", "website", "created_at"}

func scanUniversity(row scanner) (*models.University, error) {
	var u models.University
	if err := row.Scan(&u.ID, &u.Name, &u.Location, &u.Logo, &u.Website, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) GetUniversity(ctx context.Context, id int64) (*models.University, error) {
	q := r.sb.Select(universityColumns...).From("universities").Where(squirrel.Eq{"id": id}).Limit(1)
	return getOne(ctx, r, q, scanUniversity)
}

func (r *Repository) GetUniversities(ctx context.Context) ([]*models.University, error) {
	q := r.sb.Select(universityColumns...).From("universities").OrderBy("id ASC")
	return getMany(ctx, r, q, scanUniversity)
}

func (r *Repository) CreateUniversity(ctx context.Context, in models.UniversityInput) (*models.University, error) {
	u := models.NewUniversityRecord(0, in, timeZero)
	q := r.sb.Insert("universities").
		Columns("name", "location", "logo", "website").
		Values(u.Name, u.Location, u.Logo, u.Website).
		Suffix("RETURNING " + joinColumns(universityColumns))
	return insertOne(ctx, r, q, scanUniversity)
}

var categoryColumns = []string{"id", "name", "description", "icon", "color"}

func scanCategory(row scanner) (*models.Category, error) {
	var c models.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Icon, &c.Color); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) GetCategories(ctx context.Context) ([]*models.Category, error) {
	q := r.sb.Select(categoryColumns...).From("categories").OrderBy("id ASC")
	return getMany(ctx, r, q, scanCategory)
}

func (r *Repository) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	q := r.sb.Select(categoryColumns...).From("categories").Where(squirrel.Eq{"id": id}).Limit(1)
	return getOne(ctx, r, q, scanCategory)
}

func (r *Repository) CreateCategory(ctx context.Context, in models.CategoryInput) (*models.Category, error) {
	c := models.NewCategoryRecord(0, in)
	q := r.sb.Insert("categories").
		Columns("name", "description", "icon", "color").
		Values(c.Name, c.Description, c.Icon, c.Color).
		Suffix("RETURNING " + joinColumns(categoryColumns))
	return insertOne(ctx, r, q, scanCategory)
}

// is_official is nullable in the schema; NULL reads as false.
var courseColumns = []string{
	"id", "title", "description", "thumbnail", "price", "category_id", "teacher_id",
	"university_id", "faculty", "academic_year", "COALESCE(is_official, FALSE) AS is_official",
	"course_code", "level", "created_at",
}

func scanCourse(row scanner) (*models.Course, error) {
	var (
		c                     models.Course
		faculty, academicYear *string
	)
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.Thumbnail, &c.Price, &c.CategoryID, &c.TeacherID,
		&c.UniversityID, &faculty, &academicYear, &c.IsOfficial,
		&c.CourseCode, &c.Level, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Faculty = enumPtr[models.Faculty](faculty)
	c.AcademicYear = enumPtr[models.AcademicYear](academicYear)
	return &c, nil
}

func (r *Repository) selectCourses() squirrel.SelectBuilder {
	return r.sb.Select(courseColumns...).From("courses")
}

func (r *Repository) GetCourses(ctx context.Context) ([]*models.Course, error) {
	return getMany(ctx, r, r.selectCourses().OrderBy("id ASC"), scanCourse)
}

func (r *Repository) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return getOne(ctx, r, r.selectCourses().Where(squirrel.Eq{"id": id}).Limit(1), scanCourse)
}

func (r *Repository) GetCoursesByCategory(ctx context.Context, categoryID int64) ([]*models.Course, error) {
	q := r.selectCourses().Where(squirrel.Eq{"category_id": categoryID}).OrderBy("id ASC")
	return getMany(ctx, r, q, scanCourse)
}

func (r *Repository) GetCoursesByTeacher(ctx context.Context, teacherID int64) ([]*models.Course, error) {
	q := r.selectCourses().Where(squirrel.Eq{"teacher_id": teacherID}).OrderBy("id ASC")
	return getMany(ctx, r, q, scanCourse)
}

func (r *Repository) GetCoursesByUniversity(ctx context.Context, universityID int64) ([]*models.Course, error) {
	q := r.selectCourses().Where(squirrel.Eq{"university_id": universityID}).OrderBy("id ASC")
	return getMany(ctx, r, q, scanCourse)
}

// CreateCourse inserts a course. Dangling foreign keys fail with a
// foreign_key_violation from the server.
func (r *Repository) CreateCourse(ctx context.Context, in models.CourseInput) (*models.Course, error) {
	c := models.NewCourseRecord(0, in, timeZero)
	q := r.sb.Insert("courses").
		Columns("title", "description", "thumbnail", "price", "category_id", "teacher_id",
			"university_id", "faculty", "academic_year", "is_official", "course_code", "level").
		Values(c.Title, c.Description, c.Thumbnail, c.Price, c.CategoryID, c.TeacherID,
			c.UniversityID, enumArg(c.Faculty), enumArg(c.AcademicYear), c.IsOfficial, c.CourseCode, c.Level).
		Suffix("RETURNING " + joinColumns(courseColumns))
	return insertOne(ctx, r, q, scanCourse)
}

var materialColumns = []string{"id", "course_id", "title", "type", "url", "created_at"}

func scanMaterial(row scanner) (*models.Material, error) {
	var m models.Material
	if err := row.Scan(&m.ID, &m.CourseID, &m.Title, &m.Type, &m.URL, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) GetMaterialsByCourse(ctx context.Context, courseID int64) ([]*models.Material, error) {
	q := r.sb.Select(materialColumns...).From("materials").Where(squirrel.Eq{"course_id": courseID}).OrderBy("id ASC")
	return getMany(ctx, r, q, scanMaterial)
}

func (r *Repository) CreateMaterial(ctx context.Context, in models.MaterialInput) (*models.Material, error) {
	m := models.NewMaterialRecord(0, in, timeZero)
	q := r.sb.Insert("materials").
		Columns("course_id", "title", "type", "url").
		Values(m.CourseID, m.Title, m.Type, m.URL).
		Suffix("RETURNING " + joinColumns(materialColumns))
	return insertOne(ctx, r, q, scanMaterial)
}
