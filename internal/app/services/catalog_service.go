package services

import (
	"context"
	"fmt"
	"strings"

	appAuth "github.com/qasyoun/qasyounextra/internal/app/auth"
	"github.com/qasyoun/qasyounextra/internal/app/models"
	"github.com/qasyoun/qasyounextra/internal/app/models/dto"
	"github.com/qasyoun/qasyounextra/internal/app/repositories"
	"github.com/qasyoun/qasyounextra/internal/pkg/apperrors"
	"github.com/qasyoun/qasyounextra/internal/pkg/dberrors"
)

// CatalogService covers universities, categories, courses and materials
type CatalogService interface {
	GetUniversities(ctx context.Context) ([]*models.University, error)
	GetUniversity(ctx context.Context, id int64) (*models.University, error)
	GetUniversityCourses(ctx context.Context, id int64) ([]*models.Course, error)
	CreateUniversity(ctx context.Context, in models.UniversityInput) (*models.University, error)

	GetCategories(ctx context.Context) ([]*models.Category, error)
	GetCategory(ctx context.Context, id int64) (*models.Category, error)
	GetCategoryCourses(ctx context.Context, id int64) ([]*models.Course, error)
	CreateCategory(ctx context.Context, in models.CategoryInput) (*models.Category, error)

	GetCourses(ctx context.Context) ([]*dto.CourseResponse, error)
	GetCourse(ctx context.Context, id int64) (*dto.CourseResponse, error)
	CreateCourse(ctx context.Context, teacherID int64, in models.CourseInput) (*models.Course, error)

	GetMaterials(ctx context.Context, courseID int64) ([]*models.Material, error)
	CreateMaterial(ctx context.Context, userID, courseID int64, req *dto.CreateMaterialRequest) (*models.Material, error)
}

type catalogServiceImpl struct {
	store repositories.Storage
	authz *appAuth.AuthorizationService
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(store repositories.Storage, authz *appAuth.AuthorizationService) CatalogService {
	return &catalogServiceImpl{store: store, authz: authz}
}

func (s *catalogServiceImpl) GetUniversities(ctx context.Context) ([]*models.University, error) {
	unis, err := s.store.GetUniversities(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting universities: %w", err)
	}
	return unis, nil
}

func (s *catalogServiceImpl) GetUniversity(ctx context.Context, id int64) (*models.University, error) {
	if err := validateID("university ID", id); err != nil {
		return nil, err
	}
	uni, err := s.store.GetUniversity(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting university: %w", err)
	}
	if uni == nil {
		return nil, apperrors.ErrUniversityNotFound
	}
	return uni, nil
}

func (s *catalogServiceImpl) GetUniversityCourses(ctx context.Context, id int64) ([]*models.Course, error) {
	if _, err := s.GetUniversity(ctx, id); err != nil {
		return nil, err
	}
	courses, err := s.store.GetCoursesByUniversity(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting university courses: %w", err)
	}
	return courses, nil
}

func (s *catalogServiceImpl) CreateUniversity(ctx context.Context, in models.UniversityInput) (*models.University, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Location) == "" {
		return nil, fmt.Errorf("%w: name and location are required", apperrors.ErrValidationFailed)
	}
	uni, err := s.store.CreateUniversity(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("error creating university: %w", err)
	}
	return uni, nil
}

func (s *catalogServiceImpl) GetCategories(ctx context.Context) ([]*models.Category, error) {
	cats, err := s.store.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting categories: %w", err)
	}
	return cats, nil
}

func (s *catalogServiceImpl) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	if err := validateID("category ID", id); err != nil {
		return nil, err
	}
	cat, err := s.store.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting category: %w", err)
	}
	if cat == nil {
		return nil, apperrors.ErrCategoryNotFound
	}
	return cat, nil
}

func (s *catalogServiceImpl) GetCategoryCourses(ctx context.Context, id int64) ([]*models.Course, error) {
	if _, err := s.GetCategory(ctx, id); err != nil {
		return nil, err
	}
	courses, err := s.store.GetCoursesByCategory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting category courses: %w", err)
	}
	return courses, nil
}

func (s *catalogServiceImpl) CreateCategory(ctx context.Context, in models.CategoryInput) (*models.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidationFailed)
	}
	cat, err := s.store.CreateCategory(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("error creating category: %w", err)
	}
	return cat, nil
}

// GetCourses lists every course with its category and teacher
func (s *catalogServiceImpl) GetCourses(ctx context.Context) ([]*dto.CourseResponse, error) {
	courses, err := s.store.GetCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting courses: %w", err)
	}

	out := make([]*dto.CourseResponse, 0, len(courses))
	for _, c := range courses {
		resp, err := s.courseResponse(ctx, c)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *catalogServiceImpl) GetCourse(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	if err := validateID("course ID", id); err != nil {
		return nil, err
	}
	course, err := s.store.GetCourseByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}
	return s.courseResponse(ctx, course)
}

// courseResponse fetches the course's category and teacher separately.
// Dangling references resolve to nil.
func (s *catalogServiceImpl) courseResponse(ctx context.Context, c *models.Course) (*dto.CourseResponse, error) {
	resp := &dto.CourseResponse{Course: c}

	if c.CategoryID != nil {
		cat, err := s.store.GetCategoryByID(ctx, *c.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("error getting course category: %w", err)
		}
		resp.Category = cat
	}
	if c.TeacherID != nil {
		teacher, err := s.store.GetUser(ctx, *c.TeacherID)
		if err != nil {
			return nil, fmt.Errorf("error getting course teacher: %w", err)
		}
		resp.Teacher = teacher
	}
	return resp, nil
}

// CreateCourse creates a course owned by teacherID regardless of the input's teacher
func (s *catalogServiceImpl) CreateCourse(ctx context.Context, teacherID int64, in models.CourseInput) (*models.Course, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Level) == "" {
		return nil, fmt.Errorf("%w: title and level are required", apperrors.ErrValidationFailed)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", apperrors.ErrValidationFailed)
	}
	if err := s.authz.ValidateTeacher(ctx, teacherID); err != nil {
		return nil, err
	}
	in.TeacherID = &teacherID

	if in.CategoryID != nil {
		if _, err := s.GetCategory(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
	}
	if err := checkUniversity(ctx, s.store, in.UniversityID); err != nil {
		return nil, err
	}

	course, err := s.store.CreateCourse(ctx, in)
	if dberrors.IsForeignKeyViolation(err) {
		return nil, fmt.Errorf("%w: course references a missing record", apperrors.ErrValidationFailed)
	}
	if err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}
	return course, nil
}

func (s *catalogServiceImpl) GetMaterials(ctx context.Context, courseID int64) ([]*models.Material, error) {
	if _, err := requireCourse(ctx, s.store, courseID); err != nil {
		return nil, err
	}
	mats, err := s.store.GetMaterialsByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error getting materials: %w", err)
	}
	return mats, nil
}

// CreateMaterial adds a material. Only the course's teacher or an admin may.
func (s *catalogServiceImpl) CreateMaterial(ctx context.Context, userID, courseID int64, req *dto.CreateMaterialRequest) (*models.Material, error) {
	if _, err := requireCourse(ctx, s.store, courseID); err != nil {
		return nil, err
	}
	if err := s.authz.ValidateCourseOwner(ctx, courseID, userID); err != nil {
		return nil, err
	}

	mat, err := s.store.CreateMaterial(ctx, models.MaterialInput{
		CourseID: courseID,
		Title:    req.Title,
		Type:     req.Type,
		URL:      req.URL,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating material: %w", err)
	}
	return mat, nil
}

// requireCourse returns the course or ErrCourseNotFound
func requireCourse(ctx context.Context, courses repositories.CourseRepository, courseID int64) (*models.Course, error) {
	if err := validateID("course ID", courseID); err != nil {
		return nil, err
	}
	course, err := courses.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error getting course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}
