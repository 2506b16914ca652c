package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/qasyoun/qasyounextra/internal/app/models"
	"github.com/qasyoun/qasyounextra/internal/app/models/dto"
	"github.com/qasyoun/qasyounextra/internal/app/services"
	"github.com/qasyoun/qasyounextra/internal/middleware"
)

// CatalogController handles universities, categories, courses and materials
type CatalogController struct {
	catalogService services.CatalogService
	logger         zerolog.Logger
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService, logger zerolog.Logger) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
		logger:         logger,
	}
}

// GetUniversities lists every university
// @Summary List universities
// @Tags universities
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.University} "Universities"
// @Router /universities [get]
func (c *CatalogController) GetUniversities(ctx *gin.Context) {
	universities, err := c.catalogService.GetUniversities(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(universities))
}

// GetUniversity returns one university
// @Summary Get university by ID
// @Tags universities
// @Produce json
// @Param id path int true "University ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.University} "University"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Router /universities/{id} [get]
func (c *CatalogController) GetUniversity(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	university, err := c.catalogService.GetUniversity(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(university))
}

// GetUniversityCourses lists the courses offered by a university
// @Summary List a university's courses
// @Tags universities
// @Produce json
// @Param id path int true "University ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Router /universities/{id}/courses [get]
func (c *CatalogController) GetUniversityCourses(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	courses, err := c.catalogService.GetUniversityCourses(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses))
}

// CreateUniversity adds a university
// @Summary Create university
// @Tags universities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UniversityInput true "University"
// @Success 201 {object} dto.APIResponse{data=models.University} "University created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Router /universities [post]
func (c *CatalogController) CreateUniversity(ctx *gin.Context) {
	var in models.UniversityInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		middleware.BindingError(ctx, "Invalid university request", err)
		return
	}

	university, err := c.catalogService.CreateUniversity(ctx.Request.Context(), in)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("universityID", university.ID).Str("name", university.Name).Msg("University created")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(university))
}

// GetCategories lists every category
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Category} "Categories"
// @Router /categories [get]
func (c *CatalogController) GetCategories(ctx *gin.Context) {
	categories, err := c.catalogService.GetCategories(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(categories))
}

// GetCategory returns one category
// @Summary Get category by ID
// @Tags categories
// @Produce json
// @Param id path int true "Category ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Category} "Category"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /categories/{id} [get]
func (c *CatalogController) GetCategory(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	category, err := c.catalogService.GetCategory(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(category))
}

// GetCategoryCourses lists the courses in a category
// @Summary List a category's courses
// @Tags categories
// @Produce json
// @Param id path int true "Category ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /categories/{id}/courses [get]
func (c *CatalogController) GetCategoryCourses(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	courses, err := c.catalogService.GetCategoryCourses(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses))
}

// CreateCategory adds a category
// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CategoryInput true "Category"
// @Success 201 {object} dto.APIResponse{data=models.Category} "Category created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Router /categories [post]
func (c *CatalogController) CreateCategory(ctx *gin.Context) {
	var in models.CategoryInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		middleware.BindingError(ctx, "Invalid category request", err)
		return
	}

	category, err := c.catalogService.CreateCategory(ctx.Request.Context(), in)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("categoryID", category.ID).Str("name", category.Name).Msg("Category created")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(category))
}

// GetCourses lists every course with its category and teacher
// @Summary List courses
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Courses"
// @Router /courses [get]
func (c *CatalogController) GetCourses(ctx *gin.Context) {
	courses, err := c.catalogService.GetCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses))
}

// GetCourse returns one course with its category and teacher
// @Summary Get course by ID
// @Tags courses
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CatalogController) GetCourse(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	course, err := c.catalogService.GetCourse(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// CreateCourse adds a course owned by the calling teacher
// @Summary Create course
// @Description The teacher is always the caller; a teacherId in the body is ignored.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CourseInput true "Course"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Teachers only"
// @Router /courses [post]
func (c *CatalogController) CreateCourse(ctx *gin.Context) {
	teacherID, ok := callerID(ctx)
	if !ok {
		return
	}

	var in models.CourseInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		middleware.BindingError(ctx, "Invalid course request", err)
		return
	}

	course, err := c.catalogService.CreateCourse(ctx.Request.Context(), teacherID, in)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("courseID", course.ID).Int64("teacherID", teacherID).Msg("Course created")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(course))
}

// GetMaterials lists a course's materials
// @Summary List course materials
// @Tags materials
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Material} "Materials"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/materials [get]
func (c *CatalogController) GetMaterials(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	materials, err := c.catalogService.GetMaterials(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(materials))
}

// CreateMaterial adds a material to a course the caller owns
// @Summary Create course material
// @Tags materials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Param request body dto.CreateMaterialRequest true "Material"
// @Success 201 {object} dto.APIResponse{data=models.Material} "Material created"
// @Failure 403 {object} dto.ErrorResponse "Not the course owner"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/materials [post]
func (c *CatalogController) CreateMaterial(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}
	courseID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateMaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingError(ctx, "Invalid material request", err)
		return
	}

	material, err := c.catalogService.CreateMaterial(ctx.Request.Context(), userID, courseID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(material))
}
