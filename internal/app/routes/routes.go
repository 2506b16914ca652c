package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qasyoun/qasyounextra/internal/app/controllers"
	"github.com/qasyoun/qasyounextra/internal/app/models"
	"github.com/qasyoun/qasyounextra/internal/app/models/dto"
	"github.com/qasyoun/qasyounextra/internal/middleware"
	"github.com/qasyoun/qasyounextra/internal/pkg/websocket"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth     *controllers.AuthController
	User     *controllers.UserController
	Catalog  *controllers.CatalogController
	Learning *controllers.LearningController
	Message  *controllers.MessageController
	Live     *websocket.Handler
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "pong"}))
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
	}

	teachers := v1.Group("/teachers")
	{
		teachers.GET("", ctrl.User.GetTeachers)
		teachers.GET("/:id", ctrl.User.GetTeacher)
		teachers.GET("/:id/courses", ctrl.User.GetTeacherCourses)
	}

	universities := v1.Group("/universities")
	{
		universities.GET("", ctrl.Catalog.GetUniversities)
		universities.GET("/:id", ctrl.Catalog.GetUniversity)
		universities.GET("/:id/courses", ctrl.Catalog.GetUniversityCourses)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", ctrl.Catalog.GetCategories)
		categories.GET("/:id", ctrl.Catalog.GetCategory)
		categories.GET("/:id/courses", ctrl.Catalog.GetCategoryCourses)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", ctrl.Catalog.GetCourses)
		courses.GET("/:id", ctrl.Catalog.GetCourse)
		courses.GET("/:id/materials", ctrl.Catalog.GetMaterials)
		courses.GET("/:id/reviews", ctrl.Learning.GetReviews)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", ctrl.Auth.Me)
		authenticated.PUT("/users/me", ctrl.User.UpdateMe)

		authenticated.GET("/enrollments", ctrl.Learning.GetEnrollments)
		authenticated.POST("/courses/:id/reviews", ctrl.Learning.CreateReview)

		authenticated.GET("/messages", ctrl.Message.GetMessages)
		authenticated.POST("/messages", ctrl.Message.SendMessage)
		authenticated.PATCH("/messages/:id/read", ctrl.Message.MarkAsRead)
		authenticated.GET("/messages/ws", ctrl.Live.HandleConnection)

		// Ownership is checked by the catalog service
		teacherOrAdmin := authenticated.Group("")
		teacherOrAdmin.Use(authMiddleware.RoleRequired(models.RoleTeacher, models.RoleAdmin))
		{
			teacherOrAdmin.POST("/courses/:id/materials", ctrl.Catalog.CreateMaterial)
		}

		teacherOnly := authenticated.Group("")
		teacherOnly.Use(authMiddleware.RoleRequired(models.RoleTeacher))
		{
			teacherOnly.POST("/courses", ctrl.Catalog.CreateCourse)
		}

		studentOnly := authenticated.Group("")
		studentOnly.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			studentOnly.POST("/courses/:id/enroll", ctrl.Learning.Enroll)
		}

		adminOnly := authenticated.Group("")
		adminOnly.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			adminOnly.POST("/universities", ctrl.Catalog.CreateUniversity)
			adminOnly.POST("/categories", ctrl.Catalog.CreateCategory)
		}
	}
}
