package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/trackr-dev/trackr/internal/handlers"
	"github.com/trackr-dev/trackr/internal/middleware"
	"github.com/trackr-dev/trackr/internal/services"
	"github.com/trackr-dev/trackr/internal/types"
	"gorm.io/gorm"
)

func NewRouter(database *gorm.DB, cascadeDelete bool) *gin.Engine {
	authService := services.NewAuthService(database)
	userService := services.NewUserService(database)
	projectService := services.NewProjectService(database, cascadeDelete)
	milestoneService := services.NewMilestoneService(database)
	documentService := services.NewDocumentService(database)

	authHandler := handlers.NewAuthHandler(authService, userService)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	milestoneHandler := handlers.NewMilestoneHandler(milestoneService)
	documentHandler := handlers.NewDocumentHandler(documentService)

	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.AuthMiddleware(), authHandler.Me)
		}

		users := api.Group("/users", middleware.AuthMiddleware())
		{
			users.GET("", userHandler.List)
			users.GET("/:id", userHandler.Get)
			users.PUT("/:id/role", userHandler.UpdateRole)
			users.DELETE("/:id", userHandler.Delete)
		}

		projects := api.Group("/projects", middleware.AuthMiddleware())
		{
			projects.GET("", projectHandler.List)
			projects.POST("", projectHandler.Create)
			projects.GET("/:id", projectHandler.Get)
			projects.PUT("/:id", projectHandler.Update)
			projects.PATCH("/:id/status", projectHandler.UpdateStatus)
			projects.DELETE("/:id", projectHandler.Delete)

			projects.GET("/:id/milestones", milestoneHandler.ListByProject)
			projects.POST("/:id/milestones", milestoneHandler.Create)

			projects.GET("/:id/documents", documentHandler.ListByProject)
			projects.POST("/:id/documents", documentHandler.Create)
		}

		milestones := api.Group("/milestones", middleware.AuthMiddleware())
		{
			milestones.PUT("/:id", milestoneHandler.Update)
			milestones.DELETE("/:id", milestoneHandler.Delete)
		}

		documents := api.Group("/documents", middleware.AuthMiddleware())
		{
			documents.DELETE("/:id", documentHandler.Delete)
		}
	}

	return r
}
