package app

import (
	"skillsetz_backend/docs"
	"skillsetz_backend/internal/config"
	"skillsetz_backend/internal/middleware"
	"skillsetz_backend/internal/model"
	"skillsetz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/certificates/verify/:certificateId", c.certificate.Verify)
	}

	// Authenticated routes
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/me", c.auth.Me)

		authGroup.GET("/profile", c.profile.GetProfile)
		authGroup.PUT("/profile", c.profile.UpdateProfile)
		authGroup.POST("/profile/resume", c.profile.UploadResume)
		authGroup.GET("/profile/skills", c.skill.ListOwnSkills)
		authGroup.POST("/profile/skills", c.skill.AttachSkill)
		authGroup.DELETE("/profile/skills/:skillId", c.skill.DetachSkill)

		authGroup.GET("/skills", c.skill.ListSkills)
		authGroup.GET("/skills/categories", c.skill.ListCategories)
		authGroup.GET("/skills/:id/levels", c.assessment.UnlockedLevels)
		authGroup.GET("/skills/:id/progress", c.assessment.Progress)

		authGroup.POST("/assessments", c.assessment.Start)
		authGroup.GET("/assessments", c.assessment.History)
		authGroup.GET("/assessments/:id/questions", c.assessment.Questions)
		authGroup.POST("/assessments/:id/answers", c.assessment.SubmitAnswer)
		authGroup.POST("/assessments/:id/finalize", c.assessment.Finalize)

		authGroup.GET("/certificates", c.certificate.List)
	}

	// Admin routes
	adminGroup := router.Group("/api/admin")
	adminGroup.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		adminGroup.POST("/skills", c.skill.CreateSkill)
		adminGroup.POST("/skills/categories", c.skill.CreateCategory)

		adminGroup.POST("/questions", c.question.Create)
		adminGroup.GET("/questions/:id", c.question.Get)
		adminGroup.DELETE("/questions/:id", c.question.Deactivate)
		adminGroup.POST("/questions/import", c.question.Import)

		adminGroup.POST("/assessments/:id/certificate", c.certificate.Reissue)
	}
}
