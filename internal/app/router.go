package app

import (
	"interview_sim_backend/docs"
	"interview_sim_backend/internal/config"
	"interview_sim_backend/internal/middleware"
	"interview_sim_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.POST("/auth/login", c.auth.Login)
		api.POST("/auth/register", c.auth.Register)
	}

	protected := api.Group("/")
	if cfg.BackendConfigured() {
		protected.Use(middleware.AuthMiddleware(cfg))
	} else {
		protected.Use(middleware.MockAuthMiddleware())
	}
	{
		protected.GET("/questions", c.question.List)
		protected.GET("/questions/topics", c.question.Topics)
		protected.GET("/questions/:id", c.question.GetByID)

		protected.POST("/attempts", c.attempt.Create)
		protected.GET("/attempts", c.attempt.List)
		protected.GET("/attempts/analytics", c.attempt.GetAnalytics)
		protected.GET("/attempts/recent", c.attempt.Recent)

		protected.POST("/ai/feedback", c.feedback.GetFeedback)
		protected.POST("/ai/upload", c.feedback.UploadAudio)
	}
}
