package app

import (
	"github.com/anand2468/easyeval/docs"
	"github.com/anand2468/easyeval/internal/config"
	"github.com/anand2468/easyeval/internal/middleware"
	"github.com/anand2468/easyeval/pkg/monitoring"
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
	}

	// Everything below requires a valid bearer token; routes carrying an
	// entity id additionally require the caller to own it through the
	// exam chain.
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		authGroup.POST("/exams", c.exam.Create)
		authGroup.GET("/exams", c.exam.List)

		ownExam := middleware.RequireOwnership("id", repos.exam.OwnerOf)
		authGroup.GET("/exams/:id", ownExam, c.exam.Get)
		authGroup.PUT("/exams/:id", ownExam, c.exam.Update)
		authGroup.DELETE("/exams/:id", ownExam, c.exam.Delete)
		authGroup.POST("/exams/:id/questions", ownExam, c.question.Create)
		authGroup.GET("/exams/:id/questions", ownExam, c.question.ListByExam)
		authGroup.POST("/exams/:id/responses", ownExam, c.response.Create)
		authGroup.GET("/exams/:id/responses", ownExam, c.response.ListByExam)
		authGroup.GET("/exams/:id/summary", ownExam, c.response.ExamSummary)

		ownQuestion := middleware.RequireOwnership("id", repos.question.OwnerOf)
		authGroup.PUT("/questions/:id", ownQuestion, c.question.Update)
		authGroup.DELETE("/questions/:id", ownQuestion, c.question.Delete)

		ownResponse := middleware.RequireOwnership("id", repos.response.OwnerOf)
		authGroup.GET("/responses/:id", ownResponse, c.response.Get)
		authGroup.DELETE("/responses/:id", ownResponse, c.response.Delete)
		authGroup.POST("/responses/:id/evaluate", ownResponse, c.evaluation.Evaluate)

		authGroup.POST("/uploads/answers", c.response.UploadAnswerImage)
	}
}
