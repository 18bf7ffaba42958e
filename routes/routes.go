package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kimiqo/TechCrush-individual-project/config"
	"github.com/Kimiqo/TechCrush-individual-project/handlers"
	"github.com/Kimiqo/TechCrush-individual-project/middleware"
)

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	quizHandler *handlers.QuizHandler,
	cfg *config.Config,
) {
	// API routes
	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Quiz routes; behind the JWT gate when the deployment requires auth
		quizzes := api.Group("/quizzes")
		if cfg.AuthRequired {
			quizzes.Use(middleware.RequireAuth(cfg.JWTSecret))
		}
		{
			quizzes.POST("", quizHandler.CreateQuiz)
			quizzes.GET("", quizHandler.GetQuizzes)
			quizzes.GET("/:id", quizHandler.GetQuizByID)
			quizzes.POST("/:id/answers", quizHandler.SubmitAnswers)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
