package app

import (
	"quiz_progress_backend/docs"
	"quiz_progress_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		api.GET("/users", c.user.GetUsers)
		api.GET("/user/:user_id", c.user.GetUser)
		api.POST("/user/complete-quiz", c.user.CompleteQuiz)

		api.GET("/quizzes", c.quiz.GetQuizzes)
		api.GET("/quiz/:quiz_id", c.quiz.GetQuiz)
	}

	a.registerProgressRoutes(api, c)
}

// registerProgressRoutes 答题进度相关接口，均以 user_id/quiz_id 定位
func (a *App) registerProgressRoutes(api *gin.RouterGroup, c *controllers) {
	quizzes := api.Group("/quizzes")
	{
		quizzes.GET("/answers/:user_id/:quiz_id", c.answer.GetAnswers)
		quizzes.GET("/active-answer/:user_id/:quiz_id", c.answer.GetActiveAnswer)
		quizzes.POST("/submit-answer", c.answer.SubmitAnswer)
		quizzes.GET("/progress/:user_id/:quiz_id", c.quiz.GetProgress)
		quizzes.GET("/results/:user_id/:quiz_id", c.quiz.GetResults)
	}
}
