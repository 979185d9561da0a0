package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mihir/campuspulse/internal/app/controllers"
	"github.com/mihir/campuspulse/internal/app/models"
	"github.com/mihir/campuspulse/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	formController *controllers.FormController,
	questionController *controllers.QuestionController,
	feedbackController *controllers.FeedbackController,
	reportController *controllers.ReportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.GetProfile)

		// Student-facing feedback flow
		studentProtected := authenticated.Group("")
		studentProtected.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
		{
			studentProtected.GET("/forms/eligible", feedbackController.GetEligibleForms)
			studentProtected.POST("/forms/:id/responses", feedbackController.SubmitFeedback)
		}

		// Admin-only management and reporting
		adminProtected := authenticated.Group("")
		adminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			students := adminProtected.Group("/students")
			{
				students.POST("", studentController.CreateStudent)
				students.GET("", studentController.ListStudents)
				students.GET("/:id", studentController.GetStudent)
				students.PUT("/:id", studentController.UpdateStudent)
				students.DELETE("/:id", studentController.DeleteStudent)
			}

			forms := adminProtected.Group("/forms")
			{
				forms.POST("", formController.CreateForm)
				forms.GET("", formController.ListForms)
				forms.POST("/generate", formController.GenerateForms)
				forms.GET("/:id", formController.GetForm)
				forms.PUT("/:id", formController.UpdateForm)
				forms.POST("/:id/close", formController.CloseForm)
				forms.DELETE("/:id", formController.DeleteForm)
			}

			questions := adminProtected.Group("/questions")
			{
				questions.POST("", questionController.CreateQuestion)
				questions.GET("", questionController.ListQuestions)
				questions.PUT("/:id", questionController.UpdateQuestion)
				questions.DELETE("/:id", questionController.DeleteQuestion)
			}

			reports := adminProtected.Group("/reports")
			{
				reports.GET("/forms/:id", reportController.GetFormReport)
				reports.GET("/faculty", reportController.GetFacultyReport)
				reports.GET("/completion", reportController.GetCompletionReport)
			}
		}
	}
}
