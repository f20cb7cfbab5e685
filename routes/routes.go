package routes

import (
	"github.com/suportelm/nutri-ai-vision-scan-17/config"
	"github.com/suportelm/nutri-ai-vision-scan-17/controllers"
	"github.com/suportelm/nutri-ai-vision-scan-17/middlewares"
	"github.com/suportelm/nutri-ai-vision-scan-17/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	cfg := config.App

	vision := services.NewVisionService(
		cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL,
		cfg.VisionTimeout, services.DefaultRetryPolicy(),
	)
	analyze := controllers.NewAnalyzeController(
		services.NewAnalysisService(cfg.OpenAIKey, cfg.MaxImageEncodedLen, vision),
	)
	stats := controllers.NewStatsController(services.NewStatsService(config.DB))
	subs := controllers.NewSubscriptionController(services.NewSubscriptionService(cfg))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected API routes
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/profile", controllers.GetProfile)
		api.PUT("/profile", controllers.UpdateProfile)

		api.POST("/meals", controllers.CreateMeal)
		api.GET("/meals", controllers.ListMeals)
		api.GET("/meals/today", controllers.TodayMeals)
		api.POST("/meals/image", controllers.UploadMealImage)
		api.POST("/meals/analyze", analyze.AnalyzeMealPhoto)

		api.GET("/progress", controllers.GetProgress)
		api.GET("/progress/history", controllers.GetProgressHistory)
		api.PUT("/progress/activity", controllers.UpdateDailyActivity)

		api.GET("/stats/summary", stats.StatsSummary)

		api.GET("/subscription/status", subs.SubscriptionStatus)
		api.GET("/subscription/plans", subs.SubscriptionPlans)
	}

	return r
}
