package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"budgetbites/internal/ai"
	"budgetbites/internal/config"
	"budgetbites/internal/database"
	"budgetbites/internal/handlers"
	"budgetbites/internal/logger"
	"budgetbites/internal/middleware"
	"budgetbites/internal/notify"
	"budgetbites/internal/services"
	"budgetbites/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "budgetbites/internal/docs" // Import swagger docs
)

// @title           Budget Bites API
// @version         1.0
// @description     Budget Bites plans a month of meals within a fixed food budget, tracks what was actually eaten and spent, and schedules daily meal reminders.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Open the store; this applies migrations and seeds singleton rows
	dbManager := database.NewManager(appConfig.DBPath)
	if err := dbManager.Open(); err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db := dbManager.DB()

	// Custom binding validators (meal_type, taste_preference, plan_month, plan_date)
	validator.Register()

	// Collaborators
	planner := ai.NewClient(appConfig.AIBaseURL, appConfig.AIAPIKey, appConfig.AIModel, appConfig.AITimeout)
	scheduler := notify.NewCronScheduler()
	defer scheduler.Stop()

	// Initialize services
	budgetService := services.NewBudgetService(db)
	preferenceService := services.NewPreferenceService(db)
	usageService := services.NewAIUsageService(db)
	mealPlanService := services.NewMealPlanService(db, planner, scheduler, usageService)
	mealLogService := services.NewMealLogService(db)
	mealTimeService := services.NewMealTimeService(db)
	expenseService := services.NewExpenseService(db)
	premiumService := services.NewPremiumService(db)
	authService := services.NewAuthService(db, appConfig)
	settingService := services.NewSettingService(db)

	// Restore today's meal reminders across restarts. The cron scheduler is
	// in-memory only, so a fresh process has nothing scheduled until synced.
	today := time.Now().Format("2006-01-02")
	if err := mealPlanService.SyncTodayNotifications(today); err != nil {
		log.Warnf("Could not restore meal reminders for %s: %v", today, err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceService)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService)
	mealLogHandler := handlers.NewMealLogHandler(mealLogService)
	mealTimeHandler := handlers.NewMealTimeHandler(mealTimeService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	settingHandler := handlers.NewSettingHandler(settingService, premiumService)
	aiUsageHandler := handlers.NewAIUsageHandler(usageService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/sign-in", authHandler.SignIn)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.SessionAuth())

	// Session state
	protected.POST("/auth/sign-out", authHandler.SignOut)
	protected.GET("/auth/state", authHandler.GetAuthState)

	// Budget routes
	budget := protected.Group("/budget")
	budget.GET("", budgetHandler.GetBudget)
	budget.POST("", budgetHandler.SetBudget)
	budget.PUT("", budgetHandler.UpdateBudget)
	budget.GET("/status", budgetHandler.GetBudgetStatus)

	// Preference routes
	preferences := protected.Group("/preferences")
	preferences.GET("", preferenceHandler.GetPreferences)
	preferences.PUT("", preferenceHandler.UpdatePreferences)

	// Meal plan routes
	mealPlans := protected.Group("/meal-plans")
	mealPlans.GET("", mealPlanHandler.GetMonthly)
	mealPlans.GET("/today", mealPlanHandler.GetToday)
	mealPlans.POST("/generate", mealPlanHandler.GenerateMonthly)
	mealPlans.POST("/regenerate", mealPlanHandler.RegenerateDaily)
	mealPlans.POST("/regenerate-today", mealPlanHandler.RegenerateToday)
	mealPlans.POST("/notifications/sync", mealPlanHandler.SyncNotifications)

	// Meal log routes
	mealLogs := protected.Group("/meal-logs")
	mealLogs.PUT("", mealLogHandler.SaveMealLog)
	mealLogs.GET("", mealLogHandler.GetMonthlyLogs)
	mealLogs.GET("/spend", mealLogHandler.GetMonthlySpend)

	// Meal time routes
	mealTimes := protected.Group("/meal-times")
	mealTimes.GET("", mealTimeHandler.GetMealTimes)
	mealTimes.PUT("/:meal_type", mealTimeHandler.UpdateMealTime)
	mealTimes.PUT("/:meal_type/enabled", mealTimeHandler.ToggleMealTime)

	// Expense routes
	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.AddExpense)
	expenses.GET("", expenseHandler.GetMonthlyExpenses)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Settings routes
	settings := protected.Group("/settings")
	settings.POST("/delete-all", settingHandler.DeleteAllData)
	settings.GET("/premium", settingHandler.GetPremiumStatus)
	settings.PUT("/premium", settingHandler.UpdatePremiumStatus)

	// AI usage routes
	aiRoutes := protected.Group("/ai")
	aiRoutes.GET("/usage", aiUsageHandler.GetMonthlyUsage)
	aiRoutes.GET("/history", aiUsageHandler.GetHistory)

	log.Infof("Starting Budget Bites backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
