package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"main/handler"
	"main/middleware"
	"main/repository"
	"main/seed"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	// Check required environment variables
	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"HABITS_COLLECTION",
		"COMPLETIONS_COLLECTION",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"ACCESS_KEY_HASH",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()
}

func setupRouter(habitsService *usecase.HabitsService, statsCache *services.StatsCache) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())

	habitsHandler := handler.NewHabitsHandler(habitsService)
	analyticsHandler := handler.NewAnalyticsHandler(habitsService)
	seedHandler := handler.NewSeedHandler(habitsService,
		utils.GetEnvAsString("SEED_CONFIG", "config/default_habits.yaml"))
	healthHandler := handler.NewHealthHandler(utils.MongoClient, statsCache)

	router.GET("/health", healthHandler.GetHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		public.POST("/auth/token", handler.TokenHandler)
	}

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		habits := protected.Group("/habits")
		{
			habits.POST("", habitsHandler.CreateHabit)
			habits.GET("", habitsHandler.ListHabits)
			habits.GET("/:id", habitsHandler.GetHabit)
			habits.POST("/:id/complete", habitsHandler.CompleteHabit)
			habits.GET("/:id/completions", habitsHandler.GetCompletions)
			habits.GET("/:id/stats", analyticsHandler.GetHabitStats)
			habits.GET("/:id/suggestions", analyticsHandler.GetHabitSuggestions)
		}

		analytics := protected.Group("/analytics")
		{
			analytics.GET("", analyticsHandler.GetAllStats)
			analytics.GET("/longest-streaks", analyticsHandler.GetLongestStreaks)
		}

		protected.POST("/seed", seedHandler.SeedHabits)
	}

	return router
}

func seedOnStart(habitsService *usecase.HabitsService) {
	if !utils.GetEnvAsBool("SEED_ON_START", false) {
		return
	}

	ctx := context.Background()
	count, err := habitsService.CountHabits(ctx)
	if err != nil {
		log.Printf("Seed-on-start skipped, failed to count habits: %v", err)
		return
	}
	if count > 0 {
		return
	}

	cfg, err := seed.LoadConfig(utils.GetEnvAsString("SEED_CONFIG", "config/default_habits.yaml"))
	if err != nil {
		log.Printf("Seed-on-start skipped: %v", err)
		return
	}

	seeder := &seed.Seeder{
		Store: habitsService,
		Rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	report, err := seeder.Run(ctx, cfg)
	if err != nil {
		log.Printf("Seed-on-start failed: %v", err)
		return
	}
	log.Printf("Seeded %d habits with sample history", report.HabitsCreated)
}

func main() {
	// Indexes enforce habit-name uniqueness, so set them up before serving.
	db := utils.MongoClient.Database(os.Getenv("MONGO_DB"))
	if err := repository.SetupIndexes(db); err != nil {
		log.Fatalf("Failed to set up indexes: %v", err)
	}

	var statsCache *services.StatsCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cache, err := services.NewStatsCache(redisURL,
			utils.GetEnvAsDuration("STATS_CACHE_TTL", time.Minute))
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		statsCache = cache
		services.GlobalStatsCache = cache
	} else {
		log.Print("REDIS_URL not set; stats caching disabled")
	}

	habitsRepo := repository.GetHabitsRepo(utils.MongoClient)
	completionsRepo := repository.GetCompletionsRepo(utils.MongoClient)
	habitsService := usecase.NewHabitsService(habitsRepo, completionsRepo, statsCache)

	seedOnStart(habitsService)

	router := setupRouter(habitsService, statsCache)

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
