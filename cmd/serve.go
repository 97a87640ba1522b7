package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitcircle/database"
	"fitcircle/docs"
	"fitcircle/internal/cache"
	"fitcircle/internal/controllers"
	"fitcircle/internal/middleware"
	"fitcircle/internal/openai"
	"fitcircle/internal/repository"
	"fitcircle/internal/services"
	"fitcircle/routes"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db, logger); err != nil {
			return err
		}
	}
	database.MonitorConnections(ctx, db, logger, 30*time.Second)

	var (
		planCache   services.MealPlanCache
		redisClient *cache.RedisClient
	)
	if cfg.Redis.URL != "" {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			logger.Warn("redis unavailable, meal plans will not be cached", zap.Error(err))
		} else {
			defer redisClient.Close()
			planCache = redisClient
			logger.Info("connected to redis")
		}
	}

	var generator services.MealPlanGenerator
	if cfg.AI.APIKey != "" {
		client, err := openai.NewClient(openai.Config{
			APIKey:  cfg.AI.APIKey,
			BaseURL: cfg.AI.BaseURL,
			Model:   cfg.AI.Model,
			Timeout: cfg.AITimeout(),
		})
		if err != nil {
			return err
		}
		generator = client
	} else {
		logger.Warn("OPENAI_API_KEY not set, meal generation is disabled")
	}

	router := newRouter(db, redisClient, planCache, generator, controllers.NewClock(loc))

	docs.SwaggerInfo.Title = "FitCircle API"
	docs.SwaggerInfo.Description = "Family fitness tracking, leaderboards and AI meal plans."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("addr", server.Addr),
			zap.String("docs", "/swagger/index.html"))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func newRouter(db *gorm.DB, redisClient *cache.RedisClient, planCache services.MealPlanCache, generator services.MealPlanGenerator, clock controllers.Clock) *gin.Engine {
	profileRepo := repository.NewProfileRepository(db)
	prefsRepo := repository.NewDietaryPreferencesRepository(db)
	progressRepo := repository.NewDailyProgressRepository(db)
	weightRepo := repository.NewWeightLogRepository(db)
	workoutRepo := repository.NewWorkoutExerciseRepository(db)
	familyRepo := repository.NewFamilyRepository(db)
	challengeRepo := repository.NewWeeklyChallengeRepository(db)
	mealRepo := repository.NewMealRepository(db)

	profileService := services.NewProfileService(profileRepo, prefsRepo, logger)
	progressService := services.NewProgressService(progressRepo, weightRepo, logger)
	workoutService := services.NewWorkoutService(workoutRepo, logger)
	mealService := services.NewMealService(mealRepo, logger)
	mealPlanService := services.NewMealPlanService(profileRepo, prefsRepo, generator, planCache, logger)
	familyService := services.NewFamilyService(familyRepo, logger)
	leaderboardService := services.NewLeaderboardService(familyRepo, profileRepo, progressRepo, challengeRepo, logger)
	challengeService := services.NewChallengeService(familyRepo, challengeRepo, logger)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(logger))
	auth := middleware.AuthMiddleware(cfg.Auth.JWTSecret)

	routes.RegisterSwaggerRoutes(router)
	routes.RegisterProfileRoutes(router, controllers.NewProfileController(profileService), auth)
	routes.RegisterProgressRoutes(router, controllers.NewProgressController(progressService, clock), auth)
	routes.RegisterWorkoutRoutes(router, controllers.NewWorkoutController(workoutService, progressService, clock), auth)
	routes.RegisterMealRoutes(router, controllers.NewMealController(mealService, mealPlanService, clock), auth)
	routes.RegisterFamilyRoutes(router, controllers.NewFamilyController(familyService, leaderboardService, challengeService, clock), auth)

	router.GET("/", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		dbHealthy := database.Ping(ctx, db) == nil
		if !dbHealthy {
			status = http.StatusServiceUnavailable
		}

		redisStatus := map[string]interface{}{"connected": false}
		if redisClient != nil {
			if s, err := redisClient.Status(ctx); err == nil {
				redisStatus = s
			}
		}

		c.JSON(status, gin.H{
			"message":         "FitCircle API is running",
			"database_health": dbHealthy,
			"redis":           redisStatus,
			"meal_generation": generator != nil,
		})
	})

	return router
}
