package app

import (
	"context"
	"interview_sim_backend/internal/config"
	"interview_sim_backend/internal/controller"
	"interview_sim_backend/internal/repository"
	"interview_sim_backend/internal/service"
	"interview_sim_backend/pkg/database"
	"interview_sim_backend/pkg/logger"
	"interview_sim_backend/pkg/monitoring"
	"interview_sim_backend/pkg/security"
	"interview_sim_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config    *config.Config
	Router    *gin.Engine
	DB        *gorm.DB
	Redis     *redis.Client
	Providers *service.Providers
	Storage   *service.StorageService
}

type controllers struct {
	auth     *controller.AuthController
	question *controller.QuestionController
	attempt  *controller.AttemptController
	feedback *controller.FeedbackController
	health   *controller.HealthController
}

// initRealProviders builds the database-backed capability set. Only called
// when the config gate passes; a failed database connection is fatal here
// because a half-configured real backend must not silently degrade to mock.
func (a *App) initRealProviders(cfg *config.Config) *service.Providers {
	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}
	a.DB = db

	// Redis is an optional cache, not a dependency: topics just skip the
	// cache when it is absent.
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, topic caching disabled", zap.Error(err))
		rdb = nil
	}
	a.Redis = rdb

	userRepo := repository.NewUserRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	performanceRepo := repository.NewPerformanceRepository(db)

	return &service.Providers{
		Auth:      service.NewAuthService(userRepo, cfg),
		Question:  service.NewQuestionService(questionRepo, rdb),
		Attempt:   service.NewAttemptService(attemptRepo, questionRepo),
		Analytics: service.NewAnalyticsService(performanceRepo),
		Feedback:  service.NewFeedbackService(cfg.AI),
	}
}

func (a *App) initControllers(p *service.Providers, storage *service.StorageService, cfg *config.Config) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(p.Auth),
		question: controller.NewQuestionController(p.Question),
		attempt:  controller.NewAttemptController(p.Attempt, p.Analytics),
		feedback: controller.NewFeedbackController(p.Feedback, storage),
		health:   controller.NewHealthController(cfg),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)

	gin.SetMode(cfg.Server.Mode)

	app := &App{Config: cfg}

	if cfg.BackendConfigured() {
		logger.Log.Info("Starting with real backend",
			zap.String("database", cfg.Database.Host),
		)
		app.Providers = app.initRealProviders(cfg)
	} else {
		logger.Log.Warn("Database or JWT secret not configured, starting in mock mode")
		app.Providers = service.NewMockProviders()
	}

	app.Storage = service.NewStorageService(cfg)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("interview-sim", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
		}
	}

	ctls := app.initControllers(app.Providers, app.Storage, cfg)
	app.registerRoutes(router, ctls, cfg)

	if cfg.Storage.Type == "local" && cfg.Storage.LocalPath != "" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.serveFrontend(router)

	return app
}

// serveFrontend mounts the single-page client. Unknown non-API paths fall
// back to index.html so in-app views survive a reload.
func (a *App) serveFrontend(router *gin.Engine) {
	if _, err := os.Stat("web/index.html"); os.IsNotExist(err) {
		return
	}

	router.StaticFile("/", "web/index.html")
	router.Static("/js", "web/js")

	router.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/api") {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		ctx.File("web/index.html")
	})
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s (%s backend)", a.Config.Server.Port, a.Config.BackendMode())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
