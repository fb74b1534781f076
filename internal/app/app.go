package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anand2468/easyeval/internal/config"
	"github.com/anand2468/easyeval/internal/controller"
	"github.com/anand2468/easyeval/internal/repository"
	"github.com/anand2468/easyeval/internal/service"
	"github.com/anand2468/easyeval/pkg/database"
	"github.com/anand2468/easyeval/pkg/logger"
	"github.com/anand2468/easyeval/pkg/monitoring"
	"github.com/anand2468/easyeval/pkg/security"
	"github.com/anand2468/easyeval/pkg/tracing"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	exam     *repository.ExamRepository
	question *repository.QuestionRepository
	response *repository.ResponseRepository
}

type services struct {
	auth       *service.AuthService
	storage    *service.StorageService
	exam       *service.ExamService
	question   *service.QuestionService
	response   *service.ResponseService
	evaluation *service.EvaluationService
}

type controllers struct {
	auth       *controller.AuthController
	exam       *controller.ExamController
	question   *controller.QuestionController
	response   *controller.ResponseController
	evaluation *controller.EvaluationController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig runs the registered reload callbacks with a freshly loaded
// config. The config captured at startup is never mutated, so request-path
// code reading through retained pointers stays race-free; only services
// that registered a callback pick up new values, everything else needs a
// restart.
func (a *App) ApplyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		exam:     repository.NewExamRepository(db),
		question: repository.NewQuestionRepository(db),
		response: repository.NewResponseRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	cache := service.NewSummaryCache(rdb)

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.exam = service.NewExamService(repos.exam)
	s.question = service.NewQuestionService(repos.question)
	s.response = service.NewResponseService(repos.response, cache)
	s.evaluation = service.NewEvaluationService(repos.response, service.RandomScorer{}, cache, cfg.Evaluation.Workers)

	a.RegisterConfigCallback(func(cfg *config.Config) {
		s.evaluation.SetWorkers(cfg.Evaluation.Workers)
	})

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		exam:       controller.NewExamController(s.exam),
		question:   controller.NewQuestionController(s.question),
		response:   controller.NewResponseController(s.response, s.storage),
		evaluation: controller.NewEvaluationController(s.evaluation),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 10000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("easyeval", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
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
