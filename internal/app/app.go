package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quiz_progress_backend/internal/config"
	"quiz_progress_backend/internal/controller"
	"quiz_progress_backend/internal/middleware"
	"quiz_progress_backend/internal/repository"
	"quiz_progress_backend/internal/service"
	"quiz_progress_backend/pkg/configwatcher"
	"quiz_progress_backend/pkg/database"
	"quiz_progress_backend/pkg/logger"
	"quiz_progress_backend/pkg/monitoring"
	"quiz_progress_backend/pkg/security"
	"quiz_progress_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	limiter         *security.RateLimiter
	tracer          *sdktrace.TracerProvider
	cron            *cron.Cron
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user   *repository.UserRepository
	quiz   *repository.QuizRepository
	answer *repository.AnswerRepository
}

type services struct {
	user   *service.UserService
	quiz   *service.QuizService
	answer *service.AnswerService
}

type controllers struct {
	user   *controller.UserController
	quiz   *controller.QuizController
	answer *controller.AnswerController
	health *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	return &repositories{
		user:   repository.NewUserRepository(db),
		quiz:   repository.NewQuizRepository(db, repository.NewQuizCache(rdb, cfg.Redis.QuizTTL)),
		answer: repository.NewAnswerRepository(db),
	}
}

func (a *App) initServices(repos *repositories, db *gorm.DB) *services {
	return &services{
		user:   service.NewUserService(repos.user, repos.quiz, db),
		quiz:   service.NewQuizService(repos.quiz, repos.answer, repos.user),
		answer: service.NewAnswerService(repos.answer, repos.quiz, repos.user, db),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		user:   controller.NewUserController(s.user),
		quiz:   controller.NewQuizController(s.quiz),
		answer: controller.NewAnswerController(s.answer),
		health: controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(a.limiter.Handler())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks(cfg *config.Config) error {
	c := cron.New()
	if _, err := c.AddFunc(cfg.Jobs.ActiveSessionsSpec, func() {
		if err := a.services.answer.RefreshActiveSessions(context.Background()); err != nil {
			logger.Log.Error("refresh active sessions error", zap.Error(err))
		}
	}); err != nil {
		return err
	}
	// 清理长时间未访问的限流桶
	if _, err := c.AddFunc("@every 10m", func() {
		a.limiter.Cleanup(time.Now())
	}); err != nil {
		return err
	}
	c.Start()
	a.cron = c
	return nil
}

// New 使用已建立的连接组装应用，不启动后台任务
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	app := &App{
		Config:  cfg,
		DB:      db,
		Redis:   rdb,
		limiter: security.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimitWindow()),
	}

	repos := app.initRepositories(db, rdb, cfg)
	app.services = app.initServices(repos, db)
	controllers := app.initControllers(app.services, db)

	// 监控初始化
	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	app.RegisterConfigCallback(logger.SetLevel)
	app.RegisterConfigCallback(func(c *config.Config) {
		app.limiter.Update(c.RateLimit.MaxRequests, c.RateLimitWindow())
	})

	return app
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := New(cfg, db, rdb)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	if err := app.startBackgroundTasks(cfg); err != nil {
		logger.Log.Fatal("Failed to schedule background tasks", zap.Error(err))
	}

	return app
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Config reloaded", zap.String("level", logger.Level().String()))
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	go func() {
		if err := configwatcher.WatchConfig(watchCtx, a.Config.ConfigFile, a.applyConfig); err != nil {
			logger.Log.Warn("Config watcher stopped", zap.Error(err))
		}
	}()

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	if a.cron != nil {
		<-a.cron.Stop().Done()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}

	logger.Log.Info("Server exiting")
}
