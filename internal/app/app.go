package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lyn_studio_backend/internal/config"
	"lyn_studio_backend/internal/controller"
	"lyn_studio_backend/internal/navigation"
	"lyn_studio_backend/internal/repository"
	"lyn_studio_backend/internal/service"
	"lyn_studio_backend/pkg/database"
	"lyn_studio_backend/pkg/logger"
	"lyn_studio_backend/pkg/monitoring"
	"lyn_studio_backend/pkg/security"
	"lyn_studio_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *gorm.DB
	Machine *navigation.Machine

	configCallbacks []func(*config.Config)
}

type repositories struct {
	problem  *repository.ProblemRepository
	log      *repository.LogRepository
	resource *repository.ResourceRepository
	notebook *repository.NotebookRepository
	note     *repository.NoteRepository
}

type services struct {
	problem   *service.ProblemService
	calendar  *service.CalendarService
	resource  *service.ResourceService
	notebook  *service.NotebookService
	dashboard *service.DashboardService
	lookup    *service.NavigationLookup
}

type controllers struct {
	view     *controller.ViewController
	problem  *controller.ProblemController
	resource *controller.ResourceController
	notebook *controller.NotebookController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置文件热更新后的回调入口
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Config reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		problem:  repository.NewProblemRepository(db),
		log:      repository.NewLogRepository(db),
		resource: repository.NewResourceRepository(db),
		notebook: repository.NewNotebookRepository(db),
		note:     repository.NewNoteRepository(db),
	}
}

func (a *App) initServices(repos *repositories) *services {
	s := &services{}

	s.problem = service.NewProblemService(repos.problem, repos.log)
	s.calendar = service.NewCalendarService(repos.log)
	s.resource = service.NewResourceService(repos.resource)
	s.notebook = service.NewNotebookService(repos.notebook, repos.note)
	s.dashboard = service.NewDashboardService(repos.problem, repos.resource, repos.notebook, repos.log)
	s.lookup = service.NewNavigationLookup(repos.problem, repos.notebook, repos.note)

	return s
}

func (a *App) initControllers(s *services, machine *navigation.Machine, db *gorm.DB) *controllers {
	return &controllers{
		view:     controller.NewViewController(machine, s.problem, s.resource, s.notebook, s.calendar, s.dashboard),
		problem:  controller.NewProblemController(s.problem, machine),
		resource: controller.NewResourceController(s.resource, machine),
		notebook: controller.NewNotebookController(s.notebook, machine),
		health:   controller.NewHealthController(db),
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

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{
		Config:  cfg,
		DB:      db,
		Machine: nil,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos)

	// 单用户会话：整个进程持有一个导航状态机，初始状态为仪表盘
	machine := navigation.NewMachine(services.lookup)
	app.Machine = machine

	controllers := app.initControllers(services, machine, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("lyn-studio", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

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

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
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
