package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"skillsetz_backend/internal/config"
	"skillsetz_backend/internal/controller"
	"skillsetz_backend/internal/repository"
	"skillsetz_backend/internal/service"
	"skillsetz_backend/pkg/database"
	"skillsetz_backend/pkg/logger"
	"skillsetz_backend/pkg/monitoring"
	"skillsetz_backend/pkg/security"
	"skillsetz_backend/pkg/tracing"
	"syscall"
	"time"

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
	user        *repository.UserRepository
	skill       *repository.SkillRepository
	question    *repository.QuestionRepository
	assessment  *repository.AssessmentRepository
	certificate *repository.CertificateRepository
}

type services struct {
	auth        *service.AuthService
	profile     *service.ProfileService
	skill       *service.SkillService
	question    *service.QuestionService
	importer    *service.QuestionImportService
	assessment  *service.AssessmentService
	certificate *service.CertificateService
	storage     service.StorageProvider
}

type controllers struct {
	auth        *controller.AuthController
	profile     *controller.ProfileController
	skill       *controller.SkillController
	question    *controller.QuestionController
	assessment  *controller.AssessmentController
	certificate *controller.CertificateController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig swaps in a hot-reloaded config and notifies listeners.
// Server port and database settings only take effect on restart.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		skill:       repository.NewSkillRepository(db),
		question:    repository.NewQuestionRepository(db),
		assessment:  repository.NewAssessmentRepository(db),
		certificate: repository.NewCertificateRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	storage, err := service.NewStorageProvider(&cfg.Storage)
	if err != nil {
		logger.Log.Fatal("Failed to initialize storage", zap.Error(err))
	}
	s.storage = storage

	s.auth = service.NewAuthService(repos.user, cfg)
	s.profile = service.NewProfileService(repos.user, s.storage)
	s.skill = service.NewSkillService(repos.skill, repos.user)
	s.question = service.NewQuestionService(repos.question, repos.skill)
	s.importer = service.NewQuestionImportService(repos.skill, repos.question)
	s.certificate = service.NewCertificateService(repos.certificate, repos.skill, repos.user, repos.skill)
	s.assessment = service.NewAssessmentService(repos.assessment, repos.question, repos.certificate, s.certificate, rdb)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		profile:     controller.NewProfileController(s.profile),
		skill:       controller.NewSkillController(s.skill),
		question:    controller.NewQuestionController(s.question, s.importer),
		assessment:  controller.NewAssessmentController(s.assessment),
		certificate: controller.NewCertificateController(s.certificate, s.assessment),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests == 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window == 0 {
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

	db, err := database.InitDB(cfg)
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
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("skillsetz-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" || cfg.Storage.Type == "" {
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
