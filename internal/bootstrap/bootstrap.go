package bootstrap

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/controllers"
	appRoutes "github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/routes"
	appServices "github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/services"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/store"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/config"
	appMiddleware "github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/middleware"
	pkgAuth "github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/pkg/auth"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/pkg/helpers"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	UserService          appServices.UserService
	ProjectService       appServices.ProjectService
	AllocationService    appServices.AllocationService
	ReportService        appServices.ReportService
	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	ProjectController    *appControllers.ProjectController
	AllocationController *appControllers.AllocationController
	ReportController     *appControllers.ReportController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Store                *store.Store
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A local .env file overrides nothing that is already exported
	if err := godotenv.Load(); err == nil {
		logger.Info().Msg("Loaded environment from .env file")
	}

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore opens the snapshot database and loads the entity collections
// into memory, seeding defaults for any collection that has no snapshot.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*store.Store, *store.SnapshotStore, error) {
	lgr.Info().Str("path", cfg.Snapshot.Path).Msg("Opening snapshot store...")
	snapshots, err := store.NewSnapshotStore(cfg.Snapshot.Path)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open snapshot store")
		return nil, nil, err
	}

	st := store.New(snapshots, lgr)
	lgr.Info().Msg("Entity store loaded.")
	return st, snapshots, nil
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(cfg *config.Config, st *store.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Store: st}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(st, lgr)
	deps.UserService = appServices.NewUserService(st)
	deps.ProjectService = appServices.NewProjectService(st)
	deps.AllocationService = appServices.NewAllocationService(st, lgr)
	deps.ReportService = appServices.NewReportService(st)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.JWTService, deps.Logger)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.ProjectController = appControllers.NewProjectController(deps.ProjectService)
	deps.AllocationController = appControllers.NewAllocationController(deps.AllocationService)
	deps.ReportController = appControllers.NewReportController(deps.ReportService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// Setup Swagger
	appRoutes.SetupSwagger(router)

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.ProjectController,
		deps.AllocationController,
		deps.ReportController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
