package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/qasyoun/qasyounextra/internal/app/auth"
	appControllers "github.com/qasyoun/qasyounextra/internal/app/controllers"
	appMigrations "github.com/qasyoun/qasyounextra/internal/app/migrations"
	appRepos "github.com/qasyoun/qasyounextra/internal/app/repositories"
	"github.com/qasyoun/qasyounextra/internal/app/repositories/memory"
	"github.com/qasyoun/qasyounextra/internal/app/repositories/postgres"
	appRoutes "github.com/qasyoun/qasyounextra/internal/app/routes"
	appServices "github.com/qasyoun/qasyounextra/internal/app/services"
	"github.com/qasyoun/qasyounextra/internal/config"
	"github.com/qasyoun/qasyounextra/internal/db"
	appMiddleware "github.com/qasyoun/qasyounextra/internal/middleware"
	pkgAuth "github.com/qasyoun/qasyounextra/internal/pkg/auth"
	"github.com/qasyoun/qasyounextra/internal/pkg/helpers"
	"github.com/qasyoun/qasyounextra/internal/pkg/logger"
	"github.com/qasyoun/qasyounextra/internal/pkg/websocket"
	"github.com/qasyoun/qasyounextra/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Storage appRepos.Storage

	AuthService     appServices.AuthService
	UserService     appServices.UserService
	CatalogService  appServices.CatalogService
	LearningService appServices.LearningService
	MessageService  appServices.MessageService

	Hub            *websocket.Hub
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	AuthzService   *appAuth.AuthorizationService
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SelectStorage picks the backend for this process. A configured and reachable
// database gets the persistent repository with migrations applied; anything
// else falls back to the in-memory repository. An unreachable database is not
// an error, but a failed migration is.
func SelectStorage(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (appRepos.Storage, error) {
	if cfg.Database.URL == "" {
		lgr.Info().Msg("No database URL configured, using in-memory storage")
		return newMemoryStorage(ctx, cfg, lgr)
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Warn().Err(err).Msg("Database unavailable, falling back to in-memory storage")
		return newMemoryStorage(ctx, cfg, lgr)
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database.Pool).Apply(ctx); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return postgres.New(database.Pool), nil
}

func newMemoryStorage(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (appRepos.Storage, error) {
	var opts []memory.Option
	if cfg.Storage.EnforceUniqueness {
		opts = append(opts, memory.WithUniqueness())
	}
	store := memory.New(opts...)

	if cfg.Storage.SeedSampleData {
		if err := seed.NewSeeder(store, lgr).Run(ctx); err != nil {
			return nil, fmt.Errorf("failed to seed sample data: %w", err)
		}
	}

	lgr.Info().
		Bool("enforcesUniqueness", store.Capabilities().EnforcesUniqueness).
		Bool("sampleData", cfg.Storage.SeedSampleData).
		Msg("In-memory storage ready")
	return store, nil
}

// BuildDependencies initializes services and controllers over the selected storage.
// The caller runs deps.Hub.
func BuildDependencies(cfg *config.Config, store appRepos.Storage, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Storage: store, Logger: lgr}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(store, store, deps.JWTService, lgr)
	deps.UserService = appServices.NewUserService(store, store, store)
	deps.AuthzService = appAuth.NewAuthorizationService(store, store)
	deps.CatalogService = appServices.NewCatalogService(store, deps.AuthzService)
	deps.LearningService = appServices.NewLearningService(store, store, store)
	deps.Hub = websocket.NewHub(lgr)
	deps.MessageService = appServices.NewMessageService(store, store, deps.Hub)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = appRoutes.Controllers{
		Auth:     appControllers.NewAuthController(deps.AuthService, lgr),
		User:     appControllers.NewUserController(deps.UserService),
		Catalog:  appControllers.NewCatalogController(deps.CatalogService, lgr),
		Learning: appControllers.NewLearningController(deps.LearningService),
		Message:  appControllers.NewMessageController(deps.MessageService),
		Live:     websocket.NewHandler(deps.Hub, lgr),
	}

	return deps
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

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
