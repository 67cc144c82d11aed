package app

import (
	"fmt"
	"net/http"

	"campaignhub_backend/internal/config"
	"campaignhub_backend/internal/handlers"
	"campaignhub_backend/internal/logger"
	"campaignhub_backend/internal/middleware"
	"campaignhub_backend/internal/repositories"
	"campaignhub_backend/internal/repositories/memory"
	"campaignhub_backend/internal/routes"
	"campaignhub_backend/internal/services"
	"campaignhub_backend/internal/validator"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const sessionCookieName = "campaignhub_session"

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	store, err := NewStore(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize store", "error", err)
	}

	ginRouter := SetupRouter(cfg, store)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// NewStore выбирает реализацию хранилища по database.driver
func NewStore(cfg *config.Config) (repositories.Store, error) {
	switch cfg.Database.Driver {
	case "memory":
		logger.Info("Using in-memory store")
		return memory.NewStore(), nil

	case "postgres":
		logger.Info("Connecting to database...")
		gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get *sql.DB: %w", err)
		}
		if err := sqlDB.Ping(); err != nil {
			return nil, fmt.Errorf("database unavailable: %w", err)
		}
		if err := repositories.AutoMigrate(gormDB); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Info("Database connected")
		return repositories.NewGormStore(gormDB), nil

	default:
		return nil, fmt.Errorf("unknown database driver: %q", cfg.Database.Driver)
	}
}

func SetupRouter(cfg *config.Config, store repositories.Store) *gin.Engine {
	serviceContainer := services.NewServiceContainer(store)

	base := handlers.NewBaseHandler(validator.New())
	appHandlers := handlers.NewAppHandlers(base, serviceContainer)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())

	sessionStore := cookie.NewStore([]byte(cfg.Session.Secret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.TTLHours * 3600,
		HttpOnly: true,
		Secure:   cfg.Server.Env == "production",
		SameSite: http.SameSiteLaxMode,
	})
	ginRouter.Use(sessions.Sessions(sessionCookieName, sessionStore))

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}
