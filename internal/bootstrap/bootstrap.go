package bootstrap

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "prospecta/docs" // generated swagger docs
	"prospecta/internal/app/controllers"
	"prospecta/internal/app/migrations"
	"prospecta/internal/app/repositories"
	"prospecta/internal/app/routes"
	"prospecta/internal/app/services"
	"prospecta/internal/config"
	"prospecta/internal/db"
	"prospecta/internal/middleware"
	"prospecta/internal/pkg/cache"
	"prospecta/internal/pkg/helpers"
	"prospecta/internal/pkg/logger"
	"prospecta/internal/pkg/metrics"
)

// migrationsDir holds the SQL migration files, relative to the working
// directory the binary starts in.
const migrationsDir = "migrations"

// ConfigureLogger applies the logging section of the configuration
func ConfigureLogger(cfg *config.Config) {
	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format == "pretty",
	})
}

// SetupDatabase opens the connection pool and applies pending
// migrations
func SetupDatabase(ctx context.Context, cfg *config.Config) (*db.PostgresDB, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, err
	}

	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDir(ctx, migrationsDir); err != nil {
		database.Close()
		return nil, err
	}

	return database, nil
}

// SetupCache connects the redis read cache. An empty address disables
// caching; connection failures only log a warning so the API still
// serves without redis.
func SetupCache(ctx context.Context, cfg *config.Config) *cache.Cache {
	if cfg.Redis.Addr == "" {
		logger.Info().Msg("Redis address not configured, running without cache")
		return nil
	}

	ttl := helpers.ParseDuration(cfg.Redis.TTL, 5*time.Minute)
	c, err := cache.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, ttl)
	if err != nil {
		logger.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unavailable, running without cache")
		return nil
	}

	logger.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", ttl).Msg("Redis cache connected")
	return c
}

// SetupRouter wires repositories, services, controllers and middleware
// into a ready gin engine
func SetupRouter(cfg *config.Config, database *db.PostgresDB, c *cache.Cache) *gin.Engine {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	repos := repositories.NewRepositories(database.Pool)
	svcs := services.NewServices(repos, database, c)
	ctrl := controllers.NewControllers(svcs)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(metrics.New().Handler())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRouter(router, ctrl, cfg.API.Key)

	return router
}
