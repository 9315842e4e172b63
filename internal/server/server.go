package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"prospecta/internal/bootstrap"
	"prospecta/internal/config"
	"prospecta/internal/db"
	"prospecta/internal/pkg/cache"
	"prospecta/internal/pkg/logger"
)

// defaultConfigPath is used when PROSPECTA_CONFIG is not set.
const defaultConfigPath = "configs/config.yaml"

// Server owns the HTTP server and the resources it serves from
type Server struct {
	config   *config.Config
	router   *gin.Engine
	database *db.PostgresDB
	cache    *cache.Cache
	http     *http.Server
}

// NewServer loads configuration and assembles the full application
func NewServer() (*Server, error) {
	configPath := os.Getenv("PROSPECTA_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	bootstrap.ConfigureLogger(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := bootstrap.SetupDatabase(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	c := bootstrap.SetupCache(ctx, cfg)

	router := bootstrap.SetupRouter(cfg, database, c)

	return &Server{
		config:   cfg,
		router:   router,
		database: database,
		cache:    c,
	}, nil
}

// Run starts the HTTP server and blocks until shutdown
func (s *Server) Run() error {
	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		logger.Info().Str("signal", sig.String()).Msg("Received OS signal, shutting down")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server and closes resources
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var shutdownErr error

	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownErr = err
		}
	}

	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close cache connection")
		}
	}

	if s.database != nil {
		s.database.Close()
	}

	logger.Info().Msg("Server shutdown complete")
	if shutdownErr != nil {
		return errors.New("server shutdown completed with errors")
	}
	return nil
}
