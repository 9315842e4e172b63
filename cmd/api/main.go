package main

import (
	"os"

	"prospecta/internal/pkg/logger"
	"prospecta/internal/server"
)

// @title Prospecta API
// @version 1.0
// @description API for managing student prospecting: schools, formations, recruiting events, students and their event interactions.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Static API key, sent as "ApiKey <key>"

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
}
