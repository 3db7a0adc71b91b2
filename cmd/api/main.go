package main

import (
	"os"

	"github.com/bimt/campushub/internal/pkg/logger"
	"github.com/bimt/campushub/internal/server"
)

// @title CampusHub API
// @version 1.0
// @description Backend API for the BIMT Campus Hub student association portal

// @contact.name BIMT Campus Hub Team
// @contact.email campushub@bimt.edu

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
