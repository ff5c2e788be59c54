package main

import (
	"os"

	"github.com/meridian/campusops/internal/pkg/logger"
	"github.com/meridian/campusops/internal/server"
)

// @title CampusOps API
// @version 1.0
// @description School administration backend covering admissions, clock-hour attendance, document compliance, financial aid, and audit readiness.

// @contact.name API Support
// @contact.email support@campusops.app

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

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
