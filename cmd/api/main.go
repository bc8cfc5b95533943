package main

import (
	"os"

	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/pkg/logger"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/server"
)

// @title Student Project Allocation System API
// @version 1.0
// @description API for allocating final-year students to supervised projects

// @contact.name API Support

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
	// NewServer orchestrates LoadConfigAndSetupLogger, SetupStore,
	// BuildDependencies and SetupRouter.
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
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
