package main

import (
	"os"

	"github.com/opennotes/backend/internal/pkg/logger"
	"github.com/opennotes/backend/internal/server"
)

// @title OpenNotes API
// @version 1.0
// @description Notes sharing backend with document upload, admin approval and a notes-grounded chat endpoint.

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal arrives.
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
