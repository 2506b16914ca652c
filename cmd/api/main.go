package main

import (
	"context"
	"os"

	"github.com/qasyoun/qasyounextra/internal/pkg/logger"
	"github.com/qasyoun/qasyounextra/internal/server"
)

// @title Qasyoun Extra API
// @version 1.0
// @description API for the Qasyoun Extra e-learning marketplace

// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		// logger's init configured a default output before config was read
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// blocks until SIGINT/SIGTERM
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
