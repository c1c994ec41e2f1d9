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

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"github.com/opennotes/backend/internal/bootstrap"
	"github.com/opennotes/backend/internal/config"
	"github.com/opennotes/backend/internal/pkg/logger"
	"github.com/opennotes/backend/internal/seed"
)

// Server holds the state for the HTTP server.
type Server struct {
	config   *config.Config
	router   *gin.Engine
	fsClient *firestore.Client
	deps     *bootstrap.Dependencies
	http     *http.Server
}

// NewServer creates and initializes a new server instance by calling bootstrap functions.
func NewServer() (*Server, error) {
	cfg, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	ctx := context.Background()

	fsClient, err := bootstrap.SetupFirestore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to setup document store: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(ctx, cfg, fsClient)
	if err != nil {
		fsClient.Close()
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	// Seeding failures are not fatal; the app works with an empty
	// subject list, it is just less friendly.
	if err := seed.CreateDefaultData(ctx, deps.Repos); err != nil {
		logger.Warn().Err(err).Msg("Default data seeding incomplete")
	}

	router := bootstrap.SetupRouter(cfg, deps)

	return &Server{
		config:   cfg,
		router:   router,
		fsClient: fsClient,
		deps:     deps,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown.
func (s *Server) Run() error {
	logger.Info().Str("port", s.config.Server.Port).Msg("Starting server...")

	s.http = &http.Server{
		Addr:        ":" + s.config.Server.Port,
		Handler:     s.router,
		ReadTimeout: 30 * time.Second,
		// Completion calls can run long; the write timeout must outlast
		// the configured completion timeout.
		WriteTimeout: s.config.Gemini.Timeout + 30*time.Second,
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
		logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server and closes resources.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	shutdownError := false

	if s.http != nil {
		logger.Info().Msg("Shutting down HTTP server...")
		if err := s.http.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownError = true
		} else {
			logger.Info().Msg("HTTP server gracefully stopped.")
		}
	}

	if s.deps != nil && s.deps.BlobStore != nil {
		if err := s.deps.BlobStore.Close(); err != nil {
			logger.Error().Err(err).Msg("Blob storage client close error")
			shutdownError = true
		}
	}

	if s.fsClient != nil {
		logger.Info().Msg("Closing document store client...")
		if err := s.fsClient.Close(); err != nil {
			logger.Error().Err(err).Msg("Document store client close error")
			shutdownError = true
		}
	}

	logger.Info().Msg("Server shutdown process complete.")
	if shutdownError {
		return errors.New("server shutdown completed with errors")
	}
	return nil
}
