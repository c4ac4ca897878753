package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/searchpro-api/api"
	"github.com/spf13/cobra"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the SearchPro API server with the configured settings.

The search endpoint answers at / and /api/v1/search. Health, version
and Swagger documentation are served alongside.

Example:
  searchpro-api serve
  searchpro-api serve --port 9090
  searchpro-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Flags override config values
	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}

	logger := newLogger(cmd, cfg, os.Stdout)
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	deps := newDependencies(cfg)
	srv := api.NewServer(cfg, deps, logger)
	if err := srv.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	logger.Info().
		Str("addr", srv.Addr()).
		Str("provider", deps.Provider.BaseURL).
		Str("version", Version).
		Msg("Server is ready to handle requests")

	// Wait for interrupt signal or server error
	var runErr error
	select {
	case <-ctx.Done():
		logger.Info().Msg("Shutting down server")
	case runErr = <-serverErr:
		logger.Error().Err(runErr).Msg("Server failed, shutting down")
	}

	// Create a context with timeout for shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
		return err
	}

	logger.Info().Msg("Server gracefully stopped")
	return runErr
}
