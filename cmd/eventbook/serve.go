package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/eventbook/internal/httpapi"
	"github.com/mesh-intelligence/eventbook/internal/jsonfile"
	"github.com/mesh-intelligence/eventbook/internal/service"
	"github.com/mesh-intelligence/eventbook/internal/sqlite"
	"github.com/mesh-intelligence/eventbook/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Serve opens the configured storage backend, wires the entity
services, and listens for HTTP requests until interrupted.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// Optional .env in the working directory; absence is fine.
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	server := httpapi.New(service.NewRegistry(store, cfg.StrictValidation), log)

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.Handler(),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.ListenAddr, "backend", cfg.Backend)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// openStore picks the backend implementation from config.
func openStore(cfg types.Config) (types.Store, error) {
	switch cfg.Backend {
	case types.BackendJSONFile:
		return jsonfile.Open(cfg)
	case types.BackendSQLite:
		return sqlite.Open(cfg)
	default:
		return nil, types.ErrBackendUnknown
	}
}
