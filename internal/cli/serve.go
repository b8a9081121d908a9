package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"customer-contract-portal/internal/adapters/storage/postgres"
	"customer-contract-portal/internal/adapters/storage/sqlite"
	"customer-contract-portal/internal/adapters/storage/sqlstore"
	"customer-contract-portal/internal/platform/config"
	"customer-contract-portal/internal/platform/logger"
	"customer-contract-portal/internal/platform/paging"
	"customer-contract-portal/internal/router"

	"github.com/spf13/cobra"
)

func NewServeCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.ConfigFile)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	defer func() { _ = log.Sync() }()

	db, dialect, err := openStorage(cfg.Storage)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	handler := router.NewRouter(router.Options{
		DB:          db,
		Dialect:     dialect,
		Logger:      log,
		Paging:      paging.Bounds{Max: cfg.Paging.MaxLimit, Default: cfg.Paging.DefaultLimit},
		CORSOrigins: cfg.CORS.AllowedOrigins,
		Version:     Version,
	})

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":    cfg.HTTP.Addr,
			"storage": cfg.Storage.Driver,
			"version": Version,
		})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", map[string]any{"timeout": cfg.HTTP.ShutdownTimeout.String()})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openStorage devuelve db=nil para el driver memory (el router usa el store in-memory).
func openStorage(s config.Storage) (*sql.DB, sqlstore.Dialect, error) {
	switch s.Driver {
	case config.DriverMemory, "":
		return nil, 0, nil
	case config.DriverPostgres:
		db, err := postgres.Open(s.DSN)
		if err != nil {
			return nil, 0, fmt.Errorf("open postgres: %w", err)
		}
		return db, sqlstore.Postgres, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(s.DSN)
		if err != nil {
			return nil, 0, fmt.Errorf("open sqlite: %w", err)
		}
		return db, sqlstore.SQLite, nil
	default:
		return nil, 0, fmt.Errorf("unknown storage driver %q", s.Driver)
	}
}
