package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mem "dogshelter/internal/adapters/storage/memory"
	pg "dogshelter/internal/adapters/storage/postgres"
	lite "dogshelter/internal/adapters/storage/sqlite"
	"dogshelter/internal/platform/config"
	"dogshelter/internal/platform/logger"
	"dogshelter/internal/platform/metrics"
	"dogshelter/internal/router"
)

// @title Dog Shelter API
// @version 1.0
// @description Read-only listing API for adoptable dogs and their breeds.
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dogshelter: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	opts := router.Options{
		Logger:  log,
		Driver:  cfg.DBDriver,
		Swagger: cfg.SwaggerEnabled,
	}
	if cfg.MetricsEnabled {
		opts.Metrics = metrics.NewManager(metrics.WithRuntimeCollectors())
	}

	db, err := openStore(cfg, &opts)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr, "db_driver": cfg.DBDriver})
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

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore deja en opts los repos (memory) o la DB abierta (sqlite/postgres).
func openStore(cfg *config.Config, opts *router.Options) (*sql.DB, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return nil, err
		}
		opts.DB = db
		return db, nil

	case config.DriverMemory:
		s := mem.NewStore()
		if cfg.SeedFile != "" {
			loaded, err := mem.LoadFixture(cfg.SeedFile)
			if err != nil {
				return nil, err
			}
			s = loaded
		}
		opts.Dogs = mem.NewDogRepo(s)
		opts.Breeds = mem.NewBreedRepo(s)
		return nil, nil

	default:
		db, err := lite.Open(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		opts.DB = db
		return db, nil
	}
}
