package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/sahilchouksey/college-directory/api"
	"github.com/sahilchouksey/college-directory/config"
	"github.com/sahilchouksey/college-directory/database"
	"github.com/sahilchouksey/college-directory/router"
	"github.com/sahilchouksey/college-directory/utils"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	cfg, err := config.Get()
	if err != nil {
		return err
	}

	log := utils.NewLogger(cfg.LogLevel, cfg.IsProduction())

	// Initialize GORM database connection
	store, err := database.StartGORM(cfg, log)
	if err != nil {
		log.Error().Msg("check whether the database is running (make docker-up or make db-up)")
		return err
	}

	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("closing database failed")
		}
	}()

	if err := store.Init(); err != nil {
		log.Error().Err(err).Msg("failed to initialize database tables")
		return err
	}

	deps, cleanup, err := BuildDependencies(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	// Init API
	server := api.NewAPIServer(fmt.Sprintf(":%d", cfg.Port), log)

	// Setup Routes
	router.SetupRoutes(server.GetEngine(), store, deps)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
