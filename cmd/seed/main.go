package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/sahilchouksey/college-directory/config"
	"github.com/sahilchouksey/college-directory/database"
	"github.com/sahilchouksey/college-directory/utils"
)

func main() {
	if err := config.LoadENV(); err != nil {
		panic(err)
	}

	cfg, err := config.Get()
	if err != nil {
		panic(err)
	}

	log := utils.NewLogger(cfg.LogLevel, cfg.IsProduction())

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error().Err(err).Msg("seeding failed")
		os.Exit(1)
	}
}

// run migrates and seeds the configured store. The store is closed before it
// returns so main can exit on error.
func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	store, err := database.StartGORM(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("closing database failed")
		}
	}()

	if err := store.Init(); err != nil {
		return err
	}

	return database.NewSeeder(store.GetDB(), log).SeedAll(ctx)
}
