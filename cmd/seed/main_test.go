package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sahilchouksey/college-directory/config"
	"github.com/sahilchouksey/college-directory/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSeedsAndReleasesStore(t *testing.T) {
	cfg := &config.Config{
		GoEnv:    "test",
		DBDriver: config.DriverSQLite,
		DBPath:   filepath.Join(t.TempDir(), "seed.db"),
	}

	require.NoError(t, run(context.Background(), cfg, zerolog.Nop()))
	// second run finds the rows already there
	require.NoError(t, run(context.Background(), cfg, zerolog.Nop()))

	store, err := database.StartGORM(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer store.Close()

	colleges, err := store.ListColleges(context.Background())
	require.NoError(t, err)
	assert.Len(t, colleges, 3)

	courses, err := store.ListCourses(context.Background())
	require.NoError(t, err)
	assert.Len(t, courses, 4)
}

func TestRunReturnsStartupError(t *testing.T) {
	err := run(context.Background(), &config.Config{GoEnv: "test", DBDriver: "oracle"}, zerolog.Nop())
	assert.Error(t, err)
}
