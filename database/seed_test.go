package database

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedAll(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	seeder := NewSeeder(store.GetDB(), zerolog.Nop())

	require.NoError(t, seeder.SeedAll(ctx))

	colleges, err := store.ListColleges(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, colleges)
	assert.Equal(t, "Amity University Online", colleges[0].Name)
	assert.NotEmpty(t, colleges[0].CoursesOffered)

	courses, err := store.ListCourses(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, courses)

	t.Run("second run is a no-op", func(t *testing.T) {
		require.NoError(t, seeder.SeedAll(ctx))

		again, err := store.ListColleges(ctx)
		require.NoError(t, err)
		assert.Len(t, again, len(colleges))
	})
}
