package database

import (
	"context"
	"errors"
	"testing"

	"github.com/sahilchouksey/college-directory/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func strPtr(s string) *string { return &s }

func sampleCollege(name string, rank int) *model.College {
	return &model.College{
		Name:            name,
		Description:     "Distance learning programs",
		ApprovalType:    "UGC-DEB Approved",
		RankingPosition: rank,
		Website:         strPtr("https://example.edu"),
		WhyChoose:       datatypes.JSON(`["Flexible schedule","Recognised degree"]`),
	}
}

func TestCollegeGateway(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	t.Run("ListColleges on empty store returns empty slice", func(t *testing.T) {
		colleges, err := store.ListColleges(ctx)
		require.NoError(t, err)
		assert.NotNil(t, colleges)
		assert.Empty(t, colleges)
	})

	var created *model.College

	t.Run("CreateCollege assigns an id and GetCollege returns the same fields", func(t *testing.T) {
		var err error
		input := sampleCollege("Amity Online", 3)
		input.ID = 999 // ignored

		created, err = store.CreateCollege(ctx, input)
		require.NoError(t, err)
		require.NotZero(t, created.ID)
		assert.NotEqual(t, uint(999), created.ID)

		fetched, err := store.GetCollege(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.Equal(t, "Amity Online", fetched.Name)
		assert.Equal(t, "Distance learning programs", fetched.Description)
		assert.Equal(t, "UGC-DEB Approved", fetched.ApprovalType)
		assert.Equal(t, 3, fetched.RankingPosition)
		require.NotNil(t, fetched.Website)
		assert.Equal(t, "https://example.edu", *fetched.Website)
		assert.Nil(t, fetched.Location)
		assert.JSONEq(t, `["Flexible schedule","Recognised degree"]`, string(fetched.WhyChoose))
	})

	t.Run("GetCollege on absent id returns nil without error", func(t *testing.T) {
		fetched, err := store.GetCollege(ctx, 424242)
		assert.NoError(t, err)
		assert.Nil(t, fetched)
	})

	t.Run("UpdateCollege changes only the given columns", func(t *testing.T) {
		updated, err := store.UpdateCollege(ctx, created.ID, map[string]interface{}{
			"ranking_position": 1,
			"location":         "Noida, Uttar Pradesh",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, updated.RankingPosition)

		fetched, err := store.GetCollege(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, fetched.RankingPosition)
		require.NotNil(t, fetched.Location)
		assert.Equal(t, "Noida, Uttar Pradesh", *fetched.Location)
		assert.Equal(t, "Amity Online", fetched.Name)
		assert.Equal(t, "UGC-DEB Approved", fetched.ApprovalType)
		assert.Equal(t, "Distance learning programs", fetched.Description)
		require.NotNil(t, fetched.Website)
		assert.Equal(t, "https://example.edu", *fetched.Website)
	})

	t.Run("UpdateCollege with no changes returns current row", func(t *testing.T) {
		updated, err := store.UpdateCollege(ctx, created.ID, map[string]interface{}{})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, 1, updated.RankingPosition)
	})

	t.Run("UpdateCollege on absent id returns ErrNotFound", func(t *testing.T) {
		_, err := store.UpdateCollege(ctx, 424242, map[string]interface{}{"name": "Ghost"})
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = store.UpdateCollege(ctx, 424242, nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("UpdateCollege with unknown column is a store error", func(t *testing.T) {
		_, err := store.UpdateCollege(ctx, created.ID, map[string]interface{}{"no_such_column": 1})
		require.Error(t, err)
		assert.True(t, IsStoreError(err))
	})

	t.Run("DeleteCollege removes the row once", func(t *testing.T) {
		removed, err := store.DeleteCollege(ctx, created.ID)
		require.NoError(t, err)
		require.Len(t, removed, 1)
		assert.Equal(t, created.ID, removed[0].ID)

		fetched, err := store.GetCollege(ctx, created.ID)
		require.NoError(t, err)
		assert.Nil(t, fetched)

		removed, err = store.DeleteCollege(ctx, created.ID)
		require.NoError(t, err)
		assert.Empty(t, removed)
	})

	t.Run("ids are not reused after delete", func(t *testing.T) {
		next, err := store.CreateCollege(ctx, sampleCollege("NMIMS Global", 2))
		require.NoError(t, err)
		assert.Greater(t, next.ID, created.ID)
	})
}

func TestListCollegesOrderedByID(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	// ranking order deliberately differs from insertion order
	for i, rank := range []int{5, 1, 3, 2, 4} {
		_, err := store.CreateCollege(ctx, sampleCollege("College "+string(rune('A'+i)), rank))
		require.NoError(t, err)
	}

	colleges, err := store.ListColleges(ctx)
	require.NoError(t, err)
	require.Len(t, colleges, 5)
	for i := 1; i < len(colleges); i++ {
		assert.Less(t, colleges[i-1].ID, colleges[i].ID)
	}
}

func TestCollegeGatewayStoreFailure(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Close())

	_, err := store.ListColleges(ctx)
	require.Error(t, err)
	var se *StoreError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "list", se.Op)
	assert.Equal(t, "college", se.Entity)

	_, err = store.GetCollege(ctx, 1)
	assert.True(t, IsStoreError(err))

	_, err = store.CreateCollege(ctx, sampleCollege("Offline", 1))
	assert.True(t, IsStoreError(err))

	_, err = store.DeleteCollege(ctx, 1)
	assert.True(t, IsStoreError(err))
}
