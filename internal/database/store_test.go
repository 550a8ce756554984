package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreConformance exercises the Store contract against any adapter.
// The store must be empty for the collections used here.
func runStoreConformance(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("EmptyCollection", func(t *testing.T) {
		records, err := store.Get(ctx, "empty")
		require.NoError(t, err)
		assert.Empty(t, records)

		_, err = store.GetByID(ctx, "empty", 1)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("CreateAssignsSequentialIDs", func(t *testing.T) {
		first, err := store.Create(ctx, "seq", Record{"name": "first", "episodes_seen": 1})
		require.NoError(t, err)
		second, err := store.Create(ctx, "seq", Record{"name": "second", "episodes_seen": 2})
		require.NoError(t, err)

		firstID, ok := first.ID()
		require.True(t, ok)
		secondID, ok := second.ID()
		require.True(t, ok)

		assert.Equal(t, 1, firstID)
		assert.Equal(t, 2, secondID)
		assert.Equal(t, "first", first["name"])
	})

	t.Run("CreateIgnoresSuppliedID", func(t *testing.T) {
		rec, err := store.Create(ctx, "supplied", Record{"id": 99, "name": "x"})
		require.NoError(t, err)

		id, ok := rec.ID()
		require.True(t, ok)
		assert.Equal(t, 1, id)
	})

	t.Run("GetReturnsAscendingIDs", func(t *testing.T) {
		for _, name := range []string{"a", "b", "c"} {
			_, err := store.Create(ctx, "ordered", Record{"name": name})
			require.NoError(t, err)
		}

		records, err := store.Get(ctx, "ordered")
		require.NoError(t, err)
		require.Len(t, records, 3)

		for i, rec := range records {
			id, ok := rec.ID()
			require.True(t, ok)
			assert.Equal(t, i+1, id)
		}
		assert.Equal(t, "c", records[2]["name"])
	})

	t.Run("UpdateMergesPatch", func(t *testing.T) {
		created, err := store.Create(ctx, "updates", Record{"name": "before", "episodes_seen": 4})
		require.NoError(t, err)
		id, _ := created.ID()

		updated, err := store.UpdateByID(ctx, "updates", id, Record{"name": "after", "id": 500})
		require.NoError(t, err)

		updatedID, ok := updated.ID()
		require.True(t, ok)
		assert.Equal(t, id, updatedID)
		assert.Equal(t, "after", updated["name"])
		episodes, ok := toInt(updated["episodes_seen"])
		require.True(t, ok)
		assert.Equal(t, 4, episodes)

		fetched, err := store.GetByID(ctx, "updates", id)
		require.NoError(t, err)
		assert.Equal(t, "after", fetched["name"])
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		_, err := store.UpdateByID(ctx, "updates", 12345, Record{"name": "ghost"})
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = store.GetByID(ctx, "updates", 12345)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("DeleteThenGet", func(t *testing.T) {
		created, err := store.Create(ctx, "deletes", Record{"name": "doomed"})
		require.NoError(t, err)
		id, _ := created.ID()

		require.NoError(t, store.DeleteByID(ctx, "deletes", id))

		_, err = store.GetByID(ctx, "deletes", id)
		assert.ErrorIs(t, err, ErrNotFound)

		err = store.DeleteByID(ctx, "deletes", id)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("DeletedIDsAreNotReused", func(t *testing.T) {
		first, err := store.Create(ctx, "reuse", Record{"name": "one"})
		require.NoError(t, err)
		second, err := store.Create(ctx, "reuse", Record{"name": "two"})
		require.NoError(t, err)
		secondID, _ := second.ID()

		require.NoError(t, store.DeleteByID(ctx, "reuse", secondID))

		third, err := store.Create(ctx, "reuse", Record{"name": "three"})
		require.NoError(t, err)
		firstID, _ := first.ID()
		thirdID, _ := third.ID()

		assert.Equal(t, 1, firstID)
		assert.Equal(t, 3, thirdID)
	})

	t.Run("Ping", func(t *testing.T) {
		assert.NoError(t, store.Ping(ctx))
	})
}
