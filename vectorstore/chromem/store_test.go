package chromem

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidbinfarooq/ai/schema"
	"github.com/junaidbinfarooq/ai/vectorstore"
)

func TestChromemStore_AddAndQuery(t *testing.T) {
	ctx := context.Background()

	store, err := NewChromemStore("", "test-collection", 3)
	require.NoError(t, err)
	require.NotNil(t, store)

	docs := []schema.Document{
		{
			ID:       "1",
			Vector:   []float64{1.0, 0.0, 0.0},
			Metadata: map[string]any{"title": "Heat", "year": 1995.0},
		},
		{
			ID:       "2",
			Vector:   []float64{0.0, 1.0, 0.0},
			Metadata: map[string]any{"title": "Alien", "year": 1979.0},
		},
	}

	require.NoError(t, store.Add(ctx, docs))

	results, err := store.Query(ctx, []float64{1.0, 0.0, 0.0}, &vectorstore.QueryOptions{MaxItems: 1})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "1", results[0].ID)
	assert.Equal(t, "Heat", results[0].Metadata["title"])
	assert.Equal(t, 1995.0, results[0].Metadata["year"])
	assert.InDelta(t, 1.0, results[0].Score, 0.0001)
}

func TestChromemStore_SkipsMismatchedVectors(t *testing.T) {
	ctx := context.Background()

	store, err := NewChromemStore("", "mismatch-collection", 2)
	require.NoError(t, err)

	docs := []schema.Document{
		{ID: "ok", Vector: []float64{0.5, 0.5}, Metadata: map[string]any{}},
		{ID: "short", Vector: []float64{0.5}, Metadata: map[string]any{}},
	}
	require.NoError(t, store.Add(ctx, docs))

	results, err := store.Query(ctx, []float64{0.5, 0.5}, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "ok", results[0].ID)
}

func TestChromemStore_MinScoreFilter(t *testing.T) {
	ctx := context.Background()

	store, err := NewChromemStore("", "score-collection", 2)
	require.NoError(t, err)

	docs := []schema.Document{
		{ID: "near", Vector: []float64{1.0, 0.0}, Metadata: map[string]any{}},
		{ID: "far", Vector: []float64{-1.0, 0.0}, Metadata: map[string]any{}},
	}
	require.NoError(t, store.Add(ctx, docs))

	results, err := store.Query(ctx, []float64{1.0, 0.0}, &vectorstore.QueryOptions{MinScore: 0.5})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "near", results[0].ID)
}

func TestChromemStore_QueryDimensionMismatch(t *testing.T) {
	store, err := NewChromemStore("", "dim-collection", 3)
	require.NoError(t, err)

	_, err = store.Query(context.Background(), []float64{1.0}, nil)
	require.ErrorIs(t, err, vectorstore.ErrDimensionMismatch)
}

func TestChromemStore_EmptyCollection(t *testing.T) {
	store, err := NewChromemStore("", "empty-collection", 2)
	require.NoError(t, err)

	results, err := store.Query(context.Background(), []float64{1.0, 0.0}, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
