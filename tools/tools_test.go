package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidbinfarooq/ai/embedding"
	"github.com/junaidbinfarooq/ai/schema"
	"github.com/junaidbinfarooq/ai/vectorstore"
)

// stubStore records the query it received and returns canned results.
type stubStore struct {
	results    []schema.QueryResult
	err        error
	gotVector  []float64
	gotOptions *vectorstore.QueryOptions
}

func (s *stubStore) Add(ctx context.Context, docs []schema.Document) error {
	return nil
}

func (s *stubStore) Query(ctx context.Context, vector []float64, opts *vectorstore.QueryOptions) ([]schema.QueryResult, error) {
	s.gotVector = vector
	s.gotOptions = opts
	return s.results, s.err
}

func TestSearchTool_Call(t *testing.T) {
	store := &stubStore{
		results: []schema.QueryResult{
			{
				ID:       "1",
				Metadata: map[string]any{"title": "Heat", "year": 1995},
				Score:    0.9,
			},
			{
				ID:       "2",
				Metadata: map[string]any{"title": "Inception", "year": 2010},
				Score:    0.8,
			},
		},
	}
	embedder := &embedding.MockEmbeddingModel{Embedding: []float64{0.1, 0.2}}

	tool := NewSearchTool(store, embedder, WithSearchTopK(2), WithSearchMinScore(0.5))

	output, err := tool.Call(context.Background(), "heist movies")
	require.NoError(t, err)
	require.False(t, output.IsError)

	assert.Equal(t, []float64{0.1, 0.2}, store.gotVector)
	assert.Equal(t, 2, store.gotOptions.MatchCount())
	assert.Equal(t, 0.5, store.gotOptions.Threshold())

	assert.Contains(t, output.Content, "title: Heat")
	assert.Contains(t, output.Content, "year: 1995")
	assert.Contains(t, output.Content, "title: Inception")
	assert.Equal(t, map[string]any{"input": "heist movies"}, output.RawInput)
}

func TestSearchTool_InputForms(t *testing.T) {
	store := &stubStore{}
	embedder := &embedding.MockEmbeddingModel{Embedding: []float64{1}}
	tool := NewSearchTool(store, embedder)

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "string", input: "plain query", want: "plain query"},
		{name: "input key", input: map[string]any{"input": "from input"}, want: "from input"},
		{name: "query key", input: map[string]any{"query": "from query"}, want: "from query"},
		{name: "question key", input: map[string]any{"question": "from question"}, want: "from question"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := tool.Call(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, output.RawInput["input"])
		})
	}
}

func TestSearchTool_NoResults(t *testing.T) {
	store := &stubStore{}
	embedder := &embedding.MockEmbeddingModel{Embedding: []float64{1}}
	tool := NewSearchTool(store, embedder)

	output, err := tool.Call(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "No matching documents found.", output.Content)
}

func TestSearchTool_StoreError(t *testing.T) {
	store := &stubStore{err: errors.New("store unavailable")}
	embedder := &embedding.MockEmbeddingModel{Embedding: []float64{1}}
	tool := NewSearchTool(store, embedder)

	output, err := tool.Call(context.Background(), "anything")
	require.Error(t, err)
	assert.True(t, output.IsError)
	assert.Contains(t, output.Content, "store unavailable")
}

func TestSearchTool_EmbedderError(t *testing.T) {
	store := &stubStore{}
	embedder := &embedding.MockEmbeddingModel{Err: errors.New("quota exceeded")}
	tool := NewSearchTool(store, embedder)

	_, err := tool.Call(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestSearchTool_MetadataDefaults(t *testing.T) {
	tool := NewSearchTool(&stubStore{}, &embedding.MockEmbeddingModel{})

	meta := tool.Metadata()
	assert.Equal(t, DefaultSearchToolName, meta.Name)
	assert.NotEmpty(t, meta.Description)

	paramsJSON, err := meta.GetParametersJSON()
	require.NoError(t, err)
	assert.Contains(t, paramsJSON, `"input"`)
}
