package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/junaidbinfarooq/ai/embedding"
	"github.com/junaidbinfarooq/ai/schema"
	"github.com/junaidbinfarooq/ai/vectorstore"
)

const (
	// DefaultSearchToolName is the default name for search tools.
	DefaultSearchToolName = "similarity_search"
	// DefaultSearchToolDescription is the default description for search tools.
	DefaultSearchToolDescription = `Useful for running a natural language query against a knowledge base and retrieving a set of relevant documents.`

	// DefaultSearchTopK is the default number of documents to retrieve.
	DefaultSearchTopK = 3
)

// SearchTool answers natural language queries by embedding them and running
// a similarity search against a vector store.
type SearchTool struct {
	store    vectorstore.VectorStore
	embedder embedding.EmbeddingModel
	topK     int
	minScore float64
	metadata *ToolMetadata
}

// SearchToolOption configures a SearchTool.
type SearchToolOption func(*SearchTool)

// WithSearchToolName sets the tool name.
func WithSearchToolName(name string) SearchToolOption {
	return func(st *SearchTool) {
		st.metadata.Name = name
	}
}

// WithSearchToolDescription sets the tool description.
func WithSearchToolDescription(description string) SearchToolOption {
	return func(st *SearchTool) {
		st.metadata.Description = description
	}
}

// WithSearchTopK sets the number of documents to retrieve.
func WithSearchTopK(topK int) SearchToolOption {
	return func(st *SearchTool) {
		st.topK = topK
	}
}

// WithSearchMinScore sets the minimum similarity score for results.
func WithSearchMinScore(minScore float64) SearchToolOption {
	return func(st *SearchTool) {
		st.minScore = minScore
	}
}

// NewSearchTool creates a new SearchTool over the given store and embedding
// model.
func NewSearchTool(store vectorstore.VectorStore, embedder embedding.EmbeddingModel, opts ...SearchToolOption) *SearchTool {
	st := &SearchTool{
		store:    store,
		embedder: embedder,
		topK:     DefaultSearchTopK,
		metadata: &ToolMetadata{
			Name:        DefaultSearchToolName,
			Description: DefaultSearchToolDescription,
			Parameters:  DefaultParameters(),
		},
	}

	for _, opt := range opts {
		opt(st)
	}

	return st
}

// Metadata returns the tool's metadata.
func (st *SearchTool) Metadata() *ToolMetadata {
	return st.metadata
}

// Call embeds the query, runs the similarity search, and renders the hits as
// text for the model.
func (st *SearchTool) Call(ctx context.Context, input any) (*ToolOutput, error) {
	queryStr, err := st.getQueryString(input)
	if err != nil {
		return NewErrorToolOutput(st.metadata.Name, err), err
	}

	queryEmbedding, err := st.embedder.GetQueryEmbedding(ctx, queryStr)
	if err != nil {
		err = fmt.Errorf("failed to embed query: %w", err)
		return NewErrorToolOutput(st.metadata.Name, err), err
	}

	results, err := st.store.Query(ctx, queryEmbedding, &vectorstore.QueryOptions{
		MaxItems: st.topK,
		MinScore: st.minScore,
	})
	if err != nil {
		err = fmt.Errorf("similarity search failed: %w", err)
		return NewErrorToolOutput(st.metadata.Name, err), err
	}

	rawInput := map[string]any{"input": queryStr}

	if len(results) == 0 {
		return NewToolOutput(st.metadata.Name, "No matching documents found.", rawInput, results), nil
	}

	parts := make([]string, len(results))
	for i, result := range results {
		parts[i] = formatResult(result)
	}
	content := strings.Join(parts, "\n\n")

	return NewToolOutput(st.metadata.Name, content, rawInput, results), nil
}

// getQueryString extracts the query string from the input.
func (st *SearchTool) getQueryString(input any) (string, error) {
	switch v := input.(type) {
	case string:
		return v, nil
	case map[string]any:
		for _, key := range []string{"input", "query", "question"} {
			if queryStr, ok := v[key].(string); ok {
				return queryStr, nil
			}
		}
		return "", fmt.Errorf("cannot extract query string from input")
	default:
		return fmt.Sprintf("%v", input), nil
	}
}

// formatResult renders one hit as "key: value" lines in stable key order.
func formatResult(result schema.QueryResult) string {
	keys := make([]string, 0, len(result.Metadata))
	for key := range result.Metadata {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("%s: %v", key, result.Metadata[key]))
	}

	return strings.Join(lines, "\n")
}

// Ensure SearchTool implements Tool.
var _ Tool = (*SearchTool)(nil)
