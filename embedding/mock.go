package embedding

import "context"

// MockEmbeddingModel is a mock implementation of the EmbeddingModel
// interface. Embeddings maps inputs to vectors; Embedding is the fallback
// for unmapped inputs.
type MockEmbeddingModel struct {
	Embedding  []float64
	Embeddings map[string][]float64
	Err        error
}

func (m *MockEmbeddingModel) GetTextEmbedding(ctx context.Context, text string) ([]float64, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if e, ok := m.Embeddings[text]; ok {
		return e, nil
	}
	return m.Embedding, nil
}

func (m *MockEmbeddingModel) GetQueryEmbedding(ctx context.Context, query string) ([]float64, error) {
	return m.GetTextEmbedding(ctx, query)
}

func (m *MockEmbeddingModel) GetTextEmbeddings(ctx context.Context, texts []string) ([][]float64, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	embeddings := make([][]float64, len(texts))
	for i, text := range texts {
		embeddings[i], _ = m.GetTextEmbedding(ctx, text)
	}
	return embeddings, nil
}

var _ EmbeddingModelWithBatch = (*MockEmbeddingModel)(nil)
