// Package chromem implements an in-process vector store using chromem-go.
// It lets the demo and tests run without hosted store credentials.
package chromem

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/philippgille/chromem-go"

	"github.com/junaidbinfarooq/ai/schema"
	"github.com/junaidbinfarooq/ai/vectorstore"
)

// ChromemStore is a vector store implementation backed by chromem-go.
type ChromemStore struct {
	db         *chromem.DB
	collection *chromem.Collection
	dimension  int
	logger     *slog.Logger
}

// NewChromemStore creates a new ChromemStore holding vectors of the given
// dimension. If persistPath is empty, the store is in-memory only.
func NewChromemStore(persistPath, collectionName string, dimension int) (*ChromemStore, error) {
	var db *chromem.DB
	if persistPath != "" {
		var err error
		db, err = chromem.NewPersistentDB(persistPath, false)
		if err != nil {
			return nil, fmt.Errorf("failed to create persistent chromem db: %w", err)
		}
	} else {
		db = chromem.NewDB()
	}

	// Embeddings are computed upstream and passed in explicitly, so no
	// embedding function is registered on the collection.
	collection, err := db.GetOrCreateCollection(collectionName, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create collection: %w", err)
	}

	return &ChromemStore{
		db:         db,
		collection: collection,
		dimension:  dimension,
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}, nil
}

// Add upserts documents into the collection. Documents whose vector length
// does not match the configured dimension are silently skipped, matching the
// hosted client's permissive policy.
func (s *ChromemStore) Add(ctx context.Context, docs []schema.Document) error {
	chromemDocs := make([]chromem.Document, 0, len(docs))
	for _, doc := range docs {
		if len(doc.Vector) != s.dimension {
			s.logger.Debug("skipping document with mismatched vector",
				"id", doc.ID, "got", len(doc.Vector), "want", s.dimension)
			continue
		}

		// chromem metadata only holds strings, so the full metadata map
		// rides along as JSON in the content field.
		content, err := json.Marshal(doc.Metadata)
		if err != nil {
			return fmt.Errorf("failed to encode metadata for document %s: %w", doc.ID, err)
		}

		embedding := make([]float32, len(doc.Vector))
		for i, v := range doc.Vector {
			embedding[i] = float32(v)
		}

		chromemDocs = append(chromemDocs, chromem.Document{
			ID:        doc.ID,
			Content:   string(content),
			Embedding: embedding,
		})
	}

	if len(chromemDocs) == 0 {
		return nil
	}

	if err := s.collection.AddDocuments(ctx, chromemDocs, runtime.NumCPU()); err != nil {
		return fmt.Errorf("failed to add documents to chromem collection: %w", err)
	}

	return nil
}

// Query finds the documents most similar to the given vector, filtered by
// the options' minimum score.
func (s *ChromemStore) Query(ctx context.Context, vector []float64, opts *vectorstore.QueryOptions) ([]schema.QueryResult, error) {
	if len(vector) != s.dimension {
		return nil, fmt.Errorf("query vector has %d dimensions, store expects %d: %w",
			len(vector), s.dimension, vectorstore.ErrDimensionMismatch)
	}

	count := s.collection.Count()
	if count == 0 {
		return nil, nil
	}

	// chromem rejects nResults larger than the collection size.
	nResults := opts.MatchCount()
	if nResults > count {
		nResults = count
	}

	queryEmbedding := make([]float32, len(vector))
	for i, v := range vector {
		queryEmbedding[i] = float32(v)
	}

	res, err := s.collection.QueryEmbedding(ctx, queryEmbedding, nResults, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query chromem collection: %w", err)
	}

	threshold := opts.Threshold()
	results := make([]schema.QueryResult, 0, len(res))
	for _, doc := range res {
		if float64(doc.Similarity) < threshold {
			continue
		}

		var metadata map[string]any
		if err := json.Unmarshal([]byte(doc.Content), &metadata); err != nil {
			s.logger.Debug("skipping document with undecodable metadata", "id", doc.ID)
			continue
		}

		embedding := make([]float64, len(doc.Embedding))
		for i, v := range doc.Embedding {
			embedding[i] = float64(v)
		}

		results = append(results, schema.QueryResult{
			ID:       doc.ID,
			Vector:   embedding,
			Metadata: metadata,
			Score:    float64(doc.Similarity),
		})
	}

	return results, nil
}

// Ensure ChromemStore implements VectorStore.
var _ vectorstore.VectorStore = (*ChromemStore)(nil)
