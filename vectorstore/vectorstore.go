// Package vectorstore defines the interface for storing and querying
// embedding vectors, independent of the backing store.
package vectorstore

import (
	"context"
	"errors"

	"github.com/junaidbinfarooq/ai/schema"
)

// ErrDimensionMismatch is returned when a query vector's length does not
// match the store's configured dimension. It is detected locally, before any
// network call.
var ErrDimensionMismatch = errors.New("vector dimension mismatch")

// DefaultMaxItems is the number of results returned when no limit option is
// given.
const DefaultMaxItems = 10

// VectorStore is the interface for storing and querying vectors.
type VectorStore interface {
	// Add upserts documents into the store. Documents whose vector length
	// does not match the store's configured dimension are silently skipped.
	Add(ctx context.Context, docs []schema.Document) error
	// Query finds the documents most similar to the given vector, in the
	// order the backend ranked them.
	Query(ctx context.Context, vector []float64, opts *QueryOptions) ([]schema.QueryResult, error)
}

// QueryOptions controls a similarity query. A nil *QueryOptions means all
// defaults.
type QueryOptions struct {
	// MaxItems is the maximum number of results to return.
	MaxItems int `json:"max_items,omitempty"`
	// Limit is an alias for MaxItems (for backward compatibility).
	// MaxItems wins when both are set.
	Limit int `json:"limit,omitempty"`
	// MinScore excludes results scoring below this threshold.
	MinScore float64 `json:"min_score,omitempty"`
}

// MatchCount returns the effective result limit (prefers MaxItems over
// Limit).
func (o *QueryOptions) MatchCount() int {
	if o == nil {
		return DefaultMaxItems
	}
	if o.MaxItems > 0 {
		return o.MaxItems
	}
	if o.Limit > 0 {
		return o.Limit
	}
	return DefaultMaxItems
}

// Threshold returns the effective minimum similarity score.
func (o *QueryOptions) Threshold() float64 {
	if o == nil {
		return 0.0
	}
	return o.MinScore
}
