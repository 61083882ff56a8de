// Package schema defines the shared data model for documents stored in and
// retrieved from a vector store.
package schema

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Document is a single record destined for a vector store: a globally unique
// identifier, an embedding vector of fixed length, and an opaque metadata
// mapping that is persisted and returned verbatim.
//
// A Document is constructed by the caller and treated as immutable afterward;
// the store clients never modify it.
type Document struct {
	ID       string         `json:"id"`
	Vector   []float64      `json:"vector"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// NewDocument creates a Document with a generated UUID identifier.
func NewDocument(vector []float64, metadata map[string]any) Document {
	if metadata == nil {
		metadata = make(map[string]any)
	}
	return Document{
		ID:       uuid.NewString(),
		Vector:   vector,
		Metadata: metadata,
	}
}

// ToJSON renders the document as a JSON string.
func (d Document) ToJSON() (string, error) {
	bytes, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// QueryResult is a single similarity-search hit. It mirrors Document plus the
// backend-reported similarity score. Results are transient query output and
// are never persisted by the clients.
type QueryResult struct {
	ID       string         `json:"id"`
	Vector   []float64      `json:"vector"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Score    float64        `json:"score"`
}
