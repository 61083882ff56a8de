// Package supabase implements a vector store backed by a hosted Supabase
// (PostgREST + pgvector) project. Inserts go through the REST layer, while
// similarity search calls a server-side RPC function, since PostgREST does
// not allow ad hoc query execution.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/junaidbinfarooq/ai/schema"
	"github.com/junaidbinfarooq/ai/vectorstore"
)

const (
	// DefaultTable is the table documents are upserted into.
	DefaultTable = "documents"
	// DefaultVectorColumn is the pgvector column holding embeddings.
	DefaultVectorColumn = "embedding"
	// DefaultDimension matches OpenAI's text-embedding models.
	DefaultDimension = 1536
	// DefaultQueryFunction is the RPC function performing similarity search.
	DefaultQueryFunction = "match_documents"

	// insertBatchSize is the maximum number of rows per insert request.
	insertBatchSize = 200
)

// Store is a vector store client for a Supabase project. It is a stateless
// translator between in-memory documents and remote HTTP calls; the remote
// store is the system of record. All configuration is fixed at construction,
// so a single Store is safe for concurrent use.
//
// Table creation and the similarity-search function are assumed to exist
// already; the client performs no schema setup.
type Store struct {
	httpClient    *http.Client
	baseURL       string
	apiKey        string
	table         string
	vectorColumn  string
	dimension     int
	queryFunction string
	logger        *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithHTTPClient sets the HTTP client used for all requests.
func WithHTTPClient(client *http.Client) StoreOption {
	return func(s *Store) {
		s.httpClient = client
	}
}

// WithTable sets the table documents are written to.
func WithTable(table string) StoreOption {
	return func(s *Store) {
		s.table = table
	}
}

// WithVectorColumn sets the name of the embedding column.
func WithVectorColumn(column string) StoreOption {
	return func(s *Store) {
		s.vectorColumn = column
	}
}

// WithDimension sets the expected vector dimension.
func WithDimension(dimension int) StoreOption {
	return func(s *Store) {
		s.dimension = dimension
	}
}

// WithQueryFunction sets the RPC function used for similarity search.
func WithQueryFunction(name string) StoreOption {
	return func(s *Store) {
		s.queryFunction = name
	}
}

// NewStore creates a new Store for the given project URL and API key.
func NewStore(baseURL, apiKey string, opts ...StoreOption) *Store {
	s := &Store{
		httpClient:    http.DefaultClient,
		baseURL:       strings.TrimRight(baseURL, "/"),
		apiKey:        apiKey,
		table:         DefaultTable,
		vectorColumn:  DefaultVectorColumn,
		dimension:     DefaultDimension,
		queryFunction: DefaultQueryFunction,
		logger:        slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Add upserts documents into the table in batches of at most 200 rows.
//
// Documents whose vector length does not match the configured dimension are
// silently skipped rather than failing the batch; this permissive policy is
// intentional. An empty (post-filter) input issues no request. Batches are
// sent sequentially; the first failing batch aborts the call, and writes from
// earlier batches are not rolled back.
func (s *Store) Add(ctx context.Context, docs []schema.Document) error {
	rows := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		if len(doc.Vector) != s.dimension {
			s.logger.Debug("skipping document with mismatched vector",
				"id", doc.ID, "got", len(doc.Vector), "want", s.dimension)
			continue
		}
		rows = append(rows, map[string]any{
			"id":           doc.ID,
			s.vectorColumn: doc.Vector,
			"metadata":     doc.Metadata,
		})
	}

	if len(rows) == 0 {
		return nil
	}

	insertURL := fmt.Sprintf("%s/rest/v1/%s", s.baseURL, s.table)

	for start := 0; start < len(rows); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(rows) {
			end = len(rows)
		}

		body, err := json.Marshal(rows[start:end])
		if err != nil {
			return fmt.Errorf("failed to encode insert batch: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, insertURL, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("failed to build insert request: %w", err)
		}
		s.setHeaders(req)
		// Upsert by primary key instead of failing on conflict.
		req.Header.Set("Prefer", "resolution=merge-duplicates")

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("supabase insert request failed: %w", err)
		}

		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode >= http.StatusBadRequest {
			return fmt.Errorf("supabase insert failed: status %d: %s", resp.StatusCode, respBody)
		}
	}

	return nil
}

// Query performs a similarity search through the configured RPC function and
// returns results in the order the backend ranked them.
//
// The query vector must match the configured dimension; a mismatch fails with
// vectorstore.ErrDimensionMismatch before any request is issued. Response
// records missing any of id, the vector column, metadata, or score are
// silently skipped.
func (s *Store) Query(ctx context.Context, vector []float64, opts *vectorstore.QueryOptions) ([]schema.QueryResult, error) {
	if len(vector) != s.dimension {
		return nil, fmt.Errorf("query vector has %d dimensions, store expects %d: %w",
			len(vector), s.dimension, vectorstore.ErrDimensionMismatch)
	}

	body, err := json.Marshal(map[string]any{
		"query_embedding": vector,
		"match_count":     opts.MatchCount(),
		"match_threshold": opts.Threshold(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	queryURL := fmt.Sprintf("%s/rest/v1/rpc/%s", s.baseURL, s.queryFunction)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, queryURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build query request: %w", err)
	}
	s.setHeaders(req)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("supabase query request failed: %w", err)
	}

	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read query response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("supabase query failed: status %d: %s", resp.StatusCode, respBody)
	}

	return s.parseResults(respBody), nil
}

// setHeaders sets the authentication and content headers common to all
// requests. The API key is sent both as the PostgREST apikey header and as a
// bearer token.
func (s *Store) setHeaders(req *http.Request) {
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")
}

// parseResults turns the RPC response array into typed results, dropping
// malformed records. Vector and metadata fields are accepted either as
// already-decoded JSON or as JSON-encoded strings, since pgvector columns and
// jsonb casts surface both forms depending on the function definition.
func (s *Store) parseResults(body []byte) []schema.QueryResult {
	parsed := gjson.ParseBytes(body)
	if !parsed.IsArray() {
		s.logger.Debug("query response is not a JSON array", "body_len", len(body))
		return nil
	}

	records := parsed.Array()
	results := make([]schema.QueryResult, 0, len(records))

	for _, rec := range records {
		id := rec.Get("id")
		vecField := rec.Get(s.vectorColumn)
		meta := rec.Get("metadata")
		score := rec.Get("score")

		if id.Type != gjson.String || !vecField.Exists() || !meta.Exists() || !score.Exists() {
			s.logger.Debug("skipping incomplete query record", "record", rec.Raw)
			continue
		}

		vector, ok := decodeVector(vecField)
		if !ok {
			s.logger.Debug("skipping record with undecodable vector", "id", id.Str)
			continue
		}

		metadata, ok := decodeMetadata(meta)
		if !ok {
			s.logger.Debug("skipping record with undecodable metadata", "id", id.Str)
			continue
		}

		results = append(results, schema.QueryResult{
			ID:       id.Str,
			Vector:   vector,
			Metadata: metadata,
			Score:    score.Float(),
		})
	}

	return results
}

// decodeVector accepts a JSON array of numbers or a JSON-encoded string of
// one.
func decodeVector(r gjson.Result) ([]float64, bool) {
	if r.Type == gjson.String {
		r = gjson.Parse(r.Str)
	}
	if !r.IsArray() {
		return nil, false
	}

	elems := r.Array()
	vector := make([]float64, len(elems))
	for i, elem := range elems {
		vector[i] = elem.Float()
	}
	return vector, true
}

// decodeMetadata accepts a JSON object or a JSON-encoded string of one.
func decodeMetadata(r gjson.Result) (map[string]any, bool) {
	if r.Type == gjson.String {
		r = gjson.Parse(r.Str)
	}
	if !r.IsObject() {
		return nil, false
	}

	metadata, ok := r.Value().(map[string]any)
	return metadata, ok
}

// Ensure Store implements VectorStore.
var _ vectorstore.VectorStore = (*Store)(nil)
