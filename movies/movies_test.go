package movies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument(t *testing.T) {
	m := All()[0]

	doc := m.Document([]float64{0.1, 0.2})
	assert.Equal(t, []float64{0.1, 0.2}, doc.Vector)
	assert.Equal(t, m.Title, doc.Metadata["title"])
	assert.Equal(t, m.Year, doc.Metadata["year"])

	// IDs are stable across runs so re-indexing upserts.
	again := m.Document([]float64{0.3})
	assert.Equal(t, doc.ID, again.ID)

	other := All()[1].Document(nil)
	assert.NotEqual(t, doc.ID, other.ID)
}

func TestEmbeddingText(t *testing.T) {
	for _, m := range All() {
		text := m.EmbeddingText()
		require.NotEmpty(t, text)
		assert.Contains(t, text, m.Title)
		assert.Contains(t, text, m.Description)
	}
}
