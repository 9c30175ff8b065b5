package integration

import (
	"context"
	"testing"

	"innovation-hub-be/internal/entity"
	"innovation-hub-be/internal/repository/implementation"
	"innovation-hub-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// indexEmbedding builds a valid 768-dimension vector so inserts satisfy
// the column type without calling the embedding provider.
func indexEmbedding(seed float32) []float32 {
	v := make([]float32, 768)
	v[0] = seed
	return v
}

func indexChunks(document string, source entity.DocumentSource, count int) []*entity.DocumentChunk {
	chunks := make([]*entity.DocumentChunk, 0, count)
	for i := 0; i < count; i++ {
		chunks = append(chunks, &entity.DocumentChunk{
			DocumentName: document,
			ChunkIndex:   i,
			TotalChunks:  count,
			Content:      "Avsnitt om snöröjning och halkbekämpning i kommunen.",
			Embedding:    indexEmbedding(float32(i+1) / 10),
			Source:       source,
		})
	}
	return chunks
}

func TestDocumentChunkRepository(t *testing.T) {
	_, db := setupApp(t)
	ctx := context.Background()
	repo := implementation.NewDocumentChunkRepository(db)

	suffix := uuid.NewString()[:8]
	docA := "vinterplan-" + suffix + ".pdf"
	docB := "avfallsplan-" + suffix + ".pdf"

	require.NoError(t, repo.CreateBulk(ctx, indexChunks(docA, entity.SourceUpload, 3)))
	require.NoError(t, repo.CreateBulk(ctx, indexChunks(docB, entity.SourceUpload, 2)))
	defer func() {
		repo.DeleteByDocumentName(ctx, docA)
		repo.DeleteByDocumentName(ctx, docB)
	}()

	t.Run("Count per document", func(t *testing.T) {
		n, err := repo.Count(ctx, specification.Filter("document_name", docA))
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("Delete by name reports the document's chunk count", func(t *testing.T) {
		before, err := repo.Count(ctx)
		require.NoError(t, err)

		deleted, err := repo.DeleteByDocumentName(ctx, docA)
		require.NoError(t, err)
		assert.Equal(t, int64(3), deleted)

		after, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, before-deleted, after, "total count should drop by exactly the deleted chunks")

		remaining, err := repo.Count(ctx, specification.Filter("document_name", docB))
		require.NoError(t, err)
		assert.Equal(t, int64(2), remaining, "other documents must be untouched")
	})

	t.Run("Delete unknown name removes nothing", func(t *testing.T) {
		deleted, err := repo.DeleteByDocumentName(ctx, "finns-inte-"+suffix+".pdf")
		require.NoError(t, err)
		assert.Equal(t, int64(0), deleted)
	})

	t.Run("Distinct documents", func(t *testing.T) {
		n, err := repo.CountDistinctDocuments(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, int64(1))
	})

	t.Run("Clear empties the index", func(t *testing.T) {
		// Clear wipes the whole table, so this subtest runs last.
		require.NoError(t, repo.Clear(ctx))

		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)

		last, err := repo.LastModified(ctx)
		require.NoError(t, err)
		assert.Nil(t, last)
	})
}
