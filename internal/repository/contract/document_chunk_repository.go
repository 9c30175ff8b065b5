package contract

import (
	"context"
	"time"

	"innovation-hub-be/internal/entity"
	"innovation-hub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DocumentChunkRepository interface {
	CreateBulk(ctx context.Context, chunks []*entity.DocumentChunk) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByDocumentName removes every chunk of the named document and
	// reports how many rows went away.
	DeleteByDocumentName(ctx context.Context, name string) (int64, error)
	Clear(ctx context.Context) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentChunk, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	CountDistinctDocuments(ctx context.Context) (int64, error)

	// SearchSimilar runs a cosine k-NN query over chunks of the given
	// source, returning similarity scores in [0,1] sorted descending.
	SearchSimilar(ctx context.Context, embedding []float32, limit int, source entity.DocumentSource) ([]*entity.ScoredChunk, error)

	// LastModified is the newest chunk insertion time, used to flag
	// idea analyses as stale relative to the index.
	LastModified(ctx context.Context) (*time.Time, error)
}
