package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentSource tells where an indexed chunk came from.
type DocumentSource string

const (
	SourceServiceCatalog DocumentSource = "service_catalog"
	SourceUpload         DocumentSource = "upload"
)

// DocumentChunk is one embedded slice of an indexed document. Catalog
// entries are indexed one document per service, so ServiceName doubles
// as the document name for them.
type DocumentChunk struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey"`
	DocumentName    string
	ChunkIndex      int
	TotalChunks     int
	Content         string
	Embedding       []float32
	Source          DocumentSource
	ServiceName     string
	ServiceCategory string
	StartDate       string
	CreatedAt       time.Time
}

// ScoredChunk pairs a chunk with its cosine similarity against a query.
type ScoredChunk struct {
	Chunk      *DocumentChunk
	Similarity float64
}
