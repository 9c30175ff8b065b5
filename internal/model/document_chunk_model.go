package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type DocumentChunk struct {
	Id              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentName    string          `gorm:"type:varchar(255);not null;index"`
	ChunkIndex      int             `gorm:"default:0"`
	TotalChunks     int             `gorm:"default:1"`
	Content         string          `gorm:"type:text;not null"`
	Embedding       pgvector.Vector `gorm:"type:vector(768)"` // text-embedding-004 dimension
	Source          string          `gorm:"type:varchar(30);not null;index"`
	ServiceName     string          `gorm:"type:varchar(255);index"`
	ServiceCategory string          `gorm:"type:varchar(100)"`
	StartDate       string          `gorm:"type:varchar(50)"`
	CreatedAt       time.Time       `gorm:"autoCreateTime"`
}

func (DocumentChunk) TableName() string {
	return "document_chunks"
}
