package mapper

import (
	"innovation-hub-be/internal/entity"
	"innovation-hub-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type DocumentChunkMapper struct{}

func NewDocumentChunkMapper() *DocumentChunkMapper {
	return &DocumentChunkMapper{}
}

func (m *DocumentChunkMapper) ToEntity(c *model.DocumentChunk) *entity.DocumentChunk {
	if c == nil {
		return nil
	}
	return &entity.DocumentChunk{
		Id:              c.Id,
		DocumentName:    c.DocumentName,
		ChunkIndex:      c.ChunkIndex,
		TotalChunks:     c.TotalChunks,
		Content:         c.Content,
		Embedding:       c.Embedding.Slice(),
		Source:          entity.DocumentSource(c.Source),
		ServiceName:     c.ServiceName,
		ServiceCategory: c.ServiceCategory,
		StartDate:       c.StartDate,
		CreatedAt:       c.CreatedAt,
	}
}

func (m *DocumentChunkMapper) ToModel(c *entity.DocumentChunk) *model.DocumentChunk {
	if c == nil {
		return nil
	}
	return &model.DocumentChunk{
		Id:              c.Id,
		DocumentName:    c.DocumentName,
		ChunkIndex:      c.ChunkIndex,
		TotalChunks:     c.TotalChunks,
		Content:         c.Content,
		Embedding:       pgvector.NewVector(c.Embedding),
		Source:          string(c.Source),
		ServiceName:     c.ServiceName,
		ServiceCategory: c.ServiceCategory,
		StartDate:       c.StartDate,
		CreatedAt:       c.CreatedAt,
	}
}

func (m *DocumentChunkMapper) ToEntities(chunks []*model.DocumentChunk) []*entity.DocumentChunk {
	entities := make([]*entity.DocumentChunk, len(chunks))
	for i, c := range chunks {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *DocumentChunkMapper) ToModels(chunks []*entity.DocumentChunk) []*model.DocumentChunk {
	models := make([]*model.DocumentChunk, len(chunks))
	for i, c := range chunks {
		models[i] = m.ToModel(c)
	}
	return models
}
