package dto

import "time"

type UploadDocumentRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Content string `json:"content" validate:"required,min=1"`
}

type UploadDocumentResponse struct {
	Name       string `json:"name"`
	ChunkCount int    `json:"chunk_count"`
}

type UploadCatalogResponse struct {
	ServiceCount int `json:"service_count"`
	ChunkCount   int `json:"chunk_count"`
}

type DocumentInfo struct {
	Name       string    `json:"name"`
	Source     string    `json:"source"`
	ChunkCount int       `json:"chunk_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type ListDocumentsResponse struct {
	Documents []DocumentInfo `json:"documents"`
}

type DocumentStatsResponse struct {
	DocumentCount int64      `json:"document_count"`
	ChunkCount    int64      `json:"chunk_count"`
	LastModified  *time.Time `json:"last_modified"`
}

type SearchDocumentsRequest struct {
	Query  string `json:"query" validate:"required,min=1"`
	Limit  int    `json:"limit" validate:"omitempty,min=1,max=50"`
	Source string `json:"source" validate:"omitempty,oneof=service_catalog upload"`
}

type SearchDocumentsResult struct {
	DocumentName string  `json:"document_name"`
	Content      string  `json:"content"`
	Similarity   float64 `json:"similarity"`
	Source       string  `json:"source"`
}

type SearchDocumentsResponse struct {
	Results []SearchDocumentsResult `json:"results"`
}

type DeleteDocumentResponse struct {
	Name          string `json:"name"`
	DeletedChunks int64  `json:"deleted_chunks"`
}

type ClearDocumentsResponse struct {
	Cleared bool `json:"cleared"`
}
