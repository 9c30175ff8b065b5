package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateStrategyDocumentRequest struct {
	Title       string     `json:"title" validate:"required,min=3,max=200"`
	Description string     `json:"description"`
	Type        string     `json:"type" validate:"required,oneof=strategic_goal policy guideline vision action_plan budget_goal"`
	Level       int        `json:"level" validate:"required,min=1,max=3"`
	Source      string     `json:"source"`
	ExternalRef string     `json:"external_ref"`
	ValidFrom   *time.Time `json:"valid_from"`
	ValidTo     *time.Time `json:"valid_to"`
}

type UpdateStrategyDocumentRequest struct {
	Id uuid.UUID
	CreateStrategyDocumentRequest
}

type StrategyDocumentResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Level       int        `json:"level"`
	Source      string     `json:"source,omitempty"`
	ExternalRef string     `json:"external_ref,omitempty"`
	ValidFrom   *time.Time `json:"valid_from"`
	ValidTo     *time.Time `json:"valid_to"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type ListStrategyDocumentsResponse struct {
	Documents []*StrategyDocumentResponse `json:"documents"`
	Total     int64                       `json:"total"`
}

type StrategyStatsResponse struct {
	TotalDocuments int64            `json:"total_documents"`
	ActiveCount    int64            `json:"active_count"`
	ByType         map[string]int64 `json:"by_type"`
	ByLevel        map[string]int64 `json:"by_level"`
}
