package dto

import (
	"time"

	"github.com/google/uuid"

	"innovation-hub-be/internal/entity"
)

type CreateIdeaRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"required,min=10"`
	Type        string `json:"type" validate:"required,oneof=idea problem need improvement"`
	TargetGroup string `json:"target_group" validate:"required,oneof=citizens businesses employees other_orgs"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

type CreateIdeaResponse struct {
	Id     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type UpdateIdeaRequest struct {
	Id          uuid.UUID
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"required,min=10"`
	Type        string `json:"type" validate:"required,oneof=idea problem need improvement"`
	TargetGroup string `json:"target_group" validate:"required,oneof=citizens businesses employees other_orgs"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

type UpdateIdeaStatusRequest struct {
	Id     uuid.UUID
	Status string `json:"status" validate:"required,oneof=new under_review approved in_development implemented rejected"`
}

type ListIdeasRequest struct {
	Status      string `query:"status"`
	Type        string `query:"type"`
	Priority    string `query:"priority"`
	TargetGroup string `query:"target_group"`
	Category    string `query:"category"`
	Tag         string `query:"tag"`
	Search      string `query:"search"`
	Page        int    `query:"page"`
	PageSize    int    `query:"page_size"`
}

type IdeaAnalysisResponse struct {
	Sentiment         string                `json:"sentiment,omitempty"`
	Confidence        float64               `json:"confidence"`
	Notes             string                `json:"notes,omitempty"`
	Recommendation    string                `json:"service_recommendation"`
	ServiceConfidence float64               `json:"service_confidence"`
	Reasoning         string                `json:"service_reasoning,omitempty"`
	MatchingServices  []entity.ServiceMatch `json:"matching_services"`
	Impact            string                `json:"development_impact"`
	AnalyzedAt        time.Time             `json:"analyzed_at"`
}

type IdeaResponse struct {
	Id          uuid.UUID             `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Type        string                `json:"type"`
	Status      string                `json:"status"`
	Priority    string                `json:"priority"`
	TargetGroup string                `json:"target_group"`
	Category    *string               `json:"category"`
	Tags        []string              `json:"tags"`
	VoteCount   int                   `json:"vote_count"`
	SubmitterId uuid.UUID             `json:"submitter_id"`
	Analysis    *IdeaAnalysisResponse `json:"analysis,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   *time.Time            `json:"updated_at"`
}

type ListIdeasResponse struct {
	Ideas    []*IdeaResponse `json:"ideas"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

type IdeaStatsResponse struct {
	Total      int64            `json:"total"`
	Open       int64            `json:"open"`
	ByStatus   map[string]int64 `json:"by_status"`
	ByType     map[string]int64 `json:"by_type"`
	ByPriority map[string]int64 `json:"by_priority"`
}

type VoteResponse struct {
	IdeaId    uuid.UUID `json:"idea_id"`
	Voted     bool      `json:"voted"`
	VoteCount int       `json:"vote_count"`
}

type VoteStatusResponse struct {
	IdeaId uuid.UUID `json:"idea_id"`
	Voted  bool      `json:"voted"`
	Votes  int       `json:"votes"`
}

type CreateCommentRequest struct {
	IdeaId  uuid.UUID
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

type CommentResponse struct {
	Id         uuid.UUID `json:"id"`
	IdeaId     uuid.UUID `json:"idea_id"`
	AuthorId   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// PublishAnalyzeIdeaMessage is the payload queued for the analysis consumer.
type PublishAnalyzeIdeaMessage struct {
	IdeaId uuid.UUID `json:"idea_id"`
}
