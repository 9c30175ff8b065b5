package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Name            string     `json:"name" validate:"required,min=3,max=200"`
	Description     string     `json:"description"`
	Status          string     `json:"status" validate:"omitempty,oneof=proposed planning in_progress on_hold completed cancelled"`
	Type            string     `json:"type" validate:"required,oneof=internal vinnova eu_funded external_collaboration maintenance"`
	PlannedStart    *time.Time `json:"planned_start"`
	PlannedEnd      *time.Time `json:"planned_end"`
	EstimatedBudget *float64   `json:"estimated_budget"`
	FundingSource   string     `json:"funding_source"`
	OwnerDepartment string     `json:"owner_department"`
	ContactEmail    string     `json:"contact_email" validate:"omitempty,email"`
	ProjectManager  string     `json:"project_manager"`
}

type UpdateProjectRequest struct {
	Id uuid.UUID
	CreateProjectRequest
}

type ProjectResponse struct {
	Id              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	Status          string      `json:"status"`
	Type            string      `json:"type"`
	PlannedStart    *time.Time  `json:"planned_start"`
	PlannedEnd      *time.Time  `json:"planned_end"`
	EstimatedBudget *float64    `json:"estimated_budget"`
	FundingSource   string      `json:"funding_source,omitempty"`
	OwnerDepartment string      `json:"owner_department,omitempty"`
	ContactEmail    string      `json:"contact_email,omitempty"`
	ProjectManager  string      `json:"project_manager,omitempty"`
	IdeaIds         []uuid.UUID `json:"idea_ids"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       *time.Time  `json:"updated_at"`
}

type ListProjectsResponse struct {
	Projects []*ProjectResponse `json:"projects"`
	Total    int64              `json:"total"`
}

type ProjectStatsResponse struct {
	TotalProjects int64            `json:"total_projects"`
	ByStatus      map[string]int64 `json:"by_status"`
	ByType        map[string]int64 `json:"by_type"`
	TotalBudget   float64          `json:"total_budget"`
	IdeasLinked   int64            `json:"ideas_linked"`
}

type LinkIdeaRequest struct {
	ProjectId uuid.UUID
	IdeaId    uuid.UUID `json:"idea_id" validate:"required"`
}
