package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFundingCallRequest struct {
	Title       string     `json:"title" validate:"required,min=3,max=200"`
	Description string     `json:"description"`
	Program     string     `json:"program"`
	Funder      string     `json:"funder"`
	Status      string     `json:"status" validate:"omitempty,oneof=open upcoming closed"`
	Deadline    *time.Time `json:"deadline"`
	BudgetMin   *float64   `json:"budget_min"`
	BudgetMax   *float64   `json:"budget_max"`
	Url         string     `json:"url" validate:"omitempty,url"`
}

type UpdateFundingCallRequest struct {
	Id uuid.UUID
	CreateFundingCallRequest
}

type FundingCallResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Program     string     `json:"program,omitempty"`
	Funder      string     `json:"funder,omitempty"`
	Status      string     `json:"status"`
	Deadline    *time.Time `json:"deadline"`
	BudgetMin   *float64   `json:"budget_min"`
	BudgetMax   *float64   `json:"budget_max"`
	Url         string     `json:"url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type ListFundingCallsResponse struct {
	Calls []*FundingCallResponse `json:"calls"`
	Total int64                  `json:"total"`
}

type FundingStatsResponse struct {
	Total             int64            `json:"total"`
	ByStatus          map[string]int64 `json:"by_status"`
	ByFunder          map[string]int64 `json:"by_funder"`
	OpenBudgetMax     float64          `json:"open_budget_max"`
	DeadlinesIn30Days int64            `json:"deadlines_in_30_days"`
}
