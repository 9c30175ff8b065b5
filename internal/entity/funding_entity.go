package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type FundingCallStatus string

const (
	FundingCallOpen     FundingCallStatus = "open"
	FundingCallUpcoming FundingCallStatus = "upcoming"
	FundingCallClosed   FundingCallStatus = "closed"
)

func ParseFundingCallStatus(s string) (FundingCallStatus, error) {
	switch FundingCallStatus(s) {
	case FundingCallOpen, FundingCallUpcoming, FundingCallClosed:
		return FundingCallStatus(s), nil
	}
	return "", fmt.Errorf("invalid funding call status: %q", s)
}

type FundingCall struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string
	Description string
	Program     string
	Funder      string
	Status      FundingCallStatus
	Deadline    *time.Time
	BudgetMin   *float64
	BudgetMax   *float64
	Url         string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
