package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type StrategyDocumentType string

const (
	StrategyTypeGoal       StrategyDocumentType = "strategic_goal"
	StrategyTypePolicy     StrategyDocumentType = "policy"
	StrategyTypeGuideline  StrategyDocumentType = "guideline"
	StrategyTypeVision     StrategyDocumentType = "vision"
	StrategyTypeActionPlan StrategyDocumentType = "action_plan"
	StrategyTypeBudgetGoal StrategyDocumentType = "budget_goal"
)

func ParseStrategyDocumentType(s string) (StrategyDocumentType, error) {
	switch StrategyDocumentType(s) {
	case StrategyTypeGoal, StrategyTypePolicy, StrategyTypeGuideline,
		StrategyTypeVision, StrategyTypeActionPlan, StrategyTypeBudgetGoal:
		return StrategyDocumentType(s), nil
	}
	return "", fmt.Errorf("invalid strategy document type: %q", s)
}

// StrategyLevel is the hierarchical level of a strategy document:
// 1 strategic, 2 tactical, 3 operational.
type StrategyLevel int

const (
	LevelStrategic   StrategyLevel = 1
	LevelTactical    StrategyLevel = 2
	LevelOperational StrategyLevel = 3
)

type StrategyDocument struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string
	Description string
	Type        StrategyDocumentType
	Level       StrategyLevel
	Source      string
	ExternalRef string
	ValidFrom   *time.Time
	ValidTo     *time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
