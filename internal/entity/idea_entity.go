package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type IdeaType string

const (
	IdeaTypeIdea        IdeaType = "idea"
	IdeaTypeProblem     IdeaType = "problem"
	IdeaTypeNeed        IdeaType = "need"
	IdeaTypeImprovement IdeaType = "improvement"
)

func ParseIdeaType(s string) (IdeaType, error) {
	switch IdeaType(s) {
	case IdeaTypeIdea, IdeaTypeProblem, IdeaTypeNeed, IdeaTypeImprovement:
		return IdeaType(s), nil
	}
	return "", fmt.Errorf("invalid idea type: %q", s)
}

type IdeaStatus string

const (
	IdeaStatusNew           IdeaStatus = "new"
	IdeaStatusUnderReview   IdeaStatus = "under_review"
	IdeaStatusApproved      IdeaStatus = "approved"
	IdeaStatusInDevelopment IdeaStatus = "in_development"
	IdeaStatusImplemented   IdeaStatus = "implemented"
	IdeaStatusRejected      IdeaStatus = "rejected"
)

func ParseIdeaStatus(s string) (IdeaStatus, error) {
	switch IdeaStatus(s) {
	case IdeaStatusNew, IdeaStatusUnderReview, IdeaStatusApproved,
		IdeaStatusInDevelopment, IdeaStatusImplemented, IdeaStatusRejected:
		return IdeaStatus(s), nil
	}
	return "", fmt.Errorf("invalid idea status: %q", s)
}

// IsTerminal reports whether an idea in this status is considered closed.
func (s IdeaStatus) IsTerminal() bool {
	return s == IdeaStatusImplemented || s == IdeaStatusRejected
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), nil
	}
	return "", fmt.Errorf("invalid priority: %q", s)
}

type TargetGroup string

const (
	TargetGroupCitizens   TargetGroup = "citizens"
	TargetGroupBusinesses TargetGroup = "businesses"
	TargetGroupEmployees  TargetGroup = "employees"
	TargetGroupOtherOrgs  TargetGroup = "other_orgs"
)

func ParseTargetGroup(s string) (TargetGroup, error) {
	switch TargetGroup(s) {
	case TargetGroupCitizens, TargetGroupBusinesses, TargetGroupEmployees, TargetGroupOtherOrgs:
		return TargetGroup(s), nil
	}
	return "", fmt.Errorf("invalid target group: %q", s)
}

type Idea struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string
	Description string
	Type        IdeaType
	Status      IdeaStatus
	Priority    Priority
	TargetGroup TargetGroup
	Category    *string
	Tags        []string
	VoteCount   int
	SubmitterId uuid.UUID `gorm:"type:uuid;index"`

	Analysis *IdeaAnalysis

	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}

// IdeaAnalysis carries the AI-derived fields. Nil until the first
// successful analysis run; stale relative to the document index after
// catalog changes (see AnalyzedAt).
type IdeaAnalysis struct {
	Sentiment         string
	Confidence        float64
	Notes             string
	Recommendation    Recommendation
	ServiceConfidence float64
	Reasoning         string
	MatchingServices  []ServiceMatch
	Impact            Impact
	AnalyzedAt        time.Time
}
