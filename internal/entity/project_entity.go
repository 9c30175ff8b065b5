package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	ProjectStatusProposed   ProjectStatus = "proposed"
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusOnHold     ProjectStatus = "on_hold"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusCancelled  ProjectStatus = "cancelled"
)

func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch ProjectStatus(s) {
	case ProjectStatusProposed, ProjectStatusPlanning, ProjectStatusInProgress,
		ProjectStatusOnHold, ProjectStatusCompleted, ProjectStatusCancelled:
		return ProjectStatus(s), nil
	}
	return "", fmt.Errorf("invalid project status: %q", s)
}

type ProjectType string

const (
	ProjectTypeInternal    ProjectType = "internal"
	ProjectTypeVinnova     ProjectType = "vinnova"
	ProjectTypeEUFunded    ProjectType = "eu_funded"
	ProjectTypeExternal    ProjectType = "external_collaboration"
	ProjectTypeMaintenance ProjectType = "maintenance"
)

func ParseProjectType(s string) (ProjectType, error) {
	switch ProjectType(s) {
	case ProjectTypeInternal, ProjectTypeVinnova, ProjectTypeEUFunded,
		ProjectTypeExternal, ProjectTypeMaintenance:
		return ProjectType(s), nil
	}
	return "", fmt.Errorf("invalid project type: %q", s)
}

type Project struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	Description     string
	Status          ProjectStatus
	Type            ProjectType
	PlannedStart    *time.Time
	PlannedEnd      *time.Time
	EstimatedBudget *float64
	FundingSource   string
	OwnerDepartment string
	ContactEmail    string
	ProjectManager  string
	IdeaIds         []uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
