package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string     `gorm:"type:varchar(255);not null"`
	Description     string     `gorm:"type:text;not null"`
	Status          string     `gorm:"type:varchar(20);not null;default:'proposed';index"`
	Type            string     `gorm:"type:varchar(30);not null"`
	PlannedStart    *time.Time `gorm:"type:date"`
	PlannedEnd      *time.Time `gorm:"type:date"`
	EstimatedBudget *float64
	FundingSource   string `gorm:"type:varchar(100)"`
	OwnerDepartment string `gorm:"type:varchar(255)"`
	ContactEmail    string `gorm:"type:varchar(255)"`
	ProjectManager  string `gorm:"type:varchar(255)"`

	Ideas []Idea `gorm:"many2many:project_ideas"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Project) TableName() string {
	return "projects"
}
