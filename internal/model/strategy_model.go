package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StrategyDocument struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	Type        string     `gorm:"type:varchar(30);not null;index"`
	Level       int        `gorm:"not null;default:1"`
	Source      string     `gorm:"type:varchar(255)"`
	ExternalRef string     `gorm:"type:varchar(255)"`
	ValidFrom   *time.Time `gorm:"type:date"`
	ValidTo     *time.Time `gorm:"type:date"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (StrategyDocument) TableName() string {
	return "strategy_documents"
}

type FundingCall struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	Program     string     `gorm:"type:varchar(100);index"`
	Funder      string     `gorm:"type:varchar(255)"`
	Status      string     `gorm:"type:varchar(20);not null;default:'open';index"`
	Deadline    *time.Time `gorm:"type:date"`
	BudgetMin   *float64
	BudgetMax   *float64
	Url         string `gorm:"type:varchar(500)"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (FundingCall) TableName() string {
	return "funding_calls"
}
