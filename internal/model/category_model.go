package model

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	Color       string    `gorm:"type:varchar(7);not null;default:'#3498db'"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Category) TableName() string {
	return "categories"
}
