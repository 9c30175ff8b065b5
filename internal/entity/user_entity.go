package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string
	Name         string
	Department   string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
