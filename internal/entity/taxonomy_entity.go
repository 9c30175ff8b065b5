package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is used when a category is created without one.
const DefaultCategoryColor = "#3498db"

type Category struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Description string
	Color       string
	CreatedAt   time.Time
}

type Tag struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	CreatedAt time.Time
}
