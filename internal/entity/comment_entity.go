package entity

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	IdeaId     uuid.UUID `gorm:"type:uuid;index"`
	AuthorId   uuid.UUID `gorm:"type:uuid;index"`
	AuthorName string
	Content    string
	CreatedAt  time.Time
}

type Vote struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	IdeaId    uuid.UUID `gorm:"type:uuid;index"`
	UserId    uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
}
