package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Idea struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Type        string    `gorm:"type:varchar(20);not null;index"`
	Status      string    `gorm:"type:varchar(20);not null;default:'new';index"`
	Priority    string    `gorm:"type:varchar(10);not null;default:'medium';index"`
	TargetGroup string    `gorm:"type:varchar(30);not null;index"`
	Category    *string   `gorm:"type:varchar(100);index"`
	VoteCount   int       `gorm:"not null;default:0"`
	SubmitterId uuid.UUID `gorm:"type:uuid;not null;index"`

	// AI analysis results; all nullable until the first successful run
	AiSentiment       *string `gorm:"type:varchar(20)"`
	AiConfidence      *float64
	AiNotes           *string `gorm:"type:text"`
	Recommendation    *string `gorm:"type:varchar(20);index"`
	ServiceConfidence *float64
	ServiceReasoning  *string        `gorm:"type:text"`
	MatchingServices  datatypes.JSON `gorm:"type:jsonb"`
	Impact            *string        `gorm:"type:varchar(10)"`
	AnalyzedAt        *time.Time

	Tags []Tag `gorm:"many2many:idea_tags"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Idea) TableName() string {
	return "ideas"
}

type Tag struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Tag) TableName() string {
	return "tags"
}

type Vote struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	IdeaId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_votes_idea_user"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_votes_idea_user"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Vote) TableName() string {
	return "votes"
}

type Comment struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	IdeaId    uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorId  uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Comment) TableName() string {
	return "comments"
}
