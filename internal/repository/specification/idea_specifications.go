package specification

import (
	"gorm.io/gorm"
)

// WithStatus filters ideas by lifecycle status.
type WithStatus struct {
	Status string
}

func (s WithStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// WithType filters ideas by submission type.
type WithType struct {
	Type string
}

func (s WithType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}

// WithPriority filters ideas by priority.
type WithPriority struct {
	Priority string
}

func (s WithPriority) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("priority = ?", s.Priority)
}

// WithTargetGroup filters ideas by target group.
type WithTargetGroup struct {
	TargetGroup string
}

func (s WithTargetGroup) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("target_group = ?", s.TargetGroup)
}

// WithCategory filters ideas by AI-assigned category.
type WithCategory struct {
	Category string
}

func (s WithCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

// WithTag filters ideas carrying the given tag.
type WithTag struct {
	Tag string
}

func (s WithTag) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Joins("JOIN idea_tags ON idea_tags.idea_id = ideas.id").
		Joins("JOIN tags ON tags.id = idea_tags.tag_id").
		Where("tags.name = ?", s.Tag)
}

// TitleOrDescriptionContains applies a case-insensitive free-text filter.
type TitleOrDescriptionContains struct {
	Search string
}

func (s TitleOrDescriptionContains) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Search + "%"
	return db.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
}

// Analyzed keeps only ideas that carry service-mapping results.
type Analyzed struct{}

func (s Analyzed) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("recommendation IS NOT NULL")
}
