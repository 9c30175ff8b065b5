package specification

import "gorm.io/gorm"

// ByDocumentName filters chunks belonging to a named document.
type ByDocumentName struct {
	Name string
}

func (s ByDocumentName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("document_name = ?", s.Name)
}

// BySource filters chunks by their origin (catalog vs free upload).
type BySource struct {
	Source string
}

func (s BySource) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("source = ?", s.Source)
}
