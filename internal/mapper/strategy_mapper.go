package mapper

import (
	"time"

	"innovation-hub-be/internal/entity"
	"innovation-hub-be/internal/model"
)

type StrategyMapper struct{}

func NewStrategyMapper() *StrategyMapper {
	return &StrategyMapper{}
}

func (m *StrategyMapper) ToEntity(d *model.StrategyDocument) *entity.StrategyDocument {
	if d == nil {
		return nil
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.StrategyDocument{
		Id:          d.Id,
		Title:       d.Title,
		Description: d.Description,
		Type:        entity.StrategyDocumentType(d.Type),
		Level:       entity.StrategyLevel(d.Level),
		Source:      d.Source,
		ExternalRef: d.ExternalRef,
		ValidFrom:   d.ValidFrom,
		ValidTo:     d.ValidTo,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *StrategyMapper) ToModel(d *entity.StrategyDocument) *model.StrategyDocument {
	if d == nil {
		return nil
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.StrategyDocument{
		Id:          d.Id,
		Title:       d.Title,
		Description: d.Description,
		Type:        string(d.Type),
		Level:       int(d.Level),
		Source:      d.Source,
		ExternalRef: d.ExternalRef,
		ValidFrom:   d.ValidFrom,
		ValidTo:     d.ValidTo,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *StrategyMapper) ToEntities(docs []*model.StrategyDocument) []*entity.StrategyDocument {
	entities := make([]*entity.StrategyDocument, len(docs))
	for i, d := range docs {
		entities[i] = m.ToEntity(d)
	}
	return entities
}

type FundingMapper struct{}

func NewFundingMapper() *FundingMapper {
	return &FundingMapper{}
}

func (m *FundingMapper) ToEntity(c *model.FundingCall) *entity.FundingCall {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.FundingCall{
		Id:          c.Id,
		Title:       c.Title,
		Description: c.Description,
		Program:     c.Program,
		Funder:      c.Funder,
		Status:      entity.FundingCallStatus(c.Status),
		Deadline:    c.Deadline,
		BudgetMin:   c.BudgetMin,
		BudgetMax:   c.BudgetMax,
		Url:         c.Url,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *FundingMapper) ToModel(c *entity.FundingCall) *model.FundingCall {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.FundingCall{
		Id:          c.Id,
		Title:       c.Title,
		Description: c.Description,
		Program:     c.Program,
		Funder:      c.Funder,
		Status:      string(c.Status),
		Deadline:    c.Deadline,
		BudgetMin:   c.BudgetMin,
		BudgetMax:   c.BudgetMax,
		Url:         c.Url,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *FundingMapper) ToEntities(calls []*model.FundingCall) []*entity.FundingCall {
	entities := make([]*entity.FundingCall, len(calls))
	for i, c := range calls {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
