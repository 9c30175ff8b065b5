package mapper

import (
	"time"

	"innovation-hub-be/internal/entity"
	"innovation-hub-be/internal/model"

	"github.com/google/uuid"
)

type ProjectMapper struct{}

func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

func (m *ProjectMapper) ToEntity(p *model.Project) *entity.Project {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	ideaIds := make([]uuid.UUID, len(p.Ideas))
	for i, idea := range p.Ideas {
		ideaIds[i] = idea.Id
	}

	return &entity.Project{
		Id:              p.Id,
		Name:            p.Name,
		Description:     p.Description,
		Status:          entity.ProjectStatus(p.Status),
		Type:            entity.ProjectType(p.Type),
		PlannedStart:    p.PlannedStart,
		PlannedEnd:      p.PlannedEnd,
		EstimatedBudget: p.EstimatedBudget,
		FundingSource:   p.FundingSource,
		OwnerDepartment: p.OwnerDepartment,
		ContactEmail:    p.ContactEmail,
		ProjectManager:  p.ProjectManager,
		IdeaIds:         ideaIds,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *ProjectMapper) ToModel(p *entity.Project) *model.Project {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Project{
		Id:              p.Id,
		Name:            p.Name,
		Description:     p.Description,
		Status:          string(p.Status),
		Type:            string(p.Type),
		PlannedStart:    p.PlannedStart,
		PlannedEnd:      p.PlannedEnd,
		EstimatedBudget: p.EstimatedBudget,
		FundingSource:   p.FundingSource,
		OwnerDepartment: p.OwnerDepartment,
		ContactEmail:    p.ContactEmail,
		ProjectManager:  p.ProjectManager,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *ProjectMapper) ToEntities(projects []*model.Project) []*entity.Project {
	entities := make([]*entity.Project, len(projects))
	for i, p := range projects {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
