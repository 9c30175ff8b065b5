package mapper

import (
	"innovation-hub-be/internal/entity"
	"innovation-hub-be/internal/model"
)

type CategoryMapper struct{}

func NewCategoryMapper() *CategoryMapper {
	return &CategoryMapper{}
}

func (m *CategoryMapper) ToEntity(c *model.Category) *entity.Category {
	if c == nil {
		return nil
	}
	return &entity.Category{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		CreatedAt:   c.CreatedAt,
	}
}

func (m *CategoryMapper) ToModel(c *entity.Category) *model.Category {
	if c == nil {
		return nil
	}
	return &model.Category{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		CreatedAt:   c.CreatedAt,
	}
}

func (m *CategoryMapper) ToEntities(models []*model.Category) []*entity.Category {
	entities := make([]*entity.Category, 0, len(models))
	for _, c := range models {
		entities = append(entities, m.ToEntity(c))
	}
	return entities
}

type TagMapper struct{}

func NewTagMapper() *TagMapper {
	return &TagMapper{}
}

func (m *TagMapper) ToEntity(t *model.Tag) *entity.Tag {
	if t == nil {
		return nil
	}
	return &entity.Tag{
		Id:        t.Id,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
	}
}

func (m *TagMapper) ToEntities(models []*model.Tag) []*entity.Tag {
	entities := make([]*entity.Tag, 0, len(models))
	for _, t := range models {
		entities = append(entities, m.ToEntity(t))
	}
	return entities
}
