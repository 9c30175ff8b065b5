package implementation

import (
	"context"
	"errors"

	"innovation-hub-be/internal/entity"
	"innovation-hub-be/internal/mapper"
	"innovation-hub-be/internal/model"
	"innovation-hub-be/internal/repository/contract"
	"innovation-hub-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IdeaRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.IdeaMapper
}

func NewIdeaRepository(db *gorm.DB) contract.IdeaRepository {
	return &IdeaRepositoryImpl{
		db:     db,
		mapper: mapper.NewIdeaMapper(),
	}
}

func (r *IdeaRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *IdeaRepositoryImpl) Create(ctx context.Context, idea *entity.Idea) error {
	m := r.mapper.ToModel(idea)
	m.Tags = nil // tags are attached separately via SetTags/AddTags
	if err := r.db.WithContext(ctx).Omit("Tags").Create(m).Error; err != nil {
		return err
	}
	if len(idea.Tags) > 0 {
		if err := r.SetTags(ctx, m.Id, idea.Tags); err != nil {
			return err
		}
	}
	created, err := r.findModel(ctx, specification.ByID{ID: m.Id})
	if err != nil {
		return err
	}
	*idea = *r.mapper.ToEntity(created)
	return nil
}

func (r *IdeaRepositoryImpl) Update(ctx context.Context, idea *entity.Idea) error {
	m := r.mapper.ToModel(idea)
	m.Tags = nil
	if err := r.db.WithContext(ctx).Omit("Tags").Save(m).Error; err != nil {
		return err
	}
	updated, err := r.findModel(ctx, specification.ByID{ID: m.Id})
	if err != nil {
		return err
	}
	*idea = *r.mapper.ToEntity(updated)
	return nil
}

func (r *IdeaRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Idea{}, id).Error
}

func (r *IdeaRepositoryImpl) HardDelete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("idea_id = ?", id).Delete(&model.Vote{}).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Where("idea_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Exec("DELETE FROM idea_tags WHERE idea_id = ?", id).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Unscoped().Delete(&model.Idea{}, id).Error
}

func (r *IdeaRepositoryImpl) findModel(ctx context.Context, specs ...specification.Specification) (*model.Idea, error) {
	var m model.Idea
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Tags"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *IdeaRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Idea, error) {
	m, err := r.findModel(ctx, specs...)
	if err != nil || m == nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *IdeaRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Idea, error) {
	var models []*model.Idea
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Tags"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *IdeaRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.Idea{}).Count(&count).Error
	return count, err
}

func (r *IdeaRepositoryImpl) SetTags(ctx context.Context, ideaId uuid.UUID, tags []string) error {
	tagModels, err := r.getOrCreateTags(ctx, tags)
	if err != nil {
		return err
	}
	idea := model.Idea{Id: ideaId}
	return r.db.WithContext(ctx).Model(&idea).Association("Tags").Replace(tagModels)
}

func (r *IdeaRepositoryImpl) AddTags(ctx context.Context, ideaId uuid.UUID, tags []string) error {
	tagModels, err := r.getOrCreateTags(ctx, tags)
	if err != nil {
		return err
	}
	idea := model.Idea{Id: ideaId}
	return r.db.WithContext(ctx).Model(&idea).Association("Tags").Append(tagModels)
}

func (r *IdeaRepositoryImpl) getOrCreateTags(ctx context.Context, tags []string) ([]*model.Tag, error) {
	tagModels := make([]*model.Tag, 0, len(tags))
	for _, name := range tags {
		var tag model.Tag
		err := r.db.WithContext(ctx).
			Where("name = ?", name).
			Attrs(model.Tag{Name: name}).
			FirstOrCreate(&tag).Error
		if err != nil {
			return nil, err
		}
		tagModels = append(tagModels, &tag)
	}
	return tagModels, nil
}

func (r *IdeaRepositoryImpl) AdjustVoteCount(ctx context.Context, ideaId uuid.UUID, delta int) (int, error) {
	err := r.db.WithContext(ctx).
		Model(&model.Idea{}).
		Where("id = ?", ideaId).
		Update("vote_count", gorm.Expr("GREATEST(vote_count + ?, 0)", delta)).Error
	if err != nil {
		return 0, err
	}

	var m model.Idea
	err = r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "SHARE"}).
		Select("vote_count").
		First(&m, "id = ?", ideaId).Error
	if err != nil {
		return 0, err
	}
	return m.VoteCount, nil
}
