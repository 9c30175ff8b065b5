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
)

type ProjectRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProjectMapper
}

func NewProjectRepository(db *gorm.DB) contract.ProjectRepository {
	return &ProjectRepositoryImpl{
		db:     db,
		mapper: mapper.NewProjectMapper(),
	}
}

func (r *ProjectRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProjectRepositoryImpl) Create(ctx context.Context, project *entity.Project) error {
	m := r.mapper.ToModel(project)
	if err := r.db.WithContext(ctx).Omit("Ideas").Create(m).Error; err != nil {
		return err
	}
	*project = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProjectRepositoryImpl) Update(ctx context.Context, project *entity.Project) error {
	m := r.mapper.ToModel(project)
	if err := r.db.WithContext(ctx).Omit("Ideas").Save(m).Error; err != nil {
		return err
	}
	return nil
}

func (r *ProjectRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Project{}, id).Error
}

func (r *ProjectRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Project, error) {
	var m model.Project
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Ideas"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProjectRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Project, error) {
	var models []*model.Project
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Ideas"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ProjectRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.Project{}).Count(&count).Error
	return count, err
}

func (r *ProjectRepositoryImpl) LinkIdea(ctx context.Context, projectId, ideaId uuid.UUID) error {
	project := model.Project{Id: projectId}
	return r.db.WithContext(ctx).
		Model(&project).
		Association("Ideas").
		Append(&model.Idea{Id: ideaId})
}

func (r *ProjectRepositoryImpl) UnlinkIdea(ctx context.Context, projectId, ideaId uuid.UUID) error {
	project := model.Project{Id: projectId}
	return r.db.WithContext(ctx).
		Model(&project).
		Association("Ideas").
		Delete(&model.Idea{Id: ideaId})
}
