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

type StrategyDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StrategyMapper
}

func NewStrategyDocumentRepository(db *gorm.DB) contract.StrategyDocumentRepository {
	return &StrategyDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewStrategyMapper(),
	}
}

func (r *StrategyDocumentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StrategyDocumentRepositoryImpl) Create(ctx context.Context, doc *entity.StrategyDocument) error {
	m := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	return nil
}

func (r *StrategyDocumentRepositoryImpl) Update(ctx context.Context, doc *entity.StrategyDocument) error {
	m := r.mapper.ToModel(doc)
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *StrategyDocumentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.StrategyDocument{}, id).Error
}

func (r *StrategyDocumentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StrategyDocument, error) {
	var m model.StrategyDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *StrategyDocumentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StrategyDocument, error) {
	var models []*model.StrategyDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *StrategyDocumentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.StrategyDocument{}).Count(&count).Error
	return count, err
}
