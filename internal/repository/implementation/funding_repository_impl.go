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

type FundingCallRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FundingMapper
}

func NewFundingCallRepository(db *gorm.DB) contract.FundingCallRepository {
	return &FundingCallRepositoryImpl{
		db:     db,
		mapper: mapper.NewFundingMapper(),
	}
}

func (r *FundingCallRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FundingCallRepositoryImpl) Create(ctx context.Context, call *entity.FundingCall) error {
	m := r.mapper.ToModel(call)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*call = *r.mapper.ToEntity(m)
	return nil
}

func (r *FundingCallRepositoryImpl) Update(ctx context.Context, call *entity.FundingCall) error {
	m := r.mapper.ToModel(call)
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *FundingCallRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FundingCall{}, id).Error
}

func (r *FundingCallRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FundingCall, error) {
	var m model.FundingCall
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FundingCallRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FundingCall, error) {
	var models []*model.FundingCall
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FundingCallRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.FundingCall{}).Count(&count).Error
	return count, err
}
