package implementation

import (
	"context"
	"errors"

	"innovation-hub-be/internal/entity"
	"innovation-hub-be/internal/mapper"
	"innovation-hub-be/internal/model"
	"innovation-hub-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VoteMapper
}

func NewVoteRepository(db *gorm.DB) contract.VoteRepository {
	return &VoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewVoteMapper(),
	}
}

func (r *VoteRepositoryImpl) Create(ctx context.Context, vote *entity.Vote) error {
	m := r.mapper.ToModel(vote)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*vote = *r.mapper.ToEntity(m)
	return nil
}

func (r *VoteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Vote{}, id).Error
}

func (r *VoteRepositoryImpl) FindByIdeaAndUser(ctx context.Context, ideaId, userId uuid.UUID) (*entity.Vote, error) {
	var m model.Vote
	err := r.db.WithContext(ctx).
		Where("idea_id = ? AND user_id = ?", ideaId, userId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *VoteRepositoryImpl) CountByIdea(ctx context.Context, ideaId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Vote{}).
		Where("idea_id = ?", ideaId).
		Count(&count).Error
	return count, err
}
