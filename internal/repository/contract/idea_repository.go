package contract

import (
	"context"

	"innovation-hub-be/internal/entity"
	"innovation-hub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type IdeaRepository interface {
	Create(ctx context.Context, idea *entity.Idea) error
	Update(ctx context.Context, idea *entity.Idea) error
	Delete(ctx context.Context, id uuid.UUID) error
	HardDelete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Idea, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Idea, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// SetTags replaces the idea's tag set, creating missing tags by name.
	SetTags(ctx context.Context, ideaId uuid.UUID, tags []string) error
	// AddTags appends tags that the idea does not carry yet.
	AddTags(ctx context.Context, ideaId uuid.UUID, tags []string) error
	// AdjustVoteCount shifts the denormalized counter, clamped at zero.
	AdjustVoteCount(ctx context.Context, ideaId uuid.UUID, delta int) (int, error)
}

type VoteRepository interface {
	Create(ctx context.Context, vote *entity.Vote) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByIdeaAndUser(ctx context.Context, ideaId, userId uuid.UUID) (*entity.Vote, error)
	CountByIdea(ctx context.Context, ideaId uuid.UUID) (int64, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindAllByIdea(ctx context.Context, ideaId uuid.UUID) ([]*entity.Comment, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
