package contract

import (
	"context"

	"innovation-hub-be/internal/entity"
	"innovation-hub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Project, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Project, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	LinkIdea(ctx context.Context, projectId, ideaId uuid.UUID) error
	UnlinkIdea(ctx context.Context, projectId, ideaId uuid.UUID) error
}

type StrategyDocumentRepository interface {
	Create(ctx context.Context, doc *entity.StrategyDocument) error
	Update(ctx context.Context, doc *entity.StrategyDocument) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StrategyDocument, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StrategyDocument, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type FundingCallRepository interface {
	Create(ctx context.Context, call *entity.FundingCall) error
	Update(ctx context.Context, call *entity.FundingCall) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FundingCall, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FundingCall, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
