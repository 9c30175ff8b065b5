package contract

import (
	"context"

	"innovation-hub-be/internal/entity"
	"innovation-hub-be/internal/repository/specification"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type TagRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
