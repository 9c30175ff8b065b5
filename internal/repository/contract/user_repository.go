package contract

import (
	"context"

	"innovation-hub-be/internal/entity"
	"innovation-hub-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
