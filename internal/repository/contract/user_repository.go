package contract

import (
	"context"

	"ai-summarizer-be/internal/entity"
	"ai-summarizer-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	SaveUserProvider(ctx context.Context, provider *entity.UserProvider) error
}
