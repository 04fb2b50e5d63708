package contract

import (
	"context"

	"ai-summarizer-be/internal/entity"
	"ai-summarizer-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PromptTemplateRepository interface {
	Create(ctx context.Context, prompt *entity.PromptTemplate) error
	CreateMany(ctx context.Context, prompts []*entity.PromptTemplate) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PromptTemplate, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PromptTemplate, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
