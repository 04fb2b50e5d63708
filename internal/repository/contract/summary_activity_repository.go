package contract

import (
	"context"

	"ai-summarizer-be/internal/entity"
	"ai-summarizer-be/internal/repository/specification"
)

type SummaryActivityRepository interface {
	Create(ctx context.Context, activity *entity.SummaryActivity) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SummaryActivity, error)
}
