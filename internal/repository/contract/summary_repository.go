package contract

import (
	"context"

	"ai-summarizer-be/internal/entity"
	"ai-summarizer-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SummaryRepository interface {
	Create(ctx context.Context, summary *entity.Summary) error
	Update(ctx context.Context, summary *entity.Summary) error
	// UpdateText overwrites only the summary_text column.
	UpdateText(ctx context.Context, id uuid.UUID, summaryText string) error
	// UpdateTitle overwrites only the title column.
	UpdateTitle(ctx context.Context, id uuid.UUID, title string) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Summary, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Summary, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
