package unitofwork

import (
	"context"

	"ai-summarizer-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	SummaryRepository() contract.SummaryRepository
	PromptTemplateRepository() contract.PromptTemplateRepository
	SummaryActivityRepository() contract.SummaryActivityRepository
}
