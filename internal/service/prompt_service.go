package service

import (
	"context"
	"time"

	"ai-summarizer-be/internal/dto"
	"ai-summarizer-be/internal/entity"
	"ai-summarizer-be/internal/pkg/serverutils"
	"ai-summarizer-be/internal/repository/specification"
	"ai-summarizer-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// defaultPromptSeeds are the built-in summarization presets, created once
// on an empty prompts table. They belong to no user.
var defaultPromptSeeds = []struct {
	Title      string
	PromptText string
}{
	{
		Title:      "Executive Summary",
		PromptText: "Summarize the following transcript into a concise executive summary, highlighting the key decisions and outcomes. Format the output as clean markdown.",
	},
	{
		Title:      "Action Items",
		PromptText: "Extract all action items from the transcript. List them as a markdown checklist with assigned owners if mentioned.",
	},
	{
		Title:      "Bullet Points",
		PromptText: "Condense the key topics of this meeting into a series of clear and concise markdown bullet points.",
	},
	{
		Title:      "Follow-up Email",
		PromptText: "Draft a professional follow-up email to all attendees based on the transcript. Include a brief summary, a list of action items with owners, and a concluding remark.",
	},
	{
		Title:      "Key Questions",
		PromptText: "Identify and list all unresolved questions or topics that require further discussion from the transcript.",
	},
}

type IPromptService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.PromptTemplateResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreatePromptTemplateRequest) (*dto.PromptTemplateResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	SeedDefaults(ctx context.Context) (int, error)
}

type promptService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPromptService(uowFactory unitofwork.RepositoryFactory) IPromptService {
	return &promptService{uowFactory: uowFactory}
}

func (c *promptService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.PromptTemplateResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	prompts, err := uow.PromptTemplateRepository().FindAll(ctx,
		specification.DefaultOrOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PromptTemplateResponse, 0, len(prompts))
	for _, prompt := range prompts {
		result = append(result, toPromptTemplateResponse(prompt))
	}

	return result, nil
}

func (c *promptService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreatePromptTemplateRequest) (*dto.PromptTemplateResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	prompt := entity.PromptTemplate{
		Id:         uuid.New(),
		Title:      req.Title,
		PromptText: req.PromptText,
		UserId:     &userId,
		CreatedAt:  time.Now(),
	}

	if err := uow.PromptTemplateRepository().Create(ctx, &prompt); err != nil {
		return nil, err
	}

	return toPromptTemplateResponse(&prompt), nil
}

func (c *promptService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	prompt, err := uow.PromptTemplateRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	// Defaults are shared and cannot be deleted; foreign prompts look
	// the same as missing ones.
	if prompt == nil || prompt.UserId == nil || *prompt.UserId != userId {
		return serverutils.NewNotFoundError("prompt not found")
	}

	return uow.PromptTemplateRepository().Delete(ctx, id)
}

// SeedDefaults inserts the built-in presets when none exist yet.
// Returns the number of prompts created.
func (c *promptService) SeedDefaults(ctx context.Context) (int, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.PromptTemplateRepository().Count(ctx, specification.DefaultsOnly{})
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, nil
	}

	prompts := make([]*entity.PromptTemplate, 0, len(defaultPromptSeeds))
	for _, seed := range defaultPromptSeeds {
		prompts = append(prompts, &entity.PromptTemplate{
			Id:         uuid.New(),
			Title:      seed.Title,
			PromptText: seed.PromptText,
			UserId:     nil,
			CreatedAt:  time.Now(),
		})
	}

	if err := uow.PromptTemplateRepository().CreateMany(ctx, prompts); err != nil {
		return 0, err
	}

	return len(prompts), nil
}

func toPromptTemplateResponse(prompt *entity.PromptTemplate) *dto.PromptTemplateResponse {
	return &dto.PromptTemplateResponse{
		Id:         prompt.Id,
		Title:      prompt.Title,
		PromptText: prompt.PromptText,
		IsDefault:  prompt.UserId == nil,
		CreatedAt:  prompt.CreatedAt,
	}
}
