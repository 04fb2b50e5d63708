package service

import (
	"context"
	"testing"
	"time"

	"ai-summarizer-be/internal/dto"
	"ai-summarizer-be/internal/entity"
	"ai-summarizer-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSeedDefaultsOnlyOnce(t *testing.T) {
	uow := newFakeUow()
	svc := NewPromptService(&fakeUowFactory{uow: uow})
	ctx := context.Background()

	created, err := svc.SeedDefaults(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 5, created)

	created, err = svc.SeedDefaults(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, created, "seeding is idempotent")
}

func TestGetAllIncludesDefaultsAndOwn(t *testing.T) {
	uow := newFakeUow()
	svc := NewPromptService(&fakeUowFactory{uow: uow})
	ctx := context.Background()
	userId := uuid.New()
	otherId := uuid.New()

	_, err := svc.SeedDefaults(ctx)
	assert.NoError(t, err)

	_, err = svc.Create(ctx, userId, &dto.CreatePromptTemplateRequest{
		Title:      "My Prompt",
		PromptText: "Summarize in pirate speak.",
	})
	assert.NoError(t, err)

	_, err = svc.Create(ctx, otherId, &dto.CreatePromptTemplateRequest{
		Title:      "Not Mine",
		PromptText: "Other user's preset.",
	})
	assert.NoError(t, err)

	prompts, err := svc.GetAll(ctx, userId)
	assert.NoError(t, err)
	assert.Len(t, prompts, 6, "five defaults plus the user's own prompt")

	defaults := 0
	for _, p := range prompts {
		assert.NotEqual(t, "Not Mine", p.Title)
		if p.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 5, defaults)
}

func TestDeletePromptOwnershipRules(t *testing.T) {
	uow := newFakeUow()
	svc := NewPromptService(&fakeUowFactory{uow: uow})
	ctx := context.Background()
	userId := uuid.New()

	// A shared default cannot be deleted.
	defaultPrompt := &entity.PromptTemplate{
		Id:        uuid.New(),
		Title:     "Executive Summary",
		UserId:    nil,
		CreatedAt: time.Now(),
	}
	uow.prompts.Create(ctx, defaultPrompt)

	err := svc.Delete(ctx, userId, defaultPrompt.Id)
	var appErr *serverutils.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)

	// A foreign prompt looks missing.
	otherId := uuid.New()
	foreign := &entity.PromptTemplate{
		Id:        uuid.New(),
		Title:     "Foreign",
		UserId:    &otherId,
		CreatedAt: time.Now(),
	}
	uow.prompts.Create(ctx, foreign)

	err = svc.Delete(ctx, userId, foreign.Id)
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)

	// The user's own prompt deletes fine.
	own, err := svc.Create(ctx, userId, &dto.CreatePromptTemplateRequest{
		Title:      "Mine",
		PromptText: "text",
	})
	assert.NoError(t, err)
	assert.NoError(t, svc.Delete(ctx, userId, own.Id))

	stored, _ := uow.prompts.FindOne(ctx)
	assert.NotNil(t, stored, "defaults and foreign prompts survive")
}
