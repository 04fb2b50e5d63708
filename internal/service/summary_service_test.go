package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"ai-summarizer-be/internal/constant"
	"ai-summarizer-be/internal/dto"
	"ai-summarizer-be/internal/entity"
	"ai-summarizer-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newSummaryServiceForTest(respond func(prompt string) (string, error)) (ISummaryService, *fakeUow, *stubLLM, *recordingPublisher, *noopShareCache, *fakeLogger) {
	uow := newFakeUow()
	provider := &stubLLM{respond: respond}
	publisher := &recordingPublisher{}
	shareCache := &noopShareCache{}
	log := &fakeLogger{}

	svc := NewSummaryService(
		&fakeUowFactory{uow: uow},
		publisher,
		provider,
		nil, // no NATS in unit tests
		nil, // mailer unused unless Share is called
		shareCache,
		log,
	)
	return svc, uow, provider, publisher, shareCache, log
}

func seedSummary(uow *fakeUow, userId uuid.UUID) *entity.Summary {
	summary := &entity.Summary{
		Id:              uuid.New(),
		UserId:          userId,
		Title:           "Weekly Sync",
		OriginalContent: "we talked about the roadmap",
		Prompt:          "Summarize the meeting",
		SummaryText:     "Roadmap discussed.",
		ShareId:         "abc123",
		CreatedAt:       time.Now(),
	}
	uow.summaries.Create(context.Background(), summary)
	return summary
}

func isTitlePrompt(prompt string) bool {
	return strings.HasPrefix(prompt, "Analyze the following text")
}

func TestCreateSummary(t *testing.T) {
	svc, uow, provider, publisher, _, _ := newSummaryServiceForTest(func(prompt string) (string, error) {
		if isTitlePrompt(prompt) {
			return `"Roadmap Planning Session"`, nil
		}
		return "The team agreed on the Q3 roadmap.", nil
	})

	userId := uuid.New()
	res, err := svc.Create(context.Background(), userId, &dto.CreateSummaryRequest{
		Transcript: "long meeting transcript",
		Prompt:     "Summarize the key decisions",
	}, nil)

	assert.NoError(t, err)
	assert.Equal(t, "The team agreed on the Q3 roadmap.", res.SummaryText)
	assert.Equal(t, "Roadmap Planning Session", res.Title, "quotes should be stripped from the generated title")
	assert.NotEmpty(t, res.ShareId)
	assert.Equal(t, "long meeting transcript", res.OriginalContent)
	assert.Equal(t, 2, provider.numCalls, "one summary call and one title call")

	stored, _ := uow.summaries.FindOne(context.Background())
	assert.NotNil(t, stored)
	assert.Equal(t, userId, stored.UserId)
	assert.Equal(t, []string{constant.ActivityCreated}, publisher.actions())
}

func TestCreateSummaryTitleFallback(t *testing.T) {
	svc, _, _, _, _, log := newSummaryServiceForTest(func(prompt string) (string, error) {
		if isTitlePrompt(prompt) {
			return "", errors.New("model overloaded")
		}
		return "summary text", nil
	})

	res, err := svc.Create(context.Background(), uuid.New(), &dto.CreateSummaryRequest{
		Transcript: "transcript",
		Prompt:     "Summarize",
	}, nil)

	assert.NoError(t, err, "title generation failure must not fail the request")
	assert.Equal(t, constant.DefaultSummaryTitle, res.Title)
	assert.Equal(t, "summary text", res.SummaryText)
	assert.Contains(t, log.warnings(), "Title generation failed, using default")
}

func TestTitleExcerptKeepsRuneBoundary(t *testing.T) {
	svc, _, provider, _, _, _ := newSummaryServiceForTest(nil)

	// The last rune straddles the excerpt limit: a byte-offset cut would
	// split it and send invalid UTF-8 to the gateway.
	transcript := strings.Repeat("a", constant.TitleCharLimit-1) + strings.Repeat("é", 8)

	_, err := svc.Create(context.Background(), uuid.New(), &dto.CreateSummaryRequest{
		Transcript: transcript,
		Prompt:     "Summarize",
	}, nil)
	assert.NoError(t, err)

	sawTitlePrompt := false
	for _, prompt := range provider.prompts {
		if isTitlePrompt(prompt) {
			sawTitlePrompt = true
			assert.True(t, utf8.ValidString(prompt), "title prompt must stay valid UTF-8")
		}
	}
	assert.True(t, sawTitlePrompt)
}

func TestCreateSummaryGatewayFailure(t *testing.T) {
	svc, uow, _, publisher, _, _ := newSummaryServiceForTest(func(prompt string) (string, error) {
		return "", errors.New("upstream down")
	})

	_, err := svc.Create(context.Background(), uuid.New(), &dto.CreateSummaryRequest{
		Transcript: "transcript",
		Prompt:     "Summarize",
	}, nil)

	var appErr *serverutils.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.Code)

	stored, _ := uow.summaries.FindOne(context.Background())
	assert.Nil(t, stored, "nothing persisted when generation fails")
	assert.Empty(t, publisher.actions())
}

func TestCreateSummaryEmptyTranscript(t *testing.T) {
	svc, _, provider, _, _, _ := newSummaryServiceForTest(nil)

	_, err := svc.Create(context.Background(), uuid.New(), &dto.CreateSummaryRequest{
		Transcript: "   \n\t ",
		Prompt:     "Summarize",
	}, nil)

	var appErr *serverutils.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, 0, provider.numCalls, "rejected before any gateway call")
}

func TestSaveTextPreservesOtherFields(t *testing.T) {
	svc, uow, _, publisher, shareCache, _ := newSummaryServiceForTest(nil)
	userId := uuid.New()
	original := seedSummary(uow, userId)

	res, err := svc.SaveText(context.Background(), userId, &dto.SaveSummaryTextRequest{
		Id:          original.Id,
		SummaryText: "Edited and refined.",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Edited and refined.", res.SummaryText)

	stored, _ := uow.summaries.FindOne(context.Background())
	assert.Equal(t, "Edited and refined.", stored.SummaryText)
	assert.Equal(t, original.Title, stored.Title)
	assert.Equal(t, original.OriginalContent, stored.OriginalContent)
	assert.Equal(t, original.Prompt, stored.Prompt)
	assert.Equal(t, original.ShareId, stored.ShareId)

	assert.Equal(t, []string{constant.ActivitySaved}, publisher.actions())
	assert.Contains(t, shareCache.invalidated, original.ShareId)
}

func TestSaveTextForeignSummaryNotFound(t *testing.T) {
	svc, uow, _, _, _, _ := newSummaryServiceForTest(nil)
	owner := uuid.New()
	summary := seedSummary(uow, owner)

	_, err := svc.SaveText(context.Background(), uuid.New(), &dto.SaveSummaryTextRequest{
		Id:          summary.Id,
		SummaryText: "hijack attempt",
	})

	var appErr *serverutils.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code, "foreign rows are indistinguishable from missing ones")

	stored, _ := uow.summaries.FindOne(context.Background())
	assert.Equal(t, summary.SummaryText, stored.SummaryText)
}

func TestSequentialSavesLastWriteWins(t *testing.T) {
	svc, uow, _, _, _, _ := newSummaryServiceForTest(nil)
	userId := uuid.New()
	summary := seedSummary(uow, userId)

	_, err := svc.SaveText(context.Background(), userId, &dto.SaveSummaryTextRequest{
		Id:          summary.Id,
		SummaryText: "first version",
	})
	assert.NoError(t, err)

	_, err = svc.SaveText(context.Background(), userId, &dto.SaveSummaryTextRequest{
		Id:          summary.Id,
		SummaryText: "second version",
	})
	assert.NoError(t, err)

	stored, _ := uow.summaries.FindOne(context.Background())
	assert.Equal(t, "second version", stored.SummaryText)
}

func TestGetByShareIdPublic(t *testing.T) {
	svc, uow, _, _, _, _ := newSummaryServiceForTest(nil)
	summary := seedSummary(uow, uuid.New())

	res, err := svc.GetByShareId(context.Background(), summary.ShareId)
	assert.NoError(t, err)
	assert.Equal(t, summary.Id, res.Id)
	assert.Equal(t, summary.SummaryText, res.SummaryText)

	_, err = svc.GetByShareId(context.Background(), "nope")
	var appErr *serverutils.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestRenameOnlyChangesTitle(t *testing.T) {
	svc, uow, _, _, _, _ := newSummaryServiceForTest(nil)
	userId := uuid.New()
	summary := seedSummary(uow, userId)

	res, err := svc.Rename(context.Background(), userId, &dto.RenameSummaryRequest{
		Id:    summary.Id,
		Title: "Q3 Planning",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Q3 Planning", res.Title)

	stored, _ := uow.summaries.FindOne(context.Background())
	assert.Equal(t, "Q3 Planning", stored.Title)
	assert.Equal(t, summary.SummaryText, stored.SummaryText)
}
