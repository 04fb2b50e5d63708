package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"ai-summarizer-be/internal/constant"
	"ai-summarizer-be/internal/dto"
	"ai-summarizer-be/internal/entity"
	"ai-summarizer-be/internal/pkg/cache"
	"ai-summarizer-be/internal/pkg/logger"
	"ai-summarizer-be/internal/pkg/mailer"
	"ai-summarizer-be/internal/pkg/serverutils"
	"ai-summarizer-be/internal/repository/specification"
	"ai-summarizer-be/internal/repository/unitofwork"
	"ai-summarizer-be/pkg/events"
	"ai-summarizer-be/pkg/extract"
	"ai-summarizer-be/pkg/llm"
	pktNats "ai-summarizer-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v3"
)

type ISummaryService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSummaryRequest, upload []byte) (*dto.SummaryResponse, error)
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.SummaryResponse, error)
	GetByShareId(ctx context.Context, shareId string) (*dto.SummaryResponse, error)
	Rename(ctx context.Context, userId uuid.UUID, req *dto.RenameSummaryRequest) (*dto.SummaryResponse, error)
	SaveText(ctx context.Context, userId uuid.UUID, req *dto.SaveSummaryTextRequest) (*dto.SummaryResponse, error)
	Share(ctx context.Context, userId uuid.UUID, req *dto.ShareSummaryRequest) error
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type summaryService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	llmProvider      llm.LLMProvider
	eventPublisher   *pktNats.Publisher
	emailService     mailer.IEmailService
	shareCache       cache.IShareCache
	log              logger.ILogger
}

func NewSummaryService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	llmProvider llm.LLMProvider,
	eventPublisher *pktNats.Publisher,
	emailService mailer.IEmailService,
	shareCache cache.IShareCache,
	log logger.ILogger,
) ISummaryService {
	return &summaryService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		llmProvider:      llmProvider,
		eventPublisher:   eventPublisher,
		emailService:     emailService,
		shareCache:       shareCache,
		log:              log,
	}
}

func (c *summaryService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSummaryRequest, upload []byte) (*dto.SummaryResponse, error) {
	transcript := req.Transcript
	if len(upload) > 0 {
		extracted, err := extract.FromUpload(upload)
		if err != nil {
			if errors.Is(err, extract.ErrUnsupportedFormat) {
				return nil, serverutils.NewUnsupportedInputError("unsupported file type, upload .txt or .docx")
			}
			return nil, err
		}
		transcript = extracted
	}

	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return nil, serverutils.NewValidationError("transcript is required")
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, serverutils.NewValidationError("prompt is required")
	}

	// Summary generation is mandatory: a gateway failure fails the request.
	summaryPrompt := fmt.Sprintf(constant.SummaryPromptTemplateV1, req.Prompt, transcript)
	summaryText, err := c.llmProvider.Generate(ctx, summaryPrompt)
	if err != nil {
		return nil, serverutils.NewGatewayError("failed to generate summary")
	}

	// Title generation is best-effort: fall back to the default title.
	title := c.generateTitle(ctx, transcript)

	summary := entity.Summary{
		Id:              uuid.New(),
		UserId:          userId,
		Title:           title,
		OriginalContent: transcript,
		Prompt:          req.Prompt,
		SummaryText:     summaryText,
		ShareId:         shortuuid.New(),
		CreatedAt:       time.Now(),
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SummaryRepository().Create(ctx, &summary); err != nil {
		return nil, err
	}

	c.publishActivity(ctx, summary.Id, userId, constant.ActivityCreated)
	c.publishEvent(ctx, events.TypeSummaryCreated, summary.Id, userId)

	return toSummaryResponse(&summary), nil
}

func (c *summaryService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.SummaryResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	summaries, err := uow.SummaryRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		result = append(result, toSummaryResponse(summary))
	}

	return result, nil
}

func (c *summaryService) GetByShareId(ctx context.Context, shareId string) (*dto.SummaryResponse, error) {
	if cached, ok := c.shareCache.Get(ctx, shareId); ok {
		return cached, nil
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	summary, err := uow.SummaryRepository().FindOne(ctx, specification.ByShareId{ShareId: shareId})
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return nil, serverutils.NewNotFoundError("summary not found")
	}

	res := toSummaryResponse(summary)
	c.shareCache.Set(ctx, shareId, res)
	return res, nil
}

func (c *summaryService) Rename(ctx context.Context, userId uuid.UUID, req *dto.RenameSummaryRequest) (*dto.SummaryResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	summary, err := findOwnedSummary(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if err := uow.SummaryRepository().UpdateTitle(ctx, summary.Id, req.Title); err != nil {
		return nil, err
	}

	summary.Title = req.Title
	c.shareCache.Invalidate(ctx, summary.ShareId)

	return toSummaryResponse(summary), nil
}

func (c *summaryService) SaveText(ctx context.Context, userId uuid.UUID, req *dto.SaveSummaryTextRequest) (*dto.SummaryResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	summary, err := findOwnedSummary(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	// Only the summary text column is overwritten: title, transcript,
	// prompt and share id survive every save.
	if err := uow.SummaryRepository().UpdateText(ctx, summary.Id, req.SummaryText); err != nil {
		return nil, err
	}

	summary.SummaryText = req.SummaryText
	c.shareCache.Invalidate(ctx, summary.ShareId)

	c.publishActivity(ctx, summary.Id, userId, constant.ActivitySaved)
	c.publishEvent(ctx, events.TypeSummarySaved, summary.Id, userId)

	return toSummaryResponse(summary), nil
}

func (c *summaryService) Share(ctx context.Context, userId uuid.UUID, req *dto.ShareSummaryRequest) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	summary, err := findOwnedSummary(ctx, uow, userId, req.Id)
	if err != nil {
		return err
	}

	if err := c.emailService.SendSummary(req.Recipient, summary.Title, summary.SummaryText); err != nil {
		return serverutils.NewGatewayError("failed to send summary email")
	}

	c.publishActivity(ctx, summary.Id, userId, constant.ActivityShared)
	c.publishEvent(ctx, events.TypeSummaryShared, summary.Id, userId)

	return nil
}

func (c *summaryService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	summary, err := findOwnedSummary(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	if err := uow.SummaryRepository().Delete(ctx, summary.Id); err != nil {
		return err
	}

	c.shareCache.Invalidate(ctx, summary.ShareId)
	return nil
}

// findOwnedSummary resolves a summary by id under the caller's ownership.
// A missing row and a foreign row are indistinguishable to the caller.
func findOwnedSummary(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, id uuid.UUID) (*entity.Summary, error) {
	summary, err := uow.SummaryRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return nil, serverutils.NewNotFoundError("summary not found")
	}
	return summary, nil
}

func (c *summaryService) generateTitle(ctx context.Context, transcript string) string {
	excerpt := transcript
	if len(excerpt) > constant.TitleCharLimit {
		// Back up to a rune boundary so the excerpt stays valid UTF-8.
		cut := constant.TitleCharLimit
		for cut > 0 && !utf8.RuneStart(excerpt[cut]) {
			cut--
		}
		excerpt = excerpt[:cut]
	}

	title, err := c.llmProvider.Generate(ctx, fmt.Sprintf(constant.TitlePromptTemplateV1, excerpt))
	if err != nil {
		c.log.Warn("summary_service", "Title generation failed, using default", map[string]interface{}{
			"error": err.Error(),
		})
		return constant.DefaultSummaryTitle
	}

	title = strings.TrimSpace(strings.ReplaceAll(title, `"`, ""))
	if title == "" {
		return constant.DefaultSummaryTitle
	}
	return title
}

func (c *summaryService) publishActivity(ctx context.Context, summaryId, userId uuid.UUID, action string) {
	payload := dto.PublishSummaryActivityMessage{
		SummaryId: summaryId,
		UserId:    userId,
		Action:    action,
	}
	payloadJson, _ := json.Marshal(payload)
	if err := c.publisherService.Publish(ctx, payloadJson); err != nil {
		c.log.Warn("summary_service", "Failed to publish activity", map[string]interface{}{
			"action": action,
			"error":  err.Error(),
		})
	}
}

func (c *summaryService) publishEvent(ctx context.Context, eventType string, summaryId, userId uuid.UUID) {
	if c.eventPublisher == nil {
		return
	}
	evt := events.NewSummaryEvent(eventType, summaryId.String(), userId.String())
	// We log error but don't fail the request as the event mirror is auxiliary
	if err := c.eventPublisher.Publish(ctx, evt); err != nil {
		c.log.Warn("summary_service", "Failed to publish event", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
	}
}

func toSummaryResponse(summary *entity.Summary) *dto.SummaryResponse {
	return &dto.SummaryResponse{
		Id:              summary.Id,
		Title:           summary.Title,
		OriginalContent: summary.OriginalContent,
		Prompt:          summary.Prompt,
		SummaryText:     summary.SummaryText,
		ShareId:         summary.ShareId,
		CreatedAt:       summary.CreatedAt,
		UpdatedAt:       summary.UpdatedAt,
	}
}
