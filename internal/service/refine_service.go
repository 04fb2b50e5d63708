package service

import (
	"context"
	"encoding/json"
	"errors"

	"ai-summarizer-be/internal/constant"
	"ai-summarizer-be/internal/dto"
	"ai-summarizer-be/internal/pkg/cache"
	"ai-summarizer-be/internal/pkg/logger"
	"ai-summarizer-be/internal/pkg/serverutils"
	"ai-summarizer-be/internal/repository/memory"
	"ai-summarizer-be/internal/repository/unitofwork"
	"ai-summarizer-be/pkg/events"
	"ai-summarizer-be/pkg/llm"
	pktNats "ai-summarizer-be/pkg/nats"
	"ai-summarizer-be/pkg/refine"

	"github.com/google/uuid"
)

type IRefineService interface {
	// Refine is the stateless pass-through: the client sends the whole
	// current text and gets the refined text back.
	Refine(ctx context.Context, req *dto.RefineRequest) (*dto.RefineResponse, error)

	// Server-held sessions keyed per (user, summary).
	OpenSession(ctx context.Context, userId uuid.UUID, summaryId uuid.UUID) (*dto.RefineSessionResponse, error)
	GetSession(ctx context.Context, userId uuid.UUID, summaryId uuid.UUID) (*dto.RefineSessionResponse, error)
	SessionRefine(ctx context.Context, userId uuid.UUID, summaryId uuid.UUID, req *dto.SessionRefineRequest) (*dto.RefineSessionResponse, error)
	UndoSession(ctx context.Context, userId uuid.UUID, summaryId uuid.UUID) (*dto.RefineSessionResponse, error)
	SaveSession(ctx context.Context, userId uuid.UUID, summaryId uuid.UUID) (*dto.SummaryResponse, error)
}

type refineService struct {
	uowFactory       unitofwork.RepositoryFactory
	orchestrator     *refine.Orchestrator
	sessions         *memory.RefineSessionRepository
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	shareCache       cache.IShareCache
	log              logger.ILogger
}

func NewRefineService(
	uowFactory unitofwork.RepositoryFactory,
	orchestrator *refine.Orchestrator,
	sessions *memory.RefineSessionRepository,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	shareCache cache.IShareCache,
	log logger.ILogger,
) IRefineService {
	return &refineService{
		uowFactory:       uowFactory,
		orchestrator:     orchestrator,
		sessions:         sessions,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		shareCache:       shareCache,
		log:              log,
	}
}

func (c *refineService) Refine(ctx context.Context, req *dto.RefineRequest) (*dto.RefineResponse, error) {
	refined, err := c.orchestrator.Refine(ctx, req.CurrentSummary, req.RefinementPrompt)
	if err != nil {
		return nil, mapRefineError(err)
	}

	return &dto.RefineResponse{RefinedText: refined}, nil
}

// OpenSession starts a fresh session seeded from the stored summary text.
// Reopening always discards any previous session for the same summary.
func (c *refineService) OpenSession(ctx context.Context, userId uuid.UUID, summaryId uuid.UUID) (*dto.RefineSessionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	summary, err := findOwnedSummary(ctx, uow, userId, summaryId)
	if err != nil {
		return nil, err
	}

	session := refine.NewSession(userId, summaryId, summary.SummaryText)
	c.sessions.Save(refine.Key(userId, summaryId), session)

	return dto.NewRefineSessionResponse(session.Snapshot()), nil
}

func (c *refineService) GetSession(ctx context.Context, userId uuid.UUID, summaryId uuid.UUID) (*dto.RefineSessionResponse, error) {
	session, found := c.sessions.Get(refine.Key(userId, summaryId))
	if !found {
		return nil, serverutils.NewNotFoundError("refine session not found")
	}

	return dto.NewRefineSessionResponse(session.Snapshot()), nil
}

func (c *refineService) SessionRefine(ctx context.Context, userId uuid.UUID, summaryId uuid.UUID, req *dto.SessionRefineRequest) (*dto.RefineSessionResponse, error) {
	key := refine.Key(userId, summaryId)
	session, found := c.sessions.Get(key)
	if !found {
		return nil, serverutils.NewNotFoundError("refine session not found")
	}

	workingText, err := session.BeginRound()
	if err != nil {
		return nil, mapRefineError(err)
	}

	refined, err := c.orchestrator.Refine(ctx, workingText, req.Instruction)
	if err != nil {
		// The round is abandoned: text slots and the exchange log keep
		// their pre-round values.
		session.FailRound()
		c.sessions.Save(key, session)
		return nil, mapRefineError(err)
	}

	session.CompleteRound(req.Instruction, refined)
	c.sessions.Save(key, session)

	c.publishActivity(ctx, summaryId, userId, constant.ActivityRefined)
	c.publishEvent(ctx, events.TypeSummaryRefined, summaryId, userId)

	return dto.NewRefineSessionResponse(session.Snapshot()), nil
}

func (c *refineService) UndoSession(ctx context.Context, userId uuid.UUID, summaryId uuid.UUID) (*dto.RefineSessionResponse, error) {
	key := refine.Key(userId, summaryId)
	session, found := c.sessions.Get(key)
	if !found {
		return nil, serverutils.NewNotFoundError("refine session not found")
	}

	if err := session.Undo(); err != nil {
		return nil, mapRefineError(err)
	}
	c.sessions.Save(key, session)

	return dto.NewRefineSessionResponse(session.Snapshot()), nil
}

// SaveSession writes the session's working text back to the summary row.
// The session itself stays open so the user can keep refining.
func (c *refineService) SaveSession(ctx context.Context, userId uuid.UUID, summaryId uuid.UUID) (*dto.SummaryResponse, error) {
	session, found := c.sessions.Get(refine.Key(userId, summaryId))
	if !found {
		return nil, serverutils.NewNotFoundError("refine session not found")
	}
	view := session.Snapshot()

	uow := c.uowFactory.NewUnitOfWork(ctx)
	summary, err := findOwnedSummary(ctx, uow, userId, summaryId)
	if err != nil {
		return nil, err
	}

	if err := uow.SummaryRepository().UpdateText(ctx, summary.Id, view.WorkingText); err != nil {
		return nil, err
	}

	summary.SummaryText = view.WorkingText
	c.shareCache.Invalidate(ctx, summary.ShareId)

	c.publishActivity(ctx, summaryId, userId, constant.ActivitySaved)
	c.publishEvent(ctx, events.TypeSummarySaved, summaryId, userId)

	return toSummaryResponse(summary), nil
}

func (c *refineService) publishActivity(ctx context.Context, summaryId, userId uuid.UUID, action string) {
	payload := dto.PublishSummaryActivityMessage{
		SummaryId: summaryId,
		UserId:    userId,
		Action:    action,
	}
	payloadJson, _ := json.Marshal(payload)
	if err := c.publisherService.Publish(ctx, payloadJson); err != nil {
		c.log.Warn("refine_service", "Failed to publish activity", map[string]interface{}{
			"action": action,
			"error":  err.Error(),
		})
	}
}

func (c *refineService) publishEvent(ctx context.Context, eventType string, summaryId, userId uuid.UUID) {
	if c.eventPublisher == nil {
		return
	}
	evt := events.NewSummaryEvent(eventType, summaryId.String(), userId.String())
	if err := c.eventPublisher.Publish(ctx, evt); err != nil {
		c.log.Warn("refine_service", "Failed to publish event", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
	}
}

func mapRefineError(err error) error {
	switch {
	case errors.Is(err, refine.ErrEmptyInstruction):
		return serverutils.NewValidationError("refinement instruction is required")
	case errors.Is(err, refine.ErrRefineInFlight):
		return serverutils.NewConflictError("a refinement is already in progress")
	case errors.Is(err, llm.ErrGateway):
		return serverutils.NewGatewayError("failed to refine summary")
	default:
		return err
	}
}
