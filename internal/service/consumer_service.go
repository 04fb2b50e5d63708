package service

import (
	"context"
	"encoding/json"
	"time"

	"ai-summarizer-be/internal/dto"
	"ai-summarizer-be/internal/entity"
	"ai-summarizer-be/internal/pkg/logger"
	"ai-summarizer-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		log:        log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishSummaryActivityMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		cs.log.Error("consumer_service", "Failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.log.Info("consumer_service", "Recording summary activity", map[string]interface{}{
		"action":     payload.Action,
		"summary_id": payload.SummaryId.String(),
	})

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	activity := &entity.SummaryActivity{
		Id:        uuid.New(),
		SummaryId: payload.SummaryId,
		UserId:    payload.UserId,
		Action:    payload.Action,
		CreatedAt: time.Now(),
	}

	if err := uow.SummaryActivityRepository().Create(ctx, activity); err != nil {
		cs.log.Error("consumer_service", "Failed to record activity", map[string]interface{}{
			"summary_id": payload.SummaryId.String(),
			"error":      err.Error(),
		})
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
