package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"innovation-hub-be/internal/dto"
	"innovation-hub-be/internal/pkg/apperror"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub      *gochannel.GoChannel
	topicName   string
	ideaService IIdeaService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	ideaService IIdeaService,
) IConsumerService {
	return &consumerService{
		pubSub:      pubSub,
		topicName:   topicName,
		ideaService: ideaService,
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
	var payload dto.PublishAnalyzeIdeaMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Analyzing idea %s", payload.IdeaId)

	_, err := cs.ideaService.Analyze(ctx, payload.IdeaId)
	switch {
	case err == nil:
		log.Printf("[SUCCESS] Idea analyzed: %s", payload.IdeaId)
		msg.Ack()
	case errors.Is(err, apperror.ErrNotFound):
		// Idea deleted before the worker got to it. Ack.
		log.Printf("[WARN] Idea not found, skipping: %s", payload.IdeaId)
		msg.Ack()
	case errors.Is(err, apperror.ErrAnalysisInProgress):
		// Another worker holds the idea. That run will persist the result.
		log.Printf("[WARN] Analysis already in progress for idea %s", payload.IdeaId)
		msg.Ack()
	default:
		// Analysis is single-attempt. A Nack would make the in-process
		// channel redeliver immediately and spin against a downed
		// provider, so the idea is left unanalyzed instead.
		log.Printf("[ERROR] Failed to analyze idea %s, leaving it unanalyzed: %v", payload.IdeaId, err)
		msg.Ack()
	}
}
