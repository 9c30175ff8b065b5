package service

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"innovation-hub-be/internal/dto"
	"innovation-hub-be/internal/pkg/apperror"
)

type fakeIdeaService struct {
	IIdeaService
	analyzeCalls int32
	analyzeErr   error
}

func (f *fakeIdeaService) Analyze(ctx context.Context, ideaId uuid.UUID) (*dto.IdeaResponse, error) {
	atomic.AddInt32(&f.analyzeCalls, 1)
	return nil, f.analyzeErr
}

func publishAnalyzeMessage(t *testing.T, pubSub *gochannel.GoChannel, topic string, ideaId uuid.UUID) {
	t.Helper()
	payload, err := json.Marshal(dto.PublishAnalyzeIdeaMessage{IdeaId: ideaId})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	if err := pubSub.Publish(topic, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		t.Fatalf("publish: %v", err)
	}
}

func TestConsumerAnalyzeFailureIsSingleAttempt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	ideaService := &fakeIdeaService{analyzeErr: apperror.Providerf("embedding provider down")}
	consumer := NewConsumerService(pubSub, "analyze-test", ideaService)
	if err := consumer.Consume(ctx); err != nil {
		t.Fatalf("consume: %v", err)
	}

	publishAnalyzeMessage(t, pubSub, "analyze-test", uuid.New())

	// A Nack on provider failure would redeliver in a tight loop and
	// this count would explode within milliseconds.
	time.Sleep(200 * time.Millisecond)
	if got := atomic.LoadInt32(&ideaService.analyzeCalls); got != 1 {
		t.Fatalf("Analyze call count = %d, want 1", got)
	}
}

func TestConsumerAcksMissingIdea(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	ideaService := &fakeIdeaService{analyzeErr: apperror.NotFoundf("idea not found")}
	consumer := NewConsumerService(pubSub, "analyze-test", ideaService)
	if err := consumer.Consume(ctx); err != nil {
		t.Fatalf("consume: %v", err)
	}

	publishAnalyzeMessage(t, pubSub, "analyze-test", uuid.New())

	time.Sleep(200 * time.Millisecond)
	if got := atomic.LoadInt32(&ideaService.analyzeCalls); got != 1 {
		t.Fatalf("Analyze call count = %d, want 1", got)
	}
}
