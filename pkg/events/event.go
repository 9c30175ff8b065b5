package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "IDEA_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

const (
	TypeIdeaCreated       = "IDEA_CREATED"
	TypeIdeaAnalyzed      = "IDEA_ANALYZED"
	TypeIdeaStatusChanged = "IDEA_STATUS_CHANGED"
	TypeCatalogIndexed    = "CATALOG_INDEXED"
)

func NewIdeaCreated(ideaId, submitterId uuid.UUID, title string) Event {
	return BaseEvent{
		Type: TypeIdeaCreated,
		Data: map[string]interface{}{
			"idea_id":      ideaId.String(),
			"submitter_id": submitterId.String(),
			"title":        title,
		},
		OccurredAt: time.Now(),
	}
}

func NewIdeaAnalyzed(ideaId uuid.UUID, recommendation string, confidence float64) Event {
	return BaseEvent{
		Type: TypeIdeaAnalyzed,
		Data: map[string]interface{}{
			"idea_id":        ideaId.String(),
			"recommendation": recommendation,
			"confidence":     confidence,
		},
		OccurredAt: time.Now(),
	}
}

func NewIdeaStatusChanged(ideaId uuid.UUID, from, to string) Event {
	return BaseEvent{
		Type: TypeIdeaStatusChanged,
		Data: map[string]interface{}{
			"idea_id":     ideaId.String(),
			"from_status": from,
			"to_status":   to,
		},
		OccurredAt: time.Now(),
	}
}

func NewCatalogIndexed(serviceCount int) Event {
	return BaseEvent{
		Type: TypeCatalogIndexed,
		Data: map[string]interface{}{
			"service_count": serviceCount,
		},
		OccurredAt: time.Now(),
	}
}
