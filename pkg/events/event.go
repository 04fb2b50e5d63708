package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SUMMARY_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
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

// Domain event codes published by the summary service.
const (
	TypeSummaryCreated = "SUMMARY_CREATED"
	TypeSummaryRefined = "SUMMARY_REFINED"
	TypeSummarySaved   = "SUMMARY_SAVED"
	TypeSummaryShared  = "SUMMARY_SHARED"
)

func NewSummaryEvent(eventType, summaryID, userID string) Event {
	return BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"summary_id": summaryID,
			"user_id":    userID,
		},
		OccurredAt: time.Now(),
	}
}
