package events

import "time"

// TopicStoreChanged carries a notification after every successful store write.
const TopicStoreChanged = "STORE_CHANGED"

// Entity names used in store-change payloads.
const (
	EntityConfig      = "config"
	EntityRatingEvent = "rating_event"
	EntityFeedback    = "feedback"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "STORE_CHANGED").
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

// NewStoreChanged builds the notification published after a write: which
// entity changed, the operation, and the affected ids. Delivery is
// fire-and-forget; subscribers re-read state on receipt.
func NewStoreChanged(entityName, op string, ids []string) BaseEvent {
	return BaseEvent{
		Type: TopicStoreChanged,
		Data: map[string]interface{}{
			"entity": entityName,
			"op":     op,
			"ids":    ids,
		},
		OccurredAt: time.Now(),
	}
}
