package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "TROUBLESHOOT_COMPLETED").
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

// NewTroubleshootCompleted records one finished troubleshoot request for
// the analytics consumer.
func NewTroubleshootCompleted(responseType, urgencyLevel string, plugins, problems []string, articlesFound int, elapsed time.Duration) BaseEvent {
	return BaseEvent{
		Type: "TROUBLESHOOT_COMPLETED",
		Data: map[string]interface{}{
			"response_type":  responseType,
			"urgency_level":  urgencyLevel,
			"plugins":        plugins,
			"problems":       problems,
			"articles_found": articlesFound,
			"elapsed_ms":     elapsed.Milliseconds(),
		},
		OccurredAt: time.Now().UTC(),
	}
}
