package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventValidated EventType = "validated"
	EventQuery     EventType = "query"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Automaton string    `json:"automaton,omitempty"`
}

// ValidationEvent is emitted whenever a verdict is computed.
type ValidationEvent struct {
	EventBase
	Verdict Verdict `json:"-"`
}

// QueryEvent is emitted after each Evaluate or Explain call.
type QueryEvent struct {
	EventBase
	ID       string        `json:"id"`
	InputLen int           `json:"input_len"`
	Result   Result        `json:"-"`
	Duration time.Duration `json:"duration"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnValidated func(context.Context, *ValidationEvent)
	OnQuery     func(context.Context, *QueryEvent)
}
