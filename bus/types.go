package bus

import "time"

// Event is implemented by everything published on a Bus.
type Event interface {
	// EventType returns the name the event is dispatched under,
	// conventionally "category.action".
	EventType() string
	// Timestamp returns when the event was created.
	Timestamp() time.Time
}

// BaseEvent is a ready-made Event; embed it in richer event structs or
// publish it directly for events that carry no payload.
type BaseEvent struct {
	Type string
	Time time.Time
}

// NewBaseEvent creates a BaseEvent of the given type, stamped with the
// current time.
func NewBaseEvent(eventType string) BaseEvent {
	return BaseEvent{Type: eventType, Time: time.Now()}
}

// EventType implements Event.
func (e BaseEvent) EventType() string { return e.Type }

// Timestamp implements Event.
func (e BaseEvent) Timestamp() time.Time { return e.Time }
