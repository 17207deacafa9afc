// Package bus provides a named-event pub-sub dispatcher built on top of the
// sigslot core. Components publish events by name without knowing who
// receives them; subscribers register handlers without knowing who emits.
//
// Each event type is backed by one [sigslot.Signal], and each subscription is
// a slot endpoint connected to it, so the bus inherits the core's
// registration-order dispatch and teardown bookkeeping.
//
// # Main Types
//
//   - [Event]: interface all published events implement
//   - [BaseEvent]: embeddable implementation carrying type and timestamp
//   - [Bus]: the dispatcher; safe for concurrent use
//   - [Handler]: function type for event handlers
//
// # Basic Usage
//
//	b := bus.New()
//
//	b.Subscribe("conn.opened", func(e bus.Event) {
//	    log.Printf("event: %s", e.EventType())
//	})
//
//	// Subscribe to all events (useful for logging)
//	b.SubscribeAll(func(e bus.Event) {
//	    log.Printf("event: %s at %v", e.EventType(), e.Timestamp())
//	})
//
//	b.Publish(bus.NewBaseEvent("conn.opened"))
//
// Handlers run synchronously on the publishing goroutine. Specific handlers
// run before wildcard handlers; within each group, registration order holds.
// A panicking handler is recovered and logged so it cannot block delivery to
// the remaining handlers.
package bus
