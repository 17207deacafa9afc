package bus

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/Iron-Ham/sigslot"
	"github.com/Iron-Ham/sigslot/internal/logging"
)

// wildcard is the pseudo event type that receives every published event.
const wildcard = "*"

// Handler is a function that handles an event.
type Handler func(Event)

// subscriber is the slot endpoint backing one subscription. The bus connects
// it to the signal for its event type; Unsubscribe tears it down through the
// endpoint, which removes the connection from the signal.
type subscriber struct {
	sigslot.HasSlots
	id      string
	handler Handler
}

func (s *subscriber) handle(e Event) { s.handler(e) }

// Bus is a synchronous pub-sub event dispatcher. It is safe for concurrent
// use.
type Bus struct {
	mu      sync.RWMutex
	signals map[string]*sigslot.Signal[Event] // eventType -> dispatch signal
	subs    map[string]*subscriber            // subscription ID -> endpoint
	nextID  atomic.Uint64
	logger  *slog.Logger
}

// Option configures a Bus.
type Option func(*Bus)

// WithLogger routes the bus's debug output and handler-panic reports to l.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bus) {
		b.logger = l
	}
}

// New creates an event bus.
func New(opts ...Option) *Bus {
	b := &Bus{
		signals: make(map[string]*sigslot.Signal[Event]),
		subs:    make(map[string]*subscriber),
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers a handler for a specific event type.
// Returns a subscription ID that can be used to unsubscribe.
func (b *Bus) Subscribe(eventType string, handler Handler) string {
	sub := &subscriber{
		id:      fmt.Sprintf("sub-%d", b.nextID.Add(1)),
		handler: b.guard(handler),
	}

	sig := b.signal(eventType)
	sigslot.Connect(sig, sub, (*subscriber).handle)

	b.mu.Lock()
	b.subs[sub.id] = sub
	b.mu.Unlock()
	return sub.id
}

// SubscribeAll registers a handler for all event types.
// Returns a subscription ID that can be used to unsubscribe.
func (b *Bus) SubscribeAll(handler Handler) string {
	return b.Subscribe(wildcard, handler)
}

// Unsubscribe removes a subscription by ID.
// Returns true if the subscription was found and removed.
func (b *Bus) Unsubscribe(id string) bool {
	b.mu.Lock()
	sub, ok := b.subs[id]
	if ok {
		delete(b.subs, id)
	}
	b.mu.Unlock()

	if ok {
		sub.DisconnectAll()
	}
	return ok
}

// Publish dispatches an event to all registered handlers on the calling
// goroutine. Handlers subscribed to the event's type run first, then wildcard
// handlers; within each group, registration order holds.
func (b *Bus) Publish(event Event) {
	eventType := event.EventType()
	b.logger.Debug("publishing event", "event", eventType)

	b.mu.RLock()
	specific := b.signals[eventType]
	all := b.signals[wildcard]
	b.mu.RUnlock()

	if specific != nil {
		specific.Emit(event)
	}
	if all != nil && eventType != wildcard {
		all.Emit(event)
	}
}

// Clear removes all subscriptions.
func (b *Bus) Clear() {
	b.mu.Lock()
	subs := b.subs
	b.subs = make(map[string]*subscriber)
	b.signals = make(map[string]*sigslot.Signal[Event])
	b.mu.Unlock()

	for _, sub := range subs {
		sub.DisconnectAll()
	}
}

// SubscriptionCount returns the number of active subscriptions.
func (b *Bus) SubscriptionCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// signal returns the dispatch signal for eventType, creating it on first
// subscription.
func (b *Bus) signal(eventType string) *sigslot.Signal[Event] {
	b.mu.Lock()
	defer b.mu.Unlock()
	sig, ok := b.signals[eventType]
	if !ok {
		sig = sigslot.New[Event](sigslot.WithName(eventType), sigslot.WithLogger(b.logger))
		b.signals[eventType] = sig
	}
	return sig
}

// guard wraps a handler so a panic is recovered and logged instead of
// blocking event delivery to the remaining handlers.
func (b *Bus) guard(handler Handler) Handler {
	return func(event Event) {
		defer func() {
			if r := recover(); r != nil {
				b.logger.Error("event handler panicked",
					"event", event.EventType(),
					"panic", r,
					"stack", string(debug.Stack()))
			}
		}()
		handler(event)
	}
}
