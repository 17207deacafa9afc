package sigslot

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/Iron-Ham/sigslot/lockpolicy"
)

// connection is one binding from a signal to a receiver method. The signal's
// list holds connections uniformly regardless of the concrete receiver type
// behind each one.
type connection[T any] interface {
	// dest returns the endpoint this connection targets.
	dest() *HasSlots
	// invoke calls the bound method with v.
	invoke(v T)
	// clone returns an equivalent connection to the same target.
	clone() connection[T]
	// duplicate returns a connection with the same bound method retargeted
	// at target.
	duplicate(target Slotted) connection[T]
}

// methodConn binds a concrete receiver and a method expression. It is the
// closure-based stand-in for a type-erased connection subclass: the generic
// instantiation remembers R, so duplicate can rebind to a new receiver of the
// same type.
type methodConn[R Slotted, T any] struct {
	receiver R
	endpoint *HasSlots
	fn       func(R, T)
}

func (c *methodConn[R, T]) dest() *HasSlots { return c.endpoint }

func (c *methodConn[R, T]) invoke(v T) { c.fn(c.receiver, v) }

func (c *methodConn[R, T]) clone() connection[T] {
	cp := *c
	return &cp
}

func (c *methodConn[R, T]) duplicate(target Slotted) connection[T] {
	r := target.(R)
	return &methodConn[R, T]{receiver: r, endpoint: r.slots(), fn: c.fn}
}

// Signal broadcasts values of type T to its connected receivers,
// synchronously and in registration order. The zero value is ready to use;
// New adds options such as a logger. A Signal must not be copied by
// assignment; use Clone.
type Signal[T any] struct {
	once   sync.Once
	mu     lockpolicy.Locker
	conns  []connection[T]
	name   string
	logger *slog.Logger
}

// New creates a Signal configured by opts.
func New[T any](opts ...Option) *Signal[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Signal[T]{name: o.name, logger: o.logger}
}

func (s *Signal[T]) init() {
	s.once.Do(func() {
		s.mu = lockpolicy.NewDefault()
	})
}

var discardLogger = slog.New(slog.DiscardHandler)

func (s *Signal[T]) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return discardLogger
}

// Connect binds receiver's method to the signal: Emit will call
// method(receiver, v) in registration order. Connecting the same pair twice
// yields two independent connections, both of which fire per emission.
//
// Connect is a function rather than a method so the receiver's concrete type
// can be captured; pass the method as a method expression:
//
//	sigslot.Connect(sig, obj, (*Obj).OnValue)
func Connect[T any, R Slotted](s *Signal[T], receiver R, method func(R, T)) {
	ep := receiver.slots()
	c := &methodConn[R, T]{receiver: receiver, endpoint: ep, fn: method}

	s.init()
	g := lockpolicy.Lock(s.mu)
	s.conns = append(s.conns, c)
	n := len(s.conns)
	g.Release()

	ep.registerSender(s)
	s.log().Debug("signal connected", "signal", s.name, "connections", n)
}

// Disconnect removes the first connection, in registration order, whose
// target is target, and unregisters this signal from the target once. Later
// connections to the same target stay intact; disconnecting an unconnected
// target is a no-op.
func (s *Signal[T]) Disconnect(target Slotted) {
	ep := target.slots()

	s.init()
	g := lockpolicy.Lock(s.mu)
	removed := false
	for i, c := range s.conns {
		if c.dest() == ep {
			s.conns = slices.Delete(s.conns, i, i+1)
			removed = true
			break
		}
	}
	g.Release()

	if removed {
		ep.unregisterSender(s)
	}
}

// DisconnectAll drops every connection, unregistering this signal from each
// target. It is the signal's teardown: call it before discarding the signal
// so no endpoint keeps a reference to it.
func (s *Signal[T]) DisconnectAll() {
	s.init()
	g := lockpolicy.Lock(s.mu)
	snap := s.conns
	s.conns = nil
	g.Release()

	for _, c := range snap {
		c.dest().unregisterSender(s)
	}
}

// Emit invokes every connection with v, on the calling goroutine, in
// registration order. The connection list is snapshotted under the signal's
// lock and invoked after release, so a receiver may connect or disconnect on
// this same signal from within its handler; such mutations affect the next
// emission, not the running one.
func (s *Signal[T]) Emit(v T) {
	s.init()
	g := lockpolicy.Lock(s.mu)
	snap := slices.Clone(s.conns)
	g.Release()

	s.log().Debug("emitting signal", "signal", s.name, "connections", len(snap))
	for _, c := range snap {
		c.invoke(v)
	}
}

// Func returns Emit as a plain function value, for callers that want to hand
// the signal out as a callback.
func (s *Signal[T]) Func() func(T) {
	return s.Emit
}

// Clone returns a new signal holding equivalent connections to the same
// targets. Each target's sender set gains the clone, so tearing down either
// signal leaves the other's connections working.
func (s *Signal[T]) Clone() *Signal[T] {
	s.init()
	g := lockpolicy.Lock(s.mu)
	snap := slices.Clone(s.conns)
	g.Release()

	n := &Signal[T]{name: s.name, logger: s.logger}
	n.init()

	conns := make([]connection[T], len(snap))
	for i, c := range snap {
		conns[i] = c.clone()
		c.dest().registerSender(n)
	}

	g = lockpolicy.Lock(n.mu)
	n.conns = conns
	g.Release()
	return n
}

// Len reports the number of live connections.
func (s *Signal[T]) Len() int {
	s.init()
	defer lockpolicy.Lock(s.mu).Release()
	return len(s.conns)
}

// disconnectTarget implements sender: the target endpoint is being torn down,
// so every connection into it goes away. The endpoint clears its own sender
// set; no callback into it here.
func (s *Signal[T]) disconnectTarget(ep *HasSlots) {
	s.init()
	defer lockpolicy.Lock(s.mu).Release()
	s.conns = slices.DeleteFunc(s.conns, func(c connection[T]) bool {
		return c.dest() == ep
	})
}

// duplicateTarget implements sender: the object behind old is being copied
// into target, so every connection targeting old gets a duplicate pointed at
// target, appended in list order.
func (s *Signal[T]) duplicateTarget(old *HasSlots, target Slotted) {
	s.init()
	defer lockpolicy.Lock(s.mu).Release()
	var dups []connection[T]
	for _, c := range s.conns {
		if c.dest() == old {
			dups = append(dups, c.duplicate(target))
		}
	}
	s.conns = append(s.conns, dups...)
}
