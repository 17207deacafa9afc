package sigslot

import (
	"sync"

	"github.com/Iron-Ham/sigslot/lockpolicy"
)

// sender is the signal-side interface an endpoint keeps back-references to.
// It is intentionally free of the signal's value type so one endpoint can be
// targeted by signals of different shapes.
type sender interface {
	// disconnectTarget removes every connection whose target is ep. It does
	// not call back into ep.
	disconnectTarget(ep *HasSlots)
	// duplicateTarget appends, for every connection targeting old, a new
	// connection bound to target.
	duplicateTarget(old *HasSlots, target Slotted)
}

// Slotted is satisfied by any type that embeds [HasSlots]. The interface
// method is unexported, so embedding is the only way in.
type Slotted interface {
	slots() *HasSlots
}

// HasSlots grants the object embedding it the ability to be a connection
// target. The zero value is ready to use. An object containing HasSlots must
// not be copied by assignment; use [CopySlots] instead.
type HasSlots struct {
	once    sync.Once
	mu      lockpolicy.Locker
	senders map[sender]struct{}
}

func (h *HasSlots) slots() *HasSlots { return h }

// init sets up the endpoint's locker and sender set on first use. The locker
// kind is the process-wide default; creating it freezes that default.
func (h *HasSlots) init() {
	h.once.Do(func() {
		h.mu = lockpolicy.NewDefault()
		h.senders = make(map[sender]struct{})
	})
}

// registerSender records s as holding at least one connection into this
// endpoint. Re-adding a present sender is a no-op.
func (h *HasSlots) registerSender(s sender) {
	h.init()
	defer lockpolicy.Lock(h.mu).Release()
	h.senders[s] = struct{}{}
}

// unregisterSender forgets s. Absent senders are ignored, so a second
// disconnect of the same pair is safe.
func (h *HasSlots) unregisterSender(s sender) {
	h.init()
	defer lockpolicy.Lock(h.mu).Release()
	delete(h.senders, s)
}

// DisconnectAll severs every connection into this endpoint: each sender drops
// all connections targeting it, then the sender set is cleared. Call it
// before the receiving object is discarded; afterwards no signal will touch
// the object again.
func (h *HasSlots) DisconnectAll() {
	h.init()

	g := lockpolicy.Lock(h.mu)
	snap := make([]sender, 0, len(h.senders))
	for s := range h.senders {
		snap = append(snap, s)
	}
	clear(h.senders)
	g.Release()

	for _, s := range snap {
		s.disconnectTarget(h)
	}
}

// SenderCount reports how many distinct signals currently hold at least one
// connection into this endpoint.
func (h *HasSlots) SenderCount() int {
	h.init()
	defer lockpolicy.Lock(h.mu).Release()
	return len(h.senders)
}

// CopySlots gives dst a copy of src's slot state: every signal connected to
// src gains duplicates of its matching connections, pointed at dst, and dst's
// sender set becomes a copy of src's. The connections into src are left
// intact. dst must be a fresh object of the same concrete type that was used
// when src's connections were made; a mismatch panics.
func CopySlots[R Slotted](dst, src R) {
	srcEp := src.slots()
	dstEp := dst.slots()
	srcEp.init()
	dstEp.init()

	g := lockpolicy.Lock(srcEp.mu)
	snap := make([]sender, 0, len(srcEp.senders))
	for s := range srcEp.senders {
		snap = append(snap, s)
	}
	g.Release()

	for _, s := range snap {
		s.duplicateTarget(srcEp, dst)
	}

	g = lockpolicy.Lock(dstEp.mu)
	for _, s := range snap {
		dstEp.senders[s] = struct{}{}
	}
	g.Release()
}
