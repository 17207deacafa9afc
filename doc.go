// Package sigslot implements synchronous in-process signal/slot dispatch:
// a [Signal] is invoked with a value and that invocation fans out, on the
// calling goroutine, to every receiver method connected to it. Emitters and
// receivers stay decoupled without sharing an interface per event shape.
//
// The package's real job is connection bookkeeping: when either side of a
// connection is torn down or copied, possibly from another goroutine, no
// dangling reference or lost notification may result. Receivers opt in by
// embedding [HasSlots]; signals and endpoints then maintain the two
// non-owning relations (signal to targets, target to senders) in lockstep.
//
// # Main Types
//
//   - [Signal]: emitter holding an ordered connection list; Emit calls every
//     connection in registration order
//   - [HasSlots]: embeddable capability that makes an object a valid
//     connection target, with automatic teardown propagation
//   - [Slotted]: constraint satisfied by any type embedding HasSlots
//
// # Basic Usage
//
//	type Counter struct {
//	    sigslot.HasSlots
//	    total int
//	}
//
//	func (c *Counter) OnValue(v int) { c.total += v }
//
//	var sig sigslot.Signal[int]
//	c := &Counter{}
//	sigslot.Connect(&sig, c, (*Counter).OnValue)
//	sig.Emit(42) // calls c.OnValue(42)
//
// # Teardown
//
// Go has no destructors, so teardown is explicit. Call DisconnectAll on a
// signal before discarding it: every target forgets the signal. Call
// DisconnectAll on a receiver (or on its embedded HasSlots) before discarding
// it: every signal drops its connections into the receiver, and later emits
// neither call it nor fault.
//
// # Copy Semantics
//
// Copying either side duplicates connections instead of moving them.
// [Signal.Clone] produces a signal with equivalent connections to the same
// targets. [CopySlots] points duplicates of everything connected to a source
// receiver at a fresh destination receiver, leaving the originals intact. Do
// not copy an object containing HasSlots by plain assignment; the embedded
// bookkeeping must not be shared between two objects.
//
// # Thread Safety
//
// Concurrent use is governed by the process-wide lock policy; see the
// lockpolicy package. Under the single-threaded kind any concurrent access is
// a data race. Cross-object operations such as Connect take the signal's lock
// and the target's lock one after the other, never nested, so a concurrent
// observer can briefly see one side updated before the other.
//
// Emit snapshots the connection list under the signal's lock and invokes the
// snapshot after releasing it. A receiver may therefore connect or disconnect
// on the signal that is currently calling it; the mutation takes effect from
// the next emission. A receiver disconnected mid-emission by another
// goroutine can still receive that in-flight emission.
//
// # Ordering
//
// Within one Emit call, connections are invoked in registration order.
// Nothing is ordered across concurrent calls beyond the mutual exclusion the
// lock policy provides.
package sigslot
