package sigslot

import (
	"bytes"
	"log/slog"
	"testing"
)

// intSlot is a receiver that records the values it sees and, when given a
// journal, the order it was invoked in relative to other receivers.
type intSlot struct {
	HasSlots
	name    string
	journal *[]string
	got     []int
}

func (r *intSlot) OnValue(v int) {
	r.got = append(r.got, v)
	if r.journal != nil {
		*r.journal = append(*r.journal, r.name)
	}
}

func TestEmitCallsConnectedMethod(t *testing.T) {
	var sig Signal[int]
	r := &intSlot{}

	Connect(&sig, r, (*intSlot).OnValue)
	sig.Emit(42)

	if len(r.got) != 1 || r.got[0] != 42 {
		t.Fatalf("receiver saw %v, want [42]", r.got)
	}
}

func TestEmitWithoutConnections(t *testing.T) {
	var sig Signal[string]
	sig.Emit("nobody home") // must not panic
	if sig.Len() != 0 {
		t.Errorf("Len() = %d, want 0", sig.Len())
	}
}

func TestEmitRegistrationOrder(t *testing.T) {
	var sig Signal[int]
	var journal []string

	for _, name := range []string{"first", "second", "third"} {
		Connect(&sig, &intSlot{name: name, journal: &journal}, (*intSlot).OnValue)
	}

	sig.Emit(1)
	sig.Emit(2)

	want := []string{"first", "second", "third", "first", "second", "third"}
	if len(journal) != len(want) {
		t.Fatalf("journal = %v, want %v", journal, want)
	}
	for i := range want {
		if journal[i] != want[i] {
			t.Fatalf("journal = %v, want %v", journal, want)
		}
	}
}

func TestDisconnectRemovesFirstMatchOnly(t *testing.T) {
	var sig Signal[int]
	r := &intSlot{}

	Connect(&sig, r, (*intSlot).OnValue)
	Connect(&sig, r, (*intSlot).OnValue)

	sig.Emit(1)
	if len(r.got) != 2 {
		t.Fatalf("expected both connections to fire, got %d calls", len(r.got))
	}

	sig.Disconnect(r)
	if sig.Len() != 1 {
		t.Fatalf("Len() = %d after one disconnect, want 1", sig.Len())
	}

	sig.Emit(2)
	if len(r.got) != 3 {
		t.Errorf("expected one call after partial disconnect, got %d total", len(r.got))
	}

	sig.Disconnect(r)
	sig.Disconnect(r) // no connection left: must be a no-op
	if sig.Len() != 0 {
		t.Errorf("Len() = %d after full disconnect, want 0", sig.Len())
	}
}

func TestDisconnectUnconnectedTarget(t *testing.T) {
	var sig Signal[int]
	connected := &intSlot{}
	stranger := &intSlot{}

	Connect(&sig, connected, (*intSlot).OnValue)
	sig.Disconnect(stranger)

	if sig.Len() != 1 {
		t.Errorf("Len() = %d, disconnecting a stranger must not remove anything", sig.Len())
	}
}

func TestSignalDisconnectAll(t *testing.T) {
	var sig Signal[int]
	r1 := &intSlot{}
	r2 := &intSlot{}

	Connect(&sig, r1, (*intSlot).OnValue)
	Connect(&sig, r2, (*intSlot).OnValue)
	Connect(&sig, r2, (*intSlot).OnValue)

	sig.DisconnectAll()

	if sig.Len() != 0 {
		t.Errorf("Len() = %d after DisconnectAll, want 0", sig.Len())
	}
	if r1.SenderCount() != 0 || r2.SenderCount() != 0 {
		t.Errorf("sender counts = %d, %d after DisconnectAll, want 0, 0",
			r1.SenderCount(), r2.SenderCount())
	}

	// Receiver teardown afterwards must not try to reach the signal.
	r1.DisconnectAll()
	r2.DisconnectAll()
	sig.Emit(1)
	if len(r1.got)+len(r2.got) != 0 {
		t.Error("receivers were invoked after DisconnectAll")
	}
}

func TestCloneDuplicatesConnections(t *testing.T) {
	var sig Signal[int]
	r := &intSlot{}
	Connect(&sig, r, (*intSlot).OnValue)

	clone := sig.Clone()

	if clone.Len() != 1 {
		t.Fatalf("clone.Len() = %d, want 1", clone.Len())
	}
	if r.SenderCount() != 2 {
		t.Fatalf("SenderCount() = %d after clone, want 2", r.SenderCount())
	}

	clone.Emit(7)
	if len(r.got) != 1 || r.got[0] != 7 {
		t.Fatalf("receiver saw %v from clone, want [7]", r.got)
	}

	// Tearing down the original must leave the clone's connection working.
	sig.DisconnectAll()
	clone.Emit(8)
	if len(r.got) != 2 || r.got[1] != 8 {
		t.Errorf("receiver saw %v after original teardown, want [7 8]", r.got)
	}
	if r.SenderCount() != 1 {
		t.Errorf("SenderCount() = %d, want 1", r.SenderCount())
	}
}

func TestConnectSamePairTwice(t *testing.T) {
	var sig Signal[int]
	r := &intSlot{}

	Connect(&sig, r, (*intSlot).OnValue)
	Connect(&sig, r, (*intSlot).OnValue)

	if sig.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 independent connections", sig.Len())
	}

	sig.Emit(5)
	if len(r.got) != 2 {
		t.Errorf("got %d calls per emit, want 2", len(r.got))
	}
}

// selfRemover disconnects itself from the emitting signal inside its own
// handler. The running emission completes from its snapshot; the removal
// shows up on the next one.
type selfRemover struct {
	HasSlots
	sig   *Signal[int]
	calls int
}

func (r *selfRemover) OnValue(int) {
	r.calls++
	r.sig.Disconnect(r)
}

func TestReentrantDisconnectDuringEmit(t *testing.T) {
	var sig Signal[int]
	first := &selfRemover{sig: &sig}
	last := &intSlot{}

	Connect(&sig, first, (*selfRemover).OnValue)
	Connect(&sig, last, (*intSlot).OnValue)

	sig.Emit(1)

	if first.calls != 1 {
		t.Errorf("self-removing receiver called %d times, want 1", first.calls)
	}
	if len(last.got) != 1 {
		t.Errorf("receiver after the self-remover got %d calls, want 1", len(last.got))
	}

	sig.Emit(2)
	if first.calls != 1 {
		t.Errorf("self-removed receiver was called again, total %d", first.calls)
	}
	if len(last.got) != 2 {
		t.Errorf("remaining receiver got %d calls, want 2", len(last.got))
	}
}

// chainConnector adds another receiver to the signal from inside its handler.
type chainConnector struct {
	HasSlots
	sig   *Signal[int]
	added *intSlot
}

func (r *chainConnector) OnValue(int) {
	if r.added == nil {
		r.added = &intSlot{}
		Connect(r.sig, r.added, (*intSlot).OnValue)
	}
}

func TestReentrantConnectDuringEmit(t *testing.T) {
	var sig Signal[int]
	c := &chainConnector{sig: &sig}
	Connect(&sig, c, (*chainConnector).OnValue)

	sig.Emit(1)
	if c.added == nil {
		t.Fatal("handler did not run")
	}
	if len(c.added.got) != 0 {
		t.Errorf("receiver connected mid-emit was invoked in the same emission: %v", c.added.got)
	}

	sig.Emit(2)
	if len(c.added.got) != 1 || c.added.got[0] != 2 {
		t.Errorf("receiver connected mid-emit saw %v on the next emission, want [2]", c.added.got)
	}
}

func TestFunc(t *testing.T) {
	var sig Signal[int]
	r := &intSlot{}
	Connect(&sig, r, (*intSlot).OnValue)

	emit := sig.Func()
	emit(9)

	if len(r.got) != 1 || r.got[0] != 9 {
		t.Errorf("receiver saw %v via Func, want [9]", r.got)
	}
}

func TestEmitLogsWhenConfigured(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	sig := New[int](WithName("ticks"), WithLogger(logger))
	Connect(sig, &intSlot{}, (*intSlot).OnValue)
	sig.Emit(1)

	out := buf.String()
	if !bytes.Contains(buf.Bytes(), []byte("emitting signal")) {
		t.Errorf("log output missing emit line: %q", out)
	}
	if !bytes.Contains(buf.Bytes(), []byte("ticks")) {
		t.Errorf("log output missing signal name: %q", out)
	}
}

// TestLifecycleScenario walks the connect/emit/teardown sequence end to end.
func TestLifecycleScenario(t *testing.T) {
	var sig Signal[int]
	obj := &intSlot{}

	Connect(&sig, obj, (*intSlot).OnValue)
	sig.Emit(42)
	if len(obj.got) != 1 || obj.got[0] != 42 {
		t.Fatalf("obj saw %v, want [42]", obj.got)
	}

	obj.DisconnectAll()
	if sig.Len() != 0 {
		t.Fatalf("Len() = %d after receiver teardown, want 0", sig.Len())
	}

	sig.Emit(7)
	if len(obj.got) != 1 {
		t.Errorf("destroyed receiver was invoked, saw %v", obj.got)
	}
}
