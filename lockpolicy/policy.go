package lockpolicy

import (
	"errors"
	"fmt"
	"sync"
)

// Locker is the contract every locking strategy satisfies. Acquire blocks the
// calling goroutine until exclusive access is obtained; Release makes a prior
// Acquire visible to the next waiter. The two must be paired.
type Locker interface {
	Acquire()
	Release()
}

// Kind identifies one of the available locking strategies.
type Kind int

const (
	// SingleThreaded performs no locking at all.
	SingleThreaded Kind = iota
	// Global shares one process-wide mutex between all lockers.
	Global
	// PerInstance gives every locker its own mutex.
	PerInstance
)

// String returns the configuration name of the kind, matching what
// ParseKind accepts.
func (k Kind) String() string {
	switch k {
	case SingleThreaded:
		return "single"
	case Global:
		return "global"
	case PerInstance:
		return "per_instance"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a configuration string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "single":
		return SingleThreaded, nil
	case "global":
		return Global, nil
	case "per_instance":
		return PerInstance, nil
	default:
		return 0, fmt.Errorf("unknown lock policy %q", s)
	}
}

// New creates a locker implementing the kind's strategy. Per-instance lockers
// own a fresh mutex; global lockers all share the process-wide one.
func (k Kind) New() Locker {
	switch k {
	case Global:
		return globalLocker{}
	case PerInstance:
		return &instanceLocker{}
	default:
		return noopLocker{}
	}
}

// noopLocker is the single-threaded strategy.
type noopLocker struct{}

func (noopLocker) Acquire() {}
func (noopLocker) Release() {}

// globalMutex hands out the shared process-wide mutex. sync.OnceValue makes
// the lazy initialization idempotent even when the first Acquire calls race.
var globalMutex = sync.OnceValue(func() *sync.Mutex {
	return &sync.Mutex{}
})

type globalLocker struct{}

func (globalLocker) Acquire() { globalMutex().Lock() }
func (globalLocker) Release() { globalMutex().Unlock() }

type instanceLocker struct {
	mu sync.Mutex
}

func (l *instanceLocker) Acquire() { l.mu.Lock() }
func (l *instanceLocker) Release() { l.mu.Unlock() }

// ErrFrozen is returned by SetDefault once the default kind has been used to
// create a locker. The kind is a deployment-time choice; changing it while
// objects built under the old kind are live would silently break their
// mutual exclusion.
var ErrFrozen = errors.New("lockpolicy: default kind is frozen after first use")

var defaults struct {
	mu     sync.Mutex
	kind   Kind
	frozen bool
}

func init() {
	defaults.kind = PerInstance
}

// SetDefault selects the process-wide default kind. It must be called before
// any signal or slot endpoint is created; afterwards it fails with ErrFrozen.
func SetDefault(k Kind) error {
	defaults.mu.Lock()
	defer defaults.mu.Unlock()
	if defaults.frozen {
		return ErrFrozen
	}
	defaults.kind = k
	return nil
}

// Default returns the process-wide default kind without freezing it.
func Default() Kind {
	defaults.mu.Lock()
	defer defaults.mu.Unlock()
	return defaults.kind
}

// NewDefault creates a locker of the default kind and freezes the default.
func NewDefault() Locker {
	defaults.mu.Lock()
	defaults.frozen = true
	k := defaults.kind
	defaults.mu.Unlock()
	return k.New()
}
