package lockpolicy

// Guard pairs an Acquire with a later Release. Lock acquires immediately, so
// the idiomatic use is a single statement that defers the release:
//
//	defer lockpolicy.Lock(l).Release()
//
// The deferred Release runs on every exit path of the enclosing function,
// early returns and panics included, so the lock cannot leak.
type Guard struct {
	l Locker
}

// Lock acquires l and returns a Guard that releases it.
func Lock(l Locker) Guard {
	l.Acquire()
	return Guard{l: l}
}

// Release releases the guarded locker. It must be called exactly once.
func (g Guard) Release() {
	g.l.Release()
}
