// Package lockpolicy provides the pluggable mutual-exclusion strategy used by
// every signal and slot endpoint in this module.
//
// A process picks exactly one [Kind] and uses it uniformly: signals and
// endpoints created under different kinds do not interoperate safely, and
// that mismatch is a configuration error rather than something the library
// can detect at runtime.
//
// # Kinds
//
//   - [SingleThreaded]: Acquire and Release are no-ops. Valid only when the
//     caller guarantees that all signal and endpoint objects are used from a
//     single goroutine. Concurrent use under this kind is a data race.
//   - [Global]: one process-wide mutex shared by every locker. Safe, cheap on
//     OS resources, but serializes unrelated signals against each other.
//   - [PerInstance]: every locker owns an independent mutex, so only
//     operations touching the same object contend. This is the default.
//
// # Choosing the kind
//
// The kind is chosen once per deployment, before any signal or endpoint is
// created, either through [SetDefault] or through the config package. After
// the first locker has been handed out the choice is frozen and further
// SetDefault calls fail with [ErrFrozen]. There is no runtime switch.
//
// # Guards
//
// [Lock] pairs an Acquire with a deferred Release so that every exit path of
// a critical section, including panics, releases the lock:
//
//	defer lockpolicy.Lock(l).Release()
package lockpolicy
