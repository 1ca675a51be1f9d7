// Package debounce provides primitives that delay propagation of
// rapidly-changing input until a quiet period elapses. They are used to
// throttle search-triggered re-filtering in the TUI and to coalesce
// filesystem events from the dataset watcher.
//
// All primitives share the same reset-not-queue semantics: each new input
// cancels the previously scheduled commit and schedules a fresh one, so
// only the latest input of a burst is ever propagated, and only after the
// burst has been quiet for the full delay.
package debounce

import (
	"errors"
	"sync"
	"time"
)

// ErrInvalidDelay indicates a debounce primitive was constructed with a
// non-positive delay. This is a configuration error, not recoverable.
var ErrInvalidDelay = errors.New("debounce: delay must be positive")

// CancelFunc cancels a scheduled callback. Cancelling an already-fired or
// already-cancelled callback is a no-op.
type CancelFunc func()

// Scheduler schedules a function to run once after a delay.
// The returned CancelFunc prevents the function from running if it has
// not fired yet.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) CancelFunc
}

// timerScheduler is the default Scheduler backed by runtime timers.
type timerScheduler struct{}

// Schedule runs fn after d using time.AfterFunc.
func (timerScheduler) Schedule(d time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// TimerScheduler returns the default timer-backed scheduler.
func TimerScheduler() Scheduler {
	return timerScheduler{}
}

// Value is a debounced observable value. It starts equal to the initial
// value passed at construction and updates to track the latest input only
// after that input has remained unchanged for the configured delay.
type Value[T any] struct {
	mu       sync.Mutex
	sched    Scheduler
	delay    time.Duration
	current  T
	pending  CancelFunc
	gen      uint64
	closed   bool
	onCommit func(T)
}

// NewValue creates a debounced value using the default timer scheduler.
func NewValue[T any](initial T, delay time.Duration) (*Value[T], error) {
	return NewValueWithScheduler(initial, delay, nil)
}

// NewValueWithScheduler creates a debounced value with a custom scheduler.
// A nil scheduler falls back to the timer scheduler. Useful for testing.
func NewValueWithScheduler[T any](initial T, delay time.Duration, sched Scheduler) (*Value[T], error) {
	if delay <= 0 {
		return nil, ErrInvalidDelay
	}
	if sched == nil {
		sched = TimerScheduler()
	}
	return &Value[T]{
		sched:   sched,
		delay:   delay,
		current: initial,
	}, nil
}

// Get returns the current committed value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// OnCommit registers a function invoked after each committed update.
// The function is called outside the internal lock, once per quiet window.
func (v *Value[T]) OnCommit(fn func(T)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.onCommit = fn
}

// Set records a new input value and (re)schedules its commit after the
// quiet period. An input arriving before the previous one committed
// replaces it; intermediate values are never observed via Get.
func (v *Value[T]) Set(next T) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return
	}

	if v.pending != nil {
		v.pending()
	}

	v.gen++
	gen := v.gen
	v.pending = v.sched.Schedule(v.delay, func() {
		v.commit(gen, next)
	})
}

// commit applies a scheduled update if it is still the latest one.
// A stale generation means a newer Set superseded this commit.
func (v *Value[T]) commit(gen uint64, next T) {
	v.mu.Lock()
	if v.closed || gen != v.gen {
		v.mu.Unlock()
		return
	}
	v.current = next
	v.pending = nil
	fn := v.onCommit
	v.mu.Unlock()

	if fn != nil {
		fn(next)
	}
}

// Close cancels any pending commit and prevents further updates.
// Closing an already-closed value is a no-op.
func (v *Value[T]) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return
	}
	v.closed = true
	if v.pending != nil {
		v.pending()
		v.pending = nil
	}
}

// Func debounces calls to a no-argument function. Each Call resets the
// quiet period; the wrapped function runs at most once per quiet window
// and never concurrently with itself.
type Func struct {
	mu      sync.Mutex
	runMu   sync.Mutex
	sched   Scheduler
	delay   time.Duration
	fn      func()
	pending CancelFunc
	gen     uint64
}

// NewFunc creates a debounced function using the default timer scheduler.
func NewFunc(delay time.Duration, fn func()) (*Func, error) {
	return NewFuncWithScheduler(delay, fn, nil)
}

// NewFuncWithScheduler creates a debounced function with a custom scheduler.
func NewFuncWithScheduler(delay time.Duration, fn func(), sched Scheduler) (*Func, error) {
	if delay <= 0 {
		return nil, ErrInvalidDelay
	}
	if fn == nil {
		return nil, errors.New("debounce: fn must not be nil")
	}
	if sched == nil {
		sched = TimerScheduler()
	}
	return &Func{
		sched: sched,
		delay: delay,
		fn:    fn,
	}, nil
}

// Call schedules an invocation of the wrapped function after the quiet
// period, cancelling any previously scheduled invocation.
func (f *Func) Call() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.pending != nil {
		f.pending()
	}

	f.gen++
	gen := f.gen
	f.pending = f.sched.Schedule(f.delay, func() {
		f.fire(gen)
	})
}

// fire runs the wrapped function if this invocation is still the latest.
func (f *Func) fire(gen uint64) {
	f.mu.Lock()
	if gen != f.gen {
		f.mu.Unlock()
		return
	}
	f.pending = nil
	f.mu.Unlock()

	f.runMu.Lock()
	defer f.runMu.Unlock()
	f.fn()
}

// Cancel prevents any scheduled invocation from firing. It is idempotent
// and does not prevent future Calls from scheduling again.
func (f *Func) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.pending != nil {
		f.pending()
		f.pending = nil
	}
	// Bump the generation so an already-dispatched fire becomes stale.
	f.gen++
}

// Callback debounces calls to a single-argument function. Each Call
// records its argument and resets the quiet period; after quiescence the
// wrapped function runs once with the most recent argument.
type Callback[T any] struct {
	mu      sync.Mutex
	runMu   sync.Mutex
	sched   Scheduler
	delay   time.Duration
	fn      func(T)
	pending CancelFunc
	gen     uint64
}

// NewCallback creates a debounced callback using the default timer scheduler.
func NewCallback[T any](delay time.Duration, fn func(T)) (*Callback[T], error) {
	return NewCallbackWithScheduler(delay, fn, nil)
}

// NewCallbackWithScheduler creates a debounced callback with a custom scheduler.
func NewCallbackWithScheduler[T any](delay time.Duration, fn func(T), sched Scheduler) (*Callback[T], error) {
	if delay <= 0 {
		return nil, ErrInvalidDelay
	}
	if fn == nil {
		return nil, errors.New("debounce: fn must not be nil")
	}
	if sched == nil {
		sched = TimerScheduler()
	}
	return &Callback[T]{
		sched: sched,
		delay: delay,
		fn:    fn,
	}, nil
}

// Call records arg and (re)schedules an invocation of the wrapped
// function, cancelling any previously scheduled invocation.
func (c *Callback[T]) Call(arg T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending != nil {
		c.pending()
	}

	c.gen++
	gen := c.gen
	c.pending = c.sched.Schedule(c.delay, func() {
		c.fire(gen, arg)
	})
}

// fire runs the wrapped function if this invocation is still the latest.
func (c *Callback[T]) fire(gen uint64, arg T) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.pending = nil
	c.mu.Unlock()

	c.runMu.Lock()
	defer c.runMu.Unlock()
	c.fn(arg)
}

// Cancel prevents any scheduled invocation from firing. Idempotent.
func (c *Callback[T]) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending != nil {
		c.pending()
		c.pending = nil
	}
	c.gen++
}
