package mmio

import (
	"errors"
	"time"
)

// ErrTimeout is returned by a Waiter with a non-zero timeout when the awaited
// status never asserted.
var ErrTimeout = errors.New("mmio: timeout")

// Spin busy-waits until ready returns true. There is no timeout: a status bit
// that never asserts hangs the caller, which is the expected behaviour on a
// hardware fault.
func Spin(ready func() bool) {
	for !ready() {
	}
}

// SpinN polls ready at most retries times and reports whether it asserted.
func SpinN(ready func() bool, retries int) bool {
	for ; retries > 0; retries-- {
		if ready() {
			return true
		}
	}
	return false
}

// Waiter polls a status predicate, optionally giving up after Retries polls
// or after Timeout. The zero value spins forever, same as Spin.
type Waiter struct {
	// Retries bounds the wait by poll count. It takes precedence over
	// Timeout and suits targets without a running clock.
	Retries int
	// Timeout bounds the wait. Zero means no timeout.
	Timeout time.Duration
	// Yield is called between polls if non-nil, e.g. runtime.Gosched.
	Yield func()
	// now is replaced in tests.
	now func() time.Time
}

// Wait blocks until ready returns true. It returns ErrTimeout only when
// Retries or Timeout is set and was exhausted.
func (w Waiter) Wait(ready func() bool) error {
	if w.Retries > 0 {
		if !SpinN(ready, w.Retries) {
			return ErrTimeout
		}
		return nil
	}
	if w.Timeout <= 0 {
		for !ready() {
			w.yield()
		}
		return nil
	}
	dl := w.newDeadline()
	for !ready() {
		if dl.expired() {
			return ErrTimeout
		}
		w.yield()
	}
	return nil
}

func (w Waiter) yield() {
	if w.Yield != nil {
		w.Yield()
	}
}

func (w Waiter) clock() time.Time {
	if w.now != nil {
		return w.now()
	}
	return time.Now()
}

type deadline struct {
	t   time.Time
	now func() time.Time
}

func (dl deadline) expired() bool {
	if dl.t.IsZero() {
		return false
	}
	return dl.now().Sub(dl.t) > 0
}

func (w Waiter) newDeadline() deadline {
	return deadline{t: w.clock().Add(w.Timeout), now: w.clock}
}
