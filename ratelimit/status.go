// Package ratelimit implements the RateLimitStatus protocol and the
// counting/sampling/duration limiter family, grounded on the teacher's
// internal/filters sampling idioms (atomic counters, CAS-guarded windows)
// generalized from per-logger filters to per-log-site limiters keyed
// through a LogSiteMap.
package ratelimit

import "sync/atomic"

// Status is the tri-state value that drives whether a terminal call
// emits. Allow and Disallow are stateless sentinels; any other Status is
// stateful and implements Reset.
type Status interface {
	// Reset is called exactly once per emission.
	Reset()
}

type allowStatus struct{}

func (allowStatus) Reset() {}

// Allow is the stateless "definitely emit" sentinel.
var Allow Status = allowStatus{}

type disallowStatus struct{}

func (disallowStatus) Reset() {}

// Disallow is the stateless "definitely skip" sentinel.
var Disallow Status = disallowStatus{}

// composite combines two stateful statuses. Resetting it resets both
// constituents exactly once even if the first panics — the panic is
// re-raised only after the second has also been reset.
type composite struct {
	a, b Status
}

func (c *composite) Reset() {
	var panicVal any
	func() {
		defer func() { panicVal = recover() }()
		c.a.Reset()
	}()
	c.b.Reset()
	if panicVal != nil {
		panic(panicVal)
	}
}

// Combine merges two statuses per the spec's combine table:
//
//	nil + nil      -> nil
//	nil + x        -> x
//	Allow + x      -> x
//	Disallow + x   -> Disallow
//	stateful + stateful -> a composite resetting both
//
// Combine(a, b) == Combine(b, a) modulo the composite's internal
// ordering (which constituent resets first).
func Combine(a, b Status) Status {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		return b
	case b == nil:
		return a
	case a == Disallow || b == Disallow:
		return Disallow
	case a == Allow:
		return b
	case b == Allow:
		return a
	default:
		return &composite{a: a, b: b}
	}
}

// CheckStatus resolves status against the per-key skip counter:
// DISALLOW increments the counter and returns (-1, false); anything else
// resets status and returns the accumulated skip count (0 if none),
// (count, true). No reset race is detected: concurrent emitters that
// reach CheckStatus with a non-DISALLOW status all emit, and only the
// one whose TakeAndReset runs first receives the accumulated count.
func CheckStatus(status Status, counter *SkipCounter) (skipped int64, ok bool) {
	if status == Disallow {
		counter.Increment()
		return -1, false
	}
	status.Reset()
	return counter.TakeAndReset(), true
}

// SkipCounter is the per-specialized-key counter of observations seen
// while DISALLOW, read and cleared atomically by the next emission. Safe
// for concurrent use — stored inside a sitemap.LogSiteMap.
type SkipCounter struct {
	n atomic.Int64
}

// NewSkipCounter returns a zeroed counter; it is the initializer
// sitemap.LogSiteMap[*SkipCounter] constructs on first access.
func NewSkipCounter() *SkipCounter { return &SkipCounter{} }

// Increment records one more disallowed observation.
func (c *SkipCounter) Increment() { c.n.Add(1) }

// TakeAndReset atomically reads and clears the accumulated count.
func (c *SkipCounter) TakeAndReset() int64 { return c.n.Swap(0) }
