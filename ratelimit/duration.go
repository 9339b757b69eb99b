package ratelimit

import (
	"math"
	"sync/atomic"
)

// uninitializedDeadline marks a DurationLimiterState that has never
// seen an observation: distinct from every real "pending" value
// (-nowNanos for any plausible wall-clock nowNanos), so the very first
// observation can be recognized and always emits, mirroring the
// uninitializedCount sentinel in counting.go.
const uninitializedDeadline = math.MinInt64

// DurationLimiterState is the per-log-site state behind
// atMostEvery(n, unit): a single atomic timestamp whose sign encodes the
// phase — non-negative means "limiting" (holds the last emission time),
// negative means "pending" (a transition to a new limiting timestamp is
// in flight), except for the reserved uninitializedDeadline sentinel.
// A transition at nowNanos == 0 stores 0, so it has no pending phase and
// reads as "limiting since t=0".
type DurationLimiterState struct {
	last atomic.Int64
}

// NewDurationLimiterState returns the state a
// sitemap.LogSiteMap[*DurationLimiterState] constructs on first access,
// seeded so the first observation always emits.
func NewDurationLimiterState() *DurationLimiterState {
	s := &DurationLimiterState{}
	s.last.Store(uninitializedDeadline)
	return s
}

// Reset atomically flips last back to the limiting phase: last =
// max(-last, 0). Guarantees a return to the limiting phase even against
// a racing concurrent update.
func (s *DurationLimiterState) Reset() {
	for {
		cur := s.last.Load()
		next := -cur
		if next < 0 {
			next = 0
		}
		if s.last.CompareAndSwap(cur, next) {
			return
		}
	}
}

// CheckDuration evaluates one observation at nowNanos against
// atMostEvery(period). period.N<=0 disables the limiter (nil).
func CheckDuration(state *DurationLimiterState, period Period, nowNanos int64) Status {
	if period.N <= 0 {
		return nil
	}
	for {
		cur := state.last.Load()
		if cur == uninitializedDeadline {
			if state.last.CompareAndSwap(cur, -nowNanos) {
				return state
			}
			continue
		}
		if cur < 0 {
			// A concurrent observation is already mid-transition;
			// race-tolerant duplicate emit rather than blocking.
			return state
		}
		deadline := cur + period.ToNanos()
		if deadline < 0 || deadline < cur || deadline > nowNanos {
			return Disallow
		}
		if state.last.CompareAndSwap(cur, -nowNanos) {
			return state
		}
	}
}
