package ratelimit

import (
	"math/rand/v2"
	"sync/atomic"
)

// SamplingLimiterState is the per-log-site state behind
// onAverageEvery(N). math/rand/v2's top-level generator is already safe
// for concurrent use without a shared lock (it shards per-goroutine
// internally), which is exactly the "thread-local RNG" property the spec
// calls for — no hand-rolled per-goroutine pool needed.
type SamplingLimiterState struct {
	pending atomic.Int64
}

// NewSamplingLimiterState returns the zero-value state a
// sitemap.LogSiteMap[*SamplingLimiterState] constructs on first access.
func NewSamplingLimiterState() *SamplingLimiterState { return &SamplingLimiterState{} }

// Reset decrements the pending count by one.
func (s *SamplingLimiterState) Reset() { s.pending.Add(-1) }

// CheckSampling evaluates one observation against onAverageEvery(n).
// n<=0 disables the limiter (nil, treated as absent by Combine).
func CheckSampling(state *SamplingLimiterState, n int64) Status {
	if n <= 0 {
		return nil
	}
	if rand.Int64N(n) == 0 {
		state.pending.Add(1)
	}
	if state.pending.Load() > 0 {
		return state
	}
	return Disallow
}
