package ratelimit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fluentlog/fluentlog/ratelimit"
)

// TestCheckDuration_EveryTwoSeconds reproduces the spec's seed scenario
// #2: every(15).atMostEvery(2, SECONDS) at 100ms intervals over 6s
// yields 4 emissions at indices 0, 20, 40, 60 — driven here by the
// duration limiter alone (the counting limiter's contribution is tested
// separately; Combine's interaction is exercised at the pipeline level).
func TestCheckDuration_EveryTwoSeconds(t *testing.T) {
	state := ratelimit.NewDurationLimiterState()
	period := ratelimit.NewPeriod(2, time.Second)

	var emittedAt []int
	const interval = 100 * time.Millisecond
	for i := 0; i <= 60; i++ {
		now := int64(i) * int64(interval)
		status := ratelimit.CheckDuration(state, period, now)
		if status != ratelimit.Disallow {
			status.Reset()
			emittedAt = append(emittedAt, i)
		}
	}

	assert.Equal(t, []int{0, 20, 40, 60}, emittedAt)
}

func TestCheckDuration_EveryOneSecond(t *testing.T) {
	state := ratelimit.NewDurationLimiterState()
	period := ratelimit.NewPeriod(1, time.Second)

	var emittedAt []int
	const interval = 100 * time.Millisecond
	for i := 0; i <= 60; i++ {
		now := int64(i) * int64(interval)
		status := ratelimit.CheckDuration(state, period, now)
		if status != ratelimit.Disallow {
			status.Reset()
			emittedAt = append(emittedAt, i)
		}
	}

	assert.Equal(t, []int{0, 10, 20, 30, 40, 50, 60}, emittedAt)
}

// TestCombine_EveryFifteenWithAtMostOneSecond reproduces the spec's seed
// scenario #3: every(15).atMostEvery(1, SECOND) at 100ms intervals over
// 6s yields 5 emissions at indices 0, 15, 30, 45, 60 — the counting
// limiter's every-15th constraint is the binding one throughout, since
// 15 ticks (1.5s) always exceeds the 1s duration period.
func TestCombine_EveryFifteenWithAtMostOneSecond(t *testing.T) {
	counting := ratelimit.NewCountingLimiterState()
	duration := ratelimit.NewDurationLimiterState()
	period := ratelimit.NewPeriod(1, time.Second)

	var emittedAt []int
	const interval = 100 * time.Millisecond
	for i := 0; i <= 60; i++ {
		now := int64(i) * int64(interval)
		status := ratelimit.Combine(
			ratelimit.CheckDuration(duration, period, now),
			ratelimit.CheckCounting(counting, 15),
		)
		if status != ratelimit.Disallow {
			status.Reset()
			emittedAt = append(emittedAt, i)
		}
	}

	assert.Equal(t, []int{0, 15, 30, 45, 60}, emittedAt)
}

// TestCombine_EveryFifteenWithAtMostTwoSeconds reproduces the spec's
// seed scenario #2: every(15).atMostEvery(2, SECONDS) at 100ms
// intervals over 6s yields 4 emissions at indices 0, 20, 40, 60.
func TestCombine_EveryFifteenWithAtMostTwoSeconds(t *testing.T) {
	counting := ratelimit.NewCountingLimiterState()
	duration := ratelimit.NewDurationLimiterState()
	period := ratelimit.NewPeriod(2, time.Second)

	var emittedAt []int
	const interval = 100 * time.Millisecond
	for i := 0; i <= 60; i++ {
		now := int64(i) * int64(interval)
		status := ratelimit.Combine(
			ratelimit.CheckDuration(duration, period, now),
			ratelimit.CheckCounting(counting, 15),
		)
		if status != ratelimit.Disallow {
			status.Reset()
			emittedAt = append(emittedAt, i)
		}
	}

	assert.Equal(t, []int{0, 20, 40, 60}, emittedAt)
}

func TestCheckDuration_NLessThanZeroDisables(t *testing.T) {
	state := ratelimit.NewDurationLimiterState()
	assert.Nil(t, ratelimit.CheckDuration(state, ratelimit.NewPeriod(-1, time.Second), 0))
}

func TestCheckDuration_PendingPhaseDuplicatesEmit(t *testing.T) {
	state := ratelimit.NewDurationLimiterState()
	period := ratelimit.NewPeriod(1, time.Second)

	// Start at a non-zero time: at t=0 the pending value -t is 0, which
	// is the limiting phase.
	status := ratelimit.CheckDuration(state, period, int64(time.Second))
	assert.NotEqual(t, ratelimit.Disallow, status)
	// Don't reset: state is left in the pending (negative) phase, as a
	// concurrent emitter mid-transition would leave it.
	again := ratelimit.CheckDuration(state, period, int64(time.Second+time.Millisecond))
	assert.NotEqual(t, ratelimit.Disallow, again)
}
