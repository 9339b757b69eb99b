package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fluentlog/fluentlog/ratelimit"
)

type resettable struct{ resets int }

func (r *resettable) Reset() { r.resets++ }

func TestCombine_NilIdentities(t *testing.T) {
	assert.Nil(t, ratelimit.Combine(nil, nil))
	assert.Equal(t, ratelimit.Allow, ratelimit.Combine(nil, ratelimit.Allow))
	assert.Equal(t, ratelimit.Disallow, ratelimit.Combine(ratelimit.Disallow, nil))
}

func TestCombine_DisallowDominates(t *testing.T) {
	stateful := &resettable{}
	assert.Equal(t, ratelimit.Disallow, ratelimit.Combine(ratelimit.Disallow, stateful))
	assert.Equal(t, ratelimit.Disallow, ratelimit.Combine(stateful, ratelimit.Disallow))
	assert.Equal(t, ratelimit.Disallow, ratelimit.Combine(ratelimit.Allow, ratelimit.Disallow))
}

func TestCombine_AllowPassesOtherThrough(t *testing.T) {
	stateful := &resettable{}
	assert.Same(t, stateful, ratelimit.Combine(ratelimit.Allow, stateful).(*resettable))
	assert.Same(t, stateful, ratelimit.Combine(stateful, ratelimit.Allow).(*resettable))
}

func TestCombine_TwoStatefulsResetBoth(t *testing.T) {
	a := &resettable{}
	b := &resettable{}
	combined := ratelimit.Combine(a, b)
	combined.Reset()
	assert.Equal(t, 1, a.resets)
	assert.Equal(t, 1, b.resets)
}

func TestCombine_PanicOnFirstResetStillResetsSecond(t *testing.T) {
	b := &resettable{}
	combined := ratelimit.Combine(panicky{}, b)
	assert.Panics(t, combined.Reset)
	assert.Equal(t, 1, b.resets)
}

type panicky struct{}

func (panicky) Reset() { panic("boom") }

func TestCheckStatus_DisallowIncrementsCounter(t *testing.T) {
	counter := ratelimit.NewSkipCounter()
	skipped, ok := ratelimit.CheckStatus(ratelimit.Disallow, counter)
	assert.False(t, ok)
	assert.Equal(t, int64(-1), skipped)
	assert.Equal(t, int64(1), counter.TakeAndReset())
}

func TestCheckStatus_AllowDrainsAccumulatedSkips(t *testing.T) {
	counter := ratelimit.NewSkipCounter()
	ratelimit.CheckStatus(ratelimit.Disallow, counter)
	ratelimit.CheckStatus(ratelimit.Disallow, counter)

	skipped, ok := ratelimit.CheckStatus(ratelimit.Allow, counter)
	assert.True(t, ok)
	assert.Equal(t, int64(2), skipped)

	skipped, ok = ratelimit.CheckStatus(ratelimit.Allow, counter)
	assert.True(t, ok)
	assert.Equal(t, int64(0), skipped)
}
