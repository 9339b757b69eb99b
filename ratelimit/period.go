package ratelimit

import "time"

// Period is an (n, unit) pair with a cached nanosecond duration, as the
// spec's atMostEvery(n, unit) modifier stores in metadata.
type Period struct {
	N    int64
	Unit time.Duration
}

// NewPeriod builds a Period, caching n*unit as a time.Duration.
func NewPeriod(n int64, unit time.Duration) Period {
	return Period{N: n, Unit: unit}
}

// ToNanos returns the period's length in nanoseconds.
func (p Period) ToNanos() int64 {
	return p.N * int64(p.Unit)
}
