// Package platform implements core.Platform: the real clock, the
// runtime-stack-walking caller finder, the per-goroutine recursion-depth
// guard, and the force-logging / level-map policy hooks. Grounded on the
// teacher's enrichers package (goroutine-id extraction, caller walking),
// generalized from "enrich an event with this info" to "answer the
// AbstractLogger's policy questions."
package platform

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/fluentlog/fluentlog/core"
	"github.com/fluentlog/fluentlog/levelmap"
)

// ForcePolicy decides whether a disabled call should still proceed.
type ForcePolicy func(loggerName string, level core.Level, isEnabled bool) bool

// NeverForce is the default ForcePolicy: nothing is ever forced.
func NeverForce(string, core.Level, bool) bool { return false }

// Default is the reference core.Platform implementation.
type Default struct {
	finder           RuntimeCallerFinder
	levelMap         atomic.Pointer[levelmap.LogLevelMap]
	forcePolicy      atomic.Pointer[ForcePolicy]
	injectedMetadata atomic.Pointer[core.MetadataView]

	recursion sync.Map // int64 goroutine id -> *atomic.Int64 depth
}

// NewDefault returns a ready-to-use Default platform with no level map
// override and a ForcePolicy that never forces.
func NewDefault() *Default {
	d := &Default{}
	var p ForcePolicy = NeverForce
	d.forcePolicy.Store(&p)
	return d
}

// CurrentTimeNanos returns the wall clock in nanoseconds since epoch.
func (d *Default) CurrentTimeNanos() int64 { return time.Now().UnixNano() }

// CallerFinder returns the runtime-stack-based finder.
func (d *Default) CallerFinder() core.CallerFinder { return d.finder }

// SetLevelMap installs (or clears, with nil) a LogLevelMap consulted by
// MappedLevel.
func (d *Default) SetLevelMap(m *levelmap.LogLevelMap) { d.levelMap.Store(m) }

// SetForcePolicy installs the predicate ShouldForceLogging consults.
func (d *Default) SetForcePolicy(p ForcePolicy) { d.forcePolicy.Store(&p) }

// SetInjectedMetadata installs the platform metadata whose tags entry
// post-processing merges into every emitted LogData's tags.
func (d *Default) SetInjectedMetadata(md core.MetadataView) { d.injectedMetadata.Store(&md) }

// ShouldForceLogging consults the installed ForcePolicy.
func (d *Default) ShouldForceLogging(loggerName string, level core.Level, isEnabled bool) bool {
	p := d.forcePolicy.Load()
	if p == nil {
		return false
	}
	return (*p)(loggerName, level, isEnabled)
}

// MappedLevel consults the installed LogLevelMap, if any.
func (d *Default) MappedLevel(loggerName string) (core.Level, bool) {
	m := d.levelMap.Load()
	if m == nil {
		return 0, false
	}
	return m.GetLevel(loggerName), true
}

// InjectedMetadata returns the installed injected metadata, if any.
func (d *Default) InjectedMetadata() core.MetadataView {
	p := d.injectedMetadata.Load()
	if p == nil {
		return nil
	}
	return *p
}

// RecursionDepth increments the calling goroutine's logging recursion
// depth and returns the new depth plus a function that must be called
// (typically via defer) to restore it on exit, even if the call panics.
func (d *Default) RecursionDepth() (depth int, done func()) {
	id := goroutineID()
	counterAny, _ := d.recursion.LoadOrStore(id, &atomic.Int64{})
	counter := counterAny.(*atomic.Int64)
	n := counter.Add(1)
	return int(n), func() {
		if counter.Add(-1) <= 0 {
			d.recursion.Delete(id)
		}
	}
}
