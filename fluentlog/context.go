package fluentlog

import (
	"fmt"
	"time"

	"github.com/fluentlog/fluentlog/core"
	"github.com/fluentlog/fluentlog/metadata"
	"github.com/fluentlog/fluentlog/ratelimit"
	"github.com/fluentlog/fluentlog/scope"
)

// Context is LogContext: the fluent, single-use, not-thread-safe object
// a Logger.At/ForceAt call returns. Every modifier mutates in place and
// returns the same *Context so calls chain; the terminal methods
// (Log/LogVarargs/LogMsg) run it through post-processing exactly once.
//
// The disabled path is the shared package-level noopContext singleton:
// every modifier and terminal method branches on c.enabled and returns
// immediately without allocating, per the spec's "disabled path must
// allocate nothing" design note — a branch in At, not virtual dispatch
// through a live context.
type Context struct {
	logger *Logger
	level  core.Level

	enabled bool
	forced  bool

	md *metadata.MutableMetadata

	injectedSite    core.LogSiteKey
	hasInjectedSite bool
}

// noopContext is the shared, stateless disabled-path singleton.
var noopContext = &Context{enabled: false}

// WithCause adds LOG_CAUSE (single-valued: a later call replaces an
// earlier one). A nil cause is a no-op.
func (c *Context) WithCause(cause error) *Context {
	if !c.enabled || cause == nil {
		return c
	}
	c.md.AddValue(metadata.CauseKey, cause)
	return c
}

// With adds a metadata entry under key. A nil value is a no-op.
func (c *Context) With(key core.AnyMetadataKey, value any) *Context {
	if !c.enabled || value == nil {
		return c
	}
	c.md.AddValue(key, value)
	return c
}

// WithFlag is shorthand for With(key, true).
func (c *Context) WithFlag(key *core.MetadataKey[bool]) *Context {
	return c.With(key, true)
}

// Every sets LOG_EVERY_N=n, restricting emission to every nth
// observation at this (specialized) log site. n must be >0 unless the
// context is forced, in which case the call is a pure no-op: it neither
// validates n nor touches metadata or per-site state.
func (c *Context) Every(n int64) *Context {
	if !c.enabled || c.forced {
		return c
	}
	if n <= 0 {
		panic(fmt.Sprintf("fluentlog: every(n) requires n>0, got %d", n))
	}
	if n > 1 {
		c.md.AddValue(ratelimit.EveryNKey, n)
	}
	return c
}

// OnAverageEvery sets LOG_SAMPLE_EVERY_N=n: each observation emits with
// probability 1/n. Same validation and forced-no-op rules as Every.
func (c *Context) OnAverageEvery(n int64) *Context {
	if !c.enabled || c.forced {
		return c
	}
	if n <= 0 {
		panic(fmt.Sprintf("fluentlog: onAverageEvery(n) requires n>0, got %d", n))
	}
	c.md.AddValue(ratelimit.SampleEveryNKey, n)
	return c
}

// AtMostEvery sets LOG_AT_MOST_EVERY=period(n,unit), rate-limiting
// emission to no more than once per period at this log site. n=0 is a
// no-op; n<0 is rejected unless the context is forced, in which case the
// whole call is a no-op (no validation, no metadata, no per-site state).
func (c *Context) AtMostEvery(n int64, unit time.Duration) *Context {
	if !c.enabled || c.forced {
		return c
	}
	if n < 0 {
		panic(fmt.Sprintf("fluentlog: atMostEvery(n, unit) requires n>=0, got %d", n))
	}
	if n == 0 {
		return c
	}
	c.md.AddValue(ratelimit.AtMostEveryKey, ratelimit.NewPeriod(n, unit))
	return c
}

// Per adds one repeated LOG_SITE_GROUPING_KEY entry, specializing the
// log-site key this call resolves to. A nil qualifier is a no-op.
// Qualifiers are typically produced by a strategy helper (e.g. ByClass)
// or an enum-like comparable value.
func (c *Context) Per(qualifier any) *Context {
	if !c.enabled || qualifier == nil {
		return c
	}
	c.md.AddValue(metadata.GroupingKey, qualifier)
	return c
}

// PerScope resolves provider's current scope and adds it as a
// LOG_SITE_GROUPING_KEY qualifier; during post-processing a scope
// qualifier specializes via its own Specialize method (which also
// arranges the key's removal when the scope ends) rather than the
// generic wrap-with-qualifier path Per's qualifiers take.
func (c *Context) PerScope(provider scope.Provider) *Context {
	if !c.enabled || provider == nil {
		return c
	}
	sc := provider.CurrentScope()
	if sc == nil {
		return c
	}
	c.md.AddValue(metadata.GroupingKey, sc)
	return c
}

// WithStackTrace stores CONTEXT_STACK_SIZE; size == core.StackNone is a
// no-op, matching the spec's "unless NONE" rule.
func (c *Context) WithStackTrace(size core.StackSize) *Context {
	if !c.enabled || size == core.StackNone {
		return c
	}
	c.md.AddValue(metadata.StackSizeKey, size)
	return c
}

// WithInjectedLogSite fixes the log site explicitly instead of letting
// post-processing infer it from the call stack. The first non-nil call
// wins and is sticky — a later call (even with InvalidLogSite) has no
// effect once one has been set.
func (c *Context) WithInjectedLogSite(site core.LogSiteKey) *Context {
	if !c.enabled || c.hasInjectedSite || site == nil {
		return c
	}
	c.injectedSite = site
	c.hasInjectedSite = true
	return c
}
