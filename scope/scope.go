// Package scope implements LoggingScope: a labeled, lifetime-bound
// qualifier that specializes log-site keys and can trigger LogSiteMap
// entry removal when the scope ends.
//
// New for this spec (the teacher predates it), but built entirely on
// stdlib Go 1.24 primitives — weak.Pointer-style unreachability via
// runtime.AddCleanup — which is the idiomatic realization of the spec's
// "weak reference to the scope, registered against a reference queue"
// requirement without a hand-rolled finalizer queue.
package scope

import "github.com/fluentlog/fluentlog/core"

// LoggingScope is a labeled object that can specialize a LogSiteKey and
// register close hooks that fire when the scope ends.
type LoggingScope interface {
	Label() string

	// Specialize wraps key with this scope's qualifier (the scope's
	// key-part, not the scope itself — see WeakScope).
	Specialize(key core.LogSiteKey) core.LogSiteKey

	// OnClose registers hook to run exactly once when the scope ends.
	// No ordering is promised across hooks registered on the same scope.
	OnClose(hook func())
}

// Provider supplies the LoggingScope currently in effect, for use with
// the per(scopeProvider) fluent modifier.
type Provider interface {
	CurrentScope() LoggingScope
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func() LoggingScope

func (f ProviderFunc) CurrentScope() LoggingScope { return f() }
