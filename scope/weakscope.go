package scope

import (
	"runtime"
	"sync"

	"github.com/fluentlog/fluentlog/core"
)

// keyPart is the indirection a specialized key actually references: it
// holds no pointer back to the owning WeakScope, so a LogSiteMap entry
// specialized with it never keeps the scope reachable. It owns the
// close-hook queue and fires each hook exactly once.
type keyPart struct {
	mu    sync.Mutex
	hooks []func()
	fired bool
}

func (kp *keyPart) onClose(hook func()) {
	kp.mu.Lock()
	if kp.fired {
		kp.mu.Unlock()
		hook()
		return
	}
	kp.hooks = append(kp.hooks, hook)
	kp.mu.Unlock()
}

// fire runs every registered hook exactly once. Safe to call more than
// once (from both an explicit Close and a later GC-triggered cleanup);
// only the first call has any effect.
func (kp *keyPart) fire() {
	kp.mu.Lock()
	if kp.fired {
		kp.mu.Unlock()
		return
	}
	kp.fired = true
	hooks := kp.hooks
	kp.hooks = nil
	kp.mu.Unlock()

	for _, h := range hooks {
		h()
	}
}

// WeakScope is the reference LoggingScope implementation. Hooks fire
// either when Close is called explicitly, or — if the caller never
// closes it — when the scope becomes unreachable and the runtime invokes
// its cleanup, whichever happens first.
type WeakScope struct {
	label string
	part  *keyPart
}

// NewWeakScope creates a scope labeled label. If the caller never calls
// Close, registered hooks still fire once the scope is garbage
// collected, via runtime.AddCleanup — the hook argument deliberately
// does not reference the WeakScope itself, so registering it does not
// keep the scope alive.
func NewWeakScope(label string) *WeakScope {
	s := &WeakScope{label: label, part: &keyPart{}}
	runtime.AddCleanup(s, (*keyPart).fire, s.part)
	return s
}

// Label returns the scope's label.
func (s *WeakScope) Label() string { return s.label }

// Specialize wraps key with this scope's key-part as qualifier. The
// key-part, not the scope, is what LogSiteMap entries end up holding —
// so they never keep the scope reachable.
func (s *WeakScope) Specialize(key core.LogSiteKey) core.LogSiteKey {
	return core.Specialize(key, s.part)
}

// OnClose registers hook to run exactly once when the scope ends.
func (s *WeakScope) OnClose(hook func()) {
	s.part.onClose(hook)
}

// Close ends the scope immediately and deterministically, running every
// registered hook exactly once. Safe to call more than once, and safe to
// call even if the scope would otherwise only ever be reclaimed by GC.
// Implementations that cannot rely on reachability-based cleanup should
// always call Close explicitly instead of waiting on the finalizer path.
func (s *WeakScope) Close() {
	s.part.fire()
}
