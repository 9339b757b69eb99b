// Package sitemap implements LogSiteMap: a concurrent, per-log-site
// state map whose entries are removed when a scope qualifying one of
// their keys ends. Grounded on the teacher's per-source-context state
// idiom (internal/filters/source_context_level.go), generalized into a
// generic lock-free-read map over an arbitrary stored value type.
package sitemap

import (
	"sync"

	"github.com/fluentlog/fluentlog/core"
	"github.com/fluentlog/fluentlog/metadata"
	"github.com/fluentlog/fluentlog/scope"
)

// LogSiteMap is a concurrent map from LogSiteKey to V. Get uses
// lock-free putIfAbsent semantics (sync.Map.LoadOrStore); stored values
// must themselves be safe for concurrent mutation via atomics only —
// never locked — to keep the logging hot path contention-free.
type LogSiteMap[V any] struct {
	entries  sync.Map // core.LogSiteKey -> V
	newValue func() V
}

// New creates a LogSiteMap whose entries are lazily constructed with
// newValue on first access.
func New[V any](newValue func() V) *LogSiteMap[V] {
	return &LogSiteMap[V]{newValue: newValue}
}

// Get returns the existing value for key, or atomically inserts
// newValue(). On a successful insert, md is scanned for
// LOG_SITE_GROUPING_KEY entries whose qualifier is a LoggingScope; a
// removal hook is registered on each such scope so this entry is dropped
// when the scope ends.
func (m *LogSiteMap[V]) Get(key core.LogSiteKey, md core.MetadataView) V {
	if v, ok := m.entries.Load(key); ok {
		return v.(V)
	}
	fresh := m.newValue()
	actual, loaded := m.entries.LoadOrStore(key, fresh)
	if !loaded {
		m.registerScopeRemoval(key, md)
	}
	return actual.(V)
}

// Contains reports whether key has an entry. Exposed for tests only.
func (m *LogSiteMap[V]) Contains(key core.LogSiteKey) bool {
	_, ok := m.entries.Load(key)
	return ok
}

func (m *LogSiteMap[V]) remove(key core.LogSiteKey) {
	m.entries.Delete(key)
}

// registerScopeRemoval walks md's grouping-key entries and, for every
// qualifier that is a scope.LoggingScope, registers a one-shot hook that
// removes key from this map when that scope ends.
func (m *LogSiteMap[V]) registerScopeRemoval(key core.LogSiteKey, md core.MetadataView) {
	if md == nil {
		return
	}
	for i := 0; i < md.Size(); i++ {
		if md.KeyAt(i) != metadata.GroupingKey {
			continue
		}
		qualifier := md.ValueAt(i)
		if sc, ok := qualifier.(scope.LoggingScope); ok {
			sc.OnClose(func() { m.remove(key) })
		}
	}
}
