// Package metadata implements the ordered key/value sequence attached to
// every LogContext and LogData: an immutable Metadata view plus the
// MutableMetadata a context accumulates modifiers into. Grounded on the
// teacher's flat property-map idiom (core/event.go's Properties map),
// adapted from map-valued to ordered-array-valued since the spec's
// grouping-key and repeated-value invariants depend on insertion order
// a map cannot preserve.
package metadata

import "github.com/fluentlog/fluentlog/core"

// Empty is the shared immutable empty Metadata singleton.
var Empty Metadata = Metadata{}

// Metadata is a read-only ordered sequence of (key, value) entries.
type Metadata struct {
	pairs []pair
}

type pair struct {
	key   core.AnyMetadataKey
	value any
}

// Size returns the number of entries.
func (m Metadata) Size() int { return len(m.pairs) }

// KeyAt returns the key at index i.
func (m Metadata) KeyAt(i int) core.AnyMetadataKey { return m.pairs[i].key }

// ValueAt returns the value at index i.
func (m Metadata) ValueAt(i int) any { return m.pairs[i].value }

// Find returns the first value stored under key, if any.
func (m Metadata) Find(key core.AnyMetadataKey) (any, bool) {
	for _, p := range m.pairs {
		if p.key == key {
			return p.value, true
		}
	}
	return nil, false
}

// FindTyped is a generic convenience wrapper over Find for a concrete
// MetadataKey[T], returning the value already asserted to T.
func FindTyped[T any](m Metadata, key *core.MetadataKey[T]) (T, bool) {
	var zero T
	v, ok := m.Find(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
