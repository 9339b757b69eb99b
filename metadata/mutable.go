package metadata

import "github.com/fluentlog/fluentlog/core"

const initialCapacity = 4

// MutableMetadata is the per-context metadata a LogContext accumulates
// modifier state into. It is not safe for concurrent use — a context
// lives on one goroutine for the duration of a single terminal call.
type MutableMetadata struct {
	pairs []pair
}

// NewMutableMetadata returns an empty, ready-to-use MutableMetadata.
func NewMutableMetadata() *MutableMetadata {
	return &MutableMetadata{pairs: make([]pair, 0, initialCapacity)}
}

// Size returns the number of entries.
func (m *MutableMetadata) Size() int { return len(m.pairs) }

// KeyAt returns the key at index i.
func (m *MutableMetadata) KeyAt(i int) core.AnyMetadataKey { return m.pairs[i].key }

// ValueAt returns the value at index i.
func (m *MutableMetadata) ValueAt(i int) any { return m.pairs[i].value }

// Find returns the first value stored under key, if any.
func (m *MutableMetadata) Find(key core.AnyMetadataKey) (any, bool) {
	for _, p := range m.pairs {
		if p.key == key {
			return p.value, true
		}
	}
	return nil, false
}

// AddValue adds value under key. For a non-repeatable key this replaces
// any existing value in place (preserving its original position); for a
// repeatable key it appends, preserving insertion order.
func (m *MutableMetadata) AddValue(key core.AnyMetadataKey, value any) {
	if !key.Repeatable() {
		for i := range m.pairs {
			if m.pairs[i].key == key {
				m.pairs[i].value = value
				return
			}
		}
	}
	m.grow()
	m.pairs = append(m.pairs, pair{key: key, value: value})
}

// grow doubles capacity when the backing array is full, mirroring the
// spec's flat-array growth rule rather than relying solely on append's
// own amortized doubling.
func (m *MutableMetadata) grow() {
	if len(m.pairs) < cap(m.pairs) {
		return
	}
	newCap := cap(m.pairs) * 2
	if newCap == 0 {
		newCap = initialCapacity
	}
	grown := make([]pair, len(m.pairs), newCap)
	copy(grown, m.pairs)
	m.pairs = grown
}

// RemoveAllValues removes every entry stored under key, compacting the
// backing array and nulling the trailing slots it vacates.
func (m *MutableMetadata) RemoveAllValues(key core.AnyMetadataKey) {
	kept := m.pairs[:0]
	for _, p := range m.pairs {
		if p.key != key {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(m.pairs); i++ {
		m.pairs[i] = pair{}
	}
	m.pairs = kept
}

// Snapshot returns an immutable Metadata view over the current entries.
// The returned value is a point-in-time copy: further mutation of m does
// not affect it.
func (m *MutableMetadata) Snapshot() Metadata {
	if len(m.pairs) == 0 {
		return Empty
	}
	cp := make([]pair, len(m.pairs))
	copy(cp, m.pairs)
	return Metadata{pairs: cp}
}
