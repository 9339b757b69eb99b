// Package levelmap implements LogLevelMap: a hierarchical dotted-name
// trie from logger-name prefixes to minimum enabled levels. Grounded on
// the teacher's internal/filters/source_context_level.go longest-prefix
// match (SourceContextLevelFilter), generalized from a flat
// map+substring-prefix scan into a real trie keyed by dotted segments
// and given a duplicate/validity-checking Builder.
package levelmap

import (
	"fmt"
	"strings"

	"github.com/fluentlog/fluentlog/core"
)

// LogLevelMap resolves a logger name to its effective minimum level by
// longest matching dotted-prefix, falling back to a default.
type LogLevelMap struct {
	defaultLevel core.Level
	root         *node
}

type node struct {
	children map[string]*node
	level    core.Level
	hasLevel bool
}

func newNode() *node { return &node{children: make(map[string]*node)} }

// GetLevel returns the level of the longest matching prefix of name, or
// the map's default level if none matches.
func (m *LogLevelMap) GetLevel(name string) core.Level {
	if m == nil {
		return core.Trace
	}
	segments := splitName(name)
	cur := m.root
	best := m.defaultLevel
	for _, seg := range segments {
		next, ok := cur.children[seg]
		if !ok {
			break
		}
		cur = next
		if cur.hasLevel {
			best = cur.level
		}
	}
	return best
}

// DefaultLevel returns the map's fallback level.
func (m *LogLevelMap) DefaultLevel() core.Level { return m.defaultLevel }

// Merge returns a new LogLevelMap taking, for every key in the union of
// m and other, the finer (more permissive, i.e. numerically lower)
// level; the merged default is the finer of the two defaults.
func (m *LogLevelMap) Merge(other *LogLevelMap) *LogLevelMap {
	b := NewBuilder(finer(m.defaultLevel, other.defaultLevel))
	m.collect(func(name string, level core.Level) {
		b.mergeSet(name, level)
	})
	other.collect(func(name string, level core.Level) {
		b.mergeSet(name, level)
	})
	return b.Build()
}

func (m *LogLevelMap) collect(visit func(name string, level core.Level)) {
	var walk func(n *node, prefix []string)
	walk = func(n *node, prefix []string) {
		if n.hasLevel {
			visit(strings.Join(prefix, "."), n.level)
		}
		for seg, child := range n.children {
			next := make([]string, len(prefix)+1)
			copy(next, prefix)
			next[len(prefix)] = seg
			walk(child, next)
		}
	}
	walk(m.root, nil)
}

func finer(a, b core.Level) core.Level {
	if a < b {
		return a
	}
	return b
}

func splitName(name string) []string {
	if name == "" {
		return nil
	}
	return strings.Split(name, ".")
}

// Builder constructs a LogLevelMap, rejecting duplicate inserts and
// malformed names (empty, leading/trailing dot, consecutive dots).
type Builder struct {
	defaultLevel core.Level
	root         *node
	err          error
}

// NewBuilder starts a Builder with the given default level.
func NewBuilder(defaultLevel core.Level) *Builder {
	return &Builder{defaultLevel: defaultLevel, root: newNode()}
}

// Set inserts name -> level, recording an error (reported by Err) if
// name is invalid or already inserted. Once an error is recorded, later
// Set calls are ignored.
func (b *Builder) Set(name string, level core.Level) *Builder {
	if b.err != nil {
		return b
	}
	if err := validateName(name); err != nil {
		b.err = err
		return b
	}
	cur := b.root
	for _, seg := range splitName(name) {
		next, ok := cur.children[seg]
		if !ok {
			next = newNode()
			cur.children[seg] = next
		}
		cur = next
	}
	if cur.hasLevel {
		b.err = fmt.Errorf("levelmap: duplicate entry for %q", name)
		return b
	}
	cur.level = level
	cur.hasLevel = true
	return b
}

// mergeSet is Set without the duplicate-insert restriction, used by
// Merge to combine two already-validated maps: a path visited from both
// sides keeps the finer level.
func (b *Builder) mergeSet(name string, level core.Level) {
	cur := b.root
	for _, seg := range splitName(name) {
		next, ok := cur.children[seg]
		if !ok {
			next = newNode()
			cur.children[seg] = next
		}
		cur = next
	}
	if !cur.hasLevel || level < cur.level {
		cur.level = level
		cur.hasLevel = true
	}
}

// Build finalizes the map from the entries Set accepted. It reports no
// error; Err returns the first error recorded by Set.
func (b *Builder) Build() *LogLevelMap {
	return &LogLevelMap{defaultLevel: b.defaultLevel, root: b.root}
}

// Err returns the first error recorded by Set, if any.
func (b *Builder) Err() error { return b.err }

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("levelmap: empty name")
	}
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") {
		return fmt.Errorf("levelmap: name %q has a leading or trailing dot", name)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("levelmap: name %q has consecutive dots", name)
	}
	return nil
}
