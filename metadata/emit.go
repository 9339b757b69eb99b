package metadata

import (
	"fmt"

	"github.com/fluentlog/fluentlog/core"
)

// Values returns every value stored under key, in insertion order. For a
// non-repeatable key this is at most a single-element slice.
func (m Metadata) Values(key core.AnyMetadataKey) []any {
	var out []any
	for _, p := range m.pairs {
		if p.key == key {
			out = append(out, p.value)
		}
	}
	return out
}

// EmitGrouping renders GroupingKey's accumulated values per the spec's
// grouping-emission law: a single qualifier emits as (group_by, q); two
// or more emit as (group_by, "[q1,q2,...]").
func EmitGrouping(values []any) (label, value string) {
	if len(values) == 1 {
		return GroupingKey.Label(), fmt.Sprintf("%v", values[0])
	}
	rendered := "["
	for i, v := range values {
		if i > 0 {
			rendered += ","
		}
		rendered += fmt.Sprintf("%v", v)
	}
	rendered += "]"
	return GroupingKey.Label(), rendered
}
