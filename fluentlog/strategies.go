package fluentlog

import "reflect"

// ByClass is a grouping strategy for Per: it groups observations by the
// dynamic type of v, matching the spec's per(exception, byClass) seed
// scenario (grouping a sequence of distinct error values by their Go
// type rather than by value).
func ByClass(v any) any {
	if v == nil {
		return nil
	}
	return reflect.TypeOf(v)
}
