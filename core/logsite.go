package core

// LogSiteKey is the opaque identity used as a LogSiteMap key. Every
// LogSite is a LogSiteKey; SpecializedLogSiteKey wraps one with a
// qualifier to produce a distinct key. The marker method only exists to
// keep arbitrary types from being used as keys by accident.
type LogSiteKey interface {
	logSiteKey()
}

// LogSite is the immutable identity of a log statement: class, method,
// line number (1..65535, or UnknownLine for an injected/synthetic site)
// and an optional file name. Equality for stack-derived sites compares
// all four fields; injected sites may use a globally unique Class/Method
// pair to guarantee distinctness without a real call stack.
type LogSite struct {
	Class  string
	Method string
	Line   int
	File   string
}

// UnknownLine marks a LogSite whose line number could not be determined.
const UnknownLine = 0

// InvalidLogSite is the sentinel used to explicitly suppress log-site
// analysis. It is a real, comparable value distinct from any "no value"
// state, so code can tell "explicitly invalid" apart from "unset".
var InvalidLogSite = LogSite{Class: "<invalid>", Method: "<invalid>", Line: UnknownLine}

func (LogSite) logSiteKey() {}

// IsValid reports whether this site is usable for specialization and
// state-map lookups.
func (s LogSite) IsValid() bool { return s != InvalidLogSite }

// SpecializedLogSiteKey wraps a base LogSiteKey with a qualifier value.
// It compares equal only when both the base and the qualifier compare
// equal, so specialization is order-sensitive by construction: wrapping
// the same qualifier twice, or two qualifiers in opposite order, produces
// distinct keys (the struct literal itself differs).
type SpecializedLogSiteKey struct {
	Base      LogSiteKey
	Qualifier any
}

func (SpecializedLogSiteKey) logSiteKey() {}

// Specialize wraps base with qualifier, producing a new, distinct key.
func Specialize(base LogSiteKey, qualifier any) LogSiteKey {
	return SpecializedLogSiteKey{Base: base, Qualifier: qualifier}
}
