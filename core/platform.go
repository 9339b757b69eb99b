package core

// CallerFinder locates the log-site identity for the caller of the
// logging front-end. A concrete implementation (platform.Default) walks
// the runtime call stack; it is injected here only as a contract so the
// core stays testable without runtime.Caller dependence.
type CallerFinder interface {
	// FindLoggingClass returns the logger-name to use for loggerClass,
	// typically the caller's package/type name.
	FindLoggingClass(loggerClass string) string

	// FindLogSite returns the LogSite of the caller of loggerAPIClass,
	// skipping skip additional frames beyond the finder's own. Returns
	// InvalidLogSite on failure; never a zero value masquerading as
	// success.
	FindLogSite(loggerAPIClass string, skip int) LogSite
}

// Platform is the set of environment-provided collaborators a Logger
// needs beyond the backend: the clock, the caller finder, the
// force-logging policy, injected tags/metadata, and the per-goroutine
// recursion-depth counter used by the recursion guard.
type Platform interface {
	CurrentTimeNanos() int64

	CallerFinder() CallerFinder

	// ShouldForceLogging reports whether a call at level on loggerName
	// should proceed even though isEnabled is false.
	ShouldForceLogging(loggerName string, level Level, isEnabled bool) bool

	// MappedLevel returns an override level for loggerName, or (_,
	// false) if none is configured. A returned level of Off forces a
	// no-op regardless of any other policy.
	MappedLevel(loggerName string) (Level, bool)

	// InjectedMetadata returns platform-supplied metadata, or nil.
	// Post-processing reads only its tags entry, which it merges with
	// the log-site tags of every emitted LogData.
	InjectedMetadata() MetadataView

	// RecursionDepth increments the logging recursion depth for the
	// calling goroutine and returns the new depth, plus a function that
	// restores it on exit.
	RecursionDepth() (depth int, done func())
}
