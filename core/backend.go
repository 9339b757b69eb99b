package core

// Backend is the pluggable sink every fluentlog Logger dispatches to.
// Concrete backend implementations (file/console sinks, a JUL bridge,
// and so on) are external collaborators out of scope for this core;
// only the contract is specified here.
type Backend interface {
	// LoggerName identifies this backend's logger for diagnostics.
	LoggerName() string

	// IsLoggable reports whether the backend would accept an event at
	// level. Used by Logger.At to decide between a real context and
	// the shared no-op API.
	IsLoggable(level Level) bool

	// Log delivers data to the backend. Called at most once per
	// terminal log() call. May return the sentinel LoggingException
	// (which propagates unchanged); every other returned error is
	// ordinary and is recovered via the last-resort channel. A panic
	// raised inside Log is not recovered and propagates to the caller.
	Log(data *LogData) error

	// HandleError is invoked when argument formatting fails (e.g. a
	// lazy argument's evaluation panics/errors). If it also fails, the
	// caller falls through to the last-resort channel.
	HandleError(cause error, badData *LogData) error
}
