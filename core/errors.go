package core

import "errors"

// LoggingException is the sentinel "hard" backend error. Unlike an
// ordinary backend error (recovered via the last-resort channel), a
// LoggingException always propagates to the caller unmodified — it
// exists so backend implementations and tests can exercise the
// non-recovering error path deliberately.
type LoggingException struct {
	Cause error
}

func (e *LoggingException) Error() string {
	if e.Cause == nil {
		return "fluentlog: logging exception"
	}
	return "fluentlog: logging exception: " + e.Cause.Error()
}

func (e *LoggingException) Unwrap() error { return e.Cause }

// NewLoggingException wraps cause as a sentinel hard error.
func NewLoggingException(cause error) *LoggingException {
	return &LoggingException{Cause: cause}
}

// IsLoggingException reports whether err is, or wraps, a LoggingException.
func IsLoggingException(err error) bool {
	var le *LoggingException
	return errors.As(err, &le)
}
