// Package core provides the fundamental, dependency-free types and
// interfaces shared by every other fluentlog package: the severity Level,
// the log-site identity types, metadata keys, the LogData handed to a
// backend, and the Backend/Platform contracts themselves.
package core

import "math"

// Level is an ordered log severity. The core treats it opaquely beyond
// ordering, the enabled check, and the forced-logging override.
type Level int32

const (
	Trace Level = iota
	Debug
	Info
	Warning
	Error
	Fatal
)

// Off disables a logger entirely regardless of any other policy. It is
// reserved for use as a LogLevelMap entry, never as an event's own level.
const Off Level = math.MaxInt32

// String returns the conventional name of the level.
func (l Level) String() string {
	switch l {
	case Trace:
		return "TRACE"
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	case Off:
		return "OFF"
	default:
		return "LEVEL(" + itoa(int(l)) + ")"
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
