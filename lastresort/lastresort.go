// Package lastresort implements the process-wide, one-line diagnostic
// channel a Logger falls back to when it cannot otherwise deliver or
// report a log: an ordinary backend error it swallows, or a detected
// unbounded-recursion abort. Adapted from the teacher's selflog package
// — same atomic-pointer-swapped writer, same Sync() wrapper for
// non-thread-safe writers — but always-on by default (stderr) rather
// than opt-in, since spec.md §6 specifies it as a standing boundary, not
// a debugging toggle.
package lastresort

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// timestampLayout renders an ISO-8601 timestamp with milliseconds and a
// zone offset, per spec.md §6's last-resort channel format.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

var output atomic.Pointer[io.Writer]

func init() {
	var w io.Writer = os.Stderr
	output.Store(&w)
}

// SetOutput replaces the destination writer. Passing nil silences the
// channel entirely (used by tests that assert "nothing was written").
// The writer should already be safe for concurrent use, or wrapped with
// Sync.
func SetOutput(w io.Writer) {
	if w == nil {
		output.Store(nil)
		return
	}
	output.Store(&w)
}

// Reset restores the default destination (os.Stderr).
func Reset() { SetOutput(os.Stderr) }

// Emit writes one diagnostic line: "<timestamp>: <class>.<method>:
// <phase>: <cause>". class/method identify the logging call site that
// triggered the fallback (best-effort): an empty class drops "<class>.",
// and an empty method drops the whole site part, class included.
func Emit(class, method, phase string, cause error) {
	w := output.Load()
	if w == nil {
		return
	}

	var site string
	switch {
	case class != "" && method != "":
		site = class + "." + method + ": "
	case method != "":
		site = method + ": "
	}

	line := fmt.Sprintf("%s: %s%s: %v",
		time.Now().Format(timestampLayout), site, phase, cause)
	fmt.Fprintln(*w, line)
}

// syncWriter wraps an io.Writer to make it safe for concurrent writes.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// Sync wraps w so it can be passed to SetOutput even if it isn't itself
// safe for concurrent use.
func Sync(w io.Writer) io.Writer {
	return &syncWriter{w: w}
}
