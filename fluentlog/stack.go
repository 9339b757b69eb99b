package fluentlog

import (
	"bufio"
	"runtime"
	"strings"

	"github.com/fluentlog/fluentlog/core"
)

// stackTraceError is the synthetic exception post-processing substitutes
// for LOG_CAUSE when withStackTrace was used: its message is the size
// enum's name, and it wraps whatever cause (if any) was already present.
type stackTraceError struct {
	size  core.StackSize
	stack string
	cause error
}

func (e *stackTraceError) Error() string { return e.size.String() }
func (e *stackTraceError) Unwrap() error { return e.cause }

// Stack returns the captured, newline-joined frame text.
func (e *stackTraceError) Stack() string { return e.stack }

// captureStack grabs the calling goroutine's stack via runtime.Stack,
// trims the pipeline's own frames, and truncates to size's maxDepth
// (StackFull captures everything runtime.Stack returns).
func captureStack(size core.StackSize) string {
	buf := make([]byte, 1<<16)
	for {
		n := runtime.Stack(buf, false)
		if n < len(buf) {
			buf = buf[:n]
			break
		}
		buf = make([]byte, len(buf)*2)
	}

	lines := strings.Split(string(buf), "\n")
	// Drop the "goroutine N [...]" header and the frames belonging to
	// captureStack/postProcess/the terminal method itself: each stack
	// frame is two lines (function, file:line).
	const skipFrames = 1 + 3*2
	if len(lines) > skipFrames {
		lines = lines[skipFrames:]
	}

	if max := size.MaxDepth(); max >= 0 && max*2 < len(lines) {
		lines = lines[:max*2]
	}

	var sb strings.Builder
	w := bufio.NewWriter(&sb)
	for _, l := range lines {
		if l == "" {
			continue
		}
		w.WriteString(l)
		w.WriteByte('\n')
	}
	w.Flush()
	return sb.String()
}
