package platform

import (
	"runtime"
	"strconv"
	"strings"
)

// goroutineID extracts the calling goroutine's id the same way the
// teacher's ThreadIdEnricher derives a pseudo thread id: Go exposes no
// official API for it, so it's parsed out of the "goroutine N [...]"
// prefix runtime.Stack prints for the current goroutine.
func goroutineID() int64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	stack := string(buf[:n])

	const prefix = "goroutine "
	if !strings.HasPrefix(stack, prefix) {
		return 0
	}
	rest := stack[len(prefix):]
	end := strings.IndexByte(rest, ' ')
	if end < 0 {
		return 0
	}
	id, err := strconv.ParseInt(rest[:end], 10, 64)
	if err != nil {
		return 0
	}
	return id
}
