package platform

import (
	"runtime"
	"strings"

	"github.com/fluentlog/fluentlog/core"
)

// RuntimeCallerFinder implements core.CallerFinder over the real Go call
// stack via runtime.Callers, the idiomatic stdlib substitute for the
// teacher's enrichers.CallersEnricher (runtime.Caller-based) — extended
// here to also split a function's fully-qualified name into a
// class/method pair for LogSite identity.
type RuntimeCallerFinder struct{}

// baseSkip accounts for the runtime.Callers frame, the finder method's
// own frame and the frame of the finder's direct caller, on top of
// whatever the caller asks to skip.
const baseSkip = 3

// FindLoggingClass returns the package path portion of the function
// name of the caller's caller.
func (RuntimeCallerFinder) FindLoggingClass(loggerClass string) string {
	pc := make([]uintptr, 1)
	n := runtime.Callers(baseSkip, pc)
	if n == 0 {
		return loggerClass
	}
	frame, _ := runtime.CallersFrames(pc[:n]).Next()
	class, _ := splitFunction(frame.Function)
	if class == "" {
		return loggerClass
	}
	return class
}

// FindLogSite returns the LogSite of the frame skip frames above its
// direct caller's caller. loggerAPIClass is not used. Returns
// core.InvalidLogSite if the stack can't be walked that far.
func (RuntimeCallerFinder) FindLogSite(loggerAPIClass string, skip int) core.LogSite {
	pc := make([]uintptr, 1)
	n := runtime.Callers(baseSkip+skip, pc)
	if n == 0 {
		return core.InvalidLogSite
	}
	frame, _ := runtime.CallersFrames(pc[:n]).Next()
	if frame.Function == "" {
		return core.InvalidLogSite
	}
	class, method := splitFunction(frame.Function)
	return core.LogSite{
		Class:  class,
		Method: method,
		Line:   frame.Line,
		File:   frame.File,
	}
}

// splitFunction splits a fully-qualified Go function name such as
// "github.com/fluentlog/fluentlog.(*Logger).Write" into a class
// ("github.com/fluentlog/fluentlog.(*Logger)") and method ("Write").
func splitFunction(full string) (class, method string) {
	i := strings.LastIndex(full, ".")
	if i < 0 {
		return "", full
	}
	return full[:i], full[i+1:]
}
