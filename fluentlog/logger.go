// Package fluentlog implements the fluent logging front-end: choose a
// context for at(level), accumulate modifiers on it, and drive the
// terminal post-processing pipeline exactly once per call. Restructured
// from the teacher's property-bag Serilog-style Logger (logger.go,
// pipeline.go) into a Flogger-style fluent dispatch: the same
// enabled-check-then-dispatch shape, generalized from "build an event,
// push it through enrichers/filters" to "accumulate metadata on a
// context, run it through the rate-limit/specialization pipeline."
package fluentlog

import (
	"fmt"

	"github.com/fluentlog/fluentlog/core"
	"github.com/fluentlog/fluentlog/lastresort"
	"github.com/fluentlog/fluentlog/levelmap"
	"github.com/fluentlog/fluentlog/metadata"
	"github.com/fluentlog/fluentlog/platform"
)

// maxRecursionDepth is MAX_ALLOWED_DEPTH from the spec: a terminal call
// nested this deep inside its own argument evaluation (or a misbehaving
// backend that logs from within Log) is aborted rather than recursing
// further.
const maxRecursionDepth = 100

// loggerAPIClass is passed to the caller finder as the logging API's
// class name. RuntimeCallerFinder ignores it and reaches the user frame
// by a fixed frame count instead (see logSiteSkip).
const loggerAPIClass = "github.com/fluentlog/fluentlog.Context"

// Logger is the fluent entry point: AbstractLogger in the spec's
// vocabulary. Safe for concurrent use; At/ForceAt return a fresh,
// single-goroutine-use Context (or the shared no-op singleton).
type Logger struct {
	name     string
	backend  core.Backend
	platform core.Platform
}

// New builds a Logger from opts. Panics if no backend was supplied —
// there is nothing to dispatch to otherwise.
func New(opts ...Option) *Logger {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.backend == nil {
		panic("fluentlog: New requires WithBackend")
	}

	plat := cfg.platform
	if plat == nil {
		d := platform.NewDefault()
		if cfg.forcePolicy != nil {
			d.SetForcePolicy(cfg.forcePolicy)
		}
		if cfg.levelMap != nil {
			d.SetLevelMap(cfg.levelMap)
		}
		plat = d
	}

	return &Logger{
		name:     cfg.backend.LoggerName(),
		backend:  cfg.backend,
		platform: plat,
	}
}

// Name returns the logger's name, as reported by its backend.
func (l *Logger) Name() string { return l.name }

// SetLevelMap is a convenience for tests/apps using the built-in
// platform.Default; it is a no-op under a custom core.Platform.
func (l *Logger) SetLevelMap(m *levelmap.LogLevelMap) {
	if d, ok := l.platform.(*platform.Default); ok {
		d.SetLevelMap(m)
	}
}

// At returns a live Context for level if logging is enabled or the
// platform's force-logging policy says to proceed anyway. Enabled means
// the backend's IsLoggable(level), unless the platform reports a mapped
// level for this logger: then level must be at or above the mapped
// level and the backend is not consulted. A mapped level of core.Off
// always wins, forcing the shared no-op singleton regardless of any
// other policy.
func (l *Logger) At(level core.Level) *Context {
	enabledByBackend := l.backend.IsLoggable(level)
	if mapped, ok := l.platform.MappedLevel(l.name); ok {
		if mapped == core.Off {
			return noopContext
		}
		enabledByBackend = level >= mapped
	}

	forced := false
	if !enabledByBackend {
		forced = l.platform.ShouldForceLogging(l.name, level, enabledByBackend)
		if !forced {
			return noopContext
		}
	}
	return l.newContext(level, forced)
}

// ForceAt unconditionally returns a live, forced Context, bypassing the
// backend's enabled check and any LogLevelMap override. Its metadata
// carries WAS_FORCED=true, and rate-limiter modifiers invoked on it are
// no-ops that neither validate their arguments nor touch per-site state.
func (l *Logger) ForceAt(level core.Level) *Context {
	return l.newContext(level, true)
}

func (l *Logger) newContext(level core.Level, forced bool) *Context {
	c := &Context{
		logger:  l,
		level:   level,
		enabled: true,
		forced:  forced,
		md:      metadata.NewMutableMetadata(),
	}
	if forced {
		c.md.AddValue(metadata.ForcedKey, true)
	}
	return c
}

// write is the recursion-guarded dispatch to the backend: AbstractLogger
// .write(data) in the spec. An ordinary backend error is swallowed and
// reported to the last-resort channel; the sentinel core.LoggingException
// propagates unchanged, as does any failure from backend.HandleError
// that is itself a LoggingException.
func (l *Logger) write(data *core.LogData) error {
	depth, done := l.platform.RecursionDepth()
	defer done()

	if depth > maxRecursionDepth {
		class, method := splitLogSite(data.LogSite)
		lastresort.Emit(class, method, "unbounded recursion in log statement", nil)
		return nil
	}

	err := l.backend.Log(data)
	if err == nil {
		return nil
	}
	if core.IsLoggingException(err) {
		return err
	}
	class, method := splitLogSite(data.LogSite)
	lastresort.Emit(class, method, "logging error", err)
	return nil
}

// handleArgError reports a lazy-argument evaluation failure to the
// backend's HandleError hook, falling through to the last-resort
// channel only if that also fails with a non-sentinel error.
func (l *Logger) handleArgError(cause error, badData *core.LogData) error {
	herr := l.backend.HandleError(cause, badData)
	if herr == nil {
		return nil
	}
	if core.IsLoggingException(herr) {
		return herr
	}
	class, method := splitLogSite(badData.LogSite)
	lastresort.Emit(class, method, "logging error", herr)
	return nil
}

// splitLogSite unwraps a possibly-specialized LogSiteKey down to the
// underlying core.LogSite so last-resort diagnostics can name a class
// and method.
func splitLogSite(key core.LogSiteKey) (class, method string) {
	for {
		switch v := key.(type) {
		case core.LogSite:
			return v.Class, v.Method
		case core.SpecializedLogSiteKey:
			key = v.Base
		default:
			return "", fmt.Sprintf("%v", key)
		}
	}
}
