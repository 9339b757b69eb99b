package testutil

import (
	"sync"

	"github.com/fluentlog/fluentlog/core"
)

// FakeBackend is a core.Backend that records every delivered LogData in
// memory instead of writing anywhere, for assertions in package tests.
type FakeBackend struct {
	mu sync.Mutex

	Name    string
	MinimumLevel core.Level
	Entries []*core.LogData

	// LogErr, when set, is returned by Log instead of recording the
	// entry — used to exercise the swallow/propagate error paths.
	LogErr error

	// HandleError always appends its cause to HandledErrors, then
	// returns HandleErrFn's result when HandleErrFn is set, or nil.
	HandleErrFn    func(cause error, badData *core.LogData) error
	HandledErrors  []error
}

// NewFakeBackend returns a FakeBackend named name, loggable at every
// level at or above minLevel.
func NewFakeBackend(name string, minLevel core.Level) *FakeBackend {
	return &FakeBackend{Name: name, MinimumLevel: minLevel}
}

func (b *FakeBackend) LoggerName() string { return b.Name }

func (b *FakeBackend) IsLoggable(level core.Level) bool {
	return level >= b.MinimumLevel
}

func (b *FakeBackend) Log(data *core.LogData) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.LogErr != nil {
		return b.LogErr
	}
	b.Entries = append(b.Entries, data)
	return nil
}

func (b *FakeBackend) HandleError(cause error, badData *core.LogData) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.HandledErrors = append(b.HandledErrors, cause)
	if b.HandleErrFn != nil {
		return b.HandleErrFn(cause, badData)
	}
	return nil
}

// Count returns the number of entries recorded so far.
func (b *FakeBackend) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.Entries)
}

// Snapshot returns a copy of the entries recorded so far.
func (b *FakeBackend) Snapshot() []*core.LogData {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*core.LogData, len(b.Entries))
	copy(out, b.Entries)
	return out
}

// FakeCallerFinder returns a fixed LogSite and logging class regardless
// of the real call stack, for deterministic specialization/injection
// tests.
type FakeCallerFinder struct {
	Site  core.LogSite
	Class string
}

func (f FakeCallerFinder) FindLoggingClass(loggerClass string) string {
	if f.Class != "" {
		return f.Class
	}
	return loggerClass
}

func (f FakeCallerFinder) FindLogSite(loggerAPIClass string, skip int) core.LogSite {
	return f.Site
}

// FakePlatform is a core.Platform whose every answer is a field the test
// sets directly, and whose clock and recursion depth are driven
// explicitly rather than by wall time or the real goroutine.
type FakePlatform struct {
	mu sync.Mutex

	NowNanos int64
	Finder   core.CallerFinder
	Forced   bool
	Mapped   core.Level
	HasMapped bool
	Injected core.MetadataView

	depth int
}

func (p *FakePlatform) CurrentTimeNanos() int64 { return p.NowNanos }

// CallerFinder returns Finder, or a finder that reports
// core.InvalidLogSite when the test left Finder unset.
func (p *FakePlatform) CallerFinder() core.CallerFinder {
	if p.Finder == nil {
		return FakeCallerFinder{Site: core.InvalidLogSite}
	}
	return p.Finder
}

func (p *FakePlatform) ShouldForceLogging(loggerName string, level core.Level, isEnabled bool) bool {
	return p.Forced
}

func (p *FakePlatform) MappedLevel(loggerName string) (core.Level, bool) {
	return p.Mapped, p.HasMapped
}

func (p *FakePlatform) InjectedMetadata() core.MetadataView { return p.Injected }

func (p *FakePlatform) RecursionDepth() (depth int, done func()) {
	p.mu.Lock()
	p.depth++
	n := p.depth
	p.mu.Unlock()
	return n, func() {
		p.mu.Lock()
		p.depth--
		p.mu.Unlock()
	}
}
