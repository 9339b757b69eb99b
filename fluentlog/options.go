package fluentlog

import (
	"github.com/fluentlog/fluentlog/core"
	"github.com/fluentlog/fluentlog/levelmap"
	"github.com/fluentlog/fluentlog/platform"
)

// config holds the configuration for building a Logger, assembled from
// a chain of Options. Grounded on the teacher's options.go config
// struct, pared down to this spec's ambient surface (no sinks/enrichers/
// filters — those belong to a backend, which is an external collaborator
// here).
type config struct {
	backend     core.Backend
	platform    core.Platform
	forcePolicy platform.ForcePolicy
	levelMap    *levelmap.LogLevelMap
}

// Option is a functional option for configuring a Logger.
type Option func(*config)

// WithBackend sets the backend every terminal call ultimately dispatches
// to. Required; New panics if none is supplied.
func WithBackend(backend core.Backend) Option {
	return func(c *config) { c.backend = backend }
}

// WithPlatform overrides the default platform.Default collaborator
// (clock, caller finder, recursion guard). Tests substitute a fake here.
func WithPlatform(p core.Platform) Option {
	return func(c *config) { c.platform = p }
}

// WithForcePolicy installs the predicate deciding whether a disabled
// call should still proceed. Only meaningful when the platform is the
// built-in platform.Default; ignored under a custom Platform.
func WithForcePolicy(p platform.ForcePolicy) Option {
	return func(c *config) { c.forcePolicy = p }
}

// WithLevelMap installs a LogLevelMap consulted ahead of the backend's
// own enabled check. Only meaningful with the built-in platform.Default.
func WithLevelMap(m *levelmap.LogLevelMap) Option {
	return func(c *config) { c.levelMap = m }
}
