package fluentlog

import (
	"github.com/fluentlog/fluentlog/core"
	"github.com/fluentlog/fluentlog/metadata"
	"github.com/fluentlog/fluentlog/ratelimit"
	"github.com/fluentlog/fluentlog/scope"
	"github.com/fluentlog/fluentlog/sitemap"
)

// Per-log-site rate-limiter and skip-counter state, process-wide per the
// spec's concurrency model (§5): one LogSiteMap per limiter kind, shared
// across every Logger built from this package.
var (
	countingStates = sitemap.New(ratelimit.NewCountingLimiterState)
	samplingStates = sitemap.New(ratelimit.NewSamplingLimiterState)
	durationStates = sitemap.New(ratelimit.NewDurationLimiterState)
	skipCounters   = sitemap.New(ratelimit.NewSkipCounter)
)

// logSiteSkip is the number of frames FindLogSite must skip, beyond
// resolveSite (its direct caller), to land on the user's call site: one
// for postProcess, one for whichever of Log/LogVarargs/LogMsg called it.
const logSiteSkip = 2

// Log is the terminal call for a template plus its positional
// arguments. With no args it is a literal message instead — per the
// spec's Design Notes, log("raw % text") and log("fmt %s", arg) are
// distinguished by the presence of arguments, not by any escaping rule.
func (c *Context) Log(template string, args ...any) error {
	if !c.enabled {
		return nil
	}
	checkNullMessageInvariant(template, args)
	msg := core.TemplateMessage(template)
	if len(args) == 0 {
		msg = core.LiteralMessage(template)
	}
	return c.postProcess(msg, args)
}

// LogVarargs is Log with a pre-built argument slice, for callers that
// already have one (e.g. forwarding from another variadic function).
func (c *Context) LogVarargs(template string, args []any) error {
	if !c.enabled {
		return nil
	}
	checkNullMessageInvariant(template, args)
	msg := core.TemplateMessage(template)
	if len(args) == 0 {
		msg = core.LiteralMessage(template)
	}
	return c.postProcess(msg, args)
}

// LogMsg is the terminal call with no message and no arguments at all;
// it emits core.NullMessage.
func (c *Context) LogMsg() error {
	if !c.enabled {
		return nil
	}
	return c.postProcess(core.NullMessage, nil)
}

// checkNullMessageInvariant preserves the source's deliberate behavior
// for log(null, null): an empty template paired with a single nil
// argument is a misuse, not a silently-accepted empty log. See
// DESIGN.md's Open Question decision.
func checkNullMessageInvariant(template string, args []any) {
	if template == "" && len(args) == 1 && args[0] == nil {
		panic("fluentlog: log(nil, nil) is not permitted")
	}
}

// postProcess runs the ten-step pipeline from spec §4.2 on a single
// terminal call: resolve the log site, specialize it against any
// grouping qualifiers, run the rate limiters in fixed order, handle a
// requested stack capture, finalize the allowed status's skip count,
// evaluate lazy arguments, assemble the template context, merge tags,
// and dispatch to the backend exactly once.
func (c *Context) postProcess(msg core.Message, rawArgs []any) error {
	// Step 1: resolve log site.
	site := c.resolveSite()

	// Step 2: specialize the log-site key, walking grouping qualifiers
	// in insertion order (order is observable in the resulting key).
	key := c.specialize(site)

	// Step 3: run rate limiters in fixed order: Duration -> Counting ->
	// Sampling. Each is nil (absent) unless its modifier was used.
	now := c.logger.platform.CurrentTimeNanos()
	var status ratelimit.Status
	if period, ok := findTyped(c.md, ratelimit.AtMostEveryKey); ok {
		status = ratelimit.Combine(status, ratelimit.CheckDuration(durationStates.Get(key, c.md), period, now))
	}
	if n, ok := findTyped(c.md, ratelimit.EveryNKey); ok {
		status = ratelimit.Combine(status, ratelimit.CheckCounting(countingStates.Get(key, c.md), n))
	}
	if n, ok := findTyped(c.md, ratelimit.SampleEveryNKey); ok {
		status = ratelimit.Combine(status, ratelimit.CheckSampling(samplingStates.Get(key, c.md), n))
	}

	// Step 4: early skip.
	if status == ratelimit.Disallow {
		skipCounters.Get(key, c.md).Increment()
		return nil
	}

	// Step 5: handle stack metadata.
	if size, ok := findTyped(c.md, metadata.StackSizeKey); ok {
		c.md.RemoveAllValues(metadata.StackSizeKey)
		var cause error
		if prior, ok := findTyped(c.md, metadata.CauseKey); ok {
			cause = prior
		}
		c.md.AddValue(metadata.CauseKey, &stackTraceError{
			size:  size,
			stack: captureStack(size),
			cause: cause,
		})
	}

	// Step 6: finalize the allowed status and compute skipped-count.
	var skipped int64
	if status != nil {
		skipped, _ = ratelimit.CheckStatus(status, skipCounters.Get(key, c.md))
		if skipped > 0 {
			c.md.AddValue(metadata.SkippedCountKey, skipped)
		}
	}

	// Step 7: evaluate lazy arguments exactly once, on this goroutine.
	evaluated := make([]any, len(rawArgs))
	for i, raw := range rawArgs {
		v, err := evalArg(raw)
		if err != nil {
			badData := c.assembleLogData(key, msg, rawArgs)
			if herr := c.logger.handleArgError(err, badData); herr != nil {
				return herr
			}
			return nil
		}
		evaluated[i] = v
	}

	// Step 8: assemble the TemplateContext (already tagged literal vs
	// template by msg itself).

	// Step 9: merge injected tags with any log-site tags.
	c.mergeInjectedTags()

	// Step 10: dispatch.
	data := c.assembleLogData(key, msg, evaluated)
	return c.logger.write(data)
}

func (c *Context) resolveSite() core.LogSiteKey {
	if c.hasInjectedSite {
		return c.injectedSite
	}
	return c.logger.platform.CallerFinder().FindLogSite(loggerAPIClass, logSiteSkip)
}

func (c *Context) specialize(site core.LogSiteKey) core.LogSiteKey {
	key := site
	for i := 0; i < c.md.Size(); i++ {
		if c.md.KeyAt(i) != metadata.GroupingKey {
			continue
		}
		q := c.md.ValueAt(i)
		if sc, ok := q.(scope.LoggingScope); ok {
			key = sc.Specialize(key)
		} else {
			key = core.Specialize(key, q)
		}
	}
	return key
}

func (c *Context) mergeInjectedTags() {
	var platformTags core.Tags
	if injected := c.logger.platform.InjectedMetadata(); injected != nil {
		if v, ok := injected.Find(metadata.TagsKey); ok {
			platformTags, _ = v.(core.Tags)
		}
	}
	siteTags, _ := findTyped(c.md, metadata.TagsKey)
	merged := platformTags.Merge(siteTags)
	if len(merged) > 0 {
		c.md.AddValue(metadata.TagsKey, merged)
	}
}

func (c *Context) assembleLogData(key core.LogSiteKey, msg core.Message, args []any) *core.LogData {
	data := &core.LogData{
		Level:          c.level,
		TimestampNanos: c.logger.platform.CurrentTimeNanos(),
		LoggerName:     c.logger.name,
		LogSite:        key,
		Metadata:       c.md.Snapshot(),
		WasForced:      c.forced,
	}
	if msg.IsLiteral() {
		data.LiteralArgument = msg.Text()
		data.HasLiteralArgument = true
		return data
	}
	data.TemplateContext = &core.TemplateContext{Message: msg}
	data.Arguments = args
	return data
}

// findTyped is metadata.FindTyped's MutableMetadata-native counterpart:
// it avoids snapshotting the whole sequence just to read one key mid-
// pipeline.
func findTyped[T any](md interface {
	Find(key core.AnyMetadataKey) (any, bool)
}, key *core.MetadataKey[T]) (T, bool) {
	var zero T
	v, ok := md.Find(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}
