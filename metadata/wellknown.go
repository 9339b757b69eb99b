package metadata

import "github.com/fluentlog/fluentlog/core"

// Well-known keys the LogContext fluent modifiers and post-processing
// pipeline read and write. Declared centrally here (rather than scattered
// next to each modifier) so every package that needs to recognize one of
// them imports a single, stable set of identities.
var (
	// CauseKey holds withCause(t)'s error; single-valued, so a later
	// withCause replaces an earlier one (and the stack-capture step
	// replaces it again when a stack trace is requested).
	CauseKey = core.NewMetadataKey[error]("cause")

	// GroupingKey accumulates per(key, strategy) / per(enum) /
	// per(scopeProvider) qualifiers in call order; repeatable.
	GroupingKey = core.NewRepeatedMetadataKey[any]("group_by")

	// StackSizeKey holds withStackTrace(size)'s requested size; removed
	// during post-processing once the stack has been captured.
	StackSizeKey = core.NewMetadataKey[core.StackSize]("stack_size")

	// SkippedCountKey carries the rate limiter's accumulated skip count
	// onto the next emission.
	SkippedCountKey = core.NewMetadataKey[int64]("skipped_log_count")

	// ForcedKey marks a context built via Logger.ForceAt.
	ForcedKey = core.NewMetadataKey[bool]("was_forced")

	// TagsKey holds any log-site-level tags merged with the platform's
	// injected tags at the end of post-processing.
	TagsKey = core.NewMetadataKey[core.Tags]("tags")
)
