package core

import "time"

// MetadataView is the minimal read interface LogData exposes for its
// metadata sequence; the metadata package provides the concrete
// implementations (Metadata / MutableMetadata). Declared here, rather
// than imported from metadata, to keep core dependency-free.
type MetadataView interface {
	Size() int
	KeyAt(i int) AnyMetadataKey
	ValueAt(i int) any
	Find(key AnyMetadataKey) (any, bool)
}

// LogData is the object handed to a Backend. Either TemplateContext is
// set and Arguments carries the positional values, or LiteralArgument
// alone is set — never both.
type LogData struct {
	Level          Level
	TimestampNanos int64
	LoggerName     string
	LogSite        LogSiteKey
	Metadata       MetadataView

	// TemplateContext is the parsed template; present only for
	// log(template, args...) calls. nil when LiteralArgument is used.
	TemplateContext *TemplateContext

	// Arguments holds the positional values for TemplateContext; nil
	// when LiteralArgument is used instead.
	Arguments []any

	// LiteralArgument holds the sole argument for log()/log(msg) calls
	// that carry no template. Unset (nil, hasLiteral=false) otherwise.
	LiteralArgument   any
	HasLiteralArgument bool

	WasForced bool
}

// TemplateContext wraps the message template; the concrete
// parser/formatter that turns it plus
// Arguments into rendered text is an external collaborator (out of
// scope for this core, per its backend-contract boundary).
type TemplateContext struct {
	Message Message
}

// Time returns the timestamp as a time.Time for convenience.
func (d *LogData) Time() time.Time {
	return time.Unix(0, d.TimestampNanos)
}
