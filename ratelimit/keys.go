package ratelimit

import "github.com/fluentlog/fluentlog/core"

// Well-known metadata keys the fluent modifiers every(n), onAverageEvery(n)
// and atMostEvery(n, unit) populate, and the three limiters below read.
// Declared alongside the limiters (rather than in package metadata) since
// only this package's types give their values meaning.
var (
	EveryNKey       = core.NewMetadataKey[int64]("every_n")
	SampleEveryNKey = core.NewMetadataKey[int64]("sample_every_n")
	AtMostEveryKey  = core.NewMetadataKey[Period]("at_most_every")
)
