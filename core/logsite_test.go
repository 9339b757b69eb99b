package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fluentlog/fluentlog/core"
)

func TestLogSite_IsValid(t *testing.T) {
	site := core.LogSite{Class: "pkg.Type", Method: "Do", Line: 42}
	assert.True(t, site.IsValid())
	assert.False(t, core.InvalidLogSite.IsValid())
}

func TestSpecialize_DistinctFromBase(t *testing.T) {
	base := core.LogSite{Class: "pkg.Type", Method: "Do", Line: 42}
	specialized := core.Specialize(base, "q")
	assert.NotEqual(t, core.LogSiteKey(base), specialized)
}

func TestSpecialize_OrderSensitive(t *testing.T) {
	base := core.LogSite{Class: "pkg.Type", Method: "Do", Line: 42}
	ab := core.Specialize(core.Specialize(base, "a"), "b")
	ba := core.Specialize(core.Specialize(base, "b"), "a")
	assert.NotEqual(t, ab, ba)
}

func TestSpecialize_CountSensitive(t *testing.T) {
	base := core.LogSite{Class: "pkg.Type", Method: "Do", Line: 42}
	once := core.Specialize(base, "a")
	twice := core.Specialize(core.Specialize(base, "a"), "a")
	assert.NotEqual(t, once, twice)
}

func TestSpecialize_SameInputsProduceEqualKeys(t *testing.T) {
	base := core.LogSite{Class: "pkg.Type", Method: "Do", Line: 42}
	a := core.Specialize(base, "q")
	b := core.Specialize(base, "q")
	assert.Equal(t, a, b)
}
