package levelmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluentlog/fluentlog/core"
	"github.com/fluentlog/fluentlog/levelmap"
)

func TestGetLevel_LongestPrefixWins(t *testing.T) {
	m := levelmap.NewBuilder(core.Warning).
		Set("com.example", core.Info).
		Set("com.example.db", core.Debug).
		Build()

	assert.Equal(t, core.Warning, m.GetLevel("com.other"))
	assert.Equal(t, core.Info, m.GetLevel("com.example"))
	assert.Equal(t, core.Info, m.GetLevel("com.example.http"))
	assert.Equal(t, core.Debug, m.GetLevel("com.example.db"))
	assert.Equal(t, core.Debug, m.GetLevel("com.example.db.pool"))
}

func TestBuilder_RejectsDuplicateEntry(t *testing.T) {
	b := levelmap.NewBuilder(core.Info).
		Set("com.example", core.Debug).
		Set("com.example", core.Warning)
	require.Error(t, b.Err())
}

func TestBuilder_RejectsMalformedNames(t *testing.T) {
	for _, name := range []string{"", ".com", "com.", "com..example"} {
		b := levelmap.NewBuilder(core.Info).Set(name, core.Debug)
		assert.Error(t, b.Err(), "name %q should be rejected", name)
	}
}

func TestMerge_FinerLevelWins(t *testing.T) {
	a := levelmap.NewBuilder(core.Warning).Set("com.example", core.Info).Build()
	b := levelmap.NewBuilder(core.Error).Set("com.example", core.Debug).Build()

	merged := a.Merge(b)
	assert.Equal(t, core.Warning, merged.DefaultLevel())
	assert.Equal(t, core.Debug, merged.GetLevel("com.example"))
}
