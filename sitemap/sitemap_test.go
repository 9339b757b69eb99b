package sitemap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fluentlog/fluentlog/core"
	"github.com/fluentlog/fluentlog/metadata"
	"github.com/fluentlog/fluentlog/scope"
	"github.com/fluentlog/fluentlog/sitemap"
)

func TestLogSiteMap_GetIsIdempotentPerKey(t *testing.T) {
	m := sitemap.New(func() *int {
		v := 0
		return &v
	})
	site := core.LogSite{Class: "pkg.Type", Method: "Do", Line: 1}

	a := m.Get(site, metadata.Empty)
	*a = 7
	b := m.Get(site, metadata.Empty)

	assert.Same(t, a, b)
	assert.Equal(t, 7, *b)
}

func TestLogSiteMap_DistinctKeysGetDistinctValues(t *testing.T) {
	m := sitemap.New(func() *int {
		v := 0
		return &v
	})
	siteA := core.LogSite{Class: "pkg.Type", Method: "A", Line: 1}
	siteB := core.LogSite{Class: "pkg.Type", Method: "B", Line: 2}

	a := m.Get(siteA, metadata.Empty)
	b := m.Get(siteB, metadata.Empty)
	assert.NotSame(t, a, b)
}

func TestLogSiteMap_RemovedWhenScopeCloses(t *testing.T) {
	m := sitemap.New(func() *int {
		v := 0
		return &v
	})
	site := core.LogSite{Class: "pkg.Type", Method: "Do", Line: 1}
	sc := scope.NewWeakScope("request")

	md := metadata.NewMutableMetadata()
	md.AddValue(metadata.GroupingKey, sc)
	key := sc.Specialize(site)

	m.Get(key, md.Snapshot())
	assert.True(t, m.Contains(key))

	sc.Close()
	assert.False(t, m.Contains(key))
}

func TestLogSiteMap_NonScopeQualifierDoesNotRegisterRemoval(t *testing.T) {
	m := sitemap.New(func() *int {
		v := 0
		return &v
	})
	site := core.LogSite{Class: "pkg.Type", Method: "Do", Line: 1}
	key := core.Specialize(site, "plain-qualifier")

	md := metadata.NewMutableMetadata()
	md.AddValue(metadata.GroupingKey, "plain-qualifier")

	m.Get(key, md.Snapshot())
	assert.True(t, m.Contains(key))
}
