package metadata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fluentlog/fluentlog/core"
	"github.com/fluentlog/fluentlog/metadata"
)

func TestMutableMetadata_NonRepeatableReplacesInPlace(t *testing.T) {
	md := metadata.NewMutableMetadata()
	md.AddValue(metadata.CauseKey, assertErr("first"))
	md.AddValue(metadata.ForcedKey, true)
	md.AddValue(metadata.CauseKey, assertErr("second"))

	assert.Equal(t, 2, md.Size())
	v, ok := md.Find(metadata.CauseKey)
	assert.True(t, ok)
	assert.EqualError(t, v.(error), "second")
}

func TestMutableMetadata_RepeatableAppendsInOrder(t *testing.T) {
	md := metadata.NewMutableMetadata()
	md.AddValue(metadata.GroupingKey, "a")
	md.AddValue(metadata.GroupingKey, "b")
	md.AddValue(metadata.GroupingKey, "c")

	snap := md.Snapshot()
	assert.Equal(t, []any{"a", "b", "c"}, snap.Values(metadata.GroupingKey))
}

func TestMutableMetadata_GrowsBeyondInitialCapacity(t *testing.T) {
	md := metadata.NewMutableMetadata()
	for i := 0; i < 50; i++ {
		md.AddValue(metadata.GroupingKey, i)
	}
	assert.Equal(t, 50, md.Size())
}

func TestMutableMetadata_RemoveAllValuesCompacts(t *testing.T) {
	md := metadata.NewMutableMetadata()
	md.AddValue(metadata.StackSizeKey, core.StackSmall)
	md.AddValue(metadata.ForcedKey, true)

	md.RemoveAllValues(metadata.StackSizeKey)

	assert.Equal(t, 1, md.Size())
	_, ok := md.Find(metadata.StackSizeKey)
	assert.False(t, ok)
	v, ok := md.Find(metadata.ForcedKey)
	assert.True(t, ok)
	assert.Equal(t, true, v)
}

func TestMutableMetadata_SnapshotIsPointInTime(t *testing.T) {
	md := metadata.NewMutableMetadata()
	md.AddValue(metadata.ForcedKey, true)
	snap := md.Snapshot()

	md.AddValue(metadata.GroupingKey, "later")

	assert.Equal(t, 1, snap.Size())
	assert.Equal(t, 2, md.Size())
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
