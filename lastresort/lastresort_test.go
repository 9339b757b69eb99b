package lastresort_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fluentlog/fluentlog/lastresort"
)

func TestEmit_WritesOneLineWithSiteAndCause(t *testing.T) {
	var buf bytes.Buffer
	lastresort.SetOutput(&buf)
	defer lastresort.Reset()

	lastresort.Emit("pkg.Type", "Do", "logging error", errors.New("boom"))

	out := buf.String()
	assert.True(t, strings.HasSuffix(strings.TrimRight(out, "\n"), "boom"))
	assert.Contains(t, out, "pkg.Type.Do: logging error")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestEmit_MethodOnlyWhenClassEmpty(t *testing.T) {
	var buf bytes.Buffer
	lastresort.SetOutput(&buf)
	defer lastresort.Reset()

	lastresort.Emit("", "Do", "logging error", errors.New("boom"))

	assert.Contains(t, buf.String(), "Do: logging error")
	assert.NotContains(t, buf.String(), ".Do")
}

func TestSetOutput_NilSuppressesEmit(t *testing.T) {
	lastresort.SetOutput(nil)
	defer lastresort.Reset()

	assert.NotPanics(t, func() {
		lastresort.Emit("pkg.Type", "Do", "logging error", errors.New("boom"))
	})
}

func TestSync_SerializesConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	w := lastresort.Sync(&buf)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			w.Write([]byte("a"))
		}
		close(done)
	}()
	for i := 0; i < 100; i++ {
		w.Write([]byte("b"))
	}
	<-done

	assert.Equal(t, 200, buf.Len())
}
