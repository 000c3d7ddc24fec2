package stacktrace

import (
	"io"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func containsFunction(frames []Frame, suffix string) bool {
	for _, f := range frames {
		if strings.HasSuffix(f.Function, suffix) {
			return true
		}
	}
	return false
}

func TestCapture(t *testing.T) {
	frames := Capture(0).Frames()
	require.NotEmpty(t, frames)
	assert.True(t, strings.HasSuffix(frames[len(frames)-1].Function, "TestCapture"), "innermost frame is the caller")
	assert.False(t, strings.HasPrefix(frames[0].Function, "runtime."), "runtime frames at the bottom are skipped")
	assert.NotEmpty(t, frames[len(frames)-1].File)
	assert.Positive(t, frames[len(frames)-1].Line)
}

func TestFromError(t *testing.T) {
	t.Run("with_stack", func(t *testing.T) {
		err := errors.Wrap(errors.New("boom"), "failed")
		st, ok := FromError(err)
		require.True(t, ok)
		assert.True(t, containsFunction(st.Frames(), "TestFromError.func1"))

		lines := st.Strings()
		assert.Len(t, lines, len(st.Frames()))
		assert.True(t, strings.HasPrefix(st.String(), "[1] "))
	})
	t.Run("without_stack", func(t *testing.T) {
		_, ok := FromError(io.EOF)
		assert.False(t, ok)
		_, ok = FromError(nil)
		assert.False(t, ok)
	})
}
