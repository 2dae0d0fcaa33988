package worklist_test

import (
	"testing"

	"github.com/glyphlang/glyph/internal/worklist"
	"github.com/stretchr/testify/require"
)

func TestPushNextFIFO(t *testing.T) {
	w := worklist.New()
	w.Push("a")
	w.Push("b")

	got, ok := w.Next()
	require.True(t, ok)
	require.Equal(t, "a", got)

	got, ok = w.Next()
	require.True(t, ok)
	require.Equal(t, "b", got)

	_, ok = w.Next()
	require.False(t, ok)
}

func TestPushDeduplicates(t *testing.T) {
	w := worklist.New()
	w.Push("a")
	w.Push("a")
	require.Equal(t, 1, w.Len())
}

func TestPushAfterDrainStillDeduplicates(t *testing.T) {
	w := worklist.New()
	w.Push("a")
	_, _ = w.Next()
	require.True(t, w.Drained())

	w.Push("a")
	require.True(t, w.Drained(), "a path already seen must not be re-enqueued")
}

func TestMarkSeenSuppressesLaterPush(t *testing.T) {
	w := worklist.New()
	w.MarkSeen("a")
	w.Push("a")
	require.True(t, w.Drained(), "a path marked seen without ever being pushed must not be enqueued")
}

func TestDrained(t *testing.T) {
	w := worklist.New()
	require.True(t, w.Drained())
	w.Push("x")
	require.False(t, w.Drained())
}
