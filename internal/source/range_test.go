package source_test

import (
	"testing"

	"github.com/glyphlang/glyph/internal/source"
	"github.com/stretchr/testify/require"
)

type fakeRef struct {
	path string
	text string
}

func (f fakeRef) NormalizedPath() string { return f.path }
func (f fakeRef) Text() string           { return f.text }

func TestRangeTextSlicesBetweenStartAndEnd(t *testing.T) {
	ref := fakeRef{path: "test", text: "let x = 1;"}
	r := source.NewRange(ref, 4, 5)
	require.Equal(t, "x", r.Text())
}

func TestRangeTextClampsToSourceBounds(t *testing.T) {
	ref := fakeRef{path: "test", text: "abc"}
	r := source.NewRange(ref, 1, 100)
	require.Equal(t, "bc", r.Text())
}

func TestJoinCoversBothRanges(t *testing.T) {
	ref := fakeRef{path: "test", text: "let x = 1 + 2;"}
	a := source.NewRange(ref, 8, 9)
	b := source.NewRange(ref, 12, 13)
	joined := source.Join(a, b)
	require.Equal(t, 8, joined.Start)
	require.Equal(t, 13, joined.End)
}

func TestJoinAcrossDifferentSourcesPanics(t *testing.T) {
	a := source.NewRange(fakeRef{path: "a", text: "x"}, 0, 1)
	b := source.NewRange(fakeRef{path: "b", text: "y"}, 0, 1)
	require.Panics(t, func() { source.Join(a, b) })
}

func TestStartPosAndEndPosResolveLineAndColumn(t *testing.T) {
	ref := fakeRef{path: "test", text: "let x = 1;\nlet y = 2;\n"}
	r := source.NewRange(ref, 15, 16) // 'y' on the second line
	start := r.StartPos()
	require.Equal(t, 2, start.Line)
	require.Equal(t, 5, start.Column)
}

func TestLineColAtOffsetZero(t *testing.T) {
	line, col := source.LineCol("abc", 0)
	require.Equal(t, 1, line)
	require.Equal(t, 1, col)
}
