package diagnostic_test

import (
	"bytes"
	"testing"

	"github.com/glyphlang/glyph/internal/ast"
	"github.com/glyphlang/glyph/internal/diagnostic"
	"github.com/glyphlang/glyph/internal/report"
	"github.com/glyphlang/glyph/internal/source"
	"github.com/stretchr/testify/require"
)

func TestWriteAllRendersMessageAndLocation(t *testing.T) {
	src := ast.NewSource("test.glyph", []byte("let x = ;\n"), true)
	diags := &report.Store{}
	diags.Error(report.CodeExpressionExpected, source.NewRange(src, 8, 9), "Expression expected.")

	var buf bytes.Buffer
	diagnostic.New(&buf).WriteAll(diags)

	out := buf.String()
	require.Contains(t, out, "Expression expected.")
	require.Contains(t, out, "test:1:9")
	require.Contains(t, out, "failed")
}

func TestWriteAllNoDiagnosticsPasses(t *testing.T) {
	diags := &report.Store{}
	var buf bytes.Buffer
	diagnostic.New(&buf).WriteAll(diags)
	require.Contains(t, buf.String(), "passed")
}
