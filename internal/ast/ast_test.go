package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glyphlang/glyph/internal/ast"
)

func TestNormalizePath(t *testing.T) {
	require.Equal(t, "a/b", ast.NormalizePath("./a/b.glyph"))
	require.Equal(t, "c", ast.NormalizePath("a/../c.ts"))
	require.Equal(t, "x/y", ast.NormalizePath(`x\y`))
}

func TestResolveImport(t *testing.T) {
	require.Equal(t, "a/other", ast.ResolveImport("a/main", "./other"))
	require.Equal(t, "other", ast.ResolveImport("a/b/main", "../../other"))
	require.Equal(t, "pkg/mod", ast.ResolveImport("a/main", "pkg/mod"))
}

func TestSourceAppendSetsParent(t *testing.T) {
	src := ast.NewSource("main.glyph", []byte("x;"), true)
	stmt := &ast.EmptyStmt{}
	src.Append(stmt)
	require.Len(t, src.Statements, 1)
	require.Equal(t, src, stmt.Parent())
}

func TestSourceNFCNormalization(t *testing.T) {
	// "e" + combining acute (NFD) should normalize to the precomposed form.
	decomposed := "é"
	src := ast.NewSource("f.glyph", []byte(decomposed), false)
	require.Equal(t, "é", src.Text())
}

func TestProgramDuplicateSourceRejected(t *testing.T) {
	p := &ast.Program{}
	require.NoError(t, p.AddSource(ast.NewSource("a.glyph", []byte(""), true)))
	err := p.AddSource(ast.NewSource("a.glyph", []byte(""), false))
	require.Error(t, err)
}

func TestProgramFindSource(t *testing.T) {
	p := &ast.Program{}
	src := ast.NewSource("a/b.glyph", []byte(""), true)
	require.NoError(t, p.AddSource(src))
	found, ok := p.FindSource("a/b")
	require.True(t, ok)
	require.Equal(t, src, found)
}
