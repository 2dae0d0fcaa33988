package glyph_test

import (
	"path/filepath"
	"testing"

	"github.com/glyphlang/glyph"
	"github.com/glyphlang/glyph/internal/config"
	"github.com/stretchr/testify/require"
)

func TestParseFileThenFinish(t *testing.T) {
	p := glyph.NewParser()
	require.NoError(t, p.ParseFile(`const x: i32 = 1;`, "main.glyph", true))
	require.Equal(t, 0, p.Diagnostics().Len())

	program, err := p.Finish()
	require.NoError(t, err)
	require.Len(t, program.Sources, 1)
}

func TestParseFileEnqueuesImports(t *testing.T) {
	p := glyph.NewParser()
	require.NoError(t, p.ParseFile(`import { foo } from "./other";`, "main.glyph", true))

	next, ok := p.NextFile()
	require.True(t, ok)
	require.Equal(t, "other", next)

	_, ok = p.NextFile()
	require.False(t, ok)
}

func TestFinishFailsWithPendingWork(t *testing.T) {
	p := glyph.NewParser()
	require.NoError(t, p.ParseFile(`import { foo } from "./other";`, "main.glyph", true))
	_, err := p.Finish()
	require.Error(t, err)
}

func TestDuplicateParseFileFails(t *testing.T) {
	p := glyph.NewParser()
	require.NoError(t, p.ParseFile(`const x = 1;`, "main.glyph", true))
	err := p.ParseFile(`const y = 2;`, "main.glyph", true)
	require.Error(t, err)
}

func TestMutualImportCycleDoesNotReenqueueEntry(t *testing.T) {
	p := glyph.NewParser()
	require.NoError(t, p.ParseFile(`import { b } from "./other";`, "main.glyph", true))

	next, ok := p.NextFile()
	require.True(t, ok)
	require.Equal(t, "other", next)

	require.NoError(t, p.ParseFile(`import { a } from "./main";`, "other.glyph", false))

	// "main" was already registered directly via ParseFile; the import
	// back to it from "other" must not re-enqueue it.
	_, ok = p.NextFile()
	require.False(t, ok)

	_, err := p.Finish()
	require.NoError(t, err)
}

func TestNewParserWithOptionsDefaultHasNoCache(t *testing.T) {
	p, err := glyph.NewParserWithOptions(config.Default())
	require.NoError(t, err)
	already, err := p.AlreadyParsed("main", "const x = 1;")
	require.NoError(t, err)
	require.False(t, already, "cache-less Parser must always report AlreadyParsed as false")
}

func TestNewParserWithOptionsOpensCache(t *testing.T) {
	opts := config.Default()
	opts.CacheDSN = filepath.Join(t.TempDir(), "cache.sqlite")

	p, err := glyph.NewParserWithOptions(opts)
	require.NoError(t, err)
	defer p.Close()

	text := `const x: i32 = 1;`
	require.NoError(t, p.ParseFile(text, "main.glyph", true))

	already, err := p.AlreadyParsed("main", text)
	require.NoError(t, err)
	require.True(t, already)
}

func TestParserWithCacheRoundTrip(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "cache.sqlite")
	p, err := glyph.NewParserWithCache(dsn)
	require.NoError(t, err)
	defer p.Close()

	text := `const x: i32 = 1;`
	already, err := p.AlreadyParsed("main", text)
	require.NoError(t, err)
	require.False(t, already)

	require.NoError(t, p.ParseFile(text, "main.glyph", true))

	already, err = p.AlreadyParsed("main", text)
	require.NoError(t, err)
	require.True(t, already)
}
