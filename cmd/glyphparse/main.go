// Command glyphparse is the thin example host spec.md §1 keeps outside
// the core's contract: it owns file discovery and reading, and drives a
// glyph.Parser from an entry file across its import graph, demonstrating the
// work-list drain loop spec.md §4.8 describes. Grounded on the
// teacher's compiler/cmd/main.go Compile/main pair, narrowed to parsing
// only (no semantic analysis or codegen stages: out of scope per
// SPEC_FULL.md).
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glyphlang/glyph"
	"github.com/glyphlang/glyph/internal/colors"
	"github.com/glyphlang/glyph/internal/diagnostic"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: glyphparse <entry-file> [-cache <path>]")
		os.Exit(1)
	}

	entry := os.Args[1]
	cacheDSN := ""
	for i := 2; i < len(os.Args)-1; i++ {
		if os.Args[i] == "-cache" {
			cacheDSN = os.Args[i+1]
		}
	}

	fullPath, err := filepath.Abs(entry)
	if err != nil {
		fmt.Println(colors.RED.Sprint("glyphparse: ", err))
		os.Exit(1)
	}
	fullPath = filepath.ToSlash(fullPath)
	root := filepath.ToSlash(filepath.Dir(fullPath))

	var p *glyph.Parser
	if cacheDSN != "" {
		p, err = glyph.NewParserWithCache(cacheDSN)
		if err != nil {
			fmt.Println(colors.RED.Sprint("glyphparse: ", err))
			os.Exit(1)
		}
		defer p.Close()
	} else {
		p = glyph.NewParser()
	}

	if err := parseAndEnqueue(p, fullPath, root, true); err != nil {
		fmt.Println(colors.RED.Sprint("glyphparse: ", err))
		os.Exit(1)
	}

	// Drain the work-list: every import/export-from discovered while
	// parsing an already-queued file can itself enqueue more paths, so
	// NextFile is polled to exhaustion rather than ranged over once.
	for {
		path, ok := p.NextFile()
		if !ok {
			break
		}
		if err := parseAndEnqueue(p, resolveOnDisk(root, path), root, false); err != nil {
			fmt.Println(colors.YELLOW.Sprint("glyphparse: ", err))
		}
	}

	program, err := p.Finish()
	if err != nil {
		fmt.Println(colors.RED.Sprint("glyphparse: ", err))
		os.Exit(1)
	}

	diagnostic.New(os.Stdout).WriteAll(p.Diagnostics())
	fmt.Println(colors.BLUE.Sprintf("parsed %d source(s)", len(program.Sources)))

	if p.Diagnostics().HasErrors() {
		os.Exit(1)
	}
}

// parseAndEnqueue reads diskPath and feeds it to p.ParseFile. The
// work-list never hands back a path already registered via ParseFile
// (glyph.Parser marks a path seen the moment it's registered, not only
// when it's Pushed), so an import cycle or a diamond import is already
// resolved before NextFile returns it here; a ParseFile error at this
// point is a real failure and is propagated.
func parseAndEnqueue(p *glyph.Parser, diskPath, root string, isEntry bool) error {
	text, err := os.ReadFile(tryExtensions(diskPath))
	if err != nil {
		return fmt.Errorf("reading %s: %w", diskPath, err)
	}
	rel, err := filepath.Rel(root, diskPath)
	if err != nil {
		rel = diskPath
	}
	return p.ParseFile(string(text), filepath.ToSlash(rel), isEntry)
}

// tryExtensions appends the source extensions ast.NormalizePath would
// have stripped, since the work-list only ever carries normalized
// (extension-free) paths. The entry path, passed in as given on the
// command line, may already carry its extension, so that form is tried
// first.
func tryExtensions(diskPath string) string {
	if _, err := os.Stat(diskPath); err == nil {
		return diskPath
	}
	for _, ext := range []string{".glyph", ".ts"} {
		if _, err := os.Stat(diskPath + ext); err == nil {
			return diskPath + ext
		}
	}
	return diskPath
}

func resolveOnDisk(root, normalizedPath string) string {
	return filepath.ToSlash(filepath.Join(root, normalizedPath))
}
