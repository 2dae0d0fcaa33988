// Package glyph is the public entry point this module's internal
// packages implement: the tokenizer + recursive-descent parser + AST
// constructor triplet, the diagnostic-emission substrate, and the
// multi-file work-list, per spec.md §1/§6. A host calls ParseFile once
// per compilation unit, drains NextFile for any import/export-from
// directives that surfaced, and finally calls Finish to obtain the
// completed Program.
package glyph

import (
	"fmt"
	"time"

	"github.com/glyphlang/glyph/internal/ast"
	"github.com/glyphlang/glyph/internal/cache"
	"github.com/glyphlang/glyph/internal/config"
	"github.com/glyphlang/glyph/internal/parser"
	"github.com/glyphlang/glyph/internal/report"
	"github.com/glyphlang/glyph/internal/worklist"
)

// Parser is one compilation job: spec.md §5's "one Parser instance per
// compilation job". It owns the shared diagnostic store, the growing
// Program, the work-list, and (optionally) a Parse Cache handle.
type Parser struct {
	program *ast.Program
	diags   *report.Store
	work    *worklist.WorkList
	cache   *cache.Store
}

// NewParser returns a Parser with the Parse Cache disabled.
func NewParser() *Parser {
	return &Parser{
		program: &ast.Program{},
		diags:   &report.Store{},
		work:    worklist.New(),
	}
}

// NewParserWithCache returns a Parser with the Parse Cache (SPEC_FULL.md
// §4.10) enabled against a SQLite database at cacheDSN. A convenience
// wrapper over NewParserWithOptions for the common case of only setting
// CacheDSN.
func NewParserWithCache(cacheDSN string) (*Parser, error) {
	opts := config.Default()
	opts.CacheDSN = cacheDSN
	return NewParserWithOptions(opts)
}

// NewParserWithOptions returns a Parser configured per opts (see
// internal/config.Options). Opening the Parse Cache is the only
// currently-configurable behavior; opts.CacheDSN == "" behaves exactly
// like NewParser.
func NewParserWithOptions(opts config.Options) (*Parser, error) {
	p := NewParser()
	if opts.CacheDSN == "" {
		return p, nil
	}
	store, err := cache.Open(opts.CacheDSN)
	if err != nil {
		return nil, fmt.Errorf("glyph: opening parse cache: %w", err)
	}
	p.cache = store
	return p, nil
}

// ParseFile implements spec.md §4.3's parseFile(text, path, isEntry):
// normalizes path, registers a new Source, parses its top-level
// statements, and enqueues any import/export-from paths discovered
// along the way. Returns an error (not a panic) if path's normalized
// form was already registered — the one exceptional condition spec.md
// §7 calls out.
func (p *Parser) ParseFile(text, path string, isEntry bool) error {
	src := ast.NewSource(path, []byte(text), isEntry)
	if err := p.program.AddSource(src); err != nil {
		return err
	}
	// Mark this path seen before parsing: an import directive discovered
	// later (including one reached through a cycle back to this very
	// file) must not re-Push a path already registered directly with
	// ParseFile.
	p.work.MarkSeen(src.NormalizedPath())

	pr := parser.New(src, p.diags, p.work)
	pr.ParseFile()

	if p.cache != nil {
		if err := p.cache.Record(src.NormalizedPath(), cache.HashContent(text), time.Now().Unix()); err != nil {
			return fmt.Errorf("glyph: recording parse cache entry: %w", err)
		}
	}
	return nil
}

// AlreadyParsed reports whether normalizedPath was already recorded in
// the Parse Cache with exactly this content's hash, letting a host skip
// re-announcing a file that hasn't changed since a previous run. Always
// false when the cache is disabled.
func (p *Parser) AlreadyParsed(normalizedPath, text string) (bool, error) {
	if p.cache == nil {
		return false, nil
	}
	return p.cache.Has(normalizedPath, cache.HashContent(text))
}

// NextFile dequeues the next pending import/export-from path, per
// spec.md §4.8/§6. The second return is false once the work-list is
// drained; per spec.md §8's invariant, no path is ever returned twice.
func (p *Parser) NextFile() (string, bool) {
	return p.work.Next()
}

// Finish returns the completed Program. Calling Finish while the
// work-list still has pending paths is a programmer error (spec.md §8:
// "finish() with a non-empty backlog fails with a programmer error"),
// surfaced here as a plain Go error rather than a panic, consistent with
// this module's no-panic diagnostic design (see DESIGN.md).
func (p *Parser) Finish() (*ast.Program, error) {
	if !p.work.Drained() {
		return nil, fmt.Errorf("glyph: Finish called with %d path(s) still pending", p.work.Len())
	}
	return p.program, nil
}

// Diagnostics returns the shared diagnostic store accumulated across
// every ParseFile call made so far.
func (p *Parser) Diagnostics() *report.Store {
	return p.diags
}

// Close releases the Parse Cache's database handle, if one is open.
func (p *Parser) Close() error {
	if p.cache == nil {
		return nil
	}
	return p.cache.Close()
}
