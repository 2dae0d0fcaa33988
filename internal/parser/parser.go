// Package parser is the recursive-descent statement and expression
// parser: precedence climbing, speculative type-argument
// disambiguation, and modifier/decorator accumulation (spec.md §4.3-4.8).
// Grounded on compiler/internal/frontend/parser/parser.go's
// Parser{tokens,tokenNo,...}/peek/previous/advance/check/match/consume
// helper shape, adapted from an eagerly-tokenized []lexer.Token slice
// with an index cursor into a thin wrapper over the streaming
// internal/lexer.Lexer (one-token lookahead, single mark/reset
// checkpoint) spec.md §4.2 requires.
package parser

import (
	"github.com/glyphlang/glyph/internal/ast"
	"github.com/glyphlang/glyph/internal/lexer"
	"github.com/glyphlang/glyph/internal/report"
	"github.com/glyphlang/glyph/internal/worklist"
)

// Parser parses exactly one Source. A fresh Parser is created per file
// by the root glyph.Parser (spec.md §5: "one Parser instance per
// compilation job" refers to the outer job; this inner parser is
// per-file, matching spec.md §4.3's "construct Source and Tokenizer").
type Parser struct {
	lex   *lexer.Lexer
	src   *ast.Source
	diags *report.Store
	work  *worklist.WorkList

	cur      lexer.Token
	savedCur lexer.Token

	// ambient is true while parsing the body of a `declare`-modified
	// top-level declaration (spec.md §4.3 step 5 / §4.5's "initializer
	// inside a declare context is recoverable").
	ambient bool

	// modifierPool is the process-wide-in-the-teacher's-description,
	// here per-Parser, "reusable modifier list" (spec.md §3/§9): a
	// scratch slice managed by takeModifierPool/returnModifierPool.
	// parseTopLevelModifiers and parseMemberModifiers allocate their own
	// slices and do not draw from it, so no parse currently reuses it.
	modifierPool []ast.Modifier
}

// New creates a Parser over src, reporting to diags and pushing
// discovered import paths onto work.
func New(src *ast.Source, diags *report.Store, work *worklist.WorkList) *Parser {
	l := lexer.New(src, diags)
	p := &Parser{lex: l, src: src, diags: diags, work: work}
	p.cur = p.lex.Next()
	return p
}

// peek returns the upcoming token without consuming it.
func (p *Parser) peek() lexer.Token {
	return p.lex.Peek()
}

// current returns the last consumed token.
func (p *Parser) current() lexer.Token {
	return p.cur
}

// advance consumes and returns the next token, updating current().
func (p *Parser) advance() lexer.Token {
	p.cur = p.lex.Next()
	return p.cur
}

// check reports whether the upcoming token has the given kind, without
// consuming it.
func (p *Parser) check(kind lexer.TOKEN) bool {
	return p.peek().Kind == kind
}

// match consumes and returns true if the upcoming token has the given
// kind; otherwise leaves the cursor untouched.
func (p *Parser) match(kind lexer.TOKEN) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

// consume requires the upcoming token to have the given kind, emitting
// a diagnostic with code if it does not. Returns whether the token was
// present.
func (p *Parser) consume(kind lexer.TOKEN, code report.Code, message string, args ...any) bool {
	if p.match(kind) {
		return true
	}
	p.diags.Error(code, p.peek().Range, message, args...)
	return false
}

// consumeSemicolon implements the tokenizer's semicolon-insertion-aware
// statement termination: a `;` is consumed if present, but its absence
// is only an error when the next token is not on a new line and is not
// a block/EOF close (spec.md §9's approximated ASI rule).
func (p *Parser) consumeSemicolon() {
	if p.match(lexer.SEMICOLON_TOKEN) {
		return
	}
	next := p.peek()
	if next.PrecededByNewline || next.Kind == lexer.CLOSE_BRACE || next.Kind == lexer.EOF_TOKEN {
		return
	}
	p.diags.Error(report.CodeTokenExpected, next.Range, "';' expected.")
}

// expectListSeparator handles the separator between two items of a
// close-delimited, comma-separated list (parameter lists, type-parameter
// lists, enum members, import/export specifiers): a comma immediately
// followed by closeKind is an unnecessary trailing comma (recoverable
// warning, grounded on the teacher's "unnecessary trailing comma"
// warnings in compiler/internal/frontend/parser/function.go and
// friends); no comma and no closeKind is a missing-separator error.
// Reports whether the caller's loop should stop.
func (p *Parser) expectListSeparator(closeKind lexer.TOKEN) bool {
	if p.check(closeKind) || p.check(lexer.EOF_TOKEN) {
		return true
	}
	if p.match(lexer.COMMA_TOKEN) {
		if p.check(closeKind) {
			p.diags.Warning(report.CodeTrailingCommaNotAllowed, p.current().Range, "Trailing comma not allowed.")
			return true
		}
		return false
	}
	p.diags.Error(report.CodeCommaExpected, p.peek().Range, "',' expected.")
	return true
}

// mark saves the parser's cursor (lexer state plus the last-consumed
// token) for a speculative parse. Only a single checkpoint is held at a
// time, mirroring the lexer's own single-slot mark/reset (spec.md
// §4.2/§9).
func (p *Parser) mark() {
	p.lex.Mark()
	p.savedCur = p.cur
}

// resetToMark restores the cursor saved by the last mark.
func (p *Parser) resetToMark() {
	p.lex.Reset()
	p.cur = p.savedCur
}

// takeModifierPool returns a zero-length slice backed by the pooled
// array (if capacity allows) instead of allocating, and clears the pool
// slot so no two concurrent declarations alias the same backing array.
func (p *Parser) takeModifierPool() []ast.Modifier {
	pool := p.modifierPool[:0]
	p.modifierPool = nil
	return pool
}

// returnModifierPool reclaims buf's backing array for reuse once the
// caller is done copying what it needs out of it.
func (p *Parser) returnModifierPool(buf []ast.Modifier) {
	p.modifierPool = buf[:0]
}
