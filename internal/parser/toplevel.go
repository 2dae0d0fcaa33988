// Top-level file parsing, per spec.md §4.3. Grounded on the teacher's
// compiler/internal/frontend/parser/parser.go top-level loop (decorator
// and modifier accumulation ahead of a keyword dispatch switch).
package parser

import (
	"github.com/glyphlang/glyph/internal/ast"
	"github.com/glyphlang/glyph/internal/lexer"
	"github.com/glyphlang/glyph/internal/report"
)

// ParseFile drives the top-level loop described in spec.md §4.3: consume
// leading decorators and declaration modifiers, dispatch on the next
// keyword, and append whatever statement results to p.src. Runs until
// end-of-file or an unrecoverable top-level statement returns nil, per
// spec.md §7 ("the top-level file loop returns immediately on a null
// top-level statement; already-parsed siblings are retained").
func (p *Parser) ParseFile() {
	for !p.check(lexer.EOF_TOKEN) {
		stmt := p.parseTopLevelStatement()
		if stmt == nil {
			return
		}
		p.src.Append(stmt)
	}
}

func (p *Parser) parseTopLevelStatement() ast.Statement {
	var decorators []*ast.Decorator
	for p.check(lexer.AT_TOKEN) {
		decorators = append(decorators, p.parseDecorator())
	}

	modifiers := p.parseTopLevelModifiers()
	declared := hasModifier(modifiers, "declare")
	exported := hasModifier(modifiers, "export")

	if declared {
		prevAmbient := p.ambient
		p.ambient = true
		defer func() { p.ambient = prevAmbient }()
	}

	start := p.peek().Range.Start

	var stmt ast.Statement
	switch p.peek().Kind {
	case lexer.CONST_TOKEN:
		if p.peekIsConstEnum() {
			p.advance() // 'const'
			stmt = p.parseEnumDecl(start, true, modifiers)
		} else {
			stmt = p.parseVariableStatement(start, modifiers)
		}
	case lexer.LET_TOKEN, lexer.VAR_TOKEN:
		stmt = p.parseVariableStatement(start, modifiers)
	case lexer.ENUM_TOKEN:
		stmt = p.parseEnumDecl(start, false, modifiers)
	case lexer.FUNCTION_TOKEN:
		stmt = p.parseFunctionDecl(start, modifiers, decorators)
		decorators = nil
	case lexer.ABSTRACT_TOKEN:
		p.advance() // 'abstract'
		if !p.check(lexer.CLASS_TOKEN) {
			p.diags.Error(report.CodeTokenExpected, p.peek().Range, "'class' expected.")
		}
		stmt = p.parseClassDecl(start, true, modifiers, decorators)
		decorators = nil
	case lexer.CLASS_TOKEN:
		stmt = p.parseClassDecl(start, false, modifiers, decorators)
		decorators = nil
	case lexer.IMPORT_TOKEN:
		if exported {
			stmt = p.parseExportImportStmt(start)
		} else {
			stmt = p.parseImportStmt(start, modifiers)
		}
	case lexer.TYPE_TOKEN:
		stmt = p.parseTypeAliasStmt(start)
	default:
		if exported {
			stmt = p.parseExportStmt(start, modifiers)
		} else {
			stmt = p.parseStatement(true)
		}
	}

	for _, d := range decorators {
		p.diags.Error(report.CodeDecoratorsNotValidHere, d.Loc(), "Decorators are not valid here.")
	}

	return stmt
}

// parseTopLevelModifiers consumes zero or more leading `export`/`declare`
// modifiers (spec.md §4.3 step 5), distinct from a class member's
// ordered three-slot modifier grammar (parseMemberModifiers).
// `declare` followed by a token on a new line emits a compatibility
// warning (code 1142).
func (p *Parser) parseTopLevelModifiers() []ast.Modifier {
	var mods []ast.Modifier
	for {
		tok := p.peek()
		switch tok.Kind {
		case lexer.EXPORT_TOKEN, lexer.DECLARE_TOKEN:
			p.advance()
			mods = append(mods, ast.Modifier{Header: p.header(ast.KindModifier, tok.Range.Start), Keyword: tok.Value})
			if tok.Kind == lexer.DECLARE_TOKEN && p.peek().PrecededByNewline {
				p.diags.Warning(report.CodeLineBreakNotPermittedHere, p.peek().Range, "Line break not permitted here.")
			}
		default:
			return mods
		}
	}
}

// peekIsConstEnum speculatively checks whether `const` is immediately
// followed by `enum`, per spec.md §4.3 step 6's "for const, if followed
// by enum, parse enum with const modifier".
func (p *Parser) peekIsConstEnum() bool {
	p.mark()
	p.advance() // 'const'
	isEnum := p.check(lexer.ENUM_TOKEN)
	p.resetToMark()
	return isEnum
}
