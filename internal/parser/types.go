// Type parser, per spec.md §4.6. Grounded on the teacher's
// compiler/internal/frontend/parser/type_parser.go (one function per
// built-in type keyword, a generic parseType dispatcher, and
// parseUserDefinedType for `::`-scoped names), simplified to the
// single recursive TypeNode shape spec.md §3/§4.6 calls for (no scope
// resolution — that is a semantic-phase concern this module does not
// implement).
package parser

import (
	"github.com/glyphlang/glyph/internal/ast"
	"github.com/glyphlang/glyph/internal/lexer"
	"github.com/glyphlang/glyph/internal/report"
)

// parseType parses a TypeNode, accepting a parenthesized `(Type)` at
// this, the outermost, level of recursion.
func (p *Parser) parseType() *ast.TypeNode {
	return p.parseTypeAt(true)
}

// parseTypeAt is spec.md §4.6's `acceptParenthesized` parameter: the
// recursive call for the inner type of a parenthesized `( Type )` passes
// false, so `((i32))` is rejected. Type arguments are parsed with true,
// so `Array<(i32)>` is accepted.
func (p *Parser) parseTypeAt(acceptParenthesized bool) *ast.TypeNode {
	start := p.peek().Range.Start
	var node *ast.TypeNode

	switch tok := p.peek(); tok.Kind {
	case lexer.OPEN_PAREN:
		if !acceptParenthesized {
			p.diags.Error(report.CodeTypeExpected, tok.Range, "Type expected.")
			p.advance()
			node = &ast.TypeNode{Header: p.header(ast.KindTypeNode, start)}
			break
		}
		p.advance()
		node = p.parseTypeAt(false)
		p.consume(lexer.CLOSE_PAREN, report.CodeTokenExpected, "')' expected.")
	case lexer.VOID_TOKEN:
		p.advance()
		node = &ast.TypeNode{Name: "void", Header: p.header(ast.KindTypeNode, start)}
	case lexer.THIS_TOKEN:
		p.advance()
		node = &ast.TypeNode{Name: "this", Header: p.header(ast.KindTypeNode, start)}
	case lexer.TRUE_TOKEN, lexer.FALSE_TOKEN:
		p.advance()
		node = &ast.TypeNode{Name: "bool", Header: p.header(ast.KindTypeNode, start)}
	case lexer.STRING_TOKEN:
		p.advance()
		node = &ast.TypeNode{Name: "string", Header: p.header(ast.KindTypeNode, start)}
	case lexer.IDENTIFIER_TOKEN:
		name := tok.Value
		p.advance()
		var args []*ast.TypeNode
		if p.check(lexer.LESS_TOKEN) {
			p.advance()
			args = append(args, p.parseTypeAt(true))
			for p.match(lexer.COMMA_TOKEN) {
				args = append(args, p.parseTypeAt(true))
			}
			p.consume(lexer.GREATER_TOKEN, report.CodeTokenExpected, "'>' expected.")
		}
		node = &ast.TypeNode{Name: name, Arguments: args, Header: p.header(ast.KindTypeNode, start)}
	default:
		p.diags.Error(report.CodeTypeExpected, tok.Range, "Type expected.")
		node = &ast.TypeNode{Header: p.header(ast.KindTypeNode, start)}
		return node
	}

	for p.check(lexer.OPEN_BRACKET) {
		if node.Nullable {
			// Once an array level is marked nullable, no further []
			// wrapping is accepted (spec.md §4.6).
			break
		}
		p.mark()
		p.advance()
		if !p.match(lexer.CLOSE_BRACKET) {
			p.resetToMark()
			break
		}
		node = &ast.TypeNode{
			Name:      "Array",
			Arguments: []*ast.TypeNode{node},
			Header:    p.header(ast.KindTypeNode, start),
		}
		if p.tryConsumeNullableSuffix() {
			node.Nullable = true
		}
	}

	if !node.Nullable && p.tryConsumeNullableSuffix() {
		node.Nullable = true
		node.Header = p.header(ast.KindTypeNode, start)
	}

	return node
}

// tryConsumeNullableSuffix speculatively consumes a `| null` suffix,
// restoring the cursor if the token after `|` is not `null`.
func (p *Parser) tryConsumeNullableSuffix() bool {
	if !p.check(lexer.BIT_OR_TOKEN) {
		return false
	}
	p.mark()
	p.advance()
	if p.match(lexer.NULL_TOKEN) {
		return true
	}
	p.resetToMark()
	return false
}
