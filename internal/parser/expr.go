// Expression parser: operator-precedence climbing, per spec.md §4.7.
// This is the one deliberate structural departure from the teacher's
// compiler/internal/frontend/parser/expr.go cascade-of-functions
// (parseExpression -> parseLogicalOr -> ... -> parsePrimary) — see
// DESIGN.md for why a single generalized climbing function replaces it.
package parser

import (
	"github.com/glyphlang/glyph/internal/ast"
	"github.com/glyphlang/glyph/internal/lexer"
	"github.com/glyphlang/glyph/internal/report"
)

// parseExpression parses a full expression at the lowest precedence
// (includes the comma operator).
func (p *Parser) parseExpression() ast.Expression {
	return p.parseExpr(precLowest + 1)
}

// parseAssignExpression parses starting just above comma, the
// precedence used for call arguments, array elements, and anywhere else
// spec.md calls for "precedence > comma".
func (p *Parser) parseAssignExpression() ast.Expression {
	return p.parseExpr(precAssignment)
}

// parseExpr is the precedence-climbing core: parse a prefix expression,
// then repeatedly consume any operator whose precedence is at least
// threshold, recursing at the operator's own precedence
// (right-associative) or that precedence + 1 (left-associative) for its
// right-hand side.
func (p *Parser) parseExpr(threshold Precedence) ast.Expression {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}

	for {
		tok := p.peek()

		if tok.Kind == lexer.LESS_TOKEN && threshold <= precCall {
			if call, ok := p.tryParseTypeArgumentCall(left); ok {
				left = call
				continue
			}
		}

		info, known := binaryOps[tok.Kind]
		if !known || info.prec < threshold {
			break
		}

		switch tok.Kind {
		case lexer.OPEN_PAREN:
			left = p.parseCallArguments(left, nil)
		case lexer.DOT_TOKEN:
			left = p.parsePropertyAccess(left)
		case lexer.OPEN_BRACKET:
			left = p.parseElementAccess(left)
		case lexer.PLUS_PLUS_TOKEN, lexer.MINUS_MINUS_TOKEN:
			left = p.parsePostfixIncDec(left)
		case lexer.QUESTION_TOKEN:
			left = p.parseConditional(left)
		case lexer.AS_TOKEN:
			left = p.parsePostfixAssertion(left)
		default:
			left = p.parseBinaryRHS(left, info)
		}
	}

	return left
}

func (p *Parser) parseBinaryRHS(left ast.Expression, info opInfo) ast.Expression {
	start := left.Loc().Start
	op := p.peek().Value
	p.advance()
	nextThreshold := info.prec + 1
	if info.assoc == rightAssoc {
		nextThreshold = info.prec
	}
	right := p.parseExpr(nextThreshold)
	if right == nil {
		return nil
	}
	return &ast.BinaryExpr{
		Header:   p.header(ast.KindBinary, start),
		Operator: op,
		Left:     left,
		Right:    right,
	}
}

func (p *Parser) parseConditional(cond ast.Expression) ast.Expression {
	start := cond.Loc().Start
	p.advance() // '?'
	then := p.parseExpr(precAssignment)
	p.consume(lexer.COLON_TOKEN, report.CodeTokenExpected, "':' expected.")
	otherwise := p.parseExpr(precConditional)
	return &ast.SelectExpr{
		Header:    p.header(ast.KindSelect, start),
		Condition: cond,
		Then:      then,
		Otherwise: otherwise,
	}
}

func (p *Parser) parsePropertyAccess(object ast.Expression) ast.Expression {
	start := object.Loc().Start
	p.advance() // '.'
	name := p.peek().Value
	if !p.consume(lexer.IDENTIFIER_TOKEN, report.CodeIdentifierExpected, "Identifier expected.") {
		name = ""
	}
	return &ast.PropertyAccessExpr{
		Header:   p.header(ast.KindPropertyAccess, start),
		Object:   object,
		Property: name,
	}
}

func (p *Parser) parseElementAccess(object ast.Expression) ast.Expression {
	start := object.Loc().Start
	p.advance() // '['
	index := p.parseExpression()
	p.consume(lexer.CLOSE_BRACKET, report.CodeTokenExpected, "']' expected.")
	return &ast.ElementAccessExpr{
		Header: p.header(ast.KindElementAccess, start),
		Object: object,
		Index:  index,
	}
}

func (p *Parser) parsePostfixIncDec(operand ast.Expression) ast.Expression {
	start := operand.Loc().Start
	op := p.peek().Value
	if !isAssignableOperand(operand) {
		p.diags.Error(report.CodeIncrementOperandMustBeVariable, operand.Loc(), "The operand of an increment or decrement operator must be a variable or a property access.")
	}
	p.advance()
	return &ast.UnaryPostfixExpr{
		Header:   p.header(ast.KindUnaryPostfix, start),
		Operator: op,
		Operand:  operand,
	}
}

func isAssignableOperand(e ast.Expression) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.ElementAccessExpr, *ast.PropertyAccessExpr:
		return true
	default:
		return false
	}
}

func (p *Parser) parsePostfixAssertion(target ast.Expression) ast.Expression {
	start := target.Loc().Start
	p.advance() // 'as'
	typ := p.parseType()
	return &ast.PostfixAssertionExpr{
		Header: p.header(ast.KindPostfixAssertion, start),
		Target: target,
		Type:   typ,
	}
}

// parsePrefix dispatches on the first token of an expression: literals,
// parenthesized groups, array literals (with elision), `<Type>expr`
// prefix assertions, `new`, and unary-prefix operators.
func (p *Parser) parsePrefix() ast.Expression {
	tok := p.peek()
	start := tok.Range.Start

	switch tok.Kind {
	case lexer.NULL_TOKEN:
		p.advance()
		return &ast.NullLiteral{Header: p.header(ast.KindNullLiteral, start)}
	case lexer.TRUE_TOKEN, lexer.FALSE_TOKEN:
		p.advance()
		kind := ast.KindFalseLiteral
		if tok.Kind == lexer.TRUE_TOKEN {
			kind = ast.KindTrueLiteral
		}
		return &ast.BoolLiteral{Header: p.header(kind, start), Value: tok.Kind == lexer.TRUE_TOKEN}
	case lexer.INTEGER_TOKEN:
		p.advance()
		v, err := lexer.DecodeInteger(tok.Value)
		if err != nil {
			p.diags.Error(report.CodeExpressionExpected, tok.Range, "Invalid integer literal %q.", tok.Value)
		}
		return &ast.IntegerLiteral{Header: p.header(ast.KindIntegerLiteral, start), Value: v}
	case lexer.FLOAT_TOKEN:
		p.advance()
		v, err := lexer.DecodeFloat(tok.Value)
		if err != nil {
			p.diags.Error(report.CodeExpressionExpected, tok.Range, "Invalid float literal %q.", tok.Value)
		}
		return &ast.FloatLiteral{Header: p.header(ast.KindFloatLiteral, start), Value: v}
	case lexer.STRING_TOKEN:
		p.advance()
		return &ast.StringLiteral{Header: p.header(ast.KindStringLiteral, start), Value: tok.Value}
	case lexer.REGEXP_TOKEN:
		p.advance()
		pattern, flags := splitRegexp(tok.Value)
		return &ast.RegexpLiteral{Header: p.header(ast.KindRegexpLiteral, start), Pattern: pattern, Flags: flags}
	case lexer.IDENTIFIER_TOKEN, lexer.THIS_TOKEN:
		p.advance()
		return &ast.Identifier{Header: p.header(ast.KindIdentifier, start), Name: tok.Value}
	case lexer.OPEN_PAREN:
		return p.parseParenthesized(start)
	case lexer.OPEN_BRACKET:
		return p.parseArrayLiteral(start)
	case lexer.NEW_TOKEN:
		return p.parseNewExpression(start)
	case lexer.DIV_TOKEN, lexer.DIV_EQUALS_TOKEN:
		if regexTok, ok := p.lex.RescanAsRegexp(tok); ok {
			p.cur = regexTok
			pattern, flags := splitRegexp(regexTok.Value)
			return &ast.RegexpLiteral{Header: p.header(ast.KindRegexpLiteral, start), Pattern: pattern, Flags: flags}
		}
	case lexer.LESS_TOKEN:
		return p.parsePrefixAssertion(start)
	}

	if spelling, ok := unaryPrefixOps[tok.Kind]; ok {
		p.advance()
		operand := p.parseExpr(precExponent + 1)
		if operand == nil {
			return nil
		}
		return &ast.UnaryPrefixExpr{
			Header:   p.header(ast.KindUnaryPrefix, start),
			Operator: spelling,
			Operand:  operand,
		}
	}

	p.diags.Error(report.CodeExpressionExpected, tok.Range, "Expression expected.")
	return nil
}

func (p *Parser) parseParenthesized(start int) ast.Expression {
	p.advance() // '('
	inner := p.parseExpression()
	p.consume(lexer.CLOSE_PAREN, report.CodeTokenExpected, "')' expected.")
	return &ast.ParenthesizedExpr{Header: p.header(ast.KindParenthesized, start), Inner: inner}
}

func (p *Parser) parseArrayLiteral(start int) ast.Expression {
	p.advance() // '['
	var elements []ast.Expression
	for !p.check(lexer.CLOSE_BRACKET) && !p.check(lexer.EOF_TOKEN) {
		if p.check(lexer.COMMA_TOKEN) {
			elements = append(elements, nil) // elision
			p.advance()
			continue
		}
		elements = append(elements, p.parseAssignExpression())
		if !p.check(lexer.CLOSE_BRACKET) {
			if !p.match(lexer.COMMA_TOKEN) {
				break
			}
		}
	}
	p.consume(lexer.CLOSE_BRACKET, report.CodeTokenExpected, "']' expected.")
	return &ast.ArrayLiteral{Header: p.header(ast.KindArrayLiteral, start), Elements: elements}
}

// parsePrefixAssertion parses `<T>expr`, distinguished from a
// less-than comparison purely by prefix position: this is only reached
// from parsePrefix, which is never entered mid-expression.
func (p *Parser) parsePrefixAssertion(start int) ast.Expression {
	p.advance() // '<'
	typ := p.parseType()
	p.consume(lexer.GREATER_TOKEN, report.CodeTokenExpected, "'>' expected.")
	target := p.parseExpr(precExponent + 1)
	if target == nil {
		return nil
	}
	return &ast.PrefixAssertionExpr{
		Header: p.header(ast.KindPrefixAssertion, start),
		Type:   typ,
		Target: target,
	}
}

// parseNewExpression resolves the `new` vs. call-expression ambiguity
// (spec.md §9 Open Question) by always parsing exactly one optional
// `(args)` list as part of the NewExpression itself — see DESIGN.md.
func (p *Parser) parseNewExpression(start int) ast.Expression {
	p.advance() // 'new'
	callee := p.parseNewCallee()
	if callee == nil {
		return nil
	}

	var typeArgs []*ast.TypeNode
	if p.check(lexer.LESS_TOKEN) {
		p.mark()
		p.advance()
		args, ok := p.tryParseTypeArgumentList()
		if ok && p.match(lexer.GREATER_TOKEN) {
			typeArgs = args
		} else {
			p.resetToMark()
		}
	}

	var args []ast.Expression
	if p.match(lexer.OPEN_PAREN) {
		args = p.parseArgumentList()
	}

	return &ast.NewExpr{
		Header:        p.header(ast.KindNew, start),
		Callee:        callee,
		TypeArguments: typeArgs,
		Arguments:     args,
	}
}

// parseNewCallee parses an identifier optionally followed by `.member`
// chains — new's operand must be an identifier or a property access
// (spec.md §4.7: "a non-identifier/non-property operand is rejected").
func (p *Parser) parseNewCallee() ast.Expression {
	tok := p.peek()
	if tok.Kind != lexer.IDENTIFIER_TOKEN && tok.Kind != lexer.THIS_TOKEN {
		p.diags.Error(report.CodeExpressionExpected, tok.Range, "Expression expected.")
		return nil
	}
	start := tok.Range.Start
	p.advance()
	var expr ast.Expression = &ast.Identifier{Header: p.header(ast.KindIdentifier, start), Name: tok.Value}
	for p.check(lexer.DOT_TOKEN) {
		expr = p.parsePropertyAccess(expr)
	}
	return expr
}

func (p *Parser) parseArgumentList() []ast.Expression {
	var args []ast.Expression
	for !p.check(lexer.CLOSE_PAREN) && !p.check(lexer.EOF_TOKEN) {
		args = append(args, p.parseAssignExpression())
		if !p.match(lexer.COMMA_TOKEN) {
			break
		}
	}
	p.consume(lexer.CLOSE_PAREN, report.CodeTokenExpected, "')' expected.")
	return args
}

func (p *Parser) parseCallArguments(callee ast.Expression, typeArgs []*ast.TypeNode) ast.Expression {
	start := callee.Loc().Start
	p.advance() // '('
	args := p.parseArgumentList()
	return &ast.CallExpr{
		Header:        p.header(ast.KindCall, start),
		Callee:        callee,
		TypeArguments: typeArgs,
		Arguments:     args,
	}
}

// tryParseTypeArgumentCall implements spec.md §4.7's
// tryParseTypeArgumentsBeforeArguments: from a single mark/reset
// speculative pass, accept `<T, ...>(` as the start of a generic call,
// disambiguating `f<T>(x)` from `a < b > c`.
func (p *Parser) tryParseTypeArgumentCall(callee ast.Expression) (ast.Expression, bool) {
	// Diagnostics from the speculative type parse go to a scratch store
	// and are discarded; an attempt that produced errors is rejected.
	diags := p.diags
	scratch := &report.Store{}
	p.diags = scratch
	p.mark()
	p.advance() // '<'
	args, ok := p.tryParseTypeArgumentList()
	accepted := ok && !scratch.HasErrors() && p.match(lexer.GREATER_TOKEN) && p.check(lexer.OPEN_PAREN)
	p.diags = diags
	if !accepted {
		p.resetToMark()
		return nil, false
	}
	return p.parseCallArguments(callee, args), true
}

func (p *Parser) tryParseTypeArgumentList() ([]*ast.TypeNode, bool) {
	if p.check(lexer.GREATER_TOKEN) {
		return nil, false // `<>` is not a type-argument list; the caller resets
	}
	var args []*ast.TypeNode
	args = append(args, p.parseTypeAt(true))
	for p.match(lexer.COMMA_TOKEN) {
		args = append(args, p.parseTypeAt(true))
	}
	return args, true
}

func splitRegexp(literal string) (pattern, flags string) {
	lastSlash := -1
	for i := len(literal) - 1; i >= 0; i-- {
		if literal[i] == '/' {
			lastSlash = i
			break
		}
	}
	if lastSlash <= 0 {
		return literal, ""
	}
	return literal[1:lastSlash], literal[lastSlash+1:]
}

