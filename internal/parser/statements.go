// Statement parser, per spec.md §4.4. Grounded on the teacher's
// compiler/internal/frontend/parser/parser.go parseNode dispatch shape.
package parser

import (
	"github.com/glyphlang/glyph/internal/ast"
	"github.com/glyphlang/glyph/internal/lexer"
	"github.com/glyphlang/glyph/internal/report"
)

// parseStatement dispatches on the first token (after any modifiers
// already consumed by the caller) per spec.md §4.4's table. topLevel
// propagates into nested blocks so a `return` deep inside a block that
// is itself top-level still triggers the "return outside function"
// diagnostic.
func (p *Parser) parseStatement(topLevel bool) ast.Statement {
	tok := p.peek()
	start := tok.Range.Start

	switch tok.Kind {
	case lexer.BREAK_TOKEN, lexer.CONTINUE_TOKEN:
		return p.parseBreakContinue(start, tok.Kind)
	case lexer.DO_TOKEN:
		return p.parseDoWhile(start)
	case lexer.FOR_TOKEN:
		return p.parseFor(start)
	case lexer.IF_TOKEN:
		return p.parseIf(start, topLevel)
	case lexer.RETURN_TOKEN:
		return p.parseReturn(start, topLevel)
	case lexer.SWITCH_TOKEN:
		return p.parseSwitch(start)
	case lexer.THROW_TOKEN:
		return p.parseThrow(start)
	case lexer.TRY_TOKEN:
		return p.parseTry(start)
	case lexer.WHILE_TOKEN:
		return p.parseWhile(start, topLevel)
	case lexer.OPEN_BRACE:
		return p.parseBlock(topLevel)
	case lexer.SEMICOLON_TOKEN:
		p.advance()
		return &ast.EmptyStmt{Header: p.header(ast.KindEmpty, start)}
	case lexer.CONST_TOKEN, lexer.LET_TOKEN, lexer.VAR_TOKEN:
		return p.parseVariableStatement(start, nil)
	default:
		return p.parseExpressionStatement(start)
	}
}

func (p *Parser) parseBreakContinue(start int, kind lexer.TOKEN) ast.Statement {
	p.advance()
	label := ""
	if p.check(lexer.IDENTIFIER_TOKEN) && !p.peek().PrecededByNewline {
		label = p.peek().Value
		p.advance()
	}
	p.consumeSemicolon()
	if kind == lexer.BREAK_TOKEN {
		return &ast.BreakStmt{Header: p.header(ast.KindBreak, start), Label: label}
	}
	return &ast.ContinueStmt{Header: p.header(ast.KindContinue, start), Label: label}
}

func (p *Parser) parseDoWhile(start int) ast.Statement {
	p.advance() // 'do'
	body := p.parseStatement(false)
	p.consume(lexer.WHILE_TOKEN, report.CodeTokenExpected, "'while' expected.")
	p.consume(lexer.OPEN_PAREN, report.CodeTokenExpected, "'(' expected.")
	cond := p.parseExpression()
	p.consume(lexer.CLOSE_PAREN, report.CodeTokenExpected, "')' expected.")
	p.consumeSemicolon()
	return &ast.DoWhileStmt{Header: p.header(ast.KindDoWhile, start), Body: body, Condition: cond}
}

func (p *Parser) parseWhile(start int, topLevel bool) ast.Statement {
	p.advance() // 'while'
	p.consume(lexer.OPEN_PAREN, report.CodeTokenExpected, "'(' expected.")
	cond := p.parseExpression()
	p.consume(lexer.CLOSE_PAREN, report.CodeTokenExpected, "')' expected.")
	body := p.parseStatement(topLevel)
	return &ast.WhileStmt{Header: p.header(ast.KindWhile, start), Condition: cond, Body: body}
}

func (p *Parser) parseFor(start int) ast.Statement {
	p.advance() // 'for'
	p.consume(lexer.OPEN_PAREN, report.CodeTokenExpected, "'(' expected.")

	var init ast.Statement
	if !p.check(lexer.SEMICOLON_TOKEN) {
		switch p.peek().Kind {
		case lexer.CONST_TOKEN, lexer.LET_TOKEN, lexer.VAR_TOKEN:
			init = p.parseVariableStatementNoSemi(p.peek().Range.Start, nil)
		default:
			exprStart := p.peek().Range.Start
			expr := p.parseExpression()
			init = &ast.ExpressionStmt{Header: p.header(ast.KindExpressionStmt, exprStart), Expr: expr}
		}
	}
	p.consume(lexer.SEMICOLON_TOKEN, report.CodeTokenExpected, "';' expected.")

	var cond ast.Expression
	if !p.check(lexer.SEMICOLON_TOKEN) {
		cond = p.parseExpression()
	}
	p.consume(lexer.SEMICOLON_TOKEN, report.CodeTokenExpected, "';' expected.")

	var post ast.Expression
	if !p.check(lexer.CLOSE_PAREN) {
		post = p.parseExpression()
	}
	p.consume(lexer.CLOSE_PAREN, report.CodeTokenExpected, "')' expected.")

	body := p.parseStatement(false)
	return &ast.ForStmt{Header: p.header(ast.KindFor, start), Init: init, Condition: cond, Post: post, Body: body}
}

func (p *Parser) parseIf(start int, topLevel bool) ast.Statement {
	p.advance() // 'if'
	p.consume(lexer.OPEN_PAREN, report.CodeTokenExpected, "'(' expected.")
	cond := p.parseExpression()
	p.consume(lexer.CLOSE_PAREN, report.CodeTokenExpected, "')' expected.")
	then := p.parseStatement(topLevel)
	var elseStmt ast.Statement
	if p.match(lexer.ELSE_TOKEN) {
		elseStmt = p.parseStatement(topLevel)
	}
	return &ast.IfStmt{Header: p.header(ast.KindIf, start), Condition: cond, Then: then, Else: elseStmt}
}

func (p *Parser) parseReturn(start int, topLevel bool) ast.Statement {
	if topLevel {
		p.diags.Warning(report.CodeReturnOutsideFunction, p.peek().Range, "A 'return' statement can only be used within a function body.")
	}
	p.advance() // 'return'
	var value ast.Expression
	next := p.peek()
	if next.Kind != lexer.SEMICOLON_TOKEN && next.Kind != lexer.CLOSE_BRACE && next.Kind != lexer.EOF_TOKEN && !next.PrecededByNewline {
		value = p.parseExpression()
	}
	p.consumeSemicolon()
	return &ast.ReturnStmt{Header: p.header(ast.KindReturn, start), Value: value}
}

func (p *Parser) parseThrow(start int) ast.Statement {
	p.advance() // 'throw'
	value := p.parseExpression()
	p.consumeSemicolon()
	return &ast.ThrowStmt{Header: p.header(ast.KindThrow, start), Value: value}
}

func (p *Parser) parseSwitch(start int) ast.Statement {
	p.advance() // 'switch'
	p.consume(lexer.OPEN_PAREN, report.CodeTokenExpected, "'(' expected.")
	discriminant := p.parseExpression()
	p.consume(lexer.CLOSE_PAREN, report.CodeTokenExpected, "')' expected.")
	p.consume(lexer.OPEN_BRACE, report.CodeTokenExpected, "'{' expected.")

	var cases []*ast.SwitchCase
	for !p.check(lexer.CLOSE_BRACE) && !p.check(lexer.EOF_TOKEN) {
		caseStart := p.peek().Range.Start
		var test ast.Expression
		switch p.peek().Kind {
		case lexer.CASE_TOKEN:
			p.advance()
			test = p.parseExpression()
		case lexer.DEFAULT_TOKEN:
			p.advance()
		default:
			p.diags.Error(report.CodeCaseOrDefaultExpected, p.peek().Range, "'case' or 'default' expected.")
			p.advance()
			continue
		}
		p.consume(lexer.COLON_TOKEN, report.CodeTokenExpected, "':' expected.")
		var stmts []ast.Statement
		for !p.check(lexer.CASE_TOKEN) && !p.check(lexer.DEFAULT_TOKEN) && !p.check(lexer.CLOSE_BRACE) && !p.check(lexer.EOF_TOKEN) {
			stmts = append(stmts, p.parseStatement(false))
		}
		cases = append(cases, &ast.SwitchCase{Header: p.header(ast.KindSwitchCase, caseStart), Test: test, Statements: stmts})
	}
	p.consume(lexer.CLOSE_BRACE, report.CodeTokenExpected, "'}' expected.")
	return &ast.SwitchStmt{Header: p.header(ast.KindSwitch, start), Discriminant: discriminant, Cases: cases}
}

func (p *Parser) parseTry(start int) ast.Statement {
	p.advance() // 'try'
	body := p.parseBlockExpr()

	stmt := &ast.TryStmt{Body: body}
	if p.match(lexer.CATCH_TOKEN) {
		stmt.HasCatch = true
		if p.match(lexer.OPEN_PAREN) {
			if p.check(lexer.IDENTIFIER_TOKEN) {
				stmt.CatchBinding = p.peek().Value
				p.advance()
			} else {
				p.diags.Error(report.CodeIdentifierExpected, p.peek().Range, "Identifier expected.")
			}
			p.consume(lexer.CLOSE_PAREN, report.CodeTokenExpected, "')' expected.")
		}
		stmt.Catch = p.parseBlockExpr()
	}
	if p.match(lexer.FINALLY_TOKEN) {
		stmt.Finally = p.parseBlockExpr()
	}
	if !stmt.HasCatch && stmt.Finally == nil {
		p.diags.Error(report.CodeCatchOrFinallyExpected, p.current().Range, "'catch' or 'finally' expected.")
	}
	stmt.Header = p.header(ast.KindTry, start)
	return stmt
}

// parseBlock parses `{ Stmt* }` as a Statement; parseBlockExpr does the
// same returning the concrete *ast.BlockStmt a try/catch/finally clause
// or function body needs.
func (p *Parser) parseBlock(topLevel bool) ast.Statement {
	return p.parseBlockStmts(topLevel)
}

func (p *Parser) parseBlockExpr() *ast.BlockStmt {
	return p.parseBlockStmts(false)
}

func (p *Parser) parseBlockStmts(topLevel bool) *ast.BlockStmt {
	start := p.peek().Range.Start
	if !p.consume(lexer.OPEN_BRACE, report.CodeTokenExpected, "'{' expected.") {
		return &ast.BlockStmt{Header: p.header(ast.KindBlock, start)}
	}
	var stmts []ast.Statement
	for !p.check(lexer.CLOSE_BRACE) && !p.check(lexer.EOF_TOKEN) {
		stmt := p.parseStatement(topLevel)
		if stmt == nil {
			break
		}
		stmts = append(stmts, stmt)
	}
	if !p.consume(lexer.CLOSE_BRACE, report.CodeTokenExpected, "'}' expected.") {
		p.diags.Error(report.CodeUnterminatedBlock, p.peek().Range, "Unterminated block.")
	}
	return &ast.BlockStmt{Header: p.header(ast.KindBlock, start), Statements: stmts}
}

// parseExpressionStatement marks the cursor before parsing the
// expression (spec.md §4.4's default case). When no expression results,
// it rewinds to the parser's single checkpoint (which a speculative
// parse nested inside the expression may have replaced), reports
// "Expression expected" at the token found there, skips that token, and
// returns nil.
func (p *Parser) parseExpressionStatement(start int) ast.Statement {
	p.mark()
	expr := p.parseExpression()
	if expr == nil {
		p.resetToMark()
		p.diags.Error(report.CodeExpressionExpected, p.peek().Range, "Expression expected.")
		p.advance()
		return nil
	}
	p.consumeSemicolon()
	return &ast.ExpressionStmt{Header: p.header(ast.KindExpressionStmt, start), Expr: expr}
}
