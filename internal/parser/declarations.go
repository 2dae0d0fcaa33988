// Declaration parser: variable, enum, function, class, import, export,
// per spec.md §4.5. Grounded on the teacher's
// compiler/internal/frontend/ast/stmt.go VarDeclStmt/TypeDeclStmt/
// ImportStmt/ModuleDeclStmt shapes, extended to the full declaration
// grammar spec.md §4.5 names.
package parser

import (
	"github.com/glyphlang/glyph/internal/ast"
	"github.com/glyphlang/glyph/internal/lexer"
	"github.com/glyphlang/glyph/internal/report"
)

func (p *Parser) parseVariableStatement(start int, modifiers []ast.Modifier) *ast.VariableStmt {
	stmt := p.parseVariableStatementNoSemi(start, modifiers)
	p.consumeSemicolon()
	return stmt
}

// parseVariableStatementNoSemi leaves the trailing `;` for the caller,
// used by the for-statement initializer (spec.md §4.4).
func (p *Parser) parseVariableStatementNoSemi(start int, modifiers []ast.Modifier) *ast.VariableStmt {
	keyword := p.peek().Value
	p.advance()

	var decls []*ast.VariableDeclarator
	for {
		decls = append(decls, p.parseDeclarator())
		if !p.match(lexer.COMMA_TOKEN) {
			break
		}
	}
	return &ast.VariableStmt{
		Header:      p.header(ast.KindVariableStmt, start),
		Keyword:     keyword,
		Declarators: decls,
		Modifiers:   modifiers,
	}
}

func (p *Parser) parseDeclarator() *ast.VariableDeclarator {
	start := p.peek().Range.Start
	name := p.peek().Value
	p.consume(lexer.IDENTIFIER_TOKEN, report.CodeIdentifierExpected, "Identifier expected.")

	var typ *ast.TypeNode
	if p.match(lexer.COLON_TOKEN) {
		typ = p.parseType()
	}

	var init ast.Expression
	if p.match(lexer.EQUALS_TOKEN) {
		init = p.parseAssignExpression()
		if p.ambient {
			p.diags.Error(report.CodeInitializerNotAllowedInAmbient, init.Loc(), "Initializers are not allowed in ambient contexts.")
		}
	}
	return &ast.VariableDeclarator{
		Header:      p.header(ast.KindVariableDeclarator, start),
		Name:        name,
		Type:        typ,
		Initializer: init,
	}
}

// parseEnumDecl implements spec.md §4.5's enum grammar:
// `'enum' ident '{' (value (',' value)*)? '}' ';'?`.
func (p *Parser) parseEnumDecl(start int, isConst bool, modifiers []ast.Modifier) *ast.EnumDecl {
	p.advance() // 'enum'
	name := p.peek().Value
	p.consume(lexer.IDENTIFIER_TOKEN, report.CodeIdentifierExpected, "Identifier expected.")
	p.consume(lexer.OPEN_BRACE, report.CodeTokenExpected, "'{' expected.")

	var members []*ast.EnumMember
	for !p.check(lexer.CLOSE_BRACE) && !p.check(lexer.EOF_TOKEN) {
		mstart := p.peek().Range.Start
		mname := p.peek().Value
		p.consume(lexer.IDENTIFIER_TOKEN, report.CodeIdentifierExpected, "Identifier expected.")
		var value ast.Expression
		if p.match(lexer.EQUALS_TOKEN) {
			value = p.parseAssignExpression()
		}
		members = append(members, &ast.EnumMember{
			Header: p.header(ast.KindEnumMember, mstart),
			Name:   mname,
			Value:  value,
		})
		if p.expectListSeparator(lexer.CLOSE_BRACE) {
			break
		}
	}
	p.consume(lexer.CLOSE_BRACE, report.CodeTokenExpected, "'}' expected.")
	p.consumeSemicolon()
	return &ast.EnumDecl{
		Header:    p.header(ast.KindEnumDecl, start),
		Name:      name,
		IsConst:   isConst,
		Members:   members,
		Modifiers: modifiers,
	}
}

// parseTypeParameterList parses `'<' TypeParam (',' TypeParam)* '>'`,
// reporting code 1098 ("type parameter list cannot be empty") for `<>`.
func (p *Parser) parseTypeParameterList() []*ast.TypeParameter {
	p.advance() // '<'
	if p.check(lexer.GREATER_TOKEN) {
		p.diags.Error(report.CodeTypeParameterListCannotBeEmpty, p.peek().Range, "Type parameter list cannot be empty.")
		p.advance()
		return nil
	}
	var params []*ast.TypeParameter
	for {
		start := p.peek().Range.Start
		name := p.peek().Value
		p.consume(lexer.IDENTIFIER_TOKEN, report.CodeIdentifierExpected, "Identifier expected.")
		params = append(params, &ast.TypeParameter{Header: p.header(ast.KindTypeParameter, start), Name: name})
		if p.expectListSeparator(lexer.GREATER_TOKEN) {
			break
		}
	}
	p.consume(lexer.GREATER_TOKEN, report.CodeTokenExpected, "'>' expected.")
	return params
}

func (p *Parser) parseParameterList() []*ast.Parameter {
	p.consume(lexer.OPEN_PAREN, report.CodeTokenExpected, "'(' expected.")
	var params []*ast.Parameter
	for !p.check(lexer.CLOSE_PAREN) && !p.check(lexer.EOF_TOKEN) {
		start := p.peek().Range.Start
		spread := p.match(lexer.DOT_DOT_DOT_TOKEN)
		name := p.peek().Value
		p.consume(lexer.IDENTIFIER_TOKEN, report.CodeIdentifierExpected, "Identifier expected.")
		var typ *ast.TypeNode
		if p.match(lexer.COLON_TOKEN) {
			typ = p.parseType()
		}
		var def ast.Expression
		if p.match(lexer.EQUALS_TOKEN) {
			def = p.parseAssignExpression()
		}
		params = append(params, &ast.Parameter{
			Header:   p.header(ast.KindParameter, start),
			Name:     name,
			Type:     typ,
			Default:  def,
			IsSpread: spread,
		})
		if p.expectListSeparator(lexer.CLOSE_PAREN) {
			break
		}
	}
	p.consume(lexer.CLOSE_PAREN, report.CodeTokenExpected, "')' expected.")
	return params
}

// parseFunctionDecl implements spec.md §4.5's function grammar. A body
// is required unless the enclosing declaration is ambient (code 1252
// when missing outside an ambient context); a body present under
// `declare` is itself recoverable (code 1183).
func (p *Parser) parseFunctionDecl(start int, modifiers []ast.Modifier, decorators []*ast.Decorator) *ast.FunctionDecl {
	p.advance() // 'function'
	name := p.peek().Value
	p.consume(lexer.IDENTIFIER_TOKEN, report.CodeIdentifierExpected, "Identifier expected.")

	var typeParams []*ast.TypeParameter
	if p.check(lexer.LESS_TOKEN) {
		typeParams = p.parseTypeParameterList()
	}

	params := p.parseParameterList()

	var returnType *ast.TypeNode
	if p.consume(lexer.COLON_TOKEN, report.CodeTokenExpected, "':' expected.") {
		returnType = p.parseType()
	}

	var body *ast.BlockStmt
	if p.check(lexer.OPEN_BRACE) {
		body = p.parseBlockExpr()
		if p.ambient {
			p.diags.Error(report.CodeImplementationNotAllowedInAmbient, body.Loc(), "An implementation cannot be declared in ambient contexts.")
		}
	} else {
		if !p.ambient {
			p.diags.Error(report.CodeFunctionImplementationMissing, p.peek().Range, "Function implementation is missing or not immediately following the declaration.")
		}
		p.consumeSemicolon()
	}

	return &ast.FunctionDecl{
		Header:         p.header(ast.KindFunctionDecl, start),
		Name:           name,
		TypeParameters: typeParams,
		Parameters:     params,
		ReturnType:     returnType,
		Body:           body,
		Modifiers:      modifiers,
		Decorators:     decorators,
	}
}

// parseMemberModifiers consumes the three ordered modifier slots
// spec.md §4.5 names for a class member: one of public|private|
// protected, then one of static|abstract, then one of get|set.
func (p *Parser) parseMemberModifiers() []ast.Modifier {
	var mods []ast.Modifier
	if m, ok := p.tryOneOf(lexer.PUBLIC_TOKEN, lexer.PRIVATE_TOKEN, lexer.PROTECTED_TOKEN); ok {
		mods = append(mods, m)
	}
	if m, ok := p.tryOneOf(lexer.STATIC_TOKEN, lexer.ABSTRACT_TOKEN); ok {
		mods = append(mods, m)
	}
	if m, ok := p.tryOneOf(lexer.GET_TOKEN, lexer.SET_TOKEN); ok {
		mods = append(mods, m)
	}
	return mods
}

func (p *Parser) tryOneOf(kinds ...lexer.TOKEN) (ast.Modifier, bool) {
	tok := p.peek()
	for _, k := range kinds {
		if tok.Kind == k {
			p.advance()
			return ast.Modifier{Header: p.header(ast.KindModifier, tok.Range.Start), Keyword: tok.Value}, true
		}
	}
	return ast.Modifier{}, false
}

func hasModifier(mods []ast.Modifier, keyword string) bool {
	for _, m := range mods {
		if m.Keyword == keyword {
			return true
		}
	}
	return false
}

// parseClassDecl implements spec.md §4.5's class grammar. A Member is
// distinguished as a method by a following `(` after its name; fields
// carrying `abstract`, `get`, or `set` emit recoverable errors (those
// modifiers only make sense on a method).
func (p *Parser) parseClassDecl(start int, isAbstract bool, modifiers []ast.Modifier, decorators []*ast.Decorator) *ast.ClassDecl {
	p.advance() // 'class'
	name := p.peek().Value
	p.consume(lexer.IDENTIFIER_TOKEN, report.CodeIdentifierExpected, "Identifier expected.")

	var typeParams []*ast.TypeParameter
	if p.check(lexer.LESS_TOKEN) {
		typeParams = p.parseTypeParameterList()
	}

	var extends *ast.TypeNode
	if p.match(lexer.EXTENDS_TOKEN) {
		extends = p.parseType()
	}

	var implements []*ast.TypeNode
	if p.match(lexer.IMPLEMENTS_TOKEN) {
		implements = append(implements, p.parseType())
		for p.match(lexer.COMMA_TOKEN) {
			implements = append(implements, p.parseType())
		}
	}

	p.consume(lexer.OPEN_BRACE, report.CodeTokenExpected, "'{' expected.")

	decl := &ast.ClassDecl{
		Header:         p.header(ast.KindClassDecl, start),
		Name:           name,
		IsAbstract:     isAbstract,
		TypeParameters: typeParams,
		Extends:        extends,
		Implements:     implements,
		Modifiers:      modifiers,
		Decorators:     decorators,
	}

	for !p.check(lexer.CLOSE_BRACE) && !p.check(lexer.EOF_TOKEN) {
		p.parseClassMember(decl)
	}
	p.consume(lexer.CLOSE_BRACE, report.CodeTokenExpected, "'}' expected.")
	decl.Header = p.header(ast.KindClassDecl, start)
	return decl
}

func (p *Parser) parseClassMember(decl *ast.ClassDecl) {
	mstart := p.peek().Range.Start
	mods := p.parseMemberModifiers()

	if !p.check(lexer.IDENTIFIER_TOKEN) {
		p.diags.Error(report.CodeIdentifierExpected, p.peek().Range, "Identifier expected.")
		p.advance()
		return
	}
	name := p.peek().Value
	p.advance()

	if p.check(lexer.OPEN_PAREN) {
		decl.Methods = append(decl.Methods, p.parseMethodTail(mstart, name, mods))
		return
	}
	decl.Fields = append(decl.Fields, p.parseFieldTail(mstart, name, mods))
}

func (p *Parser) parseMethodTail(start int, name string, mods []ast.Modifier) *ast.Method {
	params := p.parseParameterList()
	var returnType *ast.TypeNode
	if p.match(lexer.COLON_TOKEN) {
		returnType = p.parseType()
	}
	var body *ast.BlockStmt
	if p.check(lexer.OPEN_BRACE) {
		body = p.parseBlockExpr()
	} else {
		p.consumeSemicolon()
	}
	return &ast.Method{
		Header:     p.header(ast.KindMethod, start),
		Name:       name,
		Parameters: params,
		ReturnType: returnType,
		Body:       body,
		Modifiers:  mods,
	}
}

func (p *Parser) parseFieldTail(start int, name string, mods []ast.Modifier) *ast.Field {
	if hasModifier(mods, "abstract") || hasModifier(mods, "get") || hasModifier(mods, "set") {
		p.diags.Error(report.CodeModifierCannotBeUsedHere, p.header(ast.KindField, start).Range, "A modifier cannot be used here.")
	}
	var typ *ast.TypeNode
	if p.match(lexer.COLON_TOKEN) {
		typ = p.parseType()
	}
	var init ast.Expression
	if p.match(lexer.EQUALS_TOKEN) {
		init = p.parseAssignExpression()
	}
	p.consumeSemicolon()
	return &ast.Field{
		Header:      p.header(ast.KindField, start),
		Name:        name,
		Type:        typ,
		Initializer: init,
		Modifiers:   mods,
	}
}

// parseImportStmt implements spec.md §4.5's import grammar, enqueuing
// the resolved module path onto the work-list if it has not already
// been seen.
func (p *Parser) parseImportStmt(start int, modifiers []ast.Modifier) *ast.ImportStmt {
	p.advance() // 'import'
	p.consume(lexer.OPEN_BRACE, report.CodeTokenExpected, "'{' expected.")

	var specs []*ast.ImportSpecifier
	for !p.check(lexer.CLOSE_BRACE) && !p.check(lexer.EOF_TOKEN) {
		specs = append(specs, p.parseImportOrExportSpecifier())
		if p.expectListSeparator(lexer.CLOSE_BRACE) {
			break
		}
	}
	p.consume(lexer.CLOSE_BRACE, report.CodeTokenExpected, "'}' expected.")
	p.consume(lexer.FROM_TOKEN, report.CodeTokenExpected, "'from' expected.")

	fromPath := p.peek().Value
	p.consume(lexer.STRING_TOKEN, report.CodeStringLiteralExpected, "String literal expected.")
	p.consumeSemicolon()

	p.enqueueImport(fromPath)

	return &ast.ImportStmt{
		Header:     p.header(ast.KindImport, start),
		Specifiers: specs,
		FromPath:   fromPath,
		Modifiers:  modifiers,
	}
}

func (p *Parser) parseImportOrExportSpecifier() *ast.ImportSpecifier {
	start := p.peek().Range.Start
	name := p.peek().Value
	p.consume(lexer.IDENTIFIER_TOKEN, report.CodeIdentifierExpected, "Identifier expected.")
	alias := name
	if p.match(lexer.AS_TOKEN) {
		alias = p.peek().Value
		p.consume(lexer.IDENTIFIER_TOKEN, report.CodeIdentifierExpected, "Identifier expected.")
	}
	return &ast.ImportSpecifier{Header: p.header(ast.KindImportSpecifier, start), Name: name, Alias: alias}
}

// parseExportStmt implements `export { ... } (from "...")?;` and, when
// the directive opens with `import`, the `export import ident = ident;`
// re-export alias form.
func (p *Parser) parseExportStmt(start int, modifiers []ast.Modifier) ast.Statement {
	if p.check(lexer.IMPORT_TOKEN) {
		return p.parseExportImportStmt(start)
	}

	p.consume(lexer.OPEN_BRACE, report.CodeTokenExpected, "'{' expected.")
	var specs []*ast.ExportSpecifier
	for !p.check(lexer.CLOSE_BRACE) && !p.check(lexer.EOF_TOKEN) {
		mstart := p.peek().Range.Start
		name := p.peek().Value
		p.consume(lexer.IDENTIFIER_TOKEN, report.CodeIdentifierExpected, "Identifier expected.")
		alias := name
		if p.match(lexer.AS_TOKEN) {
			alias = p.peek().Value
			p.consume(lexer.IDENTIFIER_TOKEN, report.CodeIdentifierExpected, "Identifier expected.")
		}
		specs = append(specs, &ast.ExportSpecifier{Header: p.header(ast.KindExportSpecifier, mstart), Name: name, Alias: alias})
		if p.expectListSeparator(lexer.CLOSE_BRACE) {
			break
		}
	}
	p.consume(lexer.CLOSE_BRACE, report.CodeTokenExpected, "'}' expected.")

	var fromPath string
	hasFrom := false
	if p.match(lexer.FROM_TOKEN) {
		hasFrom = true
		fromPath = p.peek().Value
		p.consume(lexer.STRING_TOKEN, report.CodeStringLiteralExpected, "String literal expected.")
		p.enqueueImport(fromPath)
	}
	p.consumeSemicolon()

	return &ast.ExportStmt{
		Header:     p.header(ast.KindExport, start),
		Specifiers: specs,
		FromPath:   fromPath,
		HasFrom:    hasFrom,
	}
}

func (p *Parser) parseExportImportStmt(start int) ast.Statement {
	p.advance() // 'import'
	alias := p.peek().Value
	p.consume(lexer.IDENTIFIER_TOKEN, report.CodeIdentifierExpected, "Identifier expected.")
	p.consume(lexer.EQUALS_TOKEN, report.CodeTokenExpected, "'=' expected.")
	target := p.peek().Value
	p.consume(lexer.IDENTIFIER_TOKEN, report.CodeIdentifierExpected, "Identifier expected.")
	p.consumeSemicolon()
	return &ast.ExportImportStmt{Header: p.header(ast.KindExportImport, start), Alias: alias, Target: target}
}

// enqueueImport resolves path relative to the Source being parsed and
// pushes it onto the work-list if it has not been seen before (spec.md
// §4.5/§4.8).
func (p *Parser) enqueueImport(path string) {
	resolved := ast.ResolveImport(p.src.NormalizedPath(), path)
	p.work.Push(resolved)
}

// parseTypeAliasStmt is the recoverable stub for `type X = Y;` (spec.md
// §9 Open Question; decision recorded in DESIGN.md).
func (p *Parser) parseTypeAliasStmt(start int) ast.Statement {
	p.advance() // 'type'
	name := p.peek().Value
	p.consume(lexer.IDENTIFIER_TOKEN, report.CodeIdentifierExpected, "Identifier expected.")
	p.diags.Error(report.CodeTypeAliasUnsupported, p.header(ast.KindTypeAliasStmt, start).Range, "Type aliases are not yet supported.")
	if p.match(lexer.EQUALS_TOKEN) {
		p.parseType()
	}
	p.consumeSemicolon()
	return &ast.TypeAliasStmt{Header: p.header(ast.KindTypeAliasStmt, start), Name: name}
}

func (p *Parser) parseDecorator() *ast.Decorator {
	start := p.peek().Range.Start
	p.advance() // '@'
	callee := p.parseNewCallee()
	var args []ast.Expression
	if p.match(lexer.OPEN_PAREN) {
		args = p.parseArgumentList()
	}
	return &ast.Decorator{Header: p.header(ast.KindDecorator, start), Callee: callee, Args: args}
}
