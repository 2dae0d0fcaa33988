// Concrete scenario tests, per spec.md §8.
package parser_test

import (
	"testing"

	"github.com/glyphlang/glyph/internal/ast"
	"github.com/glyphlang/glyph/internal/parser"
	"github.com/glyphlang/glyph/internal/report"
	"github.com/glyphlang/glyph/internal/worklist"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, text string) (*ast.Source, *report.Store, *worklist.WorkList) {
	t.Helper()
	src := ast.NewSource("test.glyph", []byte(text), true)
	diags := &report.Store{}
	work := worklist.New()
	p := parser.New(src, diags, work)
	p.ParseFile()
	return src, diags, work
}

func TestScenario1VariableWithBinaryInitializer(t *testing.T) {
	src, diags, _ := parseOne(t, `const x: i32 = 1 + 2;`)
	require.Len(t, src.Statements, 1)
	require.Equal(t, 0, diags.Len())

	stmt, ok := src.Statements[0].(*ast.VariableStmt)
	require.True(t, ok)
	require.Equal(t, "const", stmt.Keyword)
	require.Len(t, stmt.Declarators, 1)

	decl := stmt.Declarators[0]
	require.Equal(t, "x", decl.Name)
	require.NotNil(t, decl.Type)
	require.Equal(t, "i32", decl.Type.Name)

	bin, ok := decl.Initializer.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, "+", bin.Operator)
	require.IsType(t, &ast.IntegerLiteral{}, bin.Left)
	require.IsType(t, &ast.IntegerLiteral{}, bin.Right)
}

func TestBoolLiteralKindMatchesValue(t *testing.T) {
	src, diags, _ := parseOne(t, `const t = true; const f = false;`)
	require.Equal(t, 0, diags.Len())
	require.Len(t, src.Statements, 2)

	trueLit := src.Statements[0].(*ast.VariableStmt).Declarators[0].Initializer.(*ast.BoolLiteral)
	require.True(t, trueLit.Value)
	require.Equal(t, ast.KindTrueLiteral, trueLit.Kind())

	falseLit := src.Statements[1].(*ast.VariableStmt).Declarators[0].Initializer.(*ast.BoolLiteral)
	require.False(t, falseLit.Value)
	require.Equal(t, ast.KindFalseLiteral, falseLit.Kind())
}

func TestTrailingCommaInParameterListWarns(t *testing.T) {
	src, diags, _ := parseOne(t, `function add(a: i32, b: i32,): i32 { return a + b; }`)
	require.False(t, diags.HasErrors())
	require.Equal(t, 1, diags.Len())
	require.Equal(t, report.CodeTrailingCommaNotAllowed, diags.All()[0].Code)
	require.Equal(t, report.SeverityWarning, diags.All()[0].Severity)

	fn, ok := src.Statements[0].(*ast.FunctionDecl)
	require.True(t, ok)
	require.Len(t, fn.Parameters, 2)
}

func TestMissingCommaInParameterListErrors(t *testing.T) {
	_, diags, _ := parseOne(t, `function add(a: i32 b: i32): i32 { return a + b; }`)
	require.True(t, diags.HasErrors())
}

func TestTrailingCommaInEnumWarns(t *testing.T) {
	src, diags, _ := parseOne(t, `enum Color { Red, Green, }`)
	require.False(t, diags.HasErrors())
	require.Equal(t, 1, diags.Len())
	require.Equal(t, report.CodeTrailingCommaNotAllowed, diags.All()[0].Code)

	en, ok := src.Statements[0].(*ast.EnumDecl)
	require.True(t, ok)
	require.Len(t, en.Members, 2)
}

func TestScenario2FunctionDeclaration(t *testing.T) {
	src, diags, _ := parseOne(t, `function add(a: i32, b: i32): i32 { return a + b; }`)
	require.Equal(t, 0, diags.Len())
	require.Len(t, src.Statements, 1)

	fn, ok := src.Statements[0].(*ast.FunctionDecl)
	require.True(t, ok)
	require.Equal(t, "add", fn.Name)
	require.Len(t, fn.Parameters, 2)
	require.Equal(t, "a", fn.Parameters[0].Name)
	require.Equal(t, "b", fn.Parameters[1].Name)
	require.NotNil(t, fn.Body)
	require.Len(t, fn.Body.Statements, 1)

	ret, ok := fn.Body.Statements[0].(*ast.ReturnStmt)
	require.True(t, ok)
	bin, ok := ret.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, "+", bin.Operator)
}

func TestScenario3ExportFromEnqueuesImport(t *testing.T) {
	src, diags, work := parseOne(t, `export { foo as bar } from "./other";`)
	require.Equal(t, 0, diags.Len())
	require.Len(t, src.Statements, 1)

	exp, ok := src.Statements[0].(*ast.ExportStmt)
	require.True(t, ok)
	require.True(t, exp.HasFrom)
	require.Equal(t, "./other", exp.FromPath)
	require.Len(t, exp.Specifiers, 1)
	require.Equal(t, "foo", exp.Specifiers[0].Name)
	require.Equal(t, "bar", exp.Specifiers[0].Alias)

	next, ok := work.Next()
	require.True(t, ok)
	require.Equal(t, ast.ResolveImport(src.NormalizedPath(), "./other"), next)
}

func TestScenario4ClassDeclaration(t *testing.T) {
	src, diags, _ := parseOne(t, `class A<T> extends B implements I, J { x: i32 = 0; m(): void {} }`)
	require.Equal(t, 0, diags.Len())
	require.Len(t, src.Statements, 1)

	cls, ok := src.Statements[0].(*ast.ClassDecl)
	require.True(t, ok)
	require.Equal(t, "A", cls.Name)
	require.Len(t, cls.TypeParameters, 1)
	require.NotNil(t, cls.Extends)
	require.Equal(t, "B", cls.Extends.Name)
	require.Len(t, cls.Implements, 2)

	require.Len(t, cls.Fields, 1)
	require.Equal(t, "x", cls.Fields[0].Name)
	require.NotNil(t, cls.Fields[0].Initializer)

	require.Len(t, cls.Methods, 1)
	require.Equal(t, "m", cls.Methods[0].Name)
	require.NotNil(t, cls.Methods[0].Body)
	require.Empty(t, cls.Methods[0].Body.Statements)
}

func TestScenario5IfElseIfRightNested(t *testing.T) {
	src, diags, _ := parseOne(t, `if (a) b; else if (c) d;`)
	require.Equal(t, 0, diags.Len())
	require.Len(t, src.Statements, 1)

	outer, ok := src.Statements[0].(*ast.IfStmt)
	require.True(t, ok)
	require.NotNil(t, outer.Else)

	inner, ok := outer.Else.(*ast.IfStmt)
	require.True(t, ok)
	require.Nil(t, inner.Else)
}

func TestScenario6NewExpressionWithArgs(t *testing.T) {
	src, diags, _ := parseOne(t, `new Foo<T>(1, 2);`)
	require.Equal(t, 0, diags.Len())
	require.Len(t, src.Statements, 1)

	exprStmt, ok := src.Statements[0].(*ast.ExpressionStmt)
	require.True(t, ok)

	newExpr, ok := exprStmt.Expr.(*ast.NewExpr)
	require.True(t, ok)
	callee, ok := newExpr.Callee.(*ast.Identifier)
	require.True(t, ok)
	require.Equal(t, "Foo", callee.Name)
	require.Len(t, newExpr.Arguments, 2)
}

func TestDuplicateSourceRejected(t *testing.T) {
	program := ast.Program{}
	src1 := ast.NewSource("a.glyph", []byte(""), true)
	require.NoError(t, program.AddSource(src1))

	src2 := ast.NewSource("a.glyph", []byte(""), true)
	require.Error(t, program.AddSource(src2))
}
