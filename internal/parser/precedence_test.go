// Operator-precedence law tests, per spec.md §8.
package parser_test

import (
	"strings"
	"testing"

	"github.com/glyphlang/glyph/internal/ast"
	"github.com/stretchr/testify/require"
)

// sexpr renders an expression as a parenthesized prefix form so the
// precedence laws can be asserted without walking each node shape by
// hand in every test.
func sexpr(e ast.Expression) string {
	switch n := e.(type) {
	case *ast.BinaryExpr:
		return "(" + n.Operator + " " + sexpr(n.Left) + " " + sexpr(n.Right) + ")"
	case *ast.Identifier:
		return n.Name
	case *ast.IntegerLiteral:
		return itoa(n.Value)
	case *ast.CallExpr:
		var parts []string
		for _, a := range n.Arguments {
			parts = append(parts, sexpr(a))
		}
		return "(call " + sexpr(n.Callee) + " " + strings.Join(parts, " ") + ")"
	default:
		return "?"
	}
}

func itoa(v uint64) string {
	if v == 0 {
		return "0"
	}
	digits := []byte{}
	for v > 0 {
		digits = append([]byte{byte('0' + v%10)}, digits...)
		v /= 10
	}
	return string(digits)
}

func parseExprText(t *testing.T, text string) ast.Expression {
	t.Helper()
	src, diags, _ := parseOne(t, "("+text+");")
	require.Equal(t, 0, diags.Len())
	require.Len(t, src.Statements, 1)
	stmt := src.Statements[0].(*ast.ExpressionStmt)
	paren := stmt.Expr.(*ast.ParenthesizedExpr)
	return paren.Inner
}

func TestPrecedenceAdditiveOverMultiplicative(t *testing.T) {
	expr := parseExprText(t, "a + b * c")
	require.Equal(t, "(+ a (* b c))", sexpr(expr))
}

func TestPrecedenceAssignmentRightAssociative(t *testing.T) {
	expr := parseExprText(t, "a = b = c")
	require.Equal(t, "(= a (= b c))", sexpr(expr))
}

func TestPrecedenceExponentRightAssociative(t *testing.T) {
	expr := parseExprText(t, "a ** b ** c")
	require.Equal(t, "(** a (** b c))", sexpr(expr))
}

func TestPrecedenceLessGreaterNotAGenericCall(t *testing.T) {
	expr := parseExprText(t, "a < b > c")
	require.Equal(t, "(> (< a b) c)", sexpr(expr))
}

func TestPrecedenceGenericCallWithOneTypeArgument(t *testing.T) {
	src, diags, _ := parseOne(t, "f<T>(x);")
	require.Equal(t, 0, diags.Len())
	stmt := src.Statements[0].(*ast.ExpressionStmt)
	call, ok := stmt.Expr.(*ast.CallExpr)
	require.True(t, ok)
	require.Len(t, call.TypeArguments, 1)
	require.Equal(t, "T", call.TypeArguments[0].Name)
	callee, ok := call.Callee.(*ast.Identifier)
	require.True(t, ok)
	require.Equal(t, "f", callee.Name)
}
