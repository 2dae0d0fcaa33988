package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glyphlang/glyph/internal/lexer"
	"github.com/glyphlang/glyph/internal/report"
	"github.com/glyphlang/glyph/internal/source"
)

// stubRef is a minimal source.Ref for lexer tests, grounded on the same
// normalized-path/Text contract ast.Source implements.
type stubRef struct {
	path, text string
}

func (s stubRef) NormalizedPath() string { return s.path }
func (s stubRef) Text() string           { return s.text }

func newLexer(text string) (*lexer.Lexer, *report.Store) {
	diags := &report.Store{}
	return lexer.New(stubRef{path: "test.ts", text: text}, diags), diags
}

func TestLexerPunctuatorsAndOperators(t *testing.T) {
	l, diags := newLexer("a += 1 ** 2 => b");
	kinds := []lexer.TOKEN{}
	for {
		tok := l.Next()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == lexer.EOF_TOKEN {
			break
		}
	}
	require.Equal(t, []lexer.TOKEN{
		lexer.IDENTIFIER_TOKEN, lexer.PLUS_EQUALS_TOKEN, lexer.INTEGER_TOKEN,
		lexer.EXP_TOKEN, lexer.INTEGER_TOKEN, lexer.ARROW_TOKEN, lexer.IDENTIFIER_TOKEN,
		lexer.EOF_TOKEN,
	}, kinds)
	require.Equal(t, 0, diags.Len())
}

func TestLexerKeywordsVsIdentifiers(t *testing.T) {
	l, _ := newLexer("let x = function")
	require.Equal(t, lexer.LET_TOKEN, l.Next().Kind)
	require.Equal(t, lexer.IDENTIFIER_TOKEN, l.Next().Kind)
	require.Equal(t, lexer.EQUALS_TOKEN, l.Next().Kind)
	require.Equal(t, lexer.FUNCTION_TOKEN, l.Next().Kind)
}

func TestLexerNumericLiterals(t *testing.T) {
	l, diags := newLexer("0xFF 0o17 0b101 3.14 1e10 42")
	tok := l.Next()
	require.Equal(t, lexer.INTEGER_TOKEN, tok.Kind)
	v, err := lexer.DecodeInteger(tok.Value)
	require.NoError(t, err)
	require.Equal(t, uint64(255), v)

	require.Equal(t, lexer.INTEGER_TOKEN, l.Next().Kind) // 0o17
	require.Equal(t, lexer.INTEGER_TOKEN, l.Next().Kind) // 0b101

	tok = l.Next()
	require.Equal(t, lexer.FLOAT_TOKEN, tok.Kind)
	f, err := lexer.DecodeFloat(tok.Value)
	require.NoError(t, err)
	require.InDelta(t, 3.14, f, 1e-9)

	tok = l.Next()
	require.Equal(t, lexer.FLOAT_TOKEN, tok.Kind) // 1e10

	tok = l.Next()
	require.Equal(t, lexer.INTEGER_TOKEN, tok.Kind) // 42
	require.Equal(t, 0, diags.Len())
}

func TestLexerStringEscapes(t *testing.T) {
	l, diags := newLexer(`"a\nb\tc\\d\"e"`)
	tok := l.Next()
	require.Equal(t, lexer.STRING_TOKEN, tok.Kind)
	require.Equal(t, "a\nb\tc\\d\"e", tok.Value)
	require.Equal(t, 0, diags.Len())
}

func TestLexerUnterminatedStringReportsDiagnostic(t *testing.T) {
	l, diags := newLexer(`"unterminated`)
	l.Next()
	require.Equal(t, 1, diags.Len())
	require.Equal(t, report.CodeUnterminatedBlock, diags.All()[0].Code)
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	l, _ := newLexer("foo bar")
	peeked := l.Peek()
	require.Equal(t, lexer.IDENTIFIER_TOKEN, peeked.Kind)
	require.Equal(t, "foo", peeked.Value)
	next := l.Next()
	require.Equal(t, peeked, next)
	require.Equal(t, "bar", l.Next().Value)
}

func TestLexerMarkReset(t *testing.T) {
	l, _ := newLexer("a b c")
	require.Equal(t, "a", l.Next().Value)
	l.Mark()
	require.Equal(t, "b", l.Next().Value)
	require.Equal(t, "c", l.Next().Value)
	l.Reset()
	require.Equal(t, "b", l.Next().Value)
	require.Equal(t, "c", l.Next().Value)
}

func TestLexerNewlineTracking(t *testing.T) {
	l, _ := newLexer("a\nb")
	first := l.Next()
	require.False(t, first.PrecededByNewline)
	second := l.Next()
	require.True(t, second.PrecededByNewline)
}

func TestLexerRescanAsRegexp(t *testing.T) {
	l, _ := newLexer("/ab\\/c/gi")
	div := l.Next()
	require.Equal(t, lexer.DIV_TOKEN, div.Kind)

	tok, ok := l.RescanAsRegexp(div)
	require.True(t, ok)
	require.Equal(t, lexer.REGEXP_TOKEN, tok.Kind)
	require.Equal(t, `/ab\/c/gi`, tok.Value)
	require.Equal(t, lexer.EOF_TOKEN, l.Next().Kind)
}

func TestLexerLineComment(t *testing.T) {
	l, _ := newLexer("a // comment\nb")
	require.Equal(t, "a", l.Next().Value)
	require.Equal(t, "b", l.Next().Value)
}

func TestLexerBlockComment(t *testing.T) {
	l, _ := newLexer("a /* multi\nline */ b")
	require.Equal(t, "a", l.Next().Value)
	tok := l.Next()
	require.Equal(t, "b", tok.Value)
	require.True(t, tok.PrecededByNewline)
}

var _ source.Ref = stubRef{}
