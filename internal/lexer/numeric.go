package lexer

import (
	"strconv"
	"strings"
)

// Numeric literal scanning is adapted from the teacher's
// old_codebase/compiler/internal/utils/numeric/numeric.go regex patterns,
// minus the leading `-?`: spec.md §4.2 folds the sign in at the
// prefix-expression parser rather than the lexer, so a literal never
// itself carries a minus sign.

func isDigit(c byte) bool    { return c >= '0' && c <= '9' }
func isHexDigit(c byte) bool { return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') }
func isOctDigit(c byte) bool { return c >= '0' && c <= '7' }
func isBinDigit(c byte) bool { return c == '0' || c == '1' }

// scanDigitRun consumes a maximal run of digits (per isDigit) allowing `_`
// as a separator between digits, matching the teacher's
// `(?:digit|_digit)*` pattern shape. Returns the new cursor.
func scanDigitRun(text string, pos int, isDigit func(byte) bool) int {
	for pos < len(text) {
		c := text[pos]
		if isDigit(c) {
			pos++
			continue
		}
		if c == '_' && pos+1 < len(text) && isDigit(text[pos+1]) {
			pos += 2
			continue
		}
		break
	}
	return pos
}

// scanNumber scans a numeric literal starting at pos (text[pos] must be an
// ASCII digit). It returns the literal spelling, whether it is a float, and
// the cursor just past the literal.
func scanNumber(text string, pos int) (literal string, isFloat bool, end int) {
	start := pos

	if text[pos] == '0' && pos+1 < len(text) {
		switch text[pos+1] {
		case 'x', 'X':
			pos = scanDigitRun(text, pos+2, isHexDigit)
			return text[start:pos], false, pos
		case 'o', 'O':
			pos = scanDigitRun(text, pos+2, isOctDigit)
			return text[start:pos], false, pos
		case 'b', 'B':
			pos = scanDigitRun(text, pos+2, isBinDigit)
			return text[start:pos], false, pos
		}
	}

	pos = scanDigitRun(text, pos, isDigit)

	if pos < len(text) && text[pos] == '.' && pos+1 < len(text) && isDigit(text[pos+1]) {
		isFloat = true
		pos = scanDigitRun(text, pos+1, isDigit)
	}

	if pos < len(text) && (text[pos] == 'e' || text[pos] == 'E') {
		expPos := pos + 1
		if expPos < len(text) && (text[expPos] == '+' || text[expPos] == '-') {
			expPos++
		}
		if expPos < len(text) && isDigit(text[expPos]) {
			isFloat = true
			pos = scanDigitRun(text, expPos, isDigit)
		}
	}

	return text[start:pos], isFloat, pos
}

// DecodeInteger folds an integer literal's spelling (as produced by
// scanNumber) down to its unsigned 64-bit magnitude, regardless of base.
func DecodeInteger(literal string) (uint64, error) {
	literal = strings.ReplaceAll(literal, "_", "")
	if len(literal) > 1 && literal[0] == '0' {
		switch literal[1] {
		case 'x', 'X':
			return strconv.ParseUint(literal[2:], 16, 64)
		case 'o', 'O':
			return strconv.ParseUint(literal[2:], 8, 64)
		case 'b', 'B':
			return strconv.ParseUint(literal[2:], 2, 64)
		}
	}
	return strconv.ParseUint(literal, 10, 64)
}

// DecodeFloat parses a float literal's spelling to a float64.
func DecodeFloat(literal string) (float64, error) {
	literal = strings.ReplaceAll(literal, "_", "")
	return strconv.ParseFloat(literal, 64)
}
