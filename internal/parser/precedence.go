package parser

import "github.com/glyphlang/glyph/internal/lexer"

// Precedence levels implement spec.md §4.7's 20-level ladder (low to
// high): comma, spread, yield, assignment, conditional, logical-or,
// logical-and, bitwise-or, bitwise-xor, bitwise-and, equality,
// relational (as/in/instanceof), shift, additive, multiplicative,
// exponentiation, unary-prefix, unary-postfix, call, member-access,
// grouping. Unary-prefix operators and grouping are prefix-position-only
// and so have no entry in the binary/postfix table below; they are
// handled directly by parsePrefix. Spread and yield have no rung here
// and no case in parsePrefix, so they are not parsed as expressions.
const (
	precLowest Precedence = iota
	precComma
	precAssignment
	precConditional
	precLogicalOr
	precLogicalAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precExponent
	precPostfix // ++ / --
	precCall    // f(...), f<T>(...)
	precMember  // ., []
)

// Precedence is an operator-precedence-climbing threshold.
type Precedence int

// associativity.
const (
	leftAssoc = iota
	rightAssoc
)

type opInfo struct {
	prec  Precedence
	assoc int
}

// binaryOps maps a binary-operator token to its precedence and
// associativity, per the ladder above. `as`/`in`/`instanceof` sit at
// relational precedence per spec.md §4.7 ("relational (includes as, in,
// instanceof)"); `as` is additionally special-cased in the climb loop
// since it takes a TypeNode on its right, not an Expression.
var binaryOps = map[lexer.TOKEN]opInfo{
	lexer.COMMA_TOKEN: {precComma, leftAssoc},

	lexer.EQUALS_TOKEN:       {precAssignment, rightAssoc},
	lexer.PLUS_EQUALS_TOKEN:  {precAssignment, rightAssoc},
	lexer.MINUS_EQUALS_TOKEN: {precAssignment, rightAssoc},
	lexer.MUL_EQUALS_TOKEN:   {precAssignment, rightAssoc},
	lexer.DIV_EQUALS_TOKEN:   {precAssignment, rightAssoc},
	lexer.MOD_EQUALS_TOKEN:   {precAssignment, rightAssoc},
	lexer.EXP_EQUALS_TOKEN:   {precAssignment, rightAssoc},

	lexer.OR_TOKEN:  {precLogicalOr, leftAssoc},
	lexer.AND_TOKEN: {precLogicalAnd, leftAssoc},

	lexer.BIT_OR_TOKEN:  {precBitOr, leftAssoc},
	lexer.BIT_XOR_TOKEN: {precBitXor, leftAssoc},
	lexer.BIT_AND_TOKEN: {precBitAnd, leftAssoc},

	lexer.DOUBLE_EQUAL_TOKEN: {precEquality, leftAssoc},
	lexer.NOT_EQUAL_TOKEN:    {precEquality, leftAssoc},

	lexer.LESS_TOKEN:          {precRelational, leftAssoc},
	lexer.GREATER_TOKEN:       {precRelational, leftAssoc},
	lexer.LESS_EQUAL_TOKEN:    {precRelational, leftAssoc},
	lexer.GREATER_EQUAL_TOKEN: {precRelational, leftAssoc},
	lexer.IN_TOKEN:            {precRelational, leftAssoc},
	lexer.INSTANCEOF_TOKEN:    {precRelational, leftAssoc},
	lexer.AS_TOKEN:            {precRelational, leftAssoc},

	lexer.SHIFT_LEFT_TOKEN:  {precShift, leftAssoc},
	lexer.SHIFT_RIGHT_TOKEN: {precShift, leftAssoc},

	lexer.PLUS_TOKEN:  {precAdditive, leftAssoc},
	lexer.MINUS_TOKEN: {precAdditive, leftAssoc},

	lexer.MUL_TOKEN: {precMultiplicative, leftAssoc},
	lexer.DIV_TOKEN: {precMultiplicative, leftAssoc},
	lexer.MOD_TOKEN: {precMultiplicative, leftAssoc},

	lexer.EXP_TOKEN: {precExponent, rightAssoc},

	lexer.PLUS_PLUS_TOKEN:   {precPostfix, leftAssoc},
	lexer.MINUS_MINUS_TOKEN: {precPostfix, leftAssoc},

	lexer.QUESTION_TOKEN: {precConditional, rightAssoc},

	lexer.OPEN_PAREN:   {precCall, leftAssoc},
	lexer.DOT_TOKEN:    {precMember, leftAssoc},
	lexer.OPEN_BRACKET: {precMember, leftAssoc},
}

// unaryPrefixOps maps a prefix-operator token to its spelling. All
// unary-prefix operators share one precedence rung (precExponent+1 is
// implicit: parsePrefix always recurses at a threshold above
// precExponent so `-a ** b` parses as `-(a ** b)`, matching the
// language family's usual convention that unary binds looser than `**`
// on its operand).
var unaryPrefixOps = map[lexer.TOKEN]string{
	lexer.PLUS_TOKEN:     "+",
	lexer.MINUS_TOKEN:    "-",
	lexer.NOT_TOKEN:      "!",
	lexer.BIT_NOT_TOKEN:  "~",
	lexer.PLUS_PLUS_TOKEN:   "++",
	lexer.MINUS_MINUS_TOKEN: "--",
}
