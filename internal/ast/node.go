// Package ast defines the tagged-variant AST produced by internal/parser.
// Grounded on the teacher's compiler/internal/frontend/ast package
// (Node/Expression/Statement marker interfaces, each node carrying a
// source location), generalized per spec.md §3/§9 from a class-per-
// node-kind layout into one NodeKind-discriminated sum type with a
// shared Range-carrying header, rather than the teacher's dozens of
// individually-named Go types each re-declaring INode()/Loc().
package ast

import "github.com/glyphlang/glyph/internal/source"

// NodeKind discriminates every AST node variant.
type NodeKind int

const (
	KindInvalid NodeKind = iota

	// Expressions
	KindIdentifier
	KindNullLiteral
	KindTrueLiteral
	KindFalseLiteral
	KindIntegerLiteral
	KindFloatLiteral
	KindStringLiteral
	KindRegexpLiteral
	KindArrayLiteral
	KindParenthesized
	KindUnaryPrefix
	KindUnaryPostfix
	KindBinary
	KindSelect
	KindCall
	KindNew
	KindElementAccess
	KindPropertyAccess
	KindPrefixAssertion
	KindPostfixAssertion

	// Statements
	KindBlock
	KindBreak
	KindContinue
	KindDoWhile
	KindEmpty
	KindExpressionStmt
	KindFor
	KindIf
	KindReturn
	KindSwitch
	KindThrow
	KindTry
	KindWhile
	KindVariableStmt
	KindEnumDecl
	KindFunctionDecl
	KindClassDecl
	KindImport
	KindExport
	KindExportImport
	KindTypeAliasStmt

	// Auxiliary nodes (children of the above, not independently
	// dispatched at statement level, but still Nodes per spec.md §3).
	KindDecorator
	KindModifier
	KindParameter
	KindTypeParameter
	KindField
	KindMethod
	KindVariableDeclarator
	KindEnumMember
	KindSwitchCase
	KindImportSpecifier
	KindExportSpecifier
	KindTypeNode
)

// Node is implemented by every AST node. Header carries the common
// Range/Kind fields every node has per spec.md §3.
type Node interface {
	Kind() NodeKind
	Loc() source.Range
}

// Expression is a Node that can appear where a value is expected.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a Node that can appear in a statement list.
type Statement interface {
	Node
	statementNode()
}

// Header is the shared header embedded by every concrete node type,
// mirroring the teacher's per-node embedded source.Location but unified
// across all node kinds instead of repeated per struct.
type Header struct {
	NodeKind NodeKind
	Range    source.Range

	// parent is the single mutable back-pointer spec.md §3 describes
	// ("a single mutable parent link on top-level statements set once
	// when they are appended to a Source"). It stays nil for every node
	// that is never appended directly to a Source.
	parent *Source
}

func (h Header) Kind() NodeKind     { return h.NodeKind }
func (h Header) Loc() source.Range { return h.Range }

// SetParent sets the node's owning Source. Called exactly once, by
// Source.Append.
func (h *Header) SetParent(s *Source) { h.parent = s }

// Parent returns the node's owning Source, or nil if it was never
// appended directly to one.
func (h *Header) Parent() *Source { return h.parent }

// parentSetter is satisfied by any node embedding *Header, letting
// Source.Append set the back-pointer through the Statement interface
// without each statement type needing its own SetParent method.
type parentSetter interface {
	SetParent(*Source)
}

// Modifier is a single leading keyword on a declaration (export, public,
// static, abstract, get, set, declare, const-enum), carried alongside the
// keyword's own range so diagnostics like "modifier cannot be used here"
// (code 1042) can point at the exact token.
type Modifier struct {
	Header
	Keyword string
}

func (m Modifier) Kind() NodeKind { return KindModifier }

// Decorator is an `@expr(args...)` annotation collected before a
// declaration.
type Decorator struct {
	Header
	Callee Expression
	Args   []Expression
}

func (d Decorator) Kind() NodeKind { return KindDecorator }
