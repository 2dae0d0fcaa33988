// Statement and declaration node variants, grounded on
// compiler/internal/frontend/ast/stmt.go's Program/VarDeclStmt/
// AssignmentStmt/TypeDeclStmt/ReturnStmt/ImportStmt/ModuleDeclStmt
// shapes, extended to the full statement set spec.md §3/§4.4-4.5 names.
package ast

type BlockStmt struct {
	Header
	Statements []Statement
}

func (b *BlockStmt) statementNode() {}

type BreakStmt struct {
	Header
	Label string
}

func (b *BreakStmt) statementNode() {}

type ContinueStmt struct {
	Header
	Label string
}

func (c *ContinueStmt) statementNode() {}

type DoWhileStmt struct {
	Header
	Body      Statement
	Condition Expression
}

func (d *DoWhileStmt) statementNode() {}

type EmptyStmt struct{ Header }

func (e *EmptyStmt) statementNode() {}

type ExpressionStmt struct {
	Header
	Expr Expression
}

func (e *ExpressionStmt) statementNode() {}

// ForStmt's Init is either an ExpressionStmt or a VariableStmt, per
// spec.md §4.4 ("initializer must be either an expression statement or
// a variable statement").
type ForStmt struct {
	Header
	Init      Statement
	Condition Expression
	Post      Expression
	Body      Statement
}

func (f *ForStmt) statementNode() {}

type IfStmt struct {
	Header
	Condition Expression
	Then      Statement
	Else      Statement
}

func (i *IfStmt) statementNode() {}

type ReturnStmt struct {
	Header
	Value Expression
}

func (r *ReturnStmt) statementNode() {}

type SwitchCase struct {
	Header
	Test       Expression // nil for `default`
	Statements []Statement
}

func (s *SwitchCase) Kind() NodeKind { return KindSwitchCase }

type SwitchStmt struct {
	Header
	Discriminant Expression
	Cases        []*SwitchCase
}

func (s *SwitchStmt) statementNode() {}

type ThrowStmt struct {
	Header
	Value Expression
}

func (t *ThrowStmt) statementNode() {}

// TryStmt requires at least one of Catch/Finally to be non-nil
// (spec.md §4.4).
type TryStmt struct {
	Header
	Body         *BlockStmt
	CatchBinding string // empty if there is no catch clause
	HasCatch     bool
	Catch        *BlockStmt
	Finally      *BlockStmt
}

func (t *TryStmt) statementNode() {}

type WhileStmt struct {
	Header
	Condition Expression
	Body      Statement
}

func (w *WhileStmt) statementNode() {}

// VariableDeclarator is one `ident (: Type)? (= Expr)?` entry.
type VariableDeclarator struct {
	Header
	Name        string
	Type        *TypeNode // nil if the type annotation was omitted
	Initializer Expression
}

func (v *VariableDeclarator) Kind() NodeKind { return KindVariableDeclarator }

type VariableStmt struct {
	Header
	Keyword     string // "const", "let", or "var"
	Declarators []*VariableDeclarator
	Modifiers   []Modifier
}

func (v *VariableStmt) statementNode() {}

type EnumMember struct {
	Header
	Name  string
	Value Expression // nil if unspecified
}

func (e *EnumMember) Kind() NodeKind { return KindEnumMember }

type EnumDecl struct {
	Header
	Name      string
	IsConst   bool
	Members   []*EnumMember
	Modifiers []Modifier
}

func (e *EnumDecl) statementNode() {}

type Parameter struct {
	Header
	Name        string
	Type        *TypeNode
	Default     Expression
	IsSpread    bool
}

func (p *Parameter) Kind() NodeKind { return KindParameter }

type FunctionDecl struct {
	Header
	Name           string
	TypeParameters []*TypeParameter
	Parameters     []*Parameter
	ReturnType     *TypeNode
	Body           *BlockStmt // nil for an ambient declaration
	Modifiers      []Modifier
	Decorators     []*Decorator
}

func (f *FunctionDecl) statementNode() {}

// Field is a class member that is not distinguished by a trailing `(`.
type Field struct {
	Header
	Name        string
	Type        *TypeNode
	Initializer Expression
	Modifiers   []Modifier
}

func (f *Field) Kind() NodeKind { return KindField }

// Method is a class member distinguished by a trailing `(`.
type Method struct {
	Header
	Name           string
	TypeParameters []*TypeParameter
	Parameters     []*Parameter
	ReturnType     *TypeNode
	Body           *BlockStmt
	Modifiers      []Modifier
}

func (m *Method) Kind() NodeKind { return KindMethod }

type ClassDecl struct {
	Header
	Name           string
	IsAbstract     bool
	TypeParameters []*TypeParameter
	Extends        *TypeNode
	Implements     []*TypeNode
	Fields         []*Field
	Methods        []*Method
	Modifiers      []Modifier
	Decorators     []*Decorator
}

func (c *ClassDecl) statementNode() {}

type ImportSpecifier struct {
	Header
	Name  string
	Alias string // equal to Name when no `as` clause is present
}

func (i *ImportSpecifier) Kind() NodeKind { return KindImportSpecifier }

type ImportStmt struct {
	Header
	Specifiers []*ImportSpecifier
	FromPath   string
	Modifiers  []Modifier
}

func (i *ImportStmt) statementNode() {}

type ExportSpecifier struct {
	Header
	Name  string
	Alias string
}

func (e *ExportSpecifier) Kind() NodeKind { return KindExportSpecifier }

// ExportStmt covers both `export { ... };` and `export { ... } from "...";`
// per spec.md §4.5 (the latter sets FromPath non-empty).
type ExportStmt struct {
	Header
	Specifiers []*ExportSpecifier
	FromPath   string
	HasFrom    bool
}

func (e *ExportStmt) statementNode() {}

// ExportImportStmt is the `export import ident = ident;` re-export alias
// form.
type ExportImportStmt struct {
	Header
	Alias  string
	Target string
}

func (e *ExportImportStmt) statementNode() {}

// TypeAliasStmt is the recoverable stub produced for `type X = Y;`
// (spec.md §9 Open Question; decision recorded in DESIGN.md).
type TypeAliasStmt struct {
	Header
	Name string
}

func (t *TypeAliasStmt) statementNode() {}
