package ast

import "github.com/corvid-lang/corvid/internal/lexer"

// Node represents any AST node with an associated source span.
type Node interface {
	Span() lexer.Span
	SetSpan(lexer.Span)
}

// Expr represents an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Decl represents a top-level declaration.
type Decl interface {
	Node
	declNode()
}

// Pattern represents a match pattern node.
type Pattern interface {
	Node
	patternNode()
}

// TypeExpr represents a type annotation expression.
type TypeExpr interface {
	Node
	typeNode()
}

// node carries the source span shared by every AST node. Embedding it
// gives each node Span/SetSpan without repeating the field; it is the
// single place span bookkeeping lives.
type node struct {
	span lexer.Span
}

// Span returns the source range the node was parsed from.
func (n *node) Span() lexer.Span { return n.span }

// SetSpan updates the node span.
func (n *node) SetSpan(span lexer.Span) { n.span = span }

func at(span lexer.Span) node { return node{span: span} }

// File represents a parsed compilation unit.
type File struct {
	node
	Decls []Decl
}

// NewFile constructs a file node with the provided span.
func NewFile(decls []Decl, span lexer.Span) *File {
	return &File{node: at(span), Decls: decls}
}

// Ident represents a lowercase-initial identifier: variables, fields,
// parameters, function names.
type Ident struct {
	node
	Name string
}

// NewIdent constructs an identifier node.
func NewIdent(name string, span lexer.Span) *Ident {
	return &Ident{node: at(span), Name: name}
}

func (*Ident) exprNode() {}

// UpperIdent represents an uppercase-initial identifier: type names,
// constructor names, import path segments.
type UpperIdent struct {
	node
	Name string
}

// NewUpperIdent constructs an uppercase identifier node.
func NewUpperIdent(name string, span lexer.Span) *UpperIdent {
	return &UpperIdent{node: at(span), Name: name}
}

func (*UpperIdent) exprNode() {}

// ImportDecl represents a module import with a dotted uppercase path.
type ImportDecl struct {
	node
	Path []*UpperIdent
}

func (*ImportDecl) declNode() {}

// TypeDecl represents a user type definition. Rhs is either a
// constructor list (sum) or a named-field record (product).
type TypeDecl struct {
	node
	Name       *UpperIdent
	TypeParams []*UpperIdent
	Rhs        TypeRhs
}

func (*TypeDecl) declNode() {}

// TypeRhs is the right-hand side of a type declaration.
type TypeRhs interface {
	Node
	typeRhsNode()
}

// SumRhs represents a sum type body: one or more constructors.
type SumRhs struct {
	node
	Constructors []*ConstructorDecl
}

func (*SumRhs) typeRhsNode() {}

// ProductRhs represents a product type body: a block of named fields.
type ProductRhs struct {
	node
	Fields []*TypeField
}

func (*ProductRhs) typeRhsNode() {}

// ConstructorDecl represents one sum variant. A bare constructor has
// both field slices nil; Named and Positional are mutually exclusive.
type ConstructorDecl struct {
	node
	Name       *UpperIdent
	Named      []*TypeField
	Positional []TypeExpr
}

// FnDecl represents a function or method definition. TypeName is nil
// for free functions. Self marks a method receiver; the receiver does
// not appear in Params.
type FnDecl struct {
	node
	TypeName   *UpperIdent
	Name       *Ident
	TypeParams []*UpperIdent
	Predicates []TypeExpr
	Self       bool
	Params     []*Param
	ReturnType TypeExpr
	Body       []Stmt
}

func (*FnDecl) declNode() {}

// IsMethod reports whether the function is declared on a type.
func (d *FnDecl) IsMethod() bool { return d.TypeName != nil }

// Param represents a function parameter.
type Param struct {
	node
	Name *Ident
	Type TypeExpr
}

// LetStmt represents a let binding. Type is nil when no annotation was
// written.
type LetStmt struct {
	node
	Pat   Pattern
	Type  TypeExpr
	Value Expr
}

func (*LetStmt) stmtNode() {}

// AssignStmt represents an assignment with one of the operators
// ASSIGN, PLUS_EQ, or MINUS_EQ. Target legality is a later-phase
// concern; syntactically any inline expression is accepted.
type AssignStmt struct {
	node
	Target Expr
	Op     lexer.TokenType
	Value  Expr
}

func (*AssignStmt) stmtNode() {}

// ExprStmt represents an expression used as a statement.
type ExprStmt struct {
	node
	Expr Expr
}

func (*ExprStmt) stmtNode() {}

// ForStmt represents a for-in loop. The loop variable's type is always
// inferred.
type ForStmt struct {
	node
	Var  *Ident
	Iter Expr
	Body []Stmt
}

func (*ForStmt) stmtNode() {}

// WhileStmt represents a while loop.
type WhileStmt struct {
	node
	Cond Expr
	Body []Stmt
}

func (*WhileStmt) stmtNode() {}

// NamedType represents a type reference with optional type arguments,
// like Vec[T].
type NamedType struct {
	node
	Name *UpperIdent
	Args []TypeExpr
}

func (*NamedType) typeNode() {}

// RecordType represents a parenthesized record type. Field names are
// optional; unnamed fields are positional.
type RecordType struct {
	node
	Fields []*TypeField
}

func (*RecordType) typeNode() {}

// TypeField represents one field of a record type or constructor.
// Name is nil for positional fields.
type TypeField struct {
	node
	Name *Ident
	Type TypeExpr
}
