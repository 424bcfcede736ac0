package ast

import "github.com/corvid-lang/corvid/internal/lexer"

// SelfExpr represents the method receiver reference.
type SelfExpr struct {
	node
}

func (*SelfExpr) exprNode() {}

// IntLit represents a base-10 integer literal. Value is range-checked
// at parse time; overflow is a fatal syntax error.
type IntLit struct {
	node
	Text  string
	Value int32
}

// NewIntLit constructs an integer literal node.
func NewIntLit(text string, value int32, span lexer.Span) *IntLit {
	return &IntLit{node: at(span), Text: text, Value: value}
}

func (*IntLit) exprNode() {}

// StringLit represents a string literal, already split into literal
// text and interpolated expression segments.
type StringLit struct {
	node
	Parts []*StringPart
}

func (*StringLit) exprNode() {}

// StringPart is one segment of a string literal. Expr is nil for plain
// text segments; for interpolation segments Text is empty and Expr
// holds the parsed embedded expression.
type StringPart struct {
	node
	Text string
	Expr Expr
}

// RecordExpr represents a record construction. Zero fields is the
// empty record; the one-unnamed-field case never reaches the AST, it
// collapses to plain parenthesization in the parser.
type RecordExpr struct {
	node
	Fields []*RecordField
}

func (*RecordExpr) exprNode() {}

// RecordField is one record construction field. Name is nil for
// positional fields.
type RecordField struct {
	node
	Name  *Ident
	Value Expr
}

// IndexExpr represents array indexing, target[index].
type IndexExpr struct {
	node
	Target Expr
	Index  Expr
}

func (*IndexExpr) exprNode() {}

// CallExpr represents a call expression.
type CallExpr struct {
	node
	Callee Expr
	Args   []Expr
}

func (*CallExpr) exprNode() {}

// FieldExpr represents lowercase field access, target.field.
type FieldExpr struct {
	node
	Target Expr
	Field  *Ident
}

func (*FieldExpr) exprNode() {}

// ConstrSelectExpr represents dotted constructor access, Type.Constr.
// The parser builds it for every .UpperId suffix regardless of target;
// the resolution pass then requires Target to be a bare UpperIdent and
// rejects anything else with a diagnostic. Type returns nil until that
// holds.
type ConstrSelectExpr struct {
	node
	Target Expr
	Constr *UpperIdent
}

func (*ConstrSelectExpr) exprNode() {}

// Type returns the selected type reference, or nil when the target is
// not a bare type name.
func (e *ConstrSelectExpr) Type() *UpperIdent {
	t, _ := e.Target.(*UpperIdent)
	return t
}

// RangeExpr represents an exclusive range, low..high.
type RangeExpr struct {
	node
	Low  Expr
	High Expr
}

func (*RangeExpr) exprNode() {}

// PrefixExpr represents a prefix operator application.
type PrefixExpr struct {
	node
	Op      lexer.TokenType
	Operand Expr
}

func (*PrefixExpr) exprNode() {}

// InfixExpr represents a binary operator application.
type InfixExpr struct {
	node
	Op    lexer.TokenType
	Left  Expr
	Right Expr
}

// NewInfixExpr constructs a binary operator node.
func NewInfixExpr(op lexer.TokenType, left, right Expr, span lexer.Span) *InfixExpr {
	return &InfixExpr{node: at(span), Op: op, Left: left, Right: right}
}

func (*InfixExpr) exprNode() {}

// ReturnExpr represents a return expression, the loosest-binding
// prefix form. Value is nil for a bare return.
type ReturnExpr struct {
	node
	Value Expr
}

func (*ReturnExpr) exprNode() {}

// IfExpr represents a normalized conditional: the initial if and any
// elif branches in order, plus an optional else body. Else is nil when
// no else clause was written.
type IfExpr struct {
	node
	Branches []*IfBranch
	Else     []Stmt
}

func (*IfExpr) exprNode() {}

// IfBranch is one (condition, body) pair of an if expression.
type IfBranch struct {
	node
	Cond Expr
	Body []Stmt
}

// MatchExpr represents a match over a subject expression.
type MatchExpr struct {
	node
	Subject Expr
	Arms    []*MatchArm
}

func (*MatchExpr) exprNode() {}

// MatchArm is one alternative of a match expression. Body holds either
// the indented statement block or the single inline statement.
type MatchArm struct {
	node
	Pat  Pattern
	Body []Stmt
}
