package ast

// VarPat represents a variable binding pattern.
type VarPat struct {
	node
	Name *Ident
}

func (*VarPat) patternNode() {}

// WildcardPat represents the wildcard pattern, _.
type WildcardPat struct {
	node
}

func (*WildcardPat) patternNode() {}

// ConstrPat represents a constructor pattern, optionally qualified by
// its type: Shape.Circle(r) or Circle(r). Fields is nil for a bare
// constructor.
type ConstrPat struct {
	node
	Type   *UpperIdent // nil when unqualified
	Name   *UpperIdent
	Fields []*PatField
}

func (*ConstrPat) patternNode() {}

// RecordPat represents a record pattern: a parenthesized field list
// with no leading constructor name.
type RecordPat struct {
	node
	Fields []*PatField
}

func (*RecordPat) patternNode() {}

// PatField is one sub-pattern of a constructor or record pattern.
// Name is nil for positional sub-patterns.
type PatField struct {
	node
	Name *Ident
	Pat  Pattern
}

// StringPat represents an exact string match pattern.
type StringPat struct {
	node
	Value string
}

func (*StringPat) patternNode() {}

// StringPrefixPat represents a string-prefix pattern that binds the
// remainder: "pfx" rest.
type StringPrefixPat struct {
	node
	Prefix string
	Rest   *Ident
}

func (*StringPrefixPat) patternNode() {}

// OrPat represents pattern alternation. Alternation is
// right-associative: a | b | c nests as a | (b | c).
type OrPat struct {
	node
	Left  Pattern
	Right Pattern
}

func (*OrPat) patternNode() {}
