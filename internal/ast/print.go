package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes an indented tree dump of n to w. One node per line,
// children indented two spaces.
func Fprint(w io.Writer, n Node) {
	p := printer{w: w}
	p.node(n, 0)
}

// Dump returns the tree dump of n as a string.
func Dump(n Node) string {
	var sb strings.Builder
	Fprint(&sb, n)
	return sb.String()
}

type printer struct {
	w io.Writer
}

func (p *printer) line(depth int, format string, args ...any) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func (p *printer) stmts(label string, stmts []Stmt, depth int) {
	if len(stmts) == 0 {
		return
	}
	p.line(depth, "%s:", label)
	for _, s := range stmts {
		p.node(s, depth+1)
	}
}

func (p *printer) typeFields(fields []*TypeField, depth int) {
	for _, f := range fields {
		if f.Name != nil {
			p.line(depth, "field %s", f.Name.Name)
		} else {
			p.line(depth, "field")
		}
		p.node(f.Type, depth+1)
	}
}

func (p *printer) node(n Node, depth int) {
	switch n := n.(type) {
	case *File:
		p.line(depth, "file")
		for _, d := range n.Decls {
			p.node(d, depth+1)
		}

	case *ImportDecl:
		segs := make([]string, len(n.Path))
		for i, s := range n.Path {
			segs[i] = s.Name
		}
		p.line(depth, "import %s", strings.Join(segs, "."))

	case *TypeDecl:
		p.line(depth, "type %s%s", n.Name.Name, upperList(n.TypeParams))
		p.node(n.Rhs, depth+1)

	case *SumRhs:
		for _, c := range n.Constructors {
			p.line(depth, "constructor %s", c.Name.Name)
			p.typeFields(c.Named, depth+1)
			for _, t := range c.Positional {
				p.node(t, depth+1)
			}
		}

	case *ProductRhs:
		p.typeFields(n.Fields, depth)

	case *FnDecl:
		name := n.Name.Name
		if n.TypeName != nil {
			name = n.TypeName.Name + "." + name
		}
		attrs := upperList(n.TypeParams)
		if n.Self {
			attrs += " self"
		}
		p.line(depth, "fn %s%s", name, attrs)
		for _, pr := range n.Predicates {
			p.line(depth+1, "predicate:")
			p.node(pr, depth+2)
		}
		for _, param := range n.Params {
			p.line(depth+1, "param %s", param.Name.Name)
			p.node(param.Type, depth+2)
		}
		if n.ReturnType != nil {
			p.line(depth+1, "returns:")
			p.node(n.ReturnType, depth+2)
		}
		p.stmts("body", n.Body, depth+1)

	case *LetStmt:
		p.line(depth, "let")
		p.node(n.Pat, depth+1)
		if n.Type != nil {
			p.node(n.Type, depth+1)
		}
		p.node(n.Value, depth+1)

	case *AssignStmt:
		p.line(depth, "assign %s", n.Op)
		p.node(n.Target, depth+1)
		p.node(n.Value, depth+1)

	case *ExprStmt:
		p.node(n.Expr, depth)

	case *ForStmt:
		p.line(depth, "for %s in", n.Var.Name)
		p.node(n.Iter, depth+1)
		p.stmts("body", n.Body, depth+1)

	case *WhileStmt:
		p.line(depth, "while")
		p.node(n.Cond, depth+1)
		p.stmts("body", n.Body, depth+1)

	case *NamedType:
		p.line(depth, "type-ref %s", n.Name.Name)
		for _, a := range n.Args {
			p.node(a, depth+1)
		}

	case *RecordType:
		p.line(depth, "record-type")
		p.typeFields(n.Fields, depth+1)

	case *Ident:
		p.line(depth, "ident %s", n.Name)

	case *UpperIdent:
		p.line(depth, "upper-ident %s", n.Name)

	case *SelfExpr:
		p.line(depth, "self")

	case *IntLit:
		p.line(depth, "int %d", n.Value)

	case *StringLit:
		p.line(depth, "string")
		for _, part := range n.Parts {
			if part.Expr != nil {
				p.line(depth+1, "interp:")
				p.node(part.Expr, depth+2)
			} else {
				p.line(depth+1, "text %s", strconv.Quote(part.Text))
			}
		}

	case *RecordExpr:
		p.line(depth, "record")
		for _, f := range n.Fields {
			if f.Name != nil {
				p.line(depth+1, "field %s", f.Name.Name)
			} else {
				p.line(depth+1, "field")
			}
			p.node(f.Value, depth+2)
		}

	case *IndexExpr:
		p.line(depth, "index")
		p.node(n.Target, depth+1)
		p.node(n.Index, depth+1)

	case *CallExpr:
		p.line(depth, "call")
		p.node(n.Callee, depth+1)
		for _, a := range n.Args {
			p.node(a, depth+1)
		}

	case *FieldExpr:
		p.line(depth, "field-select %s", n.Field.Name)
		p.node(n.Target, depth+1)

	case *ConstrSelectExpr:
		if t := n.Type(); t != nil {
			p.line(depth, "constr-select %s.%s", t.Name, n.Constr.Name)
		} else {
			p.line(depth, "constr-select ?.%s", n.Constr.Name)
			p.node(n.Target, depth+1)
		}

	case *RangeExpr:
		p.line(depth, "range")
		p.node(n.Low, depth+1)
		p.node(n.High, depth+1)

	case *PrefixExpr:
		p.line(depth, "prefix %s", n.Op)
		p.node(n.Operand, depth+1)

	case *InfixExpr:
		p.line(depth, "infix %s", n.Op)
		p.node(n.Left, depth+1)
		p.node(n.Right, depth+1)

	case *ReturnExpr:
		p.line(depth, "return")
		if n.Value != nil {
			p.node(n.Value, depth+1)
		}

	case *IfExpr:
		p.line(depth, "if")
		for _, b := range n.Branches {
			p.line(depth+1, "branch:")
			p.node(b.Cond, depth+2)
			p.stmts("body", b.Body, depth+2)
		}
		p.stmts("else", n.Else, depth+1)

	case *MatchExpr:
		p.line(depth, "match")
		p.node(n.Subject, depth+1)
		for _, arm := range n.Arms {
			p.line(depth+1, "arm:")
			p.node(arm.Pat, depth+2)
			p.stmts("body", arm.Body, depth+2)
		}

	case *VarPat:
		p.line(depth, "pat-var %s", n.Name.Name)

	case *WildcardPat:
		p.line(depth, "pat-wildcard")

	case *ConstrPat:
		name := n.Name.Name
		if n.Type != nil {
			name = n.Type.Name + "." + name
		}
		p.line(depth, "pat-constr %s", name)
		p.patFields(n.Fields, depth+1)

	case *RecordPat:
		p.line(depth, "pat-record")
		p.patFields(n.Fields, depth+1)

	case *StringPat:
		p.line(depth, "pat-string %s", strconv.Quote(n.Value))

	case *StringPrefixPat:
		p.line(depth, "pat-string-prefix %s %s", strconv.Quote(n.Prefix), n.Rest.Name)

	case *OrPat:
		p.line(depth, "pat-or")
		p.node(n.Left, depth+1)
		p.node(n.Right, depth+1)

	default:
		p.line(depth, "%T", n)
	}
}

func (p *printer) patFields(fields []*PatField, depth int) {
	for _, f := range fields {
		if f.Name != nil {
			p.line(depth, "field %s", f.Name.Name)
			p.node(f.Pat, depth+1)
		} else {
			p.node(f.Pat, depth)
		}
	}
}

func upperList(ids []*UpperIdent) string {
	if len(ids) == 0 {
		return ""
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.Name
	}
	return "[" + strings.Join(names, ", ") + "]"
}
