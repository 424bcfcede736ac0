package ast

import (
	"strings"
	"testing"

	"github.com/corvid-lang/corvid/internal/lexer"
)

func span(line, column int) lexer.Span {
	return lexer.Span{Line: line, Column: column}
}

func letAddStmt() *LetStmt {
	// let total = count + 1
	return &LetStmt{
		Pat: &VarPat{Name: NewIdent("total", span(1, 5))},
		Value: NewInfixExpr(
			lexer.PLUS,
			NewIdent("count", span(1, 13)),
			NewIntLit("1", 1, span(1, 21)),
			span(1, 13),
		),
	}
}

func TestWalkPreOrder(t *testing.T) {
	stmt := letAddStmt()

	var order []string
	Walk(stmt, func(n Node) bool {
		switch n := n.(type) {
		case *LetStmt:
			order = append(order, "let")
		case *VarPat:
			order = append(order, "pat")
		case *Ident:
			order = append(order, "ident:"+n.Name)
		case *InfixExpr:
			order = append(order, "infix")
		case *IntLit:
			order = append(order, "int")
		}
		return true
	})

	want := []string{"let", "pat", "ident:total", "infix", "ident:count", "int"}
	if len(order) != len(want) {
		t.Fatalf("visited %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("visited %v, want %v", order, want)
		}
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	stmt := letAddStmt()

	var visited int
	Walk(stmt, func(n Node) bool {
		visited++
		_, isInfix := n.(*InfixExpr)
		return !isInfix
	})

	// let, pat-var, its ident, infix; the infix operands are pruned.
	if visited != 4 {
		t.Fatalf("visited %d nodes, want 4", visited)
	}
}

func TestWalkNilRoot(t *testing.T) {
	Walk(nil, func(Node) bool {
		t.Fatalf("visit called for nil root")
		return true
	})
}

func TestDumpShape(t *testing.T) {
	fn := &FnDecl{
		TypeName: NewUpperIdent("Vec", span(1, 4)),
		Name:     NewIdent("push", span(1, 8)),
		Self:     true,
		Params: []*Param{{
			Name: NewIdent("elem", span(1, 19)),
			Type: &NamedType{Name: NewUpperIdent("T", span(1, 25))},
		}},
		Body: []Stmt{&ExprStmt{Expr: NewIdent("elem", span(2, 5))}},
	}

	got := Dump(fn)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	want := []string{
		"fn Vec.push self",
		"  param elem",
		"    type-ref T",
		"  body:",
		"    ident elem",
	}
	if len(lines) != len(want) {
		t.Fatalf("dump:\n%s\nwant %d lines", got, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestDumpOrPattern(t *testing.T) {
	pat := &OrPat{
		Left: &ConstrPat{Name: NewUpperIdent("Red", span(1, 1))},
		Right: &OrPat{
			Left:  &ConstrPat{Name: NewUpperIdent("Green", span(1, 7))},
			Right: &ConstrPat{Name: NewUpperIdent("Blue", span(1, 15))},
		},
	}

	got := Dump(pat)
	want := "pat-or\n" +
		"  pat-constr Red\n" +
		"  pat-or\n" +
		"    pat-constr Green\n" +
		"    pat-constr Blue\n"
	if got != want {
		t.Fatalf("dump:\n%s\nwant:\n%s", got, want)
	}
}

func TestConstrSelectTypeResolution(t *testing.T) {
	sel := &ConstrSelectExpr{
		Target: NewUpperIdent("Color", span(1, 1)),
		Constr: NewUpperIdent("Red", span(1, 7)),
	}
	if got := sel.Type(); got == nil || got.Name != "Color" {
		t.Fatalf("type not recovered from upper-ident target: %+v", got)
	}

	bad := &ConstrSelectExpr{
		Target: NewIdent("color", span(1, 1)),
		Constr: NewUpperIdent("Red", span(1, 7)),
	}
	if bad.Type() != nil {
		t.Fatalf("non-type target must yield nil")
	}
}

func TestFnDeclIsMethod(t *testing.T) {
	free := &FnDecl{Name: NewIdent("main", span(1, 4))}
	if free.IsMethod() {
		t.Errorf("free function reported as method")
	}
	method := &FnDecl{
		TypeName: NewUpperIdent("Vec", span(1, 4)),
		Name:     NewIdent("len", span(1, 8)),
	}
	if !method.IsMethod() {
		t.Errorf("method not reported as method")
	}
}
