package parser

import (
	"github.com/corvid-lang/corvid/internal/ast"
	"github.com/corvid-lang/corvid/internal/diag"
)

// resolveDottedAccess validates uppercase dotted selections after the
// tree is built. The grammar accepts `.UpperId` on any target; this
// pass requires the target to be a bare type reference, so Type.Constr
// is legal and anything else gets a structured diagnostic instead of a
// mid-parse abort. Runs once per entry point, in token order, and
// reports only the first violation.
func (p *Parser) resolveDottedAccess(root ast.Node) error {
	var firstErr *ParseError

	ast.Walk(root, func(n ast.Node) bool {
		if firstErr != nil {
			return false
		}
		sel, ok := n.(*ast.ConstrSelectExpr)
		if !ok {
			return true
		}
		if sel.Type() == nil {
			span := sel.Span()
			if span.Filename == "" && p.module != "" {
				span.Filename = p.module
			}
			firstErr = &ParseError{
				Message: "constructor selection requires a type name on the left of `.`",
				Span:    span,
				Code:    diag.CodeParseBadConstructorSelect,
				Help:    "write Type." + sel.Constr.Name + " with a bare uppercase type reference",
			}
			return false
		}
		return true
	})

	if firstErr != nil {
		p.errors = append(p.errors, *firstErr)
		p.fatal = true
		return firstErr
	}
	return nil
}
