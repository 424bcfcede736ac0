package parser

import (
	"fmt"
	"strconv"

	"github.com/corvid-lang/corvid/internal/ast"
	"github.com/corvid-lang/corvid/internal/diag"
	"github.com/corvid-lang/corvid/internal/lexer"
)

// parseIntegerLiteral parses a base-10 integer literal. A literal that
// does not fit 32 bits is a fatal parse error at the point of
// construction, not a deferred semantic diagnostic.
func (p *Parser) parseIntegerLiteral() ast.Expr {
	value, err := strconv.ParseInt(p.curTok.Value, 10, 32)
	if err != nil {
		p.reportErrorWithHelp(
			fmt.Sprintf("integer literal %s out of range", p.curTok.Raw),
			p.curTok.Span,
			diag.CodeParseIntOutOfRange,
			"integer literals must fit a 32-bit signed integer",
		)
		return nil
	}
	return ast.NewIntLit(p.curTok.Value, int32(value), p.curTok.Span)
}

// parseStringLiteral splits the literal into text and interpolation
// segments and parses each embedded expression with a sub-parser whose
// lexer is rebased into the literal, so spans inside ${...} point at
// the original source.
func (p *Parser) parseStringLiteral() ast.Expr {
	segments, lexErr := lexer.SplitString(p.curTok.Value, p.curTok.Span)
	if lexErr != nil {
		p.reportError(lexErr.Message, lexErr.Span, lexErr.ToDiagnostic().Code)
		return nil
	}

	lit := &ast.StringLit{}
	lit.SetSpan(p.curTok.Span)

	for _, seg := range segments {
		part := &ast.StringPart{}
		part.SetSpan(seg.Span)

		if seg.Interp {
			expr, ok := p.parseInterpolatedExpr(seg)
			if !ok {
				return nil
			}
			part.Expr = expr
		} else {
			part.Text = seg.Text
		}
		lit.Parts = append(lit.Parts, part)
	}
	return lit
}

// parseInterpolatedExpr parses one ${...} segment with the full
// expression grammar. Errors from the sub-parse carry spans relative to
// the enclosing module and abort the outer parse.
func (p *Parser) parseInterpolatedExpr(seg lexer.StringPart) (ast.Expr, bool) {
	sub := lexer.NewAt(seg.Text, seg.Span.Line, seg.Span.Column, seg.Span.Start)
	if p.module != "" {
		sub.SetFilename(p.module)
	}

	inner := newFromLexer(sub, p.module)
	expr, err := inner.ParseExpr()
	if err != nil {
		p.errors = append(p.errors, inner.errors...)
		if len(p.errors) == 0 {
			p.reportError("malformed interpolation", seg.Span, diag.CodeParseBadInterpolation)
		}
		p.fatal = true
		return nil, false
	}
	return expr, true
}
