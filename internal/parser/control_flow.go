package parser

import (
	"github.com/corvid-lang/corvid/internal/ast"
	"github.com/corvid-lang/corvid/internal/lexer"
)

// parseBlockExpr parses one of the block expression forms. Block
// expressions never appear mid-expression: they are reachable only
// from statement position and as a let right-hand side, so they are
// dispatched here rather than registered as Pratt prefix forms.
func (p *Parser) parseBlockExpr() ast.Expr {
	switch p.curTok.Type {
	case lexer.IF:
		return p.parseIfExpr()
	case lexer.MATCH:
		return p.parseMatchExpr()
	default:
		p.reportExpected("`if` or `match`", p.curTok)
		return nil
	}
}

// parseIfExpr parses `if expr: block {elif expr: block} [else: block]`
// and normalizes it: the initial if is prepended to the elif branches,
// forming one ordered (condition, body) list, with the else body kept
// separately. No else is required and there is no fallthrough.
func (p *Parser) parseIfExpr() ast.Expr {
	start := p.curTok.Span
	end := start

	expr := &ast.IfExpr{}
	for {
		branchStart := p.curTok.Span

		p.nextToken()
		cond := p.parseExpression(precedenceLowest)
		if cond == nil {
			return nil
		}
		if !p.expectPeek(lexer.COLON) {
			return nil
		}
		body, bodyEnd, ok := p.parseIndentedBlock()
		if !ok {
			return nil
		}

		branch := &ast.IfBranch{Cond: cond, Body: body}
		branch.SetSpan(mergeSpan(branchStart, bodyEnd))
		expr.Branches = append(expr.Branches, branch)
		end = bodyEnd

		if p.curTok.Type != lexer.ELIF {
			break
		}
	}

	if p.curTok.Type == lexer.ELSE {
		if !p.expectPeek(lexer.COLON) {
			return nil
		}
		elseBody, bodyEnd, ok := p.parseIndentedBlock()
		if !ok {
			return nil
		}
		expr.Else = elseBody
		end = bodyEnd
	}

	expr.SetSpan(mergeSpan(start, end))
	return expr
}

// parseMatchExpr parses `match expr:` with an indented sequence of
// zero or more alternatives. Each alternative is a pattern, a colon,
// and either an indented statement block or a single terminated
// statement inline after the colon.
func (p *Parser) parseMatchExpr() ast.Expr {
	start := p.curTok.Span
	end := start

	p.nextToken()
	subject := p.parseExpression(precedenceLowest)
	if subject == nil {
		return nil
	}

	if !p.expectPeek(lexer.COLON) {
		return nil
	}
	end = p.curTok.Span
	if !p.expectPeek(lexer.NEWLINE) {
		return nil
	}

	expr := &ast.MatchExpr{Subject: subject}
	if p.peekTok.Type != lexer.INDENT {
		p.nextToken()
		expr.SetSpan(mergeSpan(start, end))
		return expr
	}
	p.nextToken()
	p.nextToken()

	for p.curTok.Type != lexer.DEDENT && !p.fatal {
		arm := p.parseMatchArm()
		if arm == nil {
			return nil
		}
		expr.Arms = append(expr.Arms, arm)
		end = arm.Span()
	}
	if p.fatal {
		return nil
	}
	p.nextToken() // past DEDENT

	expr.SetSpan(mergeSpan(start, end))
	return expr
}

func (p *Parser) parseMatchArm() *ast.MatchArm {
	pat := p.parsePattern()
	if pat == nil {
		return nil
	}
	if !p.expectPeek(lexer.COLON) {
		return nil
	}

	var (
		body []ast.Stmt
		end  lexer.Span
	)
	if p.peekTok.Type == lexer.NEWLINE {
		var ok bool
		body, end, ok = p.parseIndentedBlock()
		if !ok {
			return nil
		}
	} else {
		p.nextToken()
		stmt := p.parseStatement()
		if stmt == nil {
			return nil
		}
		body = []ast.Stmt{stmt}
		end = stmt.Span()
	}

	arm := &ast.MatchArm{Pat: pat, Body: body}
	arm.SetSpan(mergeSpan(pat.Span(), end))
	return arm
}
