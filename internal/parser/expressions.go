package parser

import (
	"github.com/corvid-lang/corvid/internal/ast"
	"github.com/corvid-lang/corvid/internal/lexer"
)

// parseExpression is the precedence-climbing core. On entry curTok is
// the expression's first token; on return it is the last. Operators
// bind per the precedences table; equal precedence associates left
// because the loop only continues while the next operator binds
// strictly tighter than the current level.
func (p *Parser) parseExpression(precedence int) ast.Expr {
	prefix := p.prefixFns[p.curTok.Type]
	if prefix == nil {
		p.reportExpected("expression", p.curTok)
		return nil
	}
	left := prefix()
	if left == nil {
		return nil
	}

	for precedence < p.peekPrecedence() {
		infix := p.infixFns[p.peekTok.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
		if left == nil {
			return nil
		}
	}
	return left
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curTok.Type]; ok {
		return prec
	}
	return precedenceLowest
}

func (p *Parser) parseIdentifier() ast.Expr {
	return ast.NewIdent(p.curTok.Value, p.curTok.Span)
}

func (p *Parser) parseUpperIdentifier() ast.Expr {
	return ast.NewUpperIdent(p.curTok.Value, p.curTok.Span)
}

func (p *Parser) parseSelfExpr() ast.Expr {
	expr := &ast.SelfExpr{}
	expr.SetSpan(p.curTok.Span)
	return expr
}

func (p *Parser) parsePrefixExpr() ast.Expr {
	start := p.curTok.Span
	op := p.curTok.Type

	p.nextToken()
	operand := p.parseExpression(precedencePrefix)
	if operand == nil {
		return nil
	}

	expr := &ast.PrefixExpr{Op: op, Operand: operand}
	expr.SetSpan(mergeSpan(start, operand.Span()))
	return expr
}

func (p *Parser) parseInfixExpr(left ast.Expr) ast.Expr {
	op := p.curTok.Type
	precedence := p.curPrecedence()

	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}

	return ast.NewInfixExpr(op, left, right, mergeSpan(left.Span(), right.Span()))
}

// parseRangeExpr parses the exclusive range operator, the tightest
// binary level: endpoints are primaries and postfix chains only.
func (p *Parser) parseRangeExpr(left ast.Expr) ast.Expr {
	p.nextToken()
	right := p.parseExpression(precedenceRange)
	if right == nil {
		return nil
	}

	expr := &ast.RangeExpr{Low: left, High: right}
	expr.SetSpan(mergeSpan(left.Span(), right.Span()))
	return expr
}

// parseReturnExpr parses the loosest-binding prefix form. The operand
// is optional: a bare return is legal directly before a terminator.
func (p *Parser) parseReturnExpr() ast.Expr {
	start := p.curTok.Span
	expr := &ast.ReturnExpr{}

	if endsStatement(p.peekTok.Type) {
		expr.SetSpan(start)
		return expr
	}

	p.nextToken()
	value := p.parseExpression(precedenceLowest)
	if value == nil {
		return nil
	}
	expr.Value = value
	expr.SetSpan(mergeSpan(start, value.Span()))
	return expr
}

// parseRecordOrGroupedExpr parses a parenthesized field list and
// collapses it by shape: zero fields is the empty record literal;
// exactly one unnamed field without a trailing comma is plain
// parenthesization and unwraps to the inner expression; everything
// else, including the trailing-comma singleton (x,), is a record
// literal.
func (p *Parser) parseRecordOrGroupedExpr() ast.Expr {
	start := p.curTok.Span

	p.nextToken()
	result, ok := parseDelimited(p, delimitedConfig{
		Closing:           lexer.RPAREN,
		AllowEmpty:        true,
		AllowTrailing:     true,
		MissingElementMsg: "expected record field",
	}, func(int) (*ast.RecordField, bool) {
		return p.parseRecordField()
	})
	if !ok {
		return nil
	}

	fields := result.Items
	if len(fields) == 1 && fields[0].Name == nil && !result.Trailing {
		return fields[0].Value
	}

	expr := &ast.RecordExpr{Fields: fields}
	expr.SetSpan(mergeSpan(start, p.curTok.Span))
	return expr
}

// parseRecordField parses `[name =] expr`. A field is named when an
// identifier is directly followed by `=`.
func (p *Parser) parseRecordField() (*ast.RecordField, bool) {
	var name *ast.Ident
	start := p.curTok.Span

	if p.curTok.Type == lexer.LOWER_ID && p.peekTok.Type == lexer.ASSIGN {
		name = ast.NewIdent(p.curTok.Value, p.curTok.Span)
		p.nextToken()
		p.nextToken()
	}

	value := p.parseExpression(precedenceLowest)
	if value == nil {
		return nil, false
	}

	field := &ast.RecordField{Name: name, Value: value}
	field.SetSpan(mergeSpan(start, value.Span()))
	return field, true
}

func (p *Parser) parseCallExpr(callee ast.Expr) ast.Expr {
	p.nextToken()
	result, ok := parseDelimited(p, delimitedConfig{
		Closing:           lexer.RPAREN,
		AllowEmpty:        true,
		AllowTrailing:     true,
		MissingElementMsg: "expected argument",
	}, func(int) (ast.Expr, bool) {
		arg := p.parseExpression(precedenceLowest)
		return arg, arg != nil
	})
	if !ok {
		return nil
	}

	expr := &ast.CallExpr{Callee: callee, Args: result.Items}
	expr.SetSpan(mergeSpan(callee.Span(), p.curTok.Span))
	return expr
}

func (p *Parser) parseIndexExpr(target ast.Expr) ast.Expr {
	p.nextToken()
	index := p.parseExpression(precedenceLowest)
	if index == nil {
		return nil
	}
	if !p.expectPeek(lexer.RBRACKET) {
		return nil
	}

	expr := &ast.IndexExpr{Target: target, Index: index}
	expr.SetSpan(mergeSpan(target.Span(), p.curTok.Span))
	return expr
}

// parseDottedExpr parses `.field` and `.Constr` suffixes. Both cases
// build nodes unconditionally; whether an uppercase selection has a
// legal type-reference target is decided by the resolution pass, which
// can then report a structured diagnostic.
func (p *Parser) parseDottedExpr(target ast.Expr) ast.Expr {
	switch p.peekTok.Type {
	case lexer.LOWER_ID:
		p.nextToken()
		expr := &ast.FieldExpr{Target: target, Field: ast.NewIdent(p.curTok.Value, p.curTok.Span)}
		expr.SetSpan(mergeSpan(target.Span(), p.curTok.Span))
		return expr
	case lexer.UPPER_ID:
		p.nextToken()
		expr := &ast.ConstrSelectExpr{Target: target, Constr: ast.NewUpperIdent(p.curTok.Value, p.curTok.Span)}
		expr.SetSpan(mergeSpan(target.Span(), p.curTok.Span))
		return expr
	default:
		p.reportExpected("field or constructor name", p.peekTok)
		return nil
	}
}
