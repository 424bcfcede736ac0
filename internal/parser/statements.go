package parser

import (
	"github.com/corvid-lang/corvid/internal/ast"
	"github.com/corvid-lang/corvid/internal/diag"
	"github.com/corvid-lang/corvid/internal/lexer"
)

func isAssignable(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Ident, *ast.FieldExpr, *ast.IndexExpr:
		return true
	}
	return false
}

// parseStatement parses one statement. Inline-expression statements
// consume their terminating newline; block-expression statements (if,
// match) end at their closing dedent and consume no terminator. The
// two forms are mutually exclusive: parseStatement commits to the block
// form on an if/match head token and never requires a terminator after
// it. On return curTok is the first token after the statement.
func (p *Parser) parseStatement() ast.Stmt {
	switch p.curTok.Type {
	case lexer.LET:
		return p.parseLetStmt()
	case lexer.FOR:
		return p.parseForStmt()
	case lexer.WHILE:
		return p.parseWhileStmt()
	case lexer.IF, lexer.MATCH:
		return p.parseBlockExprStmt()
	default:
		return p.parseExprOrAssignStmt()
	}
}

// parseLetStmt parses `let pat [: type] = rhs`. The right-hand side is
// either a terminated inline expression or an unterminated block
// expression; the block's own closing structure ends the statement.
func (p *Parser) parseLetStmt() ast.Stmt {
	start := p.curTok.Span

	p.nextToken()
	pat := p.parsePattern()
	if pat == nil {
		return nil
	}

	var typ ast.TypeExpr
	if p.peekTok.Type == lexer.COLON {
		p.nextToken()
		p.nextToken()
		typ = p.parseType()
		if typ == nil {
			return nil
		}
	}

	if !p.expectPeek(lexer.ASSIGN) {
		return nil
	}
	p.nextToken()

	var value ast.Expr
	switch p.curTok.Type {
	case lexer.IF, lexer.MATCH:
		value = p.parseBlockExpr()
		if value == nil {
			return nil
		}
	default:
		value = p.parseExpression(precedenceLowest)
		if value == nil {
			return nil
		}
		if !p.expectPeek(lexer.NEWLINE) {
			return nil
		}
		p.nextToken()
	}

	stmt := &ast.LetStmt{Pat: pat, Type: typ, Value: value}
	stmt.SetSpan(mergeSpan(start, value.Span()))
	return stmt
}

// parseForStmt parses `for id in expr:` with an indented body. The
// loop variable's type is always inferred, never declared.
func (p *Parser) parseForStmt() ast.Stmt {
	start := p.curTok.Span

	if !p.expectPeek(lexer.LOWER_ID) {
		return nil
	}
	loopVar := ast.NewIdent(p.curTok.Value, p.curTok.Span)

	if !p.expectPeek(lexer.IN) {
		return nil
	}
	p.nextToken()
	iter := p.parseExpression(precedenceLowest)
	if iter == nil {
		return nil
	}

	if !p.expectPeek(lexer.COLON) {
		return nil
	}
	body, end, ok := p.parseIndentedBlock()
	if !ok {
		return nil
	}

	stmt := &ast.ForStmt{Var: loopVar, Iter: iter, Body: body}
	stmt.SetSpan(mergeSpan(start, end))
	return stmt
}

// parseWhileStmt parses `while expr:` with an indented body.
func (p *Parser) parseWhileStmt() ast.Stmt {
	start := p.curTok.Span

	p.nextToken()
	cond := p.parseExpression(precedenceLowest)
	if cond == nil {
		return nil
	}

	if !p.expectPeek(lexer.COLON) {
		return nil
	}
	body, end, ok := p.parseIndentedBlock()
	if !ok {
		return nil
	}

	stmt := &ast.WhileStmt{Cond: cond, Body: body}
	stmt.SetSpan(mergeSpan(start, end))
	return stmt
}

// parseBlockExprStmt wraps a bare block expression as a statement.
func (p *Parser) parseBlockExprStmt() ast.Stmt {
	expr := p.parseBlockExpr()
	if expr == nil {
		return nil
	}
	stmt := &ast.ExprStmt{Expr: expr}
	stmt.SetSpan(expr.Span())
	return stmt
}

// parseExprOrAssignStmt parses a bare inline expression statement or
// an assignment. Assignment is a statement, not an expression: after an
// inline expression, one of = += -= turns it into an assignment. The
// target must be a variable, a field selection, or an index expression.
func (p *Parser) parseExprOrAssignStmt() ast.Stmt {
	target := p.parseExpression(precedenceLowest)
	if target == nil {
		return nil
	}

	switch p.peekTok.Type {
	case lexer.ASSIGN, lexer.PLUS_EQ, lexer.MINUS_EQ:
		if !isAssignable(target) {
			p.reportErrorWithHelp(
				"cannot assign to this expression",
				target.Span(),
				diag.CodeParseBadAssignTarget,
				"assignment targets are variables, field selections, and index expressions",
			)
			return nil
		}
		op := p.peekTok.Type
		p.nextToken()
		p.nextToken()
		value := p.parseExpression(precedenceLowest)
		if value == nil {
			return nil
		}
		if !p.expectPeek(lexer.NEWLINE) {
			return nil
		}
		p.nextToken()

		stmt := &ast.AssignStmt{Target: target, Op: op, Value: value}
		stmt.SetSpan(mergeSpan(target.Span(), value.Span()))
		return stmt
	}

	if !p.expectPeek(lexer.NEWLINE) {
		return nil
	}
	p.nextToken()

	stmt := &ast.ExprStmt{Expr: target}
	stmt.SetSpan(target.Span())
	return stmt
}

// parseIndentedBlock parses `: NEWLINE INDENT stmts DEDENT` with curTok
// on the colon. An empty block (newline with no following indent) is
// legal and yields zero statements. Returns the statements, the span of
// the last statement (or the colon for an empty block), and whether
// parsing succeeded; on success curTok is the first token after the
// dedent.
func (p *Parser) parseIndentedBlock() ([]ast.Stmt, lexer.Span, bool) {
	end := p.curTok.Span

	if !p.expectPeek(lexer.NEWLINE) {
		return nil, end, false
	}
	if p.peekTok.Type != lexer.INDENT {
		p.nextToken()
		return nil, end, true
	}
	p.nextToken()
	p.nextToken()

	var stmts []ast.Stmt
	for p.curTok.Type != lexer.DEDENT && !p.fatal {
		stmt := p.parseStatement()
		if stmt == nil {
			return nil, end, false
		}
		stmts = append(stmts, stmt)
		end = stmt.Span()
	}
	if p.fatal {
		return nil, end, false
	}
	p.nextToken() // past DEDENT
	return stmts, end, true
}
