package parser

import (
	"github.com/corvid-lang/corvid/internal/ast"
	"github.com/corvid-lang/corvid/internal/lexer"
)

// parseFnDecl parses a function or method declaration:
//
//	fn [Type.]name[TypeParams][Predicates](params) [: retTy] = body
//
// Type parameters and predicates are both optional bracketed lists. A
// single grammar production cannot tell "no generics" from "generics
// with empty predicates" when both lists are optional with the same
// brackets, so the first bracket is always type parameters and a second
// adjacent bracket, resolved by one token of lookahead, is always the
// predicate list.
func (p *Parser) parseFnDecl() ast.Decl {
	start := p.curTok.Span
	decl := &ast.FnDecl{}

	p.nextToken()
	switch p.curTok.Type {
	case lexer.UPPER_ID:
		decl.TypeName = ast.NewUpperIdent(p.curTok.Value, p.curTok.Span)
		if !p.expectPeek(lexer.DOT) {
			return nil
		}
		if !p.expectPeek(lexer.LOWER_ID) {
			return nil
		}
		decl.Name = ast.NewIdent(p.curTok.Value, p.curTok.Span)
	case lexer.LOWER_ID:
		decl.Name = ast.NewIdent(p.curTok.Value, p.curTok.Span)
	default:
		p.reportExpected("function name", p.curTok)
		return nil
	}

	if p.peekTok.Type == lexer.LBRACKET {
		p.nextToken()
		params, ok := p.parseTypeParamList()
		if !ok {
			return nil
		}
		decl.TypeParams = params

		if p.peekTok.Type == lexer.LBRACKET {
			p.nextToken()
			predicates, ok := p.parsePredicateList()
			if !ok {
				return nil
			}
			decl.Predicates = predicates
		}
	}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.nextToken()

	// A self receiver is the first token inside the parenthesis. It
	// sets the method flag and never appears in the parameter list.
	if p.curTok.Type == lexer.SELF {
		decl.Self = true
		switch p.peekTok.Type {
		case lexer.COMMA:
			p.nextToken()
			p.nextToken()
		case lexer.RPAREN:
			p.nextToken()
		default:
			p.reportExpected("`,` or `)`", p.peekTok)
			return nil
		}
	}

	params, ok := parseDelimited(p, delimitedConfig{
		Closing:           lexer.RPAREN,
		AllowEmpty:        true,
		MissingElementMsg: "expected parameter",
	}, func(int) (*ast.Param, bool) {
		return p.parseParam()
	})
	if !ok {
		return nil
	}
	decl.Params = params.Items

	if p.peekTok.Type == lexer.COLON {
		p.nextToken()
		p.nextToken()
		decl.ReturnType = p.parseType()
		if decl.ReturnType == nil {
			return nil
		}
	}

	if !p.expectPeek(lexer.ASSIGN) {
		return nil
	}
	end := p.curTok.Span

	// The body block hangs off the `=`; zero statements is legal.
	body, bodyEnd, ok := p.parseIndentedBlock()
	if !ok {
		return nil
	}
	decl.Body = body
	if len(body) > 0 {
		end = bodyEnd
	}

	decl.SetSpan(mergeSpan(start, end))
	return decl
}

// parsePredicateList parses the bracketed type-constraint list, e.g.
// [Eq[T], Ord[U]]. On entry curTok is the opening bracket.
func (p *Parser) parsePredicateList() ([]ast.TypeExpr, bool) {
	p.nextToken()
	result, ok := parseDelimited(p, delimitedConfig{
		Closing:           lexer.RBRACKET,
		MissingElementMsg: "expected type constraint",
	}, func(int) (ast.TypeExpr, bool) {
		t := p.parseType()
		return t, t != nil
	})
	return result.Items, ok
}

// parseParam parses `name: type`.
func (p *Parser) parseParam() (*ast.Param, bool) {
	if p.curTok.Type != lexer.LOWER_ID {
		p.reportExpected("parameter name", p.curTok)
		return nil, false
	}
	name := ast.NewIdent(p.curTok.Value, p.curTok.Span)

	if !p.expectPeek(lexer.COLON) {
		return nil, false
	}
	p.nextToken()
	typ := p.parseType()
	if typ == nil {
		return nil, false
	}

	param := &ast.Param{Name: name, Type: typ}
	param.SetSpan(mergeSpan(name.Span(), typ.Span()))
	return param, true
}
