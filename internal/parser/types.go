package parser

import (
	"github.com/corvid-lang/corvid/internal/ast"
	"github.com/corvid-lang/corvid/internal/lexer"
)

// parseType parses a type expression: a named type with optional type
// arguments, like Vec[T], or a parenthesized record type. On entry
// curTok is the type's first token; on return it is the last.
func (p *Parser) parseType() ast.TypeExpr {
	switch p.curTok.Type {
	case lexer.UPPER_ID:
		return p.parseNamedType()
	case lexer.LPAREN:
		return p.parseRecordType()
	default:
		p.reportExpected("type", p.curTok)
		return nil
	}
}

func (p *Parser) parseNamedType() ast.TypeExpr {
	start := p.curTok.Span
	name := ast.NewUpperIdent(p.curTok.Value, p.curTok.Span)

	var args []ast.TypeExpr
	if p.peekTok.Type == lexer.LBRACKET {
		p.nextToken()
		p.nextToken()
		result, ok := parseDelimited(p, delimitedConfig{
			Closing:           lexer.RBRACKET,
			MissingElementMsg: "expected type argument",
		}, func(int) (ast.TypeExpr, bool) {
			t := p.parseType()
			return t, t != nil
		})
		if !ok {
			return nil
		}
		args = result.Items
	}

	t := &ast.NamedType{Name: name, Args: args}
	t.SetSpan(mergeSpan(start, p.curTok.Span))
	return t
}

// parseRecordType parses (name: T, U, ...). Field names are optional;
// a field is named when an identifier is directly followed by a colon.
func (p *Parser) parseRecordType() ast.TypeExpr {
	start := p.curTok.Span

	p.nextToken()
	result, ok := parseDelimited(p, delimitedConfig{
		Closing:           lexer.RPAREN,
		AllowEmpty:        true,
		AllowTrailing:     true,
		MissingElementMsg: "expected field type",
	}, func(int) (*ast.TypeField, bool) {
		return p.parseRecordTypeField()
	})
	if !ok {
		return nil
	}

	t := &ast.RecordType{Fields: result.Items}
	t.SetSpan(mergeSpan(start, p.curTok.Span))
	return t
}

func (p *Parser) parseRecordTypeField() (*ast.TypeField, bool) {
	var name *ast.Ident
	start := p.curTok.Span

	if p.curTok.Type == lexer.LOWER_ID && p.peekTok.Type == lexer.COLON {
		name = ast.NewIdent(p.curTok.Value, p.curTok.Span)
		p.nextToken()
		p.nextToken()
	}

	typ := p.parseType()
	if typ == nil {
		return nil, false
	}

	field := &ast.TypeField{Name: name, Type: typ}
	field.SetSpan(mergeSpan(start, typ.Span()))
	return field, true
}
