package parser

import (
	"fmt"

	"github.com/corvid-lang/corvid/internal/ast"
	"github.com/corvid-lang/corvid/internal/diag"
	"github.com/corvid-lang/corvid/internal/lexer"
)

// parseDecl parses one top-level declaration. On entry curTok is the
// declaration's first token; on return it is the first token after the
// declaration.
func (p *Parser) parseDecl() ast.Decl {
	switch p.curTok.Type {
	case lexer.TYPE:
		return p.parseTypeDecl()
	case lexer.FN:
		return p.parseFnDecl()
	case lexer.IMPORT:
		return p.parseImportDecl()
	default:
		p.reportExpected("`type`, `fn`, or `import`", p.curTok)
		return nil
	}
}

// parseImportDecl parses `import Path.Segments` with a dotted path of
// uppercase segments.
func (p *Parser) parseImportDecl() ast.Decl {
	start := p.curTok.Span

	if !p.expectPeek(lexer.UPPER_ID) {
		return nil
	}
	path := []*ast.UpperIdent{ast.NewUpperIdent(p.curTok.Value, p.curTok.Span)}

	for p.peekTok.Type == lexer.DOT {
		p.nextToken()
		if !p.expectPeek(lexer.UPPER_ID) {
			return nil
		}
		path = append(path, ast.NewUpperIdent(p.curTok.Value, p.curTok.Span))
	}

	span := mergeSpan(start, p.curTok.Span)
	if !p.expectPeek(lexer.NEWLINE) {
		return nil
	}
	p.nextToken()

	decl := &ast.ImportDecl{Path: path}
	decl.SetSpan(span)
	return decl
}

// parseTypeDecl parses `type Name[params]:` followed by an indented
// body. The body is a constructor list when its first token is an
// uppercase identifier, a named-field record otherwise; the parser
// commits based on that token and never backtracks.
func (p *Parser) parseTypeDecl() ast.Decl {
	start := p.curTok.Span

	if !p.expectPeek(lexer.UPPER_ID) {
		return nil
	}
	name := ast.NewUpperIdent(p.curTok.Value, p.curTok.Span)

	var typeParams []*ast.UpperIdent
	if p.peekTok.Type == lexer.LBRACKET {
		p.nextToken()
		var ok bool
		typeParams, ok = p.parseTypeParamList()
		if !ok {
			return nil
		}
	}

	if !p.expectPeek(lexer.COLON) {
		return nil
	}
	if !p.expectPeek(lexer.NEWLINE) {
		return nil
	}
	if p.peekTok.Type != lexer.INDENT {
		p.reportErrorWithHelp(
			fmt.Sprintf("type `%s` has an empty body", name.Name),
			name.Span(),
			diag.CodeParseEmptyBlock,
			"declare at least one constructor or field on the following indented lines",
		)
		return nil
	}
	p.nextToken()
	p.nextToken()

	var rhs ast.TypeRhs
	if p.curTok.Type == lexer.UPPER_ID {
		rhs = p.parseSumRhs()
	} else {
		rhs = p.parseProductRhs()
	}
	if rhs == nil {
		return nil
	}

	decl := &ast.TypeDecl{Name: name, TypeParams: typeParams, Rhs: rhs}
	decl.SetSpan(mergeSpan(start, rhs.Span()))
	return decl
}

// parseTypeParamList parses [T, U, ...]. On entry curTok is the opening
// bracket; on return it is the closing bracket.
func (p *Parser) parseTypeParamList() ([]*ast.UpperIdent, bool) {
	p.nextToken()
	result, ok := parseDelimited(p, delimitedConfig{
		Closing:           lexer.RBRACKET,
		MissingElementMsg: "expected type parameter",
	}, func(int) (*ast.UpperIdent, bool) {
		if p.curTok.Type != lexer.UPPER_ID {
			p.reportExpected("type parameter", p.curTok)
			return nil, false
		}
		return ast.NewUpperIdent(p.curTok.Value, p.curTok.Span), true
	})
	return result.Items, ok
}

// parseSumRhs parses a constructor list. On entry curTok is the first
// constructor name; on return it is the first token after the body's
// dedent.
func (p *Parser) parseSumRhs() ast.TypeRhs {
	start := p.curTok.Span
	end := start

	var constructors []*ast.ConstructorDecl
	for p.curTok.Type != lexer.DEDENT && !p.fatal {
		c := p.parseConstructorDecl()
		if c == nil {
			return nil
		}
		constructors = append(constructors, c)
		end = c.Span()
	}
	if p.fatal {
		return nil
	}
	p.nextToken() // past DEDENT

	rhs := &ast.SumRhs{Constructors: constructors}
	rhs.SetSpan(mergeSpan(start, end))
	return rhs
}

// parseConstructorDecl parses one constructor line: a bare name, a
// name with a parenthesized positional type list, or a name with an
// indented named-field block.
func (p *Parser) parseConstructorDecl() *ast.ConstructorDecl {
	if p.curTok.Type != lexer.UPPER_ID {
		p.reportExpected("constructor name", p.curTok)
		return nil
	}
	start := p.curTok.Span
	decl := &ast.ConstructorDecl{Name: ast.NewUpperIdent(p.curTok.Value, p.curTok.Span)}
	end := start

	switch p.peekTok.Type {
	case lexer.NEWLINE:
		p.nextToken()
		p.nextToken()

	case lexer.LPAREN:
		p.nextToken()
		p.nextToken()
		result, ok := parseDelimited(p, delimitedConfig{
			Closing:           lexer.RPAREN,
			AllowTrailing:     true,
			MissingElementMsg: "expected field type",
		}, func(int) (ast.TypeExpr, bool) {
			t := p.parseType()
			return t, t != nil
		})
		if !ok {
			return nil
		}
		decl.Positional = result.Items
		end = p.curTok.Span
		if !p.expectPeek(lexer.NEWLINE) {
			return nil
		}
		p.nextToken()

	case lexer.COLON:
		p.nextToken()
		fields, ok := p.parseNamedFieldBlock()
		if !ok {
			return nil
		}
		decl.Named = fields
		if n := len(fields); n > 0 {
			end = fields[n-1].Span()
		}

	default:
		p.reportExpected("constructor fields or end of line", p.peekTok)
		return nil
	}

	decl.SetSpan(mergeSpan(start, end))
	return decl
}

// parseProductRhs parses a named-field record body. On entry curTok is
// the first field name; on return it is the first token after the
// body's dedent.
func (p *Parser) parseProductRhs() ast.TypeRhs {
	start := p.curTok.Span

	fields, ok := p.parseNamedFieldLines()
	if !ok {
		return nil
	}
	end := start
	if n := len(fields); n > 0 {
		end = fields[n-1].Span()
	}

	rhs := &ast.ProductRhs{Fields: fields}
	rhs.SetSpan(mergeSpan(start, end))
	return rhs
}

// parseNamedFieldBlock parses `: NEWLINE INDENT fields DEDENT` with
// curTok on the colon.
func (p *Parser) parseNamedFieldBlock() ([]*ast.TypeField, bool) {
	if !p.expectPeek(lexer.NEWLINE) {
		return nil, false
	}
	if p.peekTok.Type != lexer.INDENT {
		p.reportErrorWithHelp(
			"constructor field block is empty",
			p.peekTok.Span,
			diag.CodeParseEmptyBlock,
			"declare at least one `name: type` field on the following indented lines",
		)
		return nil, false
	}
	p.nextToken()
	p.nextToken()
	return p.parseNamedFieldLines()
}

// parseNamedFieldLines parses `name: type` lines until the enclosing
// dedent, consuming the dedent.
func (p *Parser) parseNamedFieldLines() ([]*ast.TypeField, bool) {
	var fields []*ast.TypeField
	for p.curTok.Type != lexer.DEDENT && !p.fatal {
		if p.curTok.Type != lexer.LOWER_ID {
			p.reportExpected("field name", p.curTok)
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

		field := &ast.TypeField{Name: name, Type: typ}
		field.SetSpan(mergeSpan(name.Span(), typ.Span()))
		fields = append(fields, field)

		if !p.expectPeek(lexer.NEWLINE) {
			return nil, false
		}
		p.nextToken()
	}
	if p.fatal {
		return nil, false
	}
	p.nextToken() // past DEDENT
	return fields, true
}
