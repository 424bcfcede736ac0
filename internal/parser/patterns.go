package parser

import (
	"strings"

	"github.com/corvid-lang/corvid/internal/ast"
	"github.com/corvid-lang/corvid/internal/diag"
	"github.com/corvid-lang/corvid/internal/lexer"
)

// parsePattern parses a pattern, including alternation. Alternation is
// right-associative: the right operand of | is parsed as a full
// pattern, so a | b | c nests as a | (b | c). On entry curTok is the
// pattern's first token; on return it is the last.
func (p *Parser) parsePattern() ast.Pattern {
	left := p.parsePrimaryPattern()
	if left == nil {
		return nil
	}

	if p.peekTok.Type == lexer.PIPE {
		p.nextToken()
		p.nextToken()
		right := p.parsePattern()
		if right == nil {
			return nil
		}

		pat := &ast.OrPat{Left: left, Right: right}
		pat.SetSpan(mergeSpan(left.Span(), right.Span()))
		return pat
	}
	return left
}

func (p *Parser) parsePrimaryPattern() ast.Pattern {
	switch p.curTok.Type {
	case lexer.LOWER_ID:
		pat := &ast.VarPat{Name: ast.NewIdent(p.curTok.Value, p.curTok.Span)}
		pat.SetSpan(p.curTok.Span)
		return pat

	case lexer.UNDERSCORE:
		pat := &ast.WildcardPat{}
		pat.SetSpan(p.curTok.Span)
		return pat

	case lexer.STRING:
		return p.parseStringPattern()

	case lexer.UPPER_ID:
		return p.parseConstrPattern()

	case lexer.LPAREN:
		return p.parseRecordPattern()

	default:
		p.reportExpected("pattern", p.curTok)
		return nil
	}
}

// parseStringPattern parses an exact-string pattern, or a
// string-prefix pattern when the literal is directly followed by an
// identifier binding the remainder.
func (p *Parser) parseStringPattern() ast.Pattern {
	start := p.curTok.Span

	value, ok := p.patternStringValue()
	if !ok {
		return nil
	}

	if p.peekTok.Type == lexer.LOWER_ID {
		p.nextToken()
		pat := &ast.StringPrefixPat{Prefix: value, Rest: ast.NewIdent(p.curTok.Value, p.curTok.Span)}
		pat.SetSpan(mergeSpan(start, p.curTok.Span))
		return pat
	}

	pat := &ast.StringPat{Value: value}
	pat.SetSpan(start)
	return pat
}

// patternStringValue decodes the current string token for use in a
// pattern. Interpolation has no meaning there and is rejected.
func (p *Parser) patternStringValue() (string, bool) {
	segments, lexErr := lexer.SplitString(p.curTok.Value, p.curTok.Span)
	if lexErr != nil {
		p.reportError(lexErr.Message, lexErr.Span, lexErr.ToDiagnostic().Code)
		return "", false
	}

	var sb strings.Builder
	for _, seg := range segments {
		if seg.Interp {
			p.reportError("interpolation is not allowed in a string pattern", seg.Span,
				diag.CodeParseBadInterpolation)
			return "", false
		}
		sb.WriteString(seg.Text)
	}
	return sb.String(), true
}

// parseConstrPattern parses a constructor pattern: an optionally
// type-qualified uppercase name with an optional parenthesized field
// list, like Shape.Circle(radius = r) or Nil.
func (p *Parser) parseConstrPattern() ast.Pattern {
	start := p.curTok.Span
	pat := &ast.ConstrPat{Name: ast.NewUpperIdent(p.curTok.Value, p.curTok.Span)}

	if p.peekTok.Type == lexer.DOT {
		p.nextToken()
		if !p.expectPeek(lexer.UPPER_ID) {
			return nil
		}
		pat.Type = pat.Name
		pat.Name = ast.NewUpperIdent(p.curTok.Value, p.curTok.Span)
	}
	end := p.curTok.Span

	if p.peekTok.Type == lexer.LPAREN {
		p.nextToken()
		fields, ok := p.parsePatFieldList()
		if !ok {
			return nil
		}
		pat.Fields = fields
		end = p.curTok.Span
	}

	pat.SetSpan(mergeSpan(start, end))
	return pat
}

// parseRecordPattern parses a parenthesized sub-pattern list with no
// leading constructor name.
func (p *Parser) parseRecordPattern() ast.Pattern {
	start := p.curTok.Span

	fields, ok := p.parsePatFieldList()
	if !ok {
		return nil
	}

	pat := &ast.RecordPat{Fields: fields}
	pat.SetSpan(mergeSpan(start, p.curTok.Span))
	return pat
}

// parsePatFieldList parses ([name =] pat, ...) with curTok on the
// opening parenthesis; on return curTok is the closing one.
func (p *Parser) parsePatFieldList() ([]*ast.PatField, bool) {
	p.nextToken()
	result, ok := parseDelimited(p, delimitedConfig{
		Closing:           lexer.RPAREN,
		AllowEmpty:        true,
		AllowTrailing:     true,
		MissingElementMsg: "expected sub-pattern",
	}, func(int) (*ast.PatField, bool) {
		return p.parsePatField()
	})
	if !ok {
		return nil, false
	}
	return result.Items, true
}

func (p *Parser) parsePatField() (*ast.PatField, bool) {
	var name *ast.Ident
	start := p.curTok.Span

	if p.curTok.Type == lexer.LOWER_ID && p.peekTok.Type == lexer.ASSIGN {
		name = ast.NewIdent(p.curTok.Value, p.curTok.Span)
		p.nextToken()
		p.nextToken()
	}

	pat := p.parsePattern()
	if pat == nil {
		return nil, false
	}

	field := &ast.PatField{Name: name, Pat: pat}
	field.SetSpan(mergeSpan(start, pat.Span()))
	return field, true
}
