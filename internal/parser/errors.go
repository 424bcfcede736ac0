package parser

import (
	"fmt"

	"github.com/corvid-lang/corvid/internal/diag"
	"github.com/corvid-lang/corvid/internal/lexer"
)

// ParseError captures a parse failure with location context. Errors are
// terminal: the first one recorded aborts the parse of the unit.
type ParseError struct {
	Message string
	Span    lexer.Span
	Code    diag.Code
	Help    string
	Notes   []string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Span.Line > 0 {
		return fmt.Sprintf("%s: %s", diag.Span(e.Span).String(), e.Message)
	}
	return e.Message
}

// ToDiagnostic converts the parse error into a shared diagnostic.
func (e *ParseError) ToDiagnostic() diag.Diagnostic {
	code := e.Code
	if code == "" {
		code = diag.CodeParseUnexpectedToken
	}
	return diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: diag.SeverityError,
		Code:     code,
		Message:  e.Message,
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
		Notes: e.Notes,
		Help:  e.Help,
	}
}

// reportError records a fatal parse error. Only the first error at a
// given parse is meaningful; later calls while unwinding are dropped.
func (p *Parser) reportError(msg string, span lexer.Span, code diag.Code) {
	if p.fatal {
		return
	}
	if span.Filename == "" && p.module != "" {
		span.Filename = p.module
	}
	p.errors = append(p.errors, ParseError{
		Message: msg,
		Span:    span,
		Code:    code,
	})
	p.fatal = true
}

// reportErrorWithHelp records a fatal parse error with help text.
func (p *Parser) reportErrorWithHelp(msg string, span lexer.Span, code diag.Code, help string) {
	p.reportError(msg, span, code)
	if len(p.errors) > 0 {
		p.errors[len(p.errors)-1].Help = help
	}
}

// reportExpected reports an error when an expected token is missing.
func (p *Parser) reportExpected(expected string, found lexer.Token) {
	p.reportError(
		fmt.Sprintf("expected %s, found %s", expected, describeFound(found)),
		found.Span,
		diag.CodeParseUnexpectedToken,
	)
}

// reportUnexpected reports an error for an unexpected token.
func (p *Parser) reportUnexpected(unexpected lexer.Token, context string) {
	msg := fmt.Sprintf("unexpected %s", describeFound(unexpected))
	if context != "" {
		msg += " " + context
	}
	p.reportError(msg, unexpected.Span, diag.CodeParseUnexpectedToken)
}

// describeToken renders a token type for error messages.
func describeToken(tt lexer.TokenType) string {
	switch tt {
	case lexer.NEWLINE:
		return "end of statement"
	case lexer.INDENT:
		return "indented block"
	case lexer.DEDENT:
		return "end of block"
	case lexer.LOWER_ID:
		return "identifier"
	case lexer.UPPER_ID:
		return "uppercase identifier"
	case lexer.INT:
		return "integer literal"
	case lexer.STRING:
		return "string literal"
	case lexer.EOF:
		return "end of input"
	default:
		return "`" + string(tt) + "`"
	}
}

func describeFound(tok lexer.Token) string {
	switch tok.Type {
	case lexer.NEWLINE, lexer.INDENT, lexer.DEDENT, lexer.EOF:
		return describeToken(tok.Type)
	}
	if tok.Raw != "" {
		return "`" + tok.Raw + "`"
	}
	return describeToken(tok.Type)
}
