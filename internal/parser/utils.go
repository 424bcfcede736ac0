package parser

import (
	"github.com/corvid-lang/corvid/internal/lexer"
)

// mergeSpan assumes start.End <= end.End and returns a span covering
// both. The parser relies on lexer spans being half-open; callers pass
// the earliest start span first so AST node spans grow monotonically.
func mergeSpan(start, end lexer.Span) lexer.Span {
	span := start

	if end.End > span.End {
		span.End = end.End
	}

	return span
}

// endsStatement reports whether tt can directly follow an inline
// expression used as a bare return operand.
func endsStatement(tt lexer.TokenType) bool {
	switch tt {
	case lexer.NEWLINE, lexer.DEDENT, lexer.EOF:
		return true
	default:
		return false
	}
}
