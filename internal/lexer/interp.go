package lexer

import (
	"strings"
	"unicode/utf8"
)

// StringPart is one segment of an interpolated string literal: either a
// run of literal text (with escapes decoded) or the raw source of an
// embedded ${...} expression. Expression sources are re-lexed by the
// parser with spans rebased onto the original literal.
type StringPart struct {
	Interp bool
	Text   string // decoded text, or the expression source for interp parts
	Span   Span   // position within the enclosing module
}

// SplitString splits the inner text of a string literal into literal and
// interpolation segments. inner is the token's Value (quotes already
// stripped); span is the token's span, used to rebase segment positions.
// Escape sequences are decoded in text segments; \$ suppresses
// interpolation. Segment offsets count bytes into the original source,
// columns count runes. Returns an error for an unterminated ${ segment
// or an unknown escape.
func SplitString(inner string, span Span) ([]StringPart, *LexerError) {
	var parts []StringPart
	var text strings.Builder

	// Position of the first inner byte: one past the opening quote.
	baseColumn := span.Column + 1
	baseOffset := span.Start + 1

	textStart, textStartCol := 0, 0
	flush := func(end int) {
		if text.Len() == 0 {
			return
		}
		parts = append(parts, StringPart{
			Text: text.String(),
			Span: Span{
				Filename: span.Filename,
				Line:     span.Line,
				Column:   baseColumn + textStartCol,
				Start:    baseOffset + textStart,
				End:      baseOffset + end,
			},
		})
		text.Reset()
	}

	// i indexes bytes; col counts runes consumed. All structural
	// characters (backslash, dollar, braces) are single-byte, so the
	// scan itself is byte-wise.
	i, col := 0, 0
	for i < len(inner) {
		ch := inner[i]

		if ch == '\\' && i+1 < len(inner) {
			if text.Len() == 0 {
				textStart, textStartCol = i, col
			}
			esc, escSize := utf8.DecodeRuneInString(inner[i+1:])
			switch esc {
			case 'n':
				text.WriteByte('\n')
			case 't':
				text.WriteByte('\t')
			case 'r':
				text.WriteByte('\r')
			case '\\':
				text.WriteByte('\\')
			case '"':
				text.WriteByte('"')
			case '$':
				text.WriteByte('$')
			default:
				err := &LexerError{
					Kind:    ErrIllegalRune,
					Message: "unknown escape sequence \\" + string(esc),
					Span: Span{
						Filename: span.Filename,
						Line:     span.Line,
						Column:   baseColumn + col,
						Start:    baseOffset + i,
						End:      baseOffset + i + 1 + escSize,
					},
				}
				return nil, err
			}
			i += 1 + escSize
			col += 2
			continue
		}

		if ch == '$' && i+1 < len(inner) && inner[i+1] == '{' {
			flush(i)

			exprStart := i + 2
			exprStartCol := col + 2
			depth := 1
			j := exprStart
			for j < len(inner) && depth > 0 {
				switch inner[j] {
				case '{':
					depth++
				case '}':
					depth--
				}
				j++
			}
			if depth != 0 {
				err := &LexerError{
					Kind:    ErrUnterminatedInterp,
					Message: "unterminated interpolation; missing '}'",
					Span: Span{
						Filename: span.Filename,
						Line:     span.Line,
						Column:   baseColumn + col,
						Start:    baseOffset + i,
						End:      baseOffset + len(inner),
					},
				}
				return nil, err
			}

			src := inner[exprStart : j-1]
			parts = append(parts, StringPart{
				Interp: true,
				Text:   src,
				Span: Span{
					Filename: span.Filename,
					Line:     span.Line,
					Column:   baseColumn + exprStartCol,
					Start:    baseOffset + exprStart,
					End:      baseOffset + j - 1,
				},
			})

			i = j
			col = exprStartCol + utf8.RuneCountInString(src) + 1
			textStart, textStartCol = i, col
			continue
		}

		if text.Len() == 0 {
			textStart, textStartCol = i, col
		}
		r, size := utf8.DecodeRuneInString(inner[i:])
		text.WriteRune(r)
		i += size
		col++
	}

	flush(len(inner))
	return parts, nil
}
