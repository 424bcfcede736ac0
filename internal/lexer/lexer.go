package lexer

import (
	"strconv"
	"unicode/utf8"

	"github.com/corvid-lang/corvid/internal/diag"
)

type LexerErrorKind int

const (
	ErrUnterminatedString LexerErrorKind = iota
	ErrUnterminatedInterp
	ErrBadIndentation
	ErrIllegalRune
)

type LexerError struct {
	Kind    LexerErrorKind
	Message string
	Span    Span
}

func (k LexerErrorKind) diagnosticCode() diag.Code {
	switch k {
	case ErrUnterminatedString:
		return diag.CodeLexerUnterminatedString
	case ErrUnterminatedInterp:
		return diag.CodeLexerUnterminatedInterp
	case ErrBadIndentation:
		return diag.CodeLexerBadIndentation
	case ErrIllegalRune:
		return diag.CodeLexerIllegalRune
	default:
		return diag.Code("LEXER_UNKNOWN_ERROR")
	}
}

// ToDiagnostic converts a lexer error into a shared diagnostic structure.
func (e LexerError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageLexer,
		Severity: diag.SeverityError,
		Code:     e.Kind.diagnosticCode(),
		Message:  e.Message,
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
	}
}

// Lexer turns Corvid source text into a token stream. Layout is resolved
// here, not in the parser: every logical line of simple statements is
// closed with exactly one NEWLINE, every indented region is bracketed by
// one INDENT/DEDENT pair, and blank or comment-only lines contribute no
// tokens. Inside parentheses and square brackets newlines are treated as
// plain whitespace so expressions may span lines.
type Lexer struct {
	input    []rune
	filename string

	pos    int  // index of the current rune
	offset int  // byte offset of the current rune
	ch     rune // current rune (0 = EOF)
	line   int  // 1-based line of the current rune
	column int  // 1-based column of the current rune

	baseOffset int // rebasing for sub-lexers over interpolation segments

	indents     []int   // indentation stack, always starts with 0
	pending     []Token // queued structural tokens
	brackets    int     // ( and [ nesting depth
	atLineStart bool
	lastWasNL   bool // suppress NEWLINE for blank lines and after DEDENT runs

	Errors []LexerError
}

// New creates a lexer over a complete source module.
func New(input string) *Lexer {
	return NewAt(input, 1, 1, 0)
}

// NewAt creates a lexer whose emitted spans are rebased to the given
// line, column, and byte offset. The interpolation parser uses this to
// report positions inside string literals relative to the enclosing
// module, not the extracted segment.
func NewAt(input string, line, column, offset int) *Lexer {
	l := &Lexer{
		input:       []rune(input),
		pos:         -1,
		line:        line,
		column:      column - 1, // first read() lands on `column`
		baseOffset:  offset,
		indents:     []int{0},
		atLineStart: true,
		lastWasNL:   true,
	}
	l.read()
	return l
}

// SetFilename attributes all subsequently emitted spans to name.
func (l *Lexer) SetFilename(name string) {
	l.filename = name
}

func (l *Lexer) addError(kind LexerErrorKind, msg string, span Span) {
	l.Errors = append(l.Errors, LexerError{Kind: kind, Message: msg, Span: span})
}

// read advances to the next rune, maintaining line/column/byte-offset
// bookkeeping. Columns count runes; offsets count bytes.
func (l *Lexer) read() {
	prev := l.pos
	l.pos++

	if prev >= 0 && prev < len(l.input) {
		l.offset += utf8.RuneLen(l.input[prev])
	}
	if prev >= 0 && prev < len(l.input) && l.input[prev] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}

	if l.pos >= len(l.input) {
		l.ch = 0
		return
	}
	l.ch = l.input[l.pos]
}

func (l *Lexer) peek() rune {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

func (l *Lexer) spanFrom(startLine, startColumn, startOff int) Span {
	return Span{
		Filename: l.filename,
		Line:     startLine,
		Column:   startColumn,
		Start:    l.baseOffset + startOff,
		End:      l.baseOffset + l.offset,
	}
}

func (l *Lexer) makeToken(tt TokenType, startLine, startColumn, startOff int, raw, value string) Token {
	return Token{
		Type:  tt,
		Raw:   raw,
		Value: value,
		Span:  l.spanFrom(startLine, startColumn, startOff),
	}
}

func (l *Lexer) pointToken(tt TokenType) Token {
	return Token{
		Type: tt,
		Span: Span{
			Filename: l.filename,
			Line:     l.line,
			Column:   l.column,
			Start:    l.baseOffset + l.offset,
			End:      l.baseOffset + l.offset,
		},
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	if len(l.pending) > 0 {
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok
	}

	for {
		if l.atLineStart && l.brackets == 0 {
			if tok, ok := l.handleLineStart(); ok {
				return tok
			}
			continue
		}

		// Intra-line whitespace.
		for l.ch == ' ' || l.ch == '\t' {
			l.read()
		}

		if l.ch == '#' {
			for l.ch != '\n' && l.ch != 0 {
				l.read()
			}
			continue
		}

		if l.ch == '\r' {
			l.read()
			continue
		}

		if l.ch == '\n' {
			l.read()
			if l.brackets > 0 {
				// Newlines inside brackets are plain whitespace and
				// open no new logical line.
				continue
			}
			l.atLineStart = true
			if l.lastWasNL {
				continue
			}
			l.lastWasNL = true
			return l.pointToken(NEWLINE)
		}

		if l.ch == 0 {
			return l.finish()
		}

		l.lastWasNL = false
		return l.lexToken()
	}
}

// handleLineStart measures leading whitespace and emits INDENT/DEDENT
// tokens as the indentation level changes. Blank and comment-only lines
// are skipped without producing tokens. Returns (token, true) when a
// structural token must be emitted before the line's first real token.
func (l *Lexer) handleLineStart() (Token, bool) {
	startLine, startColumn, startOff := l.line, l.column, l.offset

	width := 0
	for l.ch == ' ' || l.ch == '\t' {
		if l.ch == '\t' {
			l.addError(ErrBadIndentation, "tab in leading whitespace; indent with spaces",
				l.spanFrom(l.line, l.column, l.offset))
		}
		width++
		l.read()
	}

	// Blank or comment-only line: no tokens, no layout change.
	if l.ch == '\n' || l.ch == '\r' || l.ch == '#' || l.ch == 0 {
		if l.ch == '#' {
			for l.ch != '\n' && l.ch != 0 {
				l.read()
			}
		}
		if l.ch == 0 {
			l.atLineStart = false
			return Token{}, false
		}
		l.read() // consume the newline (or the \r; the \n follows)
		return Token{}, false
	}

	l.atLineStart = false
	cur := l.indents[len(l.indents)-1]

	switch {
	case width > cur:
		l.indents = append(l.indents, width)
		l.lastWasNL = true
		return l.makeToken(INDENT, startLine, startColumn, startOff, "", ""), true
	case width < cur:
		var dedents []Token
		for len(l.indents) > 1 && l.indents[len(l.indents)-1] > width {
			l.indents = l.indents[:len(l.indents)-1]
			dedents = append(dedents, l.makeToken(DEDENT, startLine, startColumn, startOff, "", ""))
		}
		if l.indents[len(l.indents)-1] != width {
			l.addError(ErrBadIndentation, "dedent does not match any outer indentation level",
				l.spanFrom(startLine, startColumn, startOff))
		}
		l.pending = append(l.pending, dedents[1:]...)
		l.lastWasNL = true
		return dedents[0], true
	default:
		return Token{}, false
	}
}

// finish emits the trailing NEWLINE and DEDENT run at end of input.
func (l *Lexer) finish() Token {
	if !l.lastWasNL {
		l.lastWasNL = true
		return l.pointToken(NEWLINE)
	}
	for len(l.indents) > 1 {
		l.indents = l.indents[:len(l.indents)-1]
		return l.pointToken(DEDENT)
	}
	return l.pointToken(EOF)
}

// lexToken scans one non-structural token starting at the current rune.
func (l *Lexer) lexToken() Token {
	startLine, startColumn := l.line, l.column
	startPos, startOff := l.pos, l.offset

	single := func(tt TokenType) Token {
		raw := string(l.ch)
		l.read()
		return l.makeToken(tt, startLine, startColumn, startOff, raw, raw)
	}
	double := func(tt TokenType) Token {
		raw := string(l.ch) + string(l.peek())
		l.read()
		l.read()
		return l.makeToken(tt, startLine, startColumn, startOff, raw, raw)
	}

	switch l.ch {
	case '=':
		if l.peek() == '=' {
			return double(EQ)
		}
		return single(ASSIGN)
	case '+':
		if l.peek() == '=' {
			return double(PLUS_EQ)
		}
		return single(PLUS)
	case '-':
		if l.peek() == '=' {
			return double(MINUS_EQ)
		}
		return single(MINUS)
	case '*':
		return single(ASTERISK)
	case '!':
		if l.peek() == '=' {
			return double(NOT_EQ)
		}
		return single(BANG)
	case '<':
		if l.peek() == '=' {
			return double(LE)
		}
		return single(LT)
	case '>':
		if l.peek() == '=' {
			return double(GE)
		}
		return single(GT)
	case '&':
		if l.peek() == '&' {
			return double(AND)
		}
		tok := single(ILLEGAL)
		l.addError(ErrIllegalRune, "unexpected '&'; logical and is '&&'", tok.Span)
		return tok
	case '|':
		if l.peek() == '|' {
			return double(OR)
		}
		return single(PIPE)
	case ',':
		return single(COMMA)
	case ':':
		return single(COLON)
	case '.':
		if l.peek() == '.' {
			return double(DOTDOT)
		}
		return single(DOT)
	case '(':
		l.brackets++
		return single(LPAREN)
	case ')':
		if l.brackets > 0 {
			l.brackets--
		}
		return single(RPAREN)
	case '[':
		l.brackets++
		return single(LBRACKET)
	case ']':
		if l.brackets > 0 {
			l.brackets--
		}
		return single(RBRACKET)
	case '"':
		raw, inner, terminated := l.readString(startLine, startColumn, startPos, startOff)
		if !terminated {
			return l.makeToken(ILLEGAL, startLine, startColumn, startOff, raw, raw)
		}
		return l.makeToken(STRING, startLine, startColumn, startOff, raw, inner)
	}

	if isLetter(l.ch) {
		literal := l.readIdentifier()
		return l.makeToken(LookupIdent(literal), startLine, startColumn, startOff, literal, literal)
	}
	if isDigit(l.ch) {
		literal := l.readNumber()
		return l.makeToken(INT, startLine, startColumn, startOff, literal, literal)
	}

	tok := single(ILLEGAL)
	l.addError(ErrIllegalRune, "illegal character "+strconv.Quote(tok.Raw), tok.Span)
	return tok
}

func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.read()
	}
	return string(l.input[start:l.pos])
}

// readNumber reads a base-10 integer literal. Range checking happens in
// the parser, where overflow is a fatal syntax error.
func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) {
		l.read()
	}
	return string(l.input[start:l.pos])
}

// readString reads a string literal. Value is the inner text with the
// delimiting quotes stripped and escapes left intact: decoding is done
// by the interpolation splitter so that segment spans can still be
// mapped back onto the source.
func (l *Lexer) readString(startLine, startColumn, startPos, startOff int) (raw, inner string, terminated bool) {
	l.read() // opening quote
	innerStart := l.pos

	for {
		switch l.ch {
		case 0, '\n', '\r':
			l.addError(ErrUnterminatedString, "unterminated string literal",
				l.spanFrom(startLine, startColumn, startOff))
			return string(l.input[startPos:l.pos]), string(l.input[innerStart:l.pos]), false
		case '"':
			inner = string(l.input[innerStart:l.pos])
			l.read() // closing quote
			return string(l.input[startPos:l.pos]), inner, true
		case '\\':
			l.read()
			if l.ch != 0 {
				l.read()
			}
		default:
			l.read()
		}
	}
}

func isLetter(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
