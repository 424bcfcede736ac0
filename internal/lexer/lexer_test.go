package lexer

import (
	"testing"
)

type tokenExpectation struct {
	expectedType TokenType
	expectedRaw  string
}

func expectTokens(t *testing.T, input string, tests []tokenExpectation) *Lexer {
	t.Helper()

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q (raw %q)",
				i, tt.expectedType, tok.Type, tok.Raw)
		}
		if tok.Raw != tt.expectedRaw {
			t.Fatalf("tests[%d] - raw wrong. expected=%q, got=%q",
				i, tt.expectedRaw, tok.Raw)
		}
	}
	return l
}

func TestNextToken_Operators(t *testing.T) {
	input := `= += -= + - * ! && || | == != < > <= >= , : . .. ( ) [ ]`

	expectTokens(t, input, []tokenExpectation{
		{ASSIGN, "="},
		{PLUS_EQ, "+="},
		{MINUS_EQ, "-="},
		{PLUS, "+"},
		{MINUS, "-"},
		{ASTERISK, "*"},
		{BANG, "!"},
		{AND, "&&"},
		{OR, "||"},
		{PIPE, "|"},
		{EQ, "=="},
		{NOT_EQ, "!="},
		{LT, "<"},
		{GT, ">"},
		{LE, "<="},
		{GE, ">="},
		{COMMA, ","},
		{COLON, ":"},
		{DOT, "."},
		{DOTDOT, ".."},
		{LPAREN, "("},
		{RPAREN, ")"},
		{LBRACKET, "["},
		{RBRACKET, "]"},
		{NEWLINE, ""},
		{EOF, ""},
	})
}

func TestNextToken_KeywordsAndIdentifiers(t *testing.T) {
	input := `type fn import let for in while match if elif else return self _ foo Bar f2`

	expectTokens(t, input, []tokenExpectation{
		{TYPE, "type"},
		{FN, "fn"},
		{IMPORT, "import"},
		{LET, "let"},
		{FOR, "for"},
		{IN, "in"},
		{WHILE, "while"},
		{MATCH, "match"},
		{IF, "if"},
		{ELIF, "elif"},
		{ELSE, "else"},
		{RETURN, "return"},
		{SELF, "self"},
		{UNDERSCORE, "_"},
		{LOWER_ID, "foo"},
		{UPPER_ID, "Bar"},
		{LOWER_ID, "f2"},
		{NEWLINE, ""},
		{EOF, ""},
	})
}

func TestNextToken_IndentationBlocks(t *testing.T) {
	input := "fn add(x: I32): I32 =\n    return x + 1\n"

	expectTokens(t, input, []tokenExpectation{
		{FN, "fn"},
		{LOWER_ID, "add"},
		{LPAREN, "("},
		{LOWER_ID, "x"},
		{COLON, ":"},
		{UPPER_ID, "I32"},
		{RPAREN, ")"},
		{COLON, ":"},
		{UPPER_ID, "I32"},
		{ASSIGN, "="},
		{NEWLINE, ""},
		{INDENT, ""},
		{RETURN, "return"},
		{LOWER_ID, "x"},
		{PLUS, "+"},
		{INT, "1"},
		{NEWLINE, ""},
		{DEDENT, ""},
		{EOF, ""},
	})
}

func TestNextToken_NestedDedentRunAtEOF(t *testing.T) {
	input := "while a:\n    while b:\n        c\n"

	expectTokens(t, input, []tokenExpectation{
		{WHILE, "while"},
		{LOWER_ID, "a"},
		{COLON, ":"},
		{NEWLINE, ""},
		{INDENT, ""},
		{WHILE, "while"},
		{LOWER_ID, "b"},
		{COLON, ":"},
		{NEWLINE, ""},
		{INDENT, ""},
		{LOWER_ID, "c"},
		{NEWLINE, ""},
		{DEDENT, ""},
		{DEDENT, ""},
		{EOF, ""},
	})
}

func TestNextToken_BlankAndCommentLinesProduceNoTokens(t *testing.T) {
	input := "a\n\n# comment line\n   # indented comment\nb\n"

	expectTokens(t, input, []tokenExpectation{
		{LOWER_ID, "a"},
		{NEWLINE, ""},
		{LOWER_ID, "b"},
		{NEWLINE, ""},
		{EOF, ""},
	})
}

func TestNextToken_TrailingCommentIsSkipped(t *testing.T) {
	input := "a # trailing\nb\n"

	expectTokens(t, input, []tokenExpectation{
		{LOWER_ID, "a"},
		{NEWLINE, ""},
		{LOWER_ID, "b"},
		{NEWLINE, ""},
		{EOF, ""},
	})
}

func TestNextToken_BracketsSuppressNewlines(t *testing.T) {
	input := "f(\n    1,\n    2,\n) + 3\n"

	expectTokens(t, input, []tokenExpectation{
		{LOWER_ID, "f"},
		{LPAREN, "("},
		{INT, "1"},
		{COMMA, ","},
		{INT, "2"},
		{COMMA, ","},
		{RPAREN, ")"},
		{PLUS, "+"},
		{INT, "3"},
		{NEWLINE, ""},
		{EOF, ""},
	})
}

func TestNextToken_StringLiteral(t *testing.T) {
	input := `let s = "hello ${name}!"` + "\n"

	l := New(input)
	var str Token
	for {
		tok := l.NextToken()
		if tok.Type == STRING {
			str = tok
			break
		}
		if tok.Type == EOF {
			t.Fatalf("no STRING token produced")
		}
	}

	if str.Raw != `"hello ${name}!"` {
		t.Fatalf("raw wrong: %q", str.Raw)
	}
	if str.Value != `hello ${name}!` {
		t.Fatalf("value should be inner text with quotes stripped, got %q", str.Value)
	}
	if len(l.Errors) != 0 {
		t.Fatalf("unexpected lexer errors: %v", l.Errors)
	}
}

func TestNextToken_SpanPositions(t *testing.T) {
	input := "let x = 10\n"

	l := New(input)
	l.SetFilename("main.cv")

	tok := l.NextToken() // let
	if tok.Span.Line != 1 || tok.Span.Column != 1 {
		t.Fatalf("let span wrong: %d:%d", tok.Span.Line, tok.Span.Column)
	}
	if tok.Span.Start != 0 || tok.Span.End != 3 {
		t.Fatalf("let offsets wrong: %d..%d", tok.Span.Start, tok.Span.End)
	}

	tok = l.NextToken() // x
	if tok.Span.Column != 5 || tok.Span.Start != 4 || tok.Span.End != 5 {
		t.Fatalf("x span wrong: col=%d %d..%d", tok.Span.Column, tok.Span.Start, tok.Span.End)
	}
	if tok.Span.Filename != "main.cv" {
		t.Fatalf("filename not propagated: %q", tok.Span.Filename)
	}
}

func TestNewAt_RebasesSpans(t *testing.T) {
	// Same text as the tail of some enclosing line starting at
	// line 3, column 10, offset 42.
	l := NewAt("a + b", 3, 10, 42)

	tok := l.NextToken()
	if tok.Span.Line != 3 || tok.Span.Column != 10 {
		t.Fatalf("rebased position wrong: %d:%d", tok.Span.Line, tok.Span.Column)
	}
	if tok.Span.Start != 42 || tok.Span.End != 43 {
		t.Fatalf("rebased offsets wrong: %d..%d", tok.Span.Start, tok.Span.End)
	}

	l.NextToken() // +
	tok = l.NextToken()
	if tok.Span.Column != 14 || tok.Span.Start != 46 {
		t.Fatalf("second ident rebased wrong: col=%d start=%d", tok.Span.Column, tok.Span.Start)
	}
}

func TestNextToken_MultiByteRunesUseByteOffsets(t *testing.T) {
	// é is two bytes; offsets count bytes while columns count runes.
	input := "\"héllo\" x\n"

	l := New(input)

	tok := l.NextToken()
	if tok.Type != STRING {
		t.Fatalf("tokentype wrong: %q", tok.Type)
	}
	if tok.Span.Start != 0 || tok.Span.End != 8 {
		t.Fatalf("string offsets wrong: %d..%d", tok.Span.Start, tok.Span.End)
	}

	tok = l.NextToken()
	if tok.Type != LOWER_ID || tok.Raw != "x" {
		t.Fatalf("token wrong: %q %q", tok.Type, tok.Raw)
	}
	if tok.Span.Start != 9 || tok.Span.End != 10 {
		t.Fatalf("x offsets wrong: %d..%d", tok.Span.Start, tok.Span.End)
	}
	if tok.Span.Column != 9 {
		t.Fatalf("x column wrong: %d", tok.Span.Column)
	}
}

func TestNextToken_MultiByteCommentOffsets(t *testing.T) {
	input := "# café\nx = 1\n"

	l := New(input)

	tok := l.NextToken()
	if tok.Type != LOWER_ID || tok.Raw != "x" {
		t.Fatalf("token wrong: %q %q", tok.Type, tok.Raw)
	}
	if tok.Span.Line != 2 || tok.Span.Column != 1 || tok.Span.Start != 8 {
		t.Fatalf("x span wrong: line=%d col=%d start=%d",
			tok.Span.Line, tok.Span.Column, tok.Span.Start)
	}
}

func TestNextToken_UnterminatedStringError(t *testing.T) {
	input := "let s = \"oops\nb\n"

	l := New(input)
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			break
		}
	}

	if len(l.Errors) == 0 {
		t.Fatalf("expected an unterminated string error")
	}
	if l.Errors[0].Kind != ErrUnterminatedString {
		t.Fatalf("wrong error kind: %v", l.Errors[0].Kind)
	}
}

func TestNextToken_TabIndentationError(t *testing.T) {
	input := "while a:\n\tb\n"

	l := New(input)
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			break
		}
	}

	if len(l.Errors) == 0 {
		t.Fatalf("expected a tab indentation error")
	}
	if l.Errors[0].Kind != ErrBadIndentation {
		t.Fatalf("wrong error kind: %v", l.Errors[0].Kind)
	}
}

func TestNextToken_MismatchedDedentError(t *testing.T) {
	input := "while a:\n    b\n  c\n"

	l := New(input)
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			break
		}
	}

	if len(l.Errors) == 0 {
		t.Fatalf("expected a dedent mismatch error")
	}
	if l.Errors[0].Kind != ErrBadIndentation {
		t.Fatalf("wrong error kind: %v", l.Errors[0].Kind)
	}
}

func TestNextToken_IllegalRune(t *testing.T) {
	input := "a @ b\n"

	l := New(input)
	sawIllegal := false
	for {
		tok := l.NextToken()
		if tok.Type == ILLEGAL {
			sawIllegal = true
		}
		if tok.Type == EOF {
			break
		}
	}

	if !sawIllegal {
		t.Fatalf("expected an ILLEGAL token")
	}
	if len(l.Errors) == 0 || l.Errors[0].Kind != ErrIllegalRune {
		t.Fatalf("expected an illegal rune error, got %v", l.Errors)
	}
}

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident    string
		expected TokenType
	}{
		{"let", LET},
		{"match", MATCH},
		{"self", SELF},
		{"_", UNDERSCORE},
		{"x", LOWER_ID},
		{"xs2", LOWER_ID},
		{"Vec", UPPER_ID},
		{"I32", UPPER_ID},
	}

	for _, tt := range tests {
		if got := LookupIdent(tt.ident); got != tt.expected {
			t.Errorf("LookupIdent(%q) = %q, want %q", tt.ident, got, tt.expected)
		}
	}
}
