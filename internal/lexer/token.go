package lexer

import "unicode"

// TokenType identifies the lexical class of a token.
type TokenType string

// Span is the source location of a token or AST node.
// Start/End are half-open byte offsets into the original input.
type Span struct {
	Filename string // optional source module name for diagnostics
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Start    int    // inclusive start offset
	End      int    // exclusive end offset
}

// Token is a single lexical token.
type Token struct {
	Type  TokenType
	Raw   string // exact source text
	Value string // decoded value (inner text for strings, same as Raw otherwise)
	Span  Span
}

const (
	// Special tokens
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers and literals. Identifiers split into two classes by the
	// case of their leading rune: type and constructor names are upper,
	// variables and functions are lower.
	LOWER_ID TokenType = "LOWER_ID" // x, push, toStr
	UPPER_ID TokenType = "UPPER_ID" // Vec, Some, I32
	INT      TokenType = "INT"      // 1234
	STRING   TokenType = "STRING"   // "hello ${name}"

	// Operators
	ASSIGN   TokenType = "="
	PLUS_EQ  TokenType = "+="
	MINUS_EQ TokenType = "-="
	PLUS     TokenType = "+"
	MINUS    TokenType = "-"
	ASTERISK TokenType = "*"
	BANG     TokenType = "!"
	AND      TokenType = "&&"
	OR       TokenType = "||"
	PIPE     TokenType = "|"

	EQ     TokenType = "=="
	NOT_EQ TokenType = "!="
	LT     TokenType = "<"
	GT     TokenType = ">"
	LE     TokenType = "<="
	GE     TokenType = ">="

	// Delimiters
	COMMA      TokenType = ","
	COLON      TokenType = ":"
	DOT        TokenType = "."
	DOTDOT     TokenType = ".."
	UNDERSCORE TokenType = "_"

	LPAREN   TokenType = "("
	RPAREN   TokenType = ")"
	LBRACKET TokenType = "["
	RBRACKET TokenType = "]"

	// Keywords
	TYPE   TokenType = "TYPE"
	FN     TokenType = "FN"
	IMPORT TokenType = "IMPORT"
	LET    TokenType = "LET"
	FOR    TokenType = "FOR"
	IN     TokenType = "IN"
	WHILE  TokenType = "WHILE"
	MATCH  TokenType = "MATCH"
	IF     TokenType = "IF"
	ELIF   TokenType = "ELIF"
	ELSE   TokenType = "ELSE"
	RETURN TokenType = "RETURN"
	SELF   TokenType = "SELF"

	// Structural tokens synthesized from layout. NEWLINE terminates a
	// logical line of simple statements; INDENT/DEDENT bracket an
	// indented region and always come in properly nested pairs.
	NEWLINE TokenType = "NEWLINE"
	INDENT  TokenType = "INDENT"
	DEDENT  TokenType = "DEDENT"
)

var keywords = map[string]TokenType{
	"type":   TYPE,
	"fn":     FN,
	"import": IMPORT,
	"let":    LET,
	"for":    FOR,
	"in":     IN,
	"while":  WHILE,
	"match":  MATCH,
	"if":     IF,
	"elif":   ELIF,
	"else":   ELSE,
	"return": RETURN,
	"self":   SELF,
	"_":      UNDERSCORE,
}

// LookupIdent resolves an identifier to its keyword token type, or to
// LOWER_ID/UPPER_ID based on the case of the leading rune.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	for _, r := range ident {
		if unicode.IsUpper(r) {
			return UPPER_ID
		}
		break
	}
	return LOWER_ID
}
