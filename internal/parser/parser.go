package parser

import (
	"github.com/corvid-lang/corvid/internal/ast"
	"github.com/corvid-lang/corvid/internal/lexer"
)

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(ast.Expr) ast.Expr
)

type Option func(*options)

type options struct {
	module string
}

// WithModule configures the parser to attribute all emitted spans to the
// provided module name.
func WithModule(name string) Option {
	return func(o *options) {
		o.module = name
	}
}

// Precedence levels from loosest to tightest binding. Comparison
// operators share one non-chaining level; range binds tighter than any
// prefix operator so !a..b negates the whole range.
const (
	precedenceLowest = iota
	precedenceOr
	precedenceAnd
	precedenceComparison
	precedenceSum
	precedenceProduct
	precedencePrefix
	precedenceRange
	precedencePostfix
)

var precedences = map[lexer.TokenType]int{
	lexer.OR:       precedenceOr,
	lexer.AND:      precedenceAnd,
	lexer.EQ:       precedenceComparison,
	lexer.NOT_EQ:   precedenceComparison,
	lexer.LT:       precedenceComparison,
	lexer.LE:       precedenceComparison,
	lexer.GT:       precedenceComparison,
	lexer.GE:       precedenceComparison,
	lexer.PLUS:     precedenceSum,
	lexer.MINUS:    precedenceSum,
	lexer.ASTERISK: precedenceProduct,
	lexer.DOTDOT:   precedenceRange,
	lexer.LPAREN:   precedencePostfix,
	lexer.LBRACKET: precedencePostfix,
	lexer.DOT:      precedencePostfix,
}

// Parser implements a Pratt-style recursive descent parser for Corvid.
// Invariants:
//   - Lookahead: curTok always reflects the token currently under
//     examination; peekTok mirrors the next token pulled from the lexer.
//     The pair forms the parser's sole lookahead window and is only
//     mutated via nextToken.
//   - Errors are terminal: the first syntax error sets the fatal flag,
//     every parse routine bails out as soon as it observes it, and the
//     caller receives either a complete tree or the first error in
//     token order. There is no resynchronization.
//   - Spans: AST node spans are monotonic and composed via mergeSpan so
//     that a parent's span covers all of its children.
//   - Statement convention: every parse*Stmt routine returns with
//     curTok on the first token after the statement, including its
//     terminator or the closing dedent of its block.
type Parser struct {
	lx      *lexer.Lexer
	curTok  lexer.Token
	peekTok lexer.Token

	errors []ParseError
	fatal  bool

	module string

	prefixFns map[lexer.TokenType]prefixParseFn
	infixFns  map[lexer.TokenType]infixParseFn
}

// New returns a parser initialised with the provided source input.
func New(input string, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	lx := lexer.New(input)
	if cfg.module != "" {
		lx.SetFilename(cfg.module)
	}
	return newFromLexer(lx, cfg.module)
}

// newFromLexer wires a parser onto an existing lexer. The interpolation
// sub-parser uses this with a lexer rebased into the enclosing literal.
func newFromLexer(lx *lexer.Lexer, module string) *Parser {
	p := &Parser{
		lx:        lx,
		module:    module,
		prefixFns: make(map[lexer.TokenType]prefixParseFn),
		infixFns:  make(map[lexer.TokenType]infixParseFn),
	}

	p.registerPrefix(lexer.LOWER_ID, p.parseIdentifier)
	p.registerPrefix(lexer.UPPER_ID, p.parseUpperIdentifier)
	p.registerPrefix(lexer.SELF, p.parseSelfExpr)
	p.registerPrefix(lexer.INT, p.parseIntegerLiteral)
	p.registerPrefix(lexer.STRING, p.parseStringLiteral)
	p.registerPrefix(lexer.BANG, p.parsePrefixExpr)
	p.registerPrefix(lexer.LPAREN, p.parseRecordOrGroupedExpr)
	p.registerPrefix(lexer.RETURN, p.parseReturnExpr)

	p.registerInfix(lexer.PLUS, p.parseInfixExpr)
	p.registerInfix(lexer.MINUS, p.parseInfixExpr)
	p.registerInfix(lexer.ASTERISK, p.parseInfixExpr)
	p.registerInfix(lexer.AND, p.parseInfixExpr)
	p.registerInfix(lexer.OR, p.parseInfixExpr)
	p.registerInfix(lexer.EQ, p.parseInfixExpr)
	p.registerInfix(lexer.NOT_EQ, p.parseInfixExpr)
	p.registerInfix(lexer.LT, p.parseInfixExpr)
	p.registerInfix(lexer.LE, p.parseInfixExpr)
	p.registerInfix(lexer.GT, p.parseInfixExpr)
	p.registerInfix(lexer.GE, p.parseInfixExpr)
	p.registerInfix(lexer.DOTDOT, p.parseRangeExpr)
	p.registerInfix(lexer.LPAREN, p.parseCallExpr)
	p.registerInfix(lexer.LBRACKET, p.parseIndexExpr)
	p.registerInfix(lexer.DOT, p.parseDottedExpr)

	// Seed curTok/peekTok.
	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) registerPrefix(tt lexer.TokenType, fn prefixParseFn) {
	p.prefixFns[tt] = fn
}

func (p *Parser) registerInfix(tt lexer.TokenType, fn infixParseFn) {
	p.infixFns[tt] = fn
}

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.lx.NextToken()
	p.promoteLexerErrors()
}

// promoteLexerErrors surfaces accumulated lexer errors as fatal parse
// errors so character-level failures abort the parse like any other.
func (p *Parser) promoteLexerErrors() {
	if p.fatal || len(p.lx.Errors) == 0 {
		return
	}
	first := p.lx.Errors[0]
	d := first.ToDiagnostic()
	p.errors = append(p.errors, ParseError{
		Message: first.Message,
		Span:    first.Span,
		Code:    d.Code,
	})
	p.fatal = true
}

// Errors returns all parse errors encountered, in token order.
func (p *Parser) Errors() []ParseError {
	return p.errors
}

// FirstError returns the first parse error as an error value, or nil.
func (p *Parser) FirstError() error {
	if len(p.errors) == 0 {
		return nil
	}
	return &p.errors[0]
}

// ParseFile parses a full compilation unit: a sequence of type,
// function, and import declarations. Returns either a complete,
// resolved tree or the first error encountered.
func (p *Parser) ParseFile() (*ast.File, error) {
	start := p.curTok.Span

	var decls []ast.Decl
	for p.curTok.Type != lexer.EOF && !p.fatal {
		decl := p.parseDecl()
		if decl == nil {
			break
		}
		decls = append(decls, decl)
	}
	if err := p.FirstError(); err != nil {
		return nil, err
	}

	file := ast.NewFile(decls, mergeSpan(start, p.curTok.Span))
	if err := p.resolveDottedAccess(file); err != nil {
		return nil, err
	}
	return file, nil
}

// ParseStmt parses a single statement followed by end of input, for
// embedding contexts that evaluate one line at a time.
func (p *Parser) ParseStmt() (ast.Stmt, error) {
	stmt := p.parseStatement()
	if err := p.FirstError(); err != nil {
		return nil, err
	}
	if p.curTok.Type != lexer.EOF {
		p.reportUnexpected(p.curTok, "after statement")
		return nil, p.FirstError()
	}
	if err := p.resolveDottedAccess(stmt); err != nil {
		return nil, err
	}
	return stmt, nil
}

// ParseExpr parses a single expression followed by end of input.
func (p *Parser) ParseExpr() (ast.Expr, error) {
	expr := p.parseExpression(precedenceLowest)
	if err := p.FirstError(); err != nil {
		return nil, err
	}
	if p.peekTok.Type != lexer.NEWLINE && p.peekTok.Type != lexer.EOF {
		p.reportUnexpected(p.peekTok, "after expression")
		return nil, p.FirstError()
	}
	if err := p.resolveDottedAccess(expr); err != nil {
		return nil, err
	}
	return expr, nil
}

// expectPeek advances when the next token matches tt, and reports a
// fatal unexpected-token error otherwise.
func (p *Parser) expectPeek(tt lexer.TokenType) bool {
	if p.peekTok.Type == tt {
		p.nextToken()
		return true
	}
	p.reportExpected(describeToken(tt), p.peekTok)
	return false
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekTok.Type]; ok {
		return prec
	}
	return precedenceLowest
}
