// Package parser implements a Pratt parser (top-down operator
// precedence) for ES2015+ JavaScript.
//
// The parser drives the lexer one token at a time, builds AST nodes into
// an arena, and collects syntax errors instead of stopping at the first
// one: a failed production yields an Error-kind node of the expected
// family and the parser resyncs at the next statement boundary. The
// resulting Program carries the partial tree together with every
// recorded error.
package parser

import (
	"github.com/esparse/esparse/ast"
	"github.com/esparse/esparse/lexer"
)

// Program is the result of one parse: the source text, the top-level
// statement list, and every non-fatal error encountered. The backing
// arena lives exactly as long as the Program.
type Program struct {
	Source string
	Body   []*ast.Statement
	Errors []*SyntaxError

	arena *ast.Arena
}

// Nodes returns the number of AST nodes allocated for the program.
func (p *Program) Nodes() int {
	return p.arena.Nodes()
}

// Parse consumes source and produces a Program. The Program is always
// returned, with as much of the tree as could be recovered; when any
// syntax errors were recorded the first one is also returned as the
// error value.
func Parse(source string) (*Program, error) {
	p := &Parser{
		lexer: lexer.NewLexer(source),
		arena: ast.NewArena(),
	}

	body := p.parseProgram()

	program := &Program{
		Source: source,
		Body:   body,
		Errors: p.errors,
		arena:  p.arena,
	}

	if len(p.errors) != 0 {
		return program, p.errors[0]
	}
	return program, nil
}

// Parser holds the state of one parse. It owns its lexer and arena
// exclusively; a Parser must not be shared or reused.
type Parser struct {
	lexer *lexer.Lexer
	arena *ast.Arena

	// One-token lookahead. The token is pulled from the lexer lazily so
	// the regex and template re-entry hooks can rescan before a wrong
	// lookahead gets committed.
	token    lexer.Token
	buffered bool

	// End offset of the most recently consumed token; composite nodes
	// close their span with it.
	lastEnd int

	errors []*SyntaxError
}

// parseProgram consumes the top-level statement list.
func (p *Parser) parseProgram() []*ast.Statement {
	body := make([]*ast.Statement, 0, 8)

	for {
		token := p.next()
		if token.Type == lexer.EndOfProgram {
			return body
		}
		body = append(body, p.statement(token))
	}
}

// peek returns the lookahead token without consuming it.
func (p *Parser) peek() lexer.Token {
	if !p.buffered {
		p.token = p.lexer.Next()
		p.buffered = true
	}
	return p.token
}

// next consumes and returns the lookahead token.
func (p *Parser) next() lexer.Token {
	token := p.peek()
	p.buffered = false
	p.lastEnd = token.End
	return token
}

// consume drops the lookahead token.
func (p *Parser) consume() {
	p.next()
}

// expect consumes the next token and records an error unless it has the
// wanted type.
func (p *Parser) expect(tt lexer.TokenType) bool {
	token := p.next()
	if token.Type != tt {
		p.unexpected(token)
		return false
	}
	return true
}

// expectIdentifier consumes the next token, which must be an identifier.
func (p *Parser) expectIdentifier() (lexer.Token, bool) {
	token := p.next()
	if token.Type != lexer.Identifier {
		p.unexpected(token)
		return token, false
	}
	return token, true
}

// asi answers the automatic semicolon insertion query for the current
// position: a real `;` is explicit; a closing brace, the end of input,
// or a preceding line terminator insert one implicitly.
func (p *Parser) asi() lexer.Asi {
	switch p.peek().Type {
	case lexer.Semicolon:
		return lexer.ExplicitSemicolon
	case lexer.BraceClose, lexer.EndOfProgram:
		return lexer.ImplicitSemicolon
	}
	if p.lexer.Asi() {
		return lexer.ImplicitSemicolon
	}
	return lexer.NoSemicolon
}

// expectSemicolon finishes a statement that the grammar terminates with
// a semicolon, honoring ASI. A genuinely missing semicolon is recorded
// and the parser resyncs at the next statement boundary.
func (p *Parser) expectSemicolon() {
	switch p.asi() {
	case lexer.ExplicitSemicolon:
		p.consume()
	case lexer.ImplicitSemicolon:
	case lexer.NoSemicolon:
		p.unexpected(p.peek())
		p.recover()
	}
}

// unexpected records an error for the offending token.
func (p *Parser) unexpected(token lexer.Token) {
	kind := UnexpectedToken
	if token.Type == lexer.EndOfProgram || token.Type == lexer.UnexpectedEndOfProgram {
		kind = UnexpectedEndOfProgram
	}
	p.errors = append(p.errors, &SyntaxError{Kind: kind, Start: token.Start, End: token.End})
}

// errorAt records an UnexpectedToken error for an arbitrary span.
func (p *Parser) errorAt(start, end int) {
	p.errors = append(p.errors, &SyntaxError{Kind: UnexpectedToken, Start: start, End: end})
}

// recover skips forward to the next statement boundary: past a `;`, or
// up to (not including) a `}` or the end of input.
func (p *Parser) recover() {
	for {
		switch p.peek().Type {
		case lexer.Semicolon:
			p.consume()
			return
		case lexer.BraceClose, lexer.EndOfProgram:
			return
		default:
			p.consume()
		}
	}
}

// badExpression allocates the Error expression placeholder.
func (p *Parser) badExpression(token lexer.Token) *ast.Expression {
	return p.arena.Expression(ast.Expression{
		Kind:  ast.ExprError,
		Start: token.Start,
		End:   token.End,
	})
}

// badStatement allocates the Error statement placeholder.
func (p *Parser) badStatement(start int) *ast.Statement {
	end := p.lastEnd
	if end < start {
		end = start
	}
	return p.arena.Statement(ast.Statement{
		Kind:  ast.StmtError,
		Start: start,
		End:   end,
	})
}

// identifier allocates an identifier expression for the token.
func (p *Parser) identifier(token lexer.Token) *ast.Expression {
	return p.arena.Expression(ast.Expression{
		Kind:  ast.ExprIdentifier,
		Name:  token.Value,
		Start: token.Start,
		End:   token.End,
	})
}

// literal allocates a literal expression for the token.
func (p *Parser) literal(token lexer.Token) *ast.Expression {
	var kind ast.LiteralKind
	switch token.Type {
	case lexer.LiteralNumber:
		kind = ast.LiteralNumber
	case lexer.LiteralBinary:
		kind = ast.LiteralBinary
	case lexer.LiteralString:
		kind = ast.LiteralString
	case lexer.LiteralTrue:
		kind = ast.LiteralTrue
	case lexer.LiteralFalse:
		kind = ast.LiteralFalse
	case lexer.LiteralNull:
		kind = ast.LiteralNull
	case lexer.LiteralUndefined:
		kind = ast.LiteralUndefined
	case lexer.LiteralRegEx:
		kind = ast.LiteralRegEx
	}

	return p.arena.Expression(ast.Expression{
		Kind:    ast.ExprLiteral,
		Literal: kind,
		Value:   token.Value,
		Number:  token.Number,
		Start:   token.Start,
		End:     token.End,
	})
}
