package parser

import "github.com/cwbudde/lox/internal/lexer"

// check reports whether the current token has type t without consuming it.
func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

// match consumes the current token and returns true if it has one of the
// given types; otherwise it leaves the cursor untouched.
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// advance consumes and returns the current token.
func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// isAtEnd reports whether the cursor has reached the EOF token.
func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

// peek returns the current (not yet consumed) token.
func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

// previous returns the most recently consumed token.
func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

// consume advances past the current token if it has type t, otherwise it
// reports message at the current token and returns a zero Token; callers
// use ok to decide whether to bail out of the current production.
func (p *Parser) consume(t lexer.TokenType, message string) (lexer.Token, bool) {
	if p.check(t) {
		return p.advance(), true
	}
	p.errorAtCurrent(message)
	return lexer.Token{}, false
}

func (p *Parser) errorAtCurrent(message string) {
	tok := p.peek()
	p.reporter.ErrorAt(tok.Line(), tok.Lexeme, tok.Type == lexer.EOF, message)
}

func (p *Parser) errorAt(tok lexer.Token, message string) {
	p.reporter.ErrorAt(tok.Line(), tok.Lexeme, tok.Type == lexer.EOF, message)
}
