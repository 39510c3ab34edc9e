package parser

import "github.com/cwbudde/lox/internal/lexer"

// synchronize implements panic-mode recovery: discard tokens until the one
// after a statement-terminating semicolon, or until a token that begins a
// new declaration. Grounded on the teacher's internal/parser/error_recovery.go
// synchronization-set approach, collapsed to Lox's single declaration-starter
// set (DWScript's block-closer and nested-declaration sets don't apply to a
// brace-delimited grammar with no END keywords).
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == lexer.Semicolon {
			return
		}

		switch p.peek().Type {
		case lexer.Class, lexer.Fun, lexer.Var, lexer.For,
			lexer.If, lexer.While, lexer.Print, lexer.Return:
			return
		}

		p.advance()
	}
}
