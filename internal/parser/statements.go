package parser

import (
	"github.com/cwbudde/lox/internal/ast"
	"github.com/cwbudde/lox/internal/lexer"
)

// statement = exprStmt | forStmt | ifStmt | printStmt
//           | returnStmt | whileStmt | breakStmt | block
func (p *Parser) statement() ast.Statement {
	switch {
	case p.match(lexer.For):
		return p.forStatement()
	case p.match(lexer.If):
		return p.ifStatement()
	case p.match(lexer.Print):
		return p.printStatement()
	case p.match(lexer.Return):
		return p.returnStatement()
	case p.match(lexer.While):
		return p.whileStatement()
	case p.match(lexer.Break):
		return p.breakStatement()
	case p.match(lexer.LeftBrace):
		brace := p.previous()
		return &ast.BlockStmt{Brace: brace, Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

// block = "{" declaration* "}", called with the opening brace already
// consumed by the caller (statement() or function()).
func (p *Parser) block() []ast.Statement {
	var statements []ast.Statement
	for !p.check(lexer.RightBrace) && !p.isAtEnd() {
		statements = append(statements, p.declaration())
	}
	p.consume(lexer.RightBrace, "Expect '}' after block.")
	return statements
}

// forStmt = "for" "(" (varDecl|exprStmt|";") expression? ";" expression? ")" statement
//
// Desugars to "{ I; while (C ?? true) { B; U; } }" per spec.md §4.2: the
// initializer runs once before an ordinary WhileStmt whose body is wrapped
// to run the increment after the loop body each iteration. A missing
// condition defaults to the literal `true`.
func (p *Parser) forStatement() ast.Statement {
	keyword := p.previous()
	if _, ok := p.consume(lexer.LeftParen, "Expect '(' after 'for'."); !ok {
		return nil
	}

	var initializer ast.Statement
	switch {
	case p.match(lexer.Semicolon):
		initializer = nil
	case p.match(lexer.Var):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expression
	if !p.check(lexer.Semicolon) {
		condition = p.expression()
	}
	if _, ok := p.consume(lexer.Semicolon, "Expect ';' after loop condition."); !ok {
		return nil
	}

	var increment ast.Expression
	if !p.check(lexer.RightParen) {
		increment = p.expression()
	}
	if _, ok := p.consume(lexer.RightParen, "Expect ')' after for clauses."); !ok {
		return nil
	}

	p.loopDepth++
	body := p.statement()
	p.loopDepth--

	if increment != nil {
		body = &ast.BlockStmt{Brace: keyword, Statements: []ast.Statement{
			body,
			&ast.ExpressionStmt{Expression: increment},
		}}
	}

	if condition == nil {
		condition = &ast.Literal{Token: keyword, Value: true}
	}
	body = &ast.WhileStmt{Keyword: keyword, Cond: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Brace: keyword, Statements: []ast.Statement{initializer, body}}
	}

	return body
}

// ifStmt = "if" "(" expression ")" statement ("else" statement)?
func (p *Parser) ifStatement() ast.Statement {
	keyword := p.previous()
	if _, ok := p.consume(lexer.LeftParen, "Expect '(' after 'if'."); !ok {
		return nil
	}
	cond := p.expression()
	if _, ok := p.consume(lexer.RightParen, "Expect ')' after if condition."); !ok {
		return nil
	}

	then := p.statement()
	var elseBranch ast.Statement
	if p.match(lexer.Else) {
		elseBranch = p.statement()
	}

	return &ast.IfStmt{Keyword: keyword, Cond: cond, Then: then, Else: elseBranch}
}

// printStmt = "print" expression ";"
func (p *Parser) printStatement() ast.Statement {
	keyword := p.previous()
	value := p.expression()
	p.consume(lexer.Semicolon, "Expect ';' after value.")
	return &ast.PrintStmt{Keyword: keyword, Expression: value}
}

// returnStmt = "return" expression? ";"
func (p *Parser) returnStatement() ast.Statement {
	keyword := p.previous()
	var value ast.Expression
	if !p.check(lexer.Semicolon) {
		value = p.expression()
	}
	p.consume(lexer.Semicolon, "Expect ';' after return value.")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

// whileStmt = "while" "(" expression ")" statement
func (p *Parser) whileStatement() ast.Statement {
	keyword := p.previous()
	if _, ok := p.consume(lexer.LeftParen, "Expect '(' after 'while'."); !ok {
		return nil
	}
	cond := p.expression()
	if _, ok := p.consume(lexer.RightParen, "Expect ')' after condition."); !ok {
		return nil
	}

	p.loopDepth++
	body := p.statement()
	p.loopDepth--

	return &ast.WhileStmt{Keyword: keyword, Cond: cond, Body: body}
}

// breakStmt = "break" ";", valid only inside a loop.
func (p *Parser) breakStatement() ast.Statement {
	keyword := p.previous()
	if p.loopDepth == 0 {
		p.errorAt(keyword, "Can't use 'break' outside of a loop.")
	}
	p.consume(lexer.Semicolon, "Expect ';' after 'break'.")
	return &ast.BreakStmt{Keyword: keyword}
}

// exprStmt = expression ";"
func (p *Parser) expressionStatement() ast.Statement {
	expr := p.expression()
	p.consume(lexer.Semicolon, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expression: expr}
}
