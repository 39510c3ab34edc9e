package parser

import (
	"github.com/cwbudde/lox/internal/ast"
	"github.com/cwbudde/lox/internal/lexer"
)

// declaration = classDecl | funDecl | varDecl | statement
//
// A failed declaration is synchronized and replaced with an
// ast.InvalidDeclaration sentinel so the statement list keeps its shape;
// HadError halts the pipeline before the sentinel can reach the resolver.
func (p *Parser) declaration() ast.Statement {
	at := p.peek().Pos

	var stmt ast.Statement
	switch {
	case p.match(lexer.Class):
		stmt = p.classDeclaration()
	case p.checkFunDecl():
		p.advance() // consume "fun"
		stmt = p.function("function")
	case p.match(lexer.Var):
		stmt = p.varDeclaration()
	default:
		stmt = p.statement()
	}

	if stmt == nil {
		p.synchronize()
		return &ast.InvalidDeclaration{At: at}
	}
	return stmt
}

// checkFunDecl reports whether the parser is at a funDecl ("fun" IDENT)
// rather than a lambda expression statement ("fun" "("), per spec.md's
// "only when IDENT follows" clause.
func (p *Parser) checkFunDecl() bool {
	return p.check(lexer.Fun) && p.peekNextIs(lexer.Identifier)
}

func (p *Parser) peekNextIs(t lexer.TokenType) bool {
	if p.current+1 >= len(p.tokens) {
		return false
	}
	return p.tokens[p.current+1].Type == t
}

// classDecl = "class" IDENT ("<" IDENT)? "{" function* "}"
func (p *Parser) classDeclaration() ast.Statement {
	name, ok := p.consume(lexer.Identifier, "Expect class name.")
	if !ok {
		return nil
	}

	var superclass *ast.Variable
	if p.match(lexer.Less) {
		superName, ok := p.consume(lexer.Identifier, "Expect superclass name.")
		if !ok {
			return nil
		}
		superclass = &ast.Variable{Name: superName}
	}

	if _, ok := p.consume(lexer.LeftBrace, "Expect '{' before class body."); !ok {
		return nil
	}

	var methods []*ast.FunctionStmt
	for !p.check(lexer.RightBrace) && !p.isAtEnd() {
		if method := p.function("method"); method != nil {
			methods = append(methods, method)
		}
	}

	if _, ok := p.consume(lexer.RightBrace, "Expect '}' after class body."); !ok {
		return nil
	}

	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}

// function = IDENT "(" params? ")" block, shared by funDecl and class
// method bodies (kind is "function" or "method", used only for messages).
func (p *Parser) function(kind string) *ast.FunctionStmt {
	name, ok := p.consume(lexer.Identifier, "Expect "+kind+" name.")
	if !ok {
		return nil
	}
	keyword := name
	if _, ok := p.consume(lexer.LeftParen, "Expect '(' after "+kind+" name."); !ok {
		return nil
	}
	params := p.parameterList()
	if _, ok := p.consume(lexer.LeftBrace, "Expect '{' before "+kind+" body."); !ok {
		return nil
	}
	body := p.block()
	return &ast.FunctionStmt{Name: name, Lambda: &ast.Lambda{Keyword: keyword, Params: params, Body: body}}
}

// varDecl = "var" IDENT ("=" expression)? ";"
func (p *Parser) varDeclaration() ast.Statement {
	name, ok := p.consume(lexer.Identifier, "Expect variable name.")
	if !ok {
		return nil
	}

	var initializer ast.Expression
	if p.match(lexer.Equal) {
		initializer = p.expression()
	}

	if _, ok := p.consume(lexer.Semicolon, "Expect ';' after variable declaration."); !ok {
		return nil
	}
	return &ast.VarStmt{Name: name, Initializer: initializer}
}
