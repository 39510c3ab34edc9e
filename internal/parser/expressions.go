package parser

import (
	"github.com/cwbudde/lox/internal/ast"
	"github.com/cwbudde/lox/internal/lexer"
)

// expression is the grammar's top production: expression = comma.
func (p *Parser) expression() ast.Expression {
	return p.comma()
}

// comma = assignment ("," assignment)*
func (p *Parser) comma() ast.Expression {
	expr := p.assignment()
	for p.match(lexer.Comma) {
		op := p.previous()
		right := p.assignment()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// assignment = (call ".")? IDENT "=" assignment | logic_or
//
// Parsed right-associatively by recursing into assignment() for the RHS
// once an "=" is seen. The LHS is parsed as a normal logic_or expression
// first and then reinterpreted: a Variable becomes an Assign target, a Get
// becomes a Set target, anything else is an invalid assignment target
// (reported but not fatal, matching spec.md §4.2).
func (p *Parser) assignment() ast.Expression {
	expr := p.logicOr()

	if p.match(lexer.Equal) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}
		default:
			p.errorAt(equals, "Invalid assignment target.")
			return value
		}
	}

	return expr
}

// logic_or = logic_and ("or" logic_and)*
func (p *Parser) logicOr() ast.Expression {
	expr := p.logicAnd()
	for p.match(lexer.Or) {
		op := p.previous()
		right := p.logicAnd()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// logic_and = conditional ("and" conditional)*
func (p *Parser) logicAnd() ast.Expression {
	expr := p.conditional()
	for p.match(lexer.And) {
		op := p.previous()
		right := p.conditional()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// conditional = equality ("?" expression ":" expression)?
func (p *Parser) conditional() ast.Expression {
	expr := p.equality()
	if p.match(lexer.Question) {
		question := p.previous()
		ifTrue := p.expression()
		if _, ok := p.consume(lexer.Colon, "Expect ':' after then branch of conditional expression."); !ok {
			return expr
		}
		ifFalse := p.expression()
		expr = &ast.Conditional{Question: question, Cond: expr, IfTrue: ifTrue, IfFalse: ifFalse}
	}
	return expr
}

// equality = comparison (("!="|"==") comparison)*
func (p *Parser) equality() ast.Expression {
	expr := p.comparison()
	for p.match(lexer.BangEqual, lexer.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// comparison = term ((">"|">="|"<"|"<=") term)*
func (p *Parser) comparison() ast.Expression {
	expr := p.term()
	for p.match(lexer.Greater, lexer.GreaterEqual, lexer.Less, lexer.LessEqual) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// term = factor (("-"|"+") factor)*
func (p *Parser) term() ast.Expression {
	expr := p.factor()
	for p.match(lexer.Minus, lexer.Plus) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// factor = unary (("/"|"*") unary)*
func (p *Parser) factor() ast.Expression {
	expr := p.unary()
	for p.match(lexer.Slash, lexer.Star) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// unary = ("!"|"-") unary | call | lambda
func (p *Parser) unary() ast.Expression {
	if p.match(lexer.Bang, lexer.Minus) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Operator: op, Right: right}
	}
	if p.check(lexer.Fun) {
		return p.lambda()
	}
	return p.call()
}

// call = primary ("(" args? ")" | "." IDENT)*
func (p *Parser) call() ast.Expression {
	expr := p.primary()

	for {
		switch {
		case p.match(lexer.LeftParen):
			expr = p.finishCall(expr)
		case p.match(lexer.Dot):
			name, ok := p.consume(lexer.Identifier, "Expect property name after '.'.")
			if !ok {
				return expr
			}
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

// args = equality ("," equality)* ; not assignment, to avoid ambiguity with comma.
func (p *Parser) finishCall(callee ast.Expression) ast.Expression {
	var args []ast.Expression
	if !p.check(lexer.RightParen) {
		for {
			if len(args) >= maxArgs {
				p.errorAtCurrent("Can't have more than 255 arguments.")
			}
			args = append(args, p.equality())
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	paren, ok := p.consume(lexer.RightParen, "Expect ')' after arguments.")
	if !ok {
		return callee
	}
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

// lambda = "fun" "(" params? ")" block, consumed from unary() when "fun" is
// not followed by an identifier (that case is a funDecl, handled in
// declarations.go).
func (p *Parser) lambda() ast.Expression {
	keyword, _ := p.consume(lexer.Fun, "Expect 'fun'.")
	if _, ok := p.consume(lexer.LeftParen, "Expect '(' after 'fun'."); !ok {
		return &ast.Lambda{Keyword: keyword}
	}
	params := p.parameterList()
	if _, ok := p.consume(lexer.LeftBrace, "Expect '{' before lambda body."); !ok {
		return &ast.Lambda{Keyword: keyword, Params: params}
	}
	body := p.block()
	return &ast.Lambda{Keyword: keyword, Params: params, Body: body}
}

// parameterList parses "IDENT ("," IDENT)*" already past the opening paren,
// consuming through the closing paren. Shared by lambda() and function().
func (p *Parser) parameterList() []lexer.Token {
	var params []lexer.Token
	if !p.check(lexer.RightParen) {
		for {
			if len(params) >= maxArgs {
				p.errorAtCurrent("Can't have more than 255 parameters.")
			}
			name, ok := p.consume(lexer.Identifier, "Expect parameter name.")
			if !ok {
				break
			}
			params = append(params, name)
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	p.consume(lexer.RightParen, "Expect ')' after parameters.")
	return params
}

// primary = NUMBER|STRING|"true"|"false"|"nil"|"this"
//         | "(" expression ")" | IDENT | "super" "." IDENT
func (p *Parser) primary() ast.Expression {
	switch {
	case p.match(lexer.False):
		return &ast.Literal{Token: p.previous(), Value: false}
	case p.match(lexer.True):
		return &ast.Literal{Token: p.previous(), Value: true}
	case p.match(lexer.Nil):
		return &ast.Literal{Token: p.previous(), Value: nil}
	case p.match(lexer.Number, lexer.String):
		tok := p.previous()
		return &ast.Literal{Token: tok, Value: tok.Literal}
	case p.match(lexer.Super):
		keyword := p.previous()
		if _, ok := p.consume(lexer.Dot, "Expect '.' after 'super'."); !ok {
			return &ast.Super{Keyword: keyword}
		}
		method, _ := p.consume(lexer.Identifier, "Expect superclass method name.")
		return &ast.Super{Keyword: keyword, Method: method}
	case p.match(lexer.This):
		return &ast.This{Keyword: p.previous()}
	case p.match(lexer.Identifier):
		return &ast.Variable{Name: p.previous()}
	case p.match(lexer.LeftParen):
		paren := p.previous()
		expr := p.expression()
		p.consume(lexer.RightParen, "Expect ')' after expression.")
		return &ast.Grouping{Paren: paren, Expression: expr}
	default:
		p.errorAtCurrent("Expect expression.")
		return &ast.Literal{Token: p.peek(), Value: nil}
	}
}
