// Package parser implements a recursive-descent, precedence-climbing parser
// that turns a token stream from internal/lexer into the AST defined by
// internal/ast.
//
// Grounded on the teacher's internal/parser package: a Parser struct that
// owns the token stream, a diag.Reporter for error accumulation, and one
// file per grammar concern. The teacher's TokenCursor backtracking
// abstraction is overkill for Lox's single-token-lookahead grammar, so this
// parser keeps the simpler tokens/current field pair the teacher's own
// cursor replaced inside the DWScript grammar's more exotic constructs
// (generics, attributes) that Lox has no equivalent of.
package parser

import (
	"github.com/cwbudde/lox/internal/ast"
	"github.com/cwbudde/lox/internal/diag"
	"github.com/cwbudde/lox/internal/lexer"
)

// maxArgs mirrors the historical 255-argument/255-parameter ceiling: the
// parser reports it but keeps parsing so later errors are still found.
const maxArgs = 255

// Parser consumes a flat token slice (already fully scanned by the lexer)
// and produces a *ast.Program. Errors are reported to reporter rather than
// returned, matching the lexer's reporting-as-a-side-effect convention.
type Parser struct {
	tokens   []lexer.Token
	current  int
	reporter *diag.Reporter

	// loopDepth tracks nesting so break can be rejected outside a loop.
	loopDepth int
}

// New creates a Parser over tokens, reporting syntax errors to reporter.
func New(tokens []lexer.Token, reporter *diag.Reporter) *Parser {
	return &Parser{tokens: tokens, reporter: reporter}
}

// Parse parses the full token stream into a program. Parsing continues
// past errors (each bad declaration is synchronized over) so one run can
// surface more than one syntax error, matching spec.md §4.2's panic-mode
// recovery.
func (p *Parser) Parse() *ast.Program {
	program := &ast.Program{}
	for !p.isAtEnd() {
		program.Statements = append(program.Statements, p.declaration())
	}
	return program
}

// ParseExpression parses a single expression starting at the current token.
// It does not check that the expression is followed by EOF, and nothing in
// this module calls it (pkg/lox parses whole programs with Parse).
func (p *Parser) ParseExpression() ast.Expression {
	expr := p.expression()
	return expr
}
