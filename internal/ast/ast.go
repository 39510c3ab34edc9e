// Package ast defines the abstract syntax tree node types produced by the
// parser and consumed by the resolver and interpreter.
package ast

import (
	"bytes"
	"strings"

	"github.com/cwbudde/lox/internal/lexer"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	// Pos returns the node's position in the source, for diagnostics.
	Pos() lexer.Position
	// String renders the node for debugging (--print-ast) and tests.
	String() string
}

// Expression is any node that produces a Value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action without itself producing
// a value.
type Statement interface {
	Node
	statementNode()
}

// Program is the root of the AST: the full statement list of a source file.
type Program struct {
	Statements []Statement
}

func (p *Program) Pos() lexer.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

// InvalidDeclaration is the sentinel statement produced by the parser in
// place of a declaration that failed to parse. It preserves the shape of
// the statement list for error reporting; it must never reach the
// resolver or interpreter because HadError halts the pipeline first.
type InvalidDeclaration struct{ At lexer.Position }

func (d *InvalidDeclaration) statementNode()     {}
func (d *InvalidDeclaration) Pos() lexer.Position { return d.At }
func (d *InvalidDeclaration) String() string       { return "<invalid declaration>" }

func parenthesize(name string, exprs ...Expression) string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(name)
	for _, e := range exprs {
		out.WriteString(" ")
		out.WriteString(e.String())
	}
	out.WriteString(")")
	return out.String()
}

func joinStatements(stmts []Statement) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}
