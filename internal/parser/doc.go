// Package parser turns a scanned token stream into a statement-level AST
// via recursive descent with precedence climbing for expressions.
package parser
