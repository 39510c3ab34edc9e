// Package resolver implements the static scope-resolution pass that runs
// between the parser and the interpreter. It never evaluates anything; it
// only computes, for every variable reference that resolves to a local
// binding, how many enclosing environments separate the reference from the
// scope where the name was declared, and records that depth in a side
// table the interpreter consults at runtime.
//
// Grounded on the resolver in original_source/src/pylox/resolver.py, with
// the class/this/super rules it lacks added per spec.md §4.3 (and
// cross-checked against the chapter-12/13 snapshot of
// _examples/tejas0709-loxinterpreter, the one teacher-adjacent Go resolver
// in the pack that implements them), and restyled as Go type-switch
// dispatch to match the teacher's Node-interface/no-visitor convention
// instead of pylox's accept/visit pattern.
package resolver

import (
	"github.com/cwbudde/lox/internal/ast"
	"github.com/cwbudde/lox/internal/diag"
	"github.com/cwbudde/lox/internal/lexer"
)

// functionType tracks what kind of function body is currently being
// resolved, so "return" and "this" can be validated contextually.
type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionMethod
	functionInitializer
)

// classType tracks class nesting, so "this" and "super" can be validated.
type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// scope maps a name to whether its declaration has finished (false =
// declared but not yet defined, matching pylox's "is_defined" flag used to
// catch `var a = a;` self-reference).
type scope map[string]bool

// Resolver walks a parsed program and populates locals with the scope
// depth of every local variable/this/super reference it finds.
type Resolver struct {
	reporter *diag.Reporter
	scopes   []scope
	locals   map[ast.Expression]int

	currentFunction functionType
	currentClass    classType
}

// New creates a Resolver that reports errors to reporter. locals is the
// side table the interpreter will later read via Locals.
func New(reporter *diag.Reporter) *Resolver {
	return &Resolver{
		reporter: reporter,
		locals:   make(map[ast.Expression]int),
	}
}

// Locals returns the populated side table: for each Expression key that
// resolved to a local binding, the number of enclosing environments
// between the reference and its declaring scope. Expressions absent from
// the map are treated as globals at runtime.
func (r *Resolver) Locals() map[ast.Expression]int {
	return r.locals
}

// Resolve runs the pass over a full program's statement list.
func (r *Resolver) Resolve(program *ast.Program) {
	r.resolveStatements(program.Statements)
}

func (r *Resolver) resolveStatements(stmts []ast.Statement) {
	for _, s := range stmts {
		r.resolveStatement(s)
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare adds name to the innermost scope as "not yet defined". Declaring
// the same name twice in one scope is an error (shadowing across scopes is
// fine; redeclaring within one block is very likely a bug).
func (r *Resolver) declare(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	innermost := r.scopes[len(r.scopes)-1]
	if _, exists := innermost[name.Lexeme]; exists {
		r.reporter.ErrorAt(name.Line(), name.Lexeme, false, "Already a variable with this name in this scope.")
	}
	innermost[name.Lexeme] = false
}

func (r *Resolver) define(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks the scope stack from innermost outward; the first
// scope containing name fixes the depth recorded for expr.
func (r *Resolver) resolveLocal(expr ast.Expression, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any scope: treated as a global at runtime.
}

func (r *Resolver) resolveFunctionBody(lambda *ast.Lambda, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range lambda.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStatements(lambda.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}
