// Package interp implements the tree-walking evaluator: Environment,
// Value, Callable/Function/Class/Instance, and the Interpreter that drives
// statement execution and expression evaluation over the AST produced by
// internal/parser and annotated by internal/resolver.
//
// Grounded on the teacher's internal/interp/evaluator package structure
// (one Interpreter type, evaluation split across files by grammar concern,
// a CallStack for recursion-depth tracking) but dispatches via Go type
// switches over internal/ast's Node interface instead of the teacher's
// visitor/Accept methods, matching the Node-interface convention the rest
// of this module uses.
package interp

import (
	"io"

	"github.com/cwbudde/lox/internal/ast"
	"github.com/cwbudde/lox/internal/diag"
)

// Interpreter walks a resolved *ast.Program, evaluating it for effect.
// stdout receives `print` output and the REPL's bare-expression echo;
// diagnostics go through reporter, matching spec.md §6's "stderr only"
// split between program output and diagnostics.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      map[ast.Expression]int

	stdout    io.Writer
	reporter  *diag.Reporter
	callStack *CallStack

	// replMode, when true, makes a bare expression statement print its
	// stringified value (spec.md §6's REPL convenience); false in file mode.
	replMode bool
}

// New creates an Interpreter writing program output to stdout and
// reporting runtime diagnostics to reporter. locals is the resolver's
// side table (internal/resolver.Resolver.Locals()).
func New(stdout io.Writer, reporter *diag.Reporter, locals map[ast.Expression]int) *Interpreter {
	globals := NewEnvironment()
	defineGlobals(globals)
	return &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      locals,
		stdout:      stdout,
		reporter:    reporter,
		callStack:   NewCallStack(defaultMaxRecursionDepth),
	}
}

// SetREPLMode toggles the bare-expression-statement echo behavior.
func (in *Interpreter) SetREPLMode(repl bool) { in.replMode = repl }

// SetLocals replaces the resolver side table, used by the REPL to rebind a
// fresh resolution result onto the same long-lived Interpreter after every
// line.
func (in *Interpreter) SetLocals(locals map[ast.Expression]int) { in.locals = locals }

// Interpret evaluates each statement of program in sequence. A runtime
// error halts the remaining statements, is reported via reporter, and sets
// HadRuntimeError; it never panics out to the caller.
func (in *Interpreter) Interpret(program *ast.Program) {
	for _, stmt := range program.Statements {
		res := in.execute(stmt)
		if res.kind == unwindError {
			in.reporter.RuntimeError(res.err.Token.Line(), res.err.Message)
			return
		}
	}
}

// resolveDepth reports the scope depth the resolver recorded for expr, if
// any; ok is false for expressions the resolver treated as globals.
func (in *Interpreter) resolveDepth(expr ast.Expression) (int, bool) {
	d, ok := in.locals[expr]
	return d, ok
}

// lookUpVariable reads name, using the resolver's recorded depth when
// present and falling back to the globals environment otherwise.
func (in *Interpreter) lookUpVariable(name string, expr ast.Expression) (Value, bool) {
	if depth, ok := in.resolveDepth(expr); ok {
		return in.environment.GetAt(depth, name)
	}
	return in.globals.Get(name)
}

func (in *Interpreter) assignVariable(name string, expr ast.Expression, value Value) bool {
	if depth, ok := in.resolveDepth(expr); ok {
		in.environment.AssignAt(depth, name, value)
		return true
	}
	return in.globals.Assign(name, value)
}
