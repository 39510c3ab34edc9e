package interp

import "github.com/cwbudde/lox/internal/lexer"

// RuntimeError is a typed runtime diagnostic carrying the offending token,
// matching spec.md §4.4's "raise a typed runtime error carrying the
// offending token for line reporting."
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

// unwindKind tags the three non-local control transfers spec.md §9 names:
// Return, Break, and RuntimeError. Grounded on the teacher's evaluator
// package, which tags its own Result sum type rather than using Go panics
// for non-local control flow (see internal/interp/evaluator/core_evaluator.go
// and sibling files for the same "typed result, not exception" shape,
// generalized here to Lox's three unwind kinds instead of DWScript's much
// larger exception/contract set).
type unwindKind int

const (
	unwindNone unwindKind = iota
	unwindReturn
	unwindBreak
	unwindError
)

// result is what every statement-executing method returns instead of a
// bare error: a normal completion (unwindNone) or one of the three
// non-local transfers. Expression evaluation uses plain (Value, *RuntimeError)
// since an expression can only ever produce a RuntimeError unwind, never
// Return or Break.
type result struct {
	kind  unwindKind
	value Value         // carried by unwindReturn
	err   *RuntimeError // carried by unwindError
}

func normalResult() result                 { return result{kind: unwindNone} }
func returnResult(v Value) result          { return result{kind: unwindReturn, value: v} }
func breakResult() result                  { return result{kind: unwindBreak} }
func errorResult(err *RuntimeError) result { return result{kind: unwindError, err: err} }

func (r result) isUnwind() bool { return r.kind != unwindNone }
