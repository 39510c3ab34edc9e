package resolver

import (
	"strings"
	"testing"

	"github.com/cwbudde/lox/internal/ast"
	"github.com/cwbudde/lox/internal/diag"
	"github.com/cwbudde/lox/internal/lexer"
	"github.com/cwbudde/lox/internal/parser"
)

func testResolve(t *testing.T, source string) (*ast.Program, *Resolver, *strings.Builder) {
	t.Helper()
	toks := lexer.New(source).ScanTokens()
	var out strings.Builder
	rep := diag.New(&out)
	program := parser.New(toks, rep).Parse()
	if out.Len() > 0 {
		t.Fatalf("unexpected parse errors: %s", out.String())
	}
	res := New(rep)
	res.Resolve(program)
	return program, res, &out
}

func TestResolvesClosureDepth(t *testing.T) {
	_, res, out := testResolve(t, `
		var a = "global";
		{
			fun showA() {
				print a;
			}
			showA();
			var a = "block";
			showA();
		}
	`)
	if out.Len() > 0 {
		t.Fatalf("unexpected resolve errors: %s", out.String())
	}
	// The `a` reference inside showA resolves to the global for both calls,
	// since closures capture the environment present when the function was
	// declared, not later shadowing declarations. The showA() call sites
	// themselves are block-local and do get a depth.
	for expr, depth := range res.Locals() {
		if v, ok := expr.(*ast.Variable); ok && v.Name.Lexeme == "a" {
			t.Errorf("expected the global `a` reference to have no local depth, got %d", depth)
		}
	}
}

func TestSelfReferenceInInitializerIsError(t *testing.T) {
	_, _, out := testResolve(t, `
		var a = "outer";
		{
			var a = a;
		}
	`)
	if !strings.Contains(out.String(), "Can't read local variable in its own initializer.") {
		t.Errorf("expected self-reference error, got %q", out.String())
	}
}

func TestReturnOutsideFunctionIsError(t *testing.T) {
	_, _, out := testResolve(t, `return 1;`)
	if !strings.Contains(out.String(), "Can't return from top-level code.") {
		t.Errorf("expected top-level-return error, got %q", out.String())
	}
}

func TestReturnValueFromInitializerIsError(t *testing.T) {
	_, _, out := testResolve(t, `
		class Foo {
			init() {
				return 1;
			}
		}
	`)
	if !strings.Contains(out.String(), "Can't return a value from an initializer.") {
		t.Errorf("expected initializer-return error, got %q", out.String())
	}
}

func TestThisOutsideClassIsError(t *testing.T) {
	_, _, out := testResolve(t, `print this;`)
	if !strings.Contains(out.String(), "Can't use 'this' outside of a class.") {
		t.Errorf("expected this-outside-class error, got %q", out.String())
	}
}

func TestSuperWithoutSuperclassIsError(t *testing.T) {
	_, _, out := testResolve(t, `
		class Foo {
			bar() {
				super.bar();
			}
		}
	`)
	if !strings.Contains(out.String(), "Can't use 'super' in a class with no superclass.") {
		t.Errorf("expected super-without-superclass error, got %q", out.String())
	}
}

func TestClassCannotInheritFromItself(t *testing.T) {
	_, _, out := testResolve(t, `class Oops < Oops {}`)
	if !strings.Contains(out.String(), "A class can't inherit from itself.") {
		t.Errorf("expected self-inheritance error, got %q", out.String())
	}
}

func TestDuplicateLocalDeclarationIsError(t *testing.T) {
	_, _, out := testResolve(t, `
		{
			var a = 1;
			var a = 2;
		}
	`)
	if !strings.Contains(out.String(), "Already a variable with this name in this scope.") {
		t.Errorf("expected duplicate-declaration error, got %q", out.String())
	}
}

func TestLocalVariableDepthRecorded(t *testing.T) {
	_, res, out := testResolve(t, `
		fun outer() {
			var x = 1;
			fun inner() {
				print x;
			}
		}
	`)
	if out.Len() > 0 {
		t.Fatalf("unexpected resolve errors: %s", out.String())
	}
	found := false
	for _, depth := range res.Locals() {
		if depth == 1 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a reference resolved at depth 1, got %v", res.Locals())
	}
}
