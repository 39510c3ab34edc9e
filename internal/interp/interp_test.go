package interp

import (
	"strings"
	"testing"

	"github.com/cwbudde/lox/internal/diag"
	"github.com/cwbudde/lox/internal/lexer"
	"github.com/cwbudde/lox/internal/parser"
	"github.com/cwbudde/lox/internal/resolver"
)

// run scans, parses, resolves, and interprets source, returning stdout,
// stderr (diagnostics), and whether a runtime error occurred.
func run(t *testing.T, source string) (stdout, stderr string, hadRuntimeError bool) {
	t.Helper()

	toks := lexer.New(source).ScanTokens()

	var errOut strings.Builder
	reporter := diag.New(&errOut)

	p := parser.New(toks, reporter)
	program := p.Parse()
	if reporter.HadError() {
		t.Fatalf("unexpected parse errors: %s", errOut.String())
	}

	res := resolver.New(reporter)
	res.Resolve(program)
	if reporter.HadError() {
		t.Fatalf("unexpected resolve errors: %s", errOut.String())
	}

	var out strings.Builder
	in := New(&out, reporter, res.Locals())
	in.Interpret(program)

	return out.String(), errOut.String(), reporter.HadRuntimeError()
}

func TestArithmeticPrecedence(t *testing.T) {
	out, _, hadErr := run(t, "print (1 + 2) * 3 - 4 / 2;")
	if hadErr {
		t.Fatal("unexpected runtime error")
	}
	if out != "7\n" {
		t.Errorf("got %q, want %q", out, "7\n")
	}
}

func TestClosurePreservesBinding(t *testing.T) {
	out, _, hadErr := run(t, `
		fun makeCounter() {
			var i = 0;
			fun count() {
				i = i + 1;
				return i;
			}
			return count;
		}
		var c = makeCounter();
		print c();
		print c();
		print c();
	`)
	if hadErr {
		t.Fatal("unexpected runtime error")
	}
	if out != "1\n2\n3\n" {
		t.Errorf("got %q, want %q", out, "1\n2\n3\n")
	}
}

func TestInheritanceAndSuper(t *testing.T) {
	out, _, hadErr := run(t, `
		class A {
			greet() { print "A"; }
		}
		class B < A {
			greet() {
				super.greet();
				print "B";
			}
		}
		B().greet();
	`)
	if hadErr {
		t.Fatal("unexpected runtime error")
	}
	if out != "A\nB\n" {
		t.Errorf("got %q, want %q", out, "A\nB\n")
	}
}

func TestInitializerDiscipline(t *testing.T) {
	out, _, hadErr := run(t, `
		class P {
			init(x) { this.x = x; }
		}
		var p = P(3);
		print p.x;
		print p.init(5).x;
	`)
	if hadErr {
		t.Fatal("unexpected runtime error")
	}
	if out != "3\n5\n" {
		t.Errorf("got %q, want %q", out, "3\n5\n")
	}
}

func TestRuntimeErrorInsideInitializerPropagates(t *testing.T) {
	_, errOut, hadErr := run(t, `
		class C {
			init() { bar(); }
		}
		C();
	`)
	if !hadErr {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(errOut, "Undefined variable 'bar'.") {
		t.Errorf("stderr = %q, missing expected message", errOut)
	}
}

func TestRuntimeErrorReporting(t *testing.T) {
	_, errOut, hadErr := run(t, `var a = "s"; print -a;`)
	if !hadErr {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(errOut, "Operand must be a number.") {
		t.Errorf("stderr = %q, missing expected message", errOut)
	}
	if !strings.Contains(errOut, "[line 1]") {
		t.Errorf("stderr = %q, missing line number", errOut)
	}
}

func TestForLoopIncrementSemantics(t *testing.T) {
	out, _, hadErr := run(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	if hadErr {
		t.Fatal("unexpected runtime error")
	}
	if out != "0\n1\n2\n" {
		t.Errorf("got %q, want %q", out, "0\n1\n2\n")
	}
}

func TestDivisionByZero(t *testing.T) {
	_, errOut, hadErr := run(t, "print 1 / 0;")
	if !hadErr {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(errOut, "Cannot divide by zero.") {
		t.Errorf("stderr = %q, missing expected message", errOut)
	}
}

func TestPermissivePlusStringConcat(t *testing.T) {
	out, _, hadErr := run(t, `print "count: " + 3;`)
	if hadErr {
		t.Fatal("unexpected runtime error")
	}
	if out != "count: 3\n" {
		t.Errorf("got %q, want %q", out, "count: 3\n")
	}
}

func TestUnassignedVariableRead(t *testing.T) {
	_, errOut, hadErr := run(t, "var a; print a;")
	if !hadErr {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(errOut, "Variable 'a' is unassigned.") {
		t.Errorf("stderr = %q, missing expected message", errOut)
	}
}

func TestBreakExitsNearestLoop(t *testing.T) {
	out, _, hadErr := run(t, `
		for (var i = 0; i < 5; i = i + 1) {
			if (i == 2) break;
			print i;
		}
	`)
	if hadErr {
		t.Fatal("unexpected runtime error")
	}
	if out != "0\n1\n" {
		t.Errorf("got %q, want %q", out, "0\n1\n")
	}
}

func TestCommaOperatorYieldsRight(t *testing.T) {
	out, _, hadErr := run(t, "print (1, 2, 3);")
	if hadErr {
		t.Fatal("unexpected runtime error")
	}
	if out != "3\n" {
		t.Errorf("got %q, want %q", out, "3\n")
	}
}

func TestTernaryOperator(t *testing.T) {
	out, _, hadErr := run(t, `print true ? "yes" : "no"; print false ? "yes" : "no";`)
	if hadErr {
		t.Fatal("unexpected runtime error")
	}
	if out != "yes\nno\n" {
		t.Errorf("got %q, want %q", out, "yes\nno\n")
	}
}

func TestWrongArity(t *testing.T) {
	_, errOut, hadErr := run(t, `
		fun f(a, b) { return a + b; }
		f(1);
	`)
	if !hadErr {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(errOut, "Expected 2 arguments but got 1.") {
		t.Errorf("stderr = %q, missing expected message", errOut)
	}
}

func TestREPLModeEchoesBareExpression(t *testing.T) {
	toks := lexer.New("1 + 1;").ScanTokens()
	var errOut strings.Builder
	reporter := diag.New(&errOut)
	program := parser.New(toks, reporter).Parse()
	res := resolver.New(reporter)
	res.Resolve(program)

	var out strings.Builder
	in := New(&out, reporter, res.Locals())
	in.SetREPLMode(true)
	in.Interpret(program)

	if out.String() != "2\n" {
		t.Errorf("got %q, want %q", out.String(), "2\n")
	}
}
