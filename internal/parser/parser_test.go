package parser

import (
	"strings"
	"testing"

	"github.com/cwbudde/lox/internal/ast"
	"github.com/cwbudde/lox/internal/diag"
	"github.com/cwbudde/lox/internal/lexer"
)

// testParser scans and parses source, returning the program and a buffer
// that collects any reported diagnostics.
func testParser(t *testing.T, source string) (*ast.Program, *strings.Builder) {
	t.Helper()
	l := lexer.New(source)
	tokens := l.ScanTokens()
	var out strings.Builder
	r := diag.New(&out)
	p := New(tokens, r)
	return p.Parse(), &out
}

func checkNoErrors(t *testing.T, out *strings.Builder) {
	t.Helper()
	if out.Len() > 0 {
		t.Fatalf("unexpected parser errors:\n%s", out.String())
	}
}

func TestExpressionStatementPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3;", "(; (+ 1 (* 2 3)))"},
		{"(1 + 2) * 3;", "(; (* (group (+ 1 2)) 3))"},
		{"-1 * 2;", "(; (* (- 1) 2))"},
		{"1 < 2 == 3 < 4;", "(; (== (< 1 2) (< 3 4)))"},
		{"1, 2, 3;", "(; (, (, 1 2) 3))"},
		{"true ? 1 : 2;", "(; (?: true 1 2))"},
		{"a = b = 3;", "(; (assign a (assign b 3)))"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			program, out := testParser(t, tt.input)
			checkNoErrors(t, out)
			if len(program.Statements) != 1 {
				t.Fatalf("got %d statements, want 1", len(program.Statements))
			}
			if got := program.Statements[0].String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestForLoopDesugarsToWhile(t *testing.T) {
	program, out := testParser(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	checkNoErrors(t, out)

	if len(program.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(program.Statements))
	}

	outer, ok := program.Statements[0].(*ast.BlockStmt)
	if !ok {
		t.Fatalf("outer statement is %T, want *ast.BlockStmt", program.Statements[0])
	}
	if len(outer.Statements) != 2 {
		t.Fatalf("desugared block has %d statements, want 2 (initializer + while)", len(outer.Statements))
	}
	if _, ok := outer.Statements[0].(*ast.VarStmt); !ok {
		t.Errorf("first statement is %T, want *ast.VarStmt", outer.Statements[0])
	}
	whileStmt, ok := outer.Statements[1].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("second statement is %T, want *ast.WhileStmt", outer.Statements[1])
	}
	body, ok := whileStmt.Body.(*ast.BlockStmt)
	if !ok {
		t.Fatalf("while body is %T, want *ast.BlockStmt (body + increment)", whileStmt.Body)
	}
	if len(body.Statements) != 2 {
		t.Errorf("while body has %d statements, want 2 (body + increment)", len(body.Statements))
	}
}

func TestForLoopDefaultsConditionToTrue(t *testing.T) {
	program, out := testParser(t, "for (;;) break;")
	checkNoErrors(t, out)

	whileStmt, ok := program.Statements[0].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("statement is %T, want *ast.WhileStmt", program.Statements[0])
	}
	lit, ok := whileStmt.Cond.(*ast.Literal)
	if !ok || lit.Value != true {
		t.Errorf("condition = %#v, want literal true", whileStmt.Cond)
	}
}

func TestBreakOutsideLoopIsError(t *testing.T) {
	_, out := testParser(t, "break;")
	if !strings.Contains(out.String(), "Can't use 'break' outside of a loop.") {
		t.Errorf("expected break-outside-loop error, got %q", out.String())
	}
}

func TestInvalidAssignmentTargetIsNonFatal(t *testing.T) {
	program, out := testParser(t, "1 + 2 = 3; print 1;")
	if !strings.Contains(out.String(), "Invalid assignment target.") {
		t.Errorf("expected invalid-assignment-target error, got %q", out.String())
	}
	// Parsing continues past the error.
	if len(program.Statements) != 2 {
		t.Fatalf("got %d statements, want 2 (error recovery continues)", len(program.Statements))
	}
}

func TestClassDeclarationWithSuperclass(t *testing.T) {
	program, out := testParser(t, "class B < A { init() { this.x = 1; } greet() { return this.x; } }")
	checkNoErrors(t, out)

	classStmt, ok := program.Statements[0].(*ast.ClassStmt)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ClassStmt", program.Statements[0])
	}
	if classStmt.Name.Lexeme != "B" {
		t.Errorf("class name = %q, want B", classStmt.Name.Lexeme)
	}
	if classStmt.Superclass == nil || classStmt.Superclass.Name.Lexeme != "A" {
		t.Errorf("superclass = %#v, want Variable(A)", classStmt.Superclass)
	}
	if len(classStmt.Methods) != 2 {
		t.Fatalf("got %d methods, want 2", len(classStmt.Methods))
	}
}

func TestSynchronizeRecoversAtNextDeclaration(t *testing.T) {
	// "var = 1;" is missing the variable name; synchronize should skip
	// past the ';' to the next statement rather than the parser misreading
	// "1" as the start of a new statement.
	program, out := testParser(t, "var = 1; print 2;")
	if out.Len() == 0 {
		t.Fatalf("expected a parse error for missing variable name")
	}
	// The first declaration becomes the InvalidDeclaration sentinel, and
	// the print statement after it still parses successfully.
	if len(program.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(program.Statements))
	}
	if _, ok := program.Statements[0].(*ast.InvalidDeclaration); !ok {
		t.Errorf("first statement is %T, want *ast.InvalidDeclaration", program.Statements[0])
	}
	if _, ok := program.Statements[1].(*ast.PrintStmt); !ok {
		t.Errorf("second statement is %T, want *ast.PrintStmt", program.Statements[1])
	}
}

func TestTooManyArgumentsIsNonFatal(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("f(")
	for i := 0; i < 256; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("1")
	}
	sb.WriteString(");")

	program, out := testParser(t, sb.String())
	if !strings.Contains(out.String(), "Can't have more than 255 arguments.") {
		t.Errorf("expected too-many-arguments error, got %q", out.String())
	}
	if len(program.Statements) != 1 {
		t.Fatalf("parsing should continue past the limit error, got %d statements", len(program.Statements))
	}
}

func TestLambdaExpression(t *testing.T) {
	program, out := testParser(t, "var f = fun (a, b) { return a + b; };")
	checkNoErrors(t, out)

	varStmt, ok := program.Statements[0].(*ast.VarStmt)
	if !ok {
		t.Fatalf("statement is %T, want *ast.VarStmt", program.Statements[0])
	}
	lambda, ok := varStmt.Initializer.(*ast.Lambda)
	if !ok {
		t.Fatalf("initializer is %T, want *ast.Lambda", varStmt.Initializer)
	}
	if len(lambda.Params) != 2 {
		t.Errorf("got %d params, want 2", len(lambda.Params))
	}
}

func TestFunDeclVsLambdaDisambiguation(t *testing.T) {
	// "fun" followed by an identifier is a funDecl; "fun" followed by "("
	// is a lambda expression statement.
	program, out := testParser(t, "fun add(a, b) { return a + b; }")
	checkNoErrors(t, out)
	if _, ok := program.Statements[0].(*ast.FunctionStmt); !ok {
		t.Fatalf("statement is %T, want *ast.FunctionStmt", program.Statements[0])
	}
}
