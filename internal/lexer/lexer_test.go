package lexer

import "testing"

func TestNextTokenStream(t *testing.T) {
	input := `var x = 1 + 2;
print x >= 2 ? "yes" : "no";`

	tests := []struct {
		expectedLexeme string
		expectedType   TokenType
	}{
		{"var", Var},
		{"x", Identifier},
		{"=", Equal},
		{"1", Number},
		{"+", Plus},
		{"2", Number},
		{";", Semicolon},
		{"print", Print},
		{"x", Identifier},
		{">=", GreaterEqual},
		{"2", Number},
		{"?", Question},
		{`"yes"`, String},
		{":", Colon},
		{`"no"`, String},
		{";", Semicolon},
		{"", EOF},
	}

	toks := New(input).ScanTokens()
	if len(toks) != len(tests) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(tests))
	}
	for i, tt := range tests {
		if toks[i].Type != tt.expectedType {
			t.Errorf("token %d: type = %s, want %s", i, toks[i].Type, tt.expectedType)
		}
		if toks[i].Lexeme != tt.expectedLexeme {
			t.Errorf("token %d: lexeme = %q, want %q", i, toks[i].Lexeme, tt.expectedLexeme)
		}
	}
}

func TestBlockCommentClosed(t *testing.T) {
	l := New("/* this is a\nmultiline\ncomment */\n1")
	toks := l.ScanTokens()

	if len(l.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", l.Errors())
	}
	if len(toks) != 2 || toks[0].Type != Number || toks[1].Type != EOF {
		t.Fatalf("got %v, want [Number EOF]", toks)
	}
	if toks[0].Pos.Line != 4 {
		t.Errorf("number token at line %d, want 4", toks[0].Pos.Line)
	}
}

// A '*' inside a block comment that isn't immediately followed by '/' is
// not just skipped over: it's flagged the same as any other stray
// character, distinct from running off the end of input unclosed.
func TestBlockCommentStrayStarIsUnexpectedCharacter(t *testing.T) {
	l := New("/* this is a\nmultiline\ncomment *\n1")
	l.ScanTokens()

	errs := l.Errors()
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if errs[0].Message != "Unexpected character." {
		t.Errorf("message = %q, want %q", errs[0].Message, "Unexpected character.")
	}
}

func TestBlockCommentUnclosedAtEOF(t *testing.T) {
	l := New("/* never closed")
	l.ScanTokens()

	errs := l.Errors()
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if errs[0].Message != "Unclosed block comment." {
		t.Errorf("message = %q, want %q", errs[0].Message, "Unclosed block comment.")
	}
}
