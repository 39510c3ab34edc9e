package ast

import "github.com/cwbudde/lox/internal/lexer"

// ExpressionStmt wraps an expression evaluated for its side effect.
type ExpressionStmt struct {
	Expression Expression
}

func (s *ExpressionStmt) statementNode()      {}
func (s *ExpressionStmt) Pos() lexer.Position { return s.Expression.Pos() }
func (s *ExpressionStmt) String() string      { return parenthesize(";", s.Expression) }

// PrintStmt is "print expression ;".
type PrintStmt struct {
	Keyword    lexer.Token
	Expression Expression
}

func (s *PrintStmt) statementNode()      {}
func (s *PrintStmt) Pos() lexer.Position { return s.Keyword.Pos }
func (s *PrintStmt) String() string      { return parenthesize("print", s.Expression) }

// VarStmt is "var name = initializer ;" with an optional initializer.
type VarStmt struct {
	Name        lexer.Token
	Initializer Expression
}

func (s *VarStmt) statementNode()      {}
func (s *VarStmt) Pos() lexer.Position { return s.Name.Pos }
func (s *VarStmt) String() string {
	if s.Initializer == nil {
		return "(var " + s.Name.Lexeme + ")"
	}
	return parenthesize("var "+s.Name.Lexeme, s.Initializer)
}

// BlockStmt is "{ declaration* }".
type BlockStmt struct {
	Brace      lexer.Token
	Statements []Statement
}

func (s *BlockStmt) statementNode()      {}
func (s *BlockStmt) Pos() lexer.Position { return s.Brace.Pos }
func (s *BlockStmt) String() string      { return "(block " + joinStatements(s.Statements) + ")" }

// IfStmt is "if (cond) then [else elseBranch]".
type IfStmt struct {
	Keyword    lexer.Token
	Cond       Expression
	Then       Statement
	Else       Statement
}

func (s *IfStmt) statementNode()      {}
func (s *IfStmt) Pos() lexer.Position { return s.Keyword.Pos }
func (s *IfStmt) String() string {
	if s.Else == nil {
		return "(if " + s.Cond.String() + " " + s.Then.String() + ")"
	}
	return "(if " + s.Cond.String() + " " + s.Then.String() + " " + s.Else.String() + ")"
}

// WhileStmt is "while (cond) body". The desugared "for" loop compiles to
// this node (see parser.forStatement).
type WhileStmt struct {
	Keyword lexer.Token
	Cond    Expression
	Body    Statement
}

func (s *WhileStmt) statementNode()      {}
func (s *WhileStmt) Pos() lexer.Position { return s.Keyword.Pos }
func (s *WhileStmt) String() string      { return "(while " + s.Cond.String() + " " + s.Body.String() + ")" }

// BreakStmt is "break ;", valid only inside a loop (enforced by the parser).
type BreakStmt struct {
	Keyword lexer.Token
}

func (s *BreakStmt) statementNode()      {}
func (s *BreakStmt) Pos() lexer.Position { return s.Keyword.Pos }
func (s *BreakStmt) String() string      { return "(break)" }

// FunctionStmt is a named function declaration: "fun name(params) { body }".
type FunctionStmt struct {
	Name   lexer.Token
	Lambda *Lambda
}

func (s *FunctionStmt) statementNode()      {}
func (s *FunctionStmt) Pos() lexer.Position { return s.Name.Pos }
func (s *FunctionStmt) String() string      { return "(fun " + s.Name.Lexeme + ")" }

// ReturnStmt is "return [value] ;".
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expression
}

func (s *ReturnStmt) statementNode()      {}
func (s *ReturnStmt) Pos() lexer.Position { return s.Keyword.Pos }
func (s *ReturnStmt) String() string {
	if s.Value == nil {
		return "(return)"
	}
	return parenthesize("return", s.Value)
}

// ClassStmt is a class declaration with an optional superclass and a set
// of methods, each represented as a FunctionStmt.
type ClassStmt struct {
	Name       lexer.Token
	Superclass *Variable
	Methods    []*FunctionStmt
}

func (s *ClassStmt) statementNode()      {}
func (s *ClassStmt) Pos() lexer.Position { return s.Name.Pos }
func (s *ClassStmt) String() string      { return "(class " + s.Name.Lexeme + ")" }
