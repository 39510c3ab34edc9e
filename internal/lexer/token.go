// Package lexer turns Lox source text into a stream of tokens.
package lexer

import "fmt"

// TokenType identifies the lexical class of a Token.
type TokenType uint8

// Token type constants, grouped by role.
const (
	// Single-character tokens.
	LeftParen TokenType = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star
	Question
	Colon

	// One or two character tokens.
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Literals.
	Identifier
	String
	Number

	// Keywords.
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While
	Break

	EOF
)

var tokenNames = map[TokenType]string{
	LeftParen: "(", RightParen: ")", LeftBrace: "{", RightBrace: "}",
	Comma: ",", Dot: ".", Minus: "-", Plus: "+", Semicolon: ";",
	Slash: "/", Star: "*", Question: "?", Colon: ":",
	Bang: "!", BangEqual: "!=", Equal: "=", EqualEqual: "==",
	Greater: ">", GreaterEqual: ">=", Less: "<", LessEqual: "<=",
	Identifier: "IDENTIFIER", String: "STRING", Number: "NUMBER",
	And: "and", Class: "class", Else: "else", False: "false", Fun: "fun",
	For: "for", If: "if", Nil: "nil", Or: "or", Print: "print",
	Return: "return", Super: "super", This: "this", True: "true",
	Var: "var", While: "while", Break: "break", EOF: "EOF",
}

// Keywords maps reserved identifiers to their token type.
var Keywords = map[string]TokenType{
	"and": And, "class": Class, "else": Else, "false": False, "fun": Fun,
	"for": For, "if": If, "nil": Nil, "or": Or, "print": Print,
	"return": Return, "super": Super, "this": This, "true": True,
	"var": Var, "while": While, "break": Break,
}

// String renders a TokenType for diagnostics.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Position locates a token in the original source.
//
// Column and Offset are carried as ambient diagnostic richness even
// though the top-level reporter only ever prints Line; Column is used by
// internal/errors.StackFrame to render call-stack overflow traces, and
// Offset is available to anything that wants byte-accurate slicing.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any // nil, float64, or string
	Pos     Position
}

// Line is a convenience accessor used throughout diagnostics.
func (t Token) Line() int { return t.Pos.Line }

func (t Token) String() string {
	return fmt.Sprintf("%s %q %v", t.Type, t.Lexeme, t.Literal)
}
