package resolver

import "github.com/cwbudde/lox/internal/ast"

func (r *Resolver) resolveExpression(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.reporter.ErrorAt(e.Name.Line(), e.Name.Lexeme, false, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)

	case *ast.Assign:
		r.resolveExpression(e.Value)
		r.resolveLocal(e, e.Name)

	case *ast.Binary:
		r.resolveExpression(e.Left)
		r.resolveExpression(e.Right)

	case *ast.Logical:
		r.resolveExpression(e.Left)
		r.resolveExpression(e.Right)

	case *ast.Conditional:
		r.resolveExpression(e.Cond)
		r.resolveExpression(e.IfTrue)
		r.resolveExpression(e.IfFalse)

	case *ast.Call:
		r.resolveExpression(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpression(arg)
		}

	case *ast.Get:
		r.resolveExpression(e.Object)

	case *ast.Set:
		r.resolveExpression(e.Value)
		r.resolveExpression(e.Object)

	case *ast.This:
		if r.currentClass == classNone {
			r.reporter.ErrorAt(e.Keyword.Line(), e.Keyword.Lexeme, false, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, e.Keyword)

	case *ast.Super:
		switch r.currentClass {
		case classNone:
			r.reporter.ErrorAt(e.Keyword.Line(), e.Keyword.Lexeme, false, "Can't use 'super' outside of a class.")
		case classClass:
			r.reporter.ErrorAt(e.Keyword.Line(), e.Keyword.Lexeme, false, "Can't use 'super' in a class with no superclass.")
		default:
			r.resolveLocal(e, e.Keyword)
		}

	case *ast.Grouping:
		r.resolveExpression(e.Expression)

	case *ast.Unary:
		r.resolveExpression(e.Right)

	case *ast.Lambda:
		r.resolveFunctionBody(e, functionFunction)

	case *ast.Literal:
		// No bindings to resolve.

	default:
		panic("resolver: unhandled expression type")
	}
}
