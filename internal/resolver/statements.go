package resolver

import "github.com/cwbudde/lox/internal/ast"

func (r *Resolver) resolveStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStatements(s.Statements)
		r.endScope()

	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpression(s.Initializer)
		}
		r.define(s.Name)

	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunctionBody(s.Lambda, functionFunction)

	case *ast.ExpressionStmt:
		r.resolveExpression(s.Expression)

	case *ast.IfStmt:
		r.resolveExpression(s.Cond)
		r.resolveStatement(s.Then)
		if s.Else != nil {
			r.resolveStatement(s.Else)
		}

	case *ast.PrintStmt:
		r.resolveExpression(s.Expression)

	case *ast.ReturnStmt:
		if r.currentFunction == functionNone {
			r.reporter.ErrorAt(s.Keyword.Line(), s.Keyword.Lexeme, false, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == functionInitializer {
				r.reporter.ErrorAt(s.Keyword.Line(), s.Keyword.Lexeme, false, "Can't return a value from an initializer.")
			}
			r.resolveExpression(s.Value)
		}

	case *ast.WhileStmt:
		r.resolveExpression(s.Cond)
		r.resolveStatement(s.Body)

	case *ast.BreakStmt:
		// No bindings to resolve; loop-nesting validity is checked by the
		// parser, not the resolver.

	case *ast.ClassStmt:
		r.resolveClassStmt(s)

	case *ast.InvalidDeclaration:
		// Never reached: HadError halts the pipeline before the resolver
		// runs whenever a parse produced one of these sentinels.

	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) resolveClassStmt(stmt *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(stmt.Name)
	r.define(stmt.Name)

	if stmt.Superclass != nil {
		if stmt.Superclass.Name.Lexeme == stmt.Name.Lexeme {
			r.reporter.ErrorAt(stmt.Superclass.Name.Line(), stmt.Superclass.Name.Lexeme, false, "A class can't inherit from itself.")
		}
		r.currentClass = classSubclass
		r.resolveExpression(stmt.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range stmt.Methods {
		kind := functionMethod
		if method.Name.Lexeme == "init" {
			kind = functionInitializer
		}
		r.resolveFunctionBody(method.Lambda, kind)
	}

	r.endScope()

	if stmt.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}
