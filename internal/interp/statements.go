package interp

import (
	"fmt"

	"github.com/cwbudde/lox/internal/ast"
)

// execute dispatches a single statement, returning a result that signals
// either normal completion or a Return/Break/RuntimeError unwind for the
// caller (executeBlock, a loop, or Interpret) to propagate.
func (in *Interpreter) execute(stmt ast.Statement) result {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		return in.executeExpressionStmt(s)

	case *ast.PrintStmt:
		v, err := in.eval(s.Expression)
		if err != nil {
			return errorResult(err)
		}
		fmt.Fprintln(in.stdout, stringify(v))
		return normalResult()

	case *ast.VarStmt:
		var value Value = Unassigned
		if s.Initializer != nil {
			v, err := in.eval(s.Initializer)
			if err != nil {
				return errorResult(err)
			}
			value = v
		}
		in.environment.Define(s.Name.Lexeme, value)
		return normalResult()

	case *ast.BlockStmt:
		return in.executeBlock(s.Statements, NewEnclosedEnvironment(in.environment))

	case *ast.IfStmt:
		cond, err := in.eval(s.Cond)
		if err != nil {
			return errorResult(err)
		}
		if isTruthy(cond) {
			return in.execute(s.Then)
		}
		if s.Else != nil {
			return in.execute(s.Else)
		}
		return normalResult()

	case *ast.WhileStmt:
		return in.executeWhile(s)

	case *ast.BreakStmt:
		return breakResult()

	case *ast.FunctionStmt:
		fn := newFunction(s.Name.Lexeme, s.Lambda, in.environment, false)
		in.environment.Define(s.Name.Lexeme, fn)
		return normalResult()

	case *ast.ReturnStmt:
		var value Value
		if s.Value != nil {
			v, err := in.eval(s.Value)
			if err != nil {
				return errorResult(err)
			}
			value = v
		}
		return returnResult(value)

	case *ast.ClassStmt:
		return in.executeClassStmt(s)

	case *ast.InvalidDeclaration:
		// Never reached: HadError halts the pipeline before the
		// interpreter runs whenever a parse produced one of these.
		return normalResult()

	default:
		panic("interp: unhandled statement type")
	}
}

func (in *Interpreter) executeExpressionStmt(s *ast.ExpressionStmt) result {
	v, err := in.eval(s.Expression)
	if err != nil {
		return errorResult(err)
	}
	if in.replMode {
		fmt.Fprintln(in.stdout, stringify(v))
	}
	return normalResult()
}

// executeBlock runs statements in env, restoring the interpreter's current
// environment on every exit path (normal, break, return, or error) per
// spec.md §4.4's "restored on normal or exceptional exit".
func (in *Interpreter) executeBlock(statements []ast.Statement, env *Environment) result {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range statements {
		res := in.execute(stmt)
		if res.isUnwind() {
			return res
		}
	}
	return normalResult()
}

// executeWhile loops while cond is truthy, stopping early (without error)
// on a Break unwind and propagating Return/RuntimeError unwinds to the
// caller. The desugared `for` loop is just a WhileStmt by this point.
func (in *Interpreter) executeWhile(s *ast.WhileStmt) result {
	for {
		cond, err := in.eval(s.Cond)
		if err != nil {
			return errorResult(err)
		}
		if !isTruthy(cond) {
			return normalResult()
		}

		res := in.execute(s.Body)
		switch res.kind {
		case unwindBreak:
			return normalResult()
		case unwindNone:
			// continue looping
		default:
			return res
		}
	}
}

// executeClassStmt evaluates the optional superclass, binds the class
// name to nil for self-reference inside method bodies, constructs the
// method set (wrapping the closure with a `super` scope when inheriting),
// then rebinds the class name to the finished Class value.
func (in *Interpreter) executeClassStmt(s *ast.ClassStmt) result {
	var superclass *Class
	if s.Superclass != nil {
		v, err := in.eval(s.Superclass)
		if err != nil {
			return errorResult(err)
		}
		sc, ok := v.(*Class)
		if !ok {
			return errorResult(&RuntimeError{Token: s.Superclass.Name, Message: ErrMsgSuperclassMustBeClass})
		}
		superclass = sc
	}

	in.environment.Define(s.Name.Lexeme, nil)

	closure := in.environment
	if superclass != nil {
		closure = NewEnclosedEnvironment(in.environment)
		closure.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		isInit := m.Name.Lexeme == "init"
		methods[m.Name.Lexeme] = newFunction(m.Name.Lexeme, m.Lambda, closure, isInit)
	}

	class := &Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	in.environment.Assign(s.Name.Lexeme, class)
	return normalResult()
}
