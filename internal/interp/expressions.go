package interp

import (
	"fmt"

	"github.com/cwbudde/lox/internal/ast"
	"github.com/cwbudde/lox/internal/lexer"
)

// eval dispatches a single expression. Expressions can only unwind via a
// RuntimeError (never Return/Break), so this returns a plain (Value, error)
// pair rather than the statement-level result type.
func (in *Interpreter) eval(expr ast.Expression) (Value, *RuntimeError) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil

	case *ast.Grouping:
		return in.eval(e.Expression)

	case *ast.Unary:
		return in.evalUnary(e)

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Logical:
		return in.evalLogical(e)

	case *ast.Conditional:
		cond, err := in.eval(e.Cond)
		if err != nil {
			return nil, err
		}
		if isTruthy(cond) {
			return in.eval(e.IfTrue)
		}
		return in.eval(e.IfFalse)

	case *ast.Variable:
		return in.evalVariable(e)

	case *ast.Assign:
		return in.evalAssign(e)

	case *ast.Call:
		return in.evalCall(e)

	case *ast.Get:
		return in.evalGet(e)

	case *ast.Set:
		return in.evalSet(e)

	case *ast.This:
		v, ok := in.lookUpVariable("this", e)
		if !ok {
			return nil, &RuntimeError{Token: e.Keyword, Message: fmt.Sprintf(ErrMsgUndefinedVariable, "this")}
		}
		return v, nil

	case *ast.Super:
		return in.evalSuper(e)

	case *ast.Lambda:
		return newFunction("", e, in.environment, false), nil

	default:
		panic("interp: unhandled expression type")
	}
}

func (in *Interpreter) evalUnary(e *ast.Unary) (Value, *RuntimeError) {
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.Minus:
		n, ok := isNumber(right)
		if !ok {
			return nil, &RuntimeError{Token: e.Operator, Message: ErrMsgOperandMustBeNumber}
		}
		return -n, nil
	case lexer.Bang:
		return !isTruthy(right), nil
	default:
		panic("interp: unhandled unary operator")
	}
}

// evalBinary implements spec.md §4.4's arithmetic/comparison/equality
// rules, including the permissive `+` extension: if either operand is a
// string, the result concatenates the stringified operands rather than
// requiring both to be strings.
func (in *Interpreter) evalBinary(e *ast.Binary) (Value, *RuntimeError) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.Comma:
		return right, nil

	case lexer.Plus:
		ln, lok := isNumber(left)
		rn, rok := isNumber(right)
		if lok && rok {
			return ln + rn, nil
		}
		if _, lok := isString(left); lok {
			return concatStringify(left, right), nil
		}
		if _, rok := isString(right); rok {
			return concatStringify(left, right), nil
		}
		return nil, &RuntimeError{Token: e.Operator, Message: ErrMsgOperandsMustBeNumbersOrStrings}

	case lexer.Minus:
		ln, rn, err := in.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln - rn, nil

	case lexer.Star:
		ln, rn, err := in.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln * rn, nil

	case lexer.Slash:
		ln, rn, err := in.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		if rn == 0 {
			return nil, &RuntimeError{Token: e.Operator, Message: ErrMsgDivisionByZero}
		}
		return ln / rn, nil

	case lexer.Greater:
		ln, rn, err := in.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln > rn, nil

	case lexer.GreaterEqual:
		ln, rn, err := in.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln >= rn, nil

	case lexer.Less:
		ln, rn, err := in.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln < rn, nil

	case lexer.LessEqual:
		ln, rn, err := in.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln <= rn, nil

	case lexer.BangEqual:
		return !isEqual(left, right), nil

	case lexer.EqualEqual:
		return isEqual(left, right), nil

	default:
		panic("interp: unhandled binary operator")
	}
}

// concatStringify stringifies both operands and concatenates them; named for
// the permissive `+` extension spec.md §9 requires preserving (either
// operand being a string is enough to trigger concatenation, not just
// when both are).
func concatStringify(left, right Value) Value {
	return stringify(left) + stringify(right)
}

func (in *Interpreter) numberOperands(op lexer.Token, left, right Value) (float64, float64, *RuntimeError) {
	ln, lok := isNumber(left)
	rn, rok := isNumber(right)
	if !lok || !rok {
		return 0, 0, &RuntimeError{Token: op, Message: ErrMsgOperandsMustBeNumbers}
	}
	return ln, rn, nil
}

// evalLogical short-circuits: "or" returns the left operand if it's
// truthy, "and" returns it if it's falsey, without evaluating the right
// operand in either shortcut case.
func (in *Interpreter) evalLogical(e *ast.Logical) (Value, *RuntimeError) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Operator.Type == lexer.Or {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}

	return in.eval(e.Right)
}

func (in *Interpreter) evalVariable(e *ast.Variable) (Value, *RuntimeError) {
	v, ok := in.lookUpVariable(e.Name.Lexeme, e)
	if !ok {
		return nil, &RuntimeError{Token: e.Name, Message: fmt.Sprintf(ErrMsgUndefinedVariable, e.Name.Lexeme)}
	}
	if _, unassigned := v.(unassignedType); unassigned {
		return nil, &RuntimeError{Token: e.Name, Message: fmt.Sprintf(ErrMsgUnassignedVariable, e.Name.Lexeme)}
	}
	return v, nil
}

func (in *Interpreter) evalAssign(e *ast.Assign) (Value, *RuntimeError) {
	value, err := in.eval(e.Value)
	if err != nil {
		return nil, err
	}
	if !in.assignVariable(e.Name.Lexeme, e, value) {
		return nil, &RuntimeError{Token: e.Name, Message: fmt.Sprintf(ErrMsgUndefinedVariable, e.Name.Lexeme)}
	}
	return value, nil
}

func (in *Interpreter) evalCall(e *ast.Call) (Value, *RuntimeError) {
	callee, err := in.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, &RuntimeError{Token: e.Paren, Message: ErrMsgOnlyCallFunctionsClasses}
	}

	if len(args) != callable.Arity() {
		return nil, &RuntimeError{
			Token:   e.Paren,
			Message: fmt.Sprintf(ErrMsgExpectedArgsGot, callable.Arity(), len(args)),
		}
	}

	return callable.Call(in, args)
}

func (in *Interpreter) evalGet(e *ast.Get) (Value, *RuntimeError) {
	object, err := in.eval(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*Instance)
	if !ok {
		return nil, &RuntimeError{Token: e.Name, Message: ErrMsgOnlyInstancesHaveProperties}
	}
	v, ok := instance.Get(e.Name.Lexeme)
	if !ok {
		return nil, &RuntimeError{Token: e.Name, Message: fmt.Sprintf(ErrMsgUndefinedProperty, e.Name.Lexeme)}
	}
	return v, nil
}

func (in *Interpreter) evalSet(e *ast.Set) (Value, *RuntimeError) {
	object, err := in.eval(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*Instance)
	if !ok {
		return nil, &RuntimeError{Token: e.Name, Message: ErrMsgOnlyInstancesHaveFields}
	}
	value, err := in.eval(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name.Lexeme, value)
	return value, nil
}

// evalSuper resolves the superclass's method named e.Method, then binds it
// to the *current* instance (read from "this" in the scope one level
// closer than "super", per the resolver's fixed scope layout).
func (in *Interpreter) evalSuper(e *ast.Super) (Value, *RuntimeError) {
	depth, ok := in.resolveDepth(e)
	if !ok {
		return nil, &RuntimeError{Token: e.Keyword, Message: ErrMsgSuperclassMustBeClass}
	}

	superVal, _ := in.environment.GetAt(depth, "super")
	superclass, ok := superVal.(*Class)
	if !ok {
		return nil, &RuntimeError{Token: e.Keyword, Message: ErrMsgSuperclassMustBeClass}
	}

	thisVal, _ := in.environment.GetAt(depth-1, "this")
	instance, ok := thisVal.(*Instance)
	if !ok {
		return nil, &RuntimeError{Token: e.Keyword, Message: ErrMsgOnlyInstancesHaveProperties}
	}

	method := superclass.findMethod(e.Method.Lexeme)
	if method == nil {
		return nil, &RuntimeError{Token: e.Method, Message: fmt.Sprintf(ErrMsgUndefinedProperty, e.Method.Lexeme)}
	}

	return method.bind(instance), nil
}
