package interp

import "github.com/cwbudde/lox/internal/ast"

// Function is a user-defined function, lambda, or bound method: the
// declaration (params + body), the closure captured at definition time,
// and whether this is a class initializer (spec.md §3's Function type).
type Function struct {
	name          string // "" for an anonymous lambda
	declaration   *ast.Lambda
	closure       *Environment
	isInitializer bool
}

// newFunction wraps a named function declaration's lambda body.
func newFunction(name string, declaration *ast.Lambda, closure *Environment, isInitializer bool) *Function {
	return &Function{name: name, declaration: declaration, closure: closure, isInitializer: isInitializer}
}

func (f *Function) Arity() int { return len(f.declaration.Params) }

// Call creates a fresh environment enclosing the closure, binds parameters
// positionally, executes the body, and yields the Return value (or the
// captured `this` if isInitializer, regardless of whether the body
// actually executed a return statement).
func (f *Function) Call(in *Interpreter, args []Value) (Value, *RuntimeError) {
	env := NewEnclosedEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	frameName := f.name
	if frameName == "" {
		frameName = "<anonymous fn>"
	}
	if err := in.callStack.Push(frameName, &f.declaration.Keyword.Pos); err != nil {
		return nil, &RuntimeError{Token: f.declaration.Keyword, Message: err.Error()}
	}
	defer in.callStack.Pop()

	res := in.executeBlock(f.declaration.Body, env)

	// A RuntimeError unwind must propagate even from an initializer body:
	// only unwindReturn (or falling off the end) gets the "always yields
	// this" treatment below.
	if res.kind == unwindError {
		return nil, res.err
	}

	if f.isInitializer {
		this, _ := f.closure.GetAt(0, "this")
		return this, nil
	}

	if res.kind == unwindReturn {
		return res.value, nil
	}
	return nil, nil
}

// bind clones f with a new closure that defines "this" as instance,
// implementing method lookup's implicit receiver binding.
func (f *Function) bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.closure)
	env.Define("this", instance)
	return newFunction(f.name, f.declaration, env, f.isInitializer)
}

func (f *Function) String() string {
	if f.name == "" {
		return "<anonymous fn>"
	}
	return "<fn " + f.name + ">"
}
