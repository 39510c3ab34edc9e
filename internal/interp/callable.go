package interp

// Callable is anything that can appear on the left of a Call expression:
// a user-defined function, a lambda, a native function, or a class
// (whose call constructs an instance). Grounded on spec.md §3's Callable
// contract: arity, a call operation, and a display name.
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []Value) (Value, *RuntimeError)
	String() string
}

// NativeFunction wraps a Go function as a Callable, used for the global
// built-ins defined in builtins.go.
type NativeFunction struct {
	name string
	arity int
	fn    func(in *Interpreter, args []Value) (Value, *RuntimeError)
}

func (f *NativeFunction) Arity() int { return f.arity }

func (f *NativeFunction) Call(in *Interpreter, args []Value) (Value, *RuntimeError) {
	return f.fn(in, args)
}

func (f *NativeFunction) String() string { return "<native fn>" }
