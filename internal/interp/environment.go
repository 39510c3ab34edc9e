package interp

// unassigned is the sentinel spec.md §3's Environment invariant requires:
// it distinguishes "declared but not yet initialized" from "bound to nil".
// Reading an unassigned binding is a runtime error (spec.md §4.4), never a
// nil Value.
type unassignedType struct{}

// Unassigned is the sentinel stored for a `var name;` declaration with no
// initializer, until the first assignment gives it a real Value.
var Unassigned = unassignedType{}

// Environment is a mapping name -> Value, chained to an enclosing
// (non-owning) parent. Grounded on the environment-chain linked-parents
// model of spec.md §9's design note: parents are shared, since multiple
// closures may capture the same lexical frame.
type Environment struct {
	store map[string]Value
	outer *Environment
}

// NewEnvironment creates a top-level environment with no enclosing scope
// (used once, for the interpreter's globals).
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Value)}
}

// NewEnclosedEnvironment creates a child scope of outer, used for every
// block, function call, and loop body.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[string]Value), outer: outer}
}

// Define binds name to value in this environment, shadowing any binding of
// the same name in an enclosing scope. Re-declaring a name already defined
// in this same environment is allowed (distinct from the resolver's
// same-scope duplicate-declaration diagnostic, which fires for local scopes
// (blocks and function bodies) but not for globals).
func (e *Environment) Define(name string, value Value) {
	e.store[name] = value
}

// Get looks up name, walking outward through enclosing environments. The
// bool result is false if the name is bound nowhere in the chain.
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.outer {
		if v, ok := env.store[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign rebinds an existing name's value, walking outward until the
// declaring scope is found. Returns false if name is bound nowhere in the
// chain (the caller reports "Undefined variable").
func (e *Environment) Assign(name string, value Value) bool {
	for env := e; env != nil; env = env.outer {
		if _, ok := env.store[name]; ok {
			env.store[name] = value
			return true
		}
	}
	return false
}

// ancestor walks exactly distance hops up the chain. The resolver
// guarantees distance never overruns the chain for a successfully resolved
// reference.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.outer
	}
	return env
}

// GetAt reads name from the environment exactly distance hops away,
// short-circuiting the walk-until-found Get does. Used for every reference
// the resolver determined is local.
func (e *Environment) GetAt(distance int, name string) (Value, bool) {
	v, ok := e.ancestor(distance).store[name]
	return v, ok
}

// AssignAt assigns name in the environment exactly distance hops away.
func (e *Environment) AssignAt(distance int, name string, value Value) {
	e.ancestor(distance).store[name] = value
}
