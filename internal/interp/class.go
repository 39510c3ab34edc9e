package interp

// Class is a runtime class value: a name, optional superclass, and its
// own (non-inherited) methods. Grounded on spec.md §3's Class type; method
// resolution order is immutable after construction (spec.md §5's mutation
// discipline) so findMethod only ever walks up the fixed superclass chain.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

// findMethod looks up name in this class's own methods, falling back to
// the superclass chain. Returns nil if no class in the chain declares it.
func (c *Class) findMethod(name string) *Function {
	if fn, ok := c.Methods[name]; ok {
		return fn
	}
	if c.Superclass != nil {
		return c.Superclass.findMethod(name)
	}
	return nil
}

// Arity equals the init method's arity if present, else 0.
func (c *Class) Arity() int {
	if init := c.findMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call constructs an Instance and, if this class (or an ancestor) defines
// init, invokes it bound to the new instance; init's own return value is
// discarded since a constructor call always yields the instance.
func (c *Class) Call(in *Interpreter, args []Value) (Value, *RuntimeError) {
	instance := &Instance{class: c, fields: make(map[string]Value)}
	if init := c.findMethod("init"); init != nil {
		if _, err := init.bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (c *Class) String() string { return c.Name }
