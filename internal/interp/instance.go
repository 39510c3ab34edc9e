package interp

import "fmt"

// Instance is a heap-allocated object of a Class, carrying mutable fields.
// Grounded on spec.md §3's Instance type and §5's mutation discipline:
// fields are freely mutable via Set, method resolution order is not.
type Instance struct {
	class  *Class
	fields map[string]Value
}

// Get implements property access ("object.name"): fields shadow methods,
// and a found method is bound to this instance before being returned, per
// spec.md §4.4's "bind(instance)" contract.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.fields[name]; ok {
		return v, true
	}
	if method := i.class.findMethod(name); method != nil {
		return method.bind(i), true
	}
	return nil, false
}

// Set assigns a field unconditionally; Lox has no declared-field list, so
// any name becomes a field on first assignment.
func (i *Instance) Set(name string, value Value) {
	i.fields[name] = value
}

func (i *Instance) String() string {
	return fmt.Sprintf("<%s instance>", i.class.Name)
}
