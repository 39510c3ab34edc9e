package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is the runtime representation of a Lox value: nil, bool, float64,
// string, Callable, or *Instance. There is no dedicated Go type for it —
// matching the teacher's use of `any`-backed value slots — because the
// type switch in this package's evaluators is the single source of truth
// for what a Value may hold.
type Value any

// isTruthy implements spec.md §3's truthiness policy: only nil and false
// are falsey; everything else, including 0 and "", is truthy.
func isTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual implements Value equality: nil equals only nil; bool/number/
// string compare by value; callables and instances compare by identity.
func isEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		// Callables and instances are Go pointers/interfaces; compare by
		// identity only, never by structural equality.
		return a == b
	}
}

// stringify renders a Value the way `print` and the REPL's bare-expression
// echo do, per spec.md §4.4.
func stringify(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'g', -1, 64)
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// isNumber reports whether v holds a float64.
func isNumber(v Value) (float64, bool) {
	n, ok := v.(float64)
	return n, ok
}

// isString reports whether v holds a string.
func isString(v Value) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// typeName names a Value's kind: "nil", "bool", "number", "string", or, for
// any other value, its lower-cased Go type name (e.g. "*interp.instance").
func typeName(v Value) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "bool"
	case float64:
		return "number"
	case string:
		return "string"
	default:
		return strings.ToLower(fmt.Sprintf("%T", v))
	}
}
