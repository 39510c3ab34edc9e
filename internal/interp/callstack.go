package interp

import (
	"fmt"

	"github.com/cwbudde/lox/internal/errors"
	"github.com/cwbudde/lox/internal/lexer"
)

// defaultMaxRecursionDepth bounds Lox's function call nesting. spec.md §5
// says host-stack overflow on deep recursion is acceptable, but a stack
// depth guard here turns an eventual Go stack-overflow crash into a
// reported Lox runtime error first, for any recursion shallow enough to
// hit this ceiling before the host stack actually would.
const defaultMaxRecursionDepth = 1024

// CallStack tracks active function call frames for stack-overflow
// detection and diagnostics. Adapted from the teacher's
// internal/interp/evaluator/callstack.go, narrowed to what Lox's call
// semantics need: push/pop around every Function.Call, nothing else reads
// or mutates the frame list concurrently since the interpreter is
// single-threaded (spec.md §5).
type CallStack struct {
	frames   errors.StackTrace
	maxDepth int
}

// NewCallStack creates a call stack with the given maximum depth; a
// non-positive maxDepth falls back to defaultMaxRecursionDepth.
func NewCallStack(maxDepth int) *CallStack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxRecursionDepth
	}
	return &CallStack{frames: errors.NewStackTrace(), maxDepth: maxDepth}
}

// Push adds a frame for functionName, returning an error instead of
// pushing if doing so would exceed maxDepth. The error includes the
// current call chain (most recent call first) so the reported
// RuntimeError shows the caller where the recursion bottomed out, not
// just the depth that was exceeded.
func (cs *CallStack) Push(functionName string, pos *lexer.Position) error {
	if len(cs.frames) >= cs.maxDepth {
		return fmt.Errorf("stack overflow: maximum recursion depth (%d) exceeded in function '%s'\n%s",
			cs.maxDepth, functionName, cs.String())
	}
	cs.frames = append(cs.frames, errors.NewStackFrame(functionName, pos))
	return nil
}

// Pop removes the most recently pushed frame; a no-op on an empty stack.
func (cs *CallStack) Pop() {
	if len(cs.frames) > 0 {
		cs.frames = cs.frames[:len(cs.frames)-1]
	}
}

// Depth returns the number of active call frames.
func (cs *CallStack) Depth() int { return len(cs.frames) }

// String renders the stack, most recent frame first, for the stack-overflow
// error Push returns.
func (cs *CallStack) String() string { return cs.frames.String() }
