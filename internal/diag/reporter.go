// Package diag holds the shared diagnostic reporter used across the
// scan/parse/resolve/runtime stages of the pipeline.
//
// Grounded on the teacher's driver-level error accumulation in
// cmd/dwscript/cmd/run.go: each phase reports everything it finds, and the
// driver checks a sticky flag before moving to the next phase.
package diag

import (
	"fmt"
	"io"
)

// Reporter accumulates diagnostics for one run (one file, or one REPL line)
// and exposes the two sticky flags spec.md §4.5/§7 require.
type Reporter struct {
	out             io.Writer
	hadError        bool
	hadRuntimeError bool
}

// New creates a Reporter that writes formatted diagnostics to out.
func New(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// HadError reports whether any scan/parse/resolve diagnostic was reported
// since the last Reset.
func (r *Reporter) HadError() bool { return r.hadError }

// HadRuntimeError reports whether a runtime diagnostic was reported since
// the last Reset.
func (r *Reporter) HadRuntimeError() bool { return r.hadRuntimeError }

// Reset clears both sticky flags. Called between REPL lines; a single file
// run never resets mid-flight.
func (r *Reporter) Reset() {
	r.hadError = false
	r.hadRuntimeError = false
}

// Error reports a scan-stage diagnostic: "[line N] Error: message".
func (r *Reporter) Error(line int, message string) {
	r.report(line, "", message)
}

// ErrorAt reports a parse/resolve-stage diagnostic located at a token.
// atEnd selects the " at end" form; otherwise "at '<lexeme>'" is used.
func (r *Reporter) ErrorAt(line int, lexeme string, atEnd bool, message string) {
	if atEnd {
		r.report(line, " at end", message)
	} else {
		r.report(line, fmt.Sprintf(" at '%s'", lexeme), message)
	}
}

func (r *Reporter) report(line int, where, message string) {
	fmt.Fprintf(r.out, "[line %d] Error%s: %s\n", line, where, message)
	r.hadError = true
}

// RuntimeError reports a runtime diagnostic: "message\n[line N]".
func (r *Reporter) RuntimeError(line int, message string) {
	fmt.Fprintf(r.out, "%s\n[line %d]\n", message, line)
	r.hadRuntimeError = true
}
