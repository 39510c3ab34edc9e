// Package lox is the public facade over the scan/parse/resolve/interpret
// pipeline: Run and RunFile execute a complete program to completion or
// report a diagnostic, and REPL drives the interactive prompt. Grounded on
// the teacher's pkg/dwscript public-API convention of exposing one small
// facade package in front of the internal pipeline packages, so cmd/lox
// (and any future embedder) never imports internal/* directly.
package lox

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/lox/internal/diag"
	"github.com/cwbudde/lox/internal/interp"
	"github.com/cwbudde/lox/internal/lexer"
	"github.com/cwbudde/lox/internal/parser"
	"github.com/cwbudde/lox/internal/resolver"
)

// Exit codes from spec.md §6.
const (
	ExitSuccess      = 0
	ExitStaticError  = 65
	ExitRuntimeError = 70
)

// Options configures a Run/RunFile/REPL invocation.
type Options struct {
	Stdout   io.Writer
	Stderr   io.Writer
	PrintAST bool
	Trace    bool
}

func (o Options) withDefaults() Options {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	return o
}

// RunFile reads and executes a script file, returning the process exit
// code spec.md §6 specifies for the outcome.
func RunFile(path string, opts Options) int {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(opts.withDefaults().Stderr, "lox: %v\n", err)
		return 1
	}
	return Run(string(content), opts)
}

// Run executes one complete source unit (a file's full contents, or one
// REPL line in --eval/non-interactive use) and returns the spec.md §6
// exit code for the outcome.
func Run(source string, opts Options) int {
	opts = opts.withDefaults()

	l := lexer.New(source, lexer.WithTracing(opts.Trace))
	tokens := l.ScanTokens()

	reporter := diag.New(opts.Stderr)
	for _, scanErr := range l.Errors() {
		reporter.Error(scanErr.Line, scanErr.Message)
	}

	p := parser.New(tokens, reporter)
	program := p.Parse()

	if opts.PrintAST {
		fmt.Fprintln(opts.Stdout, program.String())
	}

	if reporter.HadError() {
		return ExitStaticError
	}

	res := resolver.New(reporter)
	res.Resolve(program)
	if reporter.HadError() {
		return ExitStaticError
	}

	interpreter := interp.New(opts.Stdout, reporter, res.Locals())
	interpreter.Interpret(program)

	if reporter.HadRuntimeError() {
		return ExitRuntimeError
	}
	return ExitSuccess
}

// REPL runs the interactive read-eval-print loop: reads a line, evaluates
// it, prints, repeats; an empty line or EOF exits. One diagnostic Reporter
// serves the session and is Reset before each line (errors don't persist
// across lines), and a single
// Interpreter persists across the whole session so declarations and
// bindings accumulate, matching spec.md §4.5's "cleared between REPL
// lines" flag semantics.
func REPL(in io.Reader, opts Options) int {
	opts = opts.withDefaults()
	scanner := bufio.NewScanner(in)

	reporter := diag.New(opts.Stderr)
	interpreter := interp.New(opts.Stdout, reporter, nil)
	interpreter.SetREPLMode(true)

	for {
		fmt.Fprint(opts.Stdout, "> ")
		if !scanner.Scan() {
			return ExitSuccess
		}
		line := scanner.Text()
		if line == "" {
			return ExitSuccess
		}

		reporter.Reset()

		l := lexer.New(line, lexer.WithTracing(opts.Trace))
		tokens := l.ScanTokens()
		for _, scanErr := range l.Errors() {
			reporter.Error(scanErr.Line, scanErr.Message)
		}

		p := parser.New(tokens, reporter)
		program := p.Parse()
		if opts.PrintAST {
			fmt.Fprintln(opts.Stdout, program.String())
		}
		if reporter.HadError() {
			continue
		}

		res := resolver.New(reporter)
		res.Resolve(program)
		if reporter.HadError() {
			continue
		}

		interpreter.SetLocals(res.Locals())
		interpreter.Interpret(program)
	}
}
