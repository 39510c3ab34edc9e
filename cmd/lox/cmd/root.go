// Package cmd implements the lox command-line driver: rootCmd doubles as
// the REPL/file runner (spec.md §6 gives lox a flat `lox` / `lox <file>`
// surface, not a `run` subcommand), plus a version subcommand. Grounded on
// the teacher's cmd/dwscript/cmd package layout (one file per command,
// shared package-level flag variables, a version-template convention).
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/lox/pkg/lox"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	evalExpr bool
	evalCode string
	printAST bool
	trace    bool
)

var rootCmd = &cobra.Command{
	Use:   "lox [file]",
	Short: "Lox language interpreter",
	Long: `lox is a tree-walking interpreter for Lox, a small dynamically-typed
scripting language with closures, single inheritance, and C-like syntax.

Examples:
  # Start the interactive REPL
  lox

  # Run a script file
  lox script.lox

  # Evaluate an inline expression
  lox -e "print 1 + 2;"`,
	Args:    cobra.MaximumNArgs(1),
	Version: Version,
	RunE:    runLox,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().StringVarP(&evalCode, "eval", "e", "", "evaluate inline code instead of reading from file")
	rootCmd.Flags().BoolVar(&printAST, "print-ast", false, "print the parsed AST before executing (for debugging)")
	rootCmd.Flags().BoolVar(&trace, "trace", false, "trace lexer token scanning (for debugging)")
}

func runLox(_ *cobra.Command, args []string) error {
	evalExpr = evalCode != ""

	opts := lox.Options{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		PrintAST: printAST,
		Trace:    trace,
	}

	switch {
	case evalExpr:
		os.Exit(lox.Run(evalCode, opts))
	case len(args) == 1:
		os.Exit(lox.RunFile(args[0], opts))
	default:
		os.Exit(lox.REPL(os.Stdin, opts))
	}
	return nil
}
