// Command lox is the Lox language CLI: a REPL and file runner built on
// top of pkg/lox.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/lox/cmd/lox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
