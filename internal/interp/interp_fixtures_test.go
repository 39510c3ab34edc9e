package interp

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/lox/internal/diag"
	"github.com/cwbudde/lox/internal/lexer"
	"github.com/cwbudde/lox/internal/parser"
	"github.com/cwbudde/lox/internal/resolver"
)

// TestFixtures runs every .lox script under testdata/fixtures through the
// full scan/parse/resolve/interpret pipeline and snapshots its combined
// stdout and diagnostic output with go-snaps, grounded on the teacher's
// TestDWScriptFixtures convention of driving the pipeline over a directory
// of source fixtures rather than hand-writing one test per script.
func TestFixtures(t *testing.T) {
	paths, err := filepath.Glob("../../testdata/fixtures/*.lox")
	if err != nil {
		t.Fatalf("glob fixtures: %v", err)
	}
	if len(paths) == 0 {
		t.Fatal("no fixtures found under testdata/fixtures")
	}

	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), ".lox")
		t.Run(name, func(t *testing.T) {
			source, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read %s: %v", path, err)
			}

			var stdout, stderr strings.Builder
			reporter := diag.New(&stderr)

			toks := lexer.New(string(source)).ScanTokens()
			p := parser.New(toks, reporter)
			program := p.Parse()

			if !reporter.HadError() {
				res := resolver.New(reporter)
				res.Resolve(program)

				if !reporter.HadError() {
					in := New(&stdout, reporter, res.Locals())
					in.Interpret(program)
				}
			}

			combined := fmt.Sprintf("-- stdout --\n%s-- stderr --\n%s", stdout.String(), stderr.String())
			snaps.MatchSnapshot(t, combined)
		})
	}
}
