package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "oocc",
	Short: "A compiler core for a small class-based object language",
	Long: `oocc drives the four-phase semantic core of a class-based,
single-inheritance object language: class hierarchy validation,
definite-assignment analysis, flow-insensitive type inference, and
lowered-code emission targeting a C-like struct-and-dispatch-table form.

It reads a pre-built class table and top-level statement block from a
YAML fixture file rather than source text — this binary has no lexer or
parser; see internal/fixture for the document shape.`,
	Version: Version,
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

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().IntVar(&maxIterations, "max-iterations", 0,
		"override the type inference fixed-point iteration bound (0: use the spec default)")
}

// maxIterations overrides internal/typeinfer's computed fixed-point bound
// when non-zero (spec §5).
var maxIterations int

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
