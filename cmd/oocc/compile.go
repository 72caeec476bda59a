package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-ooc/internal/driver"
	"github.com/cwbudde/go-ooc/internal/fixture"
	"github.com/cwbudde/go-ooc/internal/lower"
	"github.com/cwbudde/go-ooc/internal/typeinfer"
)

var (
	outputFile     string
	disassemble    bool
	compileVerbose bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [fixture.yaml]",
	Short: "Run all four phases and emit lowered target code",
	Long: `Compile loads a YAML fixture describing a class table and a
top-level statement block, runs class hierarchy validation,
definite-assignment analysis, type inference, and lowered-code emission
in order, and writes the emitted target text to an output file.

Examples:
  # Compile a fixture and write program.c next to it
  oocc compile program.yaml

  # Compile with a custom output file
  oocc compile program.yaml -o out.c

  # Compile and print a line-numbered dump of the emitted text
  oocc compile program.yaml --disassemble`,
	Args: cobra.ExactArgs(1),
	RunE: compileFixture,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: <input>.c)")
	compileCmd.Flags().BoolVar(&disassemble, "disassemble", false, "print a line-numbered dump of the emitted text")
	compileCmd.Flags().BoolVarP(&compileVerbose, "verbose", "v", false, "verbose output")
}

func compileFixture(_ *cobra.Command, args []string) error {
	filename := args[0]
	typeinfer.MaxIterationsOverride = maxIterations

	if compileVerbose {
		fmt.Fprintf(os.Stderr, "Loading %s...\n", filename)
	}

	reg, topLevel, err := fixture.Load(filename)
	if err != nil {
		return fmt.Errorf("failed to load fixture %s: %w", filename, err)
	}

	result, failure := driver.Compile(reg, topLevel)
	if failure != nil {
		fmt.Fprintf(os.Stderr, "%s\n", failure.Err.Error())
		os.Exit(failure.Phase.ExitCode())
	}

	if compileVerbose {
		fmt.Fprintf(os.Stderr, "Compilation successful\n")
		fmt.Fprintf(os.Stderr, "  Classes: %d\n", result.Stats.ClassCount)
		fmt.Fprintf(os.Stderr, "  Methods: %d\n", result.Stats.MethodCount)
		fmt.Fprintf(os.Stderr, "  Fields:  %d\n", result.Stats.FieldCount)
	}

	if disassemble {
		fmt.Fprintf(os.Stderr, "\n== Emitted target text (%s) ==\n", filename)
		fmt.Fprint(os.Stderr, lower.Dump(result.Registry, result.TopLevel))
		fmt.Fprintln(os.Stderr)
	}

	outFile := outputFile
	if outFile == "" {
		ext := filepath.Ext(filename)
		if ext != "" {
			outFile = strings.TrimSuffix(filename, ext) + ".c"
		} else {
			outFile = filename + ".c"
		}
	}

	if err := os.WriteFile(outFile, []byte(result.Output), 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outFile, err)
	}

	if compileVerbose {
		fmt.Fprintf(os.Stderr, "Output written to %s (%d bytes)\n", outFile, len(result.Output))
	} else {
		fmt.Printf("Compiled %s -> %s\n", filename, outFile)
	}

	return nil
}
