package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-ooc/internal/driver"
	"github.com/cwbudde/go-ooc/internal/fixture"
	"github.com/cwbudde/go-ooc/internal/typeinfer"
)

var checkCmd = &cobra.Command{
	Use:   "check [fixture.yaml]",
	Short: "Run hierarchy, definite-assignment, and inference without emitting code",
	Long: `Check loads a YAML fixture and runs the first three compiler
phases — class hierarchy validation, definite-assignment analysis, and
type inference — reporting the first categorized error found, or
nothing on success. It never runs the lowering phase, so it accepts
fixtures that a full "compile" would reject as incomplete for emission.`,
	Args: cobra.ExactArgs(1),
	RunE: checkFixture,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func checkFixture(_ *cobra.Command, args []string) error {
	filename := args[0]
	typeinfer.MaxIterationsOverride = maxIterations

	reg, topLevel, err := fixture.Load(filename)
	if err != nil {
		return fmt.Errorf("failed to load fixture %s: %w", filename, err)
	}

	if failure := driver.Check(reg, topLevel); failure != nil {
		fmt.Fprintf(os.Stderr, "%s\n", failure.Err.Error())
		os.Exit(failure.Phase.ExitCode())
	}

	fmt.Println("ok")
	return nil
}
