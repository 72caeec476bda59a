// Package driver orchestrates the four core phases into a single
// compilation: class hierarchy validation, definite-assignment,
// type inference, and lowered-code emission (spec §2). It owns the
// class registry and top-level block for the duration of one
// compilation and is the only component that knows the phase ordering.
package driver

import (
	"github.com/cwbudde/go-ooc/ast"
	"github.com/cwbudde/go-ooc/internal/classreg"
	"github.com/cwbudde/go-ooc/internal/definite"
	"github.com/cwbudde/go-ooc/internal/errdiag"
	"github.com/cwbudde/go-ooc/internal/hierarchy"
	"github.com/cwbudde/go-ooc/internal/lower"
	"github.com/cwbudde/go-ooc/internal/retcheck"
	"github.com/cwbudde/go-ooc/internal/typeinfer"
)

// Stats summarizes one completed compilation, for verbose CLI output.
type Stats struct {
	ClassCount  int
	MethodCount int
	FieldCount  int
}

// Result is the outcome of a successful compilation.
type Result struct {
	Registry *classreg.Registry
	TopLevel *ast.Block
	Output   string
	Stats    Stats
}

// Failure reports a phase-attributed compiler error, so the caller can map
// it to the correct process exit code (spec §6).
type Failure struct {
	Phase errdiag.Phase
	Err   *errdiag.Error
}

func (f *Failure) Error() string { return f.Err.Error() }

// Compile runs every core phase over reg/topLevel in order, short-
// circuiting at the first error (spec §7 "no error is locally recovered").
// reg and topLevel are normally produced by internal/fixture, the
// external collaborator standing in for a lexer/parser front end.
func Compile(reg *classreg.Registry, topLevel *ast.Block) (*Result, *Failure) {
	if err := Check(reg, topLevel); err != nil {
		return nil, err
	}

	output := lower.Emit(reg, topLevel)

	return &Result{
		Registry: reg,
		TopLevel: topLevel,
		Output:   output,
		Stats:    statsOf(reg),
	}, nil
}

// Check runs only the first three phases — hierarchy validation,
// definite-assignment, and type inference — without emitting lowered
// code. Used by the CLI's "check" subcommand to validate a fixture
// without requiring it to be complete enough to lower.
func Check(reg *classreg.Registry, topLevel *ast.Block) *Failure {
	if err := hierarchy.Check(reg); err != nil {
		return &Failure{Phase: errdiag.PhaseClassHierarchy, Err: err}
	}
	if err := retcheck.Check(reg); err != nil {
		return &Failure{Phase: errdiag.PhaseClassHierarchy, Err: err}
	}

	if err := definite.CheckAll(reg); err != nil {
		return &Failure{Phase: errdiag.PhaseInitializeBeforeUse, Err: err}
	}
	if err := definite.CheckTopLevel(reg, topLevel); err != nil {
		return &Failure{Phase: errdiag.PhaseInitializeBeforeUse, Err: err}
	}

	if err := typeinfer.Infer(reg); err != nil {
		return &Failure{Phase: errdiag.PhaseTypeInference, Err: err}
	}
	if err := typeinfer.InferTopLevel(reg, topLevel); err != nil {
		return &Failure{Phase: errdiag.PhaseTypeInference, Err: err}
	}
	return nil
}

func statsOf(reg *classreg.Registry) Stats {
	var s Stats
	for _, c := range reg.UserClasses() {
		s.ClassCount++
		s.MethodCount += len(c.Methods)
		s.FieldCount += len(c.Fields)
	}
	return s
}
