// Package errdiag implements the compiler's categorized error taxonomy
// (spec §7). Every failure the core phases raise is a *Error carrying one
// Kind; a phase's error short-circuits it and no later phase runs (spec
// §2, §7 "no error is locally recovered").
package errdiag

import "fmt"

// Phase identifies which stage raised an error, which in turn selects the
// process exit code (spec §6 "stage-specific non-zero code").
type Phase string

const (
	PhaseClassHierarchy     Phase = "ClassHierarchy"
	PhaseInitializeBeforeUse Phase = "InitializeBeforeUse"
	PhaseTypeInference      Phase = "TypeInference"
)

// ExitCode returns the process exit code reserved for p.
func (p Phase) ExitCode() int {
	switch p {
	case PhaseClassHierarchy:
		return 2
	case PhaseInitializeBeforeUse:
		return 3
	case PhaseTypeInference:
		return 4
	default:
		return 1
	}
}

// Kind is one entry of the exhaustive taxonomy in spec §7.
type Kind string

const (
	// ClassHierarchy kinds.
	CyclicInheritance          Kind = "CyclicInheritance"
	UnknownSuper               Kind = "UnknownSuper"
	InheritedMethodReturnType  Kind = "InheritedMethodReturnType"
	InheritedMethodParamCount  Kind = "InheritedMethodParamCount"
	InheritedMethodParamType   Kind = "InheritedMethodParamType"
	NameCollision              Kind = "NameCollision"
	MissingReturn              Kind = "MissingReturn"
	NothingParam               Kind = "NothingParam"
	DuplicateClass             Kind = "DuplicateClass"

	// InitializeBeforeUse kinds.
	UninitializedVar   Kind = "UninitializedVar"
	DuplicateMember    Kind = "DuplicateMember"
	FieldClassMatch    Kind = "FieldClassMatch"
	Constructor        Kind = "Constructor"
	MissingSuperFields Kind = "MissingSuperFields"

	// TypeInference kinds.
	TypingError        Kind = "TypingError"
	UnknownType        Kind = "UnknownType"
	UnknownConstructor Kind = "UnknownConstructor"
	UnknownBinOp       Kind = "UnknownBinOp"
	MethodError        Kind = "MethodError"
	FunctionCall       Kind = "FunctionCall"
	IfCondType         Kind = "IfCondType"
	WhileCondType      Kind = "WhileCondType"
	BinOp              Kind = "BinOp"
	BoolOp             Kind = "BoolOp"
	UniOp              Kind = "UniOp"
	ReturnType         Kind = "ReturnType"
	ReturnNothing      Kind = "ReturnNothing"
	TypecaseError      Kind = "TypecaseError"
	TypecaseMismatch   Kind = "TypecaseMismatch"
	SubtypeFieldType   Kind = "SubtypeFieldType"
	ThisError          Kind = "ThisError"
	FieldError         Kind = "FieldError"
	AmbiguousInference Kind = "AmbiguousInference"
)

// Error is a single categorized compiler error. Its user-visible form is
// "<Kind> | <message>" on a single line (spec §6).
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s | %s", e.Kind, e.Message)
}

// New builds an *Error with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
