package definite_test

import (
	"testing"

	"github.com/cwbudde/go-ooc/internal/definite"
	"github.com/cwbudde/go-ooc/internal/errdiag"
	"github.com/cwbudde/go-ooc/internal/fixture"
)

const useBeforeAssignDoc = `
classes: []
top_level:
  - kind: expr
    x: { kind: ident, name: x }
`

func TestCheckTopLevel_UninitializedVar(t *testing.T) {
	reg, topLevel, err := fixture.LoadBytes([]byte(useBeforeAssignDoc))
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}

	got := definite.CheckTopLevel(reg, topLevel)
	if got == nil {
		t.Fatal("expected an UninitializedVar error, got nil")
	}
	if got.Kind != errdiag.UninitializedVar {
		t.Errorf("Kind = %s, want %s", got.Kind, errdiag.UninitializedVar)
	}
}

const assignThenUseDoc = `
classes: []
top_level:
  - kind: assign
    lhs:
      kind: typeannotation
      target: { kind: ident, name: x }
      type: ""
    rhs: { kind: int, value: 1 }
  - kind: expr
    x: { kind: ident, name: x }
`

func TestCheckTopLevel_AssignThenUseOK(t *testing.T) {
	reg, topLevel, err := fixture.LoadBytes([]byte(assignThenUseDoc))
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}

	if got := definite.CheckTopLevel(reg, topLevel); got != nil {
		t.Fatalf("unexpected error: %v", got)
	}
}
