package typeinfer_test

import (
	"testing"

	"github.com/cwbudde/go-ooc/internal/classreg"
	"github.com/cwbudde/go-ooc/internal/definite"
	"github.com/cwbudde/go-ooc/internal/errdiag"
	"github.com/cwbudde/go-ooc/internal/fixture"
	"github.com/cwbudde/go-ooc/internal/hierarchy"
	"github.com/cwbudde/go-ooc/internal/retcheck"
	"github.com/cwbudde/go-ooc/internal/typeinfer"
)

func prepare(t *testing.T, doc string) *classreg.Registry {
	t.Helper()
	reg, topLevel, err := fixture.LoadBytes([]byte(doc))
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if err := hierarchy.Check(reg); err != nil {
		t.Fatalf("hierarchy.Check: %v", err)
	}
	if err := retcheck.Check(reg); err != nil {
		t.Fatalf("retcheck.Check: %v", err)
	}
	if err := definite.CheckAll(reg); err != nil {
		t.Fatalf("definite.CheckAll: %v", err)
	}
	if err := definite.CheckTopLevel(reg, topLevel); err != nil {
		t.Fatalf("definite.CheckTopLevel: %v", err)
	}
	if err := typeinfer.Infer(reg); err != nil {
		t.Fatalf("Infer: %v", err)
	}
	if err := typeinfer.InferTopLevel(reg, topLevel); err != nil {
		t.Fatalf("InferTopLevel: %v", err)
	}
	return reg
}

const thisAtTopLevelDoc = `
classes: []
top_level:
  - kind: expr
    x:
      kind: access
      object: { kind: this }
      name: whatever
`

func TestInferTopLevel_ThisIsInvalid(t *testing.T) {
	reg, topLevel, err := fixture.LoadBytes([]byte(thisAtTopLevelDoc))
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if err := hierarchy.Check(reg); err != nil {
		t.Fatalf("hierarchy.Check: %v", err)
	}

	err2 := typeinfer.InferTopLevel(reg, topLevel)
	if err2 == nil {
		t.Fatal("expected a ThisError, got nil")
	}
	if err2.Kind != errdiag.ThisError {
		t.Errorf("Kind = %s, want %s", err2.Kind, errdiag.ThisError)
	}
}

const fieldSubtypeDoc = `
classes:
  - name: Animal
    super: Obj
    constructor:
      - kind: assign
        lhs:
          kind: typeannotation
          target: { kind: access, object: { kind: this }, name: tag }
          type: ""
        rhs: { kind: int, value: 1 }
  - name: Dog
    super: Animal
    constructor:
      - kind: assign
        lhs:
          kind: typeannotation
          target: { kind: access, object: { kind: this }, name: tag }
          type: ""
        rhs: { kind: int, value: 2 }
top_level: []
`

func TestInfer_FieldSubtypeAcrossHierarchy(t *testing.T) {
	reg := prepare(t, fieldSubtypeDoc)

	dog, ok := reg.Lookup("Dog")
	if !ok {
		t.Fatal("class Dog not found in registry")
	}
	field, _, found := dog.FindField("tag")
	if !found {
		t.Fatal("field tag not found on Dog")
	}
	if field.Type == nil || field.Type.TypeName() != classreg.Int {
		t.Errorf("tag field type = %v, want Int", field.Type)
	}
}
