package fixture_test

import (
	"testing"

	"github.com/cwbudde/go-ooc/internal/classreg"
	"github.com/cwbudde/go-ooc/internal/fixture"
)

const pointDoc = `
classes:
  - name: Point
    super: Obj
    params:
      - name: x
        type: Int
    constructor:
      - kind: assign
        lhs:
          kind: typeannotation
          target: { kind: access, object: { kind: this }, name: x }
          type: ""
        rhs: { kind: ident, name: x }
    methods:
      - name: getX
        params: []
        return_type: Int
        body:
          - kind: return
            value: { kind: access, object: { kind: this }, name: x }
top_level:
  - kind: assign
    lhs:
      kind: typeannotation
      target: { kind: ident, name: p }
      type: Point
    rhs:
      kind: call
      name: Point
      args:
        - { kind: int, value: 1 }
`

func TestLoadBytes_BuildsRegistryAndTopLevel(t *testing.T) {
	reg, topLevel, err := fixture.LoadBytes([]byte(pointDoc))
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}

	point, ok := reg.Lookup("Point")
	if !ok {
		t.Fatal("class Point not found in registry")
	}
	if point.Super != reg.MustLookup(classreg.Obj) {
		t.Errorf("Point.Super = %v, want Obj", point.Super)
	}
	if len(point.Params) != 1 || point.Params[0].Name != "x" {
		t.Errorf("Point.Params = %v, want one param named x", point.Params)
	}
	if point.Params[0].Resolved != reg.MustLookup(classreg.Int) {
		t.Errorf("Point param x resolved type = %v, want Int", point.Params[0].Resolved)
	}

	getX, ok := point.Methods["getX"]
	if !ok {
		t.Fatal("method getX not found on Point")
	}
	if getX.ReturnType.TypeName() != classreg.Int {
		t.Errorf("getX return type = %s, want Int", getX.ReturnType.TypeName())
	}

	if len(topLevel.Stmts) != 1 {
		t.Fatalf("top_level statement count = %d, want 1", len(topLevel.Stmts))
	}
}

func TestLoadBytes_UnknownSuperFails(t *testing.T) {
	const doc = `
classes:
  - name: Orphan
    super: Nonexistent
top_level: []
`
	if _, _, err := fixture.LoadBytes([]byte(doc)); err == nil {
		t.Fatal("expected an error for an unknown super class name")
	}
}

func TestLoadBytes_DuplicateClassNameFails(t *testing.T) {
	const doc = `
classes:
  - name: Widget
    super: Obj
  - name: Widget
    super: Obj
top_level: []
`
	if _, _, err := fixture.LoadBytes([]byte(doc)); err == nil {
		t.Fatal("expected an error for a duplicate class name")
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	if _, _, err := fixture.Load("testdata/does-not-exist.yaml"); err == nil {
		t.Fatal("expected an error for a missing fixture file")
	}
}
