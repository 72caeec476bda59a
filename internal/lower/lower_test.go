package lower_test

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-ooc/internal/definite"
	"github.com/cwbudde/go-ooc/internal/fixture"
	"github.com/cwbudde/go-ooc/internal/hierarchy"
	"github.com/cwbudde/go-ooc/internal/lower"
	"github.com/cwbudde/go-ooc/internal/retcheck"
	"github.com/cwbudde/go-ooc/internal/typeinfer"
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
top_level: []
`

func TestEmit_StructAndDispatchShape(t *testing.T) {
	reg, topLevel, err := fixture.LoadBytes([]byte(pointDoc))
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

	out := lower.Emit(reg, topLevel)

	for _, want := range []string{
		"struct obj_Point_struct {",
		"struct class_Point_struct {",
		"\tclass_Obj super_;",
		"\tobj_Point (*constructor)(obj_Int x);",
		"obj_Point new_Point(obj_Int x) {",
		"obj_Int getX_Point(obj_Point self)",
		"struct class_Point_struct the_class_Point_struct = {",
		".super_ = (class_Obj)&the_class_Obj_struct,",
		".constructor = new_Point,",
		".getX = getX_Point",
		"class_Point the_class_Point = &the_class_Point_struct;",
		"self->clazz = the_class_Point;",
		"obj_Nothing _main(void) {",
		"int main(void) {",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("emitted output missing %q\n--- output ---\n%s", want, out)
		}
	}
}

func TestDump_AddsLineNumbers(t *testing.T) {
	reg, topLevel, err := fixture.LoadBytes([]byte(pointDoc))
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

	dump := lower.Dump(reg, topLevel)
	if !strings.Contains(dump, "   1 | ") {
		t.Errorf("dump missing line-number gutter:\n%s", dump)
	}
}
