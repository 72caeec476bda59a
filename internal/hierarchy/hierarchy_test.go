package hierarchy_test

import (
	"testing"

	"github.com/cwbudde/go-ooc/internal/errdiag"
	"github.com/cwbudde/go-ooc/internal/fixture"
	"github.com/cwbudde/go-ooc/internal/hierarchy"
)

const cyclicDoc = `
classes:
  - name: A
    super: B
  - name: B
    super: A
top_level: []
`

func TestCheck_CyclicInheritanceRejected(t *testing.T) {
	reg, _, err := fixture.LoadBytes([]byte(cyclicDoc))
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}

	got := hierarchy.Check(reg)
	if got == nil {
		t.Fatal("expected a CyclicInheritance error, got nil")
	}
	if got.Kind != errdiag.CyclicInheritance {
		t.Errorf("Kind = %s, want %s", got.Kind, errdiag.CyclicInheritance)
	}
}

const collisionDoc = `
classes:
  - name: Widget
    super: Obj
    methods:
      - name: Widget
        params: []
        return_type: Nothing
        body: []
top_level: []
`

func TestCheck_MethodNameCollidesWithClassRejected(t *testing.T) {
	reg, _, err := fixture.LoadBytes([]byte(collisionDoc))
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}

	got := hierarchy.Check(reg)
	if got == nil {
		t.Fatal("expected a NameCollision error, got nil")
	}
	if got.Kind != errdiag.NameCollision {
		t.Errorf("Kind = %s, want %s", got.Kind, errdiag.NameCollision)
	}
}

const wellFormedDoc = `
classes:
  - name: Animal
    super: Obj
  - name: Dog
    super: Animal
top_level: []
`

func TestCheck_WellFormedHierarchyOK(t *testing.T) {
	reg, _, err := fixture.LoadBytes([]byte(wellFormedDoc))
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}

	if got := hierarchy.Check(reg); got != nil {
		t.Fatalf("unexpected error: %v", got)
	}

	dog, ok := reg.Lookup("Dog")
	if !ok {
		t.Fatal("class Dog not found in registry")
	}
	animal, ok := reg.Lookup("Animal")
	if !ok {
		t.Fatal("class Animal not found in registry")
	}
	if dog.Super != animal {
		t.Errorf("Dog.Super = %v, want Animal", dog.Super)
	}
}
