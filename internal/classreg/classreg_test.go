package classreg_test

import (
	"testing"

	"github.com/cwbudde/go-ooc/internal/classreg"
)

func TestNew_InstallsBuiltins(t *testing.T) {
	reg := classreg.New()

	for _, name := range []string{classreg.Obj, classreg.Int, classreg.String, classreg.Boolean, classreg.Nothing} {
		if _, ok := reg.Lookup(name); !ok {
			t.Errorf("built-in %q not found in a fresh registry", name)
		}
	}

	obj := reg.MustLookup(classreg.Obj)
	if obj.Super != nil {
		t.Errorf("Obj.Super = %v, want nil", obj.Super)
	}
	intC := reg.MustLookup(classreg.Int)
	if intC.Super != obj {
		t.Errorf("Int.Super = %v, want Obj", intC.Super)
	}
}

func TestDeclare_RejectsDuplicateName(t *testing.T) {
	reg := classreg.New()
	obj := reg.MustLookup(classreg.Obj)

	first := classreg.NewClass("Widget", obj, true)
	if err := reg.Declare(first); err != nil {
		t.Fatalf("first Declare: %v", err)
	}

	second := classreg.NewClass("Widget", obj, true)
	if err := reg.Declare(second); err == nil {
		t.Fatal("expected a DuplicateClassError on re-declaring Widget")
	}
}

func TestIsSubtypeAndLCA(t *testing.T) {
	reg := classreg.New()
	obj := reg.MustLookup(classreg.Obj)
	animal := classreg.NewClass("Animal", obj, true)
	dog := classreg.NewClass("Dog", animal, true)
	cat := classreg.NewClass("Cat", animal, true)

	if !classreg.IsSubtype(dog, animal) {
		t.Error("Dog should be a subtype of Animal")
	}
	if !classreg.IsSubtype(dog, obj) {
		t.Error("Dog should be a subtype of Obj (transitively)")
	}
	if classreg.IsSubtype(animal, dog) {
		t.Error("Animal should not be a subtype of Dog")
	}

	if got := classreg.LCA(dog, cat); got != animal {
		t.Errorf("LCA(Dog, Cat) = %v, want Animal", got)
	}
	if got := classreg.LCA(dog, dog); got != dog {
		t.Errorf("LCA(Dog, Dog) = %v, want Dog", got)
	}
}

func TestMethodOrder_InheritsThenAppendsSorted(t *testing.T) {
	reg := classreg.New()
	obj := reg.MustLookup(classreg.Obj)

	animal := classreg.NewClass("Animal", obj, true)
	animal.Methods["speak"] = &classreg.Method{Name: "speak"}

	dog := classreg.NewClass("Dog", animal, true)
	dog.Methods["bark"] = &classreg.Method{Name: "bark"}
	dog.Methods["speak"] = &classreg.Method{Name: "speak"}

	// Obj's built-in EQUALS, PRINT, STR occupy slots 0-2 in every class.
	order := dog.MethodOrder()
	if len(order) != 5 {
		t.Fatalf("MethodOrder() = %v, want 5 entries", order)
	}
	if order[3] != "speak" {
		t.Errorf("slot 3 = %q, want inherited %q to keep its position", order[3], "speak")
	}
	if order[4] != "bark" {
		t.Errorf("slot 4 = %q, want fresh method %q appended", order[4], "bark")
	}
}

func TestResolveMethodImpl_FindsNearestAncestor(t *testing.T) {
	reg := classreg.New()
	obj := reg.MustLookup(classreg.Obj)

	animal := classreg.NewClass("Animal", obj, true)
	animal.Methods["speak"] = &classreg.Method{Name: "speak"}

	dog := classreg.NewClass("Dog", animal, true)

	impl, ok := dog.ResolveMethodImpl("speak")
	if !ok {
		t.Fatal("expected ResolveMethodImpl to find speak")
	}
	if impl != animal {
		t.Errorf("ResolveMethodImpl(speak) owner = %v, want Animal", impl)
	}

	if _, ok := dog.ResolveMethodImpl("fly"); ok {
		t.Error("expected ResolveMethodImpl to fail for an undeclared method")
	}
}
