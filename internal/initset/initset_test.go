package initset_test

import (
	"testing"

	"github.com/cwbudde/go-ooc/internal/initset"
)

func TestUnion_CombinesBothOperands(t *testing.T) {
	a := initset.New().Add(initset.Key{Name: "x"})
	b := initset.New().Add(initset.Key{Name: "y"})

	union := initset.Union(a, b)
	if union.Len() != 2 {
		t.Fatalf("Union len = %d, want 2", union.Len())
	}
	if !union.Has(initset.Key{Name: "x"}) || !union.Has(initset.Key{Name: "y"}) {
		t.Error("Union missing one of its operands' members")
	}
}

func TestIntersect_OnlyKeepsSharedMembers(t *testing.T) {
	a := initset.New().Add(initset.Key{Name: "x"}).Add(initset.Key{Name: "shared"})
	b := initset.New().Add(initset.Key{Name: "y"}).Add(initset.Key{Name: "shared"})

	inter := initset.Intersect(a, b)
	if inter.Len() != 1 {
		t.Fatalf("Intersect len = %d, want 1", inter.Len())
	}
	if !inter.Has(initset.Key{Name: "shared"}) {
		t.Error("Intersect dropped the shared member")
	}
	if inter.Has(initset.Key{Name: "x"}) || inter.Has(initset.Key{Name: "y"}) {
		t.Error("Intersect kept a non-shared member")
	}
}

func TestIntersect_NilOperandYieldsEmptySet(t *testing.T) {
	a := initset.New().Add(initset.Key{Name: "x"})
	if got := initset.Intersect(a, nil); got.Len() != 0 {
		t.Errorf("Intersect(a, nil) len = %d, want 0", got.Len())
	}
}

func TestClone_IsIndependentOfOriginal(t *testing.T) {
	orig := initset.New().Add(initset.Key{Name: "x"})
	clone := orig.Clone()
	clone.Add(initset.Key{Name: "y"})

	if orig.Has(initset.Key{Name: "y"}) {
		t.Error("mutating the clone leaked back into the original")
	}
	if !clone.Has(initset.Key{Name: "x"}) {
		t.Error("clone lost a member from the original")
	}
}

func TestFieldAndLocalKeysAreDistinct(t *testing.T) {
	s := initset.New()
	s.Add(initset.Key{Name: "count", IsField: false})

	if s.Has(initset.Key{Name: "count", IsField: true}) {
		t.Error("a local key should not satisfy a field key of the same name")
	}
}
