package symtab_test

import (
	"testing"

	"github.com/cwbudde/go-ooc/internal/classreg"
	"github.com/cwbudde/go-ooc/internal/symtab"
)

func TestSeed_DoesNotOverwriteExistingEntry(t *testing.T) {
	tbl := symtab.New()
	k := symtab.Key{Name: "x"}

	reg := classreg.New()
	intC := reg.MustLookup(classreg.Int)

	tbl.Set(k, intC)
	tbl.Seed(k, nil)

	got, ok := tbl.Get(k)
	if !ok {
		t.Fatal("expected an entry for x")
	}
	if got != intC {
		t.Errorf("Seed overwrote an existing entry: got %v, want Int", got)
	}
}

func TestSet_MarksDirtyOnlyOnChange(t *testing.T) {
	tbl := symtab.New()
	k := symtab.Key{Name: "x"}

	reg := classreg.New()
	intC := reg.MustLookup(classreg.Int)

	tbl.Set(k, intC)
	if !tbl.Dirty() {
		t.Error("expected Set to mark the table dirty on first assignment")
	}

	tbl.ClearDirty()
	tbl.Set(k, intC)
	if tbl.Dirty() {
		t.Error("expected Set to leave the table clean when the type did not change")
	}

	boolC := reg.MustLookup(classreg.Boolean)
	tbl.Set(k, boolC)
	if !tbl.Dirty() {
		t.Error("expected Set to mark the table dirty when the type changed")
	}
}

func TestGet_UnknownKeyReportsNotFound(t *testing.T) {
	tbl := symtab.New()
	if _, ok := tbl.Get(symtab.Key{Name: "missing"}); ok {
		t.Error("expected Get to report not-found for a key never seeded or set")
	}
}

func TestFieldAndLocalKeysAreDistinct(t *testing.T) {
	tbl := symtab.New()
	reg := classreg.New()
	intC := reg.MustLookup(classreg.Int)
	strC := reg.MustLookup(classreg.String)

	local := symtab.Key{Name: "count", IsField: false}
	field := symtab.Key{Name: "count", IsField: true}

	tbl.Set(local, intC)
	tbl.Set(field, strC)

	gotLocal, _ := tbl.Get(local)
	gotField, _ := tbl.Get(field)
	if gotLocal != intC || gotField != strC {
		t.Errorf("local/field entries collided: local=%v field=%v", gotLocal, gotField)
	}
}
