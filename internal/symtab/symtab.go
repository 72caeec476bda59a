// Package symtab implements the per-method symbol table used by the type
// inference engine: a mapping from (symbol-name, is-field) to an inferred
// type, with a dirty flag that the fixed-point loop clears at the start of
// every iteration and that any type change re-raises.
package symtab

import "github.com/cwbudde/go-ooc/ast"

// Key identifies a symbol by name and whether it denotes a field (`this.f`)
// or a local/parameter.
type Key struct {
	Name    string
	IsField bool
}

// Entry holds the current inferred type of one symbol. Type is nil until
// the first type reaches it.
type Entry struct {
	Type ast.TypeRef
}

// Table is the symbol table owned by a single method (spec §3 "Method
// record"). It is never shared between methods.
type Table struct {
	entries map[Key]*Entry
	dirty   bool
}

// New returns an empty table.
func New() *Table {
	return &Table{entries: make(map[Key]*Entry)}
}

// Seed creates an entry for k if one does not already exist, with the
// given initial type (possibly nil). Used once, before the fixed-point
// loop starts, to seed fields/parameters into the table (spec §4.5).
func (t *Table) Seed(k Key, initial ast.TypeRef) {
	if _, ok := t.entries[k]; ok {
		return
	}
	t.entries[k] = &Entry{Type: initial}
}

// Get returns the current type of k and whether k has an entry at all
// (an entry with a nil Type still reports ok=true: the symbol exists but
// has not been typed yet).
func (t *Table) Get(k Key) (ast.TypeRef, bool) {
	e, ok := t.entries[k]
	if !ok {
		return nil, false
	}
	return e.Type, true
}

// Set overwrites the type of k, creating the entry if necessary, and marks
// the table dirty if the type actually changed.
func (t *Table) Set(k Key, ty ast.TypeRef) {
	e, ok := t.entries[k]
	if !ok {
		t.entries[k] = &Entry{Type: ty}
		t.dirty = true
		return
	}
	if e.Type != ty {
		e.Type = ty
		t.dirty = true
	}
}

// Dirty reports whether any Set call since the last ClearDirty changed a
// type.
func (t *Table) Dirty() bool { return t.dirty }

// ClearDirty resets the dirty flag. Called at the start of each
// fixed-point iteration.
func (t *Table) ClearDirty() { t.dirty = false }

// Keys returns every symbol key currently in the table, in unspecified
// order.
func (t *Table) Keys() []Key {
	out := make([]Key, 0, len(t.entries))
	for k := range t.entries {
		out = append(out, k)
	}
	return out
}
