package classreg

import (
	"fmt"

	"github.com/cwbudde/go-ooc/ast"
)

// Registry is the process-wide class table, initialized once per
// compilation (spec §4.1, §5). It owns every Class it holds.
type Registry struct {
	classes map[string]*Class
}

// New creates a registry pre-populated with the built-in classes Obj,
// Int, String, Boolean and Nothing.
func New() *Registry {
	r := &Registry{classes: make(map[string]*Class)}
	r.installBuiltins()
	return r
}

// Declare adds a user class to the registry. It fails with a
// *DuplicateClassError if the name is already taken by a built-in or a previously declared class.
func (r *Registry) Declare(c *Class) error {
	if _, exists := r.classes[c.Name]; exists {
		return &DuplicateClassError{Name: c.Name}
	}
	r.classes[c.Name] = c
	return nil
}

// Lookup finds a class by exact name.
func (r *Registry) Lookup(name string) (*Class, bool) {
	c, ok := r.classes[name]
	return c, ok
}

// MustLookup finds a class by exact name, panicking if absent. Used for
// the five built-ins, which New always installs, and by the lowerer for
// class names that earlier phases have already resolved.
func (r *Registry) MustLookup(name string) *Class {
	c, ok := r.classes[name]
	if !ok {
		panic(fmt.Sprintf("classreg: class %q missing from registry", name))
	}
	return c
}

// All returns every class currently registered, in unspecified order.
func (r *Registry) All() []*Class {
	out := make([]*Class, 0, len(r.classes))
	for _, c := range r.classes {
		out = append(out, c)
	}
	return out
}

// UserClasses returns every user-declared class, in unspecified order.
func (r *Registry) UserClasses() []*Class {
	out := make([]*Class, 0, len(r.classes))
	for _, c := range r.classes {
		if c.IsUserDefined {
			out = append(out, c)
		}
	}
	return out
}

// DuplicateClassError is ClassHierarchy/DuplicateClass (spec §4.1).
type DuplicateClassError struct{ Name string }

func (e *DuplicateClassError) Error() string {
	return fmt.Sprintf("class %q already declared", e.Name)
}

// Built-in class names.
const (
	Obj     = "Obj"
	Int     = "Int"
	String  = "String"
	Boolean = "Boolean"
	Nothing = "Nothing"
)

func param(name, typeName string, resolved *Class) ast.Param {
	return ast.Param{Name: name, DeclaredTypeName: typeName, Resolved: resolved}
}

func method(name string, ret *Class, params ...ast.Param) *Method {
	return &Method{Name: name, Params: params, ReturnType: ret}
}

// installBuiltins wires up the five built-in classes and their fixed
// method tables exactly as spec §4.1 enumerates them.
func (r *Registry) installBuiltins() {
	obj := NewClass(Obj, nil, false)
	r.classes[Obj] = obj

	intC := NewClass(Int, obj, false)
	r.classes[Int] = intC

	strC := NewClass(String, obj, false)
	r.classes[String] = strC

	boolC := NewClass(Boolean, obj, false)
	r.classes[Boolean] = boolC

	nothingC := NewClass(Nothing, obj, false)
	r.classes[Nothing] = nothingC

	// Obj: EQUALS(Obj) -> Boolean, PRINT() -> Obj, STR() -> String.
	obj.Methods["EQUALS"] = method("EQUALS", boolC, param("other", Obj, obj))
	obj.Methods["PRINT"] = method("PRINT", obj)
	obj.Methods["STR"] = method("STR", strC)

	// Int: inherits Obj, adds STR, arithmetic, comparisons, EQUALS(Obj).
	intC.Methods["STR"] = method("STR", strC)
	intC.Methods["PLUS"] = method("PLUS", intC, param("other", Int, intC))
	intC.Methods["MINUS"] = method("MINUS", intC, param("other", Int, intC))
	intC.Methods["TIMES"] = method("TIMES", intC, param("other", Int, intC))
	intC.Methods["DIVIDE"] = method("DIVIDE", intC, param("other", Int, intC))
	intC.Methods["LESS"] = method("LESS", boolC, param("other", Int, intC))
	intC.Methods["ATMOST"] = method("ATMOST", boolC, param("other", Int, intC))
	intC.Methods["MORE"] = method("MORE", boolC, param("other", Int, intC))
	intC.Methods["ATLEAST"] = method("ATLEAST", boolC, param("other", Int, intC))
	intC.Methods["EQUALS"] = method("EQUALS", boolC, param("other", Obj, obj))

	// String: inherits Obj, adds STR, PLUS(String), comparisons, EQUALS(Obj).
	strC.Methods["STR"] = method("STR", strC)
	strC.Methods["PLUS"] = method("PLUS", strC, param("other", String, strC))
	strC.Methods["LESS"] = method("LESS", boolC, param("other", String, strC))
	strC.Methods["ATMOST"] = method("ATMOST", boolC, param("other", String, strC))
	strC.Methods["MORE"] = method("MORE", boolC, param("other", String, strC))
	strC.Methods["ATLEAST"] = method("ATLEAST", boolC, param("other", String, strC))
	strC.Methods["EQUALS"] = method("EQUALS", boolC, param("other", Obj, obj))

	// Boolean: inherits Obj, adds STR, EQUALS(Obj).
	boolC.Methods["STR"] = method("STR", strC)
	boolC.Methods["EQUALS"] = method("EQUALS", boolC, param("other", Obj, obj))

	// Nothing: inherits Obj, no additions beyond what it already has.
}
