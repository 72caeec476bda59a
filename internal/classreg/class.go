// Package classreg implements the class registry: the process-wide table
// mapping class name to class record, pre-populated with the built-in
// classes Obj, Int, String, Boolean and Nothing (spec §4.1). The registry
// exclusively owns every class record; a class record exclusively owns its
// constructor, methods, fields, and its constructor body AST (spec §3
// "Ownership").
package classreg

import (
	"github.com/cwbudde/go-ooc/ast"
	"github.com/cwbudde/go-ooc/internal/initset"
	"github.com/cwbudde/go-ooc/internal/symtab"
)

// Class is the class record described in spec §3. Super is nil only for
// Obj. Super, and every Param.Resolved reached from Params or a method's
// signature, are non-owning back-references into the registry.
type Class struct {
	Name          string
	Super         *Class
	Params        []ast.Param
	CtorBody      *ast.Block
	Methods       map[string]*Method
	Fields        map[string]*Field
	IsUserDefined bool

	// CtorInits is the constructor's entry init_list (its own parameters),
	// populated by the definite-assignment pass and consulted by the
	// inference engine to seed the constructor's symbol table.
	CtorInits *initset.Set

	methodOrder []string // cache, see MethodOrder
	fieldOrder  []string // cache, see FieldOrder
}

// TypeName implements ast.TypeRef so AST nodes can hold a *Class in their
// inferred-type slot without this package depending on ast for anything
// but the node types it owns.
func (c *Class) TypeName() string { return c.Name }

// Method is the method record described in spec §3. A method named
// identically to its owning class is the constructor.
type Method struct {
	Name       string
	Params     []ast.Param
	ReturnType ast.TypeRef // never nil after hierarchy resolution; defaults to Nothing
	Body       *ast.Block
	Symbols    *symtab.Table
	Inits      *initset.Set
}

// IsConstructor reports whether m is the constructor of owner.
func (m *Method) IsConstructor(owner *Class) bool { return m.Name == owner.Name }

// Field is the field record described in spec §3. Type is nil until
// populated by the definite-assignment/inference passes.
type Field struct {
	Name string
	Type ast.TypeRef
}

// NewClass creates an empty class record whose Methods and Fields are
// empty maps; callers fill them in before or after registering it.
func NewClass(name string, super *Class, userDefined bool) *Class {
	return &Class{
		Name:          name,
		Super:         super,
		Methods:       make(map[string]*Method),
		Fields:        make(map[string]*Field),
		IsUserDefined: userDefined,
	}
}

// SelfAndAncestors returns c, super(c), super(super(c)), ... ending at Obj.
func (c *Class) SelfAndAncestors() []*Class {
	var out []*Class
	for cur := c; cur != nil; cur = cur.Super {
		out = append(out, cur)
	}
	return out
}

// FindMethod looks up name in c, then walks the super chain. It returns
// (method, owner, true) on success and (nil, nil, false) on failure — it
// never panics, so callers at the inference layer can raise their own
// categorized error naming the containing class and the method (spec
// §4.5 "Dispatch resolution and error localization").
func (c *Class) FindMethod(name string) (m *Method, owner *Class, ok bool) {
	for cur := c; cur != nil; cur = cur.Super {
		if mm, found := cur.Methods[name]; found {
			return mm, cur, true
		}
	}
	return nil, nil, false
}

// FindField looks up name in c, then walks the super chain.
func (c *Class) FindField(name string) (f *Field, owner *Class, ok bool) {
	for cur := c; cur != nil; cur = cur.Super {
		if ff, found := cur.Fields[name]; found {
			return ff, cur, true
		}
	}
	return nil, nil, false
}
