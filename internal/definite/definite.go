// Package definite implements the definite-assignment pass (spec §4.4): a
// flow-sensitive analysis proving every variable and field is assigned on
// every path before use, and discovering each class's field set from the
// assignments in its constructor.
package definite

import (
	"github.com/cwbudde/go-ooc/ast"
	"github.com/cwbudde/go-ooc/internal/classreg"
	"github.com/cwbudde/go-ooc/internal/errdiag"
	"github.com/cwbudde/go-ooc/internal/initset"
)

// CheckAll runs the full pass over every user class in reg: constructor
// field discovery, the super-fields superset check, the duplicate
// field/method-name checks, and finally definite-assignment over every
// non-constructor method. It returns the first error encountered.
func CheckAll(reg *classreg.Registry) *errdiag.Error {
	for _, c := range reg.UserClasses() {
		if err := discoverFields(reg, c); err != nil {
			return err
		}
	}

	for _, c := range reg.UserClasses() {
		for name := range c.Fields {
			if _, ok := c.Methods[name]; ok {
				return errdiag.New(errdiag.DuplicateMember,
					"class %q declares both a field and a method named %q", c.Name, name)
			}
			if name == c.Name {
				return errdiag.New(errdiag.FieldClassMatch,
					"field %q of class %q may not share the class's name", name, c.Name)
			}
		}
	}

	for _, c := range reg.UserClasses() {
		if c.Super == nil {
			continue
		}
		for name := range c.Super.Fields {
			if _, ok := c.Fields[name]; !ok {
				return errdiag.New(errdiag.MissingSuperFields,
					"class %q is missing field %q required by super class %q", c.Name, name, c.Super.Name)
			}
		}
	}

	for _, c := range reg.UserClasses() {
		for _, m := range c.Methods {
			if m.IsConstructor(c) {
				continue
			}
			inits := initset.New()
			for _, fname := range c.FieldOrder() {
				inits.Add(initset.Key{Name: fname, IsField: true})
			}
			for _, p := range m.Params {
				inits.Add(initset.Key{Name: p.Name, IsField: false})
			}
			m.Inits = inits.Clone()
			w := &walker{reg: reg, class: c}
			if _, err := w.checkStmt(m.Body, inits); err != nil {
				return err
			}
		}
	}

	return nil
}

// CheckTopLevel runs definite-assignment over the program's top-level
// block, which has no enclosing class and no pre-seeded symbols: every
// local variable must be assigned before use within the block itself.
func CheckTopLevel(reg *classreg.Registry, body *ast.Block) *errdiag.Error {
	w := &walker{reg: reg}
	_, err := w.checkStmt(body, initset.New())
	return err
}

// discoverFields analyzes c's constructor with a fresh may-init set,
// adding every field that is must-initialized on every completing path to
// c.Fields, and failing if any field is initialized on some but not all
// paths (spec §4.4 "Field discovery").
func discoverFields(reg *classreg.Registry, c *classreg.Class) *errdiag.Error {
	inits := initset.New()
	for _, p := range c.Params {
		inits.Add(initset.Key{Name: p.Name, IsField: false})
	}
	c.CtorInits = inits.Clone()

	w := &walker{reg: reg, class: c, inCtor: true, allInits: inits.Clone()}
	result, err := w.checkStmt(c.CtorBody, inits)
	if err != nil {
		return err
	}

	for _, k := range result.Keys() {
		if k.IsField {
			c.Fields[k.Name] = &classreg.Field{Name: k.Name}
		}
	}

	for _, k := range w.allInits.Keys() {
		if k.IsField && !result.Has(k) {
			return errdiag.New(errdiag.Constructor,
				"field %q of class %q is not initialized on every path through the constructor", k.Name, c.Name)
		}
	}

	return nil
}
