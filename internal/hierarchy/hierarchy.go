// Package hierarchy implements the class hierarchy checker (spec §4.2):
// resolving super-class links, detecting inheritance cycles, and checking
// method-override compatibility. It is the first stage to run after the
// class registry is built; any failure here short-circuits the compiler
// (spec §2, §7).
package hierarchy

import (
	"github.com/cwbudde/go-ooc/ast"
	"github.com/cwbudde/go-ooc/internal/classreg"
	"github.com/cwbudde/go-ooc/internal/errdiag"
)

// Check runs the hierarchy checker's remaining ordered operations against
// reg — cycle detection, override compatibility, and method/class name
// collisions — and returns the first categorized error encountered, or
// nil if the hierarchy is well-formed. Super resolution is not part of
// Check: super names are supplied out of band (as strings, keyed by class
// name) because classreg.Class already stores a resolved Super pointer —
// callers that build a registry incrementally (e.g. internal/fixture)
// call ResolveSupers first with the raw names.
func Check(reg *classreg.Registry) *errdiag.Error {
	if err := detectCycles(reg); err != nil {
		return err
	}
	if err := checkOverrides(reg); err != nil {
		return err
	}
	if err := checkNameCollisions(reg); err != nil {
		return err
	}
	return nil
}

// ResolveSupers resolves the super-class name of every user class in reg
// (defaulting to Obj when empty), resolves constructor parameter types
// (forbidding Nothing), and resolves every method's declared return type
// (defaulting to Nothing when absent). It must run before Check, and
// before any class's Super pointer is trusted.
//
// superNames maps a user class's name to the super-class name it declared
// (empty string meaning "no super clause written", which defaults to
// Obj). Parameter types are resolved from each ast.Param's
// DeclaredTypeName into its Resolved field; a method's return type is
// resolved from the TypeName() of the placeholder in Method.ReturnType.
func ResolveSupers(reg *classreg.Registry, superNames map[string]string) *errdiag.Error {
	for _, c := range reg.UserClasses() {
		superName := superNames[c.Name]
		if superName == "" {
			superName = classreg.Obj
		}
		super, ok := reg.Lookup(superName)
		if !ok {
			return errdiag.New(errdiag.UnknownSuper,
				"class %q declares unknown super class %q", c.Name, superName)
		}
		c.Super = super
	}

	for _, c := range reg.UserClasses() {
		if err := resolveParamTypes(reg, c.Params); err != nil {
			return err
		}
		for _, m := range c.Methods {
			if err := resolveParamTypes(reg, m.Params); err != nil {
				return err
			}
			if m.ReturnType == nil {
				m.ReturnType = reg.MustLookup(classreg.Nothing)
			} else if ret, ok := reg.Lookup(m.ReturnType.TypeName()); ok {
				m.ReturnType = ret
			} else {
				return errdiag.New(errdiag.UnknownType,
					"method %q of class %q declares unknown return type %q",
					m.Name, c.Name, m.ReturnType.TypeName())
			}
		}
	}
	return nil
}

func resolveParamTypes(reg *classreg.Registry, params []ast.Param) *errdiag.Error {
	for i := range params {
		p := &params[i]
		if p.DeclaredTypeName == classreg.Nothing {
			return errdiag.New(errdiag.NothingParam,
				"parameter %q cannot be declared with type Nothing", p.Name)
		}
		resolved, ok := reg.Lookup(p.DeclaredTypeName)
		if !ok {
			return errdiag.New(errdiag.UnknownType,
				"parameter %q declares unknown type %q", p.Name, p.DeclaredTypeName)
		}
		p.Resolved = resolved
	}
	return nil
}
