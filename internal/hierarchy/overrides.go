package hierarchy

import (
	"github.com/cwbudde/go-ooc/ast"
	"github.com/cwbudde/go-ooc/internal/classreg"
	"github.com/cwbudde/go-ooc/internal/errdiag"
)

// checkOverrides verifies, for every user class, that each method it
// declares which shadows one on an ancestor is override-compatible:
// covariant return type, equal parameter count, contravariant parameter
// types (spec §4.2 step 3, invariant §8.4).
func checkOverrides(reg *classreg.Registry) *errdiag.Error {
	for _, c := range reg.UserClasses() {
		if c.Super == nil {
			continue
		}
		for name, m := range c.Methods {
			ancestorMethod, _, found := c.Super.FindMethod(name)
			if !found {
				continue
			}
			if err := checkOverrideCompatible(c, m, ancestorMethod); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkOverrideCompatible(owner *classreg.Class, m, ancestor *classreg.Method) *errdiag.Error {
	if !classreg.IsSubtype(asClass(m.ReturnType), asClass(ancestor.ReturnType)) {
		return errdiag.New(errdiag.InheritedMethodReturnType,
			"method %q in class %q returns %s, not a subtype of ancestor's return type %s",
			m.Name, owner.Name, m.ReturnType.TypeName(), ancestor.ReturnType.TypeName())
	}
	if len(m.Params) != len(ancestor.Params) {
		return errdiag.New(errdiag.InheritedMethodParamCount,
			"method %q in class %q takes %d parameter(s), ancestor declares %d",
			m.Name, owner.Name, len(m.Params), len(ancestor.Params))
	}
	for i, p := range m.Params {
		ap := ancestor.Params[i]
		if !classreg.IsSubtype(asClass(ap.Resolved), asClass(p.Resolved)) {
			return errdiag.New(errdiag.InheritedMethodParamType,
				"method %q in class %q parameter %d has type %s, not a supertype of ancestor parameter type %s",
				m.Name, owner.Name, i, p.Resolved.TypeName(), ap.Resolved.TypeName())
		}
	}
	return nil
}

// asClass narrows an ast.TypeRef known to be backed by a *classreg.Class.
// Every TypeRef reaching this package comes from classreg itself, so the
// assertion cannot fail for well-formed input.
func asClass(t ast.TypeRef) *classreg.Class {
	c, _ := t.(*classreg.Class)
	return c
}
