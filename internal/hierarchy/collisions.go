package hierarchy

import (
	"github.com/cwbudde/go-ooc/internal/classreg"
	"github.com/cwbudde/go-ooc/internal/errdiag"
)

// checkNameCollisions fails if any method name also exists as a class
// name in the registry (spec §4.2 step 4).
func checkNameCollisions(reg *classreg.Registry) *errdiag.Error {
	for _, c := range reg.UserClasses() {
		for name := range c.Methods {
			if _, exists := reg.Lookup(name); exists {
				return errdiag.New(errdiag.NameCollision,
					"method %q in class %q collides with a class of the same name", name, c.Name)
			}
		}
	}
	return nil
}
