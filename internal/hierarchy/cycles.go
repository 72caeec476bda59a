package hierarchy

import (
	"github.com/cwbudde/go-ooc/internal/classreg"
	"github.com/cwbudde/go-ooc/internal/errdiag"
)

// detectCycles walks the super chain of every class; if a class is seen
// again before reaching a nil super, the hierarchy is cyclic (spec §4.2
// step 2, invariant §8.2).
func detectCycles(reg *classreg.Registry) *errdiag.Error {
	for _, c := range reg.All() {
		seen := make(map[*classreg.Class]bool)
		for cur := c; cur != nil; cur = cur.Super {
			if seen[cur] {
				return errdiag.New(errdiag.CyclicInheritance,
					"class %q participates in a cyclic inheritance chain", c.Name)
			}
			seen[cur] = true
		}
	}
	return nil
}
