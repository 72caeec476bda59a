package classreg

import "sort"

// TopoUserClasses returns every user-declared class in topological order,
// supers before subclasses (spec §4.6 "classes are emitted in topological
// order"). It also orders type inference (typeinfer.Infer), which
// processes a class's super before the class itself.
func (r *Registry) TopoUserClasses() []*Class {
	var order []*Class
	visited := make(map[*Class]bool)

	var visit func(c *Class)
	visit = func(c *Class) {
		if visited[c] {
			return
		}
		visited[c] = true
		if c.Super != nil && c.Super.IsUserDefined {
			visit(c.Super)
		}
		order = append(order, c)
	}

	classes := r.UserClasses()
	sort.Slice(classes, func(i, j int) bool { return classes[i].Name < classes[j].Name })
	for _, c := range classes {
		visit(c)
	}
	return order
}
