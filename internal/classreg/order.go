package classreg

import "sort"

// MethodOrder returns c's dispatch-record slot order: the super's order
// (recursively), with c's overrides replacing their inherited position in
// place, then c's new methods appended sorted by name (spec §4.6 "dispatch
// record sharing" / design note). The result is cached on c.
func (c *Class) MethodOrder() []string {
	if c.methodOrder != nil {
		return c.methodOrder
	}

	var order []string
	seen := make(map[string]bool)
	if c.Super != nil {
		for _, name := range c.Super.MethodOrder() {
			order = append(order, name)
			seen[name] = true
		}
	}

	var fresh []string
	for name := range c.Methods {
		if !seen[name] {
			fresh = append(fresh, name)
		}
	}
	sort.Strings(fresh)
	order = append(order, fresh...)

	c.methodOrder = order
	return order
}

// FieldOrder returns c's object-struct field order: the super's order
// (recursively) with c's field overrides replacing their inherited
// position in place, then c's new fields appended sorted by name (spec
// §4.6). The result is cached on c.
func (c *Class) FieldOrder() []string {
	if c.fieldOrder != nil {
		return c.fieldOrder
	}

	var order []string
	seen := make(map[string]bool)
	if c.Super != nil {
		for _, name := range c.Super.FieldOrder() {
			order = append(order, name)
			seen[name] = true
		}
	}

	var fresh []string
	for name := range c.Fields {
		if !seen[name] {
			fresh = append(fresh, name)
		}
	}
	sort.Strings(fresh)
	order = append(order, fresh...)

	c.fieldOrder = order
	return order
}

// ResolveMethodImpl returns the name of the class that implements name for
// c — c itself if it overrides/declares it, otherwise the nearest ancestor
// that does. Used to fill a dispatch-record slot with the right function
// name (spec §4.6 "the name of the function that implements it for this
// class or the nearest ancestor that does").
func (c *Class) ResolveMethodImpl(name string) (implementor *Class, ok bool) {
	_, owner, found := c.FindMethod(name)
	return owner, found
}
