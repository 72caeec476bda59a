// Package initset implements the lattice element used by definite-assignment
// analysis: a set of (name, is-field) pairs, with union and intersection.
package initset

// Key identifies a local variable or a field by name. IsField distinguishes
// `this.f` from a bare local/parameter `x`, since a class and one of its
// methods are free to use the same name for both.
type Key struct {
	Name    string
	IsField bool
}

// Set is a set of Keys. Add mutates the receiver in place; Clone, Union
// and Intersect return a new Set, so callers fork a set for two
// independent branches (spec §4.4's "copies of inits") by cloning before
// passing it down either branch.
type Set struct {
	m map[Key]struct{}
}

// New returns an empty set.
func New() *Set {
	return &Set{m: make(map[Key]struct{})}
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	out := New()
	for k := range s.m {
		out.m[k] = struct{}{}
	}
	return out
}

// Has reports whether k is a member of s.
func (s *Set) Has(k Key) bool {
	if s == nil {
		return false
	}
	_, ok := s.m[k]
	return ok
}

// Add inserts k into s in place and returns s, for chaining.
func (s *Set) Add(k Key) *Set {
	s.m[k] = struct{}{}
	return s
}

// Len returns the number of members.
func (s *Set) Len() int { return len(s.m) }

// Keys returns the members in unspecified order.
func (s *Set) Keys() []Key {
	out := make([]Key, 0, len(s.m))
	for k := range s.m {
		out = append(out, k)
	}
	return out
}

// Union returns the pairwise union of a and b: a key must be present in
// either operand. Used to combine the "may be initialized" contributions
// of independent branches.
func Union(a, b *Set) *Set {
	out := New()
	if a != nil {
		for k := range a.m {
			out.m[k] = struct{}{}
		}
	}
	if b != nil {
		for k := range b.m {
			out.m[k] = struct{}{}
		}
	}
	return out
}

// Intersect returns the pairwise intersection of a and b: a key must be
// present in both operands. Used to combine the "must be initialized"
// guarantee of two branches of an if — a variable is definitely assigned
// after the if only when both branches assign it.
func Intersect(a, b *Set) *Set {
	out := New()
	if a == nil || b == nil {
		return out
	}
	for k := range a.m {
		if _, ok := b.m[k]; ok {
			out.m[k] = struct{}{}
		}
	}
	return out
}
