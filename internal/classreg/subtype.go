package classreg

// IsSubtype implements the reflexive-transitive subtype relation on
// classes: a <= b iff walking a's super chain reaches b, or a == b
// (spec §4.2). Both operands must be non-nil.
func IsSubtype(a, b *Class) bool {
	for cur := a; cur != nil; cur = cur.Super {
		if cur == b {
			return true
		}
	}
	return false
}

// LCA computes the least common ancestor of a and b: the deepest class
// that is an ancestor of both, found by enumerating both ancestor chains
// and scanning from the root downward for the last shared element (spec
// §4.2). Obj is the universal upper bound, so LCA always terminates with
// at least Obj in common. Both operands must be non-nil.
func LCA(a, b *Class) *Class {
	aChain := a.SelfAndAncestors()
	bSet := make(map[*Class]bool, len(b.SelfAndAncestors()))
	for _, c := range b.SelfAndAncestors() {
		bSet[c] = true
	}

	// Single inheritance means any two ancestor chains share exactly a
	// root-aligned prefix and then diverge, so scanning aChain root-first
	// and stopping at the first miss finds the deepest shared class.
	var common *Class
	for i := len(aChain) - 1; i >= 0; i-- {
		if !bSet[aChain[i]] {
			break
		}
		common = aChain[i]
	}
	return common
}
