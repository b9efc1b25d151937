package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// The order is kind rank, then name, then value, then attributes,
// then children; it exists to sort attribute lists deterministically.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Kind)
	rankB := rank(b.Kind)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	if c := strings.Compare(a.Value, b.Value); c != 0 {
		return c
	}
	if c := compareLists(a.Attrs, b.Attrs); c != 0 {
		return c
	}
	return compareLists(a.Children, b.Children)
}

// rank returns the sorting rank of a kind.
// Order: Attr < Text < Element
func rank(k Kind) int {
	switch k {
	case AttrKind:
		return 0
	case TextKind:
		return 1
	case ElementKind:
		return 2
	}
	return 100
}

func compareLists(a, b []*Node) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	for i := range a {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// SortedAttrs returns a name-ordered copy of n's attribute list.
// Document order of attributes is not significant in XML; signatures
// and attribute walks use this order so results are deterministic.
func (n *Node) SortedAttrs() []*Node {
	res := make([]*Node, len(n.Attrs))
	copy(res, n.Attrs)
	slices.SortStableFunc(res, Compare)
	return res
}
