package ir

import "strconv"

// Path returns the slash separated ancestor chain identifying this
// node's position in its tree, e.g. "/catalog/book[2]/title". A
// positional suffix appears only when an element has same-named
// siblings. Attributes render as "/catalog/book/@id"; text nodes
// report at their owning element's path.
//
// Parent references exist solely to make this reconstruction
// possible; they carry no ownership.
func (n *Node) Path() string {
	switch n.Kind {
	case AttrKind:
		if n.Parent == nil {
			return "/@" + n.Name
		}
		return n.Parent.Path() + "/@" + n.Name
	case TextKind:
		if n.Parent == nil {
			return "/"
		}
		return n.Parent.Path()
	}
	seg := "/" + n.Name
	if n.Parent == nil {
		return seg
	}
	if ord, dup := n.siblingOrdinal(); dup {
		seg += "[" + strconv.Itoa(ord) + "]"
	}
	return n.Parent.Path() + seg
}

// siblingOrdinal returns the 1-based position of n among its parent's
// same-named element children and whether disambiguation is needed.
func (n *Node) siblingOrdinal() (int, bool) {
	ord, total := 0, 0
	for _, sib := range n.Parent.Children {
		if sib.Kind != ElementKind || sib.Name != n.Name {
			continue
		}
		total++
		if sib == n {
			ord = total
		}
	}
	return ord, total > 1
}
