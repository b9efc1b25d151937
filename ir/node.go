package ir

import "strings"

type Node struct {
	Kind        Kind
	Parent      *Node
	ParentIndex int

	Name  string
	Value string

	Attrs    []*Node
	Children []*Node
}

// Document is a root node plus a source label. The label is used
// for reporting only.
type Document struct {
	Root  *Node
	Label string
}

func Element(name string, attrs ...*Node) *Node {
	res := &Node{
		Kind: ElementKind,
		Name: name,
	}
	for _, a := range attrs {
		res.SetAttr(a)
	}
	return res
}

func Attr(name, value string) *Node {
	return &Node{
		Kind:  AttrKind,
		Name:  name,
		Value: value,
	}
}

func Text(value string) *Node {
	return &Node{
		Kind:  TextKind,
		Value: value,
	}
}

// Append adds children to n in document order, wiring their
// parent references.
func (n *Node) Append(kids ...*Node) *Node {
	for _, kid := range kids {
		kid.Parent = n
		kid.ParentIndex = len(n.Children)
		n.Children = append(n.Children, kid)
	}
	return n
}

// SetAttr adds or replaces the attribute with a's name.
func (n *Node) SetAttr(a *Node) *Node {
	a.Parent = n
	for i, old := range n.Attrs {
		if old.Name == a.Name {
			a.ParentIndex = i
			n.Attrs[i] = a
			return n
		}
	}
	a.ParentIndex = len(n.Attrs)
	n.Attrs = append(n.Attrs, a)
	return n
}

// GetAttr returns the attribute named name, or nil.
func (n *Node) GetAttr(name string) *Node {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Elements returns the element children of n in document order.
func (n *Node) Elements() []*Node {
	res := make([]*Node, 0, len(n.Children))
	for _, kid := range n.Children {
		if kid.Kind == ElementKind {
			res = append(res, kid)
		}
	}
	return res
}

// Text returns the merged character data directly under n. The parser
// merges adjacent character data into one node, so distinct text
// children are always separated by element content; they join with a
// single space.
func (n *Node) Text() string {
	var parts []string
	for _, kid := range n.Children {
		if kid.Kind == TextKind {
			parts = append(parts, kid.Value)
		}
	}
	return strings.Join(parts, " ")
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Kind = n.Kind
	dst.Parent = n.Parent
	dst.ParentIndex = n.ParentIndex
	dst.Name = n.Name
	dst.Value = n.Value
	// nil slices stay nil so the clone is structurally identical
	dst.Attrs = nil
	if len(n.Attrs) > 0 {
		dst.Attrs = make([]*Node, len(n.Attrs))
		for i, a := range n.Attrs {
			dstA := &Node{}
			a.CloneTo(dstA)
			dstA.Parent = dst
			dstA.ParentIndex = i
			dst.Attrs[i] = dstA
		}
	}
	dst.Children = nil
	if len(n.Children) > 0 {
		dst.Children = make([]*Node, len(n.Children))
		for i, kid := range n.Children {
			dstKid := &Node{}
			kid.CloneTo(dstKid)
			dstKid.Parent = dst
			dstKid.ParentIndex = i
			dst.Children[i] = dstKid
		}
	}
	return dst
}

func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Visit traverses n depth first in document order. f is called before
// and after each node's children; returning false from the pre call
// skips the subtree.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, kid := range n.Children {
			if err := kid.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
