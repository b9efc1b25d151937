package xmldiff

import (
	"github.com/structdiff/xmldiff/classify"
	"github.com/structdiff/xmldiff/debug"
	"github.com/structdiff/xmldiff/ir"
	"github.com/structdiff/xmldiff/libdiff"
)

// Compare produces the structural difference between from and to.
// Unchanged nodes emit no entries, so comparing a document with
// itself yields an empty entry list.
//
// Each call performs one (or, under TwoWayMatch, two) deterministic
// passes over the two trees and returns an independent Result; no
// state is shared across calls. A nil opts means defaults.
func Compare(from, to *ir.Document, opts *Options) *Result {
	if opts == nil {
		opts, _ = NewOptions()
	}
	res := &Result{FromLabel: from.Label, ToLabel: to.Label, Options: opts}
	if opts.TwoWay() {
		fwd := oneWay(from.Root, to.Root, opts)
		rev := oneWay(to.Root, from.Root, opts)
		res.Entries = reconcile(fwd, rev)
		return res
	}
	res.Entries = oneWay(from.Root, to.Root, opts)
	return res
}

func oneWay(from, to *ir.Node, opts *Options) []DiffEntry {
	d := &differ{
		cfg:    opts.classifyConfig(),
		detail: opts.Descendants(),
	}
	d.compareRoots(from, to)
	return d.entries
}

type differ struct {
	cfg     classify.Config
	detail  bool
	entries []DiffEntry
}

func (d *differ) emit(e DiffEntry) {
	if debug.Diff() {
		debug.Logf("diff %s %s %q -> %q\n", e.Change, e.Path, e.From, e.To)
	}
	d.entries = append(d.entries, e)
}

func (d *differ) compareRoots(a, b *ir.Node) {
	switch {
	case a == nil && b == nil:
		return
	case a == nil:
		d.inserted(b)
		return
	case b == nil:
		d.deleted(a)
		return
	}
	if a.Name != b.Name {
		// mismatched roots stop recursion for the whole branch
		d.emit(DiffEntry{
			Path:   a.Path(),
			Name:   a.Name,
			Change: Modified,
			From:   a.Name,
			To:     b.Name,
		})
		return
	}
	d.compareNodes(a, b)
}

// compareNodes walks one matched element pair: attributes by name,
// then text content, then aligned children.
func (d *differ) compareNodes(a, b *ir.Node) {
	d.compareAttrs(a, b)
	d.compareText(a, b)
	d.compareChildren(a, b)
}

func (d *differ) compareAttrs(a, b *ir.Node) {
	for _, attr := range a.SortedAttrs() {
		other := b.GetAttr(attr.Name)
		if other == nil {
			d.emit(DiffEntry{
				Path:   attr.Path(),
				Name:   attr.Name,
				Change: Deleted,
				From:   attr.Value,
			})
			continue
		}
		if !classify.ValuesEqual(attr.Value, other.Value, d.cfg) {
			d.emit(DiffEntry{
				Path:   attr.Path(),
				Name:   attr.Name,
				Change: Modified,
				From:   attr.Value,
				To:     other.Value,
			})
		}
	}
	for _, attr := range b.SortedAttrs() {
		if a.GetAttr(attr.Name) != nil {
			continue
		}
		d.emit(DiffEntry{
			Path:   attr.Path(),
			Name:   attr.Name,
			Change: Inserted,
			To:     attr.Value,
		})
	}
}

func (d *differ) compareText(a, b *ir.Node) {
	ta, tb := a.Text(), b.Text()
	if ta == "" && tb == "" {
		return
	}
	if classify.ValuesEqual(ta, tb, d.cfg) {
		return
	}
	d.emit(DiffEntry{
		Path:   a.Path(),
		Name:   a.Name,
		Change: Modified,
		From:   ta,
		To:     tb,
	})
}

func (d *differ) compareChildren(a, b *ir.Node) {
	pairs := libdiff.Align(a.Elements(), b.Elements(), d.cfg)
	for i := range pairs {
		p := &pairs[i]
		switch p.Op {
		case libdiff.OpDelete:
			d.deleted(p.From)
		case libdiff.OpInsert:
			d.inserted(p.To)
		case libdiff.OpEqual, libdiff.OpModified:
			if d.detail {
				d.compareNodes(p.From, p.To)
				continue
			}
			if !d.subtreeEqual(p.From, p.To) {
				d.emit(DiffEntry{
					Path:   p.From.Path(),
					Name:   p.From.Name,
					Change: Modified,
				})
			}
		default:
			panic("align produced unknown op")
		}
	}
}

func (d *differ) deleted(n *ir.Node) {
	d.emit(DiffEntry{
		Path:   n.Path(),
		Name:   n.Name,
		Change: Deleted,
		From:   n.Text(),
		sig:    libdiff.Signature(n, d.cfg),
	})
}

func (d *differ) inserted(n *ir.Node) {
	d.emit(DiffEntry{
		Path:   n.Path(),
		Name:   n.Name,
		Change: Inserted,
		To:     n.Text(),
		sig:    libdiff.Signature(n, d.cfg),
	})
}

// subtreeEqual is the whole-subtree identity check used when
// descendant detail is off.
func (d *differ) subtreeEqual(a, b *ir.Node) bool {
	if a.Name != b.Name {
		return false
	}
	aAttrs, bAttrs := a.SortedAttrs(), b.SortedAttrs()
	if len(aAttrs) != len(bAttrs) {
		return false
	}
	for i := range aAttrs {
		if aAttrs[i].Name != bAttrs[i].Name {
			return false
		}
		if !classify.ValuesEqual(aAttrs[i].Value, bAttrs[i].Value, d.cfg) {
			return false
		}
	}
	if !classify.ValuesEqual(a.Text(), b.Text(), d.cfg) {
		return false
	}
	aKids, bKids := a.Elements(), b.Elements()
	if len(aKids) != len(bKids) {
		return false
	}
	for i := range aKids {
		if !d.subtreeEqual(aKids[i], bKids[i]) {
			return false
		}
	}
	return true
}
