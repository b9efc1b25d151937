package encode

import (
	"encoding/json"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/structdiff/xmldiff"
	"github.com/structdiff/xmldiff/classify"
)

// Doc is the hierarchical structured form of a Result: the entries
// re-nested by path so the document context of every change is
// preserved, plus the options used and the two source labels.
type Doc struct {
	From    string  `json:"from" yaml:"from"`
	To      string  `json:"to" yaml:"to"`
	Options Summary `json:"options" yaml:"options"`
	Root    *Tree   `json:"root,omitempty" yaml:"root,omitempty"`
}

type Summary struct {
	MatchValueTypes  bool     `json:"matchValueTypes" yaml:"matchValueTypes"`
	MatchDescendants bool     `json:"matchDescendants" yaml:"matchDescendants"`
	IgnoreCase       bool     `json:"ignoreCase" yaml:"ignoreCase"`
	TwoWayMatch      bool     `json:"twoWayMatch" yaml:"twoWayMatch"`
	IgnoreTypes      []string `json:"ignoreTypes,omitempty" yaml:"ignoreTypes,omitempty"`
}

// Tree is one node of the structured form. Interior nodes carry no
// change of their own and exist to preserve nesting context.
type Tree struct {
	Name   string  `json:"name" yaml:"name"`
	Path   string  `json:"path" yaml:"path"`
	Change string  `json:"change,omitempty" yaml:"change,omitempty"`
	From   string  `json:"from,omitempty" yaml:"from,omitempty"`
	To     string  `json:"to,omitempty" yaml:"to,omitempty"`
	ToPath string  `json:"toPath,omitempty" yaml:"toPath,omitempty"`
	Kids   []*Tree `json:"kids,omitempty" yaml:"kids,omitempty"`
}

func Structured(r *xmldiff.Result) *Doc {
	doc := &Doc{
		From:    r.FromLabel,
		To:      r.ToLabel,
		Options: summarize(r.Options),
	}
	for i := range r.Entries {
		doc.insert(&r.Entries[i])
	}
	return doc
}

func (doc *Doc) JSON() ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

func (doc *Doc) YAML() ([]byte, error) {
	return yaml.Marshal(doc)
}

func (doc *Doc) insert(e *xmldiff.DiffEntry) {
	segs := strings.Split(strings.TrimPrefix(e.Path, "/"), "/")
	if doc.Root == nil {
		doc.Root = &Tree{Name: segs[0], Path: "/" + segs[0]}
	}
	cur := doc.Root
	path := cur.Path
	for i, seg := range segs[1:] {
		path += "/" + seg
		cur = cur.kid(seg, path, i == len(segs)-2)
	}
	cur.Change = e.Change.String()
	cur.From = e.From
	cur.To = e.To
	cur.ToPath = e.ToPath
}

// kid returns the child named name, creating it if absent. An entry's
// final segment never lands on an already annotated node: two entries
// at the same path (a delete/insert pair from a sibling swap) get two
// sibling Tree nodes.
func (t *Tree) kid(name, path string, annotate bool) *Tree {
	for _, k := range t.Kids {
		if k.Name != name {
			continue
		}
		if annotate && k.Change != "" {
			continue
		}
		return k
	}
	k := &Tree{Name: name, Path: path}
	t.Kids = append(t.Kids, k)
	return k
}

func summarize(o *xmldiff.Options) Summary {
	if o == nil {
		return Summary{}
	}
	res := Summary{
		MatchValueTypes:  o.ValueTypes(),
		MatchDescendants: o.Descendants(),
		IgnoreCase:       o.CaseInsensitive(),
		TwoWayMatch:      o.TwoWay(),
	}
	ignored := o.IgnoredTypes()
	for _, k := range classify.Kinds() {
		if ignored.Has(k) {
			res.IgnoreTypes = append(res.IgnoreTypes, k.String())
		}
	}
	return res
}
