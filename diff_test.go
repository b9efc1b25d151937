package xmldiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/structdiff/xmldiff/classify"
	"github.com/structdiff/xmldiff/ir"
	"github.com/structdiff/xmldiff/parse"
)

func mustParse(t *testing.T, s, label string) *ir.Document {
	t.Helper()
	doc, err := parse.ParseString(s, parse.Label(label))
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return doc
}

func mustOptions(t *testing.T, opts ...Option) *Options {
	t.Helper()
	o, err := NewOptions(opts...)
	if err != nil {
		t.Fatal(err)
	}
	return o
}

func entryStr(e DiffEntry) string {
	s := e.Change.String() + " " + e.Path
	if e.ToPath != "" {
		s += " -> " + e.ToPath
	}
	if e.From != "" {
		s += " from=" + e.From
	}
	if e.To != "" {
		s += " to=" + e.To
	}
	return s
}

func entryStrs(r *Result) []string {
	var res []string
	for _, e := range r.Entries {
		res = append(res, entryStr(e))
	}
	return res
}

type diffTest struct {
	name string
	a    string
	b    string
	opts []Option
	want []string
}

var diffTests = []diffTest{
	{
		name: "text modified",
		a:    `<a><b>1</b></a>`,
		b:    `<a><b>2</b></a>`,
		want: []string{"Modified /a/b from=1 to=2"},
	},
	{
		name: "child deleted",
		a:    `<a><b/><c/></a>`,
		b:    `<a><c/></a>`,
		want: []string{"Deleted /a/b"},
	},
	{
		name: "child inserted",
		a:    `<a><c/></a>`,
		b:    `<a><b/><c/></a>`,
		want: []string{"Inserted /a/b"},
	},
	{
		name: "root name mismatch stops recursion",
		a:    `<a><b>1</b></a>`,
		b:    `<c><b>2</b></c>`,
		want: []string{"Modified /a from=a to=c"},
	},
	{
		name: "attr modified",
		a:    `<a><b id="1" x="same"/></a>`,
		b:    `<a><b id="2" x="same"/></a>`,
		want: []string{"Modified /a/b/@id from=1 to=2"},
	},
	{
		name: "attr inserted and deleted",
		a:    `<a old="1"/>`,
		b:    `<a new="2"/>`,
		want: []string{
			"Deleted /a/@old from=1",
			"Inserted /a/@new to=2",
		},
	},
	{
		name: "numeric family equal",
		a:    `<a><b>1</b></a>`,
		b:    `<a><b>1.0</b></a>`,
		want: nil,
	},
	{
		name: "ignored double compares raw",
		a:    `<a><b>1</b></a>`,
		b:    `<a><b>1.0</b></a>`,
		opts: []Option{IgnoreTypes(classify.DoubleKind)},
		want: []string{"Modified /a/b from=1 to=1.0"},
	},
	{
		name: "no value matching compares raw",
		a:    `<a><b>1</b></a>`,
		b:    `<a><b>1.0</b></a>`,
		opts: []Option{MatchValueTypes(false)},
		want: []string{"Modified /a/b from=1 to=1.0"},
	},
	{
		name: "datetime instants equal",
		a:    `<a><t>2021-06-01T00:00:00Z</t></a>`,
		b:    `<a><t>2021-06-01</t></a>`,
		want: nil,
	},
	{
		name: "case folded by default",
		a:    `<a><b>Foo</b></a>`,
		b:    `<a><b>foo</b></a>`,
		want: nil,
	},
	{
		name: "case sensitive",
		a:    `<a><b>Foo</b></a>`,
		b:    `<a><b>foo</b></a>`,
		opts: []Option{IgnoreCase(false)},
		want: []string{"Modified /a/b from=Foo to=foo"},
	},
	{
		name: "descendant suppression",
		a:    `<a><b><c>1</c></b></a>`,
		b:    `<a><b><c>2</c></b></a>`,
		opts: []Option{MatchDescendants(false)},
		want: []string{"Modified /a/b"},
	},
	{
		name: "descendant suppression leaves identical subtrees alone",
		a:    `<a><b><c>1</c></b><d/></a>`,
		b:    `<a><b><c>1</c></b><d/></a>`,
		opts: []Option{MatchDescendants(false)},
		want: nil,
	},
	{
		name: "sibling disambiguation",
		a:    `<a><b>1</b><b>2</b></a>`,
		b:    `<a><b>1</b><b>3</b></a>`,
		want: []string{"Modified /a/b[2] from=2 to=3"},
	},
	{
		name: "nested detail",
		a:    `<r><p id="1"><q>x</q></p></r>`,
		b:    `<r><p id="1"><q>y</q><s/></p></r>`,
		want: []string{
			"Modified /r/p/q from=x to=y",
			"Inserted /r/p/s",
		},
	},
	{
		name: "changed attrs align as one modification",
		a:    `<r><p id="1">x</p></r>`,
		b:    `<r><p id="2">x</p></r>`,
		want: []string{"Modified /r/p/@id from=1 to=2"},
	},
}

func TestDiff(t *testing.T) {
	for _, tc := range diffTests {
		t.Run(tc.name, func(t *testing.T) {
			a := mustParse(t, tc.a, "a.xml")
			b := mustParse(t, tc.b, "b.xml")
			res := Compare(a, b, mustOptions(t, tc.opts...))
			if diff := cmp.Diff(tc.want, entryStrs(res)); diff != "" {
				t.Errorf("entries (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiffIdempotence(t *testing.T) {
	docs := []string{
		`<a/>`,
		`<a><b>1</b></a>`,
		`<catalog n="2"><book id="1"><title>T</title></book><book id="2"/></catalog>`,
		`<p>one <em>two</em> three</p>`,
	}
	optSets := [][]Option{
		nil,
		{MatchValueTypes(false)},
		{MatchDescendants(false)},
		{IgnoreCase(false)},
		{TwoWayMatch(true)},
		{IgnoreTypes(classify.IntegerKind, classify.DoubleKind)},
	}
	for _, doc := range docs {
		for _, opts := range optSets {
			a := mustParse(t, doc, "a.xml")
			b := mustParse(t, doc, "b.xml")
			res := Compare(a, b, mustOptions(t, opts...))
			if res.Changed() {
				t.Errorf("self comparison of %q yields %v", doc, entryStrs(res))
			}
		}
	}
}

func TestDiffIndependentResults(t *testing.T) {
	a := mustParse(t, `<a><b>1</b></a>`, "a.xml")
	b := mustParse(t, `<a><b>2</b></a>`, "b.xml")
	opts := mustOptions(t)
	r1 := Compare(a, b, opts)
	r2 := Compare(a, b, opts)
	if diff := cmp.Diff(entryStrs(r1), entryStrs(r2)); diff != "" {
		t.Errorf("results differ across calls:\n%s", diff)
	}
	if &r1.Entries[0] == &r2.Entries[0] {
		t.Errorf("results share entry storage")
	}
}

func TestDiffLabels(t *testing.T) {
	a := mustParse(t, `<a/>`, "left.xml")
	b := mustParse(t, `<a/>`, "right.xml")
	res := Compare(a, b, nil)
	if res.FromLabel != "left.xml" || res.ToLabel != "right.xml" {
		t.Errorf("labels: got %q, %q", res.FromLabel, res.ToLabel)
	}
}
