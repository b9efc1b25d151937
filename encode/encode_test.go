package encode

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structdiff/xmldiff"
	"github.com/structdiff/xmldiff/parse"
)

func compare(t *testing.T, a, b string, opts ...xmldiff.Option) *xmldiff.Result {
	t.Helper()
	da, err := parse.ParseString(a, parse.Label("a.xml"))
	require.NoError(t, err)
	db, err := parse.ParseString(b, parse.Label("b.xml"))
	require.NoError(t, err)
	o, err := xmldiff.NewOptions(opts...)
	require.NoError(t, err)
	return xmldiff.Compare(da, db, o)
}

func TestCSVRoundTrip(t *testing.T) {
	res := compare(t,
		`<r><p>a,b</p><q/></r>`,
		`<r><p>c "quoted"</p></r>`)
	out, err := CSVString(res)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(res.Entries)+1, "one data row per entry plus header")
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, "a,b", rows[1][3], "comma survives quoting")
	assert.Equal(t, `c "quoted"`, rows[1][4], "quotes survive quoting")
}

func TestStructuredJSON(t *testing.T) {
	res := compare(t, `<r><p id="1"><q>x</q></p></r>`, `<r><p id="2"><q>y</q></p></r>`)
	doc := Structured(res)
	require.NotNil(t, doc.Root)
	assert.Equal(t, "a.xml", doc.From)
	assert.Equal(t, "b.xml", doc.To)
	assert.True(t, doc.Options.MatchValueTypes)
	assert.Equal(t, "r", doc.Root.Name)
	assert.Empty(t, doc.Root.Change, "interior nodes carry no change")

	require.Len(t, doc.Root.Kids, 1)
	p := doc.Root.Kids[0]
	assert.Equal(t, "p", p.Name)
	names := map[string]*Tree{}
	for _, k := range p.Kids {
		names[k.Name] = k
	}
	require.Contains(t, names, "@id")
	assert.Equal(t, "Modified", names["@id"].Change)
	assert.Equal(t, "1", names["@id"].From)
	require.Contains(t, names, "q")
	assert.Equal(t, "Modified", names["q"].Change)

	d, err := doc.JSON()
	require.NoError(t, err)
	var back map[string]any
	require.NoError(t, json.Unmarshal(d, &back))
	assert.Contains(t, back, "root")
}

func TestStructuredKeepsSamePathEntries(t *testing.T) {
	// a sibling swap under two-way matching reports a delete and an
	// insert at the same path; both must survive the re-nesting
	res := compare(t,
		`<r><x id="1"/><y id="2"/></r>`,
		`<r><y id="2"/><x id="1"/></r>`,
		xmldiff.TwoWayMatch(true))
	require.Len(t, res.Entries, 2)
	require.Equal(t, res.Entries[0].Path, res.Entries[1].Path)

	want := make([]string, 0, len(res.Entries))
	for _, e := range res.Entries {
		want = append(want, e.Change.String()+" "+e.Path)
	}
	var got []string
	var walk func(*Tree)
	walk = func(n *Tree) {
		if n.Change != "" {
			got = append(got, n.Change+" "+n.Path)
		}
		for _, k := range n.Kids {
			walk(k)
		}
	}
	walk(Structured(res).Root)
	assert.ElementsMatch(t, want, got)
}

func TestStructuredYAML(t *testing.T) {
	res := compare(t, `<a><b>1</b></a>`, `<a><b>2</b></a>`,
		xmldiff.IgnoreTypeTokens("datetime"))
	d, err := Structured(res).YAML()
	require.NoError(t, err)
	s := string(d)
	assert.Contains(t, s, "from: a.xml")
	assert.Contains(t, s, "- datetime")
	assert.Contains(t, s, "change: Modified")
}

func TestText(t *testing.T) {
	res := compare(t, `<r><p>1</p><q/></r>`, `<r><p>2</p></r>`)
	var sb strings.Builder
	require.NoError(t, Text(res, &sb))
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	assert.Equal(t, "--- a.xml", lines[0])
	assert.Equal(t, "+++ b.xml", lines[1])
	assert.Contains(t, lines, "~ /r/p: 1 -> 2")
	assert.Contains(t, lines, "- /r/q")
}

func TestJSONPatch(t *testing.T) {
	res := compare(t,
		`<r><d><x id="1"/></d><e/><v>old</v></r>`,
		`<r><d/><e><x id="1"/></e><v>new</v></r>`,
		xmldiff.TwoWayMatch(true))
	p, d, err := JSONPatch(res)
	require.NoError(t, err)
	require.NotNil(t, p)

	var ops []map[string]any
	require.NoError(t, json.Unmarshal(d, &ops))
	kinds := map[string]int{}
	for _, op := range ops {
		kinds[op["op"].(string)]++
	}
	assert.Equal(t, 1, kinds["move"])
	assert.Equal(t, 1, kinds["replace"])
}

func TestPointer(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/a/b", "/a/b"},
		{"/a/b[2]/c", "/a/b/1/c"},
		{"/a/b/@id", "/a/b/@id"},
		{"/a~b", "/a~0b"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, pointer(tc.in), "pointer(%q)", tc.in)
	}
}
