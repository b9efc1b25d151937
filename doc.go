// Package xmldiff computes a structural difference between two XML
// documents: which elements, attributes and text values were added,
// removed, modified or moved.
//
// # Usage
//
//	from, err := parse.Parse(a, parse.Label("a.xml"))
//	to, err := parse.Parse(b, parse.Label("b.xml"))
//	opts, err := xmldiff.NewOptions(xmldiff.TwoWayMatch(true))
//	res := xmldiff.Compare(from, to, opts)
//	for _, e := range res.Entries {
//	    fmt.Println(e.Path, e.Change)
//	}
//
// Compare is a pure function over two immutable trees; each call
// produces an independent Result, so separate comparisons may run
// concurrently without coordination.
//
// # Related Packages
//
//   - github.com/structdiff/xmldiff/parse - Parses XML text into IR trees
//   - github.com/structdiff/xmldiff/libdiff - Sibling list alignment
//   - github.com/structdiff/xmldiff/encode - Renders Results as CSV, JSON, YAML and text
package xmldiff
