// Package encode renders diff results in their serializable forms.
//
// # Usage
//
//	res := xmldiff.Compare(from, to, opts)
//
//	// Hierarchical structured form
//	doc := encode.Structured(res)
//	d, err := doc.JSON()
//	d, err = doc.YAML()
//
//	// Flattened tabular form
//	err = encode.CSV(res, w)
//
//	// Terminal form, optionally in color
//	err = encode.Text(res, w, encode.EncodeColors(encode.NewColors()))
//
//	// JSON Patch form
//	ops, d, err := encode.JSONPatch(res)
//
// The caller owns persistence: every renderer returns bytes or writes
// to a caller supplied writer.
//
// # Related Packages
//
//   - github.com/structdiff/xmldiff - Produces the results rendered here
package encode
