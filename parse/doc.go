// Package parse parses XML text into IR document trees.
//
// # Usage
//
//	doc, err := parse.Parse([]byte(`<a><b>1</b></a>`), parse.Label("from.xml"))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	doc, err := parse.ParseString(`<a/>`)
//
// Any malformed input (unterminated tags, invalid encoding, mismatched
// nesting) fails fast with an error wrapping ErrParse; no partial
// document is returned.
//
// # Normalization
//
// Text values are trimmed of leading and trailing whitespace and
// whitespace-only text nodes are dropped; KeepSpace disables both.
// Entities are decoded by the tokenizer before any value reaches the
// tree. Comments, processing instructions and directives are not
// structural and are skipped. Element and attribute names use their
// local part; xmlns declarations are dropped. The same policy applies
// to both comparison operands.
//
// # Related Packages
//
//   - github.com/structdiff/xmldiff/ir - IR representation
package parse
