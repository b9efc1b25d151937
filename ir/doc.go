// Package ir provides the intermediate representation (IR) for XML documents.
//
// # Overview
//
// The IR package defines the node tree the diff engine operates on. Both
// comparison operands (whether parsed from text or built programmatically)
// are represented as ir.Node trees rooted in an ir.Document.
//
// The IR contains no position information from input documents, making it
// purely structural: an element's identity is its name, its attributes and
// its ordered children.
//
// # Node Structure
//
// A Node represents a single structural unit of an XML document. Nodes are:
//
//   - ElementKind: a named element with attributes and ordered children
//   - AttrKind: a name/value attribute owned by an element
//   - TextKind: character data owned by an element
//
// Each node maintains a non-owning parent reference, used only to
// reconstruct report paths, never for ownership.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	el := ir.Element("book", ir.Attr("id", "7"))
//	el.Append(ir.Text("moby dick"))
//
// # Ordering
//
// Children preserve document order; Visit traverses depth first in that
// order. This order is the contract the alignment layer relies on.
//
// # Thread Safety
//
// Node structures are not thread-safe. Trees are exclusively owned by their
// Document; clone a tree before sharing it across goroutines.
//
// # Related Packages
//
//   - github.com/structdiff/xmldiff/parse - Parses XML text into IR nodes
//   - github.com/structdiff/xmldiff/libdiff - Aligns IR sibling lists
package ir
