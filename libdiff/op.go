package libdiff

import "github.com/structdiff/xmldiff/ir"

type Op int

const (
	OpEqual Op = iota
	OpModified
	OpInsert
	OpDelete
)

func (o Op) String() string {
	s, ok := map[Op]string{
		OpEqual:    "equal",
		OpModified: "modified",
		OpInsert:   "insert",
		OpDelete:   "delete",
	}[o]
	if ok {
		return s
	}
	return "<unknown op>"
}

// Pair is one slot of an alignment. From is nil for OpInsert, To is
// nil for OpDelete; both are set for OpEqual and OpModified. An
// OpEqual pair has equal signatures, which covers the node itself but
// not its descendants.
type Pair struct {
	From *ir.Node
	To   *ir.Node
	Op   Op
}
