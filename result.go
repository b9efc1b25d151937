package xmldiff

import "fmt"

type ChangeKind int

const (
	Unchanged ChangeKind = iota
	Inserted
	Deleted
	Modified
	Moved
)

func (c ChangeKind) String() string {
	s, ok := map[ChangeKind]string{
		Unchanged: "Unchanged",
		Inserted:  "Inserted",
		Deleted:   "Deleted",
		Modified:  "Modified",
		Moved:     "Moved",
	}[c]
	if ok {
		return s
	}
	return "<unknown change>"
}

func (c ChangeKind) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ChangeKind) UnmarshalText(d []byte) error {
	cc, ok := map[string]ChangeKind{
		"Unchanged": Unchanged,
		"Inserted":  Inserted,
		"Deleted":   Deleted,
		"Modified":  Modified,
		"Moved":     Moved,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized change kind %q", d)
	}
	*c = cc
	return nil
}

// DiffEntry is one reported difference. Path uniquely addresses one
// node position in one of the two trees; ToPath is set only on Moved
// entries and addresses the node's position on the other side.
type DiffEntry struct {
	Path   string     `json:"path"`
	ToPath string     `json:"toPath,omitempty"`
	Name   string     `json:"name"`
	Change ChangeKind `json:"change"`
	From   string     `json:"from,omitempty"`
	To     string     `json:"to,omitempty"`

	// element signature, kept for the two way merge only
	sig string
}

// Result holds the differences of one comparison in document order,
// along with the options used and the operand labels. It is immutable
// once Compare returns and owned by the caller.
type Result struct {
	FromLabel string
	ToLabel   string
	Options   *Options
	Entries   []DiffEntry
}

// Changed reports whether any difference was found. An identical
// comparison produces no entries at all.
func (r *Result) Changed() bool {
	return len(r.Entries) > 0
}
