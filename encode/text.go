package encode

import (
	"fmt"
	"io"

	"github.com/structdiff/xmldiff"
)

var markers = map[xmldiff.ChangeKind]string{
	xmldiff.Inserted: "+",
	xmldiff.Deleted:  "-",
	xmldiff.Modified: "~",
	xmldiff.Moved:    ">",
}

// Text writes one line per entry, preceded by the two source labels.
func Text(r *xmldiff.Result, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, f := range opts {
		f(es)
	}
	if r.FromLabel != "" || r.ToLabel != "" {
		if _, err := fmt.Fprintf(w, "--- %s\n+++ %s\n", r.FromLabel, r.ToLabel); err != nil {
			return err
		}
	}
	for i := range r.Entries {
		e := &r.Entries[i]
		line := line(e)
		if es.Color != nil {
			line = es.Color.sprintf(e.Change)("%s", line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func line(e *xmldiff.DiffEntry) string {
	m, ok := markers[e.Change]
	if !ok {
		m = "="
	}
	s := m + " " + e.Path
	switch {
	case e.Change == xmldiff.Moved:
		s += " -> " + e.ToPath
	case e.From != "" || e.To != "":
		s += ": " + quoteIfEmpty(e.From) + " -> " + quoteIfEmpty(e.To)
	}
	return s
}

func quoteIfEmpty(v string) string {
	if v == "" {
		return `""`
	}
	return v
}
