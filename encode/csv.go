package encode

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/structdiff/xmldiff"
)

// Header is the first row of the flattened tabular form.
var Header = []string{"path", "change", "node", "from", "to"}

// Rows returns the flattened form: Header plus one row per entry.
func Rows(r *xmldiff.Result) [][]string {
	res := make([][]string, 0, len(r.Entries)+1)
	res = append(res, Header)
	for i := range r.Entries {
		e := &r.Entries[i]
		res = append(res, []string{
			e.Path,
			e.Change.String(),
			e.Name,
			e.From,
			e.To,
		})
	}
	return res
}

// CSV writes the flattened form to w. Field quoting follows the
// standard rules: values containing separators or quotes are wrapped
// in quotes with embedded quotes doubled.
func CSV(r *xmldiff.Result, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(Rows(r)); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func CSVString(r *xmldiff.Result) (string, error) {
	var sb strings.Builder
	if err := CSV(r, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
