package encode

import (
	"encoding/json"
	"strconv"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/structdiff/xmldiff"
)

type patchOp struct {
	Op    string  `json:"op"`
	Path  string  `json:"path"`
	From  string  `json:"from,omitempty"`
	Value *string `json:"value,omitempty"`
}

// JSONPatch renders a Result as an RFC 6902 operation list over a
// JSON pointer projection of the element paths. The emitted document
// is decoded back through jsonpatch before return, so the bytes are
// guaranteed to form a well formed patch.
func JSONPatch(r *xmldiff.Result) (jsonpatch.Patch, []byte, error) {
	ops := make([]patchOp, 0, len(r.Entries))
	for i := range r.Entries {
		e := &r.Entries[i]
		switch e.Change {
		case xmldiff.Inserted:
			v := e.To
			ops = append(ops, patchOp{Op: "add", Path: pointer(e.Path), Value: &v})
		case xmldiff.Deleted:
			ops = append(ops, patchOp{Op: "remove", Path: pointer(e.Path)})
		case xmldiff.Modified:
			v := e.To
			ops = append(ops, patchOp{Op: "replace", Path: pointer(e.Path), Value: &v})
		case xmldiff.Moved:
			ops = append(ops, patchOp{Op: "move", From: pointer(e.Path), Path: pointer(e.ToPath)})
		}
	}
	d, err := json.Marshal(ops)
	if err != nil {
		return nil, nil, err
	}
	p, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, nil, err
	}
	return p, d, nil
}

// pointer converts an element path to JSON pointer syntax: positional
// suffixes become zero based index segments, attribute segments keep
// their leading '@'.
func pointer(p string) string {
	segs := strings.Split(strings.TrimPrefix(p, "/"), "/")
	var sb strings.Builder
	for _, seg := range segs {
		name := seg
		index := -1
		if i := strings.IndexByte(seg, '['); i >= 0 && strings.HasSuffix(seg, "]") {
			if n, err := strconv.Atoi(seg[i+1 : len(seg)-1]); err == nil {
				name = seg[:i]
				index = n - 1
			}
		}
		sb.WriteString("/")
		sb.WriteString(escape(name))
		if index >= 0 {
			sb.WriteString("/")
			sb.WriteString(strconv.Itoa(index))
		}
	}
	return sb.String()
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}
