package libdiff

import (
	"strings"

	"github.com/structdiff/xmldiff/classify"
	"github.com/structdiff/xmldiff/ir"
)

// Signature returns the structural key used to pair corresponding
// nodes across two trees. Elements key on name plus sorted attribute
// name/value pairs; text nodes key on their classified type bucket
// when type matching is on, else on their normalized raw value.
// Descendants do not contribute.
func Signature(n *ir.Node, cfg classify.Config) string {
	switch n.Kind {
	case ir.TextKind:
		if cfg.MatchTypes {
			return "t|" + classify.Classify(n.Value).Bucket()
		}
		return "t|" + normValue(n.Value, cfg)
	case ir.AttrKind:
		return "a|" + n.Name + "=" + normValue(n.Value, cfg)
	}
	var sb strings.Builder
	sb.WriteString("e|")
	sb.WriteString(n.Name)
	for _, a := range n.SortedAttrs() {
		sb.WriteString("|")
		sb.WriteString(a.Name)
		sb.WriteString("=")
		sb.WriteString(normValue(a.Value, cfg))
	}
	return sb.String()
}

// WeakSignature keys a node by name only, ignoring attribute and text
// values. It drives the second alignment pass which upgrades
// delete/insert runs to modifications.
func WeakSignature(n *ir.Node) string {
	switch n.Kind {
	case ir.TextKind:
		return "t"
	case ir.AttrKind:
		return "a|" + n.Name
	}
	return "e|" + n.Name
}

func normValue(v string, cfg classify.Config) string {
	if cfg.CaseSensitive {
		return v
	}
	return strings.ToLower(v)
}
