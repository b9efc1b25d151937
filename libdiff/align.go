package libdiff

import (
	"github.com/structdiff/xmldiff/classify"
	"github.com/structdiff/xmldiff/debug"
	"github.com/structdiff/xmldiff/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Align aligns two ordered sibling lists. The first pass diffs full
// signatures; each gap of unmatched nodes is then re-aligned by weak
// signature so that same-named nodes with differing attributes or
// values come back as OpModified pairs. Trailing unmatched source
// nodes are OpDelete, trailing unmatched target nodes OpInsert.
func Align(from, to []*ir.Node, cfg classify.Config) []Pair {
	intern := map[string]rune{}
	fromRunes := internSigs(intern, from, cfg)
	toRunes := internSigs(intern, to, cfg)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	res := make([]Pair, 0, max(len(from), len(to)))
	var dels, inss []*ir.Node
	fi, ti := 0, 0
	flush := func() {
		res = appendGap(res, dels, inss)
		dels, inss = nil, nil
	}
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				dels = append(dels, from[fi])
				fi++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				inss = append(inss, to[ti])
				ti++
			}
		case diffpatch.DiffEqual:
			flush()
			for range diff.Text {
				res = append(res, Pair{From: from[fi], To: to[ti], Op: OpEqual})
				fi++
				ti++
			}
		}
	}
	flush()
	if fi != len(from) || ti != len(to) {
		panic("align: edit script does not cover inputs")
	}
	if debug.Align() {
		for i := range res {
			p := &res[i]
			debug.Logf("align %d: %s %s/%s\n", i, p.Op, name(p.From), name(p.To))
		}
	}
	return res
}

// appendGap aligns one run of unmatched nodes by weak signature.
func appendGap(res []Pair, dels, inss []*ir.Node) []Pair {
	if len(dels) == 0 && len(inss) == 0 {
		return res
	}
	if len(dels) == 0 || len(inss) == 0 {
		for _, n := range dels {
			res = append(res, Pair{From: n, Op: OpDelete})
		}
		for _, n := range inss {
			res = append(res, Pair{To: n, Op: OpInsert})
		}
		return res
	}
	intern := map[string]rune{}
	delRunes := internWeak(intern, dels)
	insRunes := internWeak(intern, inss)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(delRunes, insRunes, false)
	di, ii := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				res = append(res, Pair{From: dels[di], Op: OpDelete})
				di++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				res = append(res, Pair{To: inss[ii], Op: OpInsert})
				ii++
			}
		case diffpatch.DiffEqual:
			for range diff.Text {
				res = append(res, Pair{From: dels[di], To: inss[ii], Op: OpModified})
				di++
				ii++
			}
		}
	}
	return res
}

func internSigs(m map[string]rune, nodes []*ir.Node, cfg classify.Config) []rune {
	rs := make([]rune, len(nodes))
	for i, n := range nodes {
		sig := Signature(n, cfg)
		r, ok := m[sig]
		if !ok {
			r = rune(len(m))
			m[sig] = r
		}
		rs[i] = r
	}
	return rs
}

func internWeak(m map[string]rune, nodes []*ir.Node) []rune {
	rs := make([]rune, len(nodes))
	for i, n := range nodes {
		sig := WeakSignature(n)
		r, ok := m[sig]
		if !ok {
			r = rune(len(m))
			m[sig] = r
		}
		rs[i] = r
	}
	return rs
}

func name(n *ir.Node) string {
	if n == nil {
		return "-"
	}
	if n.Kind == ir.TextKind {
		return "#text"
	}
	return n.Name
}
