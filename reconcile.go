package xmldiff

import "github.com/structdiff/xmldiff/debug"

// reconcile merges the entries of the forward pass with those of the
// reverse pass. A node the forward pass deleted at one path and the
// reverse pass deleted at another (meaning it exists on both sides,
// in different positions) is one moved node: its delete/insert pair
// upgrades to a single Moved entry carrying both paths. Modified
// mirror entries from the reverse pass dedup into the forward
// orientation.
//
// This is a pure function of the two already-computed entry slices;
// it performs no tree traversal of its own.
func reconcile(fwd, rev []DiffEntry) []DiffEntry {
	revDels := map[string][]*DiffEntry{}
	for i := range rev {
		e := &rev[i]
		if e.Change == Deleted && e.sig != "" {
			revDels[e.sig] = append(revDels[e.sig], e)
		}
	}
	insIdx := map[string][]int{}
	for i := range fwd {
		e := &fwd[i]
		if e.Change == Inserted && e.sig != "" {
			insIdx[e.sig] = append(insIdx[e.sig], i)
		}
	}

	usedRev := map[*DiffEntry]bool{}
	dropIns := map[int]bool{}
	moves := map[int]int{} // fwd Deleted index -> fwd Inserted index
	for i := range fwd {
		e := &fwd[i]
		if e.Change != Deleted || e.sig == "" {
			continue
		}
		for _, rd := range revDels[e.sig] {
			if usedRev[rd] || rd.Path == e.Path {
				continue
			}
			// the reverse deletion's path is where the node lives on
			// the target side; its mirror insertion must be present
			// in this pass
			ins := -1
			for _, j := range insIdx[e.sig] {
				if !dropIns[j] && fwd[j].Path == rd.Path {
					ins = j
					break
				}
			}
			if ins < 0 {
				continue
			}
			usedRev[rd] = true
			dropIns[ins] = true
			moves[i] = ins
			if debug.Reconcile() {
				debug.Logf("reconcile move %s -> %s\n", e.Path, rd.Path)
			}
			break
		}
	}

	res := make([]DiffEntry, 0, len(fwd))
	for i := range fwd {
		if dropIns[i] {
			continue
		}
		e := fwd[i]
		if ins, ok := moves[i]; ok {
			e.Change = Moved
			e.ToPath = fwd[ins].Path
			e.To = fwd[ins].To
		}
		e.sig = ""
		res = append(res, e)
	}
	return res
}
