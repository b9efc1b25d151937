// Package libdiff aligns two ordered sibling lists of IR nodes into
// matched, modified, inserted and deleted pairs.
//
// Alignment is a generic ordered-sequence problem over a signature
// type: each node's signature is interned as a rune and the rune
// sequences are diffed with sergi/go-diff, which yields the edit
// script minimizing inserts and deletes while preserving relative
// order. A second pass over each unmatched gap re-aligns by weak
// signature, so a deleted node and an inserted node with the same
// name pair up as a modification instead of an independent
// delete/insert.
//
// Results are deterministic: the leftmost unused candidate consistent
// with the edit script always wins.
package libdiff
