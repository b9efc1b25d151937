package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Align     bool
	Classify  bool
	Diff      bool
	Reconcile bool
}

var d *debug

func init() {
	d = &debug{}
	d.Align = boolEnv("XDIFF_DEBUG_ALIGN")
	d.Classify = boolEnv("XDIFF_DEBUG_CLASSIFY")
	d.Diff = boolEnv("XDIFF_DEBUG_DIFF")
	d.Reconcile = boolEnv("XDIFF_DEBUG_RECONCILE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Align() bool {
	return d.Align
}
func Classify() bool {
	return d.Classify
}
func Diff() bool {
	return d.Diff
}
func Reconcile() bool {
	return d.Reconcile
}
