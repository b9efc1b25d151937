package classify

import (
	"strconv"
	"strings"

	"github.com/structdiff/xmldiff/debug"
)

// Config holds the comparison rules for a single diff run. The zero
// value is raw, case insensitive string comparison; Default() enables
// type matching.
type Config struct {
	MatchTypes    bool
	CaseSensitive bool
	Ignore        KindSet
}

func Default() Config {
	return Config{MatchTypes: true}
}

// ValuesEqual reports whether a and b are the same value under cfg.
//
// With type matching off, or when either value's classified kind is
// in cfg.Ignore, the values compare as raw strings (case folded
// unless cfg.CaseSensitive). Otherwise kinds from different families
// are unequal, numeric values compare by magnitude, datetimes by
// instant, and strings by the case rule. Case sensitivity never
// applies to numeric or temporal comparison.
func ValuesEqual(a, b string, cfg Config) bool {
	if !cfg.MatchTypes {
		return rawEqual(a, b, cfg)
	}
	ka, kb := Classify(a), Classify(b)
	if debug.Classify() {
		debug.Logf("classify %q=%s %q=%s\n", a, ka, b, kb)
	}
	if cfg.Ignore.Has(ka) || cfg.Ignore.Has(kb) {
		return rawEqual(a, b, cfg)
	}
	switch {
	case ka.Numeric() && kb.Numeric():
		return numbersEqual(a, b, ka, kb)
	case ka != kb:
		return false
	case ka == DateTimeKind:
		ta, _ := ParseTime(a)
		tb, _ := ParseTime(b)
		return ta.Equal(tb)
	default:
		return rawEqual(a, b, cfg)
	}
}

func rawEqual(a, b string, cfg Config) bool {
	if cfg.CaseSensitive {
		return a == b
	}
	return strings.EqualFold(a, b)
}

func numbersEqual(a, b string, ka, kb Kind) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if ka == IntegerKind && kb == IntegerKind {
		// int64 magnitudes exceed float64 precision
		ia, _ := strconv.ParseInt(a, 10, 64)
		ib, _ := strconv.ParseInt(b, 10, 64)
		return ia == ib
	}
	fa, _ := strconv.ParseFloat(a, 64)
	fb, _ := strconv.ParseFloat(b, 64)
	return fa == fb
}
