package classify

import "fmt"

type Kind int

const (
	StringKind Kind = iota
	IntegerKind
	DoubleKind
	DateTimeKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		StringKind:   "string",
		IntegerKind:  "integer",
		DoubleKind:   "double",
		DateTimeKind: "datetime",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"string":   StringKind,
		"integer":  IntegerKind,
		"double":   DoubleKind,
		"datetime": DateTimeKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		StringKind,
		IntegerKind,
		DoubleKind,
		DateTimeKind,
	}
}

// Numeric reports whether k belongs to the numeric family. Integer
// and double values compare by magnitude across kinds, so "1" and
// "1.0" are equal under type matching.
func (k Kind) Numeric() bool {
	switch k {
	case IntegerKind, DoubleKind:
		return true
	default:
		return false
	}
}

// Bucket returns the alignment bucket for k. Kinds in one family
// share a bucket so that values which could compare equal can align.
func (k Kind) Bucket() string {
	if k.Numeric() {
		return "number"
	}
	return k.String()
}

// KindSet is a set of kinds, used to exclude kinds from type aware
// comparison.
type KindSet map[Kind]bool

func NewKindSet(kinds ...Kind) KindSet {
	res := make(KindSet, len(kinds))
	for _, k := range kinds {
		res[k] = true
	}
	return res
}

func (s KindSet) Has(k Kind) bool {
	return s[k]
}

func (s KindSet) Clone() KindSet {
	res := make(KindSet, len(s))
	for k := range s {
		res[k] = true
	}
	return res
}
