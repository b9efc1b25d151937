package ir

import "fmt"

type Kind int

const (
	ElementKind Kind = iota
	AttrKind
	TextKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		ElementKind: "Element",
		AttrKind:    "Attr",
		TextKind:    "Text",
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
		"Element": ElementKind,
		"Attr":    AttrKind,
		"Text":    TextKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		ElementKind,
		AttrKind,
		TextKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case AttrKind, TextKind:
		return true
	default:
		return false
	}
}
