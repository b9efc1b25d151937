package xmldiff

import (
	"fmt"
	"strings"

	"github.com/structdiff/xmldiff/classify"
)

// Options is the comparison configuration, immutable once built by
// NewOptions and safe to share across concurrent comparisons.
type Options struct {
	matchValueTypes  bool
	matchDescendants bool
	ignoreCase       bool
	twoWay           bool
	ignoreTypes      classify.KindSet
}

type Option func(*Options) error

// NewOptions builds an Options value. Defaults: value types matched,
// descendants matched, case ignored, one way. Validation fails
// closed: any bad option aborts the build.
func NewOptions(opts ...Option) (*Options, error) {
	o := &Options{
		matchValueTypes:  true,
		matchDescendants: true,
		ignoreCase:       true,
		ignoreTypes:      classify.KindSet{},
	}
	for _, f := range opts {
		if err := f(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// MatchValueTypes toggles type aware value comparison.
func MatchValueTypes(v bool) Option {
	return func(o *Options) error { o.matchValueTypes = v; return nil }
}

// MatchDescendants toggles recursion into matched child pairs. When
// off, a differing subtree is reported as a single entry.
func MatchDescendants(v bool) Option {
	return func(o *Options) error { o.matchDescendants = v; return nil }
}

// IgnoreCase toggles case insensitive string comparison. It applies
// only to string level comparison, never to numeric or temporal
// values.
func IgnoreCase(v bool) Option {
	return func(o *Options) error { o.ignoreCase = v; return nil }
}

// TwoWayMatch enables the reconciliation pass which distinguishes a
// moved node from an independent insert and delete.
func TwoWayMatch(v bool) Option {
	return func(o *Options) error { o.twoWay = v; return nil }
}

// IgnoreTypes excludes kinds from type aware comparison; values of an
// excluded kind fall back to raw string comparison.
func IgnoreTypes(kinds ...classify.Kind) Option {
	return func(o *Options) error {
		for _, k := range kinds {
			o.ignoreTypes[k] = true
		}
		return nil
	}
}

// IgnoreTypeTokens parses a token list (string, integer, double,
// datetime, delimited by '|', ',' or ';') into IgnoreTypes. An
// unrecognized token fails the whole build.
func IgnoreTypeTokens(s string) Option {
	return func(o *Options) error {
		for _, tok := range splitTokens(s) {
			var k classify.Kind
			if err := k.UnmarshalText([]byte(tok)); err != nil {
				return fmt.Errorf("%w: %v", ErrBadOption, err)
			}
			o.ignoreTypes[k] = true
		}
		return nil
	}
}

func splitTokens(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case '|', ',', ';':
			return true
		default:
			return false
		}
	})
	res := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			res = append(res, f)
		}
	}
	return res
}

func (o *Options) ValueTypes() bool {
	return o.matchValueTypes
}
func (o *Options) Descendants() bool {
	return o.matchDescendants
}
func (o *Options) CaseInsensitive() bool {
	return o.ignoreCase
}
func (o *Options) TwoWay() bool {
	return o.twoWay
}
func (o *Options) IgnoredTypes() classify.KindSet {
	return o.ignoreTypes.Clone()
}

func (o *Options) classifyConfig() classify.Config {
	return classify.Config{
		MatchTypes:    o.matchValueTypes,
		CaseSensitive: !o.ignoreCase,
		Ignore:        o.ignoreTypes,
	}
}
