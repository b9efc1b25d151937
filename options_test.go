package xmldiff

import (
	"errors"
	"testing"

	"github.com/structdiff/xmldiff/classify"
)

func TestOptionDefaults(t *testing.T) {
	o, err := NewOptions()
	if err != nil {
		t.Fatal(err)
	}
	if !o.ValueTypes() || !o.Descendants() || !o.CaseInsensitive() || o.TwoWay() {
		t.Errorf("unexpected defaults: %+v", o)
	}
	if len(o.IgnoredTypes()) != 0 {
		t.Errorf("default ignore set not empty")
	}
}

func TestIgnoreTypeTokens(t *testing.T) {
	tests := []struct {
		in   string
		want []classify.Kind
	}{
		{"integer", []classify.Kind{classify.IntegerKind}},
		{"integer|double", []classify.Kind{classify.IntegerKind, classify.DoubleKind}},
		{"integer, datetime", []classify.Kind{classify.IntegerKind, classify.DateTimeKind}},
		{";string;", []classify.Kind{classify.StringKind}},
		{"double;double", []classify.Kind{classify.DoubleKind}},
	}
	for _, tc := range tests {
		o, err := NewOptions(IgnoreTypeTokens(tc.in))
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		got := o.IgnoredTypes()
		if len(got) != len(tc.want) {
			t.Errorf("%q: got %v", tc.in, got)
			continue
		}
		for _, k := range tc.want {
			if !got.Has(k) {
				t.Errorf("%q: missing %s", tc.in, k)
			}
		}
	}
}

func TestIgnoreTypeTokensFailClosed(t *testing.T) {
	for _, in := range []string{"decimal", "integer|decimal", "Integer"} {
		o, err := NewOptions(IgnoreTypeTokens(in))
		if err == nil {
			t.Errorf("%q: no error, got %+v", in, o)
			continue
		}
		if !errors.Is(err, ErrBadOption) {
			t.Errorf("%q: error does not wrap ErrBadOption: %v", in, err)
		}
		if o != nil {
			t.Errorf("%q: partially built options returned", in)
		}
	}
}

func TestIgnoredTypesIsACopy(t *testing.T) {
	o, err := NewOptions(IgnoreTypes(classify.IntegerKind))
	if err != nil {
		t.Fatal(err)
	}
	got := o.IgnoredTypes()
	got[classify.StringKind] = true
	if o.IgnoredTypes().Has(classify.StringKind) {
		t.Errorf("IgnoredTypes leaks internal state")
	}
}
