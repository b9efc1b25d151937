package classify

import (
	"strconv"
	"strings"
	"time"
)

// timeLayouts are the date/time forms Classify recognizes, tried in
// order. Instant equality uses the same layouts.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// Classify buckets a raw text value into the most specific kind that
// parses losslessly. Leading zeros still classify numerically.
func Classify(v string) Kind {
	v = strings.TrimSpace(v)
	if !looksNumeric(v) {
		if _, ok := ParseTime(v); ok {
			return DateTimeKind
		}
		return StringKind
	}
	if _, err := strconv.ParseInt(v, 10, 64); err == nil {
		return IntegerKind
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return DoubleKind
	}
	if _, ok := ParseTime(v); ok {
		return DateTimeKind
	}
	return StringKind
}

// looksNumeric is a syntactic gate in front of strconv: it rejects
// forms ParseFloat accepts but XML values never mean numerically
// (inf, nan, hex floats).
func looksNumeric(v string) bool {
	if v == "" {
		return false
	}
	if strings.ContainsAny(v, "xXpP") {
		return false
	}
	c := v[0]
	if c == '+' || c == '-' {
		if len(v) == 1 {
			return false
		}
		c = v[1]
	}
	return (c >= '0' && c <= '9') || c == '.'
}

// ParseTime parses v against the recognized layouts, first match
// wins.
func ParseTime(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, v)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
