// Package classify provides value type classification and type aware
// equality for XML text values.
//
// Classify buckets a raw text value into the most specific kind that
// parses losslessly: integer, then decimal/exponential double, then a
// small set of common date/time layouts, else string.
//
// ValuesEqual compares two raw values under a Config: raw string
// comparison when type matching is off or a value's kind is ignored,
// otherwise numeric magnitude, temporal instant, or case folded string
// comparison by kind.
//
// # Related Packages
//
//   - github.com/structdiff/xmldiff/libdiff - Uses classification buckets in signatures
package classify
