package parse

type parseOpts struct {
	label string
	trim  bool
}

type ParseOption func(*parseOpts)

// Label sets the document's source label, used for reporting only.
func Label(l string) ParseOption {
	return func(o *parseOpts) { o.label = l }
}

// KeepSpace disables the whitespace trimming policy for text nodes.
func KeepSpace() ParseOption {
	return func(o *parseOpts) { o.trim = false }
}
