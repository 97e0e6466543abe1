package encode

import "github.com/signadot/vscript/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// Root controls whether the top node is written as a document, that is
// as its members without enclosing braces and without its name. It
// defaults to true.
func Root(v bool) EncodeOption {
	return func(es *EncState) { es.root = v }
}

// QuoteNames quotes every name, not only those that need it.
func QuoteNames(v bool) EncodeOption {
	return func(es *EncState) { es.quoteNames = v }
}

// QuoteValues quotes every string value, not only those that need it.
func QuoteValues(v bool) EncodeOption {
	return func(es *EncState) { es.quoteValues = v }
}

// EscapeWhitespace writes tabs and newlines in quoted strings as \t and
// \n.
func EscapeWhitespace(v bool) EncodeOption {
	return func(es *EncState) { es.escapeWhitespace = v }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Wire writes everything on a single line, separating members with
// commas.
func Wire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}
