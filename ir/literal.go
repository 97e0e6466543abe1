package ir

import "strconv"

// LiteralKind classifies freeform text the way FromLiteral types it.
//
// "true"/"false" are Boolean and "null" is Null (exact match only). Text
// made of an optional leading sign, ASCII digits and at most one '.' with
// at least one digit is Float when it has a '.' and Integer otherwise.
// Everything else, including the empty string, is a String.
func LiteralKind(raw string) Kind {
	switch raw {
	case "":
		return StringKind
	case "true", "false":
		return BooleanKind
	case "null":
		return NullKind
	}
	decimal, numeral := false, false
	for i := 0; i < len(raw); i++ {
		switch c := raw[i]; c {
		case '+', '-':
			if i != 0 {
				return StringKind
			}
		case '.':
			if decimal {
				return StringKind
			}
			decimal = true
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			numeral = true
		default:
			return StringKind
		}
	}
	switch {
	case !numeral:
		return StringKind
	case decimal:
		return FloatKind
	default:
		return IntegerKind
	}
}

// FromLiteral converts freeform text to a nameless scalar node. It never
// fails: numerals that do not fit their kind become that kind's zero
// value.
func FromLiteral(raw string) *Node {
	switch LiteralKind(raw) {
	case NullKind:
		return Null()
	case BooleanKind:
		return FromBool(raw == "true")
	case IntegerKind:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			i = 0
		}
		return FromInt(i)
	case FloatKind:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			f = 0
		}
		return FromFloat(f)
	default:
		return FromString(raw)
	}
}

// FromLiteralNamed is FromLiteral with a name.
func FromLiteralNamed(raw, name string) *Node {
	return FromLiteral(raw).WithName(name)
}

// Literal renders a scalar node in the form FromLiteral reads back: null,
// true/false, decimal integers and floats that always carry a '.'. String
// nodes are returned verbatim, which does not always read back; see
// NeedsQuote in package token.
func Literal(y *Node) string {
	switch y.Kind() {
	case NullKind:
		return "null"
	case BooleanKind:
		return strconv.FormatBool(y.b)
	case IntegerKind:
		return strconv.FormatInt(y.i64, 10)
	case FloatKind:
		return formatFloat(y.f64)
	case StringKind:
		return y.str
	default:
		panic(&KindError{Op: "Literal", Want: ValueOrNullKinds, Got: y.Kind()})
	}
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.':
			return s
		case 'I', 'N':
			// Inf and NaN have no literal form.
			return s
		}
	}
	return s + ".0"
}
