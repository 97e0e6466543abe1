package token

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/signadot/vscript/ir"
)

// NeedsQuote reports whether a string value must be quoted to read back
// as the same string: empty strings, text that would be typed as
// something else by ir.FromLiteral, and text with characters that end or
// start other tokens.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	if ir.LiteralKind(v) != ir.StringKind {
		return true
	}
	return hasSpecial(v)
}

// NeedsQuoteName reports whether a name must be quoted. Names are read
// from raw token text, so literal-looking names such as "42" or "true"
// may stay bare.
func NeedsQuoteName(v string) bool {
	return v == "" || hasSpecial(v)
}

func hasSpecial(v string) bool {
	if strings.Contains(v, "//") || strings.Contains(v, "/*") {
		return true
	}
	for _, r := range v {
		if r == utf8.RuneError || IsWordBreak(r) || unicode.IsControl(r) || !unicode.IsPrint(r) {
			return true
		}
	}
	return false
}

// Quote quotes v with '"', or with '\'' when autoSingle is set and that
// needs fewer escapes. Backslash, the quote character and control
// characters are escaped. Tab and newline are escaped only when
// escapeWhitespace is set; otherwise they are kept raw, which the reader
// accepts.
func Quote(v string, autoSingle, escapeWhitespace bool) string {
	q := byte('"')
	if autoSingle && strings.Count(v, "\"") > strings.Count(v, "'") {
		q = '\''
	}
	d := make([]byte, 1, len(v)+2)
	d[0] = q
	for _, r := range v {
		switch r {
		case rune(q):
			d = append(d, '\\', q)
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\r':
			d = append(d, '\\', 'r')
		case 0:
			d = append(d, '\\', '0')
		case '\n':
			if escapeWhitespace {
				d = append(d, '\\', 'n')
			} else {
				d = append(d, '\n')
			}
		case '\t':
			if escapeWhitespace {
				d = append(d, '\\', 't')
			} else {
				d = append(d, '\t')
			}
		default:
			if unicode.IsControl(r) || r == bom {
				d = append(d, '\\', 'u', hexDigit(r>>12), hexDigit(r>>8), hexDigit(r>>4), hexDigit(r))
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, q)
	return string(d)
}

func hexDigit(r rune) byte {
	return "0123456789abcdef"[r&0xf]
}

// Unquote reads a complete quoted string.
func Unquote(v string) (string, error) {
	c := NewCursorBytes([]byte(v))
	pos := c.Pos()
	if ch := c.Current(); ch != '"' && ch != '\'' {
		return "", ExpectedErr("quote", pos)
	}
	r := NewReader(c)
	tok, err := r.quoted(pos)
	if err != nil {
		return "", err
	}
	if c.Current() != EOF {
		return "", UnexpectedErr("trailing text", c.Pos())
	}
	return tok.Text, nil
}
