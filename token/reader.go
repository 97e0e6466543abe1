package token

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/signadot/vscript/ir"
)

// Reader reads tokens from a Cursor.
type Reader struct {
	c   *Cursor
	buf strings.Builder
}

func NewReader(c *Cursor) *Reader {
	return &Reader{c: c}
}

// Next returns the next token. At the end of input it returns a TEOF
// token; a read error from the underlying source wraps ErrSource.
func (r *Reader) Next() (Token, error) {
	c := r.c
	for {
		ch := c.Current()
		pos := c.Pos()
		switch ch {
		case EOF:
			if err := c.Err(); err != nil {
				return Token{}, NewTokenizeErr(fmt.Errorf("%w: %w", ErrSource, err), pos)
			}
			return Token{Type: TEOF, Pos: pos}, nil
		case Invalid:
			c.Advance()
			continue
		case '\n':
			c.Advance()
			return Token{Type: TNewline, Pos: pos, Text: "\n"}, nil
		case '{':
			return r.single(TLCurl, pos), nil
		case '}':
			return r.single(TRCurl, pos), nil
		case '[':
			return r.single(TLSquare, pos), nil
		case ']':
			return r.single(TRSquare, pos), nil
		case '=':
			return r.single(TEquals, pos), nil
		case ',':
			return r.single(TComma, pos), nil
		case '"', '\'':
			return r.quoted(pos)
		case '/':
			switch c.Peek() {
			case '/':
				c.SkipTo('\n')
				continue
			case '*':
				if err := r.blockComment(pos); err != nil {
					return Token{}, err
				}
				continue
			}
		}
		if unicode.IsSpace(ch) {
			c.Advance()
			continue
		}
		return r.word(pos), nil
	}
}

func (r *Reader) single(t TokenType, pos Pos) Token {
	ch := r.c.Current()
	r.c.Advance()
	return Token{Type: t, Pos: pos, Text: string(ch)}
}

func (r *Reader) blockComment(pos Pos) error {
	c := r.c
	c.Advance()
	c.Advance()
	for {
		switch c.Current() {
		case EOF:
			return NewTokenizeErr(fmt.Errorf("%w block comment", ErrUnterminated), pos)
		case '*':
			if c.Peek() == '/' {
				c.Advance()
				c.Advance()
				return nil
			}
		}
		c.Advance()
	}
}

// IsWordBreak reports whether ch ends a bare word.
func IsWordBreak(ch rune) bool {
	switch ch {
	case EOF, '{', '}', '[', ']', '=', ',', '"', '\'':
		return true
	}
	return unicode.IsSpace(ch)
}

// word reads a bare word. Words starting with a digit or sign that
// classify as numeric literals are TNumber tokens.
func (r *Reader) word(pos Pos) Token {
	c := r.c
	r.buf.Reset()
	for ch := c.Current(); !IsWordBreak(ch); ch = c.Advance() {
		if ch == Invalid {
			continue
		}
		r.buf.WriteRune(ch)
	}
	text := r.buf.String()
	typ := TString
	switch text[0] {
	case '+', '-', '.', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if ir.LiteralKind(text).Has(ir.NumericKinds) {
			typ = TNumber
		}
	}
	return Token{Type: typ, Pos: pos, Text: text}
}

func (r *Reader) quoted(pos Pos) (Token, error) {
	c := r.c
	q := c.Current()
	r.buf.Reset()
	for {
		ch := c.Advance()
		switch ch {
		case EOF:
			if err := c.Err(); err != nil {
				return Token{}, NewTokenizeErr(fmt.Errorf("%w: %w", ErrSource, err), c.Pos())
			}
			return Token{}, NewTokenizeErr(fmt.Errorf("%w string", ErrUnterminated), pos)
		case Invalid:
			continue
		case q:
			c.Advance()
			return Token{Type: TQuoted, Pos: pos, Text: r.buf.String()}, nil
		case '\\':
			if err := r.escape(); err != nil {
				return Token{}, err
			}
		default:
			r.buf.WriteRune(ch)
		}
	}
}

func (r *Reader) escape() error {
	c := r.c
	escPos := c.Pos()
	ch := c.Advance()
	switch ch {
	case '\\', '"', '\'', '/':
		r.buf.WriteRune(ch)
	case 'n':
		r.buf.WriteByte('\n')
	case 't':
		r.buf.WriteByte('\t')
	case 'r':
		r.buf.WriteByte('\r')
	case 'b':
		r.buf.WriteByte('\b')
	case 'f':
		r.buf.WriteByte('\f')
	case '0':
		r.buf.WriteByte(0)
	case 'u':
		u, err := r.hex4(escPos)
		if err != nil {
			return err
		}
		// unpaired surrogates read as U+FFFD
		for utf16.IsSurrogate(u) && c.Peek() == '\\' {
			c.Advance()
			if c.Peek() != 'u' {
				r.buf.WriteRune(utf8.RuneError)
				return r.escape()
			}
			c.Advance()
			lo, err := r.hex4(escPos)
			if err != nil {
				return err
			}
			if pair := utf16.DecodeRune(u, lo); pair != utf8.RuneError {
				u = pair
				break
			}
			r.buf.WriteRune(utf8.RuneError)
			u = lo
		}
		r.buf.WriteRune(u)
	case EOF:
		return NewTokenizeErr(fmt.Errorf("%w string", ErrUnterminated), escPos)
	default:
		return NewTokenizeErr(fmt.Errorf("%w \\%c", ErrBadEscape, ch), escPos)
	}
	return nil
}

func (r *Reader) hex4(pos Pos) (rune, error) {
	var u rune
	for range 4 {
		ch := r.c.Advance()
		switch {
		case ch >= '0' && ch <= '9':
			u = u<<4 | (ch - '0')
		case ch >= 'a' && ch <= 'f':
			u = u<<4 | (ch - 'a' + 10)
		case ch >= 'A' && ch <= 'F':
			u = u<<4 | (ch - 'A' + 10)
		default:
			return 0, NewTokenizeErr(ErrBadUnicode, pos)
		}
	}
	return u, nil
}
