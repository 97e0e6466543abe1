package token

import (
	"bufio"
	"bytes"
	"io"
	"unicode/utf8"
)

const (
	// EOF is returned by a Cursor at the end of input.
	EOF rune = -1
	// Invalid marks input that could not be decoded. It is never fatal by
	// itself; the Reader skips it.
	Invalid rune = -2
)

const bom = '\uFEFF'

// Cursor walks decoded code points with one code point of lookahead.
//
// Carriage returns are dropped and never surfaced. A newline moves the
// following code point to the next line, column 1. A Cursor is not safe
// for concurrent use.
type Cursor struct {
	src io.RuneReader
	err error

	cur, next       rune
	curPos, nextPos Pos

	// position of the next code point to be read from src
	readPos Pos
}

// NewCursor returns a cursor reading from src.
func NewCursor(src io.RuneReader) *Cursor {
	c := &Cursor{
		src:     src,
		readPos: Pos{Line: 1, Col: 1},
	}
	c.cur, c.curPos = c.read()
	if c.cur == bom && c.curPos.I == 0 {
		c.readPos.Col = 1
		c.cur, c.curPos = c.read()
	}
	c.next, c.nextPos = c.read()
	return c
}

// NewCursorBytes returns a cursor over UTF-8 encoded d.
func NewCursorBytes(d []byte) *Cursor {
	return NewCursor(bytes.NewReader(d))
}

// NewCursorReader returns a cursor over UTF-8 encoded text from r.
func NewCursorReader(r io.Reader) *Cursor {
	if rr, ok := r.(io.RuneReader); ok {
		return NewCursor(rr)
	}
	return NewCursor(bufio.NewReader(r))
}

func (c *Cursor) read() (rune, Pos) {
	for {
		if c.err != nil {
			return EOF, c.readPos
		}
		r, sz, err := c.src.ReadRune()
		if err != nil {
			if err != io.EOF {
				c.err = err
			} else {
				c.err = io.EOF
			}
			return EOF, c.readPos
		}
		pos := c.readPos
		c.readPos.I += sz
		if r == '\r' {
			continue
		}
		if r == '\n' {
			c.readPos.Line++
			c.readPos.Col = 1
		} else {
			c.readPos.Col++
		}
		if r == utf8.RuneError && sz == 1 {
			return Invalid, pos
		}
		return r, pos
	}
}

// Current returns the code point under the cursor.
func (c *Cursor) Current() rune {
	return c.cur
}

// Peek returns the code point after the current one.
func (c *Cursor) Peek() rune {
	return c.next
}

// Advance moves to the next code point and returns it.
func (c *Cursor) Advance() rune {
	if c.cur == EOF {
		return EOF
	}
	c.cur, c.curPos = c.next, c.nextPos
	if c.next != EOF {
		c.next, c.nextPos = c.read()
	}
	return c.cur
}

// SkipTo advances until the current code point is r or the input ends.
func (c *Cursor) SkipTo(r rune) rune {
	for c.cur != r && c.cur != EOF {
		c.Advance()
	}
	return c.cur
}

func (c *Cursor) Line() int {
	return c.curPos.Line
}

func (c *Cursor) Column() int {
	return c.curPos.Col
}

// Pos returns the position of the current code point.
func (c *Cursor) Pos() Pos {
	return c.curPos
}

// Err returns the first read error other than io.EOF.
func (c *Cursor) Err() error {
	if c.err == io.EOF {
		return nil
	}
	return c.err
}
