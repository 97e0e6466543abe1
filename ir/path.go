package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path renders the location of y from its root. Named children are
// addressed by name when they are the first child with that name,
// otherwise by index.
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	p := y.Parent
	if y.name != "" && p.Find(y.name) == y {
		return p.Path() + "." + pathString(y.name)
	}
	return p.Path() + "[" + strconv.Itoa(p.Index(y)) + "]"
}

type Path struct {
	Index *int
	Field *string
	Next  *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	for x != nil {
		if x.Field != nil {
			buf.WriteString("." + pathString(*x.Field))
		} else if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
		x = x.Next
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	err := parseFrag(p[1:], root)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	var rest string
	switch frag[0] {
	case '.':
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, err := strconv.Atoi(frag[1 : i+1])
		if err != nil {
			return fmt.Errorf("bad index %q: %w", frag[1:i+1], err)
		}
		if index < 0 {
			return fmt.Errorf("negative index %d", index)
		}
		parent.Index = &index
		rest = frag[i+2:]
	default:
		return fmt.Errorf("unexpected %q", frag[0])
	}
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		if i == 0 {
			return "", "", fmt.Errorf("empty field")
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			if escaped {
				res = append(res, c)
			}
			escaped = !escaped
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]\\") == -1 {
		return f
	}
	f = strings.ReplaceAll(f, "\\", "\\\\")
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// GetPath returns the node at yPath relative to y, or nil if a named
// step is not found.
func (y *Node) GetPath(yPath string) (*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	return y.getPath(yp)
}

func (y *Node) getPath(yp *Path) (*Node, error) {
	res := y
	for ; yp != nil; yp = yp.Next {
		switch {
		case yp.Index != nil:
			if !res.Kind().Has(CollectionKinds) {
				return nil, fmt.Errorf("%w: expected collection at %s, got %s", ErrPath, res.Path(), res.Kind())
			}
			index := *yp.Index
			if index >= len(res.children) {
				return nil, fmt.Errorf("%w: index out of bounds %d (len %d) at %s", ErrPath, index, len(res.children), res.Path())
			}
			res = res.children[index]
		case yp.Field != nil:
			if !res.Kind().Has(CollectionKinds) {
				return nil, fmt.Errorf("%w: expected collection at %s, got %s", ErrPath, res.Path(), res.Kind())
			}
			res = res.Find(*yp.Field)
			if res == nil {
				return nil, nil
			}
		}
	}
	return res, nil
}

// SetPath places v at yPath. The parent of the final step must exist. A
// final named step replaces the first child with that name, or appends v
// under that name; a final index step replaces the child at that index.
func (y *Node) SetPath(yPath string, v *Node) error {
	yp, err := ParsePath(yPath)
	if err != nil {
		return err
	}
	if yp.Field == nil && yp.Index == nil {
		return fmt.Errorf("%w: cannot set root", ErrPath)
	}
	var parentPath *Path
	last := yp
	if yp.Next != nil {
		parentPath = &Path{}
		cur := parentPath
		x := yp
		for ; x.Next != nil; x = x.Next {
			cur.Index, cur.Field = x.Index, x.Field
			if x.Next.Next != nil {
				cur.Next = &Path{}
				cur = cur.Next
			}
		}
		last = x
	}
	parent := y
	if parentPath != nil {
		parent, err = y.getPath(parentPath)
		if err != nil {
			return err
		}
		if parent == nil {
			return fmt.Errorf("%w: %s not found", ErrPath, parentPath)
		}
	}
	if !parent.Kind().Has(CollectionKinds) {
		return fmt.Errorf("%w: cannot set under %s at %s", ErrPath, parent.Kind(), parent.Path())
	}
	if last.Index != nil {
		if *last.Index >= len(parent.children) {
			return fmt.Errorf("%w: index out of bounds %d (len %d)", ErrPath, *last.Index, len(parent.children))
		}
		v.name = parent.children[*last.Index].name
		parent.Replace(*last.Index, v)
		return nil
	}
	v.name = *last.Field
	for i, c := range parent.children {
		if c.name == *last.Field {
			parent.Replace(i, v)
			return nil
		}
	}
	parent.Append(v)
	return nil
}
