package patch

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"slices"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/vscript/debug"
	"github.com/signadot/vscript/encode"
	"github.com/signadot/vscript/format"
	"github.com/signadot/vscript/ir"
	"github.com/signadot/vscript/parse"
)

var ErrPatch = errors.New("patch failed")

// Apply applies the RFC 6902 patch in JSON form to doc and returns the
// result. doc is not modified.
func Apply(doc *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("json patch with %d ops on %s\n", len(ops), doc.Path())
	}
	d, err := MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return fromJSON(doc, out)
}

// ApplyNode is Apply with the patch given as a tree. The patch must
// project to a JSON array, as a node of nameless operation nodes does:
//
//	{ op = replace, path = "/server/port", value = 9090 }
//	{ op = remove, path = "/server/tags/0" }
func ApplyNode(doc, patch *ir.Node) (*ir.Node, error) {
	d, err := MarshalJSON(patch)
	if err != nil {
		return nil, err
	}
	return Apply(doc, d)
}

// Merge applies the RFC 7386 merge patch in JSON form to doc.
func Merge(doc *ir.Node, patch []byte) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("merge patch %v on %s\n", patch, doc.Path())
	}
	d, err := MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return fromJSON(doc, out)
}

func MergeNode(doc, patch *ir.Node) (*ir.Node, error) {
	d, err := MarshalJSON(patch)
	if err != nil {
		return nil, err
	}
	return Merge(doc, d)
}

// CreateMerge returns the merge patch turning from into to.
func CreateMerge(from, to *ir.Node) (*ir.Node, error) {
	fd, err := MarshalJSON(from)
	if err != nil {
		return nil, err
	}
	td, err := MarshalJSON(to)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.CreateMergePatch(fd, td)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return fromJSON(to, out)
}

// MarshalJSON returns the JSON projection of y.
func MarshalJSON(y *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(y, buf, encode.EncodeFormat(format.JSONFormat)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fromJSON(orig *ir.Node, d []byte) (*ir.Node, error) {
	res, err := parse.Parse(d, parse.ParseJSON())
	if err != nil {
		return nil, err
	}
	restoreOrder(orig, res)
	return res, nil
}

// restoreOrder sorts the members of objects in y that also exist in orig
// into orig's order. Members unknown to orig go last, in their current
// order.
func restoreOrder(orig, y *ir.Node) {
	ak, yk := orig.Kind(), y.Kind()
	if !ak.IsCollection() || !yk.IsCollection() {
		return
	}
	if ak == ir.NodeKind && yk == ir.NodeKind {
		rank := map[string]int{}
		for i, c := range orig.Children() {
			if _, seen := rank[c.Name()]; !seen && c.Name() != "" {
				rank[c.Name()] = i
			}
		}
		key := func(c *ir.Node) int {
			if i, found := rank[c.Name()]; found {
				return i
			}
			return orig.Len()
		}
		cs := y.Children()
		slices.SortStableFunc(cs, func(a, b *ir.Node) int {
			return cmp.Compare(key(a), key(b))
		})
		for y.Len() > 0 {
			y.Remove(y.Len() - 1)
		}
		y.Append(cs...)
		for _, c := range cs {
			if c.Name() == "" {
				continue
			}
			if oc := orig.Find(c.Name()); oc != nil {
				restoreOrder(oc, c)
			}
		}
		return
	}
	n := min(orig.Len(), y.Len())
	for i := range n {
		restoreOrder(orig.Child(i), y.Child(i))
	}
}
