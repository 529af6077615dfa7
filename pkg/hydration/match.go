package hydration

import (
	"errors"
	"fmt"

	"github.com/vango-dev/vmount/pkg/host"
)

const (
	// Start is the payload of the comment that opens hydratable markup.
	Start = "["

	// End is the payload of the comment that closes hydratable markup.
	End = "]"

	// Separator is the payload of the empty comment written between
	// adjacent text nodes and in place of empty text.
	Separator = ""
)

// ErrHydration is returned when existing markup cannot be hydrated.
var ErrHydration = errors.New("hydration mismatch")

// IsStart reports whether n is a START marker.
func IsStart(n *host.Node) bool {
	return n != nil && n.Kind == host.KindComment && n.Data == Start
}

// IsEnd reports whether n is an END marker.
func IsEnd(n *host.Node) bool {
	return n != nil && n.Kind == host.KindComment && n.Data == End
}

// IsSeparator reports whether n is a text separator comment.
func IsSeparator(n *host.Node) bool {
	return n != nil && n.Kind == host.KindComment && n.Data == Separator
}

// FindStart returns the first START marker among target's children.
// Anything before the marker is skipped.
func FindStart(ops host.Ops, target *host.Node) (*host.Node, error) {
	n := ops.FirstChild(target)
	for n != nil && !IsStart(n) {
		n = ops.NextSibling(n)
	}
	if n == nil {
		return nil, fmt.Errorf("%w: no start marker in target", ErrHydration)
	}
	return n, nil
}

// CheckEnd verifies that the cursor finished on an END marker.
func (c *Cursor) CheckEnd() error {
	if IsEnd(c.node) {
		return nil
	}
	return fmt.Errorf("%w: expected end marker, found %s", ErrHydration, describe(c.node))
}

// Claim returns the node under the cursor if it has the given kind (and tag,
// for elements) and advances the cursor past it.
func (c *Cursor) Claim(ops host.Ops, kind host.Kind, tag string) (*host.Node, error) {
	n := c.node
	if n == nil || n.Kind != kind || (kind == host.KindElement && n.Tag != tag) {
		want := kind.String()
		if kind == host.KindElement {
			want = "<" + tag + ">"
		}
		return nil, fmt.Errorf("%w: expected %s, found %s", ErrHydration, want, describe(n))
	}
	c.node = ops.NextSibling(n)
	return n, nil
}

// ClaimText claims the text node under the cursor.
//
// A separator followed by text is skipped. A separator in any other
// position stands for an empty text node: ClaimText then returns a new,
// detached text node and the separator as the node it belongs before, and
// the caller inserts it.
func (c *Cursor) ClaimText(ops host.Ops, data string) (n, before *host.Node, err error) {
	if IsSeparator(c.node) {
		next := ops.NextSibling(c.node)
		if data == "" || next == nil || next.Kind != host.KindText {
			sep := c.node
			c.node = next
			return ops.CreateText(data), sep, nil
		}
		c.node = next
	}
	n, err = c.Claim(ops, host.KindText, "")
	return n, nil, err
}

func describe(n *host.Node) string {
	switch {
	case n == nil:
		return "nothing"
	case n.Kind == host.KindElement:
		return "<" + n.Tag + ">"
	case n.Kind == host.KindComment:
		return fmt.Sprintf("comment %q", n.Data)
	default:
		return n.Kind.String()
	}
}
