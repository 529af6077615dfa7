package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/vmount/pkg/host"
	"github.com/vango-dev/vmount/pkg/mount"
	"github.com/vango-dev/vmount/pkg/render"
)

// Harness is a host document with a <body> and a runtime bound to it.
type Harness struct {
	T       testing.TB
	Doc     *host.Document
	Body    *host.Node
	Runtime *mount.Runtime
}

// New creates a Harness with a fresh document and runtime.
func New(t testing.TB, opts ...mount.Option) *Harness {
	t.Helper()
	doc := host.NewDocument()
	body := doc.CreateElement("body")
	doc.AppendChild(doc.Root(), body)
	return &Harness{
		T:       t,
		Doc:     doc,
		Body:    body,
		Runtime: mount.New(doc, opts...),
	}
}

// Unmount unmounts inst and checks that it was mounted.
func (h *Harness) Unmount(inst *mount.Instance) {
	h.T.Helper()
	if !h.Runtime.Mounted(inst) {
		h.T.Errorf("Unmount: instance is not mounted")
		return
	}
	h.Runtime.Unmount(inst)
}

// Find returns the first element under the body with the given tag.
func (h *Harness) Find(tag string) *host.Node {
	return find(h.Body, func(n *host.Node) bool { return n.Tag == tag })
}

// FindAttr returns the first element under the body whose attr equals value.
func (h *Harness) FindAttr(attr, value string) *host.Node {
	return find(h.Body, func(n *host.Node) bool { return n.Attrs[attr] == value })
}

// Click dispatches a click at n.
func (h *Harness) Click(n *host.Node) {
	h.T.Helper()
	h.Dispatch(n, "click", nil)
}

// Dispatch fires name at n and lets it bubble.
func (h *Harness) Dispatch(n *host.Node, name string, detail any) *host.Event {
	h.T.Helper()
	if n == nil {
		h.T.Fatalf("Dispatch(%s): nil target", name)
	}
	return h.Doc.Dispatch(n, name, detail)
}

// HTML returns the serialized children of the body.
func (h *Harness) HTML() string {
	return RenderToString(h.Body)
}

// RenderToString returns the HTML of n's children.
func RenderToString(n *host.Node) string {
	var b strings.Builder
	if err := render.NewRenderer(render.RendererConfig{}).RenderChildren(&b, n); err != nil {
		return ""
	}
	return b.String()
}

// ExpectContains asserts that the rendered children of n contain expected.
func ExpectContains(t testing.TB, n *host.Node, expected string) {
	t.Helper()
	html := RenderToString(n)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that the rendered children of n do not contain
// unexpected.
func ExpectNotContains(t testing.TB, n *host.Node, unexpected string) {
	t.Helper()
	html := RenderToString(n)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that an element with tag exists under n.
func ExpectElement(t testing.TB, n *host.Node, tag string) {
	t.Helper()
	if find(n, func(c *host.Node) bool { return c.Tag == tag }) == nil {
		t.Errorf("expected a <%s> element, got:\n%s", tag, truncate(RenderToString(n), 500))
	}
}

// ExpectAttribute asserts that an element under n has attr set to value.
func ExpectAttribute(t testing.TB, n *host.Node, attr, value string) {
	t.Helper()
	if find(n, func(c *host.Node) bool { return c.Attrs[attr] == value }) == nil {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(RenderToString(n), 500))
	}
}

func find(n *host.Node, match func(*host.Node) bool) *host.Node {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Kind == host.KindElement && match(c) {
			return c
		}
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
