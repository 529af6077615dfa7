package mount

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/vango-dev/vmount/pkg/host"
	"github.com/vango-dev/vmount/pkg/hydration"
)

// counter renders <button class="counter">N</button> and counts clicks.
var counter = ComponentFunc(func(c *Ctx, anchor *host.Node, props Props) (Exports, error) {
	count, _ := props["start"].(int)

	btn := c.Open("button", "class", "counter")
	label := c.Text(fmt.Sprint(count))
	c.Close()

	c.On(btn, "click", func(*host.Event) {
		count++
		label.Data = fmt.Sprint(count)
		c.Dispatch("change", count)
	})

	return Exports{
		"count": func() int { return count },
	}, c.Err()
})

// empty renders nothing and exports nothing.
var empty = ComponentFunc(func(*Ctx, *host.Node, Props) (Exports, error) {
	return nil, nil
})

type recordingReporter struct {
	doubleUnmounts int
	mismatches     []error
	failures       []error
}

func (r *recordingReporter) WarnDoubleUnmount() { r.doubleUnmounts++ }

func (r *recordingReporter) WarnHydrationMismatch(err error) {
	r.mismatches = append(r.mismatches, err)
}

func (r *recordingReporter) ErrorHydrationFailed(err error) error {
	r.failures = append(r.failures, err)
	return fmt.Errorf("hydration failed: %w", err)
}

func newTestRuntime(t *testing.T, opts ...Option) (*Runtime, *host.Document, *host.Node) {
	t.Helper()
	doc := host.NewDocument()
	body := doc.CreateElement("body")
	doc.AppendChild(doc.Root(), body)
	return New(doc, opts...), doc, body
}

// serverRender renders comp into target the way the server does: wrapped in
// START and END markers, with no listeners left on doc.
func serverRender(t *testing.T, doc *host.Document, target *host.Node, comp Component, props Props) {
	t.Helper()

	ssr := host.NewDocument()
	container := ssr.CreateElement("div")
	ssr.AppendChild(ssr.Root(), container)
	ssr.AppendChild(container, ssr.CreateComment(hydration.Start))
	end := ssr.CreateComment(hydration.End)
	ssr.AppendChild(container, end)

	if _, err := New(ssr).Mount(comp, Options{Target: container, Anchor: end, Props: props}); err != nil {
		t.Fatalf("server render: %v", err)
	}
	doc.ImportChildren(target, container)
}

// dump serializes the children of n for comparisons.
func dump(n *host.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		dumpNode(&b, c)
	}
	return b.String()
}

func dumpNode(b *strings.Builder, n *host.Node) {
	switch n.Kind {
	case host.KindText:
		if n.Data == "" {
			b.WriteString("#empty")
		} else {
			b.WriteString(n.Data)
		}
	case host.KindComment:
		fmt.Fprintf(b, "<!--%s-->", n.Data)
	case host.KindElement:
		b.WriteString("<" + n.Tag)
		keys := make([]string, 0, len(n.Attrs))
		for k := range n.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(b, " %s=%s", k, n.Attrs[k])
		}
		b.WriteString(">")
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			dumpNode(b, c)
		}
		b.WriteString("</" + n.Tag + ">")
	}
}

func click(doc *host.Document, n *host.Node) {
	doc.Dispatch(n, "click", nil)
}

func findTag(n *host.Node, tag string) *host.Node {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Kind == host.KindElement && c.Tag == tag {
			return c
		}
		if found := findTag(c, tag); found != nil {
			return found
		}
	}
	return nil
}
