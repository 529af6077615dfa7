package render

import (
	"strings"
	"testing"

	"github.com/vango-dev/vmount/pkg/host"
)

func TestParse(t *testing.T) {
	doc := host.NewDocument()
	body := doc.CreateElement("body")
	doc.AppendChild(doc.Root(), body)

	src := `<p>lead</p><!--[--><button class="x" disabled>0</button><!--]-->`
	if err := Parse(strings.NewReader(src), doc, body); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	kinds := []host.Kind{}
	for c := body.FirstChild(); c != nil; c = c.NextSibling() {
		kinds = append(kinds, c.Kind)
	}
	want := []host.Kind{host.KindElement, host.KindComment, host.KindElement, host.KindComment}
	if len(kinds) != len(want) {
		t.Fatalf("parsed %d nodes, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("node %d kind = %v, want %v", i, kinds[i], want[i])
		}
	}

	btn := body.FirstChild().NextSibling().NextSibling()
	if btn.Attrs["class"] != "x" {
		t.Errorf("class = %q, want x", btn.Attrs["class"])
	}
	if _, ok := btn.Attrs["disabled"]; !ok {
		t.Error("disabled attribute should be kept")
	}

	got, err := NewRenderer(RendererConfig{}).RenderToString(btn)
	if err != nil {
		t.Fatal(err)
	}
	if got != `<button class="x" disabled>0</button>` {
		t.Errorf("re-rendered = %s", got)
	}
}

func TestParseDocument(t *testing.T) {
	doc := host.NewDocument()
	src := "<!DOCTYPE html><html><head><title>t</title></head><body id=\"b\"><!--[--><em>x</em><!--]--></body></html>"

	body, err := ParseDocument(strings.NewReader(src), doc)
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if body.Parent() != doc.Root() {
		t.Error("body should be appended to the document root")
	}
	if body.Attrs["id"] != "b" {
		t.Errorf("id = %q, want b", body.Attrs["id"])
	}
	if body.FirstChild().Data != "[" || body.LastChild().Data != "]" {
		t.Error("markers should survive parsing")
	}
}
