package hydration

import (
	"errors"
	"testing"

	"github.com/vango-dev/vmount/pkg/host"
)

func markup(doc *host.Document, nodes ...*host.Node) *host.Node {
	target := doc.CreateElement("div")
	doc.AppendChild(doc.Root(), target)
	for _, n := range nodes {
		doc.AppendChild(target, n)
	}
	return target
}

func TestFindStart(t *testing.T) {
	doc := host.NewDocument()
	start := doc.CreateComment(Start)
	target := markup(doc,
		doc.CreateText("leading"),
		doc.CreateComment("not a marker"),
		doc.CreateElement("script"),
		start,
		doc.CreateComment(End),
	)

	got, err := FindStart(doc, target)
	if err != nil {
		t.Fatalf("FindStart() error = %v", err)
	}
	if got != start {
		t.Error("FindStart() returned the wrong node")
	}
}

func TestFindStartMissing(t *testing.T) {
	tests := []struct {
		name  string
		nodes func(doc *host.Document) []*host.Node
	}{
		{"empty", func(*host.Document) []*host.Node { return nil }},
		{"only end", func(doc *host.Document) []*host.Node {
			return []*host.Node{doc.CreateComment(End)}
		}},
		{"start as text", func(doc *host.Document) []*host.Node {
			return []*host.Node{doc.CreateText(Start)}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := host.NewDocument()
			target := markup(doc, tt.nodes(doc)...)
			_, err := FindStart(doc, target)
			if !errors.Is(err, ErrHydration) {
				t.Errorf("FindStart() error = %v, want ErrHydration", err)
			}
		})
	}
}

func TestCheckEnd(t *testing.T) {
	doc := host.NewDocument()
	var c Cursor

	if err := c.CheckEnd(); !errors.Is(err, ErrHydration) {
		t.Errorf("empty cursor: err = %v, want ErrHydration", err)
	}

	c.Set(doc.CreateComment(Start))
	if err := c.CheckEnd(); !errors.Is(err, ErrHydration) {
		t.Errorf("wrong token: err = %v, want ErrHydration", err)
	}

	c.Set(doc.CreateText(End))
	if err := c.CheckEnd(); !errors.Is(err, ErrHydration) {
		t.Errorf("wrong kind: err = %v, want ErrHydration", err)
	}

	c.Set(doc.CreateComment(End))
	if err := c.CheckEnd(); err != nil {
		t.Errorf("end marker: err = %v, want nil", err)
	}
}

func TestClaim(t *testing.T) {
	doc := host.NewDocument()
	p := doc.CreateElement("p")
	txt := doc.CreateText("hello")
	end := doc.CreateComment(End)
	markup(doc, p, txt, end)

	var c Cursor
	c.Enter(p)

	got, err := c.Claim(doc, host.KindElement, "p")
	if err != nil || got != p {
		t.Fatalf("Claim(p) = %v, %v", got, err)
	}
	if c.Node() != txt {
		t.Error("cursor should advance to the text node")
	}

	if _, err := c.Claim(doc, host.KindElement, "span"); !errors.Is(err, ErrHydration) {
		t.Errorf("Claim(span) error = %v, want ErrHydration", err)
	}
	if c.Node() != txt {
		t.Error("failed claim should not move the cursor")
	}

	if _, err := c.Claim(doc, host.KindText, ""); err != nil {
		t.Fatalf("Claim(text) error = %v", err)
	}
	if err := c.CheckEnd(); err != nil {
		t.Errorf("CheckEnd() = %v, want nil", err)
	}
}

func TestClaimText(t *testing.T) {
	doc := host.NewDocument()
	hello := doc.CreateText("Hello, ")
	sep := doc.CreateComment(Separator)
	world := doc.CreateText("world")
	empty := doc.CreateComment(Separator)
	end := doc.CreateComment(End)
	markup(doc, hello, sep, world, empty, end)

	var c Cursor
	c.Enter(hello)

	got, before, err := c.ClaimText(doc, "Hello, ")
	if err != nil || got != hello || before != nil {
		t.Fatalf("ClaimText(hello) = %v, %v, %v", got, before, err)
	}
	got, before, err = c.ClaimText(doc, "world")
	if err != nil || got != world || before != nil {
		t.Fatalf("ClaimText(world) = %v, %v, %v", got, before, err)
	}

	got, before, err = c.ClaimText(doc, "")
	if err != nil {
		t.Fatalf("ClaimText(empty) error = %v", err)
	}
	if before != empty || got.Parent() != nil || got.Kind != host.KindText {
		t.Error("empty text should be a new node placed before its separator")
	}
	if err := c.CheckEnd(); err != nil {
		t.Errorf("CheckEnd() = %v, want nil", err)
	}
}

func TestClaimTextMismatch(t *testing.T) {
	doc := host.NewDocument()
	span := doc.CreateElement("span")
	markup(doc, span, doc.CreateComment(End))

	var c Cursor
	c.Enter(span)
	if _, _, err := c.ClaimText(doc, "x"); !errors.Is(err, ErrHydration) {
		t.Errorf("ClaimText() error = %v, want ErrHydration", err)
	}
}

func TestGuardRestores(t *testing.T) {
	doc := host.NewDocument()
	outer := doc.CreateComment(Start)
	inner := doc.CreateComment(Start)

	var c Cursor
	c.Enter(outer)

	func() {
		g := c.Save()
		defer g.Restore()

		c.Exit()
		c.Set(inner)
		if c.Active() {
			t.Error("cursor should be inactive inside the guarded section")
		}
	}()

	if !c.Active() {
		t.Error("Restore should reactivate hydration")
	}
	if c.Node() != outer {
		t.Error("Restore should put the cursor back on the outer node")
	}
}

func TestGuardRestoresOnPanic(t *testing.T) {
	var c Cursor

	func() {
		defer func() { _ = recover() }()
		g := c.Save()
		defer g.Restore()
		c.Enter(host.NewDocument().CreateComment(Start))
		panic("boom")
	}()

	if c.Active() || c.Node() != nil {
		t.Error("cursor should be restored after a panic")
	}
}

func TestZeroGuardRestoreIsNoop(t *testing.T) {
	var g Guard
	g.Restore()
}
