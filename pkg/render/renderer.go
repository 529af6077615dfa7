package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/vango-dev/vmount/pkg/host"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables indented output. Pretty output cannot be hydrated.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer serializes host trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders n and its subtree to an HTML string.
func (r *Renderer) RenderToString(n *host.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams n and its subtree to w.
func (r *Renderer) RenderToWriter(w io.Writer, n *host.Node) error {
	return r.renderNode(w, n, 0)
}

// RenderChildren streams the children of n to w without n itself.
func (r *Renderer) RenderChildren(w io.Writer, n *host.Node) error {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if err := r.renderNode(w, c, 0); err != nil {
			return err
		}
	}
	return nil
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, n *host.Node, depth int) error {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case host.KindElement:
		return r.renderElement(w, n, depth)
	case host.KindText:
		return r.renderText(w, n)
	case host.KindComment:
		return r.renderComment(w, n, depth)
	case host.KindDocument:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if err := r.renderNode(w, c, depth); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown node kind: %d", n.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, n *host.Node, depth int) error {
	tag := n.Tag

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, n); err != nil {
		return err
	}
	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	if isVoidElement(tag) {
		if r.config.Pretty {
			w.Write([]byte{'\n'})
		}
		return nil
	}

	hasBlockChildren := n.FirstChild() != nil && !isInlineElement(tag)
	if r.config.Pretty && hasBlockChildren {
		w.Write([]byte{'\n'})
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if err := r.renderNode(w, c, depth+1); err != nil {
			return err
		}
	}

	if r.config.Pretty && hasBlockChildren {
		r.writeIndent(w, depth)
	}
	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty {
		w.Write([]byte{'\n'})
	}
	return nil
}

// renderText writes text nodes so that a parser reads them back one for one:
// an empty comment separates adjacent text and stands in for empty text.
func (r *Renderer) renderText(w io.Writer, n *host.Node) error {
	prev := n.PrevSibling()
	if n.Data == "" || (prev != nil && prev.Kind == host.KindText && prev.Data != "") {
		if _, err := io.WriteString(w, "<!---->"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, escapeHTML(n.Data))
	return err
}

func (r *Renderer) renderComment(w io.Writer, n *host.Node, depth int) error {
	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}
	if _, err := fmt.Fprintf(w, "<!--%s-->", escapeComment(n.Data)); err != nil {
		return err
	}
	if r.config.Pretty {
		w.Write([]byte{'\n'})
	}
	return nil
}

// renderAttributes renders attributes in sorted order.
func (r *Renderer) renderAttributes(w io.Writer, n *host.Node) error {
	if len(n.Attrs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(n.Attrs))
	for key := range n.Attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := n.Attrs[key]

		if isBooleanAttr(key) {
			switch value {
			case "", "true", key:
				if _, err := fmt.Fprintf(w, " %s", key); err != nil {
					return err
				}
				continue
			case "false":
				continue
			}
		}

		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(value)); err != nil {
			return err
		}
	}
	return nil
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, r.config.Indent)
	}
}
