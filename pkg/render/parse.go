package render

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vango-dev/vmount/pkg/host"
)

// Parse reads an HTML fragment and appends its nodes to target.
// The fragment is parsed as if it were the content of a <body>.
func Parse(r io.Reader, doc *host.Document, target *host.Node) error {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, context)
	if err != nil {
		return fmt.Errorf("parse html fragment: %w", err)
	}
	for _, n := range nodes {
		if hn := convert(doc, n); hn != nil {
			doc.AppendChild(target, hn)
		}
	}
	return nil
}

// ParseDocument reads a complete HTML document and appends a <body> holding
// its body content to the root of doc.
func ParseDocument(r io.Reader, doc *host.Document) (*host.Node, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html document: %w", err)
	}
	src := findBody(root)
	if src == nil {
		return nil, fmt.Errorf("parse html document: no body")
	}

	body := doc.CreateElement("body")
	copyAttrs(body, src)
	for c := src.FirstChild; c != nil; c = c.NextSibling {
		if hn := convert(doc, c); hn != nil {
			doc.AppendChild(body, hn)
		}
	}
	doc.AppendChild(doc.Root(), body)
	return body, nil
}

func convert(doc *host.Document, n *html.Node) *host.Node {
	switch n.Type {
	case html.ElementNode:
		el := doc.CreateElement(n.Data)
		copyAttrs(el, n)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if hc := convert(doc, c); hc != nil {
				doc.AppendChild(el, hc)
			}
		}
		return el
	case html.TextNode:
		return doc.CreateText(n.Data)
	case html.CommentNode:
		return doc.CreateComment(n.Data)
	default:
		return nil
	}
}

func copyAttrs(dst *host.Node, src *html.Node) {
	for _, a := range src.Attr {
		key := a.Key
		if a.Namespace != "" {
			key = a.Namespace + ":" + a.Key
		}
		dst.SetAttr(key, a.Val)
	}
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
