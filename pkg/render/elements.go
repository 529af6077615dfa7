package render

import "golang.org/x/net/html/atom"

// isVoidElement reports whether tag has no children and no closing tag.
func isVoidElement(tag string) bool {
	switch atom.Lookup([]byte(tag)) {
	case atom.Area, atom.Base, atom.Br, atom.Col, atom.Embed, atom.Hr,
		atom.Img, atom.Input, atom.Link, atom.Meta, atom.Param,
		atom.Source, atom.Track, atom.Wbr:
		return true
	}
	return false
}

// isInlineElement reports whether tag keeps its children on one line in
// pretty output.
func isInlineElement(tag string) bool {
	switch atom.Lookup([]byte(tag)) {
	case atom.A, atom.Abbr, atom.B, atom.Bdi, atom.Bdo, atom.Br, atom.Button,
		atom.Cite, atom.Code, atom.Dfn, atom.Em, atom.I, atom.Kbd,
		atom.Label, atom.Mark, atom.Q, atom.S, atom.Samp, atom.Small,
		atom.Span, atom.Strong, atom.Sub, atom.Sup, atom.Time, atom.U,
		atom.Var, atom.Wbr:
		return true
	}
	return false
}

// booleanAttrs are written as a bare name when set to "", "true" or their
// own name, and omitted when set to "false". Components set these through
// Ctx.Open attribute pairs.
var booleanAttrs = map[string]bool{
	"autofocus": true,
	"checked":   true,
	"disabled":  true,
	"hidden":    true,
	"multiple":  true,
	"open":      true,
	"readonly":  true,
	"required":  true,
	"selected":  true,
}

func isBooleanAttr(name string) bool {
	return booleanAttrs[name]
}
