package render

import (
	"bytes"

	"github.com/vango-dev/vmount/pkg/host"
	"github.com/vango-dev/vmount/pkg/hydration"
	"github.com/vango-dev/vmount/pkg/mount"
)

// Markup renders comp into a detached <div> holding a START marker, the
// component output and an END marker. The returned tree carries no
// listeners or handlers; import it into a document with
// host.Document.ImportChildren before hydrating.
func Markup(comp mount.Component, props mount.Props, opts ...mount.Option) (*host.Node, error) {
	doc := host.NewDocument()
	container := doc.CreateElement("div")
	doc.AppendChild(doc.Root(), container)
	doc.AppendChild(container, doc.CreateComment(hydration.Start))
	end := doc.CreateComment(hydration.End)
	doc.AppendChild(container, end)

	rt := mount.New(doc, opts...)
	inst, err := rt.Mount(comp, mount.Options{
		Target: container,
		Anchor: end,
		Props:  props,
		Intro:  mount.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	out := doc.Import(container)
	rt.Unmount(inst)
	return out, nil
}

// HTML renders comp to an HTML string suitable for hydration.
func HTML(comp mount.Component, props mount.Props, opts ...mount.Option) (string, error) {
	container, err := Markup(comp, props, opts...)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := NewRenderer(RendererConfig{}).RenderChildren(&buf, container); err != nil {
		return "", err
	}
	return buf.String(), nil
}
