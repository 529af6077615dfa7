package vtest

import (
	"github.com/vango-dev/vmount/pkg/mount"
	"github.com/vango-dev/vmount/pkg/render"
)

// MountBuilder allows fluent construction of a mount.
type MountBuilder struct {
	h        *Harness
	comp     mount.Component
	opts     mount.Options
	hydrated bool
}

// Mount starts building a mount of comp into the harness body.
func (h *Harness) Mount(comp mount.Component) *MountBuilder {
	return &MountBuilder{
		h:    h,
		comp: comp,
		opts: mount.Options{Target: h.Body},
	}
}

// WithProp sets a prop.
func (b *MountBuilder) WithProp(key string, value any) *MountBuilder {
	if b.opts.Props == nil {
		b.opts.Props = mount.Props{}
	}
	b.opts.Props[key] = value
	return b
}

// WithContext sets a context value visible to the component.
func (b *MountBuilder) WithContext(key, value any) *MountBuilder {
	if b.opts.Context == nil {
		b.opts.Context = make(map[any]any)
	}
	b.opts.Context[key] = value
	return b
}

// WithEvent registers a user-level callback.
func (b *MountBuilder) WithEvent(name string, fn func(detail any)) *MountBuilder {
	if b.opts.Events == nil {
		b.opts.Events = mount.Events{}
	}
	b.opts.Events[name] = fn
	return b
}

// Hydrated makes Do server-render the component and hydrate the markup
// instead of mounting from scratch. A mismatch fails the test.
func (b *MountBuilder) Hydrated() *MountBuilder {
	b.hydrated = true
	return b
}

// Do performs the mount and fails the test on error.
func (b *MountBuilder) Do() *mount.Instance {
	b.h.T.Helper()

	if !b.hydrated {
		inst, err := b.h.Runtime.Mount(b.comp, b.opts)
		if err != nil {
			b.h.T.Fatalf("Mount: %v", err)
		}
		return inst
	}

	markup, err := render.Markup(b.comp, copyProps(b.opts.Props))
	if err != nil {
		b.h.T.Fatalf("render markup: %v", err)
	}
	b.h.Doc.ImportChildren(b.opts.Target, markup)

	opts := b.opts
	opts.Recover = mount.Bool(false)
	inst, err := b.h.Runtime.Hydrate(b.comp, opts)
	if err != nil {
		b.h.T.Fatalf("Hydrate: %v", err)
	}
	return inst
}

func copyProps(p mount.Props) mount.Props {
	cp := make(mount.Props, len(p))
	for k, v := range p {
		cp[k] = v
	}
	return cp
}
