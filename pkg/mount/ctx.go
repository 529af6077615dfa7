package mount

import (
	"context"

	"github.com/vango-dev/vmount/pkg/host"
	"github.com/vango-dev/vmount/pkg/scope"
)

// Ctx is handed to a component while it renders.
//
// Node-building methods (Open, Close, Text, Comment) create nodes on a fresh
// mount and claim existing nodes in order while hydrating, so a component
// renders the same way in both modes.
type Ctx struct {
	rt     *Runtime
	std    context.Context
	owner  *scope.Owner
	frame  *scope.Frame
	props  Props
	anchor *host.Node
	b      *builder
	err    error
}

type openNode struct {
	node   *host.Node
	resume *host.Node
}

// builder tracks where the next node goes and the range of top-level
// nodes placed so far.
type builder struct {
	anchor *host.Node
	open   []openNode
	first  *host.Node
	last   *host.Node
}

// StdContext returns the context passed to Mount or Hydrate.
func (c *Ctx) StdContext() context.Context {
	return c.std
}

// Owner returns the render scope of the component.
func (c *Ctx) Owner() *scope.Owner {
	return c.owner
}

// Ops returns the host operations.
func (c *Ctx) Ops() host.Ops {
	return c.rt.ops
}

// Anchor returns the node this component's content is placed before.
func (c *Ctx) Anchor() *host.Node {
	return c.anchor
}

// Props returns the component's props.
func (c *Ctx) Props() Props {
	return c.props
}

// Hydrating reports whether the component is claiming existing nodes.
func (c *Ctx) Hydrating() bool {
	return c.rt.cursor.Active()
}

// Intro reports whether intro transitions should play for this render.
func (c *Ctx) Intro() bool {
	return c.rt.intro
}

// Err returns the first node-building error, if any. Components usually
// return it from Render.
func (c *Ctx) Err() error {
	return c.err
}

// Open places an element and makes it the parent of subsequent nodes until
// the matching Close.
func (c *Ctx) Open(tag string, attrs ...string) *host.Node {
	if c.err != nil {
		return nil
	}
	ops := c.rt.ops

	if c.Hydrating() {
		n, err := c.rt.cursor.Claim(ops, host.KindElement, tag)
		if err != nil {
			c.fail(err)
			return nil
		}
		c.b.open = append(c.b.open, openNode{node: n, resume: c.rt.cursor.Node()})
		c.rt.cursor.Set(ops.FirstChild(n))
		return n
	}

	n := ops.CreateElement(tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		n.SetAttr(attrs[i], attrs[i+1])
	}
	c.place(n)
	c.b.open = append(c.b.open, openNode{node: n})
	return n
}

// Close ends the element started by the last Open.
func (c *Ctx) Close() {
	if c.err != nil || len(c.b.open) == 0 {
		return
	}
	top := c.b.open[len(c.b.open)-1]
	c.b.open = c.b.open[:len(c.b.open)-1]
	if c.Hydrating() {
		c.rt.cursor.Set(top.resume)
	}
}

// Text places a text node. While hydrating, differing text is patched
// rather than treated as a mismatch. Patches and text nodes recreated from
// separators are applied only once the whole pass has matched.
func (c *Ctx) Text(data string) *host.Node {
	if c.err != nil {
		return nil
	}
	ops := c.rt.ops

	if c.Hydrating() {
		n, before, err := c.rt.cursor.ClaimText(ops, data)
		if err != nil {
			c.fail(err)
			return nil
		}
		switch {
		case before != nil:
			c.rt.pend(func() { ops.InsertBefore(before, n) })
		case n.Data != data:
			c.rt.pend(func() { n.Data = data })
		}
		return n
	}

	n := ops.CreateText(data)
	c.place(n)
	return n
}

// Comment places a comment node.
func (c *Ctx) Comment(data string) *host.Node {
	if c.err != nil {
		return nil
	}
	ops := c.rt.ops

	if c.Hydrating() {
		n, err := c.rt.cursor.Claim(ops, host.KindComment, "")
		if err != nil {
			c.fail(err)
			return nil
		}
		return n
	}

	n := ops.CreateComment(data)
	c.place(n)
	return n
}

func (c *Ctx) place(n *host.Node) {
	ops := c.rt.ops
	if len(c.b.open) > 0 {
		ops.AppendChild(c.b.open[len(c.b.open)-1].node, n)
		return
	}
	ops.InsertBefore(c.b.anchor, n)
	if c.b.first == nil {
		c.b.first = n
	}
	c.b.last = n
}

func (c *Ctx) fail(err error) {
	c.err = err
	c.rt.reporter.WarnHydrationMismatch(err)
}

// On installs a delegated handler for name on n and declares name as a
// delegated event.
func (c *Ctx) On(n *host.Node, name string, fn func(*host.Event)) {
	if n == nil {
		return
	}
	n.SetHandler(name, fn)
	c.rt.events.Delegate(name)
}

// Delegate declares names as delegated events.
func (c *Ctx) Delegate(names ...string) {
	c.rt.events.Delegate(names...)
}

// Dispatch invokes the user-level callback registered under name through
// Options.Events. It reports whether a callback ran.
func (c *Ctx) Dispatch(name string, detail any) bool {
	events, _ := c.props[EventsKey].(Events)
	fn := events[name]
	if fn == nil {
		return false
	}
	fn(detail)
	return true
}

// Context looks key up in the component's context frames.
func (c *Ctx) Context(key any) (any, bool) {
	return c.frame.Get(key)
}

// SetContext stores a context value visible to this component's children.
func (c *Ctx) SetContext(key, value any) {
	c.frame.Set(key, value)
}

// OnCleanup registers fn to run when the component is torn down.
func (c *Ctx) OnCleanup(fn func()) {
	c.owner.OnCleanup(fn)
}

// Effect runs fn now and ties its cleanup to the component's lifetime.
func (c *Ctx) Effect(fn func() scope.Cleanup) *scope.Effect {
	return c.owner.Effect(fn)
}

// Child renders comp inline at the current position in its own branch scope.
// The child finishes rendering before Child returns.
func (c *Ctx) Child(comp Component, props Props) (Exports, error) {
	if c.err != nil {
		return nil, c.err
	}
	if props == nil {
		props = Props{}
	}

	var exports Exports
	_, err := scope.Branch(c.owner, func(branch *scope.Owner) error {
		child := &Ctx{
			rt:     c.rt,
			std:    c.std,
			owner:  branch,
			frame:  scope.NewFrame(c.frame),
			props:  props,
			anchor: c.anchor,
			b:      c.b,
		}
		if c.Hydrating() {
			branch.NodesStart = c.rt.cursor.Node()
		}

		var err error
		exports, err = comp.Render(child, c.anchor, props)
		if err == nil {
			err = child.err
		}
		if err != nil {
			return err
		}
		if c.Hydrating() {
			branch.NodesEnd = c.rt.cursor.Node()
		}
		return nil
	})
	if err != nil {
		if c.err == nil {
			c.err = err
		}
		return nil, err
	}
	if exports == nil {
		exports = Exports{}
	}
	return exports, nil
}

// Mount mounts an independent component, for example into a portal target.
// The nested instance is unmounted together with this component.
func (c *Ctx) Mount(comp Component, opts Options) (*Instance, error) {
	prev := c.rt.frames.Swap(c.frame)
	inst, err := c.rt.MountContext(c.std, comp, opts)
	c.rt.frames.Swap(prev)
	if err != nil {
		return nil, err
	}
	c.owner.OnCleanup(func() {
		if c.rt.Mounted(inst) {
			c.rt.Unmount(inst)
		}
	})
	return inst, nil
}
