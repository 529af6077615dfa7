package mount

import "github.com/vango-dev/vmount/pkg/host"

// EventsKey is the reserved props key holding Options.Events.
const EventsKey = "$$events"

// Props is the property bag passed to a component.
type Props map[string]any

// Exports holds the bindings a component exposes to its caller.
type Exports map[string]any

// Events maps user-level callback names to handlers.
type Events map[string]func(detail any)

// Component renders into the host tree at anchor and returns its exports.
type Component interface {
	Render(c *Ctx, anchor *host.Node, props Props) (Exports, error)
}

// ComponentFunc adapts a function to Component.
type ComponentFunc func(c *Ctx, anchor *host.Node, props Props) (Exports, error)

// Render implements Component.
func (f ComponentFunc) Render(c *Ctx, anchor *host.Node, props Props) (Exports, error) {
	return f(c, anchor, props)
}

// Instance is a mounted component. It is the handle passed to Unmount.
type Instance struct {
	id      uint64
	rt      *Runtime
	exports Exports
}

// Runtime returns the runtime that mounted the instance.
func (i *Instance) Runtime() *Runtime {
	return i.rt
}

// ID returns a runtime-unique identifier for the instance.
func (i *Instance) ID() uint64 {
	return i.id
}

// Exports returns the component's exported bindings. It is never nil.
func (i *Instance) Exports() Exports {
	return i.exports
}

// Get returns a single exported binding.
func (i *Instance) Get(name string) any {
	return i.exports[name]
}
