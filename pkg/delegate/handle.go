package delegate

import "github.com/vango-dev/vmount/pkg/host"

// Handle is one mount's view of the Registry. It remembers which names the
// mount registered so each is counted once and released once.
type Handle struct {
	reg       *Registry
	container *host.Node
	listener  *host.Listener

	seen   map[string]struct{}
	order  []string
	closed bool
}

// Container returns the node the handle's listeners are attached to.
func (h *Handle) Container() *host.Node {
	return h.container
}

// Names returns the names registered by this handle, in registration order.
func (h *Handle) Names() []string {
	return append([]string(nil), h.order...)
}

// Register attaches listeners for every name not yet seen by this handle.
func (h *Handle) Register(names ...string) {
	if h.closed {
		return
	}
	ops := h.reg.ops
	for _, name := range names {
		if _, ok := h.seen[name]; ok {
			continue
		}
		h.seen[name] = struct{}{}
		h.order = append(h.order, name)

		ops.AddEventListener(h.container, name, h.listener, ops.Passive(name))
		h.reg.acquire(name)
	}
}

// Close removes the handle's container listeners, releases its document
// references and drops it from the root handle set. Close is idempotent.
func (h *Handle) Close() {
	if h.closed {
		return
	}
	h.closed = true

	ops := h.reg.ops
	for _, name := range h.order {
		ops.RemoveEventListener(h.container, name, h.listener)
		h.reg.release(name)
	}
	h.seen = nil
	h.order = nil
	h.reg.drop(h)
}

// Closed reports whether Close has run.
func (h *Handle) Closed() bool {
	return h.closed
}
