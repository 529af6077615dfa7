package delegate

import (
	"sort"
	"sync"

	"github.com/vango-dev/vmount/pkg/host"
)

// Observer is notified whenever the document-scope count for an event changes.
type Observer func(name string, count int)

// Registry is the shared event registration table for one host document.
type Registry struct {
	ops host.Ops

	mu       sync.Mutex
	counts   map[string]int
	known    map[string]struct{}
	handles  map[*Handle]struct{}
	document *host.Listener
	observer Observer
}

// NewRegistry creates a Registry over ops.
func NewRegistry(ops host.Ops) *Registry {
	return &Registry{
		ops:      ops,
		counts:   make(map[string]int),
		known:    make(map[string]struct{}),
		handles:  make(map[*Handle]struct{}),
		document: host.NewListener(Propagate),
	}
}

// SetObserver installs fn as the count observer.
func (r *Registry) SetObserver(fn Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observer = fn
}

// Count returns the number of live mounts interested in name.
func (r *Registry) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[name]
}

// Attached reports whether the document listener for name is attached.
func (r *Registry) Attached(name string) bool {
	return r.Count(name) > 0
}

// Listeners returns the number of event names with an attached document listener.
func (r *Registry) Listeners() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.counts)
}

// Handles returns the number of live mount handles.
func (r *Registry) Handles() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handles)
}

// Known returns every globally delegated event name, sorted.
func (r *Registry) Known() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.knownLocked()
}

func (r *Registry) knownLocked() []string {
	names := make([]string, 0, len(r.known))
	for name := range r.known {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DocumentListener returns the listener shared by every mount at the
// document scope.
func (r *Registry) DocumentListener() *host.Listener {
	return r.document
}

// Delegate declares names as delegated events. Every live mount handle
// registers the new names, and future mounts register them on open.
func (r *Registry) Delegate(names ...string) {
	r.mu.Lock()
	for _, name := range names {
		r.known[name] = struct{}{}
	}
	handles := make([]*Handle, 0, len(r.handles))
	for h := range r.handles {
		handles = append(handles, h)
	}
	r.mu.Unlock()

	for _, h := range handles {
		h.Register(names...)
	}
}

// Open creates the handle for a new mount on container, registers every
// known event name for it and adds it to the root handle set.
func (r *Registry) Open(container *host.Node) *Handle {
	h := &Handle{
		reg:       r,
		container: container,
		seen:      make(map[string]struct{}),
	}
	h.listener = host.NewListener(Propagate)

	r.mu.Lock()
	known := r.knownLocked()
	r.handles[h] = struct{}{}
	r.mu.Unlock()

	h.Register(known...)
	return h
}

// acquire increments the document count and attaches the document listener
// on the first reference.
func (r *Registry) acquire(name string) {
	r.mu.Lock()
	n := r.counts[name] + 1
	r.counts[name] = n
	observer := r.observer
	r.mu.Unlock()

	if n == 1 {
		r.ops.AddEventListener(r.ops.Root(), name, r.document, r.ops.Passive(name))
	}
	if observer != nil {
		observer(name, n)
	}
}

// release decrements the document count and detaches the document listener
// when the last reference goes away.
func (r *Registry) release(name string) {
	r.mu.Lock()
	n := r.counts[name] - 1
	if n <= 0 {
		n = 0
		delete(r.counts, name)
	} else {
		r.counts[name] = n
	}
	observer := r.observer
	r.mu.Unlock()

	if n == 0 {
		r.ops.RemoveEventListener(r.ops.Root(), name, r.document)
	}
	if observer != nil {
		observer(name, n)
	}
}

func (r *Registry) drop(h *Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handles, h)
}
