package scope

import (
	"sync"
	"sync/atomic"

	"github.com/vango-dev/vmount/pkg/host"
)

// Owner is a render scope. Disposing an Owner disposes its children,
// effects and cleanups.
type Owner struct {
	id     uint64
	parent *Owner

	mu       sync.Mutex
	children []*Owner
	effects  []*Effect
	cleanups []func()

	// NodesStart and NodesEnd bound the host nodes this scope rendered.
	// For hydrated scopes NodesEnd is the node the hydrate cursor stopped on.
	NodesStart *host.Node
	NodesEnd   *host.Node

	disposed atomic.Bool
}

// NewOwner creates an Owner registered as a child of parent.
// A nil parent creates a root Owner.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{id: nextID(), parent: parent}
	if parent != nil {
		parent.addChild(o)
	}
	return o
}

// ID returns the unique identifier for this Owner.
func (o *Owner) ID() uint64 {
	return o.id
}

// Parent returns the parent Owner, or nil for a root.
func (o *Owner) Parent() *Owner {
	return o.parent
}

// IsDisposed reports whether Dispose has run.
func (o *Owner) IsDisposed() bool {
	return o.disposed.Load()
}

// Children returns a snapshot of the child Owners.
func (o *Owner) Children() []*Owner {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]*Owner(nil), o.children...)
}

func (o *Owner) addChild(child *Owner) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.children = append(o.children, child)
}

func (o *Owner) removeChild(child *Owner) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

// OnCleanup registers fn to run when the Owner is disposed.
// On a disposed Owner fn runs immediately.
func (o *Owner) OnCleanup(fn func()) {
	if o.disposed.Load() {
		fn()
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cleanups = append(o.cleanups, fn)
}

// Dispose tears the Owner down. It is safe to call more than once.
func (o *Owner) Dispose() {
	if o.disposed.Swap(true) {
		return
	}

	if o.parent != nil {
		o.parent.removeChild(o)
	}

	o.mu.Lock()
	children := o.children
	effects := o.effects
	cleanups := o.cleanups
	o.children, o.effects, o.cleanups = nil, nil, nil
	o.mu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}
	for i := len(effects) - 1; i >= 0; i-- {
		effects[i].dispose()
	}
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}

// Root runs fn in a new root Owner and returns its disposer. The cleanup
// fn returns runs before the root's own teardown. If fn fails the root is
// disposed immediately and the error is returned.
func Root(fn func(root *Owner) (func(), error)) (dispose func(), err error) {
	root := NewOwner(nil)
	teardown, err := fn(root)
	if err != nil {
		root.Dispose()
		return nil, err
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			if teardown != nil {
				teardown()
			}
			root.Dispose()
		})
	}, nil
}

// Branch runs fn in a new child Owner of parent. If fn fails the branch is
// disposed before the error is returned.
func Branch(parent *Owner, fn func(branch *Owner) error) (*Owner, error) {
	b := NewOwner(parent)
	if err := fn(b); err != nil {
		b.Dispose()
		return nil, err
	}
	return b, nil
}
