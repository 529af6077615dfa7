package host

import "sync"

// Ops is the set of host tree operations the mount runtime relies on.
type Ops interface {
	// Init performs one-time setup. It is safe to call repeatedly.
	Init()

	// Root returns the document node, the outer listener scope.
	Root() *Node

	// CreatePlaceholder creates an empty text node used as an insertion point.
	CreatePlaceholder() *Node
	CreateElement(tag string) *Node
	CreateText(data string) *Node
	CreateComment(data string) *Node

	FirstChild(n *Node) *Node
	NextSibling(n *Node) *Node

	// ClearContent removes every child of n.
	ClearContent(n *Node)

	AppendChild(parent, child *Node)

	// InsertBefore inserts child before anchor in anchor's parent.
	InsertBefore(anchor, child *Node)

	// Remove detaches n from its parent.
	Remove(n *Node)

	AddEventListener(target *Node, name string, l *Listener, passive bool)
	RemoveEventListener(target *Node, name string, l *Listener)

	// Passive reports whether listeners for the named event are attached in
	// passive mode.
	Passive(name string) bool
}

// passiveEvents are the events whose listeners never cancel default actions.
var passiveEvents = map[string]bool{
	"touchstart": true,
	"touchmove":  true,
}

// Document is the in-memory host tree.
type Document struct {
	root *Node

	initOnce  sync.Once
	ready     bool
	initCalls int
}

var _ Ops = (*Document)(nil)

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{root: &Node{Kind: KindDocument}}
}

// Init implements Ops.
func (d *Document) Init() {
	d.initCalls++
	d.initOnce.Do(func() {
		d.ready = true
	})
}

// Initialized reports whether Init has run.
func (d *Document) Initialized() bool {
	return d.ready
}

// InitCalls returns how many times Init was called.
func (d *Document) InitCalls() int {
	return d.initCalls
}

// Root implements Ops.
func (d *Document) Root() *Node {
	return d.root
}

// CreatePlaceholder implements Ops.
func (d *Document) CreatePlaceholder() *Node {
	return &Node{Kind: KindText}
}

// CreateElement implements Ops.
func (d *Document) CreateElement(tag string) *Node {
	return &Node{Kind: KindElement, Tag: tag}
}

// CreateText implements Ops.
func (d *Document) CreateText(data string) *Node {
	return &Node{Kind: KindText, Data: data}
}

// CreateComment implements Ops.
func (d *Document) CreateComment(data string) *Node {
	return &Node{Kind: KindComment, Data: data}
}

// FirstChild implements Ops.
func (d *Document) FirstChild(n *Node) *Node {
	return n.FirstChild()
}

// NextSibling implements Ops.
func (d *Document) NextSibling(n *Node) *Node {
	return n.NextSibling()
}

// ClearContent implements Ops.
func (d *Document) ClearContent(n *Node) {
	if n == nil {
		return
	}
	for c := n.firstChild; c != nil; {
		next := c.next
		c.parent, c.prev, c.next = nil, nil, nil
		c = next
	}
	n.firstChild, n.lastChild = nil, nil
}

// AppendChild implements Ops.
func (d *Document) AppendChild(parent, child *Node) {
	parent.appendChild(child)
}

// InsertBefore implements Ops.
func (d *Document) InsertBefore(anchor, child *Node) {
	if anchor.parent == nil {
		return
	}
	anchor.parent.insertBefore(child, anchor)
}

// Remove implements Ops.
func (d *Document) Remove(n *Node) {
	if n != nil {
		n.detach()
	}
}

// AddEventListener implements Ops.
// Adding the same listener twice for the same name is a no-op.
func (d *Document) AddEventListener(target *Node, name string, l *Listener, passive bool) {
	for _, e := range target.listeners {
		if e.name == name && e.listener == l {
			return
		}
	}
	target.listeners = append(target.listeners, listenerEntry{name: name, listener: l, passive: passive})
}

// RemoveEventListener implements Ops.
func (d *Document) RemoveEventListener(target *Node, name string, l *Listener) {
	for i, e := range target.listeners {
		if e.name == name && e.listener == l {
			target.listeners = append(target.listeners[:i], target.listeners[i+1:]...)
			return
		}
	}
}

// Passive implements Ops.
func (d *Document) Passive(name string) bool {
	return passiveEvents[name]
}

// ListenerCount returns the number of listeners attached to n for name.
func (d *Document) ListenerCount(n *Node, name string) int {
	count := 0
	for _, e := range n.listeners {
		if e.name == name {
			count++
		}
	}
	return count
}

// IsPassiveListener reports whether l is attached to n for name in passive mode.
func (d *Document) IsPassiveListener(n *Node, name string, l *Listener) bool {
	for _, e := range n.listeners {
		if e.name == name && e.listener == l {
			return e.passive
		}
	}
	return false
}

// Dispatch fires an event at target and bubbles it to the document root.
// Listeners attached during dispatch are not invoked for this event.
func (d *Document) Dispatch(target *Node, name string, detail any) *Event {
	ev := &Event{Name: name, Target: target, Detail: detail}
	for n := target; n != nil && !ev.stopped; n = n.parent {
		entries := append([]listenerEntry(nil), n.listeners...)
		for _, e := range entries {
			if e.name != name {
				continue
			}
			e.listener.handle(ev, n)
			if ev.stopped {
				break
			}
		}
	}
	return ev
}

// Import deep-copies n (attributes, text and children) into a new detached
// subtree. Listeners and delegated handlers are not copied.
func (d *Document) Import(n *Node) *Node {
	if n == nil {
		return nil
	}
	cp := &Node{Kind: n.Kind, Tag: n.Tag, Data: n.Data}
	if n.Kind == KindDocument {
		cp.Kind = KindElement
		cp.Tag = "body"
	}
	if len(n.Attrs) > 0 {
		cp.Attrs = make(map[string]string, len(n.Attrs))
		for k, v := range n.Attrs {
			cp.Attrs[k] = v
		}
	}
	for c := n.firstChild; c != nil; c = c.next {
		cp.appendChild(d.Import(c))
	}
	return cp
}

// ImportChildren copies every child of src into dst.
func (d *Document) ImportChildren(dst, src *Node) {
	for c := src.FirstChild(); c != nil; c = c.NextSibling() {
		dst.appendChild(d.Import(c))
	}
}
