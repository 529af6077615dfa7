package host

// Kind is the node type discriminator.
type Kind uint8

const (
	KindDocument Kind = iota // Tree root, the outer listener scope
	KindElement              // <div>, <button>, etc.
	KindText                 // Plain text node
	KindComment              // Comment node, used for boundary markers
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "Document"
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComment:
		return "Comment"
	default:
		return "Unknown"
	}
}

// Node is a handle into the host tree.
type Node struct {
	Kind  Kind
	Tag   string            // Element tag name
	Data  string            // Text or comment payload
	Attrs map[string]string // Element attributes

	parent     *Node
	firstChild *Node
	lastChild  *Node
	prev       *Node
	next       *Node

	listeners []listenerEntry
	handlers  map[string]func(*Event)
}

type listenerEntry struct {
	name     string
	listener *Listener
	passive  bool
}

// Parent returns the parent node, or nil for detached nodes and the document.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// FirstChild returns the first child of n.
func (n *Node) FirstChild() *Node {
	if n == nil {
		return nil
	}
	return n.firstChild
}

// LastChild returns the last child of n.
func (n *Node) LastChild() *Node {
	if n == nil {
		return nil
	}
	return n.lastChild
}

// NextSibling returns the sibling after n.
func (n *Node) NextSibling() *Node {
	if n == nil {
		return nil
	}
	return n.next
}

// PrevSibling returns the sibling before n.
func (n *Node) PrevSibling() *Node {
	if n == nil {
		return nil
	}
	return n.prev
}

// Children returns a snapshot of the children of n.
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.FirstChild(); c != nil; c = c.next {
		out = append(out, c)
	}
	return out
}

// Contains reports whether other is n or a descendant of n.
func (n *Node) Contains(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// TextContent returns the concatenated text of n and its descendants.
// Comments are skipped.
func (n *Node) TextContent() string {
	if n == nil {
		return ""
	}
	if n.Kind == KindText {
		return n.Data
	}
	var s string
	for c := n.firstChild; c != nil; c = c.next {
		s += c.TextContent()
	}
	return s
}

// SetAttr sets an element attribute.
func (n *Node) SetAttr(key, value string) {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
}

// SetHandler installs a delegated handler for the named event on this node.
// Delegated handlers are not listeners: they are only reached when a
// delegated listener on an ancestor walks the event path.
func (n *Node) SetHandler(name string, fn func(*Event)) {
	if fn == nil {
		delete(n.handlers, name)
		return
	}
	if n.handlers == nil {
		n.handlers = make(map[string]func(*Event))
	}
	n.handlers[name] = fn
}

// Handler returns the delegated handler for the named event, if any.
func (n *Node) Handler(name string) func(*Event) {
	if n == nil {
		return nil
	}
	return n.handlers[name]
}

func (n *Node) appendChild(child *Node) {
	child.detach()
	child.parent = n
	child.prev = n.lastChild
	if n.lastChild != nil {
		n.lastChild.next = child
	} else {
		n.firstChild = child
	}
	n.lastChild = child
}

func (n *Node) insertBefore(child, ref *Node) {
	if ref == nil || ref.parent != n {
		n.appendChild(child)
		return
	}
	child.detach()
	child.parent = n
	child.next = ref
	child.prev = ref.prev
	if ref.prev != nil {
		ref.prev.next = child
	} else {
		n.firstChild = child
	}
	ref.prev = child
}

func (n *Node) detach() {
	p := n.parent
	if p == nil {
		return
	}
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		p.firstChild = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		p.lastChild = n.prev
	}
	n.parent, n.prev, n.next = nil, nil, nil
}
