package hydration

import "github.com/vango-dev/vmount/pkg/host"

// Cursor tracks whether hydration is active and the next node to claim.
type Cursor struct {
	active bool
	node   *host.Node
}

// Active reports whether hydration mode is on.
func (c *Cursor) Active() bool {
	return c.active
}

// Node returns the current hydrate node.
func (c *Cursor) Node() *host.Node {
	return c.node
}

// Set moves the cursor to n.
func (c *Cursor) Set(n *host.Node) {
	c.node = n
}

// Enter activates hydration with the cursor on n.
func (c *Cursor) Enter(n *host.Node) {
	c.active = true
	c.node = n
}

// Exit deactivates hydration. The position is left untouched.
func (c *Cursor) Exit() {
	c.active = false
}

// Next advances the cursor to the next sibling and returns it.
func (c *Cursor) Next(ops host.Ops) *host.Node {
	c.node = ops.NextSibling(c.node)
	return c.node
}

// Guard is a saved cursor state.
type Guard struct {
	c      *Cursor
	active bool
	node   *host.Node
}

// Save captures the current state so it can be restored later.
func (c *Cursor) Save() Guard {
	return Guard{c: c, active: c.active, node: c.node}
}

// Restore puts the cursor back to the saved state.
func (g Guard) Restore() {
	if g.c == nil {
		return
	}
	g.c.active = g.active
	g.c.node = g.node
}
