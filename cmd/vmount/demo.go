package main

import (
	"strconv"

	"github.com/vango-dev/vmount/pkg/host"
	"github.com/vango-dev/vmount/pkg/mount"
)

// counter is the demo component:
//
//	<div class="counter"><button>-</button><span>N</span><button>+</button></div>
var counter = mount.ComponentFunc(func(c *mount.Ctx, _ *host.Node, props mount.Props) (mount.Exports, error) {
	count, _ := props["start"].(int)

	c.Open("div", "class", "counter")
	dec := c.Open("button", "type", "button", "data-action", "dec")
	c.Text("-")
	c.Close()
	c.Open("span")
	label := c.Text(strconv.Itoa(count))
	c.Close()
	inc := c.Open("button", "type", "button", "data-action", "inc")
	c.Text("+")
	c.Close()
	c.Close()

	set := func(n int) {
		count = n
		label.Data = strconv.Itoa(count)
		c.Dispatch("change", count)
	}
	c.On(dec, "click", func(*host.Event) { set(count - 1) })
	c.On(inc, "click", func(*host.Event) { set(count + 1) })

	return mount.Exports{
		"count": func() int { return count },
	}, c.Err()
})

// findAction returns the first element under n with data-action=action.
func findAction(n *host.Node, action string) *host.Node {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Kind == host.KindElement && c.Attrs["data-action"] == action {
			return c
		}
		if found := findAction(c, action); found != nil {
			return found
		}
	}
	return nil
}
