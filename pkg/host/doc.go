// Package host provides the host tree that components are mounted into.
//
// The host tree is an in-memory model of a rendered document: element, text
// and comment nodes linked as siblings under a single document root. The
// mount runtime never creates or walks nodes directly; it goes through the
// small Ops interface so the tree can be swapped for another environment.
//
// # Listeners
//
// Listeners are attached per node and per event name. A Listener is compared
// by pointer identity, so removing one listener never detaches another
// listener registered for the same name on the same node:
//
//	l := host.NewListener(func(ev *host.Event, current *host.Node) { ... })
//	doc.AddEventListener(container, "click", l, false)
//	doc.Dispatch(button, "click", nil)
//	doc.RemoveEventListener(container, "click", l)
//
// Dispatch bubbles from the target through every ancestor up to the document.
package host
