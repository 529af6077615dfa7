package delegate

import "github.com/vango-dev/vmount/pkg/host"

// Propagate runs delegated handlers for ev from its target up to current.
//
// An event bubbling through a container listener and then the document
// listener reaches Propagate twice. The event remembers the highest node
// already walked so the second pass resumes above it.
func Propagate(ev *host.Event, current *host.Node) {
	start := ev.Target
	if done := ev.Delegated(); done != nil {
		if done == current || !current.Contains(done) {
			return
		}
		start = done.Parent()
	}

	for n := start; n != nil; n = n.Parent() {
		if fn := n.Handler(ev.Name); fn != nil {
			fn(ev)
			if ev.Stopped() {
				ev.MarkDelegated(current)
				return
			}
		}
		if n == current {
			break
		}
	}
	ev.MarkDelegated(current)
}
