// Package mount attaches components to a host tree and detaches them again.
//
// A Runtime owns the shared state for one host document: the hydrate
// cursor, the event delegation registry and the table of mounted instances.
// Components are plain Go values implementing Component; the runtime hands
// each render a Ctx for building nodes, declaring delegated events and
// reading context values.
//
// # Mount
//
//	rt := mount.New(doc)
//	inst, err := rt.Mount(Counter, mount.Options{
//	    Target: body,
//	    Props:  mount.Props{"start": 1},
//	})
//	...
//	rt.Unmount(inst)
//
// # Hydrate
//
// Hydrate reuses markup produced earlier (see package render). The target
// must contain a <!--[--> comment; the component claims the nodes after it
// and must finish exactly on the matching <!--]-->. On a mismatch the target
// is cleared and the component is mounted from scratch, unless
// Options.Recover is false, in which case an E041 error is returned.
//
// # Threading
//
// A Runtime is not safe for concurrent use. Mount, Hydrate, Unmount and
// event dispatch for one document must happen on one goroutine.
package mount
