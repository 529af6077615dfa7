// Package hydration matches component output against markup that already
// exists in the host tree.
//
// Server-rendered markup is delimited by two comment markers:
//
//	<!--[--> ...component output... <!--]-->
//
// A hydration pass finds the START marker among the target's children,
// activates the Cursor just past it, lets the component claim existing
// nodes in order, and finally checks that the cursor sits exactly on the
// END marker. Any other outcome is a mismatch reported as ErrHydration.
//
// The Cursor is shared by every mount on a runtime. Callers take a Guard
// before touching it and restore the guard on every exit path:
//
//	g := cursor.Save()
//	defer g.Restore()
package hydration
