package mount

import "context"

// Unmount tears inst down: its delegated listeners, render scope and
// placeholder anchor. Unmounting an instance that is not mounted reports a
// double unmount and does nothing else.
func (r *Runtime) Unmount(inst *Instance) {
	_, span := r.startSpan(context.Background(), "vmount.unmount", nil)
	defer span.End()

	teardown, ok := r.tracker.Take(inst)
	if !ok {
		r.reporter.WarnDoubleUnmount()
		return
	}
	teardown()
}
