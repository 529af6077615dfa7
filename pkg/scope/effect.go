package scope

// Cleanup is returned by an effect body and runs before the next run or on
// disposal.
type Cleanup func()

// Effect is a side effect owned by a scope.
type Effect struct {
	id       uint64
	fn       func() Cleanup
	cleanup  Cleanup
	disposed bool
}

// Effect creates an effect owned by o and runs it once.
func (o *Owner) Effect(fn func() Cleanup) *Effect {
	e := &Effect{id: nextID(), fn: fn}
	if o.disposed.Load() {
		return e
	}
	o.mu.Lock()
	o.effects = append(o.effects, e)
	o.mu.Unlock()

	e.Run()
	return e
}

// ID returns the unique identifier for this effect.
func (e *Effect) ID() uint64 {
	return e.id
}

// Run re-runs the effect, calling the previous cleanup first.
func (e *Effect) Run() {
	if e.disposed {
		return
	}
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
	e.cleanup = e.fn()
}

// Disposed reports whether the owning scope tore the effect down.
func (e *Effect) Disposed() bool {
	return e.disposed
}

func (e *Effect) dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
}
