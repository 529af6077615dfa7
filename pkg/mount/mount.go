package mount

import (
	"context"
	"sort"
	"time"

	"github.com/vango-dev/vmount/internal/errors"
	"github.com/vango-dev/vmount/pkg/host"
	"github.com/vango-dev/vmount/pkg/scope"
)

// ErrInvalidTarget is returned when Options.Target is nil.
var ErrInvalidTarget = errors.New("E060")

// Mount renders comp into opts.Target and returns the mounted instance.
func (r *Runtime) Mount(comp Component, opts Options) (*Instance, error) {
	return r.MountContext(context.Background(), comp, opts)
}

// MountContext is Mount with a context for tracing.
func (r *Runtime) MountContext(ctx context.Context, comp Component, opts Options) (inst *Instance, err error) {
	if opts.Target == nil {
		return nil, ErrInvalidTarget
	}

	ctx, span := r.startSpan(ctx, "vmount.mount", opts.Target)
	defer func() { endSpan(span, err) }()

	// A plain mount never hydrates, even when nested inside a hydration pass.
	g := r.cursor.Save()
	defer g.Restore()
	r.cursor.Exit()

	start := time.Now()
	r.ops.Init()
	inst, _, err = r.mount(ctx, comp, opts, boolOr(opts.Intro, true))
	if err != nil {
		return nil, err
	}

	r.metrics.mounts.WithLabelValues("mount").Inc()
	r.metrics.duration.WithLabelValues("mount").Observe(time.Since(start).Seconds())
	r.logger.Debug("component mounted", "instance", inst.id)
	return inst, nil
}

// mount is the routine shared by Mount and Hydrate. opts.Anchor must be set
// when hydrating. The returned keep function makes a later teardown leave
// the rendered nodes in place.
func (r *Runtime) mount(ctx context.Context, comp Component, opts Options, intro bool) (*Instance, func(), error) {
	target := opts.Target

	// Listeners go in before the component body runs so that no event fired
	// during the initial render is missed.
	handle := r.events.Open(target)
	if len(opts.Events) > 0 {
		handle.Register(sortedKeys(opts.Events)...)
	}

	anchor := opts.Anchor
	created := false
	var (
		inst *Instance
		body *scope.Owner
		b    = &builder{anchor: anchor}
		keep bool
	)

	dispose, err := scope.Root(func(root *scope.Owner) (func(), error) {
		if anchor == nil {
			anchor = r.ops.CreatePlaceholder()
			r.ops.AppendChild(target, anchor)
			created = true
			b.anchor = anchor
		}

		var err error
		body, err = scope.Branch(root, func(branch *scope.Owner) error {
			frame := scope.NewFrame(r.frames.Current())
			if opts.Context != nil {
				frame = r.frames.Push(opts.Context)
				defer r.frames.Pop()
			}

			props := make(Props, len(opts.Props)+1)
			for k, v := range opts.Props {
				props[k] = v
			}
			if opts.Events != nil {
				props[EventsKey] = opts.Events
			}

			if r.cursor.Active() {
				branch.NodesStart = anchor
			}

			prevIntro := r.intro
			r.intro = intro
			defer func() { r.intro = prevIntro }()

			c := &Ctx{
				rt:     r,
				std:    ctx,
				owner:  branch,
				frame:  frame,
				props:  props,
				anchor: anchor,
				b:      b,
			}
			exports, err := comp.Render(c, anchor, props)
			if err == nil {
				err = c.err
			}
			if err != nil {
				return err
			}
			if exports == nil {
				exports = Exports{}
			}
			inst = &Instance{id: r.nextID.Add(1), rt: r, exports: exports}

			if r.cursor.Active() {
				branch.NodesEnd = r.cursor.Node()
			} else {
				branch.NodesStart, branch.NodesEnd = c.b.first, c.b.last
			}
			return nil
		})
		if err != nil {
			return nil, err
		}

		return func() {
			handle.Close()
			if !keep && body.NodesStart != nil {
				removeRange(r.ops, body.NodesStart, body.NodesEnd)
			}
			if created {
				r.ops.Remove(anchor)
			}
		}, nil
	})
	if err != nil {
		// Unwind whatever the failed attempt registered or placed.
		handle.Close()
		if b.first != nil {
			removeRange(r.ops, b.first, b.last)
		}
		if created {
			r.ops.Remove(anchor)
		}
		return nil, nil, err
	}

	id := inst.id
	r.tracker.Track(inst, func() {
		dispose()
		r.metrics.unmounts.Inc()
		r.logger.Debug("component unmounted", "instance", id)
	})
	return inst, func() { keep = true }, nil
}

// discard tears down an instance that was mounted but must not be returned,
// leaving the host tree as the attempt found it.
func (r *Runtime) discard(inst *Instance, keepNodes func()) {
	keepNodes()
	if teardown, ok := r.tracker.Take(inst); ok {
		teardown()
	}
}

// removeRange removes start and its following siblings up to and including end.
func removeRange(ops host.Ops, start, end *host.Node) {
	for n := start; n != nil; {
		next := ops.NextSibling(n)
		ops.Remove(n)
		if n == end {
			return
		}
		n = next
	}
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func sortedKeys(events Events) []string {
	names := make([]string, 0, len(events))
	for name := range events {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
