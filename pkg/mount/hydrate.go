package mount

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/vango-dev/vmount/internal/errors"
	"github.com/vango-dev/vmount/pkg/hydration"
)

// Hydrate attaches comp to markup already present in opts.Target.
//
// On a mismatch the target is cleared and comp is mounted from scratch,
// unless recovery is disabled, in which case an E041 error wrapping
// hydration.ErrHydration is returned and the target is left as it was.
func (r *Runtime) Hydrate(comp Component, opts Options) (*Instance, error) {
	return r.HydrateContext(context.Background(), comp, opts)
}

// HydrateContext is Hydrate with a context for tracing.
func (r *Runtime) HydrateContext(ctx context.Context, comp Component, opts Options) (inst *Instance, err error) {
	if opts.Target == nil {
		return nil, ErrInvalidTarget
	}

	ctx, span := r.startSpan(ctx, "vmount.hydrate", opts.Target)
	defer func() { endSpan(span, err) }()

	r.ops.Init()
	intro := boolOr(opts.Intro, false)
	canRecover := boolOr(opts.Recover, r.recover)

	g := r.cursor.Save()
	defer g.Restore()

	start := time.Now()
	inst, err = r.hydrate(ctx, comp, opts, intro)
	if err == nil {
		r.metrics.mounts.WithLabelValues("hydrate").Inc()
		r.metrics.duration.WithLabelValues("hydrate").Observe(time.Since(start).Seconds())
		r.logger.Debug("component hydrated", "instance", inst.id)
		return inst, nil
	}
	if !stderrors.Is(err, hydration.ErrHydration) {
		return nil, err
	}

	if !canRecover {
		r.metrics.mismatches.WithLabelValues("failed").Inc()
		return nil, r.reporter.ErrorHydrationFailed(err)
	}

	r.metrics.mismatches.WithLabelValues("recovered").Inc()
	r.logger.Warn("hydration failed, mounting from scratch", "error", err)

	// Setup may not have completed before the failure.
	r.ops.Init()
	r.ops.ClearContent(opts.Target)
	r.cursor.Exit()

	opts.Anchor = nil
	opts.Intro = Bool(intro)
	return r.MountContext(ctx, comp, opts)
}

func (r *Runtime) hydrate(ctx context.Context, comp Component, opts Options, intro bool) (*Instance, error) {
	start, err := hydration.FindStart(r.ops, opts.Target)
	if err != nil {
		return nil, errors.New("E042").Wrap(err)
	}

	prevPending := r.pending
	r.pending = nil
	defer func() { r.pending = prevPending }()

	r.cursor.Enter(start)
	r.cursor.Next(r.ops)

	opts.Anchor = start
	inst, keepNodes, err := r.mount(ctx, comp, opts, intro)
	if err != nil {
		return nil, err
	}

	if err := r.cursor.CheckEnd(); err != nil {
		r.reporter.WarnHydrationMismatch(err)
		r.discard(inst, keepNodes)
		return nil, err
	}

	r.cursor.Exit()
	for _, fn := range r.pending {
		fn()
	}
	return inst, nil
}
