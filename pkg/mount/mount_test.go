package mount

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	vmerrors "github.com/vango-dev/vmount/internal/errors"
	"github.com/vango-dev/vmount/pkg/host"
	"github.com/vango-dev/vmount/pkg/scope"
)

func TestMountEmptyComponent(t *testing.T) {
	rt, _, body := newTestRuntime(t)

	inst, err := rt.Mount(empty, Options{Target: body, Props: Props{"x": 1}})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}

	if inst.Exports() == nil || len(inst.Exports()) != 0 {
		t.Errorf("Exports() = %v, want empty non-nil map", inst.Exports())
	}
	children := body.Children()
	if len(children) != 1 {
		t.Fatalf("target has %d children, want 1", len(children))
	}
	if children[0].Kind != host.KindText || children[0].Data != "" {
		t.Error("the new child should be an empty placeholder")
	}
	if !rt.Mounted(inst) {
		t.Error("instance should be mounted")
	}
}

func TestMountRendersBeforePlaceholder(t *testing.T) {
	rt, _, body := newTestRuntime(t)

	inst, err := rt.Mount(counter, Options{Target: body, Props: Props{"start": 3}})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}

	if got := dump(body); got != "<button class=counter>3</button>#empty" {
		t.Errorf("body = %s", got)
	}

	rt.Unmount(inst)
	if got := dump(body); got != "" {
		t.Errorf("body after unmount = %q, want empty", got)
	}
}

func TestMountExplicitAnchor(t *testing.T) {
	rt, doc, body := newTestRuntime(t)
	anchor := doc.CreateElement("hr")
	doc.AppendChild(body, anchor)

	inst, err := rt.Mount(counter, Options{Target: body, Anchor: anchor})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if got := dump(body); got != "<button class=counter>0</button><hr></hr>" {
		t.Errorf("body = %s", got)
	}

	rt.Unmount(inst)
	if got := dump(body); got != "<hr></hr>" {
		t.Errorf("explicit anchor should survive unmount, body = %s", got)
	}
}

func TestMountNilTarget(t *testing.T) {
	rt, _, _ := newTestRuntime(t)

	_, err := rt.Mount(empty, Options{})
	if !vmerrors.HasCode(err, "E060") {
		t.Errorf("Mount() error = %v, want E060", err)
	}
	if _, err := rt.Hydrate(empty, Options{}); !vmerrors.HasCode(err, "E060") {
		t.Errorf("Hydrate() error = %v, want E060", err)
	}
}

func TestMountInitializesHost(t *testing.T) {
	rt, doc, body := newTestRuntime(t)
	if _, err := rt.Mount(empty, Options{Target: body}); err != nil {
		t.Fatal(err)
	}
	if !doc.Initialized() {
		t.Error("Mount should initialize host operations")
	}
}

func TestMountEventsProp(t *testing.T) {
	rt, doc, body := newTestRuntime(t)

	var changes []any
	inst, err := rt.Mount(counter, Options{
		Target: body,
		Events: Events{"change": func(d any) { changes = append(changes, d) }},
	})
	if err != nil {
		t.Fatal(err)
	}

	click(doc, findTag(body, "button"))
	click(doc, findTag(body, "button"))

	if fmt.Sprint(changes) != "[1 2]" {
		t.Errorf("changes = %v, want [1 2]", changes)
	}
	count := inst.Get("count").(func() int)
	if count() != 2 {
		t.Errorf("count() = %d, want 2", count())
	}
}

func TestMountEventsPropKey(t *testing.T) {
	rt, _, body := newTestRuntime(t)

	var seen Props
	comp := ComponentFunc(func(c *Ctx, _ *host.Node, props Props) (Exports, error) {
		seen = props
		return nil, nil
	})

	events := Events{"done": func(any) {}}
	if _, err := rt.Mount(comp, Options{Target: body, Events: events}); err != nil {
		t.Fatal(err)
	}
	if _, ok := seen[EventsKey].(Events); !ok {
		t.Errorf("props[%q] should hold the events", EventsKey)
	}
	if rt.Events().Count("done") != 1 {
		t.Error("event option names should be registered")
	}
}

func TestMountContext(t *testing.T) {
	rt, _, body := newTestRuntime(t)

	var childTheme, childLang any
	child := ComponentFunc(func(c *Ctx, _ *host.Node, _ Props) (Exports, error) {
		childTheme, _ = c.Context("theme")
		childLang, _ = c.Context("lang")
		return nil, nil
	})
	parent := ComponentFunc(func(c *Ctx, _ *host.Node, _ Props) (Exports, error) {
		c.SetContext("lang", "en")
		_, err := c.Child(child, nil)
		return nil, err
	})

	_, err := rt.Mount(parent, Options{Target: body, Context: map[any]any{"theme": "dark"}})
	if err != nil {
		t.Fatal(err)
	}
	if childTheme != "dark" || childLang != "en" {
		t.Errorf("child saw theme=%v lang=%v, want dark en", childTheme, childLang)
	}
	if rt.frames.Current() != nil {
		t.Error("context frame should be popped after mount")
	}
}

func TestMountWithoutContextHasNoValues(t *testing.T) {
	rt, _, body := newTestRuntime(t)

	found := true
	comp := ComponentFunc(func(c *Ctx, _ *host.Node, _ Props) (Exports, error) {
		_, found = c.Context("theme")
		return nil, nil
	})
	if _, err := rt.Mount(comp, Options{Target: body}); err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("no context value should be visible")
	}
}

func TestIntroFlag(t *testing.T) {
	rt, doc, body := newTestRuntime(t)
	portal := doc.CreateElement("aside")
	doc.AppendChild(doc.Root(), portal)

	var outerBefore, inner, outerAfter bool
	innerComp := ComponentFunc(func(c *Ctx, _ *host.Node, _ Props) (Exports, error) {
		inner = c.Intro()
		return nil, nil
	})
	outerComp := ComponentFunc(func(c *Ctx, _ *host.Node, _ Props) (Exports, error) {
		outerBefore = c.Intro()
		if _, err := c.Mount(innerComp, Options{Target: portal, Intro: Bool(false)}); err != nil {
			return nil, err
		}
		outerAfter = c.Intro()
		return nil, nil
	})

	if _, err := rt.Mount(outerComp, Options{Target: body}); err != nil {
		t.Fatal(err)
	}
	if !outerBefore || inner || !outerAfter {
		t.Errorf("intro outer=%v inner=%v outerAfter=%v, want true false true", outerBefore, inner, outerAfter)
	}
	if !rt.intro {
		t.Error("intro flag should be restored to true")
	}
}

func TestChildCompletesBeforeParent(t *testing.T) {
	rt, _, body := newTestRuntime(t)

	var order []string
	child := ComponentFunc(func(c *Ctx, _ *host.Node, _ Props) (Exports, error) {
		order = append(order, "child")
		c.Open("span")
		c.Text("child")
		c.Close()
		return Exports{"name": "child"}, nil
	})
	parent := ComponentFunc(func(c *Ctx, _ *host.Node, _ Props) (Exports, error) {
		c.Open("div")
		exports, err := c.Child(child, nil)
		if err != nil {
			return nil, err
		}
		order = append(order, "parent saw "+exports["name"].(string))
		c.Close()
		return nil, nil
	})

	if _, err := rt.Mount(parent, Options{Target: body}); err != nil {
		t.Fatal(err)
	}
	if fmt.Sprint(order) != "[child parent saw child]" {
		t.Errorf("order = %v", order)
	}
	if got := dump(body); got != "<div><span>child</span></div>#empty" {
		t.Errorf("body = %s", got)
	}
}

func TestListenersInstalledBeforeBody(t *testing.T) {
	rt, doc, body := newTestRuntime(t)
	rt.Delegate("click")

	clicked := false
	comp := ComponentFunc(func(c *Ctx, _ *host.Node, _ Props) (Exports, error) {
		btn := c.Open("button")
		c.Close()
		btn.SetHandler("click", func(*host.Event) { clicked = true })
		doc.Dispatch(btn, "click", nil)
		return nil, nil
	})

	if _, err := rt.Mount(comp, Options{Target: body}); err != nil {
		t.Fatal(err)
	}
	if !clicked {
		t.Error("an event fired during render should reach the component")
	}
}

func TestBodyErrorUnwinds(t *testing.T) {
	rt, _, body := newTestRuntime(t)
	boom := errors.New("boom")

	cleaned := false
	comp := ComponentFunc(func(c *Ctx, _ *host.Node, _ Props) (Exports, error) {
		btn := c.Open("button")
		c.Close()
		c.On(btn, "click", func(*host.Event) {})
		c.OnCleanup(func() { cleaned = true })
		return nil, boom
	})

	_, err := rt.Mount(comp, Options{Target: body, Events: Events{"custom": func(any) {}}})
	if !errors.Is(err, boom) {
		t.Fatalf("Mount() error = %v, want boom", err)
	}
	if rt.Events().Handles() != 0 || rt.Events().Count("click") != 0 || rt.Events().Count("custom") != 0 {
		t.Error("failed mount should release its event registrations")
	}
	if !cleaned {
		t.Error("failed mount should dispose its scope")
	}
	if rt.Live() != 0 {
		t.Errorf("Live() = %d, want 0", rt.Live())
	}
	if findTag(body, "button") != nil {
		t.Error("partial content should be removed after a failed mount")
	}
	for _, n := range body.Children() {
		if n.Kind == host.KindText && n.Data == "" {
			t.Error("placeholder should be removed after a failed mount")
		}
	}
}

func TestNestedMountUnmountsWithParent(t *testing.T) {
	rt, doc, body := newTestRuntime(t)
	portal := doc.CreateElement("aside")
	doc.AppendChild(doc.Root(), portal)

	var nested *Instance
	comp := ComponentFunc(func(c *Ctx, _ *host.Node, _ Props) (Exports, error) {
		var err error
		nested, err = c.Mount(counter, Options{Target: portal})
		return nil, err
	})

	inst, err := rt.Mount(comp, Options{Target: body})
	if err != nil {
		t.Fatal(err)
	}
	if !rt.Mounted(nested) || rt.Live() != 2 {
		t.Fatalf("Live() = %d, want 2", rt.Live())
	}

	rt.Unmount(inst)
	if rt.Mounted(nested) {
		t.Error("nested instance should be unmounted with its parent")
	}
	if got := dump(portal); got != "" {
		t.Errorf("portal = %q, want empty", got)
	}
	if rt.Events().Count("click") != 0 {
		t.Errorf("Count(click) = %d, want 0", rt.Events().Count("click"))
	}
}

func TestEffectsDisposedOnUnmount(t *testing.T) {
	rt, _, body := newTestRuntime(t)

	var log []string
	comp := ComponentFunc(func(c *Ctx, _ *host.Node, _ Props) (Exports, error) {
		c.Effect(func() scope.Cleanup {
			log = append(log, "run")
			return func() { log = append(log, "cleanup") }
		})
		return nil, nil
	})

	inst, err := rt.Mount(comp, Options{Target: body})
	if err != nil {
		t.Fatal(err)
	}
	rt.Unmount(inst)

	if fmt.Sprint(log) != "[run cleanup]" {
		t.Errorf("log = %v, want [run cleanup]", log)
	}
}

func TestMountMetrics(t *testing.T) {
	rt, _, body := newTestRuntime(t)

	inst, err := rt.Mount(counter, Options{Target: body})
	if err != nil {
		t.Fatal(err)
	}
	if got := testutil.ToFloat64(rt.metrics.mounts.WithLabelValues("mount")); got != 1 {
		t.Errorf("mounts_total{mode=mount} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(rt.metrics.listeners.WithLabelValues("click")); got != 1 {
		t.Errorf("delegated_listeners{event=click} = %v, want 1", got)
	}

	rt.Unmount(inst)
	if got := testutil.ToFloat64(rt.metrics.unmounts); got != 1 {
		t.Errorf("unmounts_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(rt.metrics.listeners.WithLabelValues("click")); got != 0 {
		t.Errorf("delegated_listeners{event=click} = %v, want 0", got)
	}
	if rt.Gatherer() == nil {
		t.Error("default runtime should expose a gatherer")
	}
}

func TestMountCopiesProps(t *testing.T) {
	rt, _, body := newTestRuntime(t)

	var seen Props
	comp := ComponentFunc(func(c *Ctx, _ *host.Node, props Props) (Exports, error) {
		seen = props
		return nil, nil
	})

	props := Props{"x": 1}
	if _, err := rt.Mount(comp, Options{Target: body, Props: props, Events: Events{"done": func(any) {}}}); err != nil {
		t.Fatal(err)
	}
	if _, ok := props[EventsKey]; ok {
		t.Errorf("caller props should not gain %q", EventsKey)
	}

	if _, err := rt.Mount(comp, Options{Target: body, Props: props}); err != nil {
		t.Fatal(err)
	}
	if _, ok := seen[EventsKey]; ok {
		t.Errorf("a mount without events should not see %q", EventsKey)
	}
	if seen["x"] != 1 {
		t.Errorf("props[x] = %v, want 1", seen["x"])
	}
}
