package main

import (
	"testing"

	"github.com/vango-dev/vmount/pkg/vtest"
)

func TestCounterDemo(t *testing.T) {
	h := vtest.New(t)

	var changes []any
	inst := h.Mount(counter).
		WithProp("start", 3).
		WithEvent("change", func(v any) { changes = append(changes, v) }).
		Do()

	vtest.ExpectAttribute(t, h.Body, "class", "counter")
	vtest.ExpectContains(t, h.Body, "<span>3</span>")

	h.Click(h.FindAttr("data-action", "inc"))
	h.Click(h.FindAttr("data-action", "inc"))
	h.Click(h.FindAttr("data-action", "dec"))
	vtest.ExpectContains(t, h.Body, "<span>4</span>")

	if got := inst.Get("count").(func() int)(); got != 4 {
		t.Errorf("count() = %d, want 4", got)
	}
	if len(changes) != 3 {
		t.Errorf("got %d change events, want 3", len(changes))
	}
	if findAction(h.Body, "inc") != h.FindAttr("data-action", "inc") {
		t.Error("findAction should locate the increment button")
	}

	h.Unmount(inst)
	vtest.ExpectNotContains(t, h.Body, "counter")
}

func TestCounterDemoHydrated(t *testing.T) {
	h := vtest.New(t)
	inst := h.Mount(counter).WithProp("start", 1).Hydrated().Do()

	h.Click(h.FindAttr("data-action", "dec"))
	if got := inst.Get("count").(func() int)(); got != 0 {
		t.Errorf("count() = %d, want 0", got)
	}
	vtest.ExpectContains(t, h.Body, "<!--]-->")
}
