// Package vtest provides testing helpers for vmount components.
//
// The vtest package reduces boilerplate when testing components by giving
// each test a fresh host document and runtime, a fluent mount builder and
// render assertions.
//
// # Quick Start
//
//	func TestCounter(t *testing.T) {
//	    h := vtest.New(t)
//	    inst := h.Mount(Counter).WithProp("start", 1).Do()
//	    h.Click(h.Find("button"))
//	    vtest.ExpectContains(t, h.Body, "2")
//	    h.Unmount(inst)
//	}
//
// # Fluent Mount Builder
//
// The builder allows chaining setup before mounting:
//
//	inst := h.Mount(Counter).
//	    WithProp("start", 1).
//	    WithContext("theme", "dark").
//	    WithEvent("change", func(v any) { changes = append(changes, v) }).
//	    Do()
//
// # Hydration
//
// Hydrated renders the component to markup with package render first and
// then hydrates that markup, failing the test on any mismatch:
//
//	inst := h.Mount(Counter).Hydrated().Do()
//
// # Render Assertions
//
// Assert on the serialized HTML of a node's children:
//
//	vtest.ExpectContains(t, h.Body, "Welcome")
//	vtest.ExpectElement(t, h.Body, "button")
//	vtest.ExpectAttribute(t, h.Body, "class", "counter")
package vtest
