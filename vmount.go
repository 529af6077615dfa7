// Package vmount provides the public API for mounting components.
//
// This is the recommended import for most applications:
//
//	import "github.com/vango-dev/vmount"
//
// Usage:
//
//	inst, err := vmount.Mount(Counter, vmount.Options{Target: body})
//	...
//	vmount.Unmount(inst)
//
// The package-level functions use a process-wide Runtime bound to a
// process-wide host document (see Default). Programs that manage several
// documents create their own runtimes with New.
package vmount

import (
	"sync"

	"github.com/vango-dev/vmount/pkg/host"
	"github.com/vango-dev/vmount/pkg/mount"
)

// =============================================================================
// Types
// =============================================================================

// Component renders into the host tree. See mount.Component.
type Component = mount.Component

// ComponentFunc adapts a function to Component.
type ComponentFunc = mount.ComponentFunc

// Ctx is handed to a component while it renders.
type Ctx = mount.Ctx

// Props is the property bag passed to a component.
type Props = mount.Props

// Exports holds the bindings a component exposes.
type Exports = mount.Exports

// Events maps user-level callback names to handlers.
type Events = mount.Events

// Options configures a single Mount or Hydrate call.
type Options = mount.Options

// Instance is a mounted component.
type Instance = mount.Instance

// Runtime mounts components into one host document.
type Runtime = mount.Runtime

// Option configures a Runtime.
type Option = mount.Option

// =============================================================================
// Default runtime
// =============================================================================

var (
	defaultMu  sync.Mutex
	defaultDoc *host.Document
	defaultRT  *Runtime
)

// Default returns the process-wide runtime, creating it over a new host
// document on first use.
func Default() *Runtime {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultRT == nil {
		defaultDoc = host.NewDocument()
		defaultRT = mount.New(defaultDoc)
	}
	return defaultRT
}

// Document returns the host document of the default runtime.
func Document() *host.Document {
	Default()
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultDoc
}

// SetDefault replaces the process-wide runtime and its document.
// Instances mounted on the previous runtime stay with it.
func SetDefault(doc *host.Document, opts ...Option) *Runtime {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultDoc = doc
	defaultRT = mount.New(doc, opts...)
	return defaultRT
}

// New creates a Runtime over ops.
func New(ops host.Ops, opts ...Option) *Runtime {
	return mount.New(ops, opts...)
}

// =============================================================================
// Operations
// =============================================================================

// Mount renders comp into opts.Target using the default runtime.
func Mount(comp Component, opts Options) (*Instance, error) {
	return Default().Mount(comp, opts)
}

// Hydrate attaches comp to existing markup in opts.Target using the default
// runtime.
func Hydrate(comp Component, opts Options) (*Instance, error) {
	return Default().Hydrate(comp, opts)
}

// Unmount tears inst down on the runtime that mounted it, which may be a
// default runtime since replaced by SetDefault. Unmounting twice is
// reported, never fatal.
func Unmount(inst *Instance) {
	if inst != nil && inst.Runtime() != nil {
		inst.Runtime().Unmount(inst)
		return
	}
	Default().Unmount(inst)
}

// Delegate declares names as delegated events for the default runtime.
func Delegate(names ...string) {
	Default().Delegate(names...)
}

// Bool returns a pointer to v, for the optional fields of Options.
func Bool(v bool) *bool {
	return &v
}
