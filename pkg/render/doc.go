// Package render produces server-side markup for components and serializes
// host trees to HTML.
//
// Markup mounts a component into a scratch document between a
// <!--[--> and a <!--]--> comment, which is the shape mount.Runtime.Hydrate
// expects to find in its target:
//
//	container, err := render.Markup(Counter, mount.Props{"start": 1})
//	html, err := render.HTML(Counter, mount.Props{"start": 1})
//
// Parse reads such HTML back into a host document, so markup written by one
// process can be hydrated by another.
//
// # Pretty Printing
//
// RendererConfig.Pretty indents the output. The added whitespace becomes
// text nodes when parsed, so pretty output cannot be hydrated and should
// only be used for inspection.
//
// # Security
//
// Text content and attribute values are escaped. Comment payloads are
// sanitized so they cannot close the comment early.
package render
