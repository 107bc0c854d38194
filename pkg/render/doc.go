// Package render turns vdom trees into HTML.
//
// The Renderer walks a VNode tree and writes escaped HTML. Attributes are
// emitted in sorted order so output is deterministic, which lets the server
// compare successive snapshots and tests assert on exact strings. Event
// handlers are not serialized; each handled event becomes a data-on-<event>
// marker attribute instead.
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(node)
//
// RenderPage wraps a body tree in a complete HTML document.
package render
