// Package vdom provides the virtual DOM node model used by the toast views.
//
// VNode is the building block for elements, text, fragments, components
// and raw HTML. Elements are created with variadic factory functions that
// accept attributes, event handlers, children and plain strings:
//
//	Div(Class("toast"), Key(id),
//	    Strong(Text(title)),
//	    Button(Type("button"), OnClick(dismiss)),
//	)
//
// Trees are rendered to HTML by package render. Event handlers stay on the
// server; the renderer emits data-on-* markers in their place.
package vdom
