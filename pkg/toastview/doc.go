// Package toastview renders toasts as vdom trees.
//
// Container lays out the items of a transition.Engine in the top-right
// corner. Each Toast carries a severity icon, a bold title, an optional
// description and a dismiss button whose click handler removes the toast.
// Stylesheet returns the CSS the markup expects.
package toastview
