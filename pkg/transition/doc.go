// Package transition animates a keyed list in and out.
//
// An Engine tracks one small state machine per key:
//
//	Entering --(enter duration)--> Visible --(key removed)--> Leaving --(leave duration)--> unmounted
//
// Sync hands the engine the desired list. New keys start Entering, keys
// missing from the list start Leaving and stay rendered in their old
// position until the leave task completes, and a key that comes back while
// leaving returns to Visible. Every key owns its own task, so transitions of
// different keys never wait on each other.
//
//	e := transition.New(func(m toast.Message) string { return m.ID },
//	    transition.WithOnChange(rerender),
//	)
//	p.Subscribe(e.Sync)
package transition
