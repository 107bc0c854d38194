// Package vtest provides testing helpers for toast views and providers.
//
// # Render Assertions
//
//	vtest.ExpectContains(t, toastview.Toast(item, nil), "<strong>Saved</strong>")
//	vtest.ExpectNotContains(t, node, "<p>")
//
// # Interaction
//
// Click finds the first element matching a predicate and invokes its click
// handler, the way the browser client would through the dismiss endpoint:
//
//	vtest.Click(t, node, vtest.ByData("dismiss", id))
//
// # Time
//
// Dismissal timers run on a clockwork clock. Fake clocks fire callbacks
// asynchronously, so assertions after Advance go through Eventually:
//
//	clock := vtest.NewClock()
//	clock.Advance(3 * time.Second)
//	vtest.Eventually(t, func() bool { return p.Store().Len() == 0 }, "toast not dismissed")
package vtest
