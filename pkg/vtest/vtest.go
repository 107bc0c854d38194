package vtest

import (
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/montgomery-finn/gobarber-web/pkg/render"
	"github.com/montgomery-finn/gobarber-web/pkg/vdom"
)

// EventuallyTimeout bounds how long Eventually polls.
var EventuallyTimeout = 2 * time.Second

// NewClock returns a fake clock pinned to a fixed instant.
func NewClock() *clockwork.FakeClock {
	return clockwork.NewFakeClockAt(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
}

// RenderHTML renders node to HTML, failing the test on error.
func RenderHTML(t testing.TB, node *vdom.VNode) string {
	t.Helper()
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return html
}

// ExpectContains asserts that rendered HTML contains expected.
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderHTML(t, node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected output to contain %q\n\nGot:\n%s", expected, html)
	}
}

// ExpectNotContains asserts that rendered HTML does not contain unexpected.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderHTML(t, node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected output NOT to contain %q\n\nGot:\n%s", unexpected, html)
	}
}

// ByData matches elements carrying data-<key>="<value>".
func ByData(key, value string) func(*vdom.VNode) bool {
	return func(n *vdom.VNode) bool {
		return n.Kind == vdom.KindElement && n.Props["data-"+key] == value
	}
}

// ByTag matches elements with the given tag.
func ByTag(tag string) func(*vdom.VNode) bool {
	return func(n *vdom.VNode) bool {
		return n.Kind == vdom.KindElement && n.Tag == tag
	}
}

// Find returns the first node matching pred, failing the test if none does.
func Find(t testing.TB, root *vdom.VNode, pred func(*vdom.VNode) bool) *vdom.VNode {
	t.Helper()
	found := vdom.FindAll(root, pred)
	if len(found) == 0 {
		t.Fatalf("no matching node in\n%s", RenderHTML(t, root))
	}
	return found[0]
}

// Click invokes the onclick handler of the first node matching pred.
func Click(t testing.TB, root *vdom.VNode, pred func(*vdom.VNode) bool) {
	t.Helper()
	node := Find(t, root, pred)
	switch h := node.Props["onclick"].(type) {
	case func():
		h()
	case nil:
		t.Fatalf("<%s> has no click handler", node.Tag)
	default:
		t.Fatalf("unsupported click handler type %T", h)
	}
}

// Eventually polls cond until it holds or EventuallyTimeout elapses.
func Eventually(t testing.TB, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(EventuallyTimeout)
	for {
		if cond() {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("condition not met within %v: %s", EventuallyTimeout, msg)
		}
		time.Sleep(2 * time.Millisecond)
	}
}
