package vtest

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/montgomery-finn/gobarber-web/pkg/vdom"
)

func TestExpectContains(t *testing.T) {
	node := vdom.Div(vdom.Strong("Hello"))
	ExpectContains(t, node, "<strong>Hello</strong>")
	ExpectNotContains(t, node, "<p>")
}

func TestClick(t *testing.T) {
	clicked := ""
	node := vdom.Div(
		vdom.Button(vdom.Data("dismiss", "a"), vdom.OnClick(func() { clicked = "a" })),
		vdom.Button(vdom.Data("dismiss", "b"), vdom.OnClick(func() { clicked = "b" })),
	)

	Click(t, node, ByData("dismiss", "b"))
	if clicked != "b" {
		t.Errorf("clicked = %q, want b", clicked)
	}
}

func TestFindByTag(t *testing.T) {
	node := vdom.Div(vdom.P("x"))
	if got := Find(t, node, ByTag("p")); got.Tag != "p" {
		t.Errorf("Find = %q, want p", got.Tag)
	}
}

func TestEventually(t *testing.T) {
	var ready atomic.Bool
	go func() {
		time.Sleep(10 * time.Millisecond)
		ready.Store(true)
	}()
	Eventually(t, ready.Load, "flag never set")
}

func TestNewClock(t *testing.T) {
	c := NewClock()
	start := c.Now()

	fired := make(chan struct{})
	c.AfterFunc(time.Second, func() { close(fired) })
	c.Advance(time.Second)

	select {
	case <-fired:
	case <-time.After(EventuallyTimeout):
		t.Fatal("AfterFunc did not fire after Advance")
	}
	if c.Since(start) != time.Second {
		t.Errorf("Since = %v, want 1s", c.Since(start))
	}
}
