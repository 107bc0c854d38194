package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{KindRaw, "Raw"},
		{VKind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("VKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestCreateElement(t *testing.T) {
	clicked := false
	node := Div(
		Class("toast", "", "toast-info"),
		Key("abc"),
		nil,
		Strong("Title"),
		[]*VNode{P(Text("one")), nil},
		OnClick(func() { clicked = true }),
	)

	if node.Kind != KindElement || node.Tag != "div" {
		t.Fatalf("node = %v %q, want Element div", node.Kind, node.Tag)
	}
	if node.Props["class"] != "toast toast-info" {
		t.Errorf("class = %v, want %q", node.Props["class"], "toast toast-info")
	}
	if node.Key != "abc" {
		t.Errorf("Key = %q, want abc", node.Key)
	}
	if len(node.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(node.Children))
	}
	if node.Children[0].Children[0].Text != "Title" {
		t.Errorf("string shorthand should create a text child")
	}
	if !node.IsInteractive() {
		t.Error("node with onclick should be interactive")
	}
	node.Props["onclick"].(func())()
	if !clicked {
		t.Error("onclick handler not stored")
	}
}

func TestComponentChild(t *testing.T) {
	comp := Func(func() *VNode { return Span("inner") })
	node := Div(comp)

	if node.Children[0].Kind != KindComponent {
		t.Fatalf("child kind = %v, want Component", node.Children[0].Kind)
	}
	if got := TextContent(node); got != "inner" {
		t.Errorf("TextContent = %q, want inner", got)
	}
}

func TestFragmentAndConditionals(t *testing.T) {
	frag := Fragment("a", If(false, Text("hidden")), If(true, Text("b")), When(true, func() *VNode { return Text("c") }))
	if got := TextContent(frag); got != "abc" {
		t.Errorf("TextContent = %q, want abc", got)
	}
	if When(false, func() *VNode { panic("should not build") }) != nil {
		t.Error("When(false) should return nil")
	}
}

func TestRange(t *testing.T) {
	nodes := Range([]string{"x", "", "z"}, func(s string, i int) *VNode {
		if s == "" {
			return nil
		}
		return Text(s)
	})
	if len(nodes) != 2 {
		t.Errorf("len = %d, want 2", len(nodes))
	}
}

func TestFindAll(t *testing.T) {
	tree := Div(
		Button(Data("dismiss", "1")),
		Div(Button(Data("dismiss", "2"))),
	)
	buttons := FindAll(tree, func(n *VNode) bool { return n.Tag == "button" })
	if len(buttons) != 2 {
		t.Fatalf("found %d buttons, want 2", len(buttons))
	}
	if buttons[0].Props["data-dismiss"] != "1" || buttons[1].Props["data-dismiss"] != "2" {
		t.Error("FindAll should return nodes in document order")
	}
}

func TestWalkStops(t *testing.T) {
	visited := 0
	Walk(Div(Span(), Span(), Span()), func(n *VNode) bool {
		visited++
		return visited < 2
	})
	if visited != 2 {
		t.Errorf("visited = %d, want 2", visited)
	}
}
