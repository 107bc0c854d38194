package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/montgomery-finn/gobarber-web/pkg/vdom"
)

func renderString(t *testing.T, node *vdom.VNode) string {
	t.Helper()
	html, err := NewRenderer(RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatalf("RenderToString() error = %v", err)
	}
	return html
}

func TestRenderElement(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "empty div",
			node: vdom.Div(),
			want: "<div></div>",
		},
		{
			name: "sorted attributes",
			node: vdom.Div(vdom.ID("x"), vdom.Class("toast")),
			want: `<div class="toast" id="x"></div>`,
		},
		{
			name: "text is escaped",
			node: vdom.Strong(vdom.Text(`<b>"hi"</b> & 'bye'`)),
			want: "<strong>&lt;b&gt;&quot;hi&quot;&lt;/b&gt; &amp; &#39;bye&#39;</strong>",
		},
		{
			name: "attribute is escaped",
			node: vdom.Div(vdom.Data("title", "a\"b\nc")),
			want: `<div data-title="a&quot;b&#10;c"></div>`,
		},
		{
			name: "void element",
			node: vdom.Meta(vdom.Charset("utf-8")),
			want: `<meta charset="utf-8">`,
		},
		{
			name: "boolean attribute",
			node: vdom.Button(vdom.A("disabled", true), vdom.A("hidden", false)),
			want: "<button disabled></button>",
		},
		{
			name: "aria boolean renders value",
			node: vdom.Span(vdom.AriaHidden(true)),
			want: `<span aria-hidden="true"></span>`,
		},
		{
			name: "key is not rendered",
			node: vdom.Div(vdom.Key("k1")),
			want: "<div></div>",
		},
		{
			name: "event handler becomes marker",
			node: vdom.Button(vdom.OnClick(func() {})),
			want: `<button data-on-click="true"></button>`,
		},
		{
			name: "fragment",
			node: vdom.Fragment(vdom.Span("a"), vdom.Span("b")),
			want: "<span>a</span><span>b</span>",
		},
		{
			name: "component",
			node: vdom.Div(vdom.Func(func() *vdom.VNode { return vdom.P("c") })),
			want: "<div><p>c</p></div>",
		},
		{
			name: "raw",
			node: vdom.Raw("<i>raw</i>"),
			want: "<i>raw</i>",
		},
		{
			name: "script content is not escaped",
			node: vdom.Script(vdom.Text("if (a < b && c) {}")),
			want: "<script>if (a < b && c) {}</script>",
		},
		{
			name: "numeric attribute",
			node: vdom.Svg(vdom.A("width", 20), vdom.A("stroke-width", 2.5)),
			want: `<svg stroke-width="2.5" width="20"></svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderString(t, tt.node); got != tt.want {
				t.Errorf("render = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderNil(t *testing.T) {
	if got := renderString(t, nil); got != "" {
		t.Errorf("render(nil) = %q, want empty", got)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	_, err := NewRenderer(RendererConfig{}).RenderToString(&vdom.VNode{Kind: vdom.VKind(42)})
	if err == nil {
		t.Error("expected error for unknown node kind")
	}
}

func TestRenderPretty(t *testing.T) {
	r := NewRenderer(RendererConfig{Pretty: true})
	html, err := r.RenderToString(vdom.Div(vdom.P("x")))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "\n  <p>") {
		t.Errorf("pretty output not indented: %q", html)
	}
}

func TestRenderPage(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer(RendererConfig{}).RenderPage(&buf, PageData{
		Title:      "GoBarber",
		Styles:     []string{".toast{}"},
		Scripts:    []string{"console.log(1 < 2)"},
		ScriptURLs: []string{"/toasts.js"},
		Body:       vdom.Div(vdom.ID("root")),
	})
	if err != nil {
		t.Fatal(err)
	}

	html := buf.String()
	for _, want := range []string{
		"<!DOCTYPE html><html><head>",
		"<title>GoBarber</title>",
		"<style>.toast{}</style>",
		`<div id="root"></div>`,
		"<script>console.log(1 < 2)</script>",
		`<script defer src="/toasts.js"></script>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q in %s", want, html)
		}
	}
}

func TestEscapeHTMLExported(t *testing.T) {
	if got := EscapeHTML("<x>"); got != "&lt;x&gt;" {
		t.Errorf("EscapeHTML = %q", got)
	}
}
