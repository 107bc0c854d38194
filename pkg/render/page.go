package render

import (
	"io"

	"github.com/montgomery-finn/gobarber-web/pkg/vdom"
)

// PageData holds the pieces of a full HTML document.
type PageData struct {
	Title      string
	Styles     []string
	Scripts    []string
	ScriptURLs []string
	Body       *vdom.VNode
}

// RenderPage writes a complete HTML5 document.
// Styles and Scripts are inlined verbatim; ScriptURLs become deferred
// external scripts in the head.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	head := []any{
		vdom.Meta(vdom.Charset("utf-8")),
		vdom.Title(vdom.Text(page.Title)),
	}
	for _, css := range page.Styles {
		head = append(head, vdom.Style(vdom.Text(css)))
	}
	for _, src := range page.ScriptURLs {
		head = append(head, vdom.Script(vdom.A("src", src), vdom.A("defer", true)))
	}

	body := []any{page.Body}
	for _, js := range page.Scripts {
		body = append(body, vdom.Script(vdom.Text(js)))
	}

	if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
		return err
	}
	return r.RenderToWriter(w, vdom.Html(
		vdom.Head(head...),
		vdom.Body(body...),
	))
}
