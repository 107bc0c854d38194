package toastview_test

import (
	"strings"
	"testing"

	"github.com/montgomery-finn/gobarber-web/pkg/toast"
	"github.com/montgomery-finn/gobarber-web/pkg/toastview"
	"github.com/montgomery-finn/gobarber-web/pkg/transition"
	"github.com/montgomery-finn/gobarber-web/pkg/vdom"
	"github.com/montgomery-finn/gobarber-web/pkg/vtest"
)

func item(id string, sev toast.Severity, title, desc string, phase transition.Phase) toastview.Item {
	return toastview.Item{
		Key:   id,
		Phase: phase,
		Value: toast.Message{ID: id, Title: title, Description: desc, Severity: sev},
	}
}

func TestIcon(t *testing.T) {
	tests := []struct {
		sev  toast.Severity
		want string
	}{
		{toast.SeverityInfo, "info"},
		{toast.SeveritySuccess, "check-circle"},
		{toast.SeverityError, "alert-circle"},
		{toast.Severity("warning"), "info"},
		{"", "info"},
	}
	for _, tt := range tests {
		t.Run(string(tt.sev), func(t *testing.T) {
			node := toastview.Icon(tt.sev)
			if got := node.Props["data-icon"]; got != tt.want {
				t.Errorf("Icon(%q) = %v, want %s", tt.sev, got, tt.want)
			}
		})
	}
}

func TestToastWithDescription(t *testing.T) {
	node := toastview.Toast(item("1", toast.SeverityError, "Falha", "Tente novamente", transition.PhaseVisible), nil)

	vtest.ExpectContains(t, node, `class="toast toast-error toast-visible"`)
	vtest.ExpectContains(t, node, `data-has-description="true"`)
	vtest.ExpectContains(t, node, "<strong>Falha</strong>")
	vtest.ExpectContains(t, node, "<p>Tente novamente</p>")
	vtest.ExpectContains(t, node, `style="right:0%;opacity:1"`)
	vtest.ExpectContains(t, node, `data-icon="alert-circle"`)
	vtest.ExpectContains(t, node, `data-icon="x-circle"`)
}

func TestToastWithoutDescription(t *testing.T) {
	node := toastview.Toast(item("2", toast.SeveritySuccess, "Salvo", "", transition.PhaseLeaving), nil)

	vtest.ExpectContains(t, node, `data-has-description="false"`)
	vtest.ExpectNotContains(t, node, "<p>")
	vtest.ExpectContains(t, node, `style="right:-120%;opacity:0"`)
	vtest.ExpectContains(t, node, "toast-leaving")
}

func TestToastEscapesContent(t *testing.T) {
	node := toastview.Toast(item("3", toast.SeverityInfo, "<b>x</b>", "a & b", transition.PhaseEntering), nil)

	vtest.ExpectContains(t, node, "&lt;b&gt;x&lt;/b&gt;")
	vtest.ExpectContains(t, node, "a &amp; b")
}

func TestToastDismiss(t *testing.T) {
	var dismissed []string
	node := toastview.Toast(item("abc", toast.SeverityInfo, "t", "", transition.PhaseVisible), func(id string) {
		dismissed = append(dismissed, id)
	})

	vtest.ExpectContains(t, node, `data-dismiss="abc"`)
	vtest.ExpectContains(t, node, `data-on-click="true"`)

	vtest.Click(t, node, vtest.ByData("dismiss", "abc"))
	if len(dismissed) != 1 || dismissed[0] != "abc" {
		t.Errorf("dismissed = %v, want [abc]", dismissed)
	}
}

func TestContainer(t *testing.T) {
	items := []toastview.Item{
		item("a", toast.SeverityInfo, "first", "", transition.PhaseVisible),
		item("b", toast.SeveritySuccess, "second", "", transition.PhaseEntering),
	}
	node := toastview.Container(items, nil)

	vtest.ExpectContains(t, node, `id="toast-container"`)
	vtest.ExpectContains(t, node, `aria-live="polite"`)

	toasts := vdom.FindAll(node, vtest.ByData("severity", "info"))
	toasts = append(toasts, vdom.FindAll(node, vtest.ByData("severity", "success"))...)
	if len(toasts) != 2 {
		t.Fatalf("found %d toasts, want 2", len(toasts))
	}

	html := vtest.RenderHTML(t, node)
	if strings.Index(html, "first") > strings.Index(html, "second") {
		t.Error("toasts rendered out of order")
	}
}

func TestContainerEmpty(t *testing.T) {
	node := toastview.Container(nil, nil)
	vtest.ExpectNotContains(t, node, "toast-info")
	if len(node.Children) != 0 {
		t.Errorf("children = %d, want 0", len(node.Children))
	}
}

func TestStylesheet(t *testing.T) {
	css := toastview.Stylesheet(300, 250)
	for _, want := range []string{
		".toast-error{background:#fddede;color:#c53030}",
		"animation:toast-enter 300ms",
		"transition:right 250ms",
		"from{right:-120%;opacity:0}",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("stylesheet missing %q", want)
		}
	}
}
