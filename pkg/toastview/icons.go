package toastview

import (
	"github.com/montgomery-finn/gobarber-web/pkg/toast"
	. "github.com/montgomery-finn/gobarber-web/pkg/vdom"
)

const iconSize = "24"

func icon(name string, children ...any) *VNode {
	args := []any{
		Class("icon", "icon-"+name),
		A("xmlns", "http://www.w3.org/2000/svg"),
		A("width", iconSize),
		A("height", iconSize),
		A("viewBox", "0 0 24 24"),
		A("fill", "none"),
		A("stroke", "currentColor"),
		A("stroke-width", "2"),
		A("stroke-linecap", "round"),
		A("stroke-linejoin", "round"),
		AriaHidden(true),
		Data("icon", name),
	}
	return Svg(append(args, children...)...)
}

func ring() *VNode {
	return Circle(A("cx", "12"), A("cy", "12"), A("r", "10"))
}

func segment(x1, y1, x2, y2 string) *VNode {
	return Line(A("x1", x1), A("y1", y1), A("x2", x2), A("y2", y2))
}

// InfoIcon is the feather "info" glyph.
func InfoIcon() *VNode {
	return icon("info", ring(), segment("12", "16", "12", "12"), segment("12", "8", "12.01", "8"))
}

// SuccessIcon is the feather "check-circle" glyph.
func SuccessIcon() *VNode {
	return icon("check-circle",
		Path(A("d", "M22 11.08V12a10 10 0 1 1-5.93-9.14")),
		Polyline(A("points", "22 4 12 14.01 9 11.01")),
	)
}

// ErrorIcon is the feather "alert-circle" glyph.
func ErrorIcon() *VNode {
	return icon("alert-circle", ring(), segment("12", "8", "12", "12"), segment("12", "16", "12.01", "16"))
}

// DismissIcon is the feather "x-circle" glyph.
func DismissIcon() *VNode {
	return icon("x-circle", ring(), segment("15", "9", "9", "15"), segment("9", "9", "15", "15"))
}

// Icon returns the glyph for sev. Unknown severities get the info glyph.
func Icon(sev toast.Severity) *VNode {
	switch sev {
	case toast.SeveritySuccess:
		return SuccessIcon()
	case toast.SeverityError:
		return ErrorIcon()
	default:
		return InfoIcon()
	}
}
