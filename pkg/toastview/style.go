package toastview

import (
	"fmt"

	"github.com/montgomery-finn/gobarber-web/pkg/transition"
)

// Palette is the background and foreground color of a severity.
type Palette struct {
	Background string
	Foreground string
}

// Palettes maps each severity to its colors.
var Palettes = map[string]Palette{
	"info":    {Background: "#ebf8ff", Foreground: "#3172b7"},
	"success": {Background: "#e6fffa", Foreground: "#2e656a"},
	"error":   {Background: "#fddede", Foreground: "#c53030"},
}

// Stylesheet returns the CSS for the container and toasts. enter and leave
// are the transition durations in milliseconds.
func Stylesheet(enterMS, leaveMS int64) string {
	css := fmt.Sprintf(`.toast-container{position:absolute;right:0;top:0;padding:30px;overflow:hidden}
.toast{width:360px;position:relative;padding:16px 30px 16px 16px;border-radius:10px;box-shadow:2px 2px 8px rgba(0,0,0,0.2);display:flex;transition:right %[2]dms ease,opacity %[2]dms ease}
.toast + .toast{margin-top:8px}
.toast > .icon{margin:4px 12px 0 0}
.toast-body{flex:1}
.toast-body p{margin-top:4px;font-size:14px;opacity:0.8;line-height:20px}
.toast-dismiss{position:absolute;right:16px;top:19px;opacity:0.6;border:0;background:transparent;color:inherit}
.toast[data-has-description="false"]{align-items:center}
.toast[data-has-description="false"] > .icon{margin-top:0}
.toast[data-has-description="false"] .toast-dismiss{margin-top:0;top:auto}
.toast-entering{animation:toast-enter %[1]dms ease both}
@keyframes toast-enter{from{%[3]s}to{%[4]s}}
`, enterMS, leaveMS, transition.FromStyle.CSS(), transition.EnterStyle.CSS())
	for _, sev := range []string{"info", "success", "error"} {
		p := Palettes[sev]
		css += fmt.Sprintf(".toast-%s{background:%s;color:%s}\n", sev, p.Background, p.Foreground)
	}
	return css
}
