package transition

import (
	"fmt"
	"strconv"
)

// Phase is where a key is in its lifecycle.
type Phase uint8

const (
	PhaseEntering Phase = iota + 1
	PhaseVisible
	PhaseLeaving
)

// String returns the phase name used in CSS classes.
func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseVisible:
		return "visible"
	case PhaseLeaving:
		return "leaving"
	default:
		return "unknown"
	}
}

// Style is the animated geometry of an item.
type Style struct {
	// Right is the CSS right offset, e.g. "-120%".
	Right string
	// Opacity is between 0 and 1.
	Opacity float64
}

// CSS renders the style as an inline declaration list.
func (s Style) CSS() string {
	return fmt.Sprintf("right:%s;opacity:%s", s.Right, strconv.FormatFloat(s.Opacity, 'f', -1, 64))
}

var (
	// FromStyle is where entering items start: offscreen and transparent.
	FromStyle = Style{Right: "-120%", Opacity: 0}
	// EnterStyle is the resting style of a visible item.
	EnterStyle = Style{Right: "0%", Opacity: 1}
	// LeaveStyle is where leaving items end up.
	LeaveStyle = Style{Right: "-120%", Opacity: 0}
)

// StyleFor returns the target style of a phase.
func StyleFor(p Phase) Style {
	if p == PhaseLeaving {
		return LeaveStyle
	}
	return EnterStyle
}
