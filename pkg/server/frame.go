package server

import "github.com/montgomery-finn/gobarber-web/pkg/toast"

// Frame types exchanged over /ws.
const (
	// FrameSnapshot carries the rendered container and the active toasts.
	FrameSnapshot = "snapshot"
	// FrameDismiss asks the server to remove a toast.
	FrameDismiss = "dismiss"
	// FrameError reports a rejected client frame.
	FrameError = "error"
)

// Frame is one JSON message on the WebSocket.
type Frame struct {
	Type    string          `json:"type"`
	HTML    string          `json:"html,omitempty"`
	Toasts  []toast.Message `json:"toasts,omitempty"`
	ID      string          `json:"id,omitempty"`
	Message string          `json:"message,omitempty"`
}
