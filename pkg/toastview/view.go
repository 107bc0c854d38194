package toastview

import (
	"github.com/montgomery-finn/gobarber-web/pkg/toast"
	"github.com/montgomery-finn/gobarber-web/pkg/transition"
	. "github.com/montgomery-finn/gobarber-web/pkg/vdom"
)

// ContainerID is the DOM id of the toast container.
const ContainerID = "toast-container"

// DismissFunc removes the toast with the given id.
type DismissFunc func(id string)

// Item is a toast as produced by the transition engine.
type Item = transition.Item[toast.Message]

// Toast renders one toast. dismiss may be nil for read-only output.
func Toast(item Item, dismiss DismissFunc) *VNode {
	msg := item.Value
	sev := msg.Severity.Normalize()
	hasDescription := msg.HasDescription()

	button := Button(
		Type("button"),
		Class("toast-dismiss"),
		AriaLabel("Dismiss"),
		Data("dismiss", msg.ID),
		DismissIcon(),
	)
	if dismiss != nil {
		id := msg.ID
		button.Props["onclick"] = func() { dismiss(id) }
	}

	return Div(
		Key(item.Key),
		ID("toast-"+msg.ID),
		Class("toast", "toast-"+string(sev), "toast-"+item.Phase.String()),
		Role("alert"),
		Data("toast-id", msg.ID),
		Data("severity", string(sev)),
		Data("phase", item.Phase.String()),
		Data("has-description", boolString(hasDescription)),
		StyleAttr(item.Style().CSS()),
		Icon(sev),
		Div(
			Class("toast-body"),
			Strong(msg.Title),
			If(hasDescription, P(msg.Description)),
		),
		button,
	)
}

// Container renders all items in order.
func Container(items []Item, dismiss DismissFunc) *VNode {
	return Div(
		ID(ContainerID),
		Class("toast-container"),
		AriaLive("polite"),
		Range(items, func(item Item, _ int) *VNode {
			return Toast(item, dismiss)
		}),
	)
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
