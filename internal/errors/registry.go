package errors

// Template defines a registered error type.
type Template struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]Template{
	"T001": {
		Category:   CategoryConfig,
		Message:    "Toast capability used outside a provider scope",
		Detail:     "toast.Use was called with a context that has no toast provider. The provider must be composed explicitly at the application root.",
		Suggestion: "Derive the context with toast.WithProvider(ctx, provider) before handing it to components.",
	},
	"T002": {
		Category:   CategoryConfig,
		Message:    "Invalid configuration",
		Detail:     "The configuration file or environment contains a value that failed validation.",
		Suggestion: "Check the field named in the error and the GOBARBER_* environment variables.",
	},
	"T003": {
		Category: CategoryRuntime,
		Message:  "Provider closed",
		Detail:   "A toast was added after the provider was closed. The message is stored but will not auto-dismiss.",
	},
	"T004": {
		Category: CategoryRuntime,
		Message:  "Event loop queue full",
		Detail:   "A callback was dropped because the event loop queue is at capacity.",
	},
	"T060": {
		Category: CategoryProtocol,
		Message:  "WebSocket connection failed",
		Detail:   "The toast stream could not be opened or was closed unexpectedly.",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
