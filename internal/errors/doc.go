// Package errors provides coded, actionable errors for the toast subsystem.
//
// Every error carries a short code (e.g., "T001") that maps to a registered
// template with a category, a one-line message and a longer explanation:
//
//	err := errors.New("T001").
//	    WithSuggestion("Wrap the handler context with toast.WithProvider")
//
// Two errors with the same code match under errors.Is, so a sentinel built
// with New can be compared against any later instance of that code.
//
// # Categories
//
//   - config: programmer or configuration mistakes (provider scope, config file)
//   - runtime: conditions met while the subsystem is running
//   - protocol: WebSocket and HTTP delivery problems
//
// Format renders an error for terminal output with ANSI colors; use
// DisableColors when writing to a file or a non-TTY.
package errors
