package toast

import (
	"context"

	verrors "github.com/montgomery-finn/gobarber-web/internal/errors"
)

type providerKey struct{}

// ErrNoProvider matches the value Use panics with.
var ErrNoProvider = verrors.New("T001")

// WithProvider returns a context whose descendants can reach n through Use.
func WithProvider(ctx context.Context, n Notifier) context.Context {
	return context.WithValue(ctx, providerKey{}, n)
}

// FromContext returns the notifier in ctx, if any.
func FromContext(ctx context.Context) (Notifier, bool) {
	if ctx == nil {
		return nil, false
	}
	n, ok := ctx.Value(providerKey{}).(Notifier)
	return n, ok && n != nil
}

// Use returns the notifier in ctx. It panics with a T001 configuration
// error if ctx is outside a provider scope.
func Use(ctx context.Context) Notifier {
	n, ok := FromContext(ctx)
	if !ok {
		panic(verrors.New("T001").
			WithSuggestion("Wrap the context with toast.WithProvider(ctx, provider) at the application root."))
	}
	return n
}
