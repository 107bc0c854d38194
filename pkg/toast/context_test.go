package toast_test

import (
	"context"
	"errors"
	"testing"

	verrors "github.com/montgomery-finn/gobarber-web/internal/errors"
	"github.com/montgomery-finn/gobarber-web/pkg/toast"
	"github.com/montgomery-finn/gobarber-web/pkg/vtest"
)

func TestUseInsideProviderScope(t *testing.T) {
	p := toast.NewProvider(toast.WithClock(vtest.NewClock()))
	defer p.Close()

	ctx := toast.WithProvider(context.Background(), p)
	// Scope reaches derived contexts.
	child, cancel := context.WithCancel(ctx)
	defer cancel()

	n := toast.Use(child)
	id := n.Add(toast.Input{Title: "from child"})
	if _, ok := p.Store().Get(id); !ok {
		t.Error("Use returned a notifier not backed by the provider")
	}
}

func TestUseOutsideProviderScopePanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Use outside provider scope should panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %T is not an error", r)
		}
		if !errors.Is(err, toast.ErrNoProvider) {
			t.Errorf("panic = %v, want ErrNoProvider", err)
		}
		var coded *verrors.Error
		if !errors.As(err, &coded) || coded.Category != verrors.CategoryConfig {
			t.Errorf("panic should be a config error, got %#v", err)
		}
	}()

	toast.Use(context.Background())
}

func TestFromContext(t *testing.T) {
	if _, ok := toast.FromContext(context.Background()); ok {
		t.Error("FromContext on empty context should report false")
	}
	if _, ok := toast.FromContext(nil); ok {
		t.Error("FromContext(nil) should report false")
	}
	if _, ok := toast.FromContext(toast.WithProvider(context.Background(), nil)); ok {
		t.Error("nil notifier should not count as a provider")
	}

	p := toast.NewProvider(toast.WithClock(vtest.NewClock()))
	defer p.Close()
	n, ok := toast.FromContext(toast.WithProvider(context.Background(), p))
	if !ok || n != toast.Notifier(p) {
		t.Error("FromContext should return the provided notifier")
	}
}

func TestNestedProviderShadowsOuter(t *testing.T) {
	outer := toast.NewProvider(toast.WithClock(vtest.NewClock()))
	inner := toast.NewProvider(toast.WithClock(vtest.NewClock()))
	defer outer.Close()
	defer inner.Close()

	ctx := toast.WithProvider(context.Background(), outer)
	nested := toast.WithProvider(ctx, inner)

	toast.Use(nested).Add(toast.Input{Title: "inner"})
	toast.Use(ctx).Add(toast.Input{Title: "outer"})

	if inner.Store().Len() != 1 || outer.Store().Len() != 1 {
		t.Errorf("inner=%d outer=%d, want 1/1", inner.Store().Len(), outer.Store().Len())
	}
}
