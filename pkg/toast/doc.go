// Package toast provides transient feedback notifications for GoBarber.
//
// A toast is a short message with a title, an optional description and a
// severity (info, success, error). Active toasts live in an ordered Store;
// a Provider wraps the store with the auto-dismiss behavior: every Add
// schedules a one-shot task that removes the toast after Duration (3s by
// default), and every Remove cancels that task explicitly.
//
// # Provider Scope
//
// The provider is composed explicitly at the application root and reaches
// components through a context.Context:
//
//	p := toast.NewProvider()
//	defer p.Close()
//	ctx = toast.WithProvider(ctx, p)
//
//	// anywhere below
//	toast.Use(ctx).Add(toast.Input{
//	    Title:    "Perfil atualizado!",
//	    Severity: toast.SeveritySuccess,
//	})
//
// Use panics with a T001 configuration error when the context carries no
// provider. That is a wiring mistake, not a runtime condition.
//
// # Helpers
//
//	toast.Success(n, "Sucesso", "Login efetuado com sucesso")
//	toast.ReportError(n, "Erro na autenticação", err)
//
// # Ordering and Identity
//
// Add appends; Remove filters by id. Removing an id that is not present is
// a no-op, so a manual dismissal racing the timer is harmless. Snapshots
// returned by Messages are replaced on every change and never edited in
// place.
package toast
