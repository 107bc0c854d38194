// Package middleware provides observability for the toast server.
//
// Metrics exposes Prometheus counters for HTTP requests, toast lifecycle
// events and stream clients. It doubles as a toast.Observer so the provider
// feeds it directly:
//
//	m := middleware.NewMetrics(middleware.WithNamespace("gobarber"))
//	p := toast.NewProvider(toast.WithObserver(m))
//	r.Use(m.Handler)
//	r.Handle("/metrics", m.Exposer())
//
// Tracing wraps handlers in OpenTelemetry server spans, and ToastTracer
// records a span per toast add and removal. Both use the global tracer
// provider; configure it in main before serving:
//
//	otel.SetTracerProvider(tp)
//	r.Use(middleware.Tracing(middleware.WithTracerName("gobarber")))
package middleware
