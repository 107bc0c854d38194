// Package server delivers toasts over HTTP and WebSocket.
//
// A Server owns the transition engine for one toast provider and keeps
// every connected browser in sync with it. Whenever the engine changes,
// the toast container is re-rendered and pushed to all WebSocket clients
// as a snapshot frame. Browsers dismiss toasts by sending a dismiss frame
// or by calling DELETE /toasts/{id}.
//
// Routes:
//
//	GET    /                  page with the container and thin client
//	GET    /toasts.js         thin client script
//	GET    /toasts            JSON snapshot
//	POST   /toasts            add a toast
//	DELETE /toasts/{id}       dismiss a toast
//	GET    /toasts/container  rendered container fragment
//	GET    /ws                snapshot stream
//	GET    /metrics           Prometheus exposition (when metrics are on)
//	GET    /healthz           liveness
//
// When a loop.Loop is configured, every provider mutation made by a handler
// runs on it.
package server
