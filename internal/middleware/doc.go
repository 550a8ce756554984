// Package middleware provides HTTP middleware for the Shows API.
//
// # Available Middleware
//
//   - RequestID: tags each request with X-Request-ID
//   - Logger: one structured log line per request
//   - Recovery: turns panics into 500 envelopes
//   - CORS: cross-origin headers and preflight handling
//   - Compress: gzip responses
//   - Metrics: Prometheus request counters and latency
//
// # Ordering
//
// Chain applies middleware outermost first. Standard returns the server's
// stack. Compress sits outside Recovery so a recovered panic is gzipped like
// any other body. Metrics must be last so that it wraps the mux directly and
// sees the matched route pattern:
//
//	h := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.CORS(origins),
//	    middleware.Compress,
//	    middleware.Recovery,
//	    middleware.Metrics,
//	)
package middleware
