package http

import "net/http"

// NewRouter wires the API routes. Calculation endpoints share one limiter.
func NewRouter(loanHandler *LoanHandler, limiter *RateLimiter) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(
		"/loan/calculate",
		RateLimitMiddleware(
			limiter,
			http.HandlerFunc(loanHandler.CalculateLoan),
		),
	)

	mux.Handle(
		"/loan/history",
		RateLimitMiddleware(
			limiter,
			http.HandlerFunc(loanHandler.History),
		),
	)

	mux.HandleFunc("/api/health", HealthHandler)
	mux.HandleFunc("/api/version", VersionHandler)
	return mux
}
