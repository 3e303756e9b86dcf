package api

import (
	"brevet-controle-service/internal/api/handlers"
	"brevet-controle-service/internal/platform/metrics"
	"brevet-controle-service/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of the concrete scheduler).
// A ratePerMinute of zero disables rate limiting.
func NewRouter(scheduler ports.ControleScheduler, collector *metrics.Collector, ratePerMinute, rateBurst int) http.Handler {
	mux := http.NewServeMux()

	timesHandler := &handlers.TimesHandler{Scheduler: scheduler, Metrics: collector}
	cardHandler := &handlers.CardHandler{Scheduler: scheduler, Metrics: collector}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/times", timesHandler.Window)
	mux.HandleFunc("/card", cardHandler.Card)
	if collector != nil {
		mux.Handle("/metrics", collector.Handler())
	}

	var handler http.Handler = mux
	if ratePerMinute > 0 {
		handler = rateLimitMiddleware(newClientLimiter(ratePerMinute, rateBurst), handler)
	}
	return loggingMiddleware(collector, handler)
}
