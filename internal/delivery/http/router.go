package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "eventregistration/docs"
	"eventregistration/internal/delivery/http/controllers"
	"eventregistration/internal/delivery/http/middleware"
	"eventregistration/internal/metrics"
)

// RouterConfig carries the controllers and cross-cutting settings for NewRouter.
type RouterConfig struct {
	Logger             *slog.Logger
	Events             *controllers.EventController
	Attendees          *controllers.AttendeeController
	Health             *controllers.HealthController
	CORSAllowedOrigins []string
	RateLimiter        *middleware.RateLimiter
}

// NewRouter initializes the HTTP router with all application routes wrapped in
// metrics, logging, CORS and rate-limiting middleware.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", cfg.Health.Health)
	mux.Handle("GET /metrics", metrics.Handler())

	// Events
	mux.HandleFunc("POST /events", cfg.Events.CreateEvent)
	mux.HandleFunc("GET /events", cfg.Events.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", cfg.Events.GetEvent)
	mux.HandleFunc("POST /events/{eventID}/register", cfg.Attendees.Register)
	mux.HandleFunc("GET /events/{eventID}/attendees", cfg.Attendees.ListForEvent)

	// Attendees
	mux.HandleFunc("POST /attendees", cfg.Attendees.Create)
	mux.HandleFunc("GET /attendees", cfg.Attendees.List)
	mux.HandleFunc("GET /attendees/{attendeeID}", cfg.Attendees.Get)
	mux.HandleFunc("DELETE /attendees/{attendeeID}", cfg.Attendees.Remove)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = mux
	handler = cfg.RateLimiter.Middleware(handler)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(cfg.Logger, handler)
	handler = middleware.Metrics(handler)
	return handler
}
