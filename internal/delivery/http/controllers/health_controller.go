package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"eventregistration/internal/delivery/http/helpers"
)

// Pinger reports whether a dependency is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is the body of GET /health.
// Timestamps are always UTC, which Timezone reports.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Timezone  string    `json:"timezone"`
}

type HealthController struct {
	Logger *slog.Logger
	DB     Pinger
	Now    func() time.Time
}

func NewHealthController(logger *slog.Logger, db Pinger) *HealthController {
	return &HealthController{Logger: logger, DB: db, Now: time.Now}
}

// Health godoc
// @Summary Health check
// @Description Returns OK when the database is reachable, 503 otherwise.
// @Tags health
// @Produce json
// @Success 200 {object} controllers.HealthResponse
// @Failure 503 {object} controllers.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status, code := "OK", http.StatusOK
	if c.DB != nil {
		if err := c.DB.PingContext(ctx); err != nil {
			c.Logger.WarnContext(ctx, "health check failed", "err", err)
			status, code = "unavailable", http.StatusServiceUnavailable
		}
	}
	helpers.WriteJSON(w, code, HealthResponse{Status: status, Timestamp: c.Now().UTC(), Timezone: "UTC"})
}
