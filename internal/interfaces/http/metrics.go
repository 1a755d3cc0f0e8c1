package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	scansAccepted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "asset_tracker_scans_accepted_total",
		Help: "Accepted scans by movement mode.",
	}, []string{"mode"})

	scansRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "asset_tracker_scans_rejected_total",
		Help: "Rejected scans by rejection kind.",
	}, []string{"reason"})

	sessionsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "asset_tracker_sessions_completed_total",
		Help: "Sessions that reached completed status.",
	})
)

// RegisterMetrics mounts the Prometheus scrape endpoint.
func RegisterMetrics(app *fiber.App) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
