package server

import (
	"net/http"

	_ "github.com/Temutjin2k/launch-dashboard/docs"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// swaggerInstance is the name the generated docs register under.
const swaggerInstance = "dashboard"

// setupRoutes - setups http routes
func setupRoutes(mux *http.ServeMux, routes *handlers) {
	// System Health
	mux.HandleFunc("GET /health", routes.health.HealthCheck)

	setupSwaggerRoutes(mux)
	setupMetricsRoute(mux)
	setupDashboardRoutes(mux, routes)
}

// setupDashboardRoutes setups the page, chart and websocket routes
func setupDashboardRoutes(mux *http.ServeMux, routes *handlers) {
	mux.HandleFunc("GET /{$}", routes.dashboard.Page)                        // Dashboard page
	mux.HandleFunc("GET /api/controls", routes.dashboard.Controls)           // Site options and payload slider
	mux.HandleFunc("GET /api/dataset", routes.dashboard.Dataset)             // Dataset summary
	mux.HandleFunc("GET /api/charts/pie", routes.dashboard.PieChart)         // Success pie figure
	mux.HandleFunc("GET /api/charts/scatter", routes.dashboard.ScatterChart) // Payload scatter figure
	mux.HandleFunc("GET /charts/pie.svg", routes.dashboard.PieSVG)           // Success pie as SVG
	mux.HandleFunc("GET /charts/scatter.svg", routes.dashboard.ScatterSVG)   // Payload scatter as SVG
	mux.HandleFunc("GET /ws", routes.dashboard.HandleWS)                     // WebSocket session
}

// setupSwaggerRoutes configures the Swagger UI endpoint
func setupSwaggerRoutes(mux *http.ServeMux) {
	swaggerURL := httpSwagger.InstanceName(swaggerInstance)
	mux.HandleFunc("GET /swagger/", httpSwagger.Handler(swaggerURL))
}

// setupMetricsRoute configures the Prometheus metrics endpoint
func setupMetricsRoute(mux *http.ServeMux) {
	mux.Handle("GET /metrics", promhttp.Handler())
}
