package handler

import (
	"net/http"
	"time"

	"github.com/Temutjin2k/launch-dashboard/internal/domain/models"
	"github.com/Temutjin2k/launch-dashboard/pkg/logger"
	wrap "github.com/Temutjin2k/launch-dashboard/pkg/logger/wrapper"
)

type (
	DatasetInfo interface {
		Summary() models.DatasetSummary
	}

	SessionCounter interface {
		Count() int
	}
)

type Health struct {
	serviceName string
	dataset     DatasetInfo
	sessions    SessionCounter
	startedAt   time.Time
	log         logger.Logger
}

func NewHealth(serviceName string, dataset DatasetInfo, sessions SessionCounter, log logger.Logger) *Health {
	return &Health{
		serviceName: serviceName,
		dataset:     dataset,
		sessions:    sessions,
		startedAt:   time.Now(),
		log:         log,
	}
}

// HealthCheck godoc
// @Summary      Health Check
// @Description  Returns the health status of the service and the loaded dataset
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /health [get]
func (a *Health) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "health_check")

	summary := a.dataset.Summary()
	response := envelope{
		"status": "available",
		"system_info": map[string]any{
			"service-name": a.serviceName,
			"uptime":       time.Since(a.startedAt).Round(time.Second).String(),
		},
		"dataset": map[string]any{
			"source":      summary.Source,
			"records":     summary.Records,
			"fingerprint": summary.Fingerprint,
		},
		"websocket_sessions": a.sessions.Count(),
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		a.log.Error(ctx, "healthcheck", err)
		return
	}
}
