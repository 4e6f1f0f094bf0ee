package handler

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/Temutjin2k/launch-dashboard/internal/adapter/http/web"
	"github.com/Temutjin2k/launch-dashboard/internal/domain/models"
	"github.com/Temutjin2k/launch-dashboard/internal/domain/types"
	"github.com/Temutjin2k/launch-dashboard/internal/service/dashboard"
	"github.com/Temutjin2k/launch-dashboard/pkg/hasher"
	"github.com/Temutjin2k/launch-dashboard/pkg/logger"
	wrap "github.com/Temutjin2k/launch-dashboard/pkg/logger/wrapper"
	ws "github.com/Temutjin2k/launch-dashboard/pkg/wsHub"
	"github.com/gorilla/websocket"
)

const PageTitle = "SpaceX Launch Records Dashboard"

type DashboardService interface {
	Summary() models.DatasetSummary
	Controls() models.ControlsSpec
	DefaultControls() models.Controls
	Pie(ctx context.Context, site string) models.PieChart
	Scatter(ctx context.Context, site string, rng models.PayloadRange) models.ScatterChart
}

type DashboardConfig struct {
	ServiceName  string
	PrettyHTML   bool
	PingInterval time.Duration
}

// Dashboard serves the page, the chart API and the websocket sessions.
type Dashboard struct {
	service  DashboardService
	renderer dashboard.Renderer
	hub      *ws.ConnectionHub
	upgrader websocket.Upgrader
	cfg      DashboardConfig
	log      logger.Logger
}

func NewDashboard(service DashboardService, renderer dashboard.Renderer, hub *ws.ConnectionHub, cfg DashboardConfig, log logger.Logger) *Dashboard {
	return &Dashboard{
		service:  service,
		renderer: renderer,
		hub:      hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		cfg: cfg,
		log: log,
	}
}

// Page godoc
// @Summary      Dashboard page
// @Description  HTML page with the site selector, the payload slider and both charts rendered for the default controls
// @Tags         Dashboard
// @Produce      html
// @Success      200  {string}  string  "HTML page"
// @Success      304  {string}  string  "Not modified"
// @Router       / [get]
func (h *Dashboard) Page(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "render_page")

	summary := h.service.Summary()
	controls := h.service.Controls()
	etag, err := h.pageETag(summary, controls)
	if err != nil {
		h.log.Warn(ctx, "failed to compute page etag", "error", err.Error())
	}
	if etag != "" && r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	session := dashboard.NewSession(h.service, h.renderer)
	updates, err := session.Initial(ctx)
	if err != nil {
		h.log.Error(wrap.ErrorCtx(ctx, err), "failed to render initial charts", err)
		internalErrorResponse(w, "failed to render charts")
		return
	}

	page := web.Page{
		Title:    PageTitle,
		Controls: controls,
		Current:  session.Controls(),
		Summary:  summary,
	}
	for _, u := range updates {
		switch u.Chart {
		case types.PieChart:
			page.PieSVG = template.HTML(u.SVG)
		case types.ScatterChart:
			page.ScatterSVG = template.HTML(u.SVG)
		}
	}

	body, err := web.Render(page, h.cfg.PrettyHTML)
	if err != nil {
		h.log.Error(ctx, "failed to render page", err)
		internalErrorResponse(w, "failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if etag != "" {
		w.Header().Set("ETag", etag)
	}
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// pageETag covers everything the page is rendered from: the dataset, the
// control spec and the output settings. Empty when the dataset has no
// fingerprint.
func (h *Dashboard) pageETag(summary models.DatasetSummary, controls models.ControlsSpec) (string, error) {
	if summary.Fingerprint == "" {
		return "", nil
	}

	raw, err := json.Marshal(struct {
		Dataset  string              `json:"dataset"`
		Controls models.ControlsSpec `json:"controls"`
		Pretty   bool                `json:"pretty"`
	}{summary.Fingerprint, controls, h.cfg.PrettyHTML})
	if err != nil {
		return "", err
	}
	return `"` + hasher.SumBytes(raw) + `"`, nil
}
