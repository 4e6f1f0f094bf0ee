package handler

import (
	"net/http"

	"github.com/Temutjin2k/launch-dashboard/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/launch-dashboard/internal/domain/models"
	wrap "github.com/Temutjin2k/launch-dashboard/pkg/logger/wrapper"
	"github.com/Temutjin2k/launch-dashboard/pkg/validator"
)

// Controls godoc
// @Summary      Control specification
// @Description  Site options (All Sites first, then the sorted distinct sites) and the payload slider with its marks and default value
// @Tags         Dashboard
// @Produce      json
// @Success      200  {object}  map[string]models.ControlsSpec
// @Router       /api/controls [get]
func (h *Dashboard) Controls(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_controls")

	if err := writeJSON(w, http.StatusOK, envelope{"controls": h.service.Controls()}, nil); err != nil {
		h.log.Error(ctx, "failed to write response", err)
	}
}

// Dataset godoc
// @Summary      Dataset summary
// @Description  Record count, distinct sites, payload bounds, source and fingerprint of the loaded dataset
// @Tags         Dashboard
// @Produce      json
// @Success      200  {object}  map[string]models.DatasetSummary
// @Router       /api/dataset [get]
func (h *Dashboard) Dataset(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_dataset")

	if err := writeJSON(w, http.StatusOK, envelope{"dataset": h.service.Summary()}, nil); err != nil {
		h.log.Error(ctx, "failed to write response", err)
	}
}

// PieChart godoc
// @Summary      Success pie
// @Description  Successful launches per site for ALL, or success vs. failure counts for one site
// @Tags         Charts
// @Produce      json
// @Param        site  query     string  false  "Launch site or ALL"  default(ALL)
// @Success      200   {object}  map[string]models.PieChart
// @Failure      422   {object}  map[string]any
// @Router       /api/charts/pie [get]
func (h *Dashboard) PieChart(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_pie_chart")

	site, ok := h.readSite(w, r)
	if !ok {
		return
	}

	pie := h.service.Pie(ctx, site)
	if err := writeJSON(w, http.StatusOK, envelope{"chart": pie}, nil); err != nil {
		h.log.Error(ctx, "failed to write response", err)
	}
}

// ScatterChart godoc
// @Summary      Payload scatter
// @Description  Launches whose payload mass lies in [low, high] for the site, plotted as payload vs. outcome
// @Tags         Charts
// @Produce      json
// @Param        site  query     string  false  "Launch site or ALL"  default(ALL)
// @Param        low   query     number  false  "Lower payload bound, kg (default: dataset minimum)"
// @Param        high  query     number  false  "Upper payload bound, kg (default: dataset maximum)"
// @Success      200   {object}  map[string]models.ScatterChart
// @Failure      422   {object}  map[string]any
// @Router       /api/charts/scatter [get]
func (h *Dashboard) ScatterChart(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_scatter_chart")

	controls, ok := h.readControls(w, r)
	if !ok {
		return
	}

	scatter := h.service.Scatter(ctx, controls.Site, controls.Range)
	if err := writeJSON(w, http.StatusOK, envelope{"chart": scatter}, nil); err != nil {
		h.log.Error(ctx, "failed to write response", err)
	}
}

// PieSVG godoc
// @Summary      Success pie as SVG
// @Tags         Charts
// @Produce      image/svg+xml
// @Param        site  query     string  false  "Launch site or ALL"  default(ALL)
// @Success      200   {string}  string  "SVG document"
// @Failure      422   {object}  map[string]any
// @Router       /charts/pie.svg [get]
func (h *Dashboard) PieSVG(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_pie_svg")

	site, ok := h.readSite(w, r)
	if !ok {
		return
	}

	svg, err := h.renderer.RenderPie(h.service.Pie(ctx, site))
	if err != nil {
		h.log.Error(ctx, "failed to render pie chart", err)
		internalErrorResponse(w, "failed to render chart")
		return
	}
	writeSVG(w, svg)
}

// ScatterSVG godoc
// @Summary      Payload scatter as SVG
// @Tags         Charts
// @Produce      image/svg+xml
// @Param        site  query     string  false  "Launch site or ALL"  default(ALL)
// @Param        low   query     number  false  "Lower payload bound, kg"
// @Param        high  query     number  false  "Upper payload bound, kg"
// @Success      200   {string}  string  "SVG document"
// @Failure      422   {object}  map[string]any
// @Router       /charts/scatter.svg [get]
func (h *Dashboard) ScatterSVG(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_scatter_svg")

	controls, ok := h.readControls(w, r)
	if !ok {
		return
	}

	svg, err := h.renderer.RenderScatter(h.service.Scatter(ctx, controls.Site, controls.Range))
	if err != nil {
		h.log.Error(ctx, "failed to render scatter chart", err)
		internalErrorResponse(w, "failed to render chart")
		return
	}
	writeSVG(w, svg)
}

// readControls parses the chart query on top of the default controls. On
// invalid input it writes a 422 response and returns false.
func (h *Dashboard) readControls(w http.ResponseWriter, r *http.Request) (models.Controls, bool) {
	defaults := h.service.DefaultControls()
	q := dto.NewChartQuery(r.URL.Query())

	v := validator.New()
	if q.Validate(v, defaults); !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return models.Controls{}, false
	}

	return q.ToControls(defaults), true
}

// readSite is readControls for the pie endpoints: low and high are ignored.
func (h *Dashboard) readSite(w http.ResponseWriter, r *http.Request) (string, bool) {
	q := dto.NewChartQuery(r.URL.Query())

	v := validator.New()
	if q.ValidateSite(v); !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return "", false
	}

	return q.SiteOr(h.service.DefaultControls().Site), true
}
