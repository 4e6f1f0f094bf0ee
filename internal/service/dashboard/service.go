package dashboard

import (
	"context"
	"strconv"
	"time"

	"github.com/Temutjin2k/launch-dashboard/internal/domain/models"
	"github.com/Temutjin2k/launch-dashboard/internal/domain/types"
	"github.com/Temutjin2k/launch-dashboard/pkg/logger"
	wrap "github.com/Temutjin2k/launch-dashboard/pkg/logger/wrapper"
	"github.com/Temutjin2k/launch-dashboard/pkg/metrics"
)

// EventPublisher receives one event per chart computation.
type EventPublisher interface {
	PublishView(ctx context.Context, event models.ViewEvent) error
}

// SliderBounds are the configured limits of the payload control.
type SliderBounds struct {
	Min  float64
	Max  float64
	Step float64
}

// markCount is the number of labelled ticks on the payload slider.
const markCount = 5

// Service computes dashboard figures from the immutable dataset.
type Service struct {
	dataset   *models.Dataset
	slider    SliderBounds
	publisher EventPublisher
	log       logger.Logger

	now func() time.Time
}

// New returns a dashboard service. publisher may be nil.
func New(dataset *models.Dataset, slider SliderBounds, publisher EventPublisher, log logger.Logger) *Service {
	return &Service{
		dataset:   dataset,
		slider:    slider,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

// Summary describes the loaded dataset.
func (s *Service) Summary() models.DatasetSummary {
	return s.dataset.Summary()
}

// Controls returns the site options and the payload slider of the page.
func (s *Service) Controls() models.ControlsSpec {
	sites := s.dataset.Sites()
	options := make([]models.SiteOption, 0, len(sites)+1)
	options = append(options, models.SiteOption{Label: types.AllSitesLabel, Value: types.AllSites})
	for _, site := range sites {
		options = append(options, models.SiteOption{Label: site, Value: site})
	}

	return models.ControlsSpec{
		Sites:       options,
		DefaultSite: types.AllSites,
		Slider: models.SliderSpec{
			Min:     s.slider.Min,
			Max:     s.slider.Max,
			Step:    s.slider.Step,
			Marks:   sliderMarks(s.slider.Min, s.slider.Max),
			Default: s.DefaultControls().Range,
		},
	}
}

// DefaultControls is the state of a freshly opened page: all sites and the
// full payload span of the dataset.
func (s *Service) DefaultControls() models.Controls {
	return models.Controls{
		Site: types.AllSites,
		Range: models.PayloadRange{
			Low:  s.dataset.MinPayload(),
			High: s.dataset.MaxPayload(),
		},
	}
}

// Pie recomputes the success pie for site.
func (s *Service) Pie(ctx context.Context, site string) models.PieChart {
	ctx = wrap.WithSite(wrap.WithAction(ctx, types.ActionPieUpdate), site)

	start := time.Now()
	pie := SuccessPie(s.dataset.Records(), site)
	metrics.RecordChartComputation(types.PieChart.String(), scope(site), time.Since(start))

	s.log.Debug(ctx, "pie recomputed", "slices", len(pie.Slices), "total", pie.Total())
	s.publish(ctx, models.ViewEvent{
		Chart:  types.PieChart.String(),
		Site:   site,
		Points: pie.Total(),
	})

	return pie
}

// Scatter recomputes the payload scatter for site and rng.
func (s *Service) Scatter(ctx context.Context, site string, rng models.PayloadRange) models.ScatterChart {
	ctx = wrap.WithSite(wrap.WithAction(ctx, types.ActionScatterUpdate), site)

	start := time.Now()
	scatter := PayloadScatter(s.dataset.Records(), site, rng)
	metrics.RecordChartComputation(types.ScatterChart.String(), scope(site), time.Since(start))

	s.log.Debug(ctx, "scatter recomputed", "points", len(scatter.Points), "low", rng.Low, "high", rng.High)
	s.publish(ctx, models.ViewEvent{
		Chart:  types.ScatterChart.String(),
		Site:   site,
		Range:  rng,
		Points: len(scatter.Points),
	})

	return scatter
}

// publish never fails the caller: a lost view event only costs analytics.
func (s *Service) publish(ctx context.Context, event models.ViewEvent) {
	if s.publisher == nil {
		return
	}
	event.Timestamp = s.now().UTC()

	if err := s.publisher.PublishView(ctx, event); err != nil {
		s.log.Warn(wrap.ErrorCtx(ctx, err), "failed to publish view event", "chart", event.Chart, "error", err.Error())
	}
}

func scope(site string) string {
	if site == types.AllSites {
		return "all"
	}
	return "site"
}

// sliderMarks labels markCount evenly spaced ticks: 0, 2.5k, 5k, ...
func sliderMarks(lo, hi float64) map[int]string {
	marks := make(map[int]string, markCount)
	if hi <= lo {
		marks[int(lo)] = markLabel(lo)
		return marks
	}

	step := (hi - lo) / float64(markCount-1)
	for i := range markCount {
		v := lo + step*float64(i)
		marks[int(v)] = markLabel(v)
	}
	return marks
}

func markLabel(v float64) string {
	if v >= 1000 || v <= -1000 {
		return strconv.FormatFloat(v/1000, 'f', -1, 64) + "k"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
