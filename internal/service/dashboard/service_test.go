package dashboard

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/Temutjin2k/launch-dashboard/internal/domain/models"
	"github.com/Temutjin2k/launch-dashboard/internal/domain/types"
	"github.com/Temutjin2k/launch-dashboard/pkg/logger"
)

type recordingPublisher struct {
	events []models.ViewEvent
	err    error
}

func (p *recordingPublisher) PublishView(_ context.Context, event models.ViewEvent) error {
	p.events = append(p.events, event)
	return p.err
}

var defaultSlider = SliderBounds{Min: 0, Max: 10000, Step: 1000}

func newTestService(pub EventPublisher) *Service {
	ds := models.NewDataset(fleet(), "csv", "")
	return New(ds, defaultSlider, pub, logger.NewNop())
}

func TestService_Controls(t *testing.T) {
	cs := newTestService(nil).Controls()

	wantSites := []models.SiteOption{
		{Label: "All Sites", Value: "ALL"},
		{Label: "CCAFS LC-40", Value: "CCAFS LC-40"},
		{Label: "CCAFS SLC-40", Value: "CCAFS SLC-40"},
		{Label: "KSC LC-39A", Value: "KSC LC-39A"},
		{Label: "VAFB SLC-4E", Value: "VAFB SLC-4E"},
	}
	if !reflect.DeepEqual(cs.Sites, wantSites) {
		t.Fatalf("sites: got %v want %v", cs.Sites, wantSites)
	}
	if cs.DefaultSite != types.AllSites {
		t.Fatalf("default site: got %q", cs.DefaultSite)
	}

	slider := cs.Slider
	if slider.Min != 0 || slider.Max != 10000 || slider.Step != 1000 {
		t.Fatalf("unexpected slider bounds: %+v", slider)
	}
	wantMarks := map[int]string{0: "0", 2500: "2.5k", 5000: "5k", 7500: "7.5k", 10000: "10k"}
	if !reflect.DeepEqual(slider.Marks, wantMarks) {
		t.Fatalf("marks: got %v want %v", slider.Marks, wantMarks)
	}
	if slider.Default != (models.PayloadRange{Low: 0, High: 9600}) {
		t.Fatalf("default range must span the dataset, got %+v", slider.Default)
	}
}

func TestService_PublishesViewEvents(t *testing.T) {
	pub := &recordingPublisher{}
	svc := newTestService(pub)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	svc.Pie(context.Background(), "KSC LC-39A")
	svc.Scatter(context.Background(), types.AllSites, models.PayloadRange{Low: 0, High: 3000})

	if len(pub.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(pub.events))
	}
	pie, scatter := pub.events[0], pub.events[1]
	if pie.Chart != "pie" || pie.Site != "KSC LC-39A" || pie.Points != 4 || !pie.Timestamp.Equal(fixed) {
		t.Fatalf("unexpected pie event: %+v", pie)
	}
	if scatter.Chart != "scatter" || scatter.Points != 4 || scatter.Range.High != 3000 {
		t.Fatalf("unexpected scatter event: %+v", scatter)
	}
}

func TestService_PublishFailureDoesNotAffectResult(t *testing.T) {
	svc := newTestService(&recordingPublisher{err: errors.New("broker down")})

	pie := svc.Pie(context.Background(), types.AllSites)
	if pie.Total() != 6 {
		t.Fatalf("expected 6 successes, got %d", pie.Total())
	}
}

func TestSliderMarks_DegenerateBounds(t *testing.T) {
	marks := sliderMarks(500, 500)
	if len(marks) != 1 || marks[500] != "500" {
		t.Fatalf("unexpected marks %v", marks)
	}
}
