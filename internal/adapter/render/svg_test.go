package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Temutjin2k/launch-dashboard/internal/domain/models"
)

func TestRenderPie(t *testing.T) {
	r := NewSVGRenderer(0, 0)
	pie := models.PieChart{
		Title: "Total Successful Launches by Site",
		Slices: []models.PieSlice{
			{Label: "CCAFS LC-40", Count: 7},
			{Label: "KSC LC-39A", Count: 10},
			{Label: "VAFB SLC-4E", Count: 0},
		},
	}

	svg, err := r.RenderPie(pie)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(svg), []byte("<svg")) {
		t.Fatalf("expected an svg document, got %.60s", svg)
	}
	if !bytes.Contains(svg, []byte("KSC LC-39A (10)")) {
		t.Fatalf("expected slice label in output")
	}
	if bytes.Contains(svg, []byte("VAFB SLC-4E (0)")) {
		t.Fatalf("zero slices must not be drawn")
	}
}

func TestRenderPie_EmptyIsPlaceholder(t *testing.T) {
	r := NewSVGRenderer(400, 300)
	pie := models.PieChart{
		Title:  "Total Success vs. Failure for <none>",
		Slices: []models.PieSlice{},
	}

	svg, err := r.RenderPie(pie)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(svg)
	if !strings.Contains(out, noDataNote) {
		t.Fatalf("expected placeholder, got %s", out)
	}
	if !strings.Contains(out, "&lt;none&gt;") {
		t.Fatalf("title must be escaped: %s", out)
	}
	if !strings.Contains(out, `width="400"`) {
		t.Fatalf("placeholder must keep the configured size: %s", out)
	}
}

func TestRenderScatter(t *testing.T) {
	r := NewSVGRenderer(0, 0)
	scatter := models.ScatterChart{
		Title:  "Correlation between Payload and Success for all Sites",
		Range:  models.PayloadRange{Low: 0, High: 10000},
		XLabel: "Payload Mass (kg)",
		YLabel: "Launch Outcome",
		Points: []models.ScatterPoint{
			{PayloadMass: 500, Class: 0, BoosterCategory: "v1.1"},
			{PayloadMass: 2490, Class: 1, BoosterCategory: "FT"},
			{PayloadMass: 5600, Class: 0, BoosterCategory: "FT"},
		},
	}

	svg, err := r.RenderScatter(scatter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Fatalf("expected an svg document")
	}
	if !bytes.Contains(svg, []byte("FT")) || !bytes.Contains(svg, []byte("v1.1")) {
		t.Fatalf("expected a legend entry per booster category")
	}
}

func TestRenderScatter_SingleValueRange(t *testing.T) {
	r := NewSVGRenderer(0, 0)
	scatter := models.ScatterChart{
		Title:  "Correlation between Payload and Success for KSC LC-39A",
		Range:  models.PayloadRange{Low: 2490, High: 2490},
		Points: []models.ScatterPoint{{PayloadMass: 2490, Class: 1, BoosterCategory: "FT"}},
	}

	if _, err := r.RenderScatter(scatter); err != nil {
		t.Fatalf("a zero-width range must still render: %v", err)
	}
}

func TestRenderScatter_EmptyIsPlaceholder(t *testing.T) {
	r := NewSVGRenderer(0, 0)
	svg, err := r.RenderScatter(models.ScatterChart{Title: "empty", Points: []models.ScatterPoint{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(svg, []byte(noDataNote)) {
		t.Fatalf("expected placeholder")
	}
}

func TestBounds(t *testing.T) {
	lo, hi := xBounds(models.ScatterChart{Range: models.PayloadRange{Low: 100, High: 100}})
	if lo >= 100 || hi <= 100 {
		t.Fatalf("expected widened range around 100, got %v..%v", lo, hi)
	}

	lo, hi = xBounds(models.ScatterChart{
		Range:  models.PayloadRange{Low: 1000, High: 2000},
		Points: []models.ScatterPoint{{PayloadMass: 1500}},
	})
	if lo != 1000 || hi != 2000 {
		t.Fatalf("expected selected range, got %v..%v", lo, hi)
	}

	ylo, yhi := yBounds([]models.ScatterPoint{{Class: 0}, {Class: 2}})
	if ylo != -0.25 || yhi != 2.25 {
		t.Fatalf("unexpected y bounds %v..%v", ylo, yhi)
	}

	ticks := classTicks(-0.25, 1.25)
	if len(ticks) != 4 || ticks[1].Label != "0" || ticks[2].Label != "1" {
		t.Fatalf("unexpected ticks %+v", ticks)
	}
}
