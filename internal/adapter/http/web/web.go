package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/Temutjin2k/launch-dashboard/internal/domain/models"
	"github.com/yosssi/gohtml"
)

//go:embed templates/index.html
var templatesFS embed.FS

var index = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// Page is the data rendered into the dashboard page.
type Page struct {
	Title      string
	Controls   models.ControlsSpec
	Current    models.Controls
	Summary    models.DatasetSummary
	PieSVG     template.HTML
	ScatterSVG template.HTML
}

// ControlsJSON exposes the control spec to the page script.
func (p Page) ControlsJSON() (template.JS, error) {
	b, err := json.Marshal(p.Controls)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

// CurrentRangeJSON is the unsnapped [low, high] the page starts from. The
// range inputs round to the slider step, so the script resends this pair
// instead of their values until the user moves a handle.
func (p Page) CurrentRangeJSON() (template.JS, error) {
	b, err := json.Marshal([2]float64{p.Current.Range.Low, p.Current.Range.High})
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

// Render executes the page template. With pretty set the markup is
// re-indented.
func Render(page Page, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := index.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("execute index template: %w", err)
	}
	if pretty {
		return gohtml.FormatBytes(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}
