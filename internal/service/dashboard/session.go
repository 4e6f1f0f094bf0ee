package dashboard

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Temutjin2k/launch-dashboard/internal/domain/models"
	"github.com/Temutjin2k/launch-dashboard/internal/domain/types"
)

// ChartService is the part of Service a session needs.
type ChartService interface {
	DefaultControls() models.Controls
	Pie(ctx context.Context, site string) models.PieChart
	Scatter(ctx context.Context, site string, rng models.PayloadRange) models.ScatterChart
}

// Renderer turns figures into SVG documents.
type Renderer interface {
	RenderPie(pie models.PieChart) ([]byte, error)
	RenderScatter(scatter models.ScatterChart) ([]byte, error)
}

// ControlMessage is a control change sent by the page.
type ControlMessage struct {
	Type  types.ControlEvent `json:"type"`
	Site  string             `json:"site,omitempty"`
	Range []float64          `json:"range,omitempty"`
}

// ParseControlMessage decodes one websocket frame.
func ParseControlMessage(data []byte) (ControlMessage, error) {
	var msg ControlMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return ControlMessage{}, fmt.Errorf("%w: %v", types.ErrMalformedControlData, err)
	}
	return msg, nil
}

// ChartUpdate replaces one chart on the page.
type ChartUpdate struct {
	Type   string          `json:"type"`
	Chart  types.ChartKind `json:"chart"`
	Figure any             `json:"figure"`
	SVG    string          `json:"svg"`
}

const updateMessageType = "chart"

// Session tracks the controls of one open page. A site change redraws both
// charts, a range change redraws only the scatter. Every redraw is computed
// from scratch out of the current controls. A Session is not safe for
// concurrent use; its owner feeds it one event at a time.
type Session struct {
	charts   ChartService
	renderer Renderer
	controls models.Controls
}

func NewSession(charts ChartService, renderer Renderer) *Session {
	return &Session{
		charts:   charts,
		renderer: renderer,
		controls: charts.DefaultControls(),
	}
}

// Controls returns the current control values.
func (s *Session) Controls() models.Controls {
	return s.controls
}

// Initial renders both charts for the current controls.
func (s *Session) Initial(ctx context.Context) ([]ChartUpdate, error) {
	return s.redraw(ctx, types.PieChart, types.ScatterChart)
}

// Handle applies msg to the controls and returns the charts to redraw. On
// error the controls are left unchanged.
func (s *Session) Handle(ctx context.Context, msg ControlMessage) ([]ChartUpdate, error) {
	switch msg.Type {
	case types.EventSiteChanged:
		if msg.Site == "" {
			return nil, fmt.Errorf("%w: site must be provided", types.ErrMalformedControlData)
		}
		s.controls.Site = msg.Site
		return s.redraw(ctx, types.PieChart, types.ScatterChart)

	case types.EventRangeChanged:
		if len(msg.Range) != 2 {
			return nil, fmt.Errorf("%w: range must hold exactly two values", types.ErrMalformedControlData)
		}
		rng := models.PayloadRange{Low: msg.Range[0], High: msg.Range[1]}
		if rng.Low > rng.High {
			return nil, fmt.Errorf("%w: low %v is greater than high %v", types.ErrInvalidPayloadRange, rng.Low, rng.High)
		}
		s.controls.Range = rng
		return s.redraw(ctx, types.ScatterChart)

	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownControlEvent, msg.Type)
	}
}

func (s *Session) redraw(ctx context.Context, kinds ...types.ChartKind) ([]ChartUpdate, error) {
	updates := make([]ChartUpdate, 0, len(kinds))
	for _, kind := range kinds {
		var (
			figure any
			svg    []byte
			err    error
		)

		switch kind {
		case types.PieChart:
			pie := s.charts.Pie(ctx, s.controls.Site)
			figure = pie
			svg, err = s.renderer.RenderPie(pie)
		case types.ScatterChart:
			scatter := s.charts.Scatter(ctx, s.controls.Site, s.controls.Range)
			figure = scatter
			svg, err = s.renderer.RenderScatter(scatter)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", kind, err)
		}

		updates = append(updates, ChartUpdate{
			Type:   updateMessageType,
			Chart:  kind,
			Figure: figure,
			SVG:    string(svg),
		})
	}
	return updates, nil
}
