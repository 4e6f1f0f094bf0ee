package models

import "time"

// SiteOption is one entry of the launch site selector.
type SiteOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SliderSpec describes the payload range control.
type SliderSpec struct {
	Min     float64        `json:"min"`
	Max     float64        `json:"max"`
	Step    float64        `json:"step"`
	Marks   map[int]string `json:"marks"`
	Default PayloadRange   `json:"value"`
}

// ControlsSpec is everything the page needs to build its inputs.
type ControlsSpec struct {
	Sites       []SiteOption `json:"sites"`
	DefaultSite string       `json:"default_site"`
	Slider      SliderSpec   `json:"slider"`
}

// Controls holds the current value of every input of one client.
type Controls struct {
	Site  string       `json:"site"`
	Range PayloadRange `json:"range"`
}

// ViewEvent is emitted for each chart computation.
type ViewEvent struct {
	Chart     string       `json:"chart"`
	Site      string       `json:"site"`
	Range     PayloadRange `json:"range"`
	Points    int          `json:"points"`
	Timestamp time.Time    `json:"timestamp"`
}
