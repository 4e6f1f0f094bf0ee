package models

import (
	"slices"
)

// LaunchRecord is one launch attempt from the dataset.
type LaunchRecord struct {
	FlightNumber    int     `json:"flight_number"`
	Site            string  `json:"launch_site"`
	PayloadMass     float64 `json:"payload_mass_kg"`
	Class           int     `json:"class"`
	BoosterVersion  string  `json:"booster_version,omitempty"`
	BoosterCategory string  `json:"booster_version_category"`
}

// Dataset is the read-only table of launches. It is built once at startup
// and shared by every handler without locking, so nothing may mutate it
// after NewDataset returns.
type Dataset struct {
	records     []LaunchRecord
	sites       []string
	minPayload  float64
	maxPayload  float64
	source      string
	fingerprint string
}

// NewDataset copies records and computes the derived scalars.
func NewDataset(records []LaunchRecord, source, fingerprint string) *Dataset {
	d := &Dataset{
		records:     slices.Clone(records),
		source:      source,
		fingerprint: fingerprint,
	}

	seen := make(map[string]struct{})
	for i, r := range d.records {
		if i == 0 || r.PayloadMass < d.minPayload {
			d.minPayload = r.PayloadMass
		}
		if i == 0 || r.PayloadMass > d.maxPayload {
			d.maxPayload = r.PayloadMass
		}
		if _, ok := seen[r.Site]; !ok {
			seen[r.Site] = struct{}{}
			d.sites = append(d.sites, r.Site)
		}
	}
	slices.Sort(d.sites)

	return d
}

// Records returns the rows in file order. The slice is shared: callers must
// treat it as read-only.
func (d *Dataset) Records() []LaunchRecord {
	return d.records[:len(d.records):len(d.records)]
}

func (d *Dataset) Len() int {
	return len(d.records)
}

// Sites returns every distinct launch site, sorted.
func (d *Dataset) Sites() []string {
	return slices.Clone(d.sites)
}

func (d *Dataset) MinPayload() float64 {
	return d.minPayload
}

func (d *Dataset) MaxPayload() float64 {
	return d.maxPayload
}

func (d *Dataset) Source() string {
	return d.source
}

// Fingerprint is the hex SHA-256 of the source bytes, empty when unknown.
func (d *Dataset) Fingerprint() string {
	return d.fingerprint
}

// Summary describes the loaded dataset.
func (d *Dataset) Summary() DatasetSummary {
	return DatasetSummary{
		Records:     d.Len(),
		Sites:       d.Sites(),
		MinPayload:  d.minPayload,
		MaxPayload:  d.maxPayload,
		Source:      d.source,
		Fingerprint: d.fingerprint,
	}
}

type DatasetSummary struct {
	Records     int      `json:"records"`
	Sites       []string `json:"sites"`
	MinPayload  float64  `json:"min_payload_kg"`
	MaxPayload  float64  `json:"max_payload_kg"`
	Source      string   `json:"source"`
	Fingerprint string   `json:"fingerprint,omitempty"`
}
