package models

import (
	"slices"
	"testing"
)

func sampleRecords() []LaunchRecord {
	return []LaunchRecord{
		{FlightNumber: 1, Site: "VAFB SLC-4E", PayloadMass: 500, Class: 0, BoosterCategory: "v1.1"},
		{FlightNumber: 2, Site: "CCAFS LC-40", PayloadMass: 9600, Class: 1, BoosterCategory: "FT"},
		{FlightNumber: 3, Site: "CCAFS LC-40", PayloadMass: 0, Class: 0, BoosterCategory: "v1.0"},
		{FlightNumber: 4, Site: "KSC LC-39A", PayloadMass: 3000, Class: 1, BoosterCategory: "B4"},
	}
}

func TestNewDataset_DerivedScalars(t *testing.T) {
	ds := NewDataset(sampleRecords(), "csv", "abc")

	if ds.Len() != 4 {
		t.Fatalf("expected 4 records, got %d", ds.Len())
	}
	if ds.MinPayload() != 0 || ds.MaxPayload() != 9600 {
		t.Fatalf("unexpected payload bounds: %v..%v", ds.MinPayload(), ds.MaxPayload())
	}

	want := []string{"CCAFS LC-40", "KSC LC-39A", "VAFB SLC-4E"}
	if got := ds.Sites(); !slices.Equal(got, want) {
		t.Fatalf("sites: got %v want %v", got, want)
	}
}

func TestNewDataset_Empty(t *testing.T) {
	ds := NewDataset(nil, "csv", "")

	if ds.Len() != 0 || ds.MinPayload() != 0 || ds.MaxPayload() != 0 {
		t.Fatalf("empty dataset must have zero scalars: %+v", ds.Summary())
	}
	if len(ds.Sites()) != 0 {
		t.Fatalf("empty dataset must have no sites")
	}
}

func TestNewDataset_IsolatedFromCaller(t *testing.T) {
	in := sampleRecords()
	ds := NewDataset(in, "csv", "")

	in[0].Site = "mutated"
	if ds.Records()[0].Site != "VAFB SLC-4E" {
		t.Fatalf("dataset must not alias the input slice")
	}

	sites := ds.Sites()
	sites[0] = "mutated"
	if ds.Sites()[0] != "CCAFS LC-40" {
		t.Fatalf("Sites must return a copy")
	}

	recs := ds.Records()
	recs = append(recs, LaunchRecord{Site: "appended"})
	if ds.Len() != 4 || len(recs) != 5 {
		t.Fatalf("appending to Records must not grow the dataset")
	}
}

func TestPayloadRange_ContainsIsInclusive(t *testing.T) {
	r := PayloadRange{Low: 1000, High: 5000}
	for _, tc := range []struct {
		mass float64
		want bool
	}{
		{999.9, false},
		{1000, true},
		{3000, true},
		{5000, true},
		{5000.1, false},
	} {
		if got := r.Contains(tc.mass); got != tc.want {
			t.Fatalf("Contains(%v) = %v, want %v", tc.mass, got, tc.want)
		}
	}
}

func TestScatterChart_CategoriesFirstSeenOrder(t *testing.T) {
	s := ScatterChart{Points: []ScatterPoint{
		{BoosterCategory: "FT"},
		{BoosterCategory: "v1.1"},
		{BoosterCategory: "FT"},
		{BoosterCategory: "B4"},
	}}
	if got, want := s.Categories(), []string{"FT", "v1.1", "B4"}; !slices.Equal(got, want) {
		t.Fatalf("categories: got %v want %v", got, want)
	}
}
