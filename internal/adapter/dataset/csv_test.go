package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Temutjin2k/launch-dashboard/internal/domain/types"
	"github.com/Temutjin2k/launch-dashboard/pkg/hasher"
	"github.com/Temutjin2k/launch-dashboard/pkg/logger"
)

func TestCSVLoader_Load(t *testing.T) {
	loader := NewCSVLoader(filepath.Join("testdata", "launches.csv"), logger.NewNop())

	ds, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ds.Len() != 7 {
		t.Fatalf("expected 7 records, got %d", ds.Len())
	}
	if ds.MinPayload() != 0 || ds.MaxPayload() != 9600 {
		t.Fatalf("unexpected payload bounds: %v..%v", ds.MinPayload(), ds.MaxPayload())
	}

	wantSites := []string{"CCAFS LC-40", "CCAFS SLC-40", "KSC LC-39A", "VAFB SLC-4E"}
	sites := ds.Sites()
	if len(sites) != len(wantSites) {
		t.Fatalf("expected sites %v, got %v", wantSites, sites)
	}
	for i := range wantSites {
		if sites[i] != wantSites[i] {
			t.Fatalf("expected sites %v, got %v", wantSites, sites)
		}
	}

	first := ds.Records()[0]
	if first.FlightNumber != 1 || first.Site != "CCAFS LC-40" || first.BoosterVersion != "F9 v1.0  B0003" || first.BoosterCategory != "v1.0" {
		t.Fatalf("unexpected first record: %+v", first)
	}

	raw, err := os.ReadFile(filepath.Join("testdata", "launches.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if ds.Fingerprint() != hasher.SumBytes(raw) {
		t.Fatalf("fingerprint must be the digest of the file bytes")
	}
	if ds.Source() != string(types.SourceCSV) {
		t.Fatalf("unexpected source %q", ds.Source())
	}
}

func TestCSVLoader_MissingFile(t *testing.T) {
	loader := NewCSVLoader(filepath.Join(t.TempDir(), "absent.csv"), logger.NewNop())
	if _, err := loader.Load(context.Background()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestCSVLoader_BinaryFile(t *testing.T) {
	loader := NewCSVLoader(filepath.Join("testdata", "not_a_table.png"), logger.NewNop())
	if _, err := loader.Load(context.Background()); !errors.Is(err, types.ErrDatasetNotText) {
		t.Fatalf("expected ErrDatasetNotText, got %v", err)
	}
}

func TestParseCSV_MissingColumn(t *testing.T) {
	in := "Launch Site,class,Booster Version Category\nCCAFS LC-40,1,FT\n"
	_, err := ParseCSV(strings.NewReader(in))
	if !errors.Is(err, types.ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
	if !strings.Contains(err.Error(), ColPayloadMass) {
		t.Fatalf("error should name the column: %v", err)
	}
}

func TestParseCSV_Empty(t *testing.T) {
	if _, err := ParseCSV(strings.NewReader("")); !errors.Is(err, types.ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
}

func TestParseCSV_MalformedNumber(t *testing.T) {
	in := "Launch Site,class,Payload Mass (kg),Booster Version Category\n" +
		"CCAFS LC-40,1,1000,FT\n" +
		"CCAFS LC-40,1,heavy,FT\n"
	_, err := ParseCSV(strings.NewReader(in))
	if !errors.Is(err, types.ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("error should carry the line number: %v", err)
	}
}

func TestParseCSV_FractionalClass(t *testing.T) {
	in := "Launch Site,class,Payload Mass (kg),Booster Version Category\nKSC LC-39A,0.5,1000,FT\n"
	if _, err := ParseCSV(strings.NewReader(in)); !errors.Is(err, types.ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestParseCSV_RaggedRow(t *testing.T) {
	in := "Launch Site,class,Payload Mass (kg),Booster Version Category\nKSC LC-39A,1,1000\n"
	if _, err := ParseCSV(strings.NewReader(in)); !errors.Is(err, types.ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestParseCSV_OptionalColumnsAndLooseValues(t *testing.T) {
	in := "\ufeffLaunch Site, class ,Payload Mass (kg),Booster Version Category\n" +
		"KSC LC-39A,1.0,-5,FT\n" +
		"KSC LC-39A,2,300.5,B5\n"
	records, err := ParseCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Class != 1 || records[0].PayloadMass != -5 || records[0].FlightNumber != 0 {
		t.Fatalf("unexpected record: %+v", records[0])
	}
	if records[1].Class != 2 || records[1].PayloadMass != 300.5 {
		t.Fatalf("out-of-domain values must be kept as is: %+v", records[1])
	}
}
