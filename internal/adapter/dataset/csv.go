package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/Temutjin2k/launch-dashboard/internal/domain/models"
	"github.com/Temutjin2k/launch-dashboard/internal/domain/types"
	"github.com/Temutjin2k/launch-dashboard/pkg/hasher"
	"github.com/Temutjin2k/launch-dashboard/pkg/logger"
	wrap "github.com/Temutjin2k/launch-dashboard/pkg/logger/wrapper"
	"github.com/gabriel-vasile/mimetype"
)

// Column headers of the launch table.
const (
	ColFlightNumber    = "Flight Number"
	ColLaunchSite      = "Launch Site"
	ColPayloadMass     = "Payload Mass (kg)"
	ColClass           = "class"
	ColBoosterVersion  = "Booster Version"
	ColBoosterCategory = "Booster Version Category"
)

var requiredColumns = []string{ColLaunchSite, ColPayloadMass, ColClass, ColBoosterCategory}

// CSVLoader reads the launch table from a delimited text file.
type CSVLoader struct {
	path string
	log  logger.Logger
}

func NewCSVLoader(path string, log logger.Logger) *CSVLoader {
	return &CSVLoader{
		path: path,
		log:  log,
	}
}

// Load reads and parses the whole file. Any problem with the file is
// returned: the dashboard cannot start without its data.
func (l *CSVLoader) Load(ctx context.Context) (*models.Dataset, error) {
	const op = "CSVLoader.Load"
	ctx = wrap.WithAction(ctx, types.ActionDatasetLoaded)

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	mime := mimetype.Detect(data)
	if !isText(mime) {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %s is %s: %w", op, l.path, mime.String(), types.ErrDatasetNotText))
	}

	records, err := ParseCSV(bytes.NewReader(data))
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %s: %w", op, l.path, err))
	}

	ds := models.NewDataset(records, string(types.SourceCSV), hasher.SumBytes(data))
	l.log.Info(ctx, "dataset loaded",
		"path", l.path,
		"mime", mime.String(),
		"records", ds.Len(),
		"sites", len(ds.Sites()),
		"min_payload", ds.MinPayload(),
		"max_payload", ds.MaxPayload(),
	)

	return ds, nil
}

func isText(mime *mimetype.MIME) bool {
	for m := mime; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

// ParseCSV decodes a launch table. The header must name every required
// column; Flight Number and Booster Version are optional. Values are not
// range-checked: a negative payload or a class outside {0,1} is kept as is.
func ParseCSV(r io.Reader) ([]models.LaunchRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", types.ErrMissingColumn)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := indexColumns(header)
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %q", types.ErrMissingColumn, col)
		}
	}

	var records []models.LaunchRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrMalformedRecord, err)
		}

		rec, err := parseRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", types.ErrMalformedRecord, line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func indexColumns(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		idx[strings.TrimSpace(name)] = i
	}
	return idx
}

func parseRow(row []string, idx map[string]int) (models.LaunchRecord, error) {
	field := func(col string) string {
		i, ok := idx[col]
		if !ok {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	payload, err := strconv.ParseFloat(field(ColPayloadMass), 64)
	if err != nil {
		return models.LaunchRecord{}, fmt.Errorf("%s: %w", ColPayloadMass, err)
	}

	class, err := parseWhole(field(ColClass))
	if err != nil {
		return models.LaunchRecord{}, fmt.Errorf("%s: %w", ColClass, err)
	}

	var flight int
	if v := field(ColFlightNumber); v != "" {
		if flight, err = parseWhole(v); err != nil {
			return models.LaunchRecord{}, fmt.Errorf("%s: %w", ColFlightNumber, err)
		}
	}

	return models.LaunchRecord{
		FlightNumber:    flight,
		Site:            field(ColLaunchSite),
		PayloadMass:     payload,
		Class:           class,
		BoosterVersion:  field(ColBoosterVersion),
		BoosterCategory: field(ColBoosterCategory),
	}, nil
}

// parseWhole accepts "1" as well as "1.0".
func parseWhole(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	return int(f), nil
}
