package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/Temutjin2k/launch-dashboard/internal/domain/models"
	"github.com/Temutjin2k/launch-dashboard/internal/domain/types"
	"github.com/Temutjin2k/launch-dashboard/pkg/hasher"
	"github.com/Temutjin2k/launch-dashboard/pkg/logger"
	wrap "github.com/Temutjin2k/launch-dashboard/pkg/logger/wrapper"
	"github.com/Temutjin2k/launch-dashboard/pkg/trm"
	"github.com/jackc/pgx/v5"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// PostgresLoader reads the launch table from a database table with the
// columns flight_number, launch_site, payload_mass_kg, class,
// booster_version and booster_version_category.
type PostgresLoader struct {
	trm   trm.TxManager
	table string
	log   logger.Logger
}

func NewPostgresLoader(trm trm.TxManager, table string, log logger.Logger) (*PostgresLoader, error) {
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("%w: invalid table name %q", types.ErrUnsupportedSource, table)
	}
	return &PostgresLoader{
		trm:   trm,
		table: table,
		log:   log,
	}, nil
}

// Load reads every row inside one read-only transaction.
func (l *PostgresLoader) Load(ctx context.Context) (*models.Dataset, error) {
	const op = "PostgresLoader.Load"
	ctx = wrap.WithAction(ctx, types.ActionDatasetLoaded)

	query := fmt.Sprintf(`
		SELECT
			COALESCE(flight_number, 0),
			launch_site,
			payload_mass_kg,
			class,
			COALESCE(booster_version, ''),
			booster_version_category
		FROM %s
		ORDER BY flight_number`, l.identifier())

	var records []models.LaunchRecord
	err := l.trm.DoReadOnly(ctx, func(ctx context.Context) error {
		rows, err := l.trm.Conn(ctx).Query(ctx, query)
		if err != nil {
			return err
		}

		records, err = pgx.CollectRows(rows, scanLaunch)
		return err
	})
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	// Rows have no file bytes to hash, so the fingerprint covers their JSON form.
	raw, err := json.Marshal(records)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	ds := models.NewDataset(records, string(types.SourcePostgres), hasher.SumBytes(raw))
	l.log.Info(ctx, "dataset loaded",
		"table", l.table,
		"records", ds.Len(),
		"sites", len(ds.Sites()),
	)

	return ds, nil
}

func (l *PostgresLoader) identifier() string {
	return pgx.Identifier(strings.Split(l.table, ".")).Sanitize()
}

func scanLaunch(row pgx.CollectableRow) (models.LaunchRecord, error) {
	var r models.LaunchRecord
	err := row.Scan(
		&r.FlightNumber,
		&r.Site,
		&r.PayloadMass,
		&r.Class,
		&r.BoosterVersion,
		&r.BoosterCategory,
	)
	return r, err
}
