package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/Temutjin2k/launch-dashboard/internal/domain/models"
	"github.com/Temutjin2k/launch-dashboard/internal/domain/types"
	"github.com/Temutjin2k/launch-dashboard/pkg/hasher"
	"github.com/Temutjin2k/launch-dashboard/pkg/logger"
	wrap "github.com/Temutjin2k/launch-dashboard/pkg/logger/wrapper"
	"github.com/Temutjin2k/launch-dashboard/pkg/trm"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestNewPostgresLoader_TableName(t *testing.T) {
	tests := []struct {
		table string
		ok    bool
		ident string
	}{
		{table: "spacex_launches", ok: true, ident: `"spacex_launches"`},
		{table: "public.spacex_launches", ok: true, ident: `"public"."spacex_launches"`},
		{table: "", ok: false},
		{table: "launches; DROP TABLE users", ok: false},
		{table: "a.b.c", ok: false},
		{table: "1launches", ok: false},
	}

	for _, tt := range tests {
		loader, err := NewPostgresLoader(nil, tt.table, logger.NewNop())
		if !tt.ok {
			if !errors.Is(err, types.ErrUnsupportedSource) {
				t.Fatalf("%q: expected ErrUnsupportedSource, got %v", tt.table, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.table, err)
		}
		if got := loader.identifier(); got != tt.ident {
			t.Fatalf("%q: expected identifier %s, got %s", tt.table, tt.ident, got)
		}
	}
}

// fakeRows serves rows of [flight, site, payload, class, version, category].
type fakeRows struct {
	pgx.Rows
	data   [][]any
	pos    int
	closed bool
}

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.pos-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: %d targets for %d columns", len(dest), len(row))
	}
	for i, d := range dest {
		v := reflect.ValueOf(d).Elem()
		src := reflect.ValueOf(row[i])
		if !src.Type().AssignableTo(v.Type()) {
			return fmt.Errorf("scan column %d: cannot assign %s to %s", i, src.Type(), v.Type())
		}
		v.Set(src)
	}
	return nil
}

func (r *fakeRows) Close()     { r.closed = true }
func (r *fakeRows) Err() error { return nil }

type fakeQuerier struct {
	rows     *fakeRows
	queryErr error
	query    string
	inTx     bool
}

func (q *fakeQuerier) Query(ctx context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.query = sql
	q.inTx = ctx.Value(readOnlyKey{}) != nil
	if q.queryErr != nil {
		return nil, q.queryErr
	}
	return q.rows, nil
}

func (q *fakeQuerier) QueryRow(context.Context, string, ...any) pgx.Row { return nil }

func (q *fakeQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

type readOnlyKey struct{}

type fakeTxManager struct {
	conn     *fakeQuerier
	readOnly int
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	m.readOnly++
	return fn(context.WithValue(ctx, readOnlyKey{}, true))
}

func (m *fakeTxManager) Conn(context.Context) trm.Querier { return m.conn }

func TestPostgresLoader_Load(t *testing.T) {
	rows := &fakeRows{data: [][]any{
		{1, "CCAFS LC-40", 0.0, 0, "F9 v1.0  B0003", "v1.0"},
		{2, "KSC LC-39A", 5300.0, 1, "F9 FT B1031.1", "FT"},
		{3, "VAFB SLC-4E", 9600.0, 1, "", "B4"},
	}}
	tm := &fakeTxManager{conn: &fakeQuerier{rows: rows}}

	loader, err := NewPostgresLoader(tm, "public.spacex_launches", logger.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ds, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tm.readOnly != 1 || !tm.conn.inTx {
		t.Fatalf("query must run inside one read-only transaction (calls=%d, inTx=%v)", tm.readOnly, tm.conn.inTx)
	}
	if !strings.Contains(tm.conn.query, `FROM "public"."spacex_launches"`) || !strings.Contains(tm.conn.query, "ORDER BY flight_number") {
		t.Fatalf("unexpected query: %s", tm.conn.query)
	}
	if !rows.closed {
		t.Fatalf("rows must be closed")
	}

	want := []models.LaunchRecord{
		{FlightNumber: 1, Site: "CCAFS LC-40", PayloadMass: 0, Class: 0, BoosterVersion: "F9 v1.0  B0003", BoosterCategory: "v1.0"},
		{FlightNumber: 2, Site: "KSC LC-39A", PayloadMass: 5300, Class: 1, BoosterVersion: "F9 FT B1031.1", BoosterCategory: "FT"},
		{FlightNumber: 3, Site: "VAFB SLC-4E", PayloadMass: 9600, Class: 1, BoosterCategory: "B4"},
	}
	if !reflect.DeepEqual(ds.Records(), want) {
		t.Fatalf("records: got %+v want %+v", ds.Records(), want)
	}
	if ds.Source() != string(types.SourcePostgres) {
		t.Fatalf("expected postgres source, got %q", ds.Source())
	}
	if ds.MinPayload() != 0 || ds.MaxPayload() != 9600 {
		t.Fatalf("unexpected payload bounds %v..%v", ds.MinPayload(), ds.MaxPayload())
	}

	raw, err := json.Marshal(want)
	if err != nil {
		t.Fatal(err)
	}
	if got := ds.Summary().Fingerprint; got != hasher.SumBytes(raw) {
		t.Fatalf("fingerprint must hash the loaded rows, got %s", got)
	}
}

func TestPostgresLoader_LoadQueryError(t *testing.T) {
	boom := errors.New("relation does not exist")
	tm := &fakeTxManager{conn: &fakeQuerier{queryErr: boom}}

	loader, err := NewPostgresLoader(tm, "spacex_launches", logger.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = loader.Load(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped query error, got %v", err)
	}
	if !strings.Contains(err.Error(), "PostgresLoader.Load") {
		t.Fatalf("error must name the operation: %v", err)
	}
	if got := wrap.FromContext(wrap.ErrorCtx(context.Background(), err)).Action; got != types.ActionDatasetLoaded {
		t.Fatalf("error must carry the load action, got %q", got)
	}
}
