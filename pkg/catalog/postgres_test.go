package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/arshowroom/pkg/catalog"
)

// fakeRow scans a fixed record in column order.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return fmt.Errorf("scan: got %d destinations, want %d", len(dest), len(r.values))
	}
	for i, d := range dest {
		switch d := d.(type) {
		case *string:
			*d = r.values[i].(string)
		case *[]byte:
			*d = r.values[i].([]byte)
		default:
			return fmt.Errorf("scan: unsupported destination %T", d)
		}
	}
	return nil
}

type fakeRows struct {
	rows []fakeRow
	pos  int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return r.rows[r.pos-1].Scan(dest...)
}

type fakeDB struct {
	rows     []fakeRow
	queryErr error
	execs    []string
	args     [][]any
}

func (db *fakeDB) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	if db.queryErr != nil {
		return nil, db.queryErr
	}
	return &fakeRows{rows: db.rows}, nil
}

func (db *fakeDB) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	slug := args[0].(string)
	for _, r := range db.rows {
		if r.values[0] == slug {
			return r
		}
	}
	return fakeRow{err: pgx.ErrNoRows}
}

func (db *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.execs = append(db.execs, sql)
	db.args = append(db.args, args)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func record(slug, name string, features []string, colors []catalog.Color) fakeRow {
	f, _ := json.Marshal(features)
	c, _ := json.Marshal(colors)
	return fakeRow{values: []any{
		slug, name, "desc", "Sofas", "",
		f, []byte(`[{"label":"Weight","value":"95 lbs"}]`), c,
		"/assets/" + slug + ".glb", "/assets/" + slug + ".usdz",
	}}
}

func TestPostgresSource_Get(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := &fakeDB{rows: []fakeRow{
		record("sofa", "Sofa", []string{"Soft"}, []catalog.Color{{Name: "Cream", Hex: "#FFF"}}),
	}}
	src := catalog.NewPostgresSource(db)

	p, err := src.Get(ctx, "sofa")
	require.NoError(t, err)
	assert.Equal(t, "Sofa", p.Name)
	assert.Equal(t, "Sofa", p.Asset.Name)
	assert.Equal(t, []string{"Soft"}, p.Features)
	assert.Equal(t, "95 lbs", p.Specifications[0].Value)
	assert.Equal(t, "#FFF", p.Colors[0].Hex)
	assert.Equal(t, "/assets/sofa.usdz", p.Asset.ARURL)

	_, err = src.Get(ctx, "missing")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestPostgresSource_List(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := &fakeDB{rows: []fakeRow{
		record("chair", "Chair", nil, nil),
		record("sofa", "Sofa", []string{"Soft"}, nil),
	}}

	list, err := catalog.NewPostgresSource(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "chair", list[0].Slug)
	assert.Equal(t, "sofa", list[1].Slug)

	failing := &fakeDB{queryErr: errors.New("connection refused")}
	_, err = catalog.NewPostgresSource(failing).List(ctx)
	assert.ErrorIs(t, err, catalog.ErrFailedToQuery)
}

func TestPostgresSource_ListBadJSON(t *testing.T) {
	t.Parallel()

	row := record("sofa", "Sofa", nil, nil)
	row.values[5] = []byte("{not json")
	db := &fakeDB{rows: []fakeRow{row}}

	_, err := catalog.NewPostgresSource(db).List(context.Background())
	assert.ErrorIs(t, err, catalog.ErrFailedToQuery)
}

func TestPostgresSource_Upsert(t *testing.T) {
	t.Parallel()

	db := &fakeDB{}
	src := catalog.NewPostgresSource(db)

	require.NoError(t, src.Upsert(context.Background(), catalog.DefaultProducts()...))
	require.Len(t, db.execs, 1)
	assert.Contains(t, db.execs[0], "ON CONFLICT (slug) DO UPDATE")

	args := db.args[0]
	require.Len(t, args, 10)
	assert.Equal(t, "modern-comfort-sofa", args[0])
	assert.Equal(t, "/assets/sofa.glb", args[8])

	var features []string
	require.NoError(t, json.Unmarshal(args[5].([]byte), &features))
	assert.Len(t, features, 5)

	err := src.Upsert(context.Background(), catalog.Product{Name: "No asset"})
	assert.ErrorIs(t, err, catalog.ErrInvalidProduct)
}

func TestUpsertEmptyListsAreArrays(t *testing.T) {
	t.Parallel()

	db := &fakeDB{}
	p := chair()
	p.Colors = nil
	require.NoError(t, catalog.NewPostgresSource(db).Upsert(context.Background(), p))

	args := db.args[0]
	assert.Equal(t, "[]", string(args[5].([]byte)))
	assert.Equal(t, "[]", string(args[6].([]byte)))
	assert.Equal(t, "[]", string(args[7].([]byte)))
}

func TestMigrationsEmbedded(t *testing.T) {
	t.Parallel()

	entries, err := fs.ReadDir(catalog.Migrations, catalog.MigrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	data, err := fs.ReadFile(catalog.Migrations, catalog.MigrationsDir+"/"+entries[0].Name())
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "-- +goose Up"))
	assert.Contains(t, string(data), "CREATE TABLE IF NOT EXISTS products")
}
