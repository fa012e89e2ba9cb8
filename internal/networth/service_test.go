package networth

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"
)

// mockGridFetcher is a GridFetcher for testing that records what was
// requested.
type mockGridFetcher struct {
	rows [][]any
	err  error

	gotSpreadsheetID string
	gotSheetName     string
}

func (m *mockGridFetcher) FetchGrid(ctx context.Context, spreadsheetID, sheetName string) ([][]any, error) {
	m.gotSpreadsheetID = spreadsheetID
	m.gotSheetName = sheetName
	if m.err != nil {
		return nil, m.err
	}
	return m.rows, nil
}

func newTestService(grid GridFetcher) *Service {
	return NewService(grid, "default-spreadsheet", "Net Worth Tracking", zerolog.Nop())
}

func TestService_Ingest_EndToEnd(t *testing.T) {
	grid := &mockGridFetcher{rows: [][]any{
		{"Date", "Net Worth"},
		{"2024-01-01", "$100,000"},
		{"not-a-date", "$200"},
		{"2024-02-01", "(50)"},
	}}
	svc := newTestService(grid)

	ds, err := svc.Ingest(context.Background(), "", "")
	if err != nil {
		t.Fatalf("Ingest() error: %v", err)
	}

	if len(ds.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(ds.Entries))
	}

	ordered := ds.InRange(
		civil.Date{Year: 2024, Month: time.January, Day: 1},
		civil.Date{Year: 2024, Month: time.December, Day: 31},
	)
	if ordered[0].NetWorth.String() != "100000" {
		t.Errorf("first net worth = %s, want 100000", ordered[0].NetWorth)
	}
	if ordered[1].NetWorth.String() != "-50" {
		t.Errorf("second net worth = %s, want -50", ordered[1].NetWorth)
	}

	points := ds.Series(FieldNetWorth)
	if len(points) != 2 || points[0].Value.String() != "100000" || points[1].Value.String() != "-50" {
		t.Errorf("Series() = %+v", points)
	}

	if ds.SpreadsheetID != "default-spreadsheet" || ds.SheetName != "Net Worth Tracking" {
		t.Errorf("provenance = %s/%s", ds.SpreadsheetID, ds.SheetName)
	}
	if ds.LastUpdated.IsZero() {
		t.Error("LastUpdated not stamped")
	}
}

func TestService_Ingest_DefaultsAndOverrides(t *testing.T) {
	grid := &mockGridFetcher{rows: [][]any{{"Date"}}}
	svc := newTestService(grid)

	if _, err := svc.Ingest(context.Background(), "", ""); err != nil {
		t.Fatalf("Ingest() error: %v", err)
	}
	if grid.gotSpreadsheetID != "default-spreadsheet" || grid.gotSheetName != "Net Worth Tracking" {
		t.Errorf("defaults not applied: %s/%s", grid.gotSpreadsheetID, grid.gotSheetName)
	}

	if _, err := svc.Ingest(context.Background(), "other-spreadsheet", "Archive"); err != nil {
		t.Fatalf("Ingest() error: %v", err)
	}
	if grid.gotSpreadsheetID != "other-spreadsheet" || grid.gotSheetName != "Archive" {
		t.Errorf("overrides not applied: %s/%s", grid.gotSpreadsheetID, grid.gotSheetName)
	}
}

func TestService_Ingest_TransportError(t *testing.T) {
	cause := errors.New("connection refused")
	svc := newTestService(&mockGridFetcher{err: cause})

	_, err := svc.Ingest(context.Background(), "", "")
	if !errors.Is(err, ErrTransport) {
		t.Errorf("err = %v, want ErrTransport", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("err = %v, want wrapped cause", err)
	}
	if errors.Is(err, ErrEmptySheet) {
		t.Error("transport failure must not classify as empty sheet")
	}
}

func TestService_Ingest_EmptySheet(t *testing.T) {
	svc := newTestService(&mockGridFetcher{rows: [][]any{}})

	_, err := svc.Ingest(context.Background(), "", "")
	if !errors.Is(err, ErrEmptySheet) {
		t.Errorf("err = %v, want ErrEmptySheet", err)
	}
	if errors.Is(err, ErrTransport) {
		t.Error("empty sheet must not classify as transport failure")
	}
}

func TestService_Ingest_HeaderOnly(t *testing.T) {
	// A header with no data rows is not an error; it is a dataset with
	// zero entries, which the caller treats as "no data".
	svc := newTestService(&mockGridFetcher{rows: [][]any{{"Date", "Net Worth"}}})

	ds, err := svc.Ingest(context.Background(), "", "")
	if err != nil {
		t.Fatalf("Ingest() error: %v", err)
	}
	if len(ds.Entries) != 0 {
		t.Errorf("got %d entries, want 0", len(ds.Entries))
	}
	if ds.Latest() != nil {
		t.Error("Latest() on header-only dataset should be nil")
	}
}

func TestService_Ingest_Idempotent(t *testing.T) {
	grid := &mockGridFetcher{rows: [][]any{
		{"Date", "Net Worth", "Days Since Last", "Notes"},
		{"2024-01-01", "$100,000.55", "7", "steady"},
		{"2024-02-01", "12.5%", "", ""},
	}}
	svc := newTestService(grid)

	first, err := svc.Ingest(context.Background(), "", "")
	if err != nil {
		t.Fatalf("first Ingest() error: %v", err)
	}
	second, err := svc.Ingest(context.Background(), "", "")
	if err != nil {
		t.Fatalf("second Ingest() error: %v", err)
	}

	if !reflect.DeepEqual(first.Entries, second.Entries) {
		t.Error("two ingestions of the same grid produced different entries")
	}
}
