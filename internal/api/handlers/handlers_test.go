package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dvloznov/networth-dashboard/internal/networth"
)

// stubIngestor returns a canned dataset or error.
type stubIngestor struct {
	dataset *networth.Dataset
	err     error
	calls   int
}

func (s *stubIngestor) Ingest(ctx context.Context, spreadsheetID, sheetName string) (*networth.Dataset, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.dataset, nil
}

func entryOn(year int, month time.Month, day int, netWorth string) *networth.Entry {
	e := &networth.Entry{Date: civil.Date{Year: year, Month: month, Day: day}}
	if netWorth != "" {
		v := decimal.RequireFromString(netWorth)
		e.NetWorth = &v
	}
	return e
}

func newHandler(svc Ingestor) *NetWorthHandler {
	return NewNetWorthHandler(svc, zerolog.Nop())
}

func doGet(t *testing.T, h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v\n%s", err, rec.Body.String())
	}
	return body
}

func TestGetLatest(t *testing.T) {
	svc := &stubIngestor{dataset: &networth.Dataset{Entries: []*networth.Entry{
		entryOn(2024, time.January, 1, "100000"),
		entryOn(2024, time.February, 1, "110000.50"),
	}}}
	h := newHandler(svc)

	rec := doGet(t, h.GetLatest, "/api/networth/latest")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["date"] != "2024-02-01" {
		t.Errorf("date = %v, want 2024-02-01", body["date"])
	}
	// Decimals render as exact strings, absent fields as explicit null.
	nw, ok := body["net_worth"].(string)
	if !ok {
		t.Fatalf("net_worth = %v (%T), want a quoted decimal string", body["net_worth"], body["net_worth"])
	}
	if !decimal.RequireFromString(nw).Equal(decimal.RequireFromString("110000.50")) {
		t.Errorf("net_worth = %s, want 110000.50", nw)
	}
	if v, present := body["crypto"]; !present || v != nil {
		t.Errorf("crypto = %v (present=%v), want explicit null", v, present)
	}
}

func TestGetLatest_NoData(t *testing.T) {
	h := newHandler(&stubIngestor{dataset: &networth.Dataset{}})

	rec := doGet(t, h.GetLatest, "/api/networth/latest")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"transport", fmt.Errorf("ingest: %w: connection refused", networth.ErrTransport), http.StatusBadGateway},
		{"empty sheet", fmt.Errorf("ingest: %w", networth.ErrEmptySheet), http.StatusInternalServerError},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandler(&stubIngestor{err: tt.err})
			rec := doGet(t, h.GetLatest, "/api/networth/latest")
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			if body := decodeBody(t, rec); body["error"] == "" {
				t.Error("expected a human-readable error message")
			}
		})
	}
}

func TestGetDataset(t *testing.T) {
	svc := &stubIngestor{dataset: &networth.Dataset{
		Entries:       []*networth.Entry{entryOn(2024, time.January, 1, "100000")},
		SpreadsheetID: "sheet-id",
		SheetName:     "Net Worth Tracking",
		LastUpdated:   time.Now(),
	}}
	h := newHandler(svc)

	rec := doGet(t, h.GetDataset, "/api/networth")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["entry_count"] != float64(1) {
		t.Errorf("entry_count = %v, want 1", body["entry_count"])
	}
	if body["source_sheet_id"] != "sheet-id" {
		t.Errorf("source_sheet_id = %v", body["source_sheet_id"])
	}
}

func TestGetRange(t *testing.T) {
	svc := &stubIngestor{dataset: &networth.Dataset{Entries: []*networth.Entry{
		entryOn(2024, time.March, 1, "3"),
		entryOn(2024, time.January, 1, "1"),
		entryOn(2024, time.April, 1, "4"),
	}}}
	h := newHandler(svc)

	rec := doGet(t, h.GetRange, "/api/networth/range?start=2024-01-01&end=2024-03-01")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["entry_count"] != float64(2) {
		t.Errorf("entry_count = %v, want 2 (boundaries inclusive)", body["entry_count"])
	}
}

func TestGetRange_BadDates(t *testing.T) {
	svc := &stubIngestor{dataset: &networth.Dataset{}}
	h := newHandler(svc)

	for _, target := range []string{
		"/api/networth/range",
		"/api/networth/range?start=2024-01-01",
		"/api/networth/range?start=nope&end=2024-03-01",
	} {
		rec := doGet(t, h.GetRange, target)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}
	}
	if svc.calls != 0 {
		t.Errorf("ingestion ran %d times for invalid requests, want 0", svc.calls)
	}
}

func TestGetSeries(t *testing.T) {
	svc := &stubIngestor{dataset: &networth.Dataset{Entries: []*networth.Entry{
		entryOn(2024, time.February, 1, "200"),
		entryOn(2024, time.January, 1, "100"),
	}}}
	h := newHandler(svc)

	rec := doGet(t, h.GetSeries, "/api/networth/series")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["field"] != "net_worth" {
		t.Errorf("field = %v, want default net_worth", body["field"])
	}
	if body["count"] != float64(2) {
		t.Errorf("count = %v, want 2", body["count"])
	}
}

func TestGetSeries_UnknownField(t *testing.T) {
	svc := &stubIngestor{dataset: &networth.Dataset{}}
	h := newHandler(svc)

	rec := doGet(t, h.GetSeries, "/api/networth/series?field=bogus")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if svc.calls != 0 {
		t.Error("ingestion should not run for an unknown field")
	}
}

func TestGetProjections(t *testing.T) {
	svc := &stubIngestor{dataset: &networth.Dataset{Entries: []*networth.Entry{
		entryOn(2024, time.January, 1, "1000000"),
	}}}
	h := newHandler(svc)

	rec := doGet(t, h.GetProjections, "/api/networth/projections?years=5")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	growth, ok := body["growth_8_percent"].([]any)
	if !ok || len(growth) != 5 {
		t.Errorf("growth_8_percent = %v, want 5 years", body["growth_8_percent"])
	}
}

func TestGetProjections_BadYears(t *testing.T) {
	h := newHandler(&stubIngestor{dataset: &networth.Dataset{}})

	for _, target := range []string{
		"/api/networth/projections?years=0",
		"/api/networth/projections?years=101",
		"/api/networth/projections?years=abc",
	} {
		rec := doGet(t, h.GetProjections, target)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}
	}
}

func TestGetProjections_NoData(t *testing.T) {
	h := newHandler(&stubIngestor{dataset: &networth.Dataset{}})

	rec := doGet(t, h.GetProjections, "/api/networth/projections")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
