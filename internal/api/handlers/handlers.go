package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"

	"github.com/dvloznov/networth-dashboard/internal/api/middleware"
	"github.com/dvloznov/networth-dashboard/internal/networth"
)

// Ingestor runs one ingestion and returns a fresh dataset. Empty arguments
// mean "use the configured defaults".
type Ingestor interface {
	Ingest(ctx context.Context, spreadsheetID, sheetName string) (*networth.Dataset, error)
}

// NetWorthHandler serves the dashboard API. Every endpoint re-ingests the
// sheet: the pipeline is stateless and holds no cache, so concurrent
// requests never share mutable data.
type NetWorthHandler struct {
	svc Ingestor
	log zerolog.Logger
}

// NewNetWorthHandler creates a new net worth API handler.
func NewNetWorthHandler(svc Ingestor, log zerolog.Logger) *NetWorthHandler {
	return &NetWorthHandler{svc: svc, log: log}
}

// load runs an ingestion for the request and maps classified failures to
// HTTP responses. A false return means the response was already written.
func (h *NetWorthHandler) load(w http.ResponseWriter, r *http.Request) (*networth.Dataset, bool) {
	dataset, err := h.svc.Ingest(r.Context(), "", "")
	if err != nil {
		h.log.Error().Err(err).Msg("Ingestion failed")
		switch {
		case errors.Is(err, networth.ErrEmptySheet):
			middleware.WriteError(w, http.StatusInternalServerError,
				fmt.Sprintf("Sheet is empty - check spreadsheet configuration: %v", err))
		case errors.Is(err, networth.ErrTransport):
			middleware.WriteError(w, http.StatusBadGateway,
				fmt.Sprintf("Could not fetch sheet data: %v", err))
		default:
			middleware.WriteError(w, http.StatusInternalServerError,
				fmt.Sprintf("Failed to load net worth data: %v", err))
		}
		return nil, false
	}
	return dataset, true
}

// GetDataset handles GET /api/networth
func (h *NetWorthHandler) GetDataset(w http.ResponseWriter, r *http.Request) {
	dataset, ok := h.load(w, r)
	if !ok {
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"entries":           dataset.Entries,
		"source_sheet_id":   dataset.SpreadsheetID,
		"source_sheet_name": dataset.SheetName,
		"last_updated":      dataset.LastUpdated,
		"entry_count":       len(dataset.Entries),
	})
}

// GetLatest handles GET /api/networth/latest
func (h *NetWorthHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	dataset, ok := h.load(w, r)
	if !ok {
		return
	}

	latest := dataset.Latest()
	if latest == nil {
		middleware.WriteError(w, http.StatusNotFound, "No net worth data available")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, latest)
}

// GetSummary handles GET /api/networth/summary
func (h *NetWorthHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	dataset, ok := h.load(w, r)
	if !ok {
		return
	}

	summary := dataset.Summary()
	if summary == nil {
		middleware.WriteError(w, http.StatusNotFound, "No net worth data available")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, summary)
}

// GetRange handles GET /api/networth/range?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *NetWorthHandler) GetRange(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start, err := civil.ParseDate(query.Get("start"))
	if err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid or missing start date (want YYYY-MM-DD)")
		return
	}
	end, err := civil.ParseDate(query.Get("end"))
	if err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid or missing end date (want YYYY-MM-DD)")
		return
	}

	dataset, ok := h.load(w, r)
	if !ok {
		return
	}

	entries := dataset.InRange(start, end)
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"entries":     entries,
		"entry_count": len(entries),
		"start":       start,
		"end":         end,
	})
}

// GetSeries handles GET /api/networth/series?field=net_worth
func (h *NetWorthHandler) GetSeries(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("field")
	if name == "" {
		name = string(networth.FieldNetWorth)
	}
	field, known := networth.KnownField(name)
	if !known {
		middleware.WriteError(w, http.StatusBadRequest, fmt.Sprintf("Unknown field: %q", name))
		return
	}

	dataset, ok := h.load(w, r)
	if !ok {
		return
	}

	points := dataset.Series(field)
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"field":  field,
		"points": points,
		"count":  len(points),
	})
}

// GetProjections handles GET /api/networth/projections?years=30
func (h *NetWorthHandler) GetProjections(w http.ResponseWriter, r *http.Request) {
	years := 30
	if s := r.URL.Query().Get("years"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 100 {
			middleware.WriteError(w, http.StatusBadRequest, "years must be an integer between 1 and 100")
			return
		}
		years = n
	}

	dataset, ok := h.load(w, r)
	if !ok {
		return
	}

	projection := dataset.Projection(years)
	if projection == nil {
		middleware.WriteError(w, http.StatusNotFound, "No net worth data available")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, projection)
}
