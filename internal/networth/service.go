package networth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Classified ingestion failures. Callers branch with errors.Is; everything
// below row level (bad cells, bad rows) is recovered during normalization
// and never surfaces as an error.
var (
	// ErrTransport wraps a failure to obtain the raw grid from the sheet
	// backend. Retrying is the caller's decision, never done here.
	ErrTransport = errors.New("could not fetch sheet data")

	// ErrEmptySheet means the grid was fetched but holds no rows at all,
	// not even headers. Distinct from ErrTransport because it points at a
	// configuration problem rather than a transient fault.
	ErrEmptySheet = errors.New("sheet contains no rows")
)

// GridFetcher obtains the raw cell grid for one sheet. The first returned
// row is the header row. Implementations must be read-only with respect to
// the source.
type GridFetcher interface {
	FetchGrid(ctx context.Context, spreadsheetID, sheetName string) ([][]any, error)
}

// Service runs the ingestion pipeline: fetch grid, map the header, and
// normalize rows into a dataset. It holds no state between calls; every
// Ingest re-fetches and re-parses the whole sheet, so concurrent calls are
// independent by construction.
type Service struct {
	grid          GridFetcher
	spreadsheetID string
	sheetName     string
	log           zerolog.Logger
}

// NewService creates an ingestion service. spreadsheetID and sheetName are
// the defaults applied when Ingest is called with empty arguments; they
// come from the caller's configuration, not from this package.
func NewService(grid GridFetcher, spreadsheetID, sheetName string, log zerolog.Logger) *Service {
	return &Service{
		grid:          grid,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		log:           log,
	}
}

// Ingest loads the sheet and returns a fresh dataset stamped with the
// current time. Empty spreadsheetID or sheetName fall back to the
// service's configured defaults.
func (s *Service) Ingest(ctx context.Context, spreadsheetID, sheetName string) (*Dataset, error) {
	if spreadsheetID == "" {
		spreadsheetID = s.spreadsheetID
	}
	if sheetName == "" {
		sheetName = s.sheetName
	}

	rows, err := s.grid.FetchGrid(ctx, spreadsheetID, sheetName)
	if err != nil {
		return nil, fmt.Errorf("ingest: fetching grid %s!%q: %w: %w", spreadsheetID, sheetName, ErrTransport, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("ingest: grid %s!%q: %w", spreadsheetID, sheetName, ErrEmptySheet)
	}

	fieldMap := MapHeader(rows[0])
	entries := normalizeRows(fieldMap, rows[1:], s.log)

	s.log.Info().
		Str("spreadsheet_id", spreadsheetID).
		Str("sheet_name", sheetName).
		Int("rows", len(rows)-1).
		Int("entries", len(entries)).
		Msg("Loaded net worth entries")

	return &Dataset{
		Entries:       entries,
		SpreadsheetID: spreadsheetID,
		SheetName:     sheetName,
		LastUpdated:   time.Now(),
	}, nil
}
