// Package sheets wraps the Google Sheets API as the grid transport for
// ingestion. The client is read-only: it requests the spreadsheets.readonly
// scope and only ever calls values.get.
package sheets

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Credentials locates a Google service account key. Resolution order:
// inline JSON, then a key file path, then a local credentials.json next to
// the binary. The service account's email must be granted reader access on
// the spreadsheet.
type Credentials struct {
	JSON string
	File string
}

// localCredentialsFile is the development fallback key location.
const localCredentialsFile = "credentials.json"

// Client fetches raw cell grids from Google Sheets.
type Client struct {
	svc *sheetsapi.Service
	log zerolog.Logger
}

// NewClient builds a Sheets API client from the given credentials.
func NewClient(ctx context.Context, creds Credentials, log zerolog.Logger) (*Client, error) {
	opts := []option.ClientOption{
		option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope),
	}

	switch {
	case creds.JSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(creds.JSON)))
	case creds.File != "":
		if _, err := os.Stat(creds.File); err != nil {
			return nil, fmt.Errorf("sheets: credentials file %s: %w", creds.File, err)
		}
		opts = append(opts, option.WithCredentialsFile(creds.File))
	default:
		if _, err := os.Stat(localCredentialsFile); err != nil {
			return nil, fmt.Errorf(
				"sheets: no Google credentials found; set GOOGLE_SERVICE_ACCOUNT_JSON, " +
					"GOOGLE_SERVICE_ACCOUNT_FILE, or place credentials.json in the working directory")
		}
		log.Info().Str("file", localCredentialsFile).Msg("Using local credentials file")
		opts = append(opts, option.WithCredentialsFile(localCredentialsFile))
	}

	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: creating service: %w", err)
	}

	return &Client{svc: svc, log: log}, nil
}

// FetchGrid reads every populated cell of one sheet tab. The first row of
// the result is the header row. Cells come back unformatted (numbers as
// numbers, dates as serial values) so the ingestion parsers see the stored
// values rather than display strings.
func (c *Client) FetchGrid(ctx context.Context, spreadsheetID, sheetName string) ([][]any, error) {
	// Quoting the tab name keeps names with spaces or parentheses valid
	// in A1 notation.
	readRange := fmt.Sprintf("'%s'", sheetName)

	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).
		ValueRenderOption("UNFORMATTED_VALUE").
		DateTimeRenderOption("SERIAL_NUMBER").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: reading %s!%s: %w", spreadsheetID, readRange, err)
	}

	c.log.Debug().
		Str("spreadsheet_id", spreadsheetID).
		Str("sheet_name", sheetName).
		Int("rows", len(resp.Values)).
		Msg("Fetched sheet grid")

	return resp.Values, nil
}
