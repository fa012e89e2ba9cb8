package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/dvloznov/networth-dashboard/internal/config"
	"github.com/dvloznov/networth-dashboard/internal/logger"
	"github.com/dvloznov/networth-dashboard/internal/networth"
	"github.com/dvloznov/networth-dashboard/internal/sheets"
)

func main() {
	// Initialize structured logger
	log := logger.New()

	// Parse CLI flags
	spreadsheetID := flag.String("spreadsheet-id", "", "spreadsheet ID (defaults to configured sheet)")
	sheetName := flag.String("sheet", "", "sheet tab name (defaults to configured tab)")
	flag.Parse()

	cfg := config.Load()

	// Create context with timeout so CLI doesn't hang
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// Add logger to context
	ctx = logger.WithContext(ctx, log)

	grid, err := sheets.NewClient(ctx, sheets.Credentials{
		JSON: cfg.Sheets.CredentialsJSON,
		File: cfg.Sheets.CredentialsFile,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create sheets client")
	}

	svc := networth.NewService(grid, cfg.Sheets.SpreadsheetID, cfg.Sheets.SheetName, log)

	dataset, err := svc.Ingest(ctx, *spreadsheetID, *sheetName)
	if err != nil {
		log.Fatal().Err(err).Msg("Ingestion failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dataset); err != nil {
		log.Fatal().Err(err).Msg("Failed to encode dataset")
	}
}
