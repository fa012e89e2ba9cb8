package networth

import (
	"github.com/rs/zerolog"
)

// normalizeRows turns raw data rows into entries using the field map.
// Row numbering in log output is 1-based and counts the header, matching
// how the sheet UI numbers rows.
//
// Per-row policy: rows that are entirely empty, or whose date cell is
// missing, out of range, or unparseable, are skipped without failing the
// ingestion. Every other cell parses independently; an unparseable cell
// leaves its field absent and logs a warning with the offending text.
func normalizeRows(fm FieldMap, rows [][]any, log zerolog.Logger) []*Entry {
	dateCol, hasDate := fm[FieldDate]

	entries := make([]*Entry, 0, len(rows))
	for i, row := range rows {
		rowNum := i + 2 // 1-based, after the header row

		if emptyRow(row) {
			continue
		}

		if !hasDate || dateCol >= len(row) {
			log.Debug().Int("row", rowNum).Msg("Skipping row: no date column")
			continue
		}
		date, ok := parseDate(row[dateCol])
		if !ok {
			log.Debug().
				Int("row", rowNum).
				Str("raw", cellString(row[dateCol])).
				Msg("Skipping row: no valid date")
			continue
		}

		entry := &Entry{Date: date}

		for field, col := range fm {
			if field == FieldDate || col >= len(row) {
				continue
			}
			cell := row[col]

			switch field {
			case FieldNotes:
				if s, ok := parseText(cell); ok {
					entry.Notes = &s
				}
			case FieldDaysSinceLast:
				if n, ok := parseInt(cell); ok {
					entry.DaysSinceLast = &n
				}
			default:
				d, ok := parseDecimal(cell)
				if !ok {
					if !decimalSentinel(cell) {
						log.Warn().
							Int("row", rowNum).
							Str("field", string(field)).
							Str("raw", cellString(cell)).
							Msg("Could not parse decimal cell")
					}
					continue
				}
				entry.setDecimal(field, d)
			}
		}

		entries = append(entries, entry)
	}

	return entries
}

// emptyRow reports whether every cell in the row is empty or absent.
func emptyRow(row []any) bool {
	for _, cell := range row {
		if cellString(cell) != "" {
			return false
		}
	}
	return true
}
