package networth

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// dateLayouts are tried in order; the first layout that parses wins. The
// order is part of the contract with the sheet: a day/month-swappable value
// like "03/04/2024" always resolves as US month-first because that layout
// comes before the day-first one. Do not "improve" this by guessing.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"01/02/06",
	"02/01/2006",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
}

// serialEpoch is day zero of the spreadsheet serial date encoding. Sheets
// inherited Lotus 1-2-3's epoch, which is 1899-12-30 once the historical
// leap-year bug is accounted for: serial 1 is 1899-12-31.
var serialEpoch = civil.Date{Year: 1899, Month: time.December, Day: 30}

// Serial values outside this window would leave the year 1..9999 range.
const (
	minSerial = -693593
	maxSerial = 2958465
)

// cellString renders a raw cell value the way the sheet displays it.
// Unformatted numeric cells arrive as float64 after JSON decoding; the
// shortest round-trip form keeps "100000" from becoming "100000.000000".
func cellString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case bool:
		if c {
			return "TRUE"
		}
		return "FALSE"
	default:
		return fmt.Sprint(c)
	}
}

// parseDate converts one raw cell into a civil date. Textual layouts are
// tried first; failing those, the value is interpreted as a spreadsheet
// serial day offset. Returns ok=false when neither interpretation works.
func parseDate(v any) (civil.Date, bool) {
	s := strings.TrimSpace(cellString(v))
	if s == "" {
		return civil.Date{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return civil.DateOf(t), true
		}
	}

	serial, err := strconv.ParseFloat(s, 64)
	if err != nil || serial < minSerial || serial > maxSerial {
		return civil.Date{}, false
	}
	return serialEpoch.AddDays(int(serial)), true
}

// decimalSentinels are cell values that mean "no value", not zero.
var decimalSentinels = map[string]bool{
	"":         true,
	"-":        true,
	"n/a":      true,
	"—":   true, // em dash
	"–":   true, // en dash
	"â€”": true, // em dash seen double-encoded in sheet exports
}

var decimalCleaner = strings.NewReplacer("$", "", ",", "", " ", "")

// decimalSentinel reports whether the raw cell is one of the explicit
// "no value" markers. These are expected in the sheet and are not worth a
// warning, unlike genuinely unparseable text.
func decimalSentinel(v any) bool {
	return decimalSentinels[strings.ToLower(strings.TrimSpace(cellString(v)))]
}

// parseDecimal converts one raw cell into an exact decimal. Currency
// symbols, thousands separators, and spaces are stripped; a trailing "%"
// divides by 100; accounting-style parentheses negate. Sentinel values and
// anything that still fails to parse resolve to ok=false, never an error.
func parseDecimal(v any) (decimal.Decimal, bool) {
	s := strings.TrimSpace(cellString(v))
	if decimalSentinels[strings.ToLower(s)] {
		return decimal.Decimal{}, false
	}

	cleaned := decimalCleaner.Replace(s)

	if strings.HasSuffix(cleaned, "%") {
		if d, err := decimal.NewFromString(strings.TrimSuffix(cleaned, "%")); err == nil {
			return d.Div(decimal.NewFromInt(100)), true
		}
		// Not a valid percentage; fall through to the plain parse.
	}

	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		cleaned = "-" + cleaned[1:len(cleaned)-1]
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// parseInt converts one raw cell into an integer, tolerating "5.0"-style
// values by parsing as a float and truncating.
func parseInt(v any) (int, bool) {
	s := strings.TrimSpace(cellString(v))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// parseText converts one raw cell into free text. Empty stays absent.
func parseText(v any) (string, bool) {
	s := cellString(v)
	if s == "" {
		return "", false
	}
	return s, true
}
