package networth

import (
	"sort"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Dataset is the full set of entries produced by one ingestion, plus
// provenance for where and when they were loaded. It is built fresh on
// every ingestion and never cached; queries return sorted views and leave
// the underlying slice alone. Entries keep sheet insertion order, which
// is not guaranteed to be chronological, so every query sorts for itself.
type Dataset struct {
	Entries       []*Entry  `json:"entries"`
	SpreadsheetID string    `json:"source_sheet_id"`
	SheetName     string    `json:"source_sheet_name"`
	LastUpdated   time.Time `json:"last_updated"`
}

// Point is one (date, value) sample of a chart series.
type Point struct {
	Date  civil.Date      `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// Latest returns the entry with the maximum date, or nil when the dataset
// is empty.
func (d *Dataset) Latest() *Entry {
	var latest *Entry
	for _, e := range d.Entries {
		if latest == nil || e.Date.After(latest.Date) {
			latest = e
		}
	}
	return latest
}

// ByDate returns the entry for an exact date, or nil. The sheet does not
// enforce unique dates; when duplicates exist the first one in sheet order
// wins.
func (d *Dataset) ByDate(date civil.Date) *Entry {
	for _, e := range d.Entries {
		if e.Date == date {
			return e
		}
	}
	return nil
}

// InRange returns all entries with start <= date <= end, both bounds
// inclusive, sorted ascending by date.
func (d *Dataset) InRange(start, end civil.Date) []*Entry {
	out := make([]*Entry, 0)
	for _, e := range d.Entries {
		if !e.Date.Before(start) && !e.Date.After(end) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Series extracts the chart series for one decimal field, ascending by
// date, skipping entries where the field is absent.
func (d *Dataset) Series(field Field) []Point {
	points := make([]Point, 0, len(d.Entries))
	for _, e := range d.Entries {
		if v := e.decimalField(field); v != nil {
			points = append(points, Point{Date: e.Date, Value: *v})
		}
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}
