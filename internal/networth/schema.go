package networth

import "strings"

// FieldMap records which raw column each semantic field was found at in
// the header row. It is built once per ingestion and read-only afterward.
// A known field missing from the header simply has no key here; entries
// then omit it. There is no error condition at this stage: a header with
// no recognized labels yields an empty map and date-less rows downstream.
type FieldMap map[Field]int

// MapHeader maps a raw header row onto the known field vocabulary.
// Labels the vocabulary doesn't know are skipped, which keeps ingestion
// forward-compatible with columns added to the sheet later. When a label
// appears twice the first occurrence wins.
func MapHeader(header []any) FieldMap {
	fm := make(FieldMap)
	for i, cell := range header {
		label := strings.TrimSpace(cellString(cell))
		field, ok := columnMapping[label]
		if !ok {
			continue
		}
		if _, seen := fm[field]; seen {
			continue
		}
		fm[field] = i
	}
	return fm
}
