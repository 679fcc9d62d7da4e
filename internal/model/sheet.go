package model

// RawTable an input table: header labels plus text rows padded to header width
type RawTable struct {
	SheetName string      `json:"sheetName"`
	Format    string      `json:"format"`
	Headers   []string    `json:"headers"`
	Rows      [][]string  `json:"-"`
	SourceID  string      `json:"sourceId,omitempty"` // workbook file id
	Sheets    []SheetInfo `json:"sheets,omitempty"`   // every sheet of the workbook
}

// Cell returns the raw value at (row, col), "" when out of range.
func (t *RawTable) Cell(row, col int) string {
	if t == nil || row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// SheetInfo a sheet of an uploaded workbook
type SheetInfo struct {
	Name     string `json:"name"`
	RowCount int    `json:"rowCount"`
}
