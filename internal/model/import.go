package model

// WarehouseSummary one entry of the warehouse listing
type WarehouseSummary struct {
	Key       string `json:"warehouse"`
	Rows      int    `json:"rows"`
	SheetName string `json:"sheetName"` // name used in the combined workbook
}

// ImportSummary what one upload produced, as shown to the caller
type ImportSummary struct {
	Filename   string             `json:"filename"`
	Format     string             `json:"format"`
	SheetName  string             `json:"sheetName,omitempty"`
	Sheets     []SheetInfo        `json:"sheets,omitempty"`
	Columns    map[string]string  `json:"columns"` // canonical field -> source header
	Counts     ExtractResult      `json:"counts"`
	Warehouses []WarehouseSummary `json:"warehouses"`
}
