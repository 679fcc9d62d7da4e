package parser

import (
	"errors"
	"strings"

	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/model"
)

// ValidateAndExtract resolves the required columns and builds the clean
// record set. A *MissingColumnsError aborts; bad numbers and empty keys do not.
func ValidateAndExtract(table *model.RawTable) (*model.ExtractResult, error) {
	if table == nil {
		return nil, errors.New("table is nil")
	}
	cols, err := ResolveColumns(table.Headers)
	if err != nil {
		return nil, err
	}
	return Extract(table, cols), nil
}

// Extract builds clean records from already resolved columns.
// Rows with an empty Warehouse or Material Code are dropped and counted;
// rows with unparsable Quantity / New Price are kept with the invalid marker.
func Extract(table *model.RawTable, cols ColumnMap) *model.ExtractResult {
	result := &model.ExtractResult{
		Records: make([]model.CleanRecord, 0, len(table.Rows)),
	}

	colWH := cols[FieldWarehouse].ColumnIndex
	colMat := cols[FieldMaterialCode].ColumnIndex
	colQty := cols[FieldQuantity].ColumnIndex
	colPrice := cols[FieldNewPrice].ColumnIndex

	for i := range table.Rows {
		result.TotalRows++

		warehouse := strings.TrimSpace(table.Cell(i, colWH))
		material := strings.TrimSpace(table.Cell(i, colMat))
		if warehouse == "" || material == "" {
			result.DroppedRows++
			continue
		}

		rec := model.CleanRecord{
			RowNo:        i + 2, // header is row 1
			Warehouse:    warehouse,
			MaterialCode: material,
			Quantity:     model.ParseNumeric(table.Cell(i, colQty)),
			NewPrice:     model.ParseNumeric(table.Cell(i, colPrice)),
		}
		if !rec.Quantity.Valid {
			result.InvalidQuantity++
		}
		if !rec.NewPrice.Valid {
			result.InvalidPrice++
		}
		result.Records = append(result.Records, rec)
	}

	result.KeptRows = len(result.Records)
	return result
}
