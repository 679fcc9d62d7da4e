package parser

// Field a required semantic column
type Field int

const (
	FieldWarehouse Field = iota
	FieldMaterialCode
	FieldQuantity
	FieldNewPrice
)

// RequiredFields every field the template needs, in reporting order
var RequiredFields = []Field{
	FieldWarehouse,
	FieldMaterialCode,
	FieldQuantity,
	FieldNewPrice,
}

// String returns the canonical column name used in messages and output.
func (f Field) String() string {
	switch f {
	case FieldWarehouse:
		return "Warehouse"
	case FieldMaterialCode:
		return "Material Code"
	case FieldQuantity:
		return "Quantity"
	case FieldNewPrice:
		return "New Price"
	default:
		return "Unknown"
	}
}

// FieldMapping where a field was found in the uploaded header
type FieldMapping struct {
	Field       Field  `json:"field"`
	ColumnIndex int    `json:"columnIndex"` // 0-based column in the source table
	ColumnName  string `json:"columnName"`  // header exactly as uploaded
	MatchedKey  string `json:"matchedKey"`  // synonym that matched
}

// ColumnMap resolved columns for every required field
type ColumnMap map[Field]FieldMapping

// Headers canonical field name -> uploaded header, for summaries
func (m ColumnMap) Headers() map[string]string {
	out := make(map[string]string, len(m))
	for f, mapping := range m {
		out[f.String()] = mapping.ColumnName
	}
	return out
}
