package model

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Numeric a coerced Quantity / New Price value; Valid=false marks a coercion failure
type Numeric struct {
	Value decimal.Decimal
	Valid bool
}

// ParseNumeric coerces cell text to a number. Anything that is not a plain
// decimal (optionally with exponent) or does not fit a float64 becomes the
// invalid marker.
func ParseNumeric(s string) Numeric {
	s = strings.TrimSpace(s)
	if s == "" {
		return Numeric{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Numeric{}
	}
	// cells hold float64; a value that overflows it cannot be written as a number
	if math.IsInf(d.InexactFloat64(), 0) {
		return Numeric{}
	}
	return Numeric{Value: d, Valid: true}
}

// CellValue value written to a spreadsheet cell; nil leaves the cell empty
func (n Numeric) CellValue() any {
	if !n.Valid {
		return nil
	}
	if n.Value.IsInteger() && n.Value.Abs().LessThan(decimal.New(1, 15)) {
		return n.Value.IntPart()
	}
	return n.Value.InexactFloat64()
}

func (n Numeric) String() string {
	if !n.Valid {
		return ""
	}
	return n.Value.String()
}

// MarshalJSON invalid values are null, valid ones an unquoted number
func (n Numeric) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(n.Value.String()), nil
}

// CleanRecord a validated input row
type CleanRecord struct {
	RowNo        int     `json:"rowNo"`
	Warehouse    string  `json:"warehouse"`
	MaterialCode string  `json:"materialCode"`
	Quantity     Numeric `json:"quantity"`
	NewPrice     Numeric `json:"newPrice"`
}

// ExtractResult output of validation: kept records in source order plus counts
type ExtractResult struct {
	Records         []CleanRecord `json:"-"`
	TotalRows       int           `json:"totalRows"`
	KeptRows        int           `json:"keptRows"`
	DroppedRows     int           `json:"droppedRows"`
	InvalidQuantity int           `json:"invalidQuantity"`
	InvalidPrice    int           `json:"invalidPrice"`
}
