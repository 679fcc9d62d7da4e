package model

// TemplateColumns the fixed N-ERP import header, in output order
var TemplateColumns = []string{
	"Material Code",
	"Quantity",
	"Val. Type",
	"New Price",
	"I/C New Price",
	"I/C New Cur.",
	"Plant",
	"S / L",
	"Biz.ModelGroup",
	"Biz.Category",
}

// Default template constants.
const (
	DefaultValType = "A"
	DefaultPlant   = "L402"
)

// TemplateConstants values written identically on every template row
type TemplateConstants struct {
	ValType string `toml:"val_type" yaml:"val_type" json:"valType" validate:"required,max=16"`
	Plant   string `toml:"plant" yaml:"plant" json:"plant" validate:"required,max=16"`
}

// DefaultTemplateConstants returns Val. Type "A" and Plant "L402".
func DefaultTemplateConstants() TemplateConstants {
	return TemplateConstants{
		ValType: DefaultValType,
		Plant:   DefaultPlant,
	}
}

// TemplateRow one output row; blank columns are empty strings, never absent
type TemplateRow struct {
	MaterialCode  string  `json:"Material Code"`
	Quantity      Numeric `json:"Quantity"`
	ValType       string  `json:"Val. Type"`
	NewPrice      Numeric `json:"New Price"`
	ICNewPrice    string  `json:"I/C New Price"`
	ICNewCur      string  `json:"I/C New Cur."`
	Plant         string  `json:"Plant"`
	StorageLoc    string  `json:"S / L"`
	BizModelGroup string  `json:"Biz.ModelGroup"`
	BizCategory   string  `json:"Biz.Category"`
}

// Values returns the row in TemplateColumns order. Invalid numbers are nil.
func (r TemplateRow) Values() []any {
	return []any{
		r.MaterialCode,
		r.Quantity.CellValue(),
		r.ValType,
		r.NewPrice.CellValue(),
		r.ICNewPrice,
		r.ICNewCur,
		r.Plant,
		r.StorageLoc,
		r.BizModelGroup,
		r.BizCategory,
	}
}
