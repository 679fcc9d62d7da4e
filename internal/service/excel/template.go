package excel

import "github.com/Iulian7974/App-template-livrare-pe-magazine/internal/model"

// TemplateProjector maps clean records onto the fixed 10-column template.
type TemplateProjector struct {
	consts model.TemplateConstants
}

// NewTemplateProjector creates a projector writing consts on every row
func NewTemplateProjector(consts model.TemplateConstants) *TemplateProjector {
	return &TemplateProjector{consts: consts}
}

// Row projects one record.
func (p *TemplateProjector) Row(rec model.CleanRecord) model.TemplateRow {
	return model.TemplateRow{
		MaterialCode: rec.MaterialCode,
		Quantity:     rec.Quantity,
		ValType:      p.consts.ValType,
		NewPrice:     rec.NewPrice,
		Plant:        p.consts.Plant,
	}
}

// Build projects records in order.
func (p *TemplateProjector) Build(records []model.CleanRecord) []model.TemplateRow {
	out := make([]model.TemplateRow, 0, len(records))
	for _, rec := range records {
		out = append(out, p.Row(rec))
	}
	return out
}

// BuildTemplate projects with the default constants (Val. Type "A", Plant "L402").
func BuildTemplate(records []model.CleanRecord) []model.TemplateRow {
	return NewTemplateProjector(model.DefaultTemplateConstants()).Build(records)
}
