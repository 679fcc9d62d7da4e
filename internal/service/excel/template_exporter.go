package excel

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/model"
)

// DefaultSingleSheetName sheet name of a one-warehouse workbook
const DefaultSingleSheetName = "Sheet1"

// TemplateExporter writes template sheets into one in-memory workbook.
// Sheet names are claimed through its own SheetNames accumulator, so every
// sheet in the workbook gets a distinct valid name.
type TemplateExporter struct {
	wb          *excelize.File
	projector   *TemplateProjector
	names       SheetNames
	sheets      []string
	headerStyle int
}

// NewTemplateExporter starts an empty workbook
func NewTemplateExporter(projector *TemplateProjector) (*TemplateExporter, error) {
	if projector == nil {
		return nil, errors.New("template projector is nil")
	}

	wb := excelize.NewFile()
	headerStyle, err := wb.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "top"},
	})
	if err != nil {
		_ = wb.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	return &TemplateExporter{
		wb:          wb,
		projector:   projector,
		names:       NewSheetNames(),
		headerStyle: headerStyle,
	}, nil
}

// AddSheet claims a unique sheet name for key and writes the template
// header plus one row per record. It returns the sheet name used.
func (e *TemplateExporter) AddSheet(key string, records []model.CleanRecord) (string, error) {
	name := e.names.Claim(key)

	if len(e.sheets) == 0 {
		// reuse the default sheet so the workbook has no stray empty tab
		defaultSheet := e.wb.GetSheetName(0)
		if err := e.wb.SetSheetName(defaultSheet, name); err != nil {
			return "", fmt.Errorf("failed to rename sheet to %q: %w", name, err)
		}
	} else {
		idx, err := e.wb.NewSheet(name)
		if err != nil {
			return "", fmt.Errorf("failed to create sheet %q: %w", name, err)
		}
		// NewSheet returns the index of an existing sheet on a name match
		if idx != len(e.sheets) {
			return "", fmt.Errorf("sheet name %q collides with sheet %q", name, e.wb.GetSheetName(idx))
		}
	}
	e.sheets = append(e.sheets, name)

	if err := e.writeHeader(name); err != nil {
		return "", err
	}
	for i, row := range e.projector.Build(records) {
		if err := writeRow(e.wb, name, i+2, row.Values()); err != nil {
			return "", fmt.Errorf("failed to write row %d of sheet %q: %w", i+2, name, err)
		}
	}
	return name, nil
}

func (e *TemplateExporter) writeHeader(sheet string) error {
	header := make([]any, len(model.TemplateColumns))
	for i, col := range model.TemplateColumns {
		header[i] = col
	}
	if err := writeRow(e.wb, sheet, 1, header); err != nil {
		return fmt.Errorf("failed to write header of sheet %q: %w", sheet, err)
	}

	last, _ := excelize.CoordinatesToCellName(len(model.TemplateColumns), 1)
	if err := e.wb.SetCellStyle(sheet, "A1", last, e.headerStyle); err != nil {
		return fmt.Errorf("failed to style header of sheet %q: %w", sheet, err)
	}
	_ = e.wb.SetColWidth(sheet, "A", "A", 18)
	_ = e.wb.SetColWidth(sheet, "B", "J", 14)
	return nil
}

// writeRow writes values from column A; nil values leave the cell empty.
func writeRow(wb *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := wb.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

// SheetList sheet names in the order they were added
func (e *TemplateExporter) SheetList() []string {
	out := make([]string, len(e.sheets))
	copy(out, e.sheets)
	return out
}

// Bytes serializes the workbook. At least one sheet must have been added.
func (e *TemplateExporter) Bytes() ([]byte, error) {
	if len(e.sheets) == 0 {
		return nil, errors.New("workbook has no template sheets")
	}
	e.wb.SetActiveSheet(0)
	buf, err := e.wb.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Close releases the workbook.
func (e *TemplateExporter) Close() error {
	if e.wb != nil {
		return e.wb.Close()
	}
	return nil
}

// SingleSheetWorkbook builds a one-sheet workbook for records.
func SingleSheetWorkbook(projector *TemplateProjector, records []model.CleanRecord) ([]byte, error) {
	exp, err := NewTemplateExporter(projector)
	if err != nil {
		return nil, err
	}
	defer exp.Close()

	if _, err := exp.AddSheet(DefaultSingleSheetName, records); err != nil {
		return nil, err
	}
	return exp.Bytes()
}
