package excel

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/model"
)

// ErrEmptySheet the selected sheet has no header row
var ErrEmptySheet = errors.New("empty sheet")

// Parser reads an uploaded workbook
type Parser struct {
	file   *excelize.File
	fileID string
}

// NewParser creates a parser with a fresh file id
func NewParser() *Parser {
	return &Parser{
		fileID: uuid.New().String(),
	}
}

// LoadFile opens the workbook from reader
func (p *Parser) LoadFile(reader io.Reader) error {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return fmt.Errorf("failed to open excel: %w", err)
	}
	p.file = file
	return nil
}

// GetFileID identifier logged with the import of this workbook
func (p *Parser) GetFileID() string {
	return p.fileID
}

// GetSheets lists sheets with their row counts
func (p *Parser) GetSheets() ([]model.SheetInfo, error) {
	if p.file == nil {
		return nil, errors.New("no file loaded")
	}

	sheets := p.file.GetSheetList()
	result := make([]model.SheetInfo, 0, len(sheets))
	for _, name := range sheets {
		rows, err := p.file.GetRows(name)
		if err != nil {
			continue
		}
		result = append(result, model.SheetInfo{
			Name:     name,
			RowCount: len(rows),
		})
	}
	return result, nil
}

// ReadTable reads a sheet as a raw table; an empty sheet name selects the
// first sheet. Cells are read unformatted so numbers keep their stored value.
func (p *Parser) ReadTable(sheet string) (*model.RawTable, error) {
	if p.file == nil {
		return nil, errors.New("no file loaded")
	}

	if sheet == "" {
		sheets := p.file.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := p.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySheet, sheet)
	}

	headers := rows[0]
	return &model.RawTable{
		SheetName: sheet,
		Headers:   headers,
		Rows:      PadRows(rows[1:], len(headers)),
	}, nil
}

// Close releases the workbook
func (p *Parser) Close() error {
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}

// PadRows pads or truncates every row to width columns.
func PadRows(rows [][]string, width int) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		normalized := make([]string, width)
		copy(normalized, row)
		out = append(out, normalized)
	}
	return out
}
