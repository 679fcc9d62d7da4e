package importer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/model"
	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/parser"
)

const coordinatorCSV = "Depozit,Cod material,Cantitate,Pret nou,Observatii\n" +
	"B,M1,1,1,x\n" +
	"10,M2,abc,2,\n" +
	"2,M3,3,,\n" +
	"10,M4,4,4.5,\n" +
	",M5,5,5,\n" +
	"2,,6,6,\n"

func TestCoordinatorImport(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	c := NewCoordinator(Options{}, zap.New(core))

	result, err := c.Import(strings.NewReader(coordinatorCSV), "uploads/preturi.csv")
	require.NoError(t, err)

	assert.Equal(t, "preturi.csv", result.Filename)
	assert.Equal(t, []string{"2", "10", "B"}, result.Partitions.Keys())
	assert.Equal(t, 6, result.Extract.TotalRows)
	assert.Equal(t, 4, result.Extract.KeptRows)
	assert.Equal(t, 2, result.Extract.DroppedRows)
	assert.Equal(t, 1, result.Extract.InvalidQuantity)
	assert.Equal(t, 1, result.Extract.InvalidPrice)

	entries := logs.FilterMessage("input imported").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 3, entries[0].ContextMap()["warehouses"])

	summary := result.Summary()
	assert.Equal(t, "csv", summary.Format)
	assert.Equal(t, "Depozit", summary.Columns["Warehouse"])
	assert.Equal(t, []model.WarehouseSummary{
		{Key: "2", Rows: 1, SheetName: "2"},
		{Key: "10", Rows: 2, SheetName: "10"},
		{Key: "B", Rows: 1, SheetName: "B"},
	}, summary.Warehouses)
}

func TestCoordinatorImportMissingColumns(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	c := NewCoordinator(Options{}, zap.New(core))

	_, err := c.Import(strings.NewReader("Warehouse,Qty\n1,2\n"), "x.csv")
	require.Error(t, err)
	assert.True(t, errors.Is(err, parser.ErrMissingColumns))

	var missing *parser.MissingColumnsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"Material Code", "New Price"}, missing.Fields)
	assert.Equal(t, 1, logs.Len())
}

func TestCoordinatorImportUnsupported(t *testing.T) {
	c := NewCoordinator(Options{}, nil)
	_, err := c.Import(strings.NewReader("{}"), "prices.json")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestCoordinatorPreview(t *testing.T) {
	c := NewCoordinator(Options{Template: model.TemplateConstants{ValType: "B", Plant: "X1"}}, nil)

	var b strings.Builder
	b.WriteString("Warehouse,Material Code,Quantity,New Price\n")
	for i := 0; i < 250; i++ {
		b.WriteString("5,M,1,2\n")
	}
	result, err := c.Import(strings.NewReader(b.String()), "big.csv")
	require.NoError(t, err)

	p, err := c.Preview(result, "5", 0)
	require.NoError(t, err)
	assert.Len(t, p.Rows, DefaultPreviewLimit)
	assert.Equal(t, 250, p.Total)
	assert.Equal(t, model.TemplateColumns, p.Columns)
	assert.Equal(t, "B", p.Rows[0].ValType)
	assert.Equal(t, "X1", p.Rows[0].Plant)

	p, err = c.Preview(result, "5", 1000)
	require.NoError(t, err)
	assert.Len(t, p.Rows, MaxPreviewLimit)

	p, err = c.Preview(result, "5", 3)
	require.NoError(t, err)
	assert.Len(t, p.Rows, 3)

	_, err = c.Preview(result, "6", 3)
	assert.True(t, errors.Is(err, model.ErrUnknownWarehouse))
}

func TestCoordinatorImportCorruptWorkbook(t *testing.T) {
	c := NewCoordinator(Options{}, nil)
	_, err := c.Import(strings.NewReader("not a zip"), "prices.xlsx")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreadableInput))

	_, err = c.Import(strings.NewReader(""), "prices.csv")
	assert.True(t, errors.Is(err, ErrEmptyTable))
}

func TestCoordinatorImportWorkbookSheets(t *testing.T) {
	wb := excelize.NewFile()
	require.NoError(t, wb.SetSheetName("Sheet1", "Preturi"))
	require.NoError(t, wb.SetSheetRow("Preturi", "A1", &[]any{"Warehouse", "Material Code", "Quantity", "New Price"}))
	require.NoError(t, wb.SetSheetRow("Preturi", "A2", &[]any{"7", "M1", 1, 2}))
	_, err := wb.NewSheet("Note")
	require.NoError(t, err)
	require.NoError(t, wb.SetCellValue("Note", "A1", "ignored"))
	var buf bytes.Buffer
	require.NoError(t, wb.Write(&buf))
	require.NoError(t, wb.Close())

	core, logs := observer.New(zap.InfoLevel)
	c := NewCoordinator(Options{}, zap.New(core))

	result, err := c.Import(&buf, "preturi.xlsx")
	require.NoError(t, err)
	assert.Equal(t, "Preturi", result.SheetName)
	assert.NotEmpty(t, result.SourceID)
	assert.Equal(t, []model.SheetInfo{{Name: "Preturi", RowCount: 2}, {Name: "Note", RowCount: 1}}, result.Summary().Sheets)

	entries := logs.FilterMessage("input imported").All()
	require.Len(t, entries, 1)
	assert.Equal(t, result.SourceID, entries[0].ContextMap()["file_id"])
}

func TestCoordinatorImportCSVHasNoSheets(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	c := NewCoordinator(Options{}, zap.New(core))

	result, err := c.Import(strings.NewReader(coordinatorCSV), "preturi.csv")
	require.NoError(t, err)
	assert.Empty(t, result.Summary().Sheets)
	assert.Empty(t, result.SourceID)

	entries := logs.FilterMessage("input imported").All()
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].ContextMap(), "file_id")
}
