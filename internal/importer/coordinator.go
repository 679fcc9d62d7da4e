package importer

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/model"
	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/parser"
	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/service/excel"
	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/service/partition"
)

const (
	// DefaultPreviewLimit rows returned by Preview when no limit is given
	DefaultPreviewLimit = 20
	// MaxPreviewLimit upper bound for Preview
	MaxPreviewLimit = 200
)

// Options import settings
type Options struct {
	Read     ReadOptions
	Template model.TemplateConstants
}

// Coordinator runs reader -> column resolver -> extractor -> partitioner
type Coordinator struct {
	opts      Options
	projector *excel.TemplateProjector
	logger    *zap.Logger
}

// NewCoordinator creates a coordinator; a nil logger discards output.
func NewCoordinator(opts Options, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Template == (model.TemplateConstants{}) {
		opts.Template = model.DefaultTemplateConstants()
	}
	return &Coordinator{
		opts:      opts,
		projector: excel.NewTemplateProjector(opts.Template),
		logger:    logger,
	}
}

// Result everything derived from one input file
type Result struct {
	Filename   string
	Format     Format
	SheetName  string
	SourceID   string
	Sheets     []model.SheetInfo
	Headers    []string
	Columns    parser.ColumnMap
	Extract    *model.ExtractResult
	Partitions *model.PartitionSet
}

// Import reads the table from r; filename selects the format.
func (c *Coordinator) Import(r io.Reader, filename string) (*Result, error) {
	start := time.Now()

	format, err := DetectFormat(filename)
	if err != nil {
		return nil, err
	}

	table, err := ReadTable(r, format, c.opts.Read)
	if err != nil {
		if errors.Is(err, ErrEmptyTable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w %s: %w", ErrUnreadableInput, filepath.Base(filename), err)
	}

	logger := c.logger.With(zap.String("file", filename))
	if table.SourceID != "" {
		logger = logger.With(zap.String("file_id", table.SourceID))
	}

	cols, err := parser.ResolveColumns(table.Headers)
	if err != nil {
		logger.Warn("required columns missing",
			zap.Strings("headers", table.Headers),
			zap.Error(err))
		return nil, err
	}
	extract := parser.Extract(table, cols)
	set := partition.Build(extract.Records)

	logger.Info("input imported",
		zap.String("format", format.String()),
		zap.String("sheet", table.SheetName),
		zap.Int("total_rows", extract.TotalRows),
		zap.Int("kept_rows", extract.KeptRows),
		zap.Int("dropped_rows", extract.DroppedRows),
		zap.Int("invalid_quantity", extract.InvalidQuantity),
		zap.Int("invalid_price", extract.InvalidPrice),
		zap.Int("warehouses", set.Len()),
		zap.Duration("elapsed", time.Since(start)))

	return &Result{
		Filename:   filepath.Base(filename),
		Format:     format,
		SheetName:  table.SheetName,
		SourceID:   table.SourceID,
		Sheets:     table.Sheets,
		Headers:    table.Headers,
		Columns:    cols,
		Extract:    extract,
		Partitions: set,
	}, nil
}

// Summary counts plus the ordered warehouse list. SheetName is the name each
// warehouse gets in the combined workbook.
func (r *Result) Summary() model.ImportSummary {
	names := excel.NewSheetNames()
	warehouses := make([]model.WarehouseSummary, 0, r.Partitions.Len())
	for _, p := range r.Partitions.Partitions() {
		warehouses = append(warehouses, model.WarehouseSummary{
			Key:       p.Key,
			Rows:      len(p.Records),
			SheetName: names.Claim(p.Key),
		})
	}

	summary := model.ImportSummary{
		Filename:   r.Filename,
		Format:     r.Format.String(),
		SheetName:  r.SheetName,
		Sheets:     r.Sheets,
		Columns:    r.Columns.Headers(),
		Warehouses: warehouses,
	}
	if r.Extract != nil {
		summary.Counts = *r.Extract
	}
	return summary
}

// Preview the first template rows of one warehouse
type Preview struct {
	Warehouse string              `json:"warehouse"`
	Columns   []string            `json:"columns"`
	Rows      []model.TemplateRow `json:"rows"`
	Total     int                 `json:"total"`
}

// Preview projects up to limit rows of warehouse key. limit <= 0 means
// DefaultPreviewLimit; larger values are capped at MaxPreviewLimit.
func (c *Coordinator) Preview(result *Result, key string, limit int) (*Preview, error) {
	if result == nil {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownWarehouse, key)
	}
	part, ok := result.Partitions.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownWarehouse, key)
	}

	switch {
	case limit <= 0:
		limit = DefaultPreviewLimit
	case limit > MaxPreviewLimit:
		limit = MaxPreviewLimit
	}
	records := part.Records
	if len(records) > limit {
		records = records[:limit]
	}

	return &Preview{
		Warehouse: key,
		Columns:   model.TemplateColumns,
		Rows:      c.projector.Build(records),
		Total:     len(part.Records),
	}, nil
}
