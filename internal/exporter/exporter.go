package exporter

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/klauspost/compress/zip"

	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/model"
	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/service/excel"
)

// Download names and content types of the three artifacts.
const (
	FilenameCombined = "warehouse_templates.xlsx"
	FilenameZip      = "warehouse_templates.zip"

	MIMEXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MIMEZip  = "application/zip"
)

// ErrNoWarehouses a combined workbook needs at least one sheet
var ErrNoWarehouses = errors.New("no warehouses to export")

// ErrUnknownWarehouse matches any *UnknownWarehouseError via errors.Is.
var ErrUnknownWarehouse = model.ErrUnknownWarehouse

// UnknownWarehouseError the requested key is not a partition of the input
type UnknownWarehouseError struct {
	Key string
}

func (e *UnknownWarehouseError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownWarehouse.Error(), e.Key)
}

func (e *UnknownWarehouseError) Unwrap() error {
	return ErrUnknownWarehouse
}

// SingleFilename download name of one warehouse's workbook, with the raw key
func SingleFilename(key string) string {
	return "Warehouse " + key + ".xlsx"
}

// Options packager settings
type Options struct {
	Template model.TemplateConstants
	Progress func(ProgressEvent)
	Now      func() time.Time // ZIP entry timestamps; defaults to time.Now
}

// Packager turns a partition set into downloadable bytes. Nothing is
// written to disk.
type Packager struct {
	projector *excel.TemplateProjector
	progress  func(ProgressEvent)
	now       func() time.Time
}

// NewPackager creates a packager; zero Template means the defaults.
func NewPackager(opts Options) *Packager {
	consts := opts.Template
	if consts == (model.TemplateConstants{}) {
		consts = model.DefaultTemplateConstants()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Packager{
		projector: excel.NewTemplateProjector(consts),
		progress:  opts.Progress,
		now:       now,
	}
}

// Combined one workbook with a sheet per warehouse, in partition order.
func (p *Packager) Combined(set *model.PartitionSet) ([]byte, error) {
	if set.Len() == 0 {
		return nil, ErrNoWarehouses
	}

	exp, err := excel.NewTemplateExporter(p.projector)
	if err != nil {
		return nil, err
	}
	defer exp.Close()

	total := set.Len()
	for i, part := range set.Partitions() {
		if _, err := exp.AddSheet(part.Key, part.Records); err != nil {
			return nil, fmt.Errorf("warehouse %q: %w", part.Key, err)
		}
		reportProgress(p.progress, stepPercent(i+1, total), "sheet", part.Key)
	}

	data, err := exp.Bytes()
	if err != nil {
		return nil, err
	}
	reportProgress(p.progress, 100, "done", "")
	return data, nil
}

// Zip one single-sheet workbook per warehouse, named "Warehouse {key}.xlsx".
// An empty set gives an empty archive.
func (p *Packager) Zip(set *model.PartitionSet) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	modified := p.now()
	total := set.Len()
	for i, part := range set.Partitions() {
		data, err := excel.SingleSheetWorkbook(p.projector, part.Records)
		if err != nil {
			_ = zw.Close()
			return nil, fmt.Errorf("warehouse %q: %w", part.Key, err)
		}

		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     SingleFilename(part.Key),
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			_ = zw.Close()
			return nil, fmt.Errorf("failed to create zip entry for %q: %w", part.Key, err)
		}
		if _, err := w.Write(data); err != nil {
			_ = zw.Close()
			return nil, fmt.Errorf("failed to write zip entry for %q: %w", part.Key, err)
		}
		reportProgress(p.progress, stepPercent(i+1, total), "entry", part.Key)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish zip: %w", err)
	}
	reportProgress(p.progress, 100, "done", "")
	return buf.Bytes(), nil
}

// Single the workbook of warehouse key alone.
func (p *Packager) Single(set *model.PartitionSet, key string) ([]byte, error) {
	part, ok := set.Get(key)
	if !ok {
		return nil, &UnknownWarehouseError{Key: key}
	}

	data, err := excel.SingleSheetWorkbook(p.projector, part.Records)
	if err != nil {
		return nil, fmt.Errorf("warehouse %q: %w", key, err)
	}
	reportProgress(p.progress, 100, "done", key)
	return data, nil
}
