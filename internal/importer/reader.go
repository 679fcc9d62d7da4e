package importer

import (
	"compress/bzip2"
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/model"
	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/service/excel"
)

var (
	// ErrEmptyTable the input has no header row
	ErrEmptyTable = errors.New("input table is empty")
	// ErrUnreadableInput the input is not valid for its declared format
	ErrUnreadableInput = errors.New("failed to read")
)

// DefaultCharset charset assumed for CSV/TSV input
const DefaultCharset = "utf-8"

// ReadOptions input selection
type ReadOptions struct {
	Sheet   string // workbook sheet; empty selects the first sheet
	Charset string // CSV/TSV text encoding, WHATWG label
}

// LookupCharset resolves a charset label such as "windows-1250" or "latin2".
func LookupCharset(label string) (encoding.Encoding, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		label = DefaultCharset
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", label, err)
	}
	return enc, nil
}

// ReadTable decompresses r if needed and reads the header plus data rows.
// Rows come back padded or truncated to the header width; blank rows inside
// a workbook are kept so row numbers match the source.
func ReadTable(r io.Reader, format Format, opts ReadOptions) (*model.RawTable, error) {
	plain, closeFn, err := decompress(r, format.Compression)
	if err != nil {
		return nil, err
	}
	if closeFn != nil {
		defer closeFn()
	}

	var table *model.RawTable
	switch format.Base {
	case FormatXLSX:
		table, err = readWorkbook(plain, opts.Sheet)
	case FormatCSV:
		table, err = readDelimited(plain, ',', opts.Charset)
	case FormatTSV:
		table, err = readDelimited(plain, '\t', opts.Charset)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format.Base)
	}
	if err != nil {
		return nil, err
	}
	table.Format = format.String()
	return table, nil
}

func decompress(r io.Reader, c Compression) (io.Reader, func(), error) {
	switch c {
	case CompressionNone:
		return r, nil, nil
	case CompressionGzip:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return gz, func() { _ = gz.Close() }, nil
	case CompressionBzip2:
		return bzip2.NewReader(r), nil, nil
	case CompressionXZ:
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return xr, nil, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return dec, dec.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: compression %q", ErrUnsupportedFormat, c)
	}
}

func readWorkbook(r io.Reader, sheet string) (*model.RawTable, error) {
	p := excel.NewParser()
	if err := p.LoadFile(r); err != nil {
		return nil, err
	}
	defer p.Close()

	table, err := p.ReadTable(sheet)
	if errors.Is(err, excel.ErrEmptySheet) {
		return nil, fmt.Errorf("%w: %w", ErrEmptyTable, err)
	}
	if err != nil {
		return nil, err
	}

	table.SourceID = p.GetFileID()
	if sheets, err := p.GetSheets(); err == nil {
		table.Sheets = sheets
	}
	return table, nil
}

func readDelimited(r io.Reader, comma rune, charset string) (*model.RawTable, error) {
	enc, err := LookupCharset(charset)
	if err != nil {
		return nil, err
	}
	// BOMOverride strips a UTF-8 BOM and otherwise falls back to enc
	decoded := transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder()))

	cr := csv.NewReader(decoded)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read delimited text: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	headers := records[0]
	return &model.RawTable{
		Headers: headers,
		Rows:    excel.PadRows(records[1:], len(headers)),
	}, nil
}
