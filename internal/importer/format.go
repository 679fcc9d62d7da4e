package importer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat the file extension is not a readable table format
var ErrUnsupportedFormat = errors.New("unsupported file format")

// BaseFormat the table encoding after decompression
type BaseFormat string

const (
	FormatXLSX BaseFormat = "xlsx"
	FormatCSV  BaseFormat = "csv"
	FormatTSV  BaseFormat = "tsv"
)

// Compression an optional outer compression layer
type Compression string

const (
	CompressionNone  Compression = ""
	CompressionGzip  Compression = "gzip"
	CompressionBzip2 Compression = "bzip2"
	CompressionXZ    Compression = "xz"
	CompressionZstd  Compression = "zstd"
)

var compressionExts = map[string]Compression{
	".gz":  CompressionGzip,
	".bz2": CompressionBzip2,
	".xz":  CompressionXZ,
	".zst": CompressionZstd,
}

var baseExts = map[string]BaseFormat{
	".xlsx": FormatXLSX,
	".csv":  FormatCSV,
	".tsv":  FormatTSV,
}

// Format what DetectFormat found for a file name
type Format struct {
	Base        BaseFormat
	Compression Compression
}

// String e.g. "csv" or "csv+gzip"
func (f Format) String() string {
	if f.Compression == CompressionNone {
		return string(f.Base)
	}
	return string(f.Base) + "+" + string(f.Compression)
}

// AcceptedExtensions file suffixes DetectFormat understands, for display.
func AcceptedExtensions() []string {
	return []string{".xlsx", ".csv", ".tsv", ".gz", ".bz2", ".xz", ".zst"}
}

// DetectFormat picks the format from the file extension, case-insensitively.
// A compression suffix must wrap one of the base formats ("prices.csv.gz").
func DetectFormat(filename string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(filepath.Base(filename)))

	var f Format
	ext := filepath.Ext(name)
	if c, ok := compressionExts[ext]; ok {
		f.Compression = c
		name = strings.TrimSuffix(name, ext)
		ext = filepath.Ext(name)
	}

	base, ok := baseExts[ext]
	if !ok {
		return Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filename)
	}
	f.Base = base
	return f, nil
}
