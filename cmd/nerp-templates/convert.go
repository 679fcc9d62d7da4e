package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/config"
	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/exporter"
	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/importer"
)

const (
	modeCombined = "combined"
	modeZip      = "zip"
	modeSingle   = "single"
)

// localFilename keeps a warehouse key with path separators in the current directory
var localFilename = strings.NewReplacer("/", "-", "\\", "-")

func newCoordinator() *importer.Coordinator {
	return importer.NewCoordinator(importer.Options{
		Read: importer.ReadOptions{
			Sheet:   cfg.Input.Sheet,
			Charset: cfg.Input.CSVCharset,
		},
		Template: cfg.Template,
	}, logger)
}

func importFile(path string) (*importer.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return newCoordinator().Import(f, path)
}

func runList(cmd *cobra.Command, args []string) error {
	result, err := importFile(args[0])
	if err != nil {
		return err
	}
	printSummary(cmd.OutOrStdout(), result)
	return nil
}

func printSummary(out io.Writer, result *importer.Result) {
	summary := result.Summary()
	c := summary.Counts
	fmt.Fprintf(out, "%s (%s): %d rows, %d kept, %d dropped, %d invalid quantity, %d invalid price\n",
		summary.Filename, summary.Format, c.TotalRows, c.KeptRows, c.DroppedRows, c.InvalidQuantity, c.InvalidPrice)
	if len(summary.Sheets) > 0 {
		sheets := make([]string, 0, len(summary.Sheets))
		for _, s := range summary.Sheets {
			sheets = append(sheets, fmt.Sprintf("%s (%d rows)", s.Name, s.RowCount))
		}
		fmt.Fprintf(out, "sheet %q read; workbook sheets: %s\n", summary.SheetName, strings.Join(sheets, ", "))
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WAREHOUSE\tROWS\tSHEET")
	for _, w := range summary.Warehouses {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", w.Key, w.Rows, w.SheetName)
	}
	_ = tw.Flush()
}

func runConvert(cmd *cobra.Command, args []string) error {
	if mode == modeSingle && warehouse == "" {
		return fmt.Errorf("--warehouse is required with --mode %s", modeSingle)
	}

	result, err := importFile(args[0])
	if err != nil {
		return err
	}

	packager := exporter.NewPackager(exporter.Options{
		Template: cfg.Template,
		Progress: func(e exporter.ProgressEvent) {
			logger.Info("export progress",
				zap.Int("percent", e.Percent),
				zap.String("stage", e.Stage),
				zap.String("warehouse", e.Warehouse))
		},
	})

	var (
		data     []byte
		filename string
	)
	switch mode {
	case modeCombined:
		data, err = packager.Combined(result.Partitions)
		filename = exporter.FilenameCombined
	case modeZip:
		data, err = packager.Zip(result.Partitions)
		filename = exporter.FilenameZip
	case modeSingle:
		data, err = packager.Single(result.Partitions, warehouse)
		filename = exporter.SingleFilename(warehouse)
	default:
		return fmt.Errorf("unknown mode %q (want %s, %s or %s)", mode, modeCombined, modeZip, modeSingle)
	}
	if err != nil {
		return err
	}

	target := outPath
	if target == "" {
		target = localFilename.Replace(filename)
	}
	if err := os.WriteFile(target, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d warehouses, %d bytes)\n", target, result.Partitions.Len(), len(data))
	return nil
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
