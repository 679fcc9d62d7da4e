package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/config"
	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

var (
	// Global flags
	configPath string
	verbose    bool

	// serve
	port      int
	devMode   bool
	noBrowser bool

	// convert
	mode      string
	warehouse string
	outPath   string

	cfg     *config.AppConfig
	cfgInfo config.LoadConfigInfo
	logger  *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nerp-templates",
	Short: "Split warehouse price lists into N-ERP import templates",
	Long: `nerp-templates reads a spreadsheet of warehouse / material price rows
(xlsx, csv or tsv, optionally gz, bz2, xz or zst compressed), maps every row
onto the fixed 10-column N-ERP template and groups the rows by warehouse.

The result is a combined workbook with one sheet per warehouse, a ZIP with
one workbook per warehouse, or the workbook of a single warehouse.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, info, err := config.LoadConfigWithInfo(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg, cfgInfo = loaded, info

		if cmd.Flags().Changed("port") && port > 0 && !info.PortSpecified {
			cfg.Server.Port = port
		}
		if devMode {
			cfg.Server.DevMode = true
		}

		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		logger.Debug("config loaded",
			zap.String("path", info.Path),
			zap.Bool("file_found", info.FileFound))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// serveCmd runs the HTTP API and the upload page
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the HTTP API and the upload page and opens it in the browser.
The port from the config file wins over --port; --dev or --no-browser skip
opening the browser.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// listCmd prints the warehouses of an input file
var listCmd = &cobra.Command{
	Use:   "list INPUT",
	Short: "Print row counts and the ordered warehouses of INPUT",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

// convertCmd writes one of the three artifacts
var convertCmd = &cobra.Command{
	Use:   "convert INPUT",
	Short: "Write the template workbook(s) for INPUT",
	Long: `Writes one artifact for INPUT:
  combined  one workbook, a sheet per warehouse (warehouse_templates.xlsx)
  zip       a ZIP with one workbook per warehouse (warehouse_templates.zip)
  single    the workbook of --warehouse ("Warehouse {key}.xlsx")

Example:
  nerp-templates convert preturi.xlsx --mode single --warehouse 102`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

// initConfigCmd writes the default configuration
var initConfigCmd = &cobra.Command{
	Use:   "init-config [PATH]",
	Short: "Write a config file with the default settings",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInitConfig,
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: config.toml next to the executable)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	serveCmd.Flags().IntVar(&port, "port", 0, "Listen port (only used when the config file sets none)")
	serveCmd.Flags().BoolVar(&devMode, "dev", false, "Development mode")
	serveCmd.Flags().BoolVar(&noBrowser, "no-browser", false, "Do not open the browser")

	convertCmd.Flags().StringVar(&mode, "mode", modeCombined, "Artifact: combined, zip or single")
	convertCmd.Flags().StringVar(&warehouse, "warehouse", "", "Warehouse key for --mode single")
	convertCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output path (default: the artifact's file name in the current directory)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(initConfigCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
