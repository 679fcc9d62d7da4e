package main

import (
	"bytes"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/config"
)

const inputCSV = "Depozit,Cod material,Cantitate,Pret nou\n" +
	"10,M1,1,1\n" +
	"2,M2,n/a,2\n" +
	"A/B,M3,3,3\n"

// execute runs the root command in dir with fresh flag values.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	mode, warehouse, outPath = modeCombined, "", ""
	port, devMode, noBrowser, verbose = 0, false, false, false
	for _, k := range []string{"NERP_PORT", "NERP_PLANT", "NERP_VAL_TYPE", "NERP_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	t.Setenv("NERP_LOG_LEVEL", "error")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(dir, "absent.toml")}, args...))
	err = rootCmd.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "preturi.csv")
	require.NoError(t, os.WriteFile(path, []byte(inputCSV), 0644))
	return path
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)

	out, err := execute(t, dir, "list", input)
	require.NoError(t, err)
	assert.Contains(t, out, "3 rows, 3 kept, 0 dropped, 1 invalid quantity")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[2], "2 "))
	assert.True(t, strings.HasPrefix(lines[3], "10 "))
	assert.Contains(t, lines[4], "A-B")
}

func TestListCommandWorkbookSheets(t *testing.T) {
	dir := t.TempDir()
	wb := excelize.NewFile()
	require.NoError(t, wb.SetSheetRow("Sheet1", "A1", &[]any{"Warehouse", "Material Code", "Quantity", "New Price"}))
	require.NoError(t, wb.SetSheetRow("Sheet1", "A2", &[]any{"3", "M1", 1, 2}))
	_, err := wb.NewSheet("Extra")
	require.NoError(t, err)
	input := filepath.Join(dir, "preturi.xlsx")
	require.NoError(t, wb.SaveAs(input))
	require.NoError(t, wb.Close())

	out, err := execute(t, dir, "list", input)
	require.NoError(t, err)
	assert.Contains(t, out, `sheet "Sheet1" read; workbook sheets: Sheet1 (2 rows), Extra (0 rows)`)
}

func TestConvertCombined(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)

	_, err := execute(t, dir, "convert", input)
	require.NoError(t, err)

	wb, err := excelize.OpenFile(filepath.Join(dir, "warehouse_templates.xlsx"))
	require.NoError(t, err)
	defer wb.Close()
	assert.Equal(t, []string{"2", "10", "A-B"}, wb.GetSheetList())
}

func TestConvertZip(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)
	out := filepath.Join(dir, "out.zip")

	_, err := execute(t, dir, "convert", input, "--mode", "zip", "--out", out)
	require.NoError(t, err)

	zr, err := zip.OpenReader(out)
	require.NoError(t, err)
	defer zr.Close()
	require.Len(t, zr.File, 3)
	assert.Equal(t, "Warehouse A/B.xlsx", zr.File[2].Name)
}

func TestConvertSingle(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)

	_, err := execute(t, dir, "convert", input, "--mode", "single", "--warehouse", "A/B")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "Warehouse A-B.xlsx"))
	require.NoError(t, err)

	_, err = execute(t, dir, "convert", input, "--mode", "single", "--warehouse", "99")
	assert.Error(t, err)

	_, err = execute(t, dir, "convert", input, "--mode", "single")
	assert.Error(t, err)

	_, err = execute(t, dir, "convert", input, "--mode", "pdf")
	assert.Error(t, err)
}

func TestConvertMissingColumns(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(input, []byte("Warehouse,Quantity,New Price\n1,2,3\n"), 0644))

	_, err := execute(t, dir, "convert", input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Material Code")

	_, err = os.Stat(filepath.Join(dir, "warehouse_templates.xlsx"))
	assert.True(t, os.IsNotExist(err))
}

func TestInitConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	_, err := execute(t, dir, "init-config", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "L402")

	_, err = execute(t, dir, "init-config", path)
	assert.Error(t, err)
}

func TestListenPort(t *testing.T) {
	prevCfg, prevLogger := cfg, logger
	t.Cleanup(func() { cfg, logger = prevCfg, prevLogger })

	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()
	busy := ln.Addr().(*net.TCPAddr).Port

	cfg = config.DefaultConfig()
	cfg.Server.Port = busy
	logger = zap.NewNop()

	assert.Equal(t, busy, listenPort(true), "pinned port is kept even when busy")
	assert.NotEqual(t, busy, listenPort(false))
}
