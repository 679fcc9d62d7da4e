package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvPort, EnvPlant, EnvValType, EnvLogLevel} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, info, err := LoadConfigWithInfo(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.False(t, info.FileFound)
	assert.False(t, info.PortSpecified)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "A", cfg.Template.ValType)
	assert.Equal(t, "L402", cfg.Template.Plant)
	assert.Equal(t, int64(32<<20), cfg.MaxUploadBytes())
}

func TestLoadConfigTOML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.toml", `
[server]
port = 9000

[template]
plant = "L500"

[input]
csv_charset = "windows-1250"
`)

	cfg, info, err := LoadConfigWithInfo(path)
	require.NoError(t, err)
	assert.True(t, info.FileFound)
	assert.True(t, info.PortSpecified)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 32, cfg.Server.MaxUploadMB)
	assert.Equal(t, "L500", cfg.Template.Plant)
	assert.Equal(t, "A", cfg.Template.ValType)
	assert.Equal(t, "windows-1250", cfg.Input.CSVCharset)
}

func TestLoadConfigPortNotSpecified(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.toml", "[server]\ndev_mode = true\n")

	cfg, info, err := LoadConfigWithInfo(path)
	require.NoError(t, err)
	assert.False(t, info.PortSpecified)
	assert.True(t, cfg.Server.DevMode)
	assert.Equal(t, 8501, cfg.Server.Port)
}

func TestLoadConfigYAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", `
server:
  port: 8600
logging:
  level: debug
  format: json
`)

	cfg, info, err := LoadConfigWithInfo(path)
	require.NoError(t, err)
	assert.True(t, info.PortSpecified)
	assert.Equal(t, 8600, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPort, "7000")
	t.Setenv(EnvPlant, "P9")
	t.Setenv(EnvValType, "B")
	t.Setenv(EnvLogLevel, "WARN")

	cfg, info, err := LoadConfigWithInfo(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.True(t, info.PortSpecified)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "P9", cfg.Template.Plant)
	assert.Equal(t, "B", cfg.Template.ValType)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadConfigInvalid(t *testing.T) {
	clearEnv(t)

	cases := map[string]string{
		"port":    "[server]\nport = 70000\n",
		"level":   "[logging]\nlevel = \"loud\"\n",
		"charset": "[input]\ncsv_charset = \"klingon\"\n",
		"plant":   "[template]\nplant = \"\"\n",
		"syntax":  "[server\n",
	}
	for name, content := range cases {
		path := writeFile(t, "config.toml", content)
		if _, _, err := LoadConfigWithInfo(path); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}

	t.Setenv(EnvPort, "abc")
	_, _, err := LoadConfigWithInfo(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	clearEnv(t)

	for _, name := range []string{"config.toml", "config.yml"} {
		path := filepath.Join(t.TempDir(), name)
		cfg := DefaultConfig()
		cfg.Server.Port = 9100
		cfg.Template.Plant = "L777"

		require.NoError(t, SaveConfig(cfg, path))

		loaded, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, cfg, loaded, name)
	}
}
