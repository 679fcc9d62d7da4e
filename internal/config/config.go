package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/encoding/htmlindex"
	"gopkg.in/yaml.v3"

	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/model"
)

// DefaultFileName config file looked up next to the executable
const DefaultFileName = "config.toml"

// Environment overrides.
const (
	EnvPort     = "NERP_PORT"
	EnvPlant    = "NERP_PLANT"
	EnvValType  = "NERP_VAL_TYPE"
	EnvLogLevel = "NERP_LOG_LEVEL"
)

// AppConfig application configuration
type AppConfig struct {
	Server   ServerConfig            `toml:"server" yaml:"server"`
	Template model.TemplateConstants `toml:"template" yaml:"template"`
	Input    InputConfig             `toml:"input" yaml:"input"`
	Logging  LoggingConfig           `toml:"logging" yaml:"logging"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port        int  `toml:"port" yaml:"port" validate:"min=1,max=65535"`
	DevMode     bool `toml:"dev_mode" yaml:"dev_mode"`
	MaxUploadMB int  `toml:"max_upload_mb" yaml:"max_upload_mb" validate:"min=1,max=1024"`
}

// InputConfig how uploads are read
type InputConfig struct {
	Sheet      string `toml:"sheet" yaml:"sheet"`
	CSVCharset string `toml:"csv_charset" yaml:"csv_charset" validate:"charset"`
}

// LoggingConfig logger settings
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `toml:"format" yaml:"format" validate:"oneof=console json"`
}

// LoadConfigInfo what the loader found besides the values
type LoadConfigInfo struct {
	Path          string
	FileFound     bool
	PortSpecified bool
}

// DefaultConfig default configuration
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:        8501,
			DevMode:     false,
			MaxUploadMB: 32,
		},
		Template: model.DefaultTemplateConstants(),
		Input: InputConfig{
			CSVCharset: "utf-8",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// MaxUploadBytes upload limit in bytes
func (c *AppConfig) MaxUploadBytes() int64 {
	return int64(c.Server.MaxUploadMB) << 20
}

// GetExeDir directory of the running executable
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// DefaultPath config.toml next to the executable, or in the working
// directory when the executable path is unknown.
func DefaultPath() string {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	return filepath.Join(exeDir, DefaultFileName)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func unmarshal(path string, data []byte, v any) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, v)
	}
	return toml.Unmarshal(data, v)
}

func isPortSpecified(path string, data []byte) bool {
	var raw map[string]any
	if err := unmarshal(path, data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// LoadConfigWithInfo loads path (DefaultPath when empty), applies the
// environment overrides and validates the result. A missing file yields
// the defaults.
func LoadConfigWithInfo(path string) (*AppConfig, LoadConfigInfo, error) {
	if path == "" {
		path = DefaultPath()
	}
	info := LoadConfigInfo{Path: path}
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		info.FileFound = true
		info.PortSpecified = isPortSpecified(path, data)
		if err := unmarshal(path, data, config); err != nil {
			return nil, info, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, info, err
	}

	if err := applyEnv(config, &info); err != nil {
		return nil, info, err
	}
	if err := Validate(config); err != nil {
		return nil, info, err
	}
	return config, info, nil
}

// LoadConfig loads path without the meta information.
func LoadConfig(path string) (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo(path)
	return config, err
}

// applyEnv environment variables win over the file
func applyEnv(config *AppConfig, info *LoadConfigInfo) error {
	if v := strings.TrimSpace(os.Getenv(EnvPort)); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, v, err)
		}
		config.Server.Port = port
		info.PortSpecified = true
	}
	if v := strings.TrimSpace(os.Getenv(EnvPlant)); v != "" {
		config.Template.Plant = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvValType)); v != "" {
		config.Template.ValType = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		config.Logging.Level = strings.ToLower(v)
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("charset", func(fl validator.FieldLevel) bool {
		label := fl.Field().String()
		if label == "" {
			return true
		}
		_, err := htmlindex.Get(label)
		return err == nil
	})
	return v
}

// Validate checks value ranges of a loaded config.
func Validate(config *AppConfig) error {
	if config == nil {
		return errors.New("config is nil")
	}
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SaveConfig writes config to path, as YAML for .yaml/.yml and TOML otherwise.
func SaveConfig(config *AppConfig, path string) error {
	if path == "" {
		path = DefaultPath()
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(config)
	} else {
		data, err = toml.Marshal(config)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
