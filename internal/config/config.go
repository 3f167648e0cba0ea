package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"human/internal/errors"
)

// EnvPrefix is the prefix for environment overrides, e.g. HUMAN_SIZE_UNITS
const EnvPrefix = "HUMAN"

// Config represents the complete human configuration
type Config struct {
	Number  NumberConfig  `json:"number" toml:"number" mapstructure:"number"`
	Size    SizeConfig    `json:"size" toml:"size" mapstructure:"size"`
	Output  OutputConfig  `json:"output" toml:"output" mapstructure:"output"`
	Logging LoggingConfig `json:"logging" toml:"logging" mapstructure:"logging"`
	History HistoryConfig `json:"history" toml:"history" mapstructure:"history"`
}

// NumberConfig controls the number subcommand
type NumberConfig struct {
	Mode string `json:"mode" toml:"mode" mapstructure:"mode"` // group or word
}

// SizeConfig controls the size handler
type SizeConfig struct {
	Units string `json:"units" toml:"units" mapstructure:"units"` // iec or si
}

// OutputConfig controls result rendering
type OutputConfig struct {
	Format string `json:"format" toml:"format" mapstructure:"format"` // text, json or yaml
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" toml:"format" mapstructure:"format"`
	Level  string `json:"level" toml:"level" mapstructure:"level"`
}

// HistoryConfig controls the conversion history store
type HistoryConfig struct {
	Enabled bool   `json:"enabled" toml:"enabled" mapstructure:"enabled"`
	Path    string `json:"path" toml:"path" mapstructure:"path"` // empty means ~/.human/history.db
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Number:  NumberConfig{Mode: "group"},
		Size:    SizeConfig{Units: "iec"},
		Output:  OutputConfig{Format: "text"},
		Logging: LoggingConfig{Format: "human", Level: "warn"},
		History: HistoryConfig{Enabled: false},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("number.mode", d.Number.Mode)
	v.SetDefault("size.units", d.Size.Units)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("history.enabled", d.History.Enabled)
	v.SetDefault("history.path", d.History.Path)
}

// LoadConfig loads configuration from the TOML file at path, layering
// HUMAN_* environment variables on top. A missing file yields defaults.
func LoadConfig(fs afero.Fs, path string) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		if !isNotFound(fs, path, err) {
			return nil, errors.NewHumanError(errors.ConfigInvalid, fmt.Sprintf("failed to read %s", path), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.NewHumanError(errors.ConfigInvalid, "failed to decode configuration", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.NewHumanError(errors.ConfigInvalid, "invalid configuration", err)
	}

	return &cfg, nil
}

// isNotFound reports whether ReadInConfig failed only because there is no
// file. A missing explicit path surfaces as a filesystem error, not
// ConfigFileNotFoundError.
func isNotFound(fs afero.Fs, path string, err error) bool {
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return true
	}
	if path == "" {
		return true
	}
	exists, statErr := afero.Exists(fs, path)
	return statErr == nil && !exists
}

// Save writes the configuration as TOML to path, creating parent directories
func (c *Config) Save(fs afero.Fs, path string) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := fs.Create(path)
	if err != nil {
		return err
	}

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Marshal renders the configuration as "toml" or "json"
func (c *Config) Marshal(format string) ([]byte, error) {
	switch format {
	case "", "toml":
		return gotoml.Marshal(c)
	case "json":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(c); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, &ConfigError{Field: "format", Message: fmt.Sprintf("unsupported format %q", format)}
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if !oneOf(c.Number.Mode, "group", "word") {
		return &ConfigError{Field: "number.mode", Message: fmt.Sprintf("must be group or word, got %q", c.Number.Mode)}
	}
	if !oneOf(c.Size.Units, "iec", "si") {
		return &ConfigError{Field: "size.units", Message: fmt.Sprintf("must be iec or si, got %q", c.Size.Units)}
	}
	if !oneOf(c.Output.Format, "text", "json", "yaml") {
		return &ConfigError{Field: "output.format", Message: fmt.Sprintf("must be text, json or yaml, got %q", c.Output.Format)}
	}
	if !oneOf(c.Logging.Format, "human", "json") {
		return &ConfigError{Field: "logging.format", Message: fmt.Sprintf("must be human or json, got %q", c.Logging.Format)}
	}
	if !oneOf(strings.ToLower(c.Logging.Level), "debug", "info", "warn", "warning", "error", "off", "quiet") {
		return &ConfigError{Field: "logging.level", Message: fmt.Sprintf("must be debug, info, warn, error or off, got %q", c.Logging.Level)}
	}
	return nil
}

func oneOf(v string, allowed ...string) bool {
	return lo.Contains(allowed, v)
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
