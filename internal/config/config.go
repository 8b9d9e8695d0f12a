// Package config loads extscan settings from .extscan.yaml and the environment.
//
// Precedence is flag > environment > config file > default; flags are applied
// by the CLI on top of the Settings returned here.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/extscan/pkg/extscan"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Environment variables read by ApplyEnv and Resolve.
const (
	EnvConfig       = "EXTSCAN_CONFIG"
	EnvSortOrder    = "EXTSCAN_SORT_ORDER"
	EnvDisplayLimit = "EXTSCAN_DISPLAY_LIMIT"
	EnvTrashDir     = "EXTSCAN_TRASH_DIR"
)

type SearchConfig struct {
	SortOrder    string `yaml:"sort_order,omitempty"`
	DisplayLimit *int   `yaml:"display_limit,omitempty"`
	Confirm      bool   `yaml:"confirm,omitempty"`
}

type ScanConfig struct {
	ExcludeDirs []string `yaml:"exclude_dirs,omitempty"`
}

type TrashConfig struct {
	Dir string `yaml:"dir,omitempty"`
}

type Config struct {
	Search SearchConfig `yaml:"search"`
	Scan   ScanConfig   `yaml:"scan"`
	Trash  TrashConfig  `yaml:"trash"`
}

// Settings are validated values with defaults applied.
type Settings struct {
	SortOrder    extscan.SortOrder
	DisplayLimit int
	Confirm      bool
	ExcludeDirs  []string
	TrashDir     string
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		SortOrder:    extscan.SortAscending,
		DisplayLimit: extscan.DefaultDisplayLimit,
	}
}

// Load reads the YAML file at path. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("%w: %s: %v", extscan.ErrInvalidConfig, path, err)
	}
	return Parse(data, path)
}

// Parse decodes config data; source names it in error messages.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %v", extscan.ErrInvalidConfig, source, err)
	}
	return &cfg, nil
}

// Resolve picks the config file: the explicit path, else $EXTSCAN_CONFIG,
// else .extscan.yaml in the working directory. required reports whether a
// missing file is an error.
func Resolve(explicit string, getenv func(string) string) (path string, required bool) {
	if explicit != "" {
		return explicit, true
	}
	if env := getenv(EnvConfig); env != "" {
		return env, true
	}
	return extscan.ConfigFileName, false
}

// ApplyEnv overlays environment variables on the file values.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := strings.TrimSpace(getenv(EnvSortOrder)); v != "" {
		c.Search.SortOrder = v
	}
	if v := strings.TrimSpace(getenv(EnvDisplayLimit)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", extscan.ErrInvalidConfig, EnvDisplayLimit, v)
		}
		c.Search.DisplayLimit = &n
	}
	if v := strings.TrimSpace(getenv(EnvTrashDir)); v != "" {
		c.Trash.Dir = v
	}
	return nil
}

// Settings validates the config and fills in defaults.
func (c *Config) Settings() (Settings, error) {
	s := Defaults()

	if c.Search.SortOrder != "" {
		order, err := extscan.ParseSortOrder(c.Search.SortOrder)
		if err != nil {
			return Settings{}, fmt.Errorf("%w: search.sort_order: %v", extscan.ErrInvalidConfig, err)
		}
		s.SortOrder = order
	}
	if c.Search.DisplayLimit != nil {
		if *c.Search.DisplayLimit < 0 {
			return Settings{}, fmt.Errorf("%w: search.display_limit must be >= 0, got %d",
				extscan.ErrInvalidConfig, *c.Search.DisplayLimit)
		}
		s.DisplayLimit = *c.Search.DisplayLimit
	}
	s.Confirm = c.Search.Confirm

	for _, d := range c.Scan.ExcludeDirs {
		d = strings.TrimSpace(d)
		if d == "" || strings.ContainsAny(d, `/\`) {
			return Settings{}, fmt.Errorf("%w: scan.exclude_dirs entry %q must be a directory name", extscan.ErrInvalidConfig, d)
		}
		s.ExcludeDirs = append(s.ExcludeDirs, d)
	}
	s.TrashDir = c.Trash.Dir
	return s, nil
}

// LoadSettings resolves, loads and validates configuration in one step.
// A missing default file yields Defaults overlaid with the environment.
func LoadSettings(explicit string, getenv func(string) string) (Settings, error) {
	path, required := Resolve(explicit, getenv)

	cfg, err := Load(path)
	switch {
	case errors.Is(err, ErrConfigNotFound) && !required:
		cfg = &Config{}
	case errors.Is(err, ErrConfigNotFound):
		return Settings{}, fmt.Errorf("%w: %s: %v", extscan.ErrInvalidConfig, path, err)
	case err != nil:
		return Settings{}, err
	}

	if err := cfg.ApplyEnv(getenv); err != nil {
		return Settings{}, err
	}
	return cfg.Settings()
}
