package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a config file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	if f == FormatTOML {
		return "toml"
	}
	return "yaml"
}

// ParseFormat converts "yaml", "yml" or "toml" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return FormatYAML, fmt.Errorf("unknown config format %q", s)
	}
}

// FormatOf picks the format from a file extension: .toml is TOML, anything
// else is YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Decode parses data over cfg. Fields missing from data keep their value.
func Decode(data []byte, format Format, cfg *Config) error {
	switch format {
	case FormatTOML:
		return toml.Unmarshal(data, cfg)
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// Encode serializes cfg.
func Encode(cfg Config, format Format) ([]byte, error) {
	if format == FormatTOML {
		return toml.Marshal(cfg)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LoadFile reads one config file over the defaults and validates it.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Decode(data, FormatOf(path), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Load finds and loads the configuration.
// Search order: customPath -> ~/.doggies/config.{yaml,toml} -> ./configs/doggies.{yaml,toml} -> embedded default.
// A custom path must exist; a file found by searching must parse.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	for _, path := range SearchPaths() {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Default(), fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return LoadFile(path)
	}

	cfg := Default()
	if err := Decode(defaultYAML, FormatYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// SearchPaths returns the files Load looks for, in order.
func SearchPaths() []string {
	var paths []string
	if dir := userConfigDir(); dir != "" {
		paths = append(paths,
			filepath.Join(dir, "config.yaml"),
			filepath.Join(dir, "config.toml"),
		)
	}
	return append(paths,
		filepath.Join("configs", "doggies.yaml"),
		filepath.Join("configs", "doggies.toml"),
	)
}

// userConfigDir returns ~/.doggies, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".doggies")
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
