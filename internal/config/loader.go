package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the format from a file extension. Anything that is not
// .toml is read as YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load loads the puzzle configuration.
// Search order: customPath -> ~/.slide/configs/puzzle.{yaml,toml} ->
// ./configs/puzzle.{yaml,toml} -> embedded default -> hardcoded default.
// Files only need to set the values they change.
func Load(customPath string) (PuzzleConfig, error) {
	cfg, _, err := LoadWithSource(customPath)
	return cfg, err
}

// LoadWithSource is Load that also reports where the configuration came
// from: a file path, "embedded" or "builtin".
func LoadWithSource(customPath string) (PuzzleConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		path, err := homedir.Expand(customPath)
		if err != nil {
			return PuzzleConfig{}, "", fmt.Errorf("config: cannot expand %s: %w", customPath, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return PuzzleConfig{}, "", fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		cfg, err := Decode(data, FormatFor(path))
		if err != nil {
			return PuzzleConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		return cfg, path, nil
	}

	var candidates []string
	if dir := userConfigDir(); dir != "" {
		candidates = append(candidates,
			filepath.Join(dir, "puzzle.yaml"),
			filepath.Join(dir, "puzzle.toml"))
	}
	candidates = append(candidates,
		filepath.Join("configs", "puzzle.yaml"),
		filepath.Join("configs", "puzzle.toml"))

	// Unreadable or broken files in the search path are skipped
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Decode(data, FormatFor(path)); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := Decode(defaultPuzzleYAML, FormatYAML); err == nil {
		return cfg, "embedded", nil
	}
	return DefaultPuzzleConfig(), "builtin", nil
}

// Decode parses a configuration on top of the defaults.
func Decode(data []byte, format Format) (PuzzleConfig, error) {
	cfg := DefaultPuzzleConfig()
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return PuzzleConfig{}, err
	}
	return cfg, nil
}

// Encode writes a configuration in the given format.
func Encode(cfg PuzzleConfig, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(cfg)
	default:
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
}

// userConfigDir returns the user config directory, or empty if home is unavailable.
func userConfigDir() string {
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slide", "configs")
}
