package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/codeconv/internal/constants"
	"github.com/wizzomafizzo/codeconv/internal/syntax"
	"gopkg.in/yaml.v3"
)

const maxIndent = 16

// Config holds converter settings loaded from codeconv's YAML config file.
type Config struct {
	Java       Java       `yaml:"java,omitempty"`
	JavaScript JavaScript `yaml:"javascript,omitempty"`
	Indent     int        `yaml:"indent"`
}

// Java holds overrides for the Java to C# keyword table. Keys are
// identifiers; an empty value removes the keyword from the output. A
// "package" entry replaces the default removal of package statements.
type Java struct {
	Keywords map[string]string `yaml:"keywords,omitempty"`
}

// JavaScript holds overrides for the JavaScript to TypeScript token table.
// Keys must be single tokens the converter recognises; string and template
// literals cannot be replaced.
type JavaScript struct {
	Replacements map[string]string `yaml:"replacements,omitempty"`
}

// Load reads and validates a config file from fs.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return LoadFromYAML(data)
}

// LoadFromYAML parses config from YAML bytes. Missing fields keep their defaults.
func LoadFromYAML(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Resolve loads the config at path when given. Otherwise it searches the XDG
// config directories and falls back to DefaultConfig when nothing is found.
func Resolve(fs afero.Fs, path string) (*Config, error) {
	if path != "" {
		return Load(fs, path)
	}

	rel := filepath.Join(constants.AppName, constants.ConfigFilename)
	for _, dir := range append([]string{xdg.ConfigHome}, xdg.ConfigDirs...) {
		candidate := filepath.Join(dir, rel)
		exists, err := afero.Exists(fs, candidate)
		if err != nil {
			return nil, fmt.Errorf("failed to check config file %s: %w", candidate, err)
		}
		if exists {
			return Load(fs, candidate)
		}
	}

	return DefaultConfig(), nil
}

// Validate checks indentation bounds and replacement table keys.
func (c *Config) Validate() error {
	if c.Indent < 0 || c.Indent > maxIndent {
		return fmt.Errorf("indent must be between 0 and %d, got %d", maxIndent, c.Indent)
	}

	if err := validateTable("java.keywords", c.Java.Keywords,
		syntax.IsJavaIdentifier, "must be a Java identifier"); err != nil {
		return err
	}

	return validateTable("javascript.replacements", c.JavaScript.Replacements,
		syntax.IsJavaScriptReplaceable, "must be a single JavaScript token")
}

func validateTable(name string, table map[string]string, valid func(string) bool, rule string) error {
	for key := range table {
		if key == "" {
			return fmt.Errorf("%s: empty key", name)
		}
		if !valid(key) {
			return fmt.Errorf("%s: invalid key %q: %s", name, key, rule)
		}
	}
	return nil
}

// Marshal encodes the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// ErrConfigExists is returned by Write when the target exists and force is false.
var ErrConfigExists = errors.New("config file already exists")

// Write stores the config at path, creating parent directories.
func (c *Config) Write(fs afero.Fs, path string, force bool) error {
	if !force {
		exists, err := afero.Exists(fs, path)
		if err != nil {
			return fmt.Errorf("failed to check config file: %w", err)
		}
		if exists {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := afero.WriteFile(fs, path, data, os.FileMode(0o644)); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
