package sample

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// DefaultBaseDir is where bundled samples live unless configured otherwise.
const DefaultBaseDir = "~/.config/granulizer/samples"

// Config names the sample library: a base directory and the selectable
// sample files, in selector order.
type Config struct {
	BaseDir string   `json:"baseDir"`
	Samples []string `json:"samples"`
}

// DefaultConfig returns the bundled sample set.
func DefaultConfig() *Config {
	return &Config{
		BaseDir: DefaultBaseDir,
		Samples: []string{"pads.wav", "choir.wav", "strings.wav", "bells.wav"},
	}
}

// ConfigDir returns the directory holding config.json.
func ConfigDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "granulizer"), nil
}

// ConfigPath returns the default config file location.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadConfig reads a JSON config from path. A missing file yields
// DefaultConfig; an empty sample list is filled from the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, ioError("read", path, err)
	}

	cfg := DefaultConfig()
	cfg.Samples = nil
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("sample: parse config %s: %w", path, err)
	}
	if cfg.BaseDir == "" {
		cfg.BaseDir = DefaultBaseDir
	}
	if len(cfg.Samples) == 0 {
		cfg.Samples = DefaultConfig().Samples
	}
	return cfg, nil
}

// Save writes the config to path as indented JSON, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return ioError("mkdir", filepath.Dir(path), err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("sample: encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ioError("write", path, err)
	}
	return nil
}

// Names returns the selectable sample names.
func (c *Config) Names() []string {
	return append([]string(nil), c.Samples...)
}

// Dir returns BaseDir with "~" and environment variables expanded.
func (c *Config) Dir() (string, error) {
	dir, err := homedir.Expand(c.BaseDir)
	if err != nil {
		return "", fmt.Errorf("sample: expand base dir %q: %w", c.BaseDir, err)
	}
	return os.ExpandEnv(dir), nil
}

// Resolve returns the file path of sample index.
func (c *Config) Resolve(index int) (string, error) {
	if index < 0 || index >= len(c.Samples) {
		return "", fmt.Errorf("%w: %d", ErrUnknownSample, index)
	}
	name := c.Samples[index]
	if filepath.IsAbs(name) {
		return name, nil
	}
	dir, err := c.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
