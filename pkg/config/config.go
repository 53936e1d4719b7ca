// Package config provides configuration loading for the coolbeans
// application.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"coolbeans/pkg/blink"

	"gopkg.in/yaml.v3"
)

// Bean count bounds for the storefront.
const (
	DefaultBeanCount = 5
	MinBeanCount     = 1
	MaxBeanCount     = 99
)

// Config represents the user's settings file.
type Config struct {
	Word      string        `yaml:"word"`
	Icon      string        `yaml:"icon"`
	PlainIcon bool          `yaml:"plain_icon"`
	Interval  time.Duration `yaml:"interval"`
	BeanCount int           `yaml:"bean_count"`
}

// Default returns the reference COOLBEANS settings.
func Default() Config {
	return Config{
		Word:      blink.DefaultWord,
		Icon:      blink.DefaultIcon,
		Interval:  blink.DefaultInterval,
		BeanCount: DefaultBeanCount,
	}
}

func (c *Config) normalize() {
	if c == nil {
		return
	}
	if c.Word == "" {
		c.Word = blink.DefaultWord
	}
	if c.Interval == 0 {
		c.Interval = blink.DefaultInterval
	}
	if c.BeanCount == 0 {
		c.BeanCount = DefaultBeanCount
	}
	c.BeanCount = ClampBeans(c.BeanCount)
}

// BlinkConfig converts the settings into an animation configuration. The
// icon argument is the already resolved prefix glyph.
func (c Config) BlinkConfig(icon string) blink.Config {
	return blink.Config{
		Letters:  blink.ParseWord(c.Word),
		Interval: c.Interval,
		Icon:     icon,
	}
}

// ClampBeans keeps n within the storefront bounds.
func ClampBeans(n int) int {
	if n < MinBeanCount {
		return MinBeanCount
	}
	if n > MaxBeanCount {
		return MaxBeanCount
	}
	return n
}

// GetCoolbeansDir returns the path to the .coolbeans directory
func GetCoolbeansDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".coolbeans"), nil
}

// EnsureCoolbeansDir creates the .coolbeans directory if it doesn't exist
func EnsureCoolbeansDir() error {
	dir, err := GetCoolbeansDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// DefaultPath returns the path to config.yaml
func DefaultPath() (string, error) {
	dir, err := GetCoolbeansDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the settings at path. A missing or empty file yields defaults;
// an unreadable or malformed one is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if len(data) == 0 {
		return &cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.normalize()
	return &cfg, nil
}

// LoadDefault reads the settings from the default location.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}
