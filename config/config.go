// Package config loads keypoll settings from config.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"keypoll/engine"
	"keypoll/hotkey"
	"keypoll/keycode"
)

// DefaultKey is watched when nothing else is configured.
const DefaultKey = keycode.Snapshot

type Config struct {
	Interval string   `yaml:"interval"`
	Keys     []string `yaml:"keys"`
	AllKeys  bool     `yaml:"all_keys"`
	Baseline string   `yaml:"baseline"`
	LogPath  string   `yaml:"log_path"`
	Journal  bool     `yaml:"journal"`
	Hotkey   Hotkey   `yaml:"hotkey"`
}

type Hotkey struct {
	Combo     string `yaml:"combo"`
	LongPress string `yaml:"long_press"`
}

func Default() *Config {
	return &Config{
		Interval: engine.DefaultInterval.String(),
		Baseline: engine.BaselineSuppressHeld.String(),
		Hotkey: Hotkey{
			LongPress: "300ms",
		},
	}
}

// ResolvePath picks the config file. explicit is false when the path is the
// OS default, which may be absent.
func ResolvePath(flagPath string) (path string, explicit bool, err error) {
	// Priority 1: -config flag
	if flagPath != "" {
		return flagPath, true, nil
	}

	// Priority 2: KEYPOLL_CONFIG environment variable
	if envPath := os.Getenv("KEYPOLL_CONFIG"); envPath != "" {
		return envPath, true, nil
	}

	// Priority 3: OS config directory
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false, err
	}
	return filepath.Join(dir, "keypoll", "config.yaml"), false, nil
}

// Load reads path over the defaults. A missing file is an error only when
// explicit is set.
func Load(path string, explicit bool) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := c.interval(); err != nil {
		return err
	}
	if _, err := engine.ParseBaseline(c.Baseline); err != nil {
		return err
	}
	if _, err := keycode.ParseList(c.Keys); err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	if c.Hotkey.Combo != "" {
		if _, err := hotkey.Parse(c.Hotkey.Combo); err != nil {
			return fmt.Errorf("hotkey: %w", err)
		}
	}
	if _, err := c.LongPress(); err != nil {
		return err
	}
	return nil
}

func (c *Config) interval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Interval)
	if err != nil {
		return 0, fmt.Errorf("interval: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("interval must be non-negative, got: %s", c.Interval)
	}
	return d, nil
}

// Codes returns the configured keys, or DefaultKey when there are none.
func (c *Config) Codes() ([]keycode.Code, error) {
	if len(c.Keys) == 0 {
		if c.AllKeys {
			return nil, nil
		}
		return []keycode.Code{DefaultKey}, nil
	}
	return keycode.ParseList(c.Keys)
}

// Combo returns the configured hotkey. ok is false when none is set.
func (c *Config) Combo() (combo hotkey.Combo, ok bool, err error) {
	if c.Hotkey.Combo == "" {
		return hotkey.Combo{}, false, nil
	}
	combo, err = hotkey.Parse(c.Hotkey.Combo)
	return combo, err == nil, err
}

func (c *Config) LongPress() (time.Duration, error) {
	d, err := time.ParseDuration(c.Hotkey.LongPress)
	if err != nil {
		return 0, fmt.Errorf("hotkey long_press: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("hotkey long_press must be positive, got: %s", c.Hotkey.LongPress)
	}
	return d, nil
}

// Options converts the settings into engine options. All-keys registration
// is left to the caller, see Engine.RegisterAllKnownKeys.
func (c *Config) Options() ([]engine.Option, error) {
	interval, err := c.interval()
	if err != nil {
		return nil, err
	}
	baseline, err := engine.ParseBaseline(c.Baseline)
	if err != nil {
		return nil, err
	}
	codes, err := c.Codes()
	if err != nil {
		return nil, err
	}
	opts := []engine.Option{
		engine.WithInterval(interval),
		engine.WithBaseline(baseline),
	}
	if len(codes) > 0 {
		opts = append(opts, engine.WithKeys(codes...))
	}
	return opts, nil
}

// Save writes c as YAML, creating the parent directory.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
