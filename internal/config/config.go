// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads the input binding configuration.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"polltick.org/io/key"
)

// Key name table modes.
const (
	KeyNamesPartial = "partial"
	KeyNamesFull    = "full"
)

// Config holds the binding configuration.
type Config struct {
	// Backend selects the windowing backend of inputdump: sdl or glfw.
	Backend string `mapstructure:"backend" yaml:"backend"`
	// ReaderName is the name the readers are registered under.
	ReaderName string `mapstructure:"reader_name" yaml:"reader_name"`
	// InhibitFrames is the click cooldown armed when the focused window
	// has no client area.
	InhibitFrames int `mapstructure:"inhibit_frames" yaml:"inhibit_frames"`
	// PinchDeadZone is the exclusive threshold below which pinch
	// gestures do not scroll.
	PinchDeadZone float32 `mapstructure:"pinch_dead_zone" yaml:"pinch_dead_zone"`
	// KeyNames selects the key name table: partial or full.
	KeyNames string `mapstructure:"key_names" yaml:"key_names"`
	// ExtraKeyNames adds keys, by identifier, to the key name table.
	ExtraKeyNames []string `mapstructure:"extra_key_names" yaml:"extra_key_names,omitempty"`

	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Backend:       "sdl",
		ReaderName:    "default",
		InhibitFrames: 3,
		PinchDeadZone: 0.002,
		KeyNames:      KeyNamesPartial,
		LogLevel:      "info",
	}
}

// Load reads the configuration from path, or from polltick.yaml in the
// working directory if path is empty, then applies POLLTICK_*
// environment overrides. A missing default file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("polltick")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("POLLTICK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading: %w", err)
		}
	}
	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decoding: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, c *Config) {
	v.SetDefault("backend", c.Backend)
	v.SetDefault("reader_name", c.ReaderName)
	v.SetDefault("inhibit_frames", c.InhibitFrames)
	v.SetDefault("pinch_dead_zone", c.PinchDeadZone)
	v.SetDefault("key_names", c.KeyNames)
	v.SetDefault("extra_key_names", c.ExtraKeyNames)
	v.SetDefault("log_level", c.LogLevel)
}

// Validate reports the first invalid field of c.
func (c *Config) Validate() error {
	switch c.Backend {
	case "sdl", "glfw":
	default:
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	if c.ReaderName == "" {
		return errors.New("config: empty reader_name")
	}
	if c.InhibitFrames < 0 {
		return fmt.Errorf("config: negative inhibit_frames %d", c.InhibitFrames)
	}
	if c.PinchDeadZone < 0 {
		return fmt.Errorf("config: negative pinch_dead_zone %g", c.PinchDeadZone)
	}
	switch c.KeyNames {
	case KeyNamesPartial, KeyNamesFull:
	default:
		return fmt.Errorf("config: unknown key_names mode %q", c.KeyNames)
	}
	if _, err := c.ExtraKeys(); err != nil {
		return err
	}
	return nil
}

// ExtraKeys parses ExtraKeyNames.
func (c *Config) ExtraKeys() ([]key.Key, error) {
	keys := make([]key.Key, 0, len(c.ExtraKeyNames))
	for _, n := range c.ExtraKeyNames {
		k, ok := key.Parse(n)
		if !ok {
			return nil, fmt.Errorf("config: unknown key %q in extra_key_names", n)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// Marshal encodes c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
