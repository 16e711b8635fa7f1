package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sparkline/internal/spark"
)

const (
	DefaultMode      = "bars"
	DefaultEncoding  = "utf-8"
	DefaultMinValues = spark.MinValues
)

var (
	ErrInvalidRange  = errors.New("config: invalid range")
	ErrUnknownPreset = errors.New("config: unknown preset")
)

type Config struct {
	Mode     string      `yaml:"mode"`
	Range    RangeConfig `yaml:"range"`
	Encoding string      `yaml:"encoding"`
	// MinValues is the fewest numbers accepted before rendering. Values
	// below spark.MinValues are raised to it.
	MinValues int `yaml:"min_values"`
}

// RangeConfig pins either end of the bar range. Nil ends are derived from
// the data.
type RangeConfig struct {
	Min *float64 `yaml:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode:      DefaultMode,
		Encoding:  DefaultEncoding,
		MinValues: DefaultMinValues,
	}
}

func Load(path string) (*Config, error) {
	return decodeFile(path, DefaultConfig())
}

// decodeFile unmarshals the file over cfg, so keys absent from the file keep
// the values already in cfg.
func decodeFile(path string, cfg *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the mode name and that both range ends are finite.
// An inverted range is allowed and renders upside down.
func (c *Config) Validate() error {
	if _, err := spark.ParseMode(c.Mode); err != nil {
		return err
	}
	for _, v := range []*float64{c.Range.Min, c.Range.Max} {
		if v != nil && !finite(*v) {
			return fmt.Errorf("%w: %v is not finite", ErrInvalidRange, *v)
		}
	}
	return nil
}

// RenderMode returns the parsed Mode. Call Validate first.
func (c *Config) RenderMode() spark.Mode {
	m, _ := spark.ParseMode(c.Mode)
	return m
}

// Options translates the configured range into render options.
func (c *Config) Options() []spark.Option {
	var opts []spark.Option
	if c.Range.Min != nil {
		opts = append(opts, spark.WithMin(*c.Range.Min))
	}
	if c.Range.Max != nil {
		opts = append(opts, spark.WithMax(*c.Range.Max))
	}
	return opts
}

func (c *Config) Threshold() int {
	if c.MinValues < spark.MinValues {
		return spark.MinValues
	}
	return c.MinValues
}

// Merge copies the fields that are set in other over c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Mode != "" {
		c.Mode = other.Mode
	}
	if other.Range.Min != nil {
		c.Range.Min = Float(*other.Range.Min)
	}
	if other.Range.Max != nil {
		c.Range.Max = Float(*other.Range.Max)
	}
	if other.Encoding != "" {
		c.Encoding = other.Encoding
	}
	if other.MinValues != 0 {
		c.MinValues = other.MinValues
	}
}

// Float returns a pointer to a copy of v.
func Float(v float64) *float64 {
	return &v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
