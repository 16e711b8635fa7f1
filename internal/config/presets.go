package config

import (
	"fmt"
	"sort"
)

var Presets = map[string]*Config{
	"percent": {
		Mode:  "bars",
		Range: RangeConfig{Min: Float(0), Max: Float(100)},
	},
	"unit": {
		Mode:  "bars",
		Range: RangeConfig{Min: Float(0), Max: Float(1)},
	},
	"dense": {
		Mode: "dots",
	},
	"ascii": {
		Encoding: "us-ascii",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := &Config{}
	cfg.Merge(p)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve layers a preset and then a config file over the defaults.
// Either name may be empty.
func Resolve(preset, path string) (*Config, error) {
	cfg := DefaultConfig()
	if preset != "" {
		p := GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, preset, ListPresets())
		}
		cfg.Merge(p)
	}
	if path != "" {
		merged, err := decodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return merged, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
