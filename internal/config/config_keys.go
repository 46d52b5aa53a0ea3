// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go so that file stays about YAML structure and
// loading, while this one serves the "palette config" command and the MCP
// server, which address settings by dotted key (e.g. "contrast.min_ratio").

package config

import (
	"fmt"
	"strconv"
)

// ValidKeys returns all valid configuration keys in display order.
func ValidKeys() []string {
	return []string{
		"paths.palette", "paths.output",
		"contrast.foreground", "contrast.background", "contrast.min_ratio",
	}
}

// Get returns the effective value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "paths.palette":
		return c.PalettePath(), nil
	case "paths.output":
		return c.OutputPath(), nil
	case "contrast.foreground":
		return c.Foreground(), nil
	case "contrast.background":
		return c.Background(), nil
	case "contrast.min_ratio":
		return strconv.FormatFloat(c.MinRatio(), 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "paths.palette":
		c.Paths.Palette = value
	case "paths.output":
		c.Paths.Output = value
	case "contrast.foreground", "contrast.background":
		if !validRef(value) {
			return fmt.Errorf("%w: %s must be <category>.<shade>", ErrInvalidValue, key)
		}
		if key == "contrast.foreground" {
			c.Contrast.Foreground = value
		} else {
			c.Contrast.Background = value
		}
	case "contrast.min_ratio":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < MinMinRatio || f > MaxMinRatio {
			return fmt.Errorf("%w: contrast.min_ratio must be a number between %g and %g", ErrInvalidValue, MinMinRatio, MaxMinRatio)
		}
		c.Contrast.MinRatio = &f
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all effective configuration values as a map.
func (c *Config) All() map[string]string {
	m := make(map[string]string, len(ValidKeys()))
	for _, k := range ValidKeys() {
		m[k], _ = c.Get(k)
	}
	return m
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "paths.palette":
		return c.Paths.Palette != ""
	case "paths.output":
		return c.Paths.Output != ""
	case "contrast.foreground":
		return c.Contrast.Foreground != ""
	case "contrast.background":
		return c.Contrast.Background != ""
	case "contrast.min_ratio":
		return c.Contrast.MinRatio != nil
	default:
		return false
	}
}
