// Package config loads cmdrun configuration from TOML files.
package config

import (
	"fmt"
	"time"
)

// FileConfig represents the raw cmdrun.toml file contents.
// All fields are pointers to distinguish "not set" from "set to zero/false".
type FileConfig struct {
	NoColor *bool   `toml:"no_color"`
	Verbose *bool   `toml:"verbose"`
	Shell   *string `toml:"shell"`   // Shell binary for `cmdrun shell` (default: /bin/sh)
	Timeout *string `toml:"timeout"` // Command timeout as a duration string, e.g. "30s"
}

// IsEmpty returns true if no configuration values are set.
func (f *FileConfig) IsEmpty() bool {
	return f.NoColor == nil &&
		f.Verbose == nil &&
		f.Shell == nil &&
		f.Timeout == nil
}

// merge overlays other onto f; set fields in other win.
func (f *FileConfig) merge(other *FileConfig) {
	if other.NoColor != nil {
		f.NoColor = other.NoColor
	}
	if other.Verbose != nil {
		f.Verbose = other.Verbose
	}
	if other.Shell != nil {
		f.Shell = other.Shell
	}
	if other.Timeout != nil {
		f.Timeout = other.Timeout
	}
}

// TimeoutDuration parses the configured timeout. A missing timeout means
// wait indefinitely and parses as zero.
func (f *FileConfig) TimeoutDuration() (time.Duration, error) {
	if f.Timeout == nil || *f.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(*f.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", *f.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid timeout %q: must not be negative", *f.Timeout)
	}
	return d, nil
}
