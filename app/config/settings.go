// Package config provides the moderation policy settings. Defaults come from a yaml file reloaded on change,
// per-chat overrides are kept in the database, effective values are cached.
package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// WarningSystem is the warning escalation policy of a chat
type WarningSystem struct {
	AutoBanEnabled   bool `json:"auto_ban_enabled" yaml:"auto_ban_enabled"`
	AutoBanThreshold int  `json:"auto_ban_threshold" yaml:"auto_ban_threshold"`
}

// Validate checks the policy values
func (w WarningSystem) Validate() error {
	if w.AutoBanThreshold < 1 {
		return fmt.Errorf("auto-ban threshold must be positive, got %d", w.AutoBanThreshold)
	}
	return nil
}

// Defaults is the content of the defaults file
type Defaults struct {
	Warnings WarningSystem `yaml:"warnings"`
}

// NewDefaults makes defaults used when no file is provided
func NewDefaults() Defaults {
	return Defaults{Warnings: WarningSystem{AutoBanEnabled: true, AutoBanThreshold: 3}}
}

// ParseDefaults reads yaml defaults, missing fields keep built-in values
func ParseDefaults(r io.Reader) (Defaults, error) {
	res := NewDefaults()
	if err := yaml.NewDecoder(r).Decode(&res); err != nil && err != io.EOF {
		return Defaults{}, fmt.Errorf("failed to decode defaults: %w", err)
	}
	if err := res.Warnings.Validate(); err != nil {
		return Defaults{}, fmt.Errorf("invalid warnings defaults: %w", err)
	}
	return res, nil
}
