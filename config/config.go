/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for shorthand.
package config

import (
	"bennypowers.dev/shorthand/style"
)

// Config represents the shorthand project configuration.
type Config struct {
	// Files lists style documents to convert (paths or globs).
	Files []string `yaml:"files" json:"files" toml:"files"`

	// Format is the default output format for convert.
	// Valid values: "json", "yaml", "css", "msgpack"
	Format string `yaml:"format" json:"format" toml:"format"`

	// Kebab writes longhand names in kebab-case.
	Kebab bool `yaml:"kebab" json:"kebab" toml:"kebab"`

	// DropUnknown removes declarations that are not expandable shorthands.
	DropUnknown bool `yaml:"dropUnknown" json:"dropUnknown" toml:"dropUnknown"`

	// Properties limits expansion to these shorthands. Names may be kebab-case.
	Properties []string `yaml:"properties" json:"properties" toml:"properties"`

	// Lint reports suspicious shorthand values while converting.
	Lint bool `yaml:"lint" json:"lint" toml:"lint"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Format: string(style.FormatJSON),
	}
}

// OutputFormat returns the parsed Format field, defaulting to JSON.
func (c *Config) OutputFormat() (style.Format, error) {
	return style.ParseFormat(c.Format)
}

// ExpandOptions returns style.Options with configuration applied.
func (c *Config) ExpandOptions() style.Options {
	return style.Options{
		Properties:  normalizeProperties(c.Properties),
		DropUnknown: c.DropUnknown,
		Kebab:       c.Kebab,
	}
}
