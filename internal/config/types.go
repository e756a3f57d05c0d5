// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// VisibilityPublic declares new modules with the `pub` keyword.
	VisibilityPublic = "public"
	// VisibilityPrivate declares new modules without a visibility keyword.
	VisibilityPrivate = "private"
)

// DefaultRootMarker is the project-root marker file used when root_marker
// is not configured.
const DefaultRootMarker = "Cargo.toml"

var (
	// ErrInvalidVisibility is returned when default_visibility is not recognized.
	ErrInvalidVisibility = errors.New("invalid default visibility")
	// ErrInvalidRootMarker is returned when root_marker is blank.
	ErrInvalidRootMarker = errors.New("invalid root marker")
)

type (
	// Config is the resolved mkmod configuration.
	Config struct {
		// DefaultVisibility is the visibility of generated declarations
		// when --private is not given: "public" or "private".
		DefaultVisibility string `mapstructure:"default_visibility" toml:"default_visibility"`

		// WithTest controls whether a companion test file is generated by
		// default (--no-test overrides).
		WithTest bool `mapstructure:"with_test" toml:"with_test"`

		// AddToParent controls whether new modules are registered in their
		// parent file by default (--no-add overrides).
		AddToParent bool `mapstructure:"add_to_parent" toml:"add_to_parent"`

		// RootMarker is the file whose presence marks the project root
		// during parent lookup.
		RootMarker string `mapstructure:"root_marker" toml:"root_marker"`

		// UI holds output-related settings.
		UI UIConfig `mapstructure:"ui" toml:"ui"`
	}

	// UIConfig holds output-related settings.
	UIConfig struct {
		// Verbose enables debug logging without the --verbose flag.
		Verbose bool `mapstructure:"verbose" toml:"verbose"`
	}
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		DefaultVisibility: VisibilityPublic,
		WithTest:          true,
		AddToParent:       true,
		RootMarker:        DefaultRootMarker,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.DefaultVisibility {
	case VisibilityPublic, VisibilityPrivate:
	default:
		return fmt.Errorf("%w: %q (expected %q or %q)", ErrInvalidVisibility, c.DefaultVisibility, VisibilityPublic, VisibilityPrivate)
	}
	if strings.TrimSpace(c.RootMarker) == "" {
		return fmt.Errorf("%w: root_marker must not be blank", ErrInvalidRootMarker)
	}
	return nil
}
