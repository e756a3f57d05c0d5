// SPDX-License-Identifier: MPL-2.0

// Package config loads the mkmod configuration file.
//
// Configuration lives in a TOML file under the platform config directory
// (e.g. ~/.config/mkmod/config.toml on Linux). Every key has a default, a
// missing file is not an error, and CLI flags take precedence over anything
// loaded here.
package config
