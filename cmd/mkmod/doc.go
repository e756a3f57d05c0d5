// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for mkmod.
//
// This package implements the Cobra command hierarchy: the root command is
// the scaffolding operation itself (mkmod <path>), with a small config
// subcommand group alongside it.
package cmd
