// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"mkmod-cli/internal/config"
	"mkmod-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the loaded configuration, defaults when loading failed.
	cfg = config.DefaultConfig()

	// Flags of the root (scaffolding) command.
	flagDir     bool
	flagMain    bool
	flagNoTest  bool
	flagNoAdd   bool
	flagPrivate bool

	// rootCmd is the scaffolding operation itself.
	rootCmd = &cobra.Command{
		Use:   "mkmod <path>",
		Short: "Scaffold a new Rust module",
		Long: TitleStyle.Render("mkmod") + SubtitleStyle.Render(" - Rust module scaffolding") + `

mkmod creates new Rust module files with their boilerplate and registers
them as 'mod' declarations in the parent source file (mod.rs, or lib.rs /
main.rs at the crate root).

The module path is slash-separated; intermediate directories are created
as needed. By default a companion test file is generated and wired into
the module behind #[cfg(test)].

` + SubtitleStyle.Render("Examples:") + `
  mkmod parser              Create src-relative parser.rs + parser_test.rs
  mkmod net/server          Create net/server.rs inside the net directory
  mkmod engine --dir        Create engine/mod.rs instead of engine.rs
  mkmod util --no-test      Skip the companion test file
  mkmod ffi --private       Declare the module without 'pub'`,
		Args: cobra.ExactArgs(1),
		RunE: runCreate,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/mkmod/config.toml)")

	// Scaffolding flags
	rootCmd.Flags().BoolVar(&flagDir, "dir", false, "create a directory module (leaf/mod.rs) instead of a file module")
	rootCmd.Flags().BoolVar(&flagMain, "main", false, "register into main.rs instead of lib.rs at the crate root")
	rootCmd.Flags().BoolVar(&flagNoTest, "no-test", false, "do not generate a companion test file")
	rootCmd.Flags().BoolVar(&flagNoAdd, "no-add", false, "do not register the module in its parent file")
	rootCmd.Flags().BoolVar(&flagPrivate, "private", false, "declare the module without the pub keyword")

	// Add subcommands
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in the config file if present.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	loaded, err := config.Load()
	if err != nil {
		// Always surface config loading errors to the user
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		renderIssueCard(issue.ConfigLoadFailedId)
	}
	if loaded != nil {
		cfg = loaded
	}

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
