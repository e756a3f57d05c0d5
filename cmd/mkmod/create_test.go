// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mkmod-cli/internal/config"
	"mkmod-cli/internal/issue"
	"mkmod-cli/internal/testutil"
	"mkmod-cli/pkg/rustmod"
)

// resetFlags restores the package-level flag/config state mutated by a test.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagDir = false
		flagMain = false
		flagNoTest = false
		flagNoAdd = false
		flagPrivate = false
		cfg = config.DefaultConfig()
	})
}

func TestOptionsFromFlags_Defaults(t *testing.T) {
	resetFlags(t)

	opts := optionsFromFlags("parser")
	if opts.Kind != rustmod.KindFile {
		t.Errorf("Kind = %v, want %v", opts.Kind, rustmod.KindFile)
	}
	if opts.Visibility != rustmod.VisibilityPublic {
		t.Errorf("Visibility = %v, want %v", opts.Visibility, rustmod.VisibilityPublic)
	}
	if !opts.WithTest || !opts.AddToParent {
		t.Errorf("WithTest/AddToParent = %v/%v, want true/true", opts.WithTest, opts.AddToParent)
	}
}

func TestOptionsFromFlags_FlagsOverride(t *testing.T) {
	resetFlags(t)
	flagDir = true
	flagPrivate = true
	flagNoTest = true
	flagNoAdd = true
	flagMain = true

	opts := optionsFromFlags("parser")
	if opts.Kind != rustmod.KindDir {
		t.Errorf("Kind = %v, want %v", opts.Kind, rustmod.KindDir)
	}
	if opts.Visibility != rustmod.VisibilityPrivate {
		t.Errorf("Visibility = %v, want %v", opts.Visibility, rustmod.VisibilityPrivate)
	}
	if opts.WithTest || opts.AddToParent || !opts.ParentMain {
		t.Errorf("opts = %+v, want test/registration off and main on", opts)
	}
}

func TestOptionsFromFlags_ConfigDefaults(t *testing.T) {
	resetFlags(t)
	cfg = &config.Config{
		DefaultVisibility: config.VisibilityPrivate,
		WithTest:          false,
		AddToParent:       false,
		RootMarker:        "workspace.toml",
	}

	opts := optionsFromFlags("parser")
	if opts.Visibility != rustmod.VisibilityPrivate {
		t.Errorf("Visibility = %v, want private from config", opts.Visibility)
	}
	if opts.WithTest || opts.AddToParent {
		t.Errorf("opts = %+v, want config defaults applied", opts)
	}
	if opts.RootMarker != "workspace.toml" {
		t.Errorf("RootMarker = %q, want %q from config", opts.RootMarker, "workspace.toml")
	}
}

func TestRunCreate(t *testing.T) {
	resetFlags(t)

	crate := testutil.NewCrate(t, "lib.rs")
	t.Chdir(crate.Src)

	if err := runCreate(rootCmd, []string{"parser"}); err != nil {
		t.Fatalf("runCreate() unexpected error: %v", err)
	}

	crate.ReadSrcFile(t, "parser.rs")
	crate.ReadSrcFile(t, "parser_test.rs")
}

func TestRunCreate_AlreadyExistsExitsNonZero(t *testing.T) {
	resetFlags(t)

	crate := testutil.NewCrate(t, "lib.rs")
	t.Chdir(crate.Src)

	if err := runCreate(rootCmd, []string{"parser"}); err != nil {
		t.Fatalf("first runCreate() failed: %v", err)
	}

	err := runCreate(rootCmd, []string{"parser"})
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code == 0 {
		t.Fatalf("second runCreate() = %v, want non-zero ExitError", err)
	}
	if !errors.Is(err, rustmod.ErrAlreadyExists) {
		t.Errorf("error = %v, want %v", err, rustmod.ErrAlreadyExists)
	}
}

// captureCards redirects issue card output to a buffer for the test.
func captureCards(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	cardOut = &buf
	t.Cleanup(func() { cardOut = os.Stderr })
	return &buf
}

func TestIssueIDFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want issue.Id
		ok   bool
	}{
		{name: "invalid path", err: fmt.Errorf("wrapped: %w", rustmod.ErrInvalidPath), want: issue.InvalidModulePathId, ok: true},
		{name: "already exists", err: fmt.Errorf("wrapped: %w", rustmod.ErrAlreadyExists), want: issue.ModuleAlreadyExistsId, ok: true},
		{name: "no root found", err: fmt.Errorf("wrapped: %w", rustmod.ErrNoRootFound), want: issue.CrateRootNotFoundId, ok: true},
		{name: "parent not found", err: fmt.Errorf("wrapped: %w", rustmod.ErrParentNotFound), want: issue.ParentModuleNotFoundId, ok: true},
		{name: "unknown error", err: errors.New("boom"), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, ok := issueIDFor(tt.err)
			if ok != tt.ok {
				t.Fatalf("issueIDFor() ok = %v, want %v", ok, tt.ok)
			}
			if ok && id != tt.want {
				t.Errorf("issueIDFor() = %v, want %v", id, tt.want)
			}
		})
	}
}

func TestPrintSummary_ParentMissingRendersCard(t *testing.T) {
	resetFlags(t)
	buf := captureCards(t)

	printSummary(&rustmod.Result{
		ModuleFile: "server.rs",
		ParentErr:  fmt.Errorf("%w: no mod.rs", rustmod.ErrParentNotFound),
	})

	if !strings.Contains(buf.String(), "Parent module file") {
		t.Errorf("missing parent card in output: %q", buf.String())
	}
}

func TestInitRootConfig_LoadFailureRendersCard(t *testing.T) {
	resetFlags(t)
	buf := captureCards(t)
	cfgFile = filepath.Join(t.TempDir(), "missing.toml")
	t.Cleanup(func() {
		cfgFile = ""
		config.Reset()
	})

	initRootConfig()

	if !strings.Contains(buf.String(), "Failed to load configuration") {
		t.Errorf("missing config card in output: %q", buf.String())
	}
}

func TestRunCreate_ParentMissingStillSucceeds(t *testing.T) {
	resetFlags(t)

	crate := testutil.NewCrate(t, "lib.rs")
	t.Chdir(crate.Src)

	if err := runCreate(rootCmd, []string{"net/server"}); err != nil {
		t.Fatalf("runCreate() should exit clean on missing parent, got %v", err)
	}
	crate.ReadSrcFile(t, "net/server.rs")
}
