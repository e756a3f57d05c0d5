// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Tests mutate package-level overrides, so none of them run in parallel.

func TestLoad_Defaults(t *testing.T) {
	SetConfigDirOverride(t.TempDir())
	t.Cleanup(Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.DefaultVisibility != VisibilityPublic {
		t.Errorf("DefaultVisibility = %q, want %q", cfg.DefaultVisibility, VisibilityPublic)
	}
	if !cfg.WithTest || !cfg.AddToParent {
		t.Errorf("WithTest/AddToParent defaults = %v/%v, want true/true", cfg.WithTest, cfg.AddToParent)
	}
	if cfg.RootMarker != DefaultRootMarker {
		t.Errorf("RootMarker default = %q, want %q", cfg.RootMarker, DefaultRootMarker)
	}
	if cfg.UI.Verbose {
		t.Error("UI.Verbose default = true, want false")
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	content := "default_visibility = \"private\"\nwith_test = false\nroot_marker = \"workspace.toml\"\n\n[ui]\nverbose = true\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.DefaultVisibility != VisibilityPrivate {
		t.Errorf("DefaultVisibility = %q, want %q", cfg.DefaultVisibility, VisibilityPrivate)
	}
	if cfg.WithTest {
		t.Error("WithTest = true, want false from file")
	}
	if !cfg.AddToParent {
		t.Error("AddToParent should keep its default when not set in the file")
	}
	if cfg.RootMarker != "workspace.toml" {
		t.Errorf("RootMarker = %q, want %q from file", cfg.RootMarker, "workspace.toml")
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want true from file")
	}
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	SetConfigFilePathOverride(filepath.Join(t.TempDir(), "nope.toml"))
	t.Cleanup(Reset)

	cfg, err := Load()
	if err == nil {
		t.Fatal("Load() expected error for missing explicit config file")
	}
	// Defaults still come back so the caller can proceed.
	if cfg == nil || cfg.DefaultVisibility != VisibilityPublic {
		t.Errorf("Load() should fall back to defaults, got %+v", cfg)
	}
}

func TestLoad_InvalidVisibility(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("default_visibility = \"secret\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	if _, err := Load(); !errors.Is(err, ErrInvalidVisibility) {
		t.Errorf("Load() error = %v, want %v", err, ErrInvalidVisibility)
	}
}

func TestInit(t *testing.T) {
	SetConfigDirOverride(t.TempDir())
	t.Cleanup(Reset)

	path, err := Init(false)
	if err != nil {
		t.Fatalf("Init() unexpected error: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read generated config: %v", err)
	}
	if !strings.Contains(string(content), "default_visibility = 'public'") &&
		!strings.Contains(string(content), `default_visibility = "public"`) {
		t.Errorf("generated config missing default visibility: %q", content)
	}

	// Second init without force fails, with force succeeds.
	if _, err := Init(false); err == nil {
		t.Error("Init() expected error for existing config file")
	}
	if _, err := Init(true); err != nil {
		t.Errorf("Init(force) unexpected error: %v", err)
	}
}

func TestConfigFilePath_Override(t *testing.T) {
	SetConfigFilePathOverride("/tmp/custom.toml")
	t.Cleanup(Reset)

	path, err := ConfigFilePath()
	if err != nil {
		t.Fatalf("ConfigFilePath() unexpected error: %v", err)
	}
	if path != "/tmp/custom.toml" {
		t.Errorf("ConfigFilePath() = %q, want override", path)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults failed: %v", err)
	}

	cfg.DefaultVisibility = "secret"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidVisibility) {
		t.Errorf("Validate() error = %v, want %v", err, ErrInvalidVisibility)
	}

	cfg = DefaultConfig()
	cfg.RootMarker = "  "
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidRootMarker) {
		t.Errorf("Validate() error = %v, want %v", err, ErrInvalidRootMarker)
	}
}
