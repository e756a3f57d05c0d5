// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Crate is a throwaway Rust project layout rooted in a temp directory.
type Crate struct {
	// Root is the project root, containing Cargo.toml.
	Root string
	// Src is the crate source root, Root/src.
	Src string
}

// NewCrate creates a minimal crate fixture under t.TempDir(): a Cargo.toml
// at the root and a src directory containing the given root files (e.g.
// "lib.rs", "main.rs"), each seeded with a doc comment line.
func NewCrate(t *testing.T, rootFiles ...string) *Crate {
	t.Helper()

	root := t.TempDir()
	src := filepath.Join(root, "src")
	if err := os.Mkdir(src, 0o755); err != nil {
		t.Fatalf("failed to create src dir: %v", err)
	}

	cargo := "[package]\nname = \"fixture\"\nversion = \"0.1.0\"\n"
	if err := os.WriteFile(filepath.Join(root, "Cargo.toml"), []byte(cargo), 0o644); err != nil {
		t.Fatalf("failed to write Cargo.toml: %v", err)
	}

	c := &Crate{Root: root, Src: src}
	for _, name := range rootFiles {
		c.WriteSrcFile(t, name, "//! Crate root fixture.\n")
	}
	return c
}

// WriteSrcFile writes a file with the given content under the crate's src
// directory, creating intermediate directories as needed. Returns the
// absolute path of the written file.
func (c *Crate) WriteSrcFile(t *testing.T, relPath, content string) string {
	t.Helper()

	path := filepath.Join(c.Src, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", relPath, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", relPath, err)
	}
	return path
}

// ReadSrcFile reads a file under the crate's src directory.
func (c *Crate) ReadSrcFile(t *testing.T, relPath string) string {
	t.Helper()

	content, err := os.ReadFile(filepath.Join(c.Src, filepath.FromSlash(relPath)))
	if err != nil {
		t.Fatalf("failed to read %s: %v", relPath, err)
	}
	return string(content)
}
