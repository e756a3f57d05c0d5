// SPDX-License-Identifier: MPL-2.0

package rustmod

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	// SourceExt is the extension of generated source files.
	SourceExt = ".rs"

	// DirEntryName is the entry-point file name of a directory module,
	// without extension.
	DirEntryName = "mod"

	// DefaultRootMarker is the file whose presence marks a directory as the
	// crate root's parent (i.e. the directory containing it is the project
	// root), used when Options.RootMarker is unset.
	DefaultRootMarker = "Cargo.toml"

	// LibRootFile is the library crate root file name.
	LibRootFile = "lib" + SourceExt
	// MainRootFile is the binary crate root file name.
	MainRootFile = "main" + SourceExt
)

const (
	// KindFile creates the module as a single source file.
	KindFile Kind = "file"
	// KindDir creates the module as a directory with a mod.rs entry point.
	KindDir Kind = "dir"

	// VisibilityPublic declares the module with the `pub` keyword.
	VisibilityPublic Visibility = "public"
	// VisibilityPrivate declares the module without a visibility keyword.
	VisibilityPrivate Visibility = "private"
)

var (
	// ErrInvalidPath is returned when the module path is empty or contains
	// a segment that is not a valid identifier.
	ErrInvalidPath = errors.New("invalid module path")

	// ErrAlreadyExists is returned when a target file or directory already
	// exists. Existing files are never overwritten or merged.
	ErrAlreadyExists = errors.New("module already exists")

	// ErrNoRootFound is returned when registration targets the crate root
	// and no root file (lib.rs / main.rs) exists.
	ErrNoRootFound = errors.New("no crate root file found")

	// ErrParentNotFound is returned when the parent module file of a nested
	// module cannot be located. Callers treat it as a warning, not a failure.
	ErrParentNotFound = errors.New("parent module file not found")
)

// segmentRegex matches a single valid module path segment (a Rust identifier).
var segmentRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type (
	// Kind selects between a file module and a directory module.
	Kind string

	// Visibility selects the visibility keyword of the generated declaration.
	Visibility string

	// Options describes a single module to scaffold. Built once from CLI
	// input and immutable afterwards.
	Options struct {
		// Path is the slash-separated module path, e.g. "parser" or
		// "net/http/server". The final segment is the module's leaf name.
		Path string

		// Kind selects file vs directory module. Defaults to KindFile.
		Kind Kind

		// Visibility of the declaration inserted into the parent file.
		// Defaults to VisibilityPublic.
		Visibility Visibility

		// WithTest also generates a companion test file wired into the
		// module via a #[path] inclusion directive.
		WithTest bool

		// AddToParent registers the new module in its parent source file.
		AddToParent bool

		// ParentMain forces root-level registration into main.rs even when
		// lib.rs exists.
		ParentMain bool

		// RootMarker is the file whose presence marks the project root
		// during parent lookup. Defaults to DefaultRootMarker.
		RootMarker string

		// BaseDir is the directory the module path is resolved against.
		// Defaults to the current working directory.
		BaseDir string
	}
)

// ValidatePath checks that a module path is non-empty and every segment is a
// valid identifier.
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: path is empty", ErrInvalidPath)
	}
	for _, seg := range strings.Split(path, "/") {
		if !segmentRegex.MatchString(seg) {
			return fmt.Errorf("%w: segment %q must start with a letter or underscore and contain only alphanumerics and underscores", ErrInvalidPath, seg)
		}
	}
	return nil
}

// normalize fills in defaults for zero-valued option fields.
func (o Options) normalize() Options {
	if o.Kind == "" {
		o.Kind = KindFile
	}
	if o.Visibility == "" {
		o.Visibility = VisibilityPublic
	}
	if o.RootMarker == "" {
		o.RootMarker = DefaultRootMarker
	}
	return o
}
