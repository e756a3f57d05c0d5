// SPDX-License-Identifier: MPL-2.0

package rustmod

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Plan is the resolved set of filesystem targets for one module. Produced by
// Resolve as pure path arithmetic; no directories or files exist yet.
type Plan struct {
	// Leaf is the module's leaf name (final path segment).
	Leaf string

	// Dir is the absolute directory that will contain the module entry
	// file. For a directory module this is the module directory itself.
	Dir string

	// ModuleFile is the absolute path of the module source file.
	ModuleFile string

	// TestFile is the absolute path of the companion test file, or empty
	// when no test file was requested.
	TestFile string

	// rootMarker is the project-root marker file used by ParentFile.
	rootMarker string
}

// Resolve computes the file layout for the module described by opts.
// It validates the module path and performs no filesystem writes.
func Resolve(opts Options) (*Plan, error) {
	opts = opts.normalize()

	if err := ValidatePath(opts.Path); err != nil {
		return nil, err
	}

	base := opts.BaseDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		base = wd
	}
	base, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base directory: %w", err)
	}

	segments := strings.Split(opts.Path, "/")
	leaf := segments[len(segments)-1]
	parent := filepath.Join(append([]string{base}, segments[:len(segments)-1]...)...)

	plan := &Plan{Leaf: leaf, rootMarker: opts.RootMarker}
	switch opts.Kind {
	case KindDir:
		plan.Dir = filepath.Join(parent, leaf)
		plan.ModuleFile = filepath.Join(plan.Dir, DirEntryName+SourceExt)
		if opts.WithTest {
			plan.TestFile = filepath.Join(plan.Dir, DirEntryName+"_test"+SourceExt)
		}
	default:
		plan.Dir = parent
		plan.ModuleFile = filepath.Join(parent, leaf+SourceExt)
		if opts.WithTest {
			plan.TestFile = filepath.Join(parent, leaf+"_test"+SourceExt)
		}
	}

	return plan, nil
}

// entryName returns the name the module is known by inside its own files:
// the leaf name for file modules, "mod" for directory modules.
func (p *Plan) entryName() string {
	base := filepath.Base(p.ModuleFile)
	return strings.TrimSuffix(base, SourceExt)
}

// containingDir returns the directory whose module file should declare this
// module: the directory holding the module file, or for a directory module
// the directory holding the module directory.
func (p *Plan) containingDir() string {
	if p.entryName() == DirEntryName {
		return filepath.Dir(p.Dir)
	}
	return p.Dir
}

// ParentFile locates the source file that should receive the declaration for
// the new module.
//
// The containing directory is the crate source root when its own parent holds
// the root marker file (Cargo.toml unless configured otherwise). At the root
// the parent file is main.rs when parentMain is set,
// otherwise lib.rs falling back to main.rs; if no root file exists the lookup
// fails with ErrNoRootFound. Below the root the parent is the directory's
// mod.rs, falling back to the sibling <dir>.rs convention one level up; if
// neither exists the lookup fails with ErrParentNotFound, which callers
// downgrade to a warning.
func (p *Plan) ParentFile(parentMain bool) (string, error) {
	dir := p.containingDir()
	grandparent := filepath.Dir(dir)

	marker := p.rootMarker
	if marker == "" {
		marker = DefaultRootMarker
	}
	if fileExists(filepath.Join(grandparent, marker)) {
		return rootParentFile(dir, parentMain)
	}

	modFile := filepath.Join(dir, DirEntryName+SourceExt)
	if fileExists(modFile) {
		return modFile, nil
	}
	siblingFile := filepath.Join(grandparent, filepath.Base(dir)+SourceExt)
	if fileExists(siblingFile) {
		return siblingFile, nil
	}
	return "", fmt.Errorf("%w: neither %s nor %s exists", ErrParentNotFound, modFile, siblingFile)
}

// rootParentFile picks the crate root file inside dir.
func rootParentFile(dir string, parentMain bool) (string, error) {
	mainFile := filepath.Join(dir, MainRootFile)
	if parentMain {
		if fileExists(mainFile) {
			return mainFile, nil
		}
		return "", fmt.Errorf("%w: %s does not exist", ErrNoRootFound, mainFile)
	}

	libFile := filepath.Join(dir, LibRootFile)
	if fileExists(libFile) {
		return libFile, nil
	}
	if fileExists(mainFile) {
		return mainFile, nil
	}
	return "", fmt.Errorf("%w: neither %s nor %s exists", ErrNoRootFound, libFile, mainFile)
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
