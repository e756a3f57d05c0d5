// SPDX-License-Identifier: MPL-2.0

package rustmod

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Result reports what Create produced. ParentErr carries the non-fatal
// parent-not-found condition: module files were written, but no parent file
// could be located for registration.
type Result struct {
	// ModuleFile is the path of the written module source file.
	ModuleFile string
	// TestFile is the path of the written test file, or empty.
	TestFile string

	// ParentFile is the file the module was registered in, or empty when
	// registration was skipped or the parent was missing.
	ParentFile string
	// Declared is true when a new declaration line was inserted. It is
	// false when registration was skipped, the parent was missing, or the
	// parent already declared the module.
	Declared bool

	// ParentErr is non-nil when registration was requested but the parent
	// file could not be located (wraps ErrParentNotFound).
	ParentErr error
}

// Create scaffolds the module described by opts. The pipeline is linear:
// resolve paths, create directories, render and write files, then register
// the module in its parent. A failed write aborts before registration runs;
// a missing parent never fails the run (see Result.ParentErr). Files already
// written are not rolled back on a later failure.
func Create(opts Options) (*Result, error) {
	opts = opts.normalize()

	plan, err := Resolve(opts)
	if err != nil {
		return nil, err
	}

	if err := createDirs(opts, plan); err != nil {
		return nil, err
	}

	res := &Result{ModuleFile: plan.ModuleFile}
	if err := writeNew(plan.ModuleFile, moduleTemplate(plan.entryName(), opts.WithTest)); err != nil {
		return nil, err
	}
	if plan.TestFile != "" {
		if err := writeNew(plan.TestFile, testTemplate()); err != nil {
			return nil, err
		}
		res.TestFile = plan.TestFile
	}

	if !opts.AddToParent {
		return res, nil
	}

	parent, err := plan.ParentFile(opts.ParentMain)
	if err != nil {
		if errors.Is(err, ErrParentNotFound) {
			res.ParentErr = err
			return res, nil
		}
		return nil, err
	}

	inserted, err := AddToParentFile(parent, plan.Leaf, opts.Visibility)
	if err != nil {
		return nil, fmt.Errorf("failed to register module in %s: %w", parent, err)
	}
	res.ParentFile = parent
	res.Declared = inserted
	return res, nil
}

// createDirs creates the intermediate directories of the plan, plus the leaf
// directory for a directory module. An existing leaf directory means the
// module already exists.
func createDirs(opts Options, plan *Plan) error {
	if opts.Kind == KindDir {
		if err := os.MkdirAll(filepath.Dir(plan.Dir), 0o755); err != nil {
			return fmt.Errorf("failed to create directories for %s: %w", plan.Dir, err)
		}
		if _, err := os.Stat(plan.Dir); err == nil {
			return fmt.Errorf("%w: %s", ErrAlreadyExists, plan.Dir)
		}
		if err := os.Mkdir(plan.Dir, 0o755); err != nil {
			return fmt.Errorf("failed to create module directory %s: %w", plan.Dir, err)
		}
		return nil
	}

	if err := os.MkdirAll(plan.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directories for %s: %w", plan.Dir, err)
	}
	return nil
}

// writeNew writes content to path, failing when the file already exists.
func writeNew(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrAlreadyExists, path)
		}
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
