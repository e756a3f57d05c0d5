// SPDX-License-Identifier: MPL-2.0

// Package rustmod provides functionality for scaffolding Rust modules.
//
// A module is either a single source file (`<name>.rs`) or a directory with a
// `mod.rs` entry point. This package consolidates all scaffolding steps:
//
//   - [Resolve]: Compute the files a new module consists of and the
//     directories they live in, without touching the filesystem.
//   - [Create]: Run the full pipeline — create directories, render the
//     boilerplate templates, write the module and test files, and register
//     the module in its parent source file.
//   - [AddToParentFile]: Insert a `mod <name>;` declaration into an existing
//     parent file, skipping the insert when the declaration is already there.
//
// # Module Naming
//
// Module paths are slash-separated (e.g. "net/server"). Every segment must be
// a plain Rust identifier: start with a letter or underscore, followed by
// alphanumerics or underscores.
//
// # Parent Registration
//
// The parent of a module is the `mod.rs` of its containing directory (or the
// sibling `<dir>.rs` convention), except at the crate root — the directory
// whose parent holds Cargo.toml — where the parent is `lib.rs`, falling back
// to `main.rs`. Registration edits the parent by plain text insertion at the
// end of its `use`/`mod` preamble; the file is never structurally parsed.
package rustmod
