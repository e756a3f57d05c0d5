// SPDX-License-Identifier: MPL-2.0

// Package testutil provides shared helpers for tests, mainly temp-dir crate
// fixtures that look like real Rust projects (Cargo.toml plus a src tree).
package testutil
