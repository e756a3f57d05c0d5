// SPDX-License-Identifier: MPL-2.0

package rustmod

import "fmt"

// Generated file bodies are a fixed contract: downstream crates compile the
// output directly, so the exact shape of the inclusion directive matters.

// moduleTemplate renders the body of a new module file. With a companion
// test the body wires the sibling test file in behind #[cfg(test)]; without
// one the module starts empty.
func moduleTemplate(name string, withTest bool) string {
	if !withTest {
		return ""
	}
	return fmt.Sprintf(`
#[cfg(test)]
#[path = "./%s_test.rs"]
mod %s_test;
`, name, name)
}

// testTemplate renders the body of a companion test file: a minimal skeleton
// with a single placeholder case. The file is included as a module of the
// code under test, so super refers to the new module itself.
func testTemplate() string {
	return `use super::*;

#[test]
fn placeholder() {}
`
}

// declarationFor formats the `mod` line inserted into a parent source file.
func declarationFor(leaf string, vis Visibility) string {
	if vis == VisibilityPrivate {
		return fmt.Sprintf("mod %s;", leaf)
	}
	return fmt.Sprintf("pub mod %s;", leaf)
}
