// SPDX-License-Identifier: MPL-2.0

package rustmod

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Parent files are edited by plain text search and insert, never by parsing
// Rust. The scanner below only has to recognize three line shapes: comments,
// `use` imports, and `mod` declarations.
var (
	reUseLine     = regexp.MustCompile(`^\s*use\s+`)
	reModLine     = regexp.MustCompile(`^\s*(?:pub(?:\([^)]*\))?\s+)?mod\b`)
	reCommentLine = regexp.MustCompile(`^\s*//`)
)

// appendLine marks "append at end of file" in a parentScan.
const appendLine = -1

// parentScan is the result of reading a parent source file once: its lines,
// whether the leaf is already declared, and where a new declaration belongs.
type parentScan struct {
	lines    []string
	eol      string // line terminator of the original file, "\n" or "\r\n"
	declared bool
	insertAt int // line index for the new declaration, or appendLine
}

// AddToParentFile inserts a declaration for leaf into the parent source file.
// The declaration lands at the end of the file's `use`/`mod` preamble; when
// the file has no preamble it goes after the leading comment block, or at the
// very top. Returns false without modifying the file when a `mod leaf;`
// declaration (any visibility) is already present.
func AddToParentFile(parent, leaf string, vis Visibility) (bool, error) {
	scan, err := scanParent(parent, leaf)
	if err != nil {
		return false, err
	}
	if scan.declared {
		return false, nil
	}

	if err := rewriteWithDeclaration(parent, scan, declarationFor(leaf, vis)); err != nil {
		return false, err
	}
	return true, nil
}

// scanParent reads the parent file and computes the insertion point, porting
// the preamble/header-comment rules the generated files rely on:
//
//   - a preamble is a run of `use`/`mod` lines after any leading comments;
//     new declarations go right after its last line
//   - with no preamble but a leading comment block, declarations go right
//     after the block
//   - otherwise they go at the top of the file
//   - a preamble or comment block that runs to EOF means append
//
// Line terminators are recorded so the rewrite preserves CRLF files as CRLF.
func scanParent(path, leaf string) (*parentScan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parent file: %w", err)
	}

	reDeclared := regexp.MustCompile(`^\s*(?:pub(?:\([^)]*\))?\s+)?mod\s+` + regexp.QuoteMeta(leaf) + `\s*;`)

	scan := &parentScan{insertAt: appendLine, eol: "\n"}
	if strings.Contains(string(data), "\r\n") {
		scan.eol = "\r\n"
	}

	var (
		contentStarted bool
		bodyStarted    bool
		preambleExists bool
		preambleEnd    = appendLine
		headerComment  bool
		headerEnd      = appendLine
		preambleDone   bool
	)

	for lineNum, line := range splitLines(string(data)) {
		scan.lines = append(scan.lines, line)

		if reDeclared.MatchString(line) {
			scan.declared = true
		}

		if !contentStarted && strings.TrimSpace(line) == "" {
			// ignore leading blank lines
			continue
		}
		contentStarted = true

		if !bodyStarted {
			if reCommentLine.MatchString(line) {
				headerComment = true
				continue
			}
			if headerComment {
				headerEnd = lineNum - 1
			}
			bodyStarted = true
		}

		if preambleDone {
			continue
		}
		preambleLine := reUseLine.MatchString(line) || reModLine.MatchString(line)
		switch {
		case preambleLine && !preambleExists:
			preambleExists = true
		case !preambleLine && preambleExists:
			preambleEnd = lineNum - 1
			preambleDone = true
		}
	}

	switch {
	case preambleExists:
		if preambleEnd != appendLine {
			scan.insertAt = preambleEnd + 1
		}
	case headerComment:
		if headerEnd != appendLine {
			scan.insertAt = headerEnd + 1
		}
	default:
		scan.insertAt = 0
	}

	return scan, nil
}

// splitLines breaks content into lines without their terminators. A trailing
// newline does not produce a final empty line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// rewriteWithDeclaration writes the scanned lines plus the new declaration to
// a temp file in the parent's directory, then renames it over the original so
// the edit is all-or-nothing. Lines keep the terminator the original file used.
func rewriteWithDeclaration(path string, scan *parentScan, declaration string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".mkmod-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	inserted := false
	for i, line := range scan.lines {
		if i == scan.insertAt {
			fmt.Fprint(w, declaration, scan.eol)
			inserted = true
		}
		fmt.Fprint(w, line, scan.eol)
	}
	if !inserted {
		fmt.Fprint(w, declaration, scan.eol)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace parent file: %w", err)
	}
	return nil
}
