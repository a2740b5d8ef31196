// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package testutil provides golden test cases stored as txtar archives.
package testutil

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// InputFile is the archive member holding the class description.
const InputFile = "input.yaml"

// Case represents a parsed test case from a txtar archive.
type Case struct {
	// Name is the test case name (the filename without extension).
	Name string

	// Description is the comment block before any files.
	Description string

	// Flags contains the flags of a "Flags: ..." line in the description.
	Flags []string

	// Input is the contents of input.yaml.
	Input []byte

	// Want maps relative paths (e.g., "UHero.h") to expected content.
	Want map[string][]byte
}

// ParseCase parses a txtar archive into a test Case.
// The archive should contain:
//   - A description comment (text before first file)
//   - An "input.yaml" file with the class description
//   - One or more "want/<filename>" files with expected output
//
// The description may contain a "Flags: flag1, flag2" line.
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Want:        make(map[string][]byte),
	}
	c.Flags = ParseFlags(c.Description, ",")

	for _, f := range ar.Files {
		switch {
		case f.Name == InputFile:
			c.Input = f.Data
		case strings.HasPrefix(f.Name, "want/"):
			c.Want[strings.TrimPrefix(f.Name, "want/")] = f.Data
		default:
			return nil, fmt.Errorf("unexpected file in archive: %q (expected %s or want/*)", f.Name, InputFile)
		}
	}

	if c.Input == nil {
		return nil, fmt.Errorf("missing %s in archive", InputFile)
	}
	if len(c.Want) == 0 {
		return nil, fmt.Errorf("missing want/* files in archive")
	}
	return c, nil
}

// ParseFlags extracts the flags of the "Flags: ..." line of description,
// split by sep. An empty sep splits on white space.
func ParseFlags(description, sep string) []string {
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(line)
		rest, ok := strings.CutPrefix(line, "Flags:")
		if !ok {
			continue
		}
		var parts []string
		if sep == "" {
			parts = strings.Fields(rest)
		} else {
			parts = strings.Split(rest, sep)
		}
		var flags []string
		for _, f := range parts {
			if f = strings.TrimSpace(f); f != "" {
				flags = append(flags, f)
			}
		}
		return flags
	}
	return nil
}

// GenerateFunc generates output files from a class description.
type GenerateFunc func(input []byte, flags []string) (map[string][]byte, error)

// Run executes the test case using the provided generate function.
func (c *Case) Run(t *testing.T, generate GenerateFunc) {
	t.Helper()

	got, err := generate(c.Input, c.Flags)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	Compare(t, c.Want, got)
}

// Compare reports missing, unexpected and differing files.
func Compare(t *testing.T, want, got map[string][]byte) {
	t.Helper()

	for wantFile := range want {
		if _, ok := got[wantFile]; !ok {
			t.Errorf("missing output file: %q", wantFile)
		}
	}
	for gotFile := range got {
		if _, ok := want[gotFile]; !ok {
			t.Errorf("unexpected output file: %q", gotFile)
		}
	}

	for wantFile, wantContent := range want {
		gotContent, ok := got[wantFile]
		if !ok {
			continue // Already reported as missing
		}
		if diff := cmp.Diff(Normalize(wantContent), Normalize(gotContent)); diff != "" {
			t.Errorf("file %q mismatch (-want +got):\n%s", wantFile, diff)
		}
	}
}

// Normalize prepares content for comparison:
// - Trims trailing whitespace from each line
// - Converts CRLF line endings
// - Trims trailing newlines
func Normalize(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// UpdateArchive returns ar with its want/* files replaced by got. Input
// files are kept in place. Used for golden file updates with -update flag.
func UpdateArchive(ar *txtar.Archive, got map[string][]byte) *txtar.Archive {
	result := &txtar.Archive{Comment: ar.Comment}
	for _, f := range ar.Files {
		if !strings.HasPrefix(f.Name, "want/") {
			result.Files = append(result.Files, f)
		}
	}

	names := make([]string, 0, len(got))
	for name := range got {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		content := got[name]
		if len(content) > 0 && content[len(content)-1] != '\n' {
			content = append(content, '\n')
		}
		result.Files = append(result.Files, txtar.File{Name: "want/" + name, Data: content})
	}
	return result
}

// LoadTestCases loads all txtar test cases from a directory.
func LoadTestCases(t *testing.T, dir string) []*Case {
	t.Helper()

	pattern := filepath.Join(dir, "*.txtar")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}
	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}

	var cases []*Case
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %q: %v", file, err)
		}
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		c, err := ParseCase(name, ar)
		if err != nil {
			t.Fatalf("parse case %q: %v", name, err)
		}
		cases = append(cases, c)
	}

	slices.SortFunc(cases, func(a, b *Case) int { return strings.Compare(a.Name, b.Name) })
	return cases
}
