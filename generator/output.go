// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"slices"
	"strings"

	"github.com/albertocavalcante/attrscaffold/model"
)

// Output contains generated files.
type Output struct {
	// Files maps filename to content.
	Files map[string][]byte
}

// NewOutput creates a new Output.
func NewOutput() *Output {
	return &Output{Files: make(map[string][]byte)}
}

// Add adds a file to the output.
func (o *Output) Add(name string, content []byte) {
	o.Files[name] = content
}

// Names returns the file names, sorted.
func (o *Output) Names() []string {
	names := make([]string, 0, len(o.Files))
	for name := range o.Files {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Single returns an Output with a single file.
func Single(name string, content []byte) *Output {
	return &Output{Files: map[string][]byte{name: content}}
}

// JoinRaw joins the raw text of non-empty items with eol.
func JoinRaw(items []model.ListItem, eol string) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if item.IsEmpty() {
			continue
		}
		parts = append(parts, item.RawText)
	}
	return strings.Join(parts, eol)
}

// JoinRich joins the rich text of non-empty items with eol.
func JoinRich(items []model.ListItem, eol string) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if item.IsEmpty() {
			continue
		}
		parts = append(parts, item.RichText)
	}
	return strings.Join(parts, eol)
}
