// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package preview renders decorated list item text for display: ANSI
// colors for terminals and a sanitized HTML page for browsers.
package preview

import (
	"strings"

	"github.com/mgutz/ansi"

	"github.com/albertocavalcante/attrscaffold/internal/markup"
)

// Palette maps token roles to mgutz/ansi style strings such as "blue+b".
type Palette map[markup.Role]string

// DefaultPalette colors tokens the way the editor preview does.
var DefaultPalette = Palette{
	markup.Keyword:        "blue+b",
	markup.TypeName:       "cyan",
	markup.Identifier:     "white+b",
	markup.Macro:          "magenta",
	markup.NumericLiteral: "yellow",
	markup.Error:          "red+bu",
	markup.Comment:        "green",
}

// ANSI renders rich text with terminal colors using DefaultPalette.
func ANSI(rich string) string {
	return DefaultPalette.Render(markup.DefaultTable, rich)
}

// Render renders rich text decorated with table using the palette.
// Undecorated text and unknown tags are written plain.
func (p Palette) Render(table markup.Table, rich string) string {
	colorize := make(map[markup.Role]func(string) string, len(p))
	for role, style := range p {
		colorize[role] = ansi.ColorFunc(style)
	}

	var b strings.Builder
	for _, seg := range table.Parse(rich) {
		fn, ok := colorize[seg.Role]
		if seg.Role == markup.Plain || !ok {
			b.WriteString(seg.Text)
			continue
		}
		// Color line by line so a reset never spans a line break.
		lines := strings.Split(seg.Text, "\n")
		for i, line := range lines {
			if i > 0 {
				b.WriteByte('\n')
			}
			if line != "" {
				b.WriteString(fn(line))
			}
		}
	}
	return b.String()
}
