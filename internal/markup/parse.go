// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package markup

import "strings"

// Segment is a run of rich text sharing one decoration.
type Segment struct {
	// Role is Plain for undecorated runs and for unknown tags.
	Role Role

	// Tag is the decorator tag name, empty for undecorated runs.
	Tag string

	// Text is the unescaped token text.
	Text string
}

// Parse splits rich text into segments using table to resolve tags.
// Decorators do not nest; a closing "</>" always returns to plain text.
func (t Table) Parse(rich string) []Segment {
	var segments []Segment
	var cur Segment
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			cur.Text = Unescape(text.String())
			segments = append(segments, cur)
			text.Reset()
		}
	}

	for i := 0; i < len(rich); {
		if rich[i] != '<' {
			next := strings.IndexByte(rich[i:], '<')
			if next < 0 {
				text.WriteString(rich[i:])
				break
			}
			text.WriteString(rich[i : i+next])
			i += next
			continue
		}

		end := strings.IndexByte(rich[i:], '>')
		if end < 0 {
			// Unterminated tag, keep the remainder as text.
			text.WriteString(rich[i:])
			break
		}
		tag := rich[i+1 : i+end]
		i += end + 1

		flush()
		if tag == "/" {
			cur = Segment{}
			continue
		}
		role, ok := t.RoleOf(tag)
		if !ok {
			role = Plain
		}
		cur = Segment{Role: role, Tag: tag}
	}
	flush()

	return segments
}

// Parse splits rich text decorated with DefaultTable.
func Parse(rich string) []Segment {
	return DefaultTable.Parse(rich)
}

// Strip removes every decorator tag from rich and decodes escapes. For a
// well-formed item, Strip(item.RichText) == item.RawText.
func Strip(rich string) string {
	var b strings.Builder
	for _, seg := range Parse(rich) {
		b.WriteString(seg.Text)
	}
	return b.String()
}
