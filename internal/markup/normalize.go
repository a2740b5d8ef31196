// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package markup

import (
	"fmt"
	"runtime"
	"strings"
)

// LineEnding names a line ending convention.
type LineEnding string

const (
	// LineEndingHost uses the convention of the running platform.
	LineEndingHost LineEnding = "host"
	LineEndingLF   LineEnding = "lf"
	LineEndingCRLF LineEnding = "crlf"
)

// ParseLineEnding parses a line ending name. Empty means host.
func ParseLineEnding(s string) (LineEnding, error) {
	switch e := LineEnding(strings.ToLower(strings.TrimSpace(s))); e {
	case "":
		return LineEndingHost, nil
	case LineEndingHost, LineEndingLF, LineEndingCRLF:
		return e, nil
	default:
		return "", fmt.Errorf("unknown line ending %q", s)
	}
}

// Sequence returns the byte sequence for the convention.
func (e LineEnding) Sequence() string {
	switch e {
	case LineEndingLF:
		return "\n"
	case LineEndingCRLF:
		return "\r\n"
	default:
		return HostLineEnding()
	}
}

// HostLineEnding returns the canonical line ending of the running platform.
func HostLineEnding() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Normalize indents text by level indent units, indenting every line after
// a line break too, then rewrites all line breaks to eol.
//
// Normalize is applied once to a finished item. Indentation is expressed as
// a level so callers never re-prefix already indented text.
func Normalize(text string, level int, indent, eol string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if level > 0 && indent != "" {
		prefix := strings.Repeat(indent, level)
		text = prefix + strings.ReplaceAll(text, "\n", "\n"+prefix)
	}
	if eol == "" {
		eol = HostLineEnding()
	}
	if eol != "\n" {
		text = strings.ReplaceAll(text, "\n", eol)
	}
	return text
}
