// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package codegen emits the plain and decorated renderings of a generated
// item in lock-step.
//
// Every fragment is written to both streams by the same call, so stripping
// the decorators from the rich stream always yields the raw stream.
package codegen

import (
	"strings"

	"github.com/albertocavalcante/attrscaffold/internal/cppbase"
	"github.com/albertocavalcante/attrscaffold/internal/markup"
	"github.com/albertocavalcante/attrscaffold/model"
)

// Writer accumulates one list item.
type Writer struct {
	table markup.Table
	raw   strings.Builder
	rich  strings.Builder

	// illegal is the first identifier that failed validation.
	illegal string
}

// NewWriter returns a Writer decorating tokens with table. A nil table
// means markup.DefaultTable.
func NewWriter(table markup.Table) *Writer {
	if table == nil {
		table = markup.DefaultTable
	}
	return &Writer{table: table}
}

// Text writes undecorated text.
func (w *Writer) Text(s string) {
	w.raw.WriteString(s)
	w.rich.WriteString(markup.Escape(s))
}

// Newline writes a line break.
func (w *Writer) Newline() {
	w.Text("\n")
}

// Token writes s decorated for role.
func (w *Writer) Token(role markup.Role, s string) {
	w.raw.WriteString(s)
	w.rich.WriteString(w.table.Wrap(role, s))
}

// Ident writes an identifier, decorated as an error when it is not legal.
func (w *Writer) Ident(name string) {
	w.IdentAs(name, name)
}

// IdentAs writes token, an identifier derived from name such as
// "OnRep_<name>". The decoration follows the legality of name.
func (w *Writer) IdentAs(name, token string) {
	role := markup.Identifier
	if !cppbase.IsLegalIdentifier(name) {
		role = markup.Error
		if w.illegal == "" {
			w.illegal = name
		}
	}
	w.Token(role, token)
}

// Comment writes text as a doc comment. Single lines become
// "/** text */", multiple lines a block with " * " prefixes.
func (w *Writer) Comment(text string) {
	w.Token(markup.Comment, FormatComment(text))
}

// FormatComment formats text as a C++ doc comment.
func FormatComment(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if !strings.Contains(text, "\n") {
		return "/** " + text + " */"
	}
	return "/**\n * " + strings.ReplaceAll(text, "\n", "\n * ") + "\n */"
}

// IllegalName returns the first identifier that failed validation.
func (w *Writer) IllegalName() string {
	return w.illegal
}

// Raw returns the plain text written so far.
func (w *Writer) Raw() string {
	return w.raw.String()
}

// Rich returns the decorated text written so far.
func (w *Writer) Rich() string {
	return w.rich.String()
}

// Finish normalizes both streams once and returns the item. The indent is
// escaped for the rich stream like any other text.
func (w *Writer) Finish(level int, indent, eol string) model.ListItem {
	return model.ListItem{
		RawText:     markup.Normalize(w.raw.String(), level, indent, eol),
		RichText:    markup.Normalize(w.rich.String(), level, markup.Escape(indent), eol),
		IllegalName: w.illegal,
	}
}

// EffectiveType returns the type to declare for p. A clamp-capable
// property on a target without clamp support falls back to plainType; the
// second result reports the substitution.
func EffectiveType(p model.PropertyDescriptor, supportsClamped bool, plainType string) (string, bool) {
	if p.IsClamped && !supportsClamped {
		return plainType, true
	}
	return p.DeclaredTypeName, false
}
