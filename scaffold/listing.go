// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package scaffold

import (
	"strings"

	"github.com/albertocavalcante/attrscaffold/generator"
	"github.com/albertocavalcante/attrscaffold/model"
)

// Listing is the generated text of one class.
type Listing struct {
	ClassName  string
	LineEnding string
	Header     []model.ListItem
	Source     []model.ListItem
}

// RawHeader joins the plain header items.
func (l Listing) RawHeader() string { return generator.JoinRaw(l.Header, l.LineEnding) }

// RichHeader joins the decorated header items.
func (l Listing) RichHeader() string { return generator.JoinRich(l.Header, l.LineEnding) }

// RawSource joins the plain source items.
func (l Listing) RawSource() string { return generator.JoinRaw(l.Source, l.LineEnding) }

// RichSource joins the decorated source items.
func (l Listing) RichSource() string { return generator.JoinRich(l.Source, l.LineEnding) }

// IllegalNames returns the distinct names flagged by the items, in listing
// order.
func (l Listing) IllegalNames() []string {
	var names []string
	for _, item := range l.FlaggedItems() {
		names = append(names, item.IllegalName)
	}
	return names
}

// FlaggedItems returns the first item flagging each illegal name.
func (l Listing) FlaggedItems() []model.ListItem {
	var items []model.ListItem
	seen := make(map[string]bool)
	for _, group := range [][]model.ListItem{l.Header, l.Source} {
		for _, item := range group {
			if item.HasIllegalName() && !seen[item.IllegalName] {
				seen[item.IllegalName] = true
				items = append(items, item)
			}
		}
	}
	return items
}

// Output returns the listing as "<Class>.h" and "<Class>.cpp" files.
func (l Listing) Output() *generator.Output {
	out := generator.NewOutput()
	if l.ClassName == "" {
		return out
	}
	out.Add(l.ClassName+".h", []byte(withTrailingNewline(l.RawHeader(), l.LineEnding)))
	out.Add(l.ClassName+".cpp", []byte(withTrailingNewline(l.RawSource(), l.LineEnding)))
	return out
}

func withTrailingNewline(s, eol string) string {
	if s == "" || strings.HasSuffix(s, eol) {
		return s
	}
	return s + eol
}
