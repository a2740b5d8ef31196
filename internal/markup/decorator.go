// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package markup implements the decorator markup of the rich text stream
// and the line normalization shared by every generated item.
//
// A decorated token has the form <tag>token</>. Token text is escaped so
// that a '<' in the rich stream always starts a tag.
package markup

import "strings"

// Role is the syntactic role of a token.
type Role int

const (
	// Plain marks undecorated text such as punctuation and whitespace.
	Plain Role = iota
	Keyword
	TypeName
	Identifier
	Macro
	NumericLiteral
	// Error replaces Identifier for names that fail validation.
	Error
	Comment
)

var roleNames = [...]string{
	Plain:          "plain",
	Keyword:        "keyword",
	TypeName:       "typename",
	Identifier:     "identifier",
	Macro:          "macro",
	NumericLiteral: "numericliteral",
	Error:          "error",
	Comment:        "comment",
}

// String returns the lower-case role name.
func (r Role) String() string {
	if r >= 0 && int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "unknown"
}

// Roles lists every decorated role.
func Roles() []Role {
	return []Role{Keyword, TypeName, Identifier, Macro, NumericLiteral, Error, Comment}
}

// Table maps roles to decorator tag names.
type Table map[Role]string

// DefaultTable is the decorator set understood by the header preview.
var DefaultTable = Table{
	Keyword:        "keyword",
	TypeName:       "typename",
	Identifier:     "identifier",
	Macro:          "macro",
	NumericLiteral: "numericliteral",
	Error:          "error",
	Comment:        "comment",
}

// Tag returns the tag name for role, falling back to DefaultTable.
func (t Table) Tag(role Role) string {
	if tag, ok := t[role]; ok && tag != "" {
		return tag
	}
	return DefaultTable[role]
}

// RoleOf returns the role decorated by tag.
func (t Table) RoleOf(tag string) (Role, bool) {
	for _, role := range Roles() {
		if t.Tag(role) == tag {
			return role, true
		}
	}
	return Plain, false
}

// Wrap returns token decorated for role. Plain tokens are only escaped.
func (t Table) Wrap(role Role, token string) string {
	if role == Plain {
		return Escape(token)
	}
	return "<" + t.Tag(role) + ">" + Escape(token) + "</>"
}

var (
	escaper   = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	unescaper = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&")
)

// Escape encodes the characters that would be read as markup.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape reverses Escape.
func Unescape(s string) string {
	return unescaper.Replace(s)
}
