// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package cppbase

import (
	"fmt"
	"strings"
	"unicode"
)

// IsLegalIdentifier reports whether name is a legal C++ identifier: a
// letter or underscore followed by letters, digits or underscores.
func IsLegalIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// reservedWords holds C++ keywords and names the engine refuses for
// blueprint members.
var reservedWords = map[string]bool{
	"alignas": true, "alignof": true, "and": true, "asm": true, "auto": true,
	"bool": true, "break": true, "case": true, "catch": true, "char": true,
	"class": true, "const": true, "constexpr": true, "const_cast": true,
	"continue": true, "decltype": true, "default": true, "delete": true,
	"do": true, "double": true, "dynamic_cast": true, "else": true,
	"enum": true, "explicit": true, "export": true, "extern": true,
	"false": true, "float": true, "for": true, "friend": true, "goto": true,
	"if": true, "inline": true, "int": true, "long": true, "mutable": true,
	"namespace": true, "new": true, "noexcept": true, "not": true,
	"nullptr": true, "operator": true, "or": true, "private": true,
	"protected": true, "public": true, "register": true,
	"reinterpret_cast": true, "return": true, "short": true, "signed": true,
	"sizeof": true, "static": true, "static_assert": true,
	"static_cast": true, "struct": true, "switch": true, "template": true,
	"this": true, "thread_local": true, "throw": true, "true": true,
	"try": true, "typedef": true, "typeid": true, "typename": true,
	"union": true, "unsigned": true, "using": true, "virtual": true,
	"void": true, "volatile": true, "while": true, "xor": true,
	// engine reserved
	"none": true, "self": true, "super": true,
}

// IsReservedWord reports whether name is a C++ keyword or an engine
// reserved member name. Engine names compare case-insensitively.
func IsReservedWord(name string) bool {
	if reservedWords[name] {
		return true
	}
	switch strings.ToLower(name) {
	case "none", "self", "super":
		return true
	}
	return false
}

// OnRepName returns the replication handler name for an attribute.
func OnRepName(name string) string {
	return "OnRep_" + name
}

// OldValueName returns the handler parameter name for an attribute.
func OldValueName(name string) string {
	return "Old" + name
}

// AccessorCall returns the call expression of the generated attribute
// getter, e.g. "GetMaxHealthAttribute()".
func AccessorCall(name string) string {
	return "Get" + name + "Attribute()"
}

// FloatLiteral formats v as a single precision literal with two decimals.
func FloatLiteral(v float64) string {
	return fmt.Sprintf("%.2ff", v)
}

// ClassNameFor derives a class name from an asset name: common asset
// prefixes are dropped, characters outside the identifier grammar are
// removed and prefix is prepended.
func ClassNameFor(assetName, prefix string) string {
	name := assetName
	for _, p := range []string{"BP_", "B_", "S_", "F_"} {
		if strings.HasPrefix(name, p) && len(name) > len(p) {
			name = name[len(p):]
			break
		}
	}
	name = strings.Map(func(r rune) rune {
		if r == '_' || r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return -1
	}, name)
	if name == "" {
		name = "Generated"
	}
	return prefix + name
}
