// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package cppbase provides C++ identifier rules, type classification and
// naming helpers shared by the header and source builders.
package cppbase

import "strings"

// Engine type and macro names used by generated attribute sets.
const (
	ClampedAttributeType = "FGBAGameplayClampedAttributeData"
	AttributeType        = "FGameplayAttributeData"
	ClampingEnum         = "EGBAClampingType"
	AccessorsMacro       = "ATTRIBUTE_ACCESSORS"
	ClampCapableParent   = "UGBAAttributeSetBlueprintBase"
)

// byValueTypes are passed by value to replication handlers: they fit in a
// machine word.
var byValueTypes = map[string]bool{
	"bool":   true,
	"int8":   true,
	"int16":  true,
	"int32":  true,
	"int64":  true,
	"uint8":  true,
	"uint16": true,
	"uint32": true,
	"uint64": true,
	"float":  true,
	"double": true,
	"int":    true,
	"char":   true,
}

// ShouldUseConstRef reports whether a handler parameter of type typ should
// be passed as a const reference rather than by value.
func ShouldUseConstRef(typ string) bool {
	typ = strings.TrimSpace(typ)
	if typ == "" {
		return false
	}
	if byValueTypes[typ] {
		return false
	}
	// Pointers and enum bytes fit in a register.
	if strings.HasSuffix(typ, "*") || strings.HasPrefix(typ, "TEnumAsByte<") {
		return false
	}
	if strings.HasPrefix(typ, "E") && len(typ) > 1 && isUpper(typ[1]) {
		return false
	}
	return true
}

func isUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}
