// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"log/slog"

	"github.com/albertocavalcante/attrscaffold/internal/cppbase"
	"github.com/albertocavalcante/attrscaffold/internal/markup"
)

// Config contains builder configuration.
type Config struct {
	// IndentUnit is one level of indentation (default: tab).
	IndentUnit string

	// LineEnding is the line break sequence written to items.
	LineEnding string

	// ClampedTypeName is the clamp-capable attribute type.
	ClampedTypeName string

	// PlainTypeName replaces ClampedTypeName on targets without clamp support.
	PlainTypeName string

	// ClampEnumName is the enum declaring the clamping type enumerants.
	ClampEnumName string

	// AccessorMacro is the macro generating attribute accessors.
	AccessorMacro string

	// ClampParentClass is named in the note explaining a type substitution.
	ClampParentClass string

	// Decorators maps token roles to rich text tags.
	Decorators markup.Table

	// Logger receives diagnostics (nil = discard).
	Logger *slog.Logger
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		IndentUnit:       "\t",
		LineEnding:       markup.HostLineEnding(),
		ClampedTypeName:  cppbase.ClampedAttributeType,
		PlainTypeName:    cppbase.AttributeType,
		ClampEnumName:    cppbase.ClampingEnum,
		AccessorMacro:    cppbase.AccessorsMacro,
		ClampParentClass: cppbase.ClampCapableParent,
		Decorators:       markup.DefaultTable,
	}
}

// Log returns the configured logger or one that discards.
func (c Config) Log() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}
