// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package settings holds the user settings of the scaffold generator and
// notifies subscribers when they change.
package settings

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/albertocavalcante/attrscaffold/internal/cppbase"
	"github.com/albertocavalcante/attrscaffold/internal/markup"
	"github.com/albertocavalcante/attrscaffold/rename"
)

// Settings configures generated text.
type Settings struct {
	// IndentUnit is one level of indentation.
	IndentUnit string `yaml:"indent_unit" validate:"required,excludesall=<>&"`

	// LineEnding is host, lf or crlf.
	LineEnding markup.LineEnding `yaml:"line_ending" validate:"omitempty,oneof=host lf crlf"`

	ClampedTypeName string `yaml:"clamped_type_name" validate:"required"`
	PlainTypeName   string `yaml:"plain_type_name" validate:"required"`
	ClampEnumName   string `yaml:"clamp_enum_name" validate:"required"`
	AccessorMacro   string `yaml:"accessor_macro" validate:"required"`

	// ClampCapableParents lists the parent classes handling clamped
	// attribute data. The first entry is named in substitution notes.
	ClampCapableParents []string `yaml:"clamp_capable_parents" validate:"required,min=1,dive,required"`

	// MaxNameLength caps blueprint member names.
	MaxNameLength int `yaml:"max_name_length" validate:"gte=1"`

	// PropagateClampReferences rewrites clamp bounds following a renamed
	// attribute.
	PropagateClampReferences bool `yaml:"propagate_clamp_references"`
}

// Default returns the engine defaults.
func Default() Settings {
	return Settings{
		IndentUnit:          "\t",
		LineEnding:          markup.LineEndingHost,
		ClampedTypeName:     cppbase.ClampedAttributeType,
		PlainTypeName:       cppbase.AttributeType,
		ClampEnumName:       cppbase.ClampingEnum,
		AccessorMacro:       cppbase.AccessorsMacro,
		ClampCapableParents: []string{cppbase.ClampCapableParent},
		MaxNameLength:       rename.DefaultMaxNameLength,
	}
}

var validate = validator.New()

// Validate checks the settings.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validate settings: %w", err)
	}
	return nil
}

// Clone returns a deep copy of s.
func (s Settings) Clone() Settings {
	s.ClampCapableParents = slices.Clone(s.ClampCapableParents)
	return s
}

// SupportsClamped reports whether parentClass handles clamped attributes.
func (s Settings) SupportsClamped(parentClass string) bool {
	return slices.Contains(s.ClampCapableParents, parentClass)
}

// ClampParentClass returns the parent class named in substitution notes.
func (s Settings) ClampParentClass() string {
	if len(s.ClampCapableParents) == 0 {
		return cppbase.ClampCapableParent
	}
	return s.ClampCapableParents[0]
}

// RenameOptions returns the naming authority options.
func (s Settings) RenameOptions() rename.Options {
	return rename.Options{
		MaxNameLength:            s.MaxNameLength,
		PropagateClampReferences: s.PropagateClampReferences,
	}
}

// Load reads a YAML settings file over the defaults. A missing file yields
// the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML settings over the defaults and validates them.
func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
