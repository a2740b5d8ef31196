// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package source loads class descriptions, the YAML (or JSON) files
// describing the asset whose attributes are scaffolded.
package source

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/albertocavalcante/attrscaffold/asset"
	"github.com/albertocavalcante/attrscaffold/internal/cppbase"
	"github.com/albertocavalcante/attrscaffold/model"
	"github.com/albertocavalcante/attrscaffold/settings"
)

// Asset kinds accepted in descriptions.
const (
	KindBlueprint = "blueprint"
	KindStruct    = "struct"
)

// ClassPrefix is prepended to class names derived from asset names.
const ClassPrefix = "U"

// Document is the on-disk form of a class description.
type Document struct {
	Kind            string                     `yaml:"kind" validate:"required,oneof=blueprint struct"`
	Name            string                     `yaml:"name" validate:"required"`
	ParentClass     string                     `yaml:"parent_class,omitempty"`
	TargetClassName string                     `yaml:"target_class_name,omitempty"`
	NewClassName    string                     `yaml:"new_class_name,omitempty"`
	SupportsClamped *bool                      `yaml:"supports_clamped,omitempty"`
	Functions       []string                   `yaml:"functions,omitempty"`
	Properties      []model.PropertyDescriptor `yaml:"properties" validate:"dive"`
}

// Result contains a loaded description and what was derived from it.
type Result struct {
	// Document is the description as read.
	Document *Document

	// Asset is the blueprint or struct built from the document.
	Asset model.Asset

	// View is the wizard snapshot for the asset.
	View *model.ViewModel

	// Source describes where the description was loaded from.
	Source string
}

var validate = validator.New()

// Load reads and parses the description at path.
func Load(path string, s settings.Settings) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read description: %w", err)
	}
	r, err := Parse(data, s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	r.Source = path
	return r, nil
}

// Parse decodes a description and builds its asset and view-model.
func Parse(data []byte, s settings.Settings) (*Result, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse description: %w", err)
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("validate description: %w", err)
	}
	for _, p := range doc.Properties {
		if p.Clamp == nil {
			continue
		}
		if err := p.Clamp.MinValue.Validate(); err != nil {
			return nil, fmt.Errorf("property %q min: %w", p.Name, err)
		}
		if err := p.Clamp.MaxValue.Validate(); err != nil {
			return nil, fmt.Errorf("property %q max: %w", p.Name, err)
		}
	}

	r := &Result{Document: &doc, Source: "(inline)"}
	switch doc.Kind {
	case KindBlueprint:
		r.Asset = &asset.Blueprint{
			Name:        doc.Name,
			ParentClass: doc.ParentClass,
			Variables:   slices.Clone(doc.Properties),
			Functions:   slices.Clone(doc.Functions),
		}
	case KindStruct:
		r.Asset = &asset.Struct{
			Name:    doc.Name,
			Members: slices.Clone(doc.Properties),
		}
	}

	target := doc.TargetClassName
	if target == "" {
		target = cppbase.ClassNameFor(doc.Name, ClassPrefix)
	}
	supports := s.SupportsClamped(doc.ParentClass)
	if doc.SupportsClamped != nil {
		supports = *doc.SupportsClamped
	}
	r.View = &model.ViewModel{
		TargetClassName:           target,
		NewClassName:              doc.NewClassName,
		Asset:                     r.Asset,
		SupportsClampedAttributes: supports,
	}
	return r, nil
}

// Snapshot returns the document updated with the current members of the
// asset, as changed by committed renames.
func (r *Result) Snapshot() *Document {
	doc := *r.Document
	doc.Properties = r.Asset.Properties()
	if bp, ok := r.Asset.(*asset.Blueprint); ok {
		doc.Functions = slices.Clone(bp.Functions)
	}
	return &doc
}

// Marshal encodes doc as YAML.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode description: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode description: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the current state of r to path.
func Save(path string, r *Result) error {
	data, err := Marshal(r.Snapshot())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write description: %w", err)
	}
	return nil
}
