// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the interface for attribute list item builders.
package generator

import "github.com/albertocavalcante/attrscaffold/model"

// Builder is the interface that all list item builders must implement.
type Builder interface {
	// Metadata returns information about this builder.
	Metadata() Metadata

	// Build produces one list item. Builders never fail: missing inputs
	// yield an empty or reduced item.
	Build(in Input, cfg Config) model.ListItem
}

// View is the generated file an item belongs to.
type View string

const (
	ViewHeader View = "header"
	ViewSource View = "source"
)

// Scope tells whether a builder runs once per class or once per property.
type Scope string

const (
	ScopeClass    Scope = "class"
	ScopeProperty Scope = "property"
)

// Metadata describes a builder.
type Metadata struct {
	// Name is the short identifier (e.g., "header.variable").
	Name string

	// View is the file the item is emitted into.
	View View

	// Scope is the unit the builder is invoked for.
	Scope Scope

	// Description is a human-readable description.
	Description string
}

// Input is the snapshot a builder reads.
type Input struct {
	// View is the wizard view-model.
	View *model.ViewModel

	// Property is the property being declared; nil for class scoped builders.
	Property *model.PropertyDescriptor
}
