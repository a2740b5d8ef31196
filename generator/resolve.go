// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"slices"

	"github.com/albertocavalcante/attrscaffold/model"
)

// ClampReference is a clamp bound that follows another attribute.
type ClampReference struct {
	// Property owns the clamp definition.
	Property string

	// Bound is "MinValue" or "MaxValue".
	Bound string

	// Attribute is the referenced attribute.
	Attribute string
}

// ResolveClampReferences collects the attribute references made by the
// clamp definitions of props and returns those naming no property of props.
// Only clamped properties with a payload are inspected.
func ResolveClampReferences(props []model.PropertyDescriptor) (refs, dangling []ClampReference) {
	known := make(map[string]bool, len(props))
	for _, p := range props {
		known[p.Name] = true
	}

	for _, p := range props {
		data := p.ClampData()
		if !p.IsClamped || data == nil {
			continue
		}
		for _, bound := range []struct {
			label string
			def   model.ClampDefinition
		}{
			{"MinValue", data.MinValue},
			{"MaxValue", data.MaxValue},
		} {
			if bound.def.Kind != model.ClampAttributeReference {
				continue
			}
			ref := ClampReference{Property: p.Name, Bound: bound.label, Attribute: bound.def.Attribute}
			refs = append(refs, ref)
			if !known[ref.Attribute] {
				dangling = append(dangling, ref)
			}
		}
	}
	return refs, dangling
}

// ReferencedBy returns the names of the properties whose clamps follow
// attribute, sorted and without duplicates.
func ReferencedBy(props []model.PropertyDescriptor, attribute string) []string {
	refs, _ := ResolveClampReferences(props)
	var names []string
	for _, ref := range refs {
		if ref.Attribute == attribute {
			names = append(names, ref.Property)
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}
