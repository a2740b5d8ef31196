// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package asset provides the source assets whose members are scaffolded:
// visual-script blueprints and plain data structures.
package asset

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/albertocavalcante/attrscaffold/internal/cppbase"
	"github.com/albertocavalcante/attrscaffold/model"
)

// ErrMemberNotFound is returned when a rename names no existing member.
var ErrMemberNotFound = errors.New("member not found")

// Blueprint is a visual-script asset: attribute variables plus function
// graphs, both sharing one member namespace.
type Blueprint struct {
	Name        string
	ParentClass string
	Variables   []model.PropertyDescriptor
	Functions   []string
}

// AssetName implements model.Asset.
func (b *Blueprint) AssetName() string { return b.Name }

// Properties implements model.Asset.
func (b *Blueprint) Properties() []model.PropertyDescriptor {
	return cloneProperties(b.Variables)
}

// HasMember reports whether a variable or function graph is named name,
// ignoring case.
func (b *Blueprint) HasMember(name string) bool {
	for _, v := range b.Variables {
		if strings.EqualFold(v.Name, name) {
			return true
		}
	}
	for _, f := range b.Functions {
		if strings.EqualFold(f, name) {
			return true
		}
	}
	return false
}

// RenameVariable renames variable oldName to newName across the asset:
// the variable itself and its replication handler graph. With
// propagateClampRefs, clamp bounds following oldName follow newName.
// It returns the names of the properties whose clamps were rewritten.
func (b *Blueprint) RenameVariable(oldName, newName string, propagateClampRefs bool) ([]string, error) {
	idx := slices.IndexFunc(b.Variables, func(p model.PropertyDescriptor) bool {
		return p.Name == oldName
	})
	if idx < 0 {
		return nil, fmt.Errorf("rename variable %q: %w", oldName, ErrMemberNotFound)
	}
	b.Variables[idx].Name = newName

	oldHandler := cppbase.OnRepName(oldName)
	for i, f := range b.Functions {
		if f == oldHandler {
			b.Functions[i] = cppbase.OnRepName(newName)
		}
	}

	if !propagateClampRefs {
		return nil, nil
	}
	var rewritten []string
	for i := range b.Variables {
		c := b.Variables[i].Clamp
		if c == nil {
			continue
		}
		changed := retarget(&c.MinValue, oldName, newName)
		changed = retarget(&c.MaxValue, oldName, newName) || changed
		if changed {
			rewritten = append(rewritten, b.Variables[i].Name)
		}
	}
	return rewritten, nil
}

func retarget(def *model.ClampDefinition, oldName, newName string) bool {
	if def.Kind != model.ClampAttributeReference || def.Attribute != oldName {
		return false
	}
	def.Attribute = newName
	return true
}

// Struct is a data-structure asset. Member names are friendly names,
// unique within the structure.
type Struct struct {
	Name    string
	Members []model.PropertyDescriptor
}

// AssetName implements model.Asset.
func (s *Struct) AssetName() string { return s.Name }

// Properties implements model.Asset.
func (s *Struct) Properties() []model.PropertyDescriptor {
	return cloneProperties(s.Members)
}

// IsUniqueFriendlyName reports whether no member is already named name,
// ignoring case.
func (s *Struct) IsUniqueFriendlyName(name string) bool {
	return !slices.ContainsFunc(s.Members, func(p model.PropertyDescriptor) bool {
		return strings.EqualFold(p.Name, name)
	})
}

// RenameMember changes the friendly name of member oldName.
func (s *Struct) RenameMember(oldName, newName string) error {
	idx := slices.IndexFunc(s.Members, func(p model.PropertyDescriptor) bool {
		return p.Name == oldName
	})
	if idx < 0 {
		return fmt.Errorf("rename member %q: %w", oldName, ErrMemberNotFound)
	}
	s.Members[idx].Name = newName
	return nil
}

// cloneProperties copies props including their clamp payloads.
func cloneProperties(props []model.PropertyDescriptor) []model.PropertyDescriptor {
	if props == nil {
		return nil
	}
	out := make([]model.PropertyDescriptor, len(props))
	for i, p := range props {
		if p.Clamp != nil {
			c := *p.Clamp
			p.Clamp = &c
		}
		out[i] = p
	}
	return out
}
