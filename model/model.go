// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package model defines the inputs and outputs of the attribute scaffold
// generator: property descriptors, clamp rules, the wizard view-model
// snapshot and the generated list items.
package model

import (
	"fmt"
	"strings"
)

// ClampKind selects which payload of a ClampDefinition is active.
type ClampKind int

const (
	// ClampNone leaves the bound unclamped.
	ClampNone ClampKind = iota
	// ClampLiteral bounds the attribute by a constant.
	ClampLiteral
	// ClampAttributeReference bounds the attribute by another attribute's value.
	ClampAttributeReference
)

var clampKindNames = map[ClampKind]string{
	ClampNone:               "none",
	ClampLiteral:            "literal",
	ClampAttributeReference: "attribute",
}

// clampEnumValues are the enumerant names of the engine's clamping type.
var clampEnumValues = map[ClampKind]string{
	ClampNone:               "None",
	ClampLiteral:            "Float",
	ClampAttributeReference: "AttributeBased",
}

// String returns the text form used in description files.
func (k ClampKind) String() string {
	if s, ok := clampKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ClampKind(%d)", int(k))
}

// EnumValue returns the value name of the clamping type enumerant,
// e.g. "Float" for ClampLiteral.
func (k ClampKind) EnumValue() string {
	return clampEnumValues[k]
}

// ParseClampKind parses the text form of a clamp kind. Matching is
// case-insensitive and also accepts the enumerant value names.
func ParseClampKind(s string) (ClampKind, error) {
	s = strings.TrimSpace(s)
	for k, name := range clampKindNames {
		if strings.EqualFold(s, name) || strings.EqualFold(s, clampEnumValues[k]) {
			return k, nil
		}
	}
	if s == "" {
		return ClampNone, nil
	}
	return ClampNone, fmt.Errorf("unknown clamp kind %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (k ClampKind) MarshalText() ([]byte, error) {
	if _, ok := clampKindNames[k]; !ok {
		return nil, fmt.Errorf("invalid clamp kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *ClampKind) UnmarshalText(text []byte) error {
	parsed, err := ParseClampKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ClampDefinition is one bound (min or max) of a clamped attribute.
// Value is meaningful only for ClampLiteral, Attribute only for
// ClampAttributeReference.
type ClampDefinition struct {
	Kind      ClampKind `yaml:"kind" json:"kind"`
	Value     float64   `yaml:"value,omitempty" json:"value,omitempty"`
	Attribute string    `yaml:"attribute,omitempty" json:"attribute,omitempty"`
}

// Literal returns a bound fixed to v.
func Literal(v float64) ClampDefinition {
	return ClampDefinition{Kind: ClampLiteral, Value: v}
}

// AttributeRef returns a bound that follows the named attribute.
func AttributeRef(name string) ClampDefinition {
	return ClampDefinition{Kind: ClampAttributeReference, Attribute: name}
}

// Validate reports whether exactly the payload selected by Kind is set.
func (d ClampDefinition) Validate() error {
	switch d.Kind {
	case ClampNone:
		if d.Value != 0 || d.Attribute != "" {
			return fmt.Errorf("clamp kind none carries a payload")
		}
	case ClampLiteral:
		if d.Attribute != "" {
			return fmt.Errorf("literal clamp also names attribute %q", d.Attribute)
		}
	case ClampAttributeReference:
		if d.Attribute == "" {
			return fmt.Errorf("attribute clamp without an attribute name")
		}
		if d.Value != 0 {
			return fmt.Errorf("attribute clamp %q also carries a literal value", d.Attribute)
		}
	default:
		return fmt.Errorf("invalid clamp kind %d", int(d.Kind))
	}
	return nil
}

// ClampedAttributeData pairs the min and max bounds of a clamped property.
type ClampedAttributeData struct {
	PropertyName string          `yaml:"-" json:"-"`
	MinValue     ClampDefinition `yaml:"min" json:"min"`
	MaxValue     ClampDefinition `yaml:"max" json:"max"`
}

// PropertyDescriptor describes one attribute being scaffolded.
//
// Name is taken verbatim from the source asset and may not be a legal
// identifier. Empty Category and Comment mean the metadata is absent.
type PropertyDescriptor struct {
	Name             string                `yaml:"name" json:"name"`
	DeclaredTypeName string                `yaml:"type" json:"type" validate:"required"`
	IsClamped        bool                  `yaml:"clamped,omitempty" json:"clamped,omitempty"`
	IsReplicated     bool                  `yaml:"replicated,omitempty" json:"replicated,omitempty"`
	Category         string                `yaml:"category,omitempty" json:"category,omitempty"`
	Comment          string                `yaml:"comment,omitempty" json:"comment,omitempty"`
	BaseValue        float64               `yaml:"base_value,omitempty" json:"base_value,omitempty"`
	Clamp            *ClampedAttributeData `yaml:"clamp,omitempty" json:"clamp,omitempty"`
}

// ClampData returns the clamp payload with PropertyName filled in, or nil
// when the property carries none.
func (p PropertyDescriptor) ClampData() *ClampedAttributeData {
	if p.Clamp == nil {
		return nil
	}
	data := *p.Clamp
	data.PropertyName = p.Name
	return &data
}

// Asset is the selected source asset whose members are being scaffolded.
type Asset interface {
	// AssetName returns the asset's name as shown in the editor.
	AssetName() string

	// Properties returns a copy of the asset's attribute members in
	// declaration order.
	Properties() []PropertyDescriptor
}

// ViewModel is a read-only snapshot of the wizard state consumed by the
// builders.
type ViewModel struct {
	// TargetClassName is the class name derived from the selected asset.
	TargetClassName string

	// NewClassName overrides TargetClassName when set.
	NewClassName string

	// Asset is the selected source asset, nil when nothing is selected.
	Asset Asset

	// SupportsClampedAttributes reports whether the target base class
	// handles clamped attribute data.
	SupportsClampedAttributes bool
}

// ClassName returns the name of the class to generate.
func (vm *ViewModel) ClassName() string {
	if vm == nil {
		return ""
	}
	if name := strings.TrimSpace(vm.NewClassName); name != "" {
		return name
	}
	return vm.TargetClassName
}

// Properties returns the selected asset's properties, or nil.
func (vm *ViewModel) Properties() []PropertyDescriptor {
	if vm == nil || vm.Asset == nil {
		return nil
	}
	return vm.Asset.Properties()
}

// ClampedProperties returns the selected asset's clamp-capable properties.
func (vm *ViewModel) ClampedProperties() []PropertyDescriptor {
	var out []PropertyDescriptor
	for _, p := range vm.Properties() {
		if p.IsClamped {
			out = append(out, p)
		}
	}
	return out
}

// ListItem is one generated text unit with synchronized plain and
// decorated renderings.
type ListItem struct {
	// RawText is the plain source text.
	RawText string

	// RichText is RawText with every token wrapped in a decorator tag.
	RichText string

	// IllegalName holds the identifier that failed validation, if any.
	IllegalName string
}

// IsEmpty reports whether the item renders nothing.
func (i ListItem) IsEmpty() bool {
	return i.RawText == "" && i.RichText == ""
}

// HasIllegalName reports whether the item should offer a rename.
func (i ListItem) HasIllegalName() bool {
	return i.IllegalName != ""
}
