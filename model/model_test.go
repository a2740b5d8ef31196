// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.

package model

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

type fakeAsset struct {
	props []PropertyDescriptor
}

func (f fakeAsset) AssetName() string                { return "BP_Fake" }
func (f fakeAsset) Properties() []PropertyDescriptor { return f.props }

func TestParseClampKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ClampKind
		wantErr bool
	}{
		{name: "literal", input: "literal", want: ClampLiteral},
		{name: "attribute", input: "attribute", want: ClampAttributeReference},
		{name: "none", input: "none", want: ClampNone},
		{name: "empty", input: "", want: ClampNone},
		{name: "enum value", input: "AttributeBased", want: ClampAttributeReference},
		{name: "mixed case", input: "Literal", want: ClampLiteral},
		{name: "float enum value", input: "Float", want: ClampLiteral},
		{name: "unknown", input: "percent", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClampKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClampKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseClampKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClampKind_EnumValue(t *testing.T) {
	tests := []struct {
		kind ClampKind
		want string
	}{
		{kind: ClampNone, want: "None"},
		{kind: ClampLiteral, want: "Float"},
		{kind: ClampAttributeReference, want: "AttributeBased"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.EnumValue(); got != tt.want {
				t.Errorf("EnumValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClampDefinition_YAML(t *testing.T) {
	input := `
min:
  kind: literal
  value: 0
max:
  kind: attribute
  attribute: MaxHealth
`
	var got ClampedAttributeData
	if err := yaml.Unmarshal([]byte(input), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := ClampedAttributeData{
		MinValue: Literal(0),
		MaxValue: AttributeRef("MaxHealth"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	out, err := yaml.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var again ClampedAttributeData
	if err := yaml.Unmarshal(out, &again); err != nil {
		t.Fatalf("unmarshal marshaled output: %v\n%s", err, out)
	}
	if diff := cmp.Diff(want, again); diff != "" {
		t.Errorf("marshaled form changed meaning (-want +got):\n%s", diff)
	}
}

func TestClampDefinition_JSON(t *testing.T) {
	var got ClampDefinition
	if err := json.Unmarshal([]byte(`{"kind":"attribute","attribute":"MaxMana"}`), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(AttributeRef("MaxMana"), got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestClampDefinition_Validate(t *testing.T) {
	tests := []struct {
		name    string
		def     ClampDefinition
		wantErr bool
	}{
		{name: "literal", def: Literal(50)},
		{name: "attribute", def: AttributeRef("MaxHealth")},
		{name: "none", def: ClampDefinition{}},
		{name: "attribute without name", def: ClampDefinition{Kind: ClampAttributeReference}, wantErr: true},
		{name: "literal naming attribute", def: ClampDefinition{Kind: ClampLiteral, Attribute: "MaxHealth"}, wantErr: true},
		{name: "attribute with value", def: ClampDefinition{Kind: ClampAttributeReference, Attribute: "A", Value: 3}, wantErr: true},
		{name: "none with payload", def: ClampDefinition{Value: 1}, wantErr: true},
		{name: "unknown kind", def: ClampDefinition{Kind: ClampKind(9)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPropertyDescriptor_ClampData(t *testing.T) {
	p := PropertyDescriptor{Name: "Health"}
	if p.ClampData() != nil {
		t.Error("expected nil clamp data for property without payload")
	}

	p.Clamp = &ClampedAttributeData{MinValue: Literal(0), MaxValue: Literal(100)}
	data := p.ClampData()
	if data == nil {
		t.Fatal("expected clamp data")
	}
	if data.PropertyName != "Health" {
		t.Errorf("PropertyName = %q, want %q", data.PropertyName, "Health")
	}
	if p.Clamp.PropertyName != "" {
		t.Error("ClampData must not mutate the descriptor")
	}
}

func TestViewModel_ClassName(t *testing.T) {
	tests := []struct {
		name string
		vm   *ViewModel
		want string
	}{
		{name: "nil", vm: nil, want: ""},
		{name: "target only", vm: &ViewModel{TargetClassName: "UPlayerAttributes"}, want: "UPlayerAttributes"},
		{name: "override", vm: &ViewModel{TargetClassName: "UPlayerAttributes", NewClassName: "UHeroAttributeSet"}, want: "UHeroAttributeSet"},
		{name: "blank override", vm: &ViewModel{TargetClassName: "UPlayerAttributes", NewClassName: "  "}, want: "UPlayerAttributes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vm.ClassName(); got != tt.want {
				t.Errorf("ClassName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestViewModel_ClampedProperties(t *testing.T) {
	vm := &ViewModel{Asset: fakeAsset{props: []PropertyDescriptor{
		{Name: "Health", IsClamped: true},
		{Name: "Armor"},
		{Name: "Mana", IsClamped: true},
	}}}

	var got []string
	for _, p := range vm.ClampedProperties() {
		got = append(got, p.Name)
	}
	if diff := cmp.Diff([]string{"Health", "Mana"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if props := (&ViewModel{}).ClampedProperties(); props != nil {
		t.Errorf("expected nil without asset, got %v", props)
	}
}
