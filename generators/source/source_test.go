// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package source

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/albertocavalcante/attrscaffold/generator"
	"github.com/albertocavalcante/attrscaffold/internal/markup"
	"github.com/albertocavalcante/attrscaffold/model"
)

type testAsset []model.PropertyDescriptor

func (testAsset) AssetName() string                         { return "BP_Hero" }
func (a testAsset) Properties() []model.PropertyDescriptor { return a }

func testConfig() generator.Config {
	cfg := generator.DefaultConfig()
	cfg.LineEnding = "\n"
	return cfg
}

func TestClampStatements(t *testing.T) {
	tests := []struct {
		name     string
		def      model.ClampDefinition
		label    string
		wantRaw  string
		wantRich string
	}{
		{
			name:  "literal",
			def:   model.Literal(50),
			label: LabelMin,
			wantRaw: "\tHealth.MinValue.ClampType = EGBAClampingType::Float;\n" +
				"\tHealth.MinValue.Value = 50.00f;",
			wantRich: "\t<identifier>Health</>.<identifier>MinValue</>.<identifier>ClampType</> = <typename>EGBAClampingType</>::<identifier>Float</>;\n" +
				"\t<identifier>Health</>.<identifier>MinValue</>.<identifier>Value</> = <numericliteral>50.00f</>;",
		},
		{
			name:  "attribute reference",
			def:   model.AttributeRef("MaxHealth"),
			label: LabelMax,
			wantRaw: "\tHealth.MaxValue.ClampType = EGBAClampingType::AttributeBased;\n" +
				"\tHealth.MaxValue.Attribute = GetMaxHealthAttribute();",
			wantRich: "\t<identifier>Health</>.<identifier>MaxValue</>.<identifier>ClampType</> = <typename>EGBAClampingType</>::<identifier>AttributeBased</>;\n" +
				"\t<identifier>Health</>.<identifier>MaxValue</>.<identifier>Attribute</> = <macro>GetMaxHealthAttribute()</>;",
		},
		{
			name:     "none",
			def:      model.ClampDefinition{},
			label:    LabelMin,
			wantRaw:  "\tHealth.MinValue.ClampType = EGBAClampingType::None;",
			wantRich: "\t<identifier>Health</>.<identifier>MinValue</>.<identifier>ClampType</> = <typename>EGBAClampingType</>::<identifier>None</>;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, rich := ClampStatements(tt.def, "Health", tt.label, testConfig())
			if diff := cmp.Diff(tt.wantRaw, raw); diff != "" {
				t.Errorf("raw mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantRich, rich); diff != "" {
				t.Errorf("rich mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClampStatements_Shapes(t *testing.T) {
	raw, _ := ClampStatements(model.Literal(50), "Health", LabelMin, testConfig())
	if !strings.Contains(raw, "Health.MinValue.Value = 50.00f;") {
		t.Errorf("literal shape missing in %q", raw)
	}
	raw, _ = ClampStatements(model.AttributeRef("MaxHealth"), "Health", LabelMax, testConfig())
	if !strings.Contains(raw, "Health.MaxValue.Attribute = GetMaxHealthAttribute();") {
		t.Errorf("attribute shape missing in %q", raw)
	}
}

func healthAndMana() testAsset {
	return testAsset{
		{
			Name:             "Health",
			DeclaredTypeName: "FGBAGameplayClampedAttributeData",
			IsClamped:        true,
			Clamp: &model.ClampedAttributeData{
				MinValue: model.Literal(0),
				MaxValue: model.AttributeRef("MaxHealth"),
			},
		},
		{Name: "MaxHealth", DeclaredTypeName: "FGameplayAttributeData"},
		{
			Name:             "Mana",
			DeclaredTypeName: "FGBAGameplayClampedAttributeData",
			IsClamped:        true,
			Clamp: &model.ClampedAttributeData{
				MinValue: model.Literal(0),
				MaxValue: model.Literal(200),
			},
		},
	}
}

func TestConstructorBuilder(t *testing.T) {
	vm := &model.ViewModel{
		TargetClassName:           "UHeroAttributeSet",
		Asset:                     healthAndMana(),
		SupportsClampedAttributes: true,
	}
	item := NewConstructorBuilder().Build(generator.Input{View: vm}, testConfig())

	want := strings.Join([]string{
		"UHeroAttributeSet::UHeroAttributeSet()",
		"{",
		"\tHealth.MinValue.ClampType = EGBAClampingType::Float;",
		"\tHealth.MinValue.Value = 0.00f;",
		"",
		"\tHealth.MaxValue.ClampType = EGBAClampingType::AttributeBased;",
		"\tHealth.MaxValue.Attribute = GetMaxHealthAttribute();",
		"",
		"\tMana.MinValue.ClampType = EGBAClampingType::Float;",
		"\tMana.MinValue.Value = 0.00f;",
		"",
		"\tMana.MaxValue.ClampType = EGBAClampingType::Float;",
		"\tMana.MaxValue.Value = 200.00f;",
		"}",
		"",
	}, "\n")
	if diff := cmp.Diff(want, item.RawText); diff != "" {
		t.Errorf("RawText mismatch (-want +got):\n%s", diff)
	}
	if got := markup.Strip(item.RichText); got != item.RawText {
		t.Errorf("Strip(rich) = %q, want raw %q", got, item.RawText)
	}
	if !strings.HasPrefix(item.RichText, "<typename>UHeroAttributeSet</>::<identifier>UHeroAttributeSet</>()") {
		t.Errorf("signature decoration: %q", item.RichText)
	}
}

func TestConstructorBuilder_Unsupported(t *testing.T) {
	vm := &model.ViewModel{TargetClassName: "UHeroAttributeSet", Asset: healthAndMana()}
	item := NewConstructorBuilder().Build(generator.Input{View: vm}, testConfig())

	if want := "UHeroAttributeSet::UHeroAttributeSet()\n{\n}\n"; item.RawText != want {
		t.Errorf("RawText = %q, want %q", item.RawText, want)
	}
}

func TestConstructorBuilder_NoAsset(t *testing.T) {
	item := NewConstructorBuilder().Build(generator.Input{View: &model.ViewModel{TargetClassName: "U"}}, testConfig())
	if !item.IsEmpty() {
		t.Errorf("expected empty item, got %+v", item)
	}
	item = NewConstructorBuilder().Build(generator.Input{}, testConfig())
	if !item.IsEmpty() {
		t.Errorf("expected empty item for nil view, got %+v", item)
	}
}

func TestConstructorBuilder_MissingClampData(t *testing.T) {
	asset := testAsset{
		{Name: "Stamina", DeclaredTypeName: "FGBAGameplayClampedAttributeData", IsClamped: true},
		{
			Name:      "Mana",
			IsClamped: true,
			Clamp:     &model.ClampedAttributeData{MaxValue: model.Literal(10)},
		},
	}
	var logs bytes.Buffer
	cfg := testConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(&logs, nil))

	vm := &model.ViewModel{TargetClassName: "UHero", Asset: asset, SupportsClampedAttributes: true}
	item := NewConstructorBuilder().Build(generator.Input{View: vm}, cfg)

	if strings.Contains(item.RawText, "Stamina") {
		t.Errorf("property without clamp data was rendered:\n%s", item.RawText)
	}
	if !strings.Contains(item.RawText, "\tMana.MaxValue.Value = 10.00f;\n}") {
		t.Errorf("remaining property not rendered:\n%s", item.RawText)
	}
	if !strings.Contains(logs.String(), "skipping clamped property without clamp data") ||
		!strings.Contains(logs.String(), "property=Stamina") {
		t.Errorf("missing warning, logs:\n%s", logs.String())
	}
}

func TestConstructorBuilder_IllegalPropertyName(t *testing.T) {
	asset := testAsset{{
		Name:      "Max Health",
		IsClamped: true,
		Clamp:     &model.ClampedAttributeData{MinValue: model.Literal(1)},
	}}
	vm := &model.ViewModel{TargetClassName: "UHero", Asset: asset, SupportsClampedAttributes: true}
	item := NewConstructorBuilder().Build(generator.Input{View: vm}, testConfig())

	if item.IllegalName != "Max Health" {
		t.Errorf("IllegalName = %q", item.IllegalName)
	}
	if !strings.Contains(item.RichText, "<error>Max Health</>.<identifier>MinValue</>") {
		t.Errorf("illegal property not decorated as error:\n%s", item.RichText)
	}
}

func TestConstructorBuilder_CRLF(t *testing.T) {
	cfg := testConfig()
	cfg.LineEnding = "\r\n"
	vm := &model.ViewModel{TargetClassName: "UHero", Asset: healthAndMana(), SupportsClampedAttributes: true}
	item := NewConstructorBuilder().Build(generator.Input{View: vm}, cfg)

	if strings.Contains(strings.ReplaceAll(item.RawText, "\r\n", ""), "\n") {
		t.Errorf("bare line feed in %q", item.RawText)
	}
	if strings.HasPrefix(item.RawText, "\t") {
		t.Errorf("source constructor must not be indented: %q", item.RawText)
	}
	if got := markup.Strip(item.RichText); got != item.RawText {
		t.Errorf("streams diverge:\nrich %q\nraw  %q", got, item.RawText)
	}
}
