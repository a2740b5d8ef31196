// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package source builds the list items of the generated class definition.
package source

import (
	"github.com/albertocavalcante/attrscaffold/generator"
	"github.com/albertocavalcante/attrscaffold/internal/codegen"
	"github.com/albertocavalcante/attrscaffold/internal/markup"
	"github.com/albertocavalcante/attrscaffold/model"
)

// ConstructorBuilder defines the default constructor, initializing the
// clamp bounds of every clamped attribute:
//
//	UMyAttributeSet::UMyAttributeSet()
//	{
//		Health.MinValue.ClampType = EGBAClampingType::Float;
//		Health.MinValue.Value = 0.00f;
//
//		Health.MaxValue.ClampType = EGBAClampingType::AttributeBased;
//		Health.MaxValue.Attribute = GetMaxHealthAttribute();
//	}
type ConstructorBuilder struct{}

// NewConstructorBuilder returns a ConstructorBuilder.
func NewConstructorBuilder() *ConstructorBuilder {
	return &ConstructorBuilder{}
}

// Metadata implements generator.Builder.
func (*ConstructorBuilder) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:        "source.constructor",
		View:        generator.ViewSource,
		Scope:       generator.ScopeClass,
		Description: "Constructor definition initializing clamp bounds",
	}
}

// Build implements generator.Builder. The item is empty until an asset is
// selected. Clamp statements are written only when the target class
// supports clamped attributes.
func (*ConstructorBuilder) Build(in generator.Input, cfg generator.Config) model.ListItem {
	if in.View == nil || in.View.Asset == nil {
		return model.ListItem{}
	}
	className := in.View.ClassName()

	w := codegen.NewWriter(cfg.Decorators)
	w.Token(markup.TypeName, className)
	w.Text("::")
	w.Token(markup.Identifier, className)
	w.Text("()")
	w.Text("\n{\n")

	if in.View.SupportsClampedAttributes {
		var blocks []*model.ClampedAttributeData
		for _, p := range in.View.ClampedProperties() {
			data := p.ClampData()
			if data == nil {
				cfg.Log().Warn("skipping clamped property without clamp data",
					"class", className, "property", p.Name)
				continue
			}
			blocks = append(blocks, data)
		}

		for i, data := range blocks {
			if i > 0 {
				w.Newline()
			}
			writeClamp(w, data.MinValue, data.PropertyName, LabelMin, cfg)
			w.Text("\n\n")
			writeClamp(w, data.MaxValue, data.PropertyName, LabelMax, cfg)
			w.Newline()
		}
		cfg.Log().Debug("wrote clamp initializers", "class", className, "properties", len(blocks))
	}

	w.Text("}\n")

	// Statements carry their own indentation; only line endings change.
	return w.Finish(0, cfg.IndentUnit, cfg.LineEnding)
}
