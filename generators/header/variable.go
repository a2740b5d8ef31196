// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package header

import (
	"github.com/albertocavalcante/attrscaffold/generator"
	"github.com/albertocavalcante/attrscaffold/internal/codegen"
	"github.com/albertocavalcante/attrscaffold/internal/cppbase"
	"github.com/albertocavalcante/attrscaffold/internal/markup"
	"github.com/albertocavalcante/attrscaffold/model"
)

// VariableBuilder declares one attribute member:
//
//	/** Health Attribute */
//	UPROPERTY(BlueprintReadOnly, ReplicatedUsing = OnRep_Health)
//	FGameplayAttributeData Health = 100.00f;
//	ATTRIBUTE_ACCESSORS(UMyAttributeSet, Health)
type VariableBuilder struct{}

// NewVariableBuilder returns a VariableBuilder.
func NewVariableBuilder() *VariableBuilder {
	return &VariableBuilder{}
}

// Metadata implements generator.Builder.
func (*VariableBuilder) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:        "header.variable",
		View:        generator.ViewHeader,
		Scope:       generator.ScopeProperty,
		Description: "Attribute member declaration with its UPROPERTY and accessors",
	}
}

// Build implements generator.Builder.
func (*VariableBuilder) Build(in generator.Input, cfg generator.Config) model.ListItem {
	if in.Property == nil {
		return model.ListItem{}
	}
	p := *in.Property
	typ, substituted := effectiveType(in, cfg)

	w := codegen.NewWriter(cfg.Decorators)
	w.Comment(commentFor(p, substituted, cfg))

	w.Newline()
	w.Token(markup.Macro, "UPROPERTY")
	writeSpecifiers(w, p)

	w.Newline()
	w.Token(markup.TypeName, typ)
	w.Text(" ")
	w.Ident(p.Name)
	w.Text(" = ")
	w.Token(markup.NumericLiteral, cppbase.FloatLiteral(p.BaseValue))
	w.Text(";")

	// Accessors need the owning class, known only once an asset is selected.
	if in.View != nil && in.View.Asset != nil {
		w.Newline()
		w.Token(markup.Macro, cfg.AccessorMacro)
		w.Text("(")
		w.Token(markup.TypeName, in.View.ClassName())
		w.Text(", ")
		w.Ident(p.Name)
		w.Text(")")
	}

	return finish(w, cfg)
}
