// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package header

import (
	"github.com/albertocavalcante/attrscaffold/generator"
	"github.com/albertocavalcante/attrscaffold/internal/codegen"
	"github.com/albertocavalcante/attrscaffold/internal/markup"
	"github.com/albertocavalcante/attrscaffold/model"
)

// ConstructorBuilder declares the default constructor of the class.
type ConstructorBuilder struct{}

// NewConstructorBuilder returns a ConstructorBuilder.
func NewConstructorBuilder() *ConstructorBuilder {
	return &ConstructorBuilder{}
}

// Metadata implements generator.Builder.
func (*ConstructorBuilder) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:        "header.constructor",
		View:        generator.ViewHeader,
		Scope:       generator.ScopeClass,
		Description: "Default constructor declaration",
	}
}

// Build implements generator.Builder. The item is empty until an asset is
// selected.
func (*ConstructorBuilder) Build(in generator.Input, cfg generator.Config) model.ListItem {
	if in.View == nil || in.View.Asset == nil {
		return model.ListItem{}
	}

	w := codegen.NewWriter(cfg.Decorators)
	w.Newline()
	w.Comment("Default constructor")
	w.Newline()
	// The class name is not an asset member, so it is never offered for rename.
	w.Token(markup.Identifier, in.View.ClassName())
	w.Text("();")
	return finish(w, cfg)
}
