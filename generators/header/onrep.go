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

// OnRepBuilder declares the replication handler of a replicated attribute:
//
//	UFUNCTION()
//	virtual void OnRep_Health(const FGameplayAttributeData& OldHealth);
type OnRepBuilder struct{}

// NewOnRepBuilder returns an OnRepBuilder.
func NewOnRepBuilder() *OnRepBuilder {
	return &OnRepBuilder{}
}

// Metadata implements generator.Builder.
func (*OnRepBuilder) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:        "header.onrep",
		View:        generator.ViewHeader,
		Scope:       generator.ScopeProperty,
		Description: "Replication handler declaration",
	}
}

// Build implements generator.Builder. It does not check IsReplicated; the
// host decides which properties get a handler.
func (*OnRepBuilder) Build(in generator.Input, cfg generator.Config) model.ListItem {
	if in.Property == nil {
		return model.ListItem{}
	}
	name := in.Property.Name
	typ, _ := effectiveType(in, cfg)

	w := codegen.NewWriter(cfg.Decorators)
	w.Newline()
	w.Token(markup.Macro, "UFUNCTION")
	w.Text("()")

	w.Newline()
	w.Token(markup.Keyword, "virtual")
	w.Text(" ")
	w.Token(markup.Keyword, "void")
	w.Text(" ")
	w.IdentAs(name, cppbase.OnRepName(name))
	w.Text("(")
	if cppbase.ShouldUseConstRef(typ) {
		w.Token(markup.Keyword, "const")
		w.Text(" ")
		w.Token(markup.TypeName, typ)
		w.Text("& ")
	} else {
		w.Token(markup.TypeName, typ)
		w.Text(" ")
	}
	w.IdentAs(name, cppbase.OldValueName(name))
	w.Text(");")
	return finish(w, cfg)
}
