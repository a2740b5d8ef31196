// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package header builds the list items of the generated class declaration:
// the default constructor, one variable per attribute and the replication
// handlers of replicated attributes.
//
// Items are indented one level inside the class body.
package header

import (
	"fmt"
	"strings"

	"github.com/albertocavalcante/attrscaffold/generator"
	"github.com/albertocavalcante/attrscaffold/internal/codegen"
	"github.com/albertocavalcante/attrscaffold/internal/cppbase"
	"github.com/albertocavalcante/attrscaffold/model"
)

// indentLevel is the nesting of members inside the class declaration.
const indentLevel = 1

// finish normalizes w into a header item.
func finish(w *codegen.Writer, cfg generator.Config) model.ListItem {
	return w.Finish(indentLevel, cfg.IndentUnit, cfg.LineEnding)
}

// effectiveType resolves the declared type of p for the view.
func effectiveType(in generator.Input, cfg generator.Config) (string, bool) {
	return codegen.EffectiveType(*in.Property, supportsClamped(in), cfg.PlainTypeName)
}

func supportsClamped(in generator.Input) bool {
	return in.View != nil && in.View.SupportsClampedAttributes
}

// commentFor returns the doc comment of a variable declaration. An absent
// comment becomes "<Name> Attribute"; a substituted clamp type appends a
// note explaining how to keep it.
func commentFor(p model.PropertyDescriptor, substituted bool, cfg generator.Config) string {
	comment := strings.TrimSpace(p.Comment)
	if comment == "" {
		comment = p.Name + " Attribute"
	}
	if substituted {
		comment += "\n\n" + clampNote(p, cfg)
	}
	return comment
}

// clampNote explains why a clamped attribute was declared with the plain
// attribute type.
func clampNote(p model.PropertyDescriptor, cfg generator.Config) string {
	clamped := p.DeclaredTypeName
	if clamped == "" {
		clamped = cfg.ClampedTypeName
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s was a %s but handling of clamped properties requires\n", p.Name, clamped)
	fmt.Fprintf(&b, "a %s parent class.\n\n", cfg.ClampParentClass)
	fmt.Fprintf(&b, "Please pick %s for the parent class if you wish to generate the class\n", cfg.ClampParentClass)
	fmt.Fprintf(&b, "with %s properties.\n\n", clamped)
	b.WriteString("Or you can ignore this comment and later change or remove it in the generated C++ class.")
	return b.String()
}

// writeSpecifiers writes the parenthesized UPROPERTY specifier list of p.
// The replication handler is decorated like the attribute name.
func writeSpecifiers(w *codegen.Writer, p model.PropertyDescriptor) {
	w.Text("(BlueprintReadOnly")
	if c := strings.TrimSpace(p.Category); c != "" {
		w.Text(fmt.Sprintf(", Category = %q", c))
	}
	if p.IsReplicated {
		w.Text(", ReplicatedUsing = ")
		w.IdentAs(p.Name, cppbase.OnRepName(p.Name))
	}
	w.Text(")")
}
