// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package source

import (
	"github.com/albertocavalcante/attrscaffold/generator"
	"github.com/albertocavalcante/attrscaffold/internal/codegen"
	"github.com/albertocavalcante/attrscaffold/internal/cppbase"
	"github.com/albertocavalcante/attrscaffold/internal/markup"
	"github.com/albertocavalcante/attrscaffold/model"
)

// Clamp bound labels, the member names of the clamped attribute data.
const (
	LabelMin = "MinValue"
	LabelMax = "MaxValue"
)

// ClampStatements renders one clamp bound of prop as constructor body
// statements and returns both streams, without a trailing line break:
//
//	Health.MinValue.ClampType = EGBAClampingType::Float;
//	Health.MinValue.Value = 0.00f;
func ClampStatements(def model.ClampDefinition, prop, label string, cfg generator.Config) (raw, rich string) {
	w := codegen.NewWriter(cfg.Decorators)
	writeClamp(w, def, prop, label, cfg)
	return w.Raw(), w.Rich()
}

// writeClamp appends the statements of one bound to w. The clamp type
// assignment is always written; the payload assignment follows for the
// literal and attribute kinds.
func writeClamp(w *codegen.Writer, def model.ClampDefinition, prop, label string, cfg generator.Config) {
	member := func(field string) {
		w.Text(cfg.IndentUnit)
		w.Ident(prop)
		w.Text(".")
		w.Token(markup.Identifier, label)
		w.Text(".")
		w.Token(markup.Identifier, field)
		w.Text(" = ")
	}

	member("ClampType")
	w.Token(markup.TypeName, cfg.ClampEnumName)
	w.Text("::")
	w.Token(markup.Identifier, def.Kind.EnumValue())
	w.Text(";")

	switch def.Kind {
	case model.ClampLiteral:
		w.Newline()
		member("Value")
		w.Token(markup.NumericLiteral, cppbase.FloatLiteral(def.Value))
		w.Text(";")
	case model.ClampAttributeReference:
		w.Newline()
		member("Attribute")
		w.Token(markup.Macro, cppbase.AccessorCall(def.Attribute))
		w.Text(";")
	}
}
