// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package scaffold hosts the list item builders: it assembles the header
// and source listings of a class and rebuilds them when settings change.
package scaffold

import (
	"log/slog"
	"sync"

	"github.com/albertocavalcante/attrscaffold/generator"
	"github.com/albertocavalcante/attrscaffold/generators/header"
	"github.com/albertocavalcante/attrscaffold/generators/source"
	"github.com/albertocavalcante/attrscaffold/internal/markup"
	"github.com/albertocavalcante/attrscaffold/model"
	"github.com/albertocavalcante/attrscaffold/settings"
)

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger handed to builders.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithRefresh sets the callback run after a settings change.
func WithRefresh(fn func()) Option {
	return func(g *Generator) { g.refresh = fn }
}

// Generator builds listings from the current settings. It keeps no
// derived state: a refresh is a rebuild.
type Generator struct {
	store  *settings.Store
	sub    *settings.Subscription
	logger *slog.Logger

	mu      sync.Mutex
	refresh func()

	variable    generator.Builder
	onRep       generator.Builder
	declaration generator.Builder
	definition  generator.Builder
}

// New returns a Generator reading store. It subscribes to settings
// changes until Close.
func New(store *settings.Store, opts ...Option) *Generator {
	g := &Generator{
		store:       store,
		logger:      slog.New(slog.DiscardHandler),
		variable:    header.NewVariableBuilder(),
		onRep:       header.NewOnRepBuilder(),
		declaration: header.NewConstructorBuilder(),
		definition:  source.NewConstructorBuilder(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.sub = store.Subscribe(g.onSettingsChanged)
	return g
}

// OnRefresh replaces the callback run after a settings change.
func (g *Generator) OnRefresh(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.refresh = fn
}

func (g *Generator) onSettingsChanged(s settings.Settings) {
	g.logger.Debug("settings changed, rebuilding items",
		"line_ending", string(s.LineEnding), "indent", len(s.IndentUnit))
	g.mu.Lock()
	fn := g.refresh
	g.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Close ends the settings subscription.
func (g *Generator) Close() {
	g.sub.Close()
}

// Config returns the build configuration for the current settings.
func (g *Generator) Config() generator.Config {
	cfg := ConfigFromSettings(g.store.Current())
	cfg.Logger = g.logger
	return cfg
}

// ConfigFromSettings maps settings onto a build configuration.
func ConfigFromSettings(s settings.Settings) generator.Config {
	cfg := generator.DefaultConfig()
	cfg.IndentUnit = s.IndentUnit
	cfg.LineEnding = s.LineEnding.Sequence()
	cfg.ClampedTypeName = s.ClampedTypeName
	cfg.PlainTypeName = s.PlainTypeName
	cfg.ClampEnumName = s.ClampEnumName
	cfg.AccessorMacro = s.AccessorMacro
	cfg.ClampParentClass = s.ClampParentClass()
	cfg.Decorators = markup.DefaultTable
	return cfg
}

// HeaderItems returns the class declaration items: the constructor, then
// each property's variable followed by its replication handler when
// replicated.
func (g *Generator) HeaderItems(vm *model.ViewModel) []model.ListItem {
	return headerItems(vm, g.Config(), g.declaration, g.variable, g.onRep)
}

func headerItems(vm *model.ViewModel, cfg generator.Config, declaration, variable, onRep generator.Builder) []model.ListItem {
	items := []model.ListItem{declaration.Build(generator.Input{View: vm}, cfg)}
	for _, p := range vm.Properties() {
		in := generator.Input{View: vm, Property: &p}
		items = append(items, variable.Build(in, cfg))
		if p.IsReplicated {
			items = append(items, onRep.Build(in, cfg))
		}
	}
	return items
}

// SourceItems returns the class definition items.
func (g *Generator) SourceItems(vm *model.ViewModel) []model.ListItem {
	return []model.ListItem{g.definition.Build(generator.Input{View: vm}, g.Config())}
}

// Build assembles both listings of vm. Clamp bounds following unknown
// attributes are logged; they still render.
func (g *Generator) Build(vm *model.ViewModel) Listing {
	cfg := g.Config()
	if _, dangling := generator.ResolveClampReferences(vm.Properties()); len(dangling) > 0 {
		for _, ref := range dangling {
			g.logger.Warn("clamp bound follows an unknown attribute",
				"property", ref.Property, "bound", ref.Bound, "attribute", ref.Attribute)
		}
	}
	return Listing{
		ClassName:  vm.ClassName(),
		LineEnding: cfg.LineEnding,
		Header:     headerItems(vm, cfg, g.declaration, g.variable, g.onRep),
		Source:     []model.ListItem{g.definition.Build(generator.Input{View: vm}, cfg)},
	}
}

// Builders returns the builders used by a Generator, for registration.
func Builders() []generator.Builder {
	return []generator.Builder{
		header.NewConstructorBuilder(),
		header.NewVariableBuilder(),
		header.NewOnRepBuilder(),
		source.NewConstructorBuilder(),
	}
}
