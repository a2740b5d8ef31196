// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command attrscaffold generates Unreal C++ attribute set classes from
// class descriptions.
//
// Usage:
//
//	attrscaffold generate <description> [flags]
//	attrscaffold preview <description> [flags]
//	attrscaffold rename <description> [flags]
//	attrscaffold kinds
//	attrscaffold version
//
// Global flags:
//
//	--settings   Path to a YAML settings file (default: engine defaults)
//	-V, --verbose  Debug logging on stderr
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/attrscaffold/internal/source"
	"github.com/albertocavalcante/attrscaffold/scaffold"
	"github.com/albertocavalcante/attrscaffold/settings"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	root := newRootCmd(&app{prompter: surveyPrompter{}})
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the state shared by the commands of one invocation.
type app struct {
	settingsPath string
	verbose      bool

	logger   *slog.Logger
	prompter Prompter
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "attrscaffold",
		Short: "Unreal C++ attribute set generator",
		Long: `attrscaffold generates the header and source text of an Unreal C++
attribute set class from a class description (YAML or JSON).

Attribute names that are not legal C++ identifiers are flagged in the
output and can be corrected with the rename command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.logger = newLogger(cmd.ErrOrStderr(), a.verbose)
		},
	}

	root.PersistentFlags().StringVar(&a.settingsPath, "settings", "", "Path to a YAML settings file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "V", false, "Verbose output")

	root.AddCommand(
		newGenerateCmd(a),
		newPreviewCmd(a),
		newRenameCmd(a),
		newKindsCmd(),
		newVersionCmd(),
	)
	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (a *app) log() *slog.Logger {
	if a.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.logger
}

// load reads the settings and the class description at path.
func (a *app) load(path string) (settings.Settings, *source.Result, error) {
	s, err := settings.Load(a.settingsPath)
	if err != nil {
		return settings.Settings{}, nil, fmt.Errorf("load settings: %w", err)
	}
	r, err := source.Load(path, s)
	if err != nil {
		return settings.Settings{}, nil, fmt.Errorf("load description: %w", err)
	}
	a.log().Debug("loaded description", "source", r.Source, "class", r.View.ClassName(),
		"properties", len(r.View.Properties()), "clamped", r.View.SupportsClampedAttributes)
	return s, r, nil
}

// generator returns a generator over s. Callers close it.
func (a *app) generator(s settings.Settings) *scaffold.Generator {
	return scaffold.New(settings.NewStore(s), scaffold.WithLogger(a.log()))
}

// warnIllegal logs every name the listing flags.
func (a *app) warnIllegal(l scaffold.Listing) {
	for _, name := range l.IllegalNames() {
		a.log().Warn("attribute name is not a legal identifier, use rename to fix it", "name", name)
	}
}
