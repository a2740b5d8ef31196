// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/albertocavalcante/attrscaffold/preview"
	"github.com/albertocavalcante/attrscaffold/scaffold"
)

// Formats accepted by --format.
const (
	formatAuto = "auto"
	formatANSI = "ansi"
	formatHTML = "html"
	formatRich = "rich"
)

func newPreviewCmd(a *app) *cobra.Command {
	var (
		format string
		view   string
	)
	cmd := &cobra.Command{
		Use:   "preview <description>",
		Short: "Show the decorated listing of a class",
		Long: `Show the decorated listing of the class described by the given file.

Formats:
  auto   ansi on a terminal, rich otherwise
  ansi   terminal colors
  html   a standalone HTML page
  rich   the decorator markup as generated`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, r, err := a.load(args[0])
			if err != nil {
				return err
			}
			gen := a.generator(s)
			defer gen.Close()

			listing := gen.Build(r.View)
			a.warnIllegal(listing)

			sections, err := previewSections(listing, view)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if format == formatAuto {
				format = detectFormat(w)
			}
			return renderPreview(w, format, listing, sections)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatAuto, "Output format: auto, ansi, html or rich")
	cmd.Flags().StringVar(&view, "view", viewAll, "Listing to show: header, source or all")
	return cmd
}

func previewSections(l scaffold.Listing, view string) ([]preview.Section, error) {
	header := preview.Section{Title: l.ClassName + ".h", Rich: l.RichHeader()}
	source := preview.Section{Title: l.ClassName + ".cpp", Rich: l.RichSource()}
	switch view {
	case viewAll:
		return []preview.Section{header, source}, nil
	case viewHeader:
		return []preview.Section{header}, nil
	case viewSource:
		return []preview.Section{source}, nil
	}
	return nil, fmt.Errorf("unknown view %q (want header, source or all)", view)
}

func detectFormat(w io.Writer) string {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return formatANSI
	}
	return formatRich
}

func renderPreview(w io.Writer, format string, l scaffold.Listing, sections []preview.Section) error {
	var render func(string) string
	switch format {
	case formatHTML:
		page, err := preview.HTML(l.ClassName, sections)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, page)
		return err
	case formatANSI:
		render = preview.ANSI
	case formatRich:
		render = func(rich string) string { return rich }
	default:
		return fmt.Errorf("unknown format %q (want auto, ansi, html or rich)", format)
	}

	for _, sec := range sections {
		if _, err := fmt.Fprintf(w, "-- %s --\n%s\n", sec.Title, render(sec.Rich)); err != nil {
			return fmt.Errorf("write preview: %w", err)
		}
	}
	return nil
}
