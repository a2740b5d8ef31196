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
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/tools/txtar"

	"github.com/albertocavalcante/attrscaffold/scaffold"
)

// Views accepted by --view.
const (
	viewAll    = "all"
	viewHeader = "header"
	viewSource = "source"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		output string
		view   string
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "generate <description>",
		Short: "Generate the header and source of a class",
		Long: `Generate the header and source text of the class described by the
given file.

Without -o the files are printed to stdout: a single file as is, both
files as a txtar archive.`,
		Example: `  # Print both files
  attrscaffold generate hero.yaml

  # Write UHeroAttributes.h only
  attrscaffold generate hero.yaml --view header -o ./Source/Hero/`,
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

			files, err := listingFiles(listing, view)
			if err != nil {
				return err
			}
			if dryRun || output == "" {
				return printFiles(cmd.OutOrStdout(), files)
			}
			return a.writeFiles(output, files)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default: stdout)")
	cmd.Flags().StringVar(&view, "view", viewAll, "Files to generate: header, source or all")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print to stdout without writing files")
	return cmd
}

// listingFiles returns the files of l selected by view, header first.
func listingFiles(l scaffold.Listing, view string) ([]txtar.File, error) {
	var exts []string
	switch view {
	case viewAll:
		exts = []string{".h", ".cpp"}
	case viewHeader:
		exts = []string{".h"}
	case viewSource:
		exts = []string{".cpp"}
	default:
		return nil, fmt.Errorf("unknown view %q (want header, source or all)", view)
	}

	out := l.Output()
	if len(out.Files) == 0 {
		return nil, fmt.Errorf("description names no class to generate")
	}
	files := make([]txtar.File, 0, len(exts))
	for _, ext := range exts {
		name := l.ClassName + ext
		files = append(files, txtar.File{Name: name, Data: out.Files[name]})
	}
	return files, nil
}

func printFiles(w io.Writer, files []txtar.File) error {
	data := txtar.Format(&txtar.Archive{Files: files})
	if len(files) == 1 {
		data = files[0].Data
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (a *app) writeFiles(dir string, files []txtar.File) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.Name, err)
		}
		a.log().Info("wrote file", "path", path)
	}
	return nil
}
