// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/attrscaffold/generator"
	"github.com/albertocavalcante/attrscaffold/internal/source"
	"github.com/albertocavalcante/attrscaffold/rename"
)

func newRenameCmd(a *app) *cobra.Command {
	var (
		from  string
		to    string
		write bool
	)
	cmd := &cobra.Command{
		Use:   "rename <description>",
		Short: "Correct attribute names that are not legal identifiers",
		Long: `Offer a replacement for every attribute name flagged as illegal.

Each answer is checked against the identifier grammar and the asset's
naming rules before it is accepted. With --from and --to a single name is
renamed without prompting. Renames are written back to the description
only with --write.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			s, r, err := a.load(path)
			if err != nil {
				return err
			}
			gen := a.generator(s)
			defer gen.Close()

			flagged := gen.Build(r.View).FlaggedItems()
			if len(flagged) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no illegal names")
				return nil
			}

			opts := s.RenameOptions()
			opts.Logger = a.log()
			authority, err := rename.AuthorityFor(r.Asset, opts)
			if err != nil {
				return err
			}

			var matched, renamed int
			for _, item := range flagged {
				if from != "" && item.IllegalName != from {
					continue
				}
				matched++

				wf, err := rename.NewWorkflow(item, authority, a.log())
				if err != nil {
					return err
				}
				if refs := generator.ReferencedBy(r.Asset.Properties(), wf.OldName()); len(refs) > 0 && !opts.PropagateClampReferences {
					a.log().Warn("clamp bounds follow the renamed attribute and keep the old name",
						"attribute", wf.OldName(), "properties", refs)
				}

				candidate, how := to, rename.CommitOnEnter
				if to == "" {
					candidate, err = a.prompter.AskName(
						fmt.Sprintf("Rename %s to:", wf.OldName()),
						"Letters, digits and underscores; must not start with a digit.",
						wf.Verify,
					)
					switch {
					case errors.Is(err, errPromptCancelled):
						how = rename.CommitOnCleared
					case err != nil:
						return fmt.Errorf("prompt: %w", err)
					}
				}

				ok, err := wf.Commit(candidate, how)
				if err != nil {
					return fmt.Errorf("rename %s: %w", item.IllegalName, err)
				}
				if !ok {
					fmt.Fprintf(cmd.OutOrStdout(), "kept %s\n", item.IllegalName)
					continue
				}
				renamed++
				fmt.Fprintf(cmd.OutOrStdout(), "renamed %s to %s\n", item.IllegalName, candidate)
			}

			if from != "" && matched == 0 {
				return fmt.Errorf("%s is not flagged as an illegal name", from)
			}
			if renamed == 0 {
				return nil
			}
			if !write {
				a.log().Info("renames not saved, pass --write to update the description", "renamed", renamed)
				return nil
			}
			if err := source.Save(path, r); err != nil {
				return err
			}
			a.log().Info("updated description", "path", path, "renamed", renamed)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Illegal name to rename")
	cmd.Flags().StringVar(&to, "to", "", "Replacement name (skips the prompt)")
	cmd.Flags().BoolVar(&write, "write", false, "Write renames back to the description")
	cmd.MarkFlagsRequiredTogether("from", "to")
	return cmd
}
