// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/attrscaffold/generator"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the registered list item builders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tVIEW\tSCOPE\tDESCRIPTION")
			for _, b := range generator.All() {
				m := b.Metadata()
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.Name, m.View, m.Scope, m.Description)
			}
			return tw.Flush()
		},
	}
}
