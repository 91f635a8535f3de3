// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quicktype/quicktype/internal/version"
)

func registerVersionCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	}
	parent.AddCommand(cmd)
}
