// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/quicktype/quicktype/internal/render"
)

func registerLanguagesCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List available target languages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			name := lipgloss.NewStyle().Bold(true)
			dim := lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))

			for _, id := range render.Available() {
				lang, err := render.Get(id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
					name.Render(id),
					dim.Render(fmt.Sprintf("(%s, %s, editor mode %s)",
						lang.DisplayName(), lang.FileExtension(), lang.EditorMode())))
			}
			return nil
		},
	}
	parent.AddCommand(cmd)
}
