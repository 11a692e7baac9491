package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bottlebuddy/internal/domain"
)

func newGlossaryCmd() *cobra.Command {
	var namesOnly bool
	cmd := &cobra.Command{
		Use:   "glossary",
		Short: "Print every descriptor with its description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, d := range domain.All() {
				if namesOnly {
					fmt.Fprintln(out, d.Name)
					continue
				}
				fmt.Fprintf(out, "%s\n  %s\n", d.Name, d.Description)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&namesOnly, "names", false, "Print descriptor names only")
	return cmd
}
