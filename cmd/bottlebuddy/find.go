package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bottlebuddy/internal/domain"
	"bottlebuddy/internal/service"
	"bottlebuddy/internal/tui"
)

func newFindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find [descriptor...]",
		Short: "Search once and print matching wines",
		Long: `Sends the given descriptors to the search backend and prints one wine per line.
Quote descriptors that contain spaces, e.g. bottlebuddy find dry "firm tannins".`,
		Example: `  bottlebuddy find dry oak`,
		ValidArgs: domain.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.searchService().Search(cmd.Context(), args)
			if errors.Is(err, service.ErrUnknownDescriptor) {
				return fmt.Errorf("%w (known: %s)", err, strings.Join(domain.Names(), ", "))
			}
			if err != nil {
				// The cause is in the log; the user only sees the generic message.
				cmd.SilenceErrors = true
				fmt.Fprintln(cmd.ErrOrStderr(), tui.FetchFailedMessage)
				return err
			}
			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "no matches")
			}
			for _, r := range results {
				fmt.Fprintln(out, r)
			}
			return nil
		},
	}
}
