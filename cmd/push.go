package cmd

import (
	"fmt"

	"github.com/Johannes-Berggren/commitgoblin/internal/sweep"
	"github.com/Johannes-Berggren/commitgoblin/internal/ui"
	"github.com/spf13/cobra"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push committed history to the remote",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		opts := pushOptions(true)
		if opts.Remote == "" {
			if branch, err := current.client.CurrentBranch(ctx); err == nil && branch.Upstream != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Pushing %s to %s\n", branch.Name, branch.Upstream)
			}
		}

		printer := ui.NewPrinter(cmd.OutOrStdout(), "")
		err := sweep.Push(ctx, current.client, opts, printer.Handle)
		return finish(err != nil)
	},
}
