package cmd

import (
	"context"

	"github.com/Johannes-Berggren/commitgoblin/internal/git"
	"github.com/Johannes-Berggren/commitgoblin/internal/models"
	"github.com/Johannes-Berggren/commitgoblin/internal/sweep"
	"github.com/spf13/cobra"
)

var (
	commitNoPrestage bool
	commitNoPush     bool
	commitDryRun     bool
	commitTUI        bool
)

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Commit every changed file on its own, then push",
	Long: `Commit each modified, added, deleted or untracked file as a separate
commit with the message "Add <file name>", then push once.

A failure on one file is reported and the run moves on to the next file.`,
	Args: cobra.NoArgs,
	RunE: runCommit,
}

func init() {
	commitCmd.Flags().BoolVar(&commitNoPrestage, "no-prestage", false, "List changes without staging everything first")
	commitCmd.Flags().BoolVar(&commitNoPush, "no-push", false, "Do not push after committing")
	commitCmd.Flags().BoolVar(&commitDryRun, "dry-run", false, "Show the commits that would be made")
	commitCmd.Flags().BoolVar(&commitTUI, "tui", false, "Show an interactive progress view")
}

func runCommit(cmd *cobra.Command, args []string) error {
	cfg := current.cfg

	// Porcelain paths are relative to the work tree root.
	top, err := current.client.Toplevel(cmd.Context())
	if err != nil {
		return err
	}
	client := git.NewClient(top, nil)
	client.SetTimeout(cfg.Timeout())

	opts := sweep.CommitOptions{
		Prestage: cfg.Prestage && !commitNoPrestage,
		Verb:     cfg.AddVerb,
		DryRun:   commitDryRun,
		Push:     pushOptions(cfg.Push && !commitNoPush),
	}

	result, err := runFlow(cmd, "Committing one by one", "", commitTUI,
		func(ctx context.Context, obs sweep.Observer) (*models.RunResult, error) {
			opts.Observer = obs
			return sweep.CommitEach(ctx, client, opts)
		})
	if err != nil {
		return err
	}
	return finish(!result.OK())
}
