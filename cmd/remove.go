package cmd

import (
	"context"

	"github.com/Johannes-Berggren/commitgoblin/internal/models"
	"github.com/Johannes-Berggren/commitgoblin/internal/sweep"
	"github.com/spf13/cobra"
)

var (
	removePattern string
	removeExclude []string
	removeNoPush  bool
	removeDryRun  bool
	removeTUI     bool
)

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove every matching document one commit at a time, then push",
	Long: `Find every file matching a pattern (default *.md) below the current
directory, skipping node_modules and .git, and remove each one with its own
"Remove <file name>" commit. Files git does not track are deleted from disk.

Examples:
  commitgoblin remove                       Remove all *.md files
  commitgoblin remove --pattern '*.txt'     Remove all *.txt files
  commitgoblin remove --exclude vendor      Also skip vendor/ directories`,
	Args: cobra.NoArgs,
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().StringVar(&removePattern, "pattern", "", "File name pattern to remove (default from config, *.md)")
	removeCmd.Flags().StringSliceVar(&removeExclude, "exclude", nil, "Directory names to skip, added to the configured list")
	removeCmd.Flags().BoolVar(&removeNoPush, "no-push", false, "Do not push after committing")
	removeCmd.Flags().BoolVar(&removeDryRun, "dry-run", false, "Show the removals that would be made")
	removeCmd.Flags().BoolVar(&removeTUI, "tui", false, "Show an interactive progress view")
}

func runRemove(cmd *cobra.Command, args []string) error {
	cfg := current.cfg

	pattern := cfg.Pattern
	if removePattern != "" {
		pattern = removePattern
	}
	exclude := append(append([]string(nil), cfg.Exclude...), removeExclude...)

	paths, err := sweep.FindDocuments(workDir, pattern, exclude)
	if err != nil {
		return err
	}

	opts := sweep.RemoveOptions{
		Root:   workDir,
		Verb:   cfg.RemoveVerb,
		DryRun: removeDryRun,
		Push:   pushOptions(cfg.Push && !removeNoPush),
	}

	result, err := runFlow(cmd, "Removing "+pattern+" one by one", pattern, removeTUI,
		func(ctx context.Context, obs sweep.Observer) (*models.RunResult, error) {
			opts.Observer = obs
			return sweep.RemoveEach(ctx, current.client, paths, opts)
		})
	if err != nil {
		return err
	}
	return finish(!result.OK())
}
