package cmd

import (
	"fmt"

	"github.com/Johannes-Berggren/commitgoblin/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List the files the commit command would commit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := current.client.Status(cmd.Context(), true)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "No changes to commit.")
			return nil
		}

		for _, entry := range entries {
			statusStyle := lipgloss.NewStyle().
				Foreground(statusColor(entry)).
				Width(3)

			path := entry.Path
			if entry.OrigPath != "" {
				path = entry.OrigPath + " -> " + entry.Path
			}
			fmt.Fprintf(out, "%s %s\n", statusStyle.Render(entry.DisplayStatus()), path)
		}
		return nil
	},
}

func statusColor(entry models.ChangeEntry) lipgloss.Color {
	if entry.IsUntracked() {
		return lipgloss.Color("241")
	}
	status := entry.Worktree()
	if status == models.StatusUnmodified {
		status = entry.Staged()
	}
	switch status {
	case models.StatusAdded:
		return lipgloss.Color("10")
	case models.StatusDeleted:
		return lipgloss.Color("9")
	case models.StatusModified, models.StatusRenamed, models.StatusCopied:
		return lipgloss.Color("yellow")
	default:
		return lipgloss.Color("170")
	}
}
