package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/Johannes-Berggren/commitgoblin/internal/models"
	"github.com/Johannes-Berggren/commitgoblin/internal/sweep"
	"github.com/Johannes-Berggren/commitgoblin/internal/ui"
	"github.com/spf13/cobra"
)

type flowFunc func(ctx context.Context, obs sweep.Observer) (*models.RunResult, error)

// runFlow runs fn with plain line output, or inside the progress view when tui is set.
func runFlow(cmd *cobra.Command, title, pattern string, tui bool, fn flowFunc) (*models.RunResult, error) {
	ctx := cmd.Context()

	if !tui {
		printer := ui.NewPrinter(cmd.OutOrStdout(), pattern)
		result, err := fn(ctx, printer.Handle)
		printer.Summary(result)
		return result, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(ui.NewProgressModel(title, pattern, cancel), tea.WithOutput(cmd.OutOrStdout()))
	go func() {
		result, err := fn(ctx, func(ev sweep.Event) {
			p.Send(ui.EventMsg(ev))
		})
		p.Send(ui.DoneMsg{Result: result, Err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("error running progress view: %w", err)
	}
	return final.(ui.ProgressModel).Result()
}

func pushOptions(enabled bool) sweep.PushOptions {
	return sweep.PushOptions{
		Enabled: enabled,
		Remote:  current.cfg.Remote,
		Branch:  current.cfg.Branch,
	}
}
