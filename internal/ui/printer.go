// Package ui renders run progress, either as plain lines or as a bubbletea view.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/Johannes-Berggren/commitgoblin/internal/models"
	"github.com/Johannes-Berggren/commitgoblin/internal/sweep"
)

// Printer writes one styled line per event.
type Printer struct {
	out     io.Writer
	pattern string
}

// NewPrinter returns a Printer writing to out. pattern names the document
// pattern in remove-flow messages.
func NewPrinter(out io.Writer, pattern string) *Printer {
	return &Printer{out: out, pattern: pattern}
}

// Handle prints ev. It has the sweep.Observer signature.
func (p *Printer) Handle(ev sweep.Event) {
	line, style := FormatEvent(ev, p.pattern)
	if line == "" {
		return
	}
	fmt.Fprintln(p.out, style.Render(line))
}

// Summary prints the totals of a finished run and the paths that failed.
func (p *Printer) Summary(result *models.RunResult) {
	if result == nil {
		return
	}
	fmt.Fprintln(p.out, SummaryLine(result))
	for _, path := range result.Failed {
		fmt.Fprintln(p.out, errorStyle.Render("  failed: "+path))
	}
}

// SummaryLine renders "N attempted, M succeeded, K failed".
func SummaryLine(result *models.RunResult) string {
	parts := []string{
		fmt.Sprintf("%d attempted", result.Attempted),
		fmt.Sprintf("%d succeeded", result.Succeeded),
		fmt.Sprintf("%d failed", len(result.Failed)),
	}
	if len(result.Skipped) > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", len(result.Skipped)))
	}

	style := successStyle
	if !result.OK() {
		style = errorStyle
	}
	return style.Render(strings.Join(parts, ", "))
}

// FormatEvent returns the text and style for ev. Events with nothing to say
// return an empty string.
func FormatEvent(ev sweep.Event, pattern string) (string, lipgloss.Style) {
	removing := ev.Flow == sweep.FlowRemove
	counter := fmt.Sprintf("[%d/%d]", ev.Index, ev.Total)

	switch ev.Kind {
	case sweep.EventPrestage:
		return "Staging all files to identify them...", dimStyle
	case sweep.EventUnstage:
		return "Unstaging all files...", dimStyle
	case sweep.EventNothing:
		if removing {
			return fmt.Sprintf("No %s files found.", pattern), plainStyle
		}
		return "No changes to commit.", plainStyle
	case sweep.EventFound:
		if removing {
			return fmt.Sprintf("Found %d %s files to remove.", ev.Total, pattern), headerStyle
		}
		return fmt.Sprintf("Found %d files to commit.", ev.Total), headerStyle
	case sweep.EventStart:
		if removing {
			return fmt.Sprintf("%s Removing %s...", counter, ev.Path), plainStyle
		}
		return fmt.Sprintf("%s Committing %s...", counter, ev.Path), plainStyle
	case sweep.EventPlanned:
		if removing {
			return fmt.Sprintf("%s Would remove %s (%q)", counter, ev.Path, ev.Message), dimStyle
		}
		return fmt.Sprintf("%s Would commit %s (%q)", counter, ev.Path, ev.Message), dimStyle
	case sweep.EventCommitted:
		if removing {
			return fmt.Sprintf("Successfully committed removal of %s", ev.Path), successStyle
		}
		return fmt.Sprintf("Successfully committed %s", ev.Path), successStyle
	case sweep.EventFailed:
		what := ev.Path
		if removing {
			what = "removal of " + ev.Path
		}
		return fmt.Sprintf("Failed to commit %s: %v", what, ev.Err), errorStyle
	case sweep.EventDeleted:
		return fmt.Sprintf("Deleted untracked file %s", ev.Path), warnStyle
	case sweep.EventSkipped:
		return fmt.Sprintf("File %s not found (already deleted?)", ev.Path), warnStyle
	case sweep.EventFinished:
		return "All files processed.", plainStyle
	case sweep.EventPushStart:
		return "Pushing changes...", plainStyle
	case sweep.EventPushDone:
		return "Push successful!", successStyle
	case sweep.EventPushFailed:
		return fmt.Sprintf("Push failed: %v", ev.Err), errorStyle
	case sweep.EventPushSkipped:
		return "Push skipped.", dimStyle
	case sweep.EventWarning:
		return fmt.Sprintf("Warning: %v", ev.Err), warnStyle
	}
	return "", plainStyle
}
