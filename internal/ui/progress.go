package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/Johannes-Berggren/commitgoblin/internal/models"
	"github.com/Johannes-Berggren/commitgoblin/internal/sweep"
)

const maxLogLines = 8

// EventMsg carries a sweep event into the program.
type EventMsg sweep.Event

// DoneMsg ends the program once the run has returned.
type DoneMsg struct {
	Result *models.RunResult
	Err    error
}

// ProgressModel shows a running sweep: a spinner, a progress bar and the
// most recent event lines.
type ProgressModel struct {
	title    string
	pattern  string
	spinner  spinner.Model
	bar      progress.Model
	total    int
	done     int
	current  string
	lines    []string
	result   *models.RunResult
	err      error
	finished bool
	width    int
	cancel   func()
}

// NewProgressModel returns a model titled title. cancel is called when the
// user presses ctrl+c; the model keeps running until DoneMsg arrives.
func NewProgressModel(title, pattern string, cancel func()) ProgressModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))

	return ProgressModel{
		title:   title,
		pattern: pattern,
		spinner: sp,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		cancel:  cancel,
	}
}

func (m ProgressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.cancel != nil && !m.finished {
				m.cancel()
				m.lines = appendLine(m.lines, warnStyle.Render("Cancelling after the current step..."))
			}
			if m.finished {
				return m, tea.Quit
			}
		}
		return m, nil

	case EventMsg:
		ev := sweep.Event(msg)
		switch ev.Kind {
		case sweep.EventFound:
			m.total = ev.Total
		case sweep.EventStart, sweep.EventPlanned:
			m.current = ev.Path
			if ev.Kind == sweep.EventPlanned {
				m.done = ev.Index
			}
		case sweep.EventCommitted, sweep.EventFailed, sweep.EventSkipped:
			m.done = ev.Index
		case sweep.EventPushStart:
			m.current = "push"
		}
		if line, style := FormatEvent(ev, m.pattern); line != "" {
			m.lines = appendLine(m.lines, style.Render(line))
		}
		return m, nil

	case DoneMsg:
		m.result = msg.Result
		m.err = msg.Err
		m.finished = true
		m.current = ""
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = min(max(msg.Width-20, 10), 60)
		return m, nil

	case spinner.TickMsg:
		if m.finished {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func appendLine(lines []string, line string) []string {
	lines = append(lines, line)
	if len(lines) > maxLogLines {
		lines = lines[len(lines)-maxLogLines:]
	}
	return lines
}

// Percent returns the share of items handled so far.
func (m ProgressModel) Percent() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.done) / float64(m.total)
}

// Result returns the run result once DoneMsg has been received.
func (m ProgressModel) Result() (*models.RunResult, error) {
	return m.result, m.err
}

func (m ProgressModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader() + "\n\n")

	if !m.finished {
		status := m.spinner.View() + " "
		if m.total > 0 {
			status += fmt.Sprintf("[%d/%d] ", m.done, m.total)
		}
		status += m.current
		b.WriteString(status + "\n")
	}
	if m.total > 0 {
		b.WriteString(m.bar.ViewAs(m.Percent()) + "\n")
	}
	b.WriteString("\n")

	for _, line := range m.lines {
		b.WriteString(line + "\n")
	}

	if m.finished {
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n")
		}
		if m.result != nil {
			b.WriteString(SummaryLine(m.result) + "\n")
		}
	} else {
		b.WriteString(dimStyle.Render("ctrl+c: cancel") + "\n")
	}

	return b.String()
}

func (m ProgressModel) renderHeader() string {
	width := m.width
	if width <= 0 {
		width = 40
	}
	title := titleStyle.Render("🧙 " + m.title)
	divider := dividerStyle.Render(strings.Repeat("─", width))
	return lipgloss.JoinVertical(lipgloss.Left, title, divider)
}
