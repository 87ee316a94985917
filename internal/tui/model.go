package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fhcleanup/internal/domain"
	"fhcleanup/internal/presentation"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseDone
	PhaseError
)

// Messages for the TUI
type (
	ProgressMsg struct {
		Current int
		Total   int
	}
	DoneMsg struct {
		Summary domain.Summary
		Elapsed time.Duration
	}
	ErrorMsg struct {
		Err error
	}
)

type Config struct {
	Root       string
	HoldingDir string
	Purge      bool
	Recursive  bool
}

type Model struct {
	config   Config
	Phase    Phase
	spinner  spinner.Model
	progress progress.Model
	current  int
	total    int
	Summary  domain.Summary
	Elapsed  time.Duration
	Err      error
	Quitting bool
}

func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
		progress.WithoutPercentage(),
	)

	return Model{
		config:   cfg,
		Phase:    PhaseRunning,
		spinner:  s,
		progress: p,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-20, 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		}

	case ProgressMsg:
		m.current = msg.Current
		m.total = msg.Total
		return m, nil

	case DoneMsg:
		m.Phase = PhaseDone
		m.Summary = msg.Summary
		m.Elapsed = msg.Elapsed
		return m, tea.Quit

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, tea.Quit

	case spinner.TickMsg:
		if m.Phase == PhaseRunning {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.Phase {
	case PhaseRunning:
		b.WriteString(m.renderRunning())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Press q to hide the progress view"))
	case PhaseDone:
		b.WriteString(m.renderCompletion())
	case PhaseError:
		b.WriteString(m.renderError())
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render(iconTrash + " fhcleanup")
	subtitle := subtitleStyle.Render("File history duplicate cleanup")

	disposal := fmt.Sprintf("%s Holding: %s", iconFolder, shortenPath(m.config.HoldingDir))
	if m.config.Purge {
		disposal = iconTrash + " Purging duplicates"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		"",
		dimStyle.Render(fmt.Sprintf("%s Root: %s", iconFolder, shortenPath(m.config.Root))),
		dimStyle.Render(disposal),
	)
}

func (m Model) renderRunning() string {
	if m.total == 0 {
		return fmt.Sprintf("%s Scanning directories...", m.spinner.View())
	}
	percent := float64(m.current) / float64(m.total)
	return fmt.Sprintf("%s Scanning directories...\n\n  %s\n  %s %s",
		m.spinner.View(),
		m.progress.ViewAs(percent),
		countStyle.Render(fmt.Sprintf("%d/%d directories", m.current, m.total)),
		dimStyle.Render(fmt.Sprintf("(%.0f%%)", percent*100)),
	)
}

func (m Model) renderCompletion() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Cleanup Complete"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s %s\n\n", successStyle.Render(iconSuccess), successStyle.Render(presentation.JoinLines(presentation.SummaryLines(m.Summary)))))

	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Moved:"), statValueStyle.Render(fmt.Sprintf("%d", m.Summary.Moved))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Deleted:"), statValueStyle.Render(fmt.Sprintf("%d", m.Summary.Deleted))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Renamed:"), statValueStyle.Render(fmt.Sprintf("%d", m.Summary.Renamed))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Directories:"), statValueStyle.Render(fmt.Sprintf("%d", m.total))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Elapsed:"), dimStyle.Render(fmt.Sprintf("%dms", m.Elapsed.Milliseconds()))))

	return b.String()
}

func (m Model) renderError() string {
	msg := errorStyle.Render(fmt.Sprintf("Error: %s", m.Err.Error()))
	return errorBoxStyle.Render(fmt.Sprintf("%s %s", errorStyle.Render(iconError), msg))
}

// shortenPath replaces the home directory prefix with ~ for display
func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
