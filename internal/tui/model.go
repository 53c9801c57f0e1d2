package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"exifstamp/internal/domain"
	appErrors "exifstamp/internal/errors"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhasePrompt Phase = iota
	PhaseSyncing
	PhaseDone
	PhaseError
)

// Messages for the TUI
type (
	SyncDoneMsg struct {
		Report domain.Report
	}
	ErrorMsg struct {
		Err error
	}
)

// SyncFunc runs the pipeline for one path.
type SyncFunc func(ctx context.Context, path string) (domain.Report, error)

// PathCheck validates a path typed at the prompt.
type PathCheck func(path string) (bool, error)

// Config for the TUI
type Config struct {
	Context context.Context
	Path    string
	DryRun  bool
	Verbose bool
	Sync    SyncFunc
	Exists  PathCheck
}

// Model is the main TUI model
type Model struct {
	config   Config
	Phase    Phase
	Path     string
	Report   domain.Report
	Err      error
	Quitting bool

	input       textinput.Model
	spinner     spinner.Model
	promptError string
	width       int
}

// NewModel creates a new TUI model
func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	ti := textinput.New()
	ti.Placeholder = "~/Pictures/IMG_0001.jpg"
	ti.Prompt = iconArrow + " "
	ti.CharLimit = 4096
	ti.Width = 60
	ti.Focus()

	m := Model{
		config:  cfg,
		Phase:   PhasePrompt,
		input:   ti,
		spinner: s,
		width:   80,
	}
	if cfg.Path != "" {
		m.Phase = PhaseSyncing
		m.Path = cfg.Path
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.Phase == PhaseSyncing {
		return tea.Batch(m.spinner.Tick, m.syncCmd(m.Path))
	}
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-10, 20)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.Quitting = true
			return m, tea.Quit
		case "q":
			if m.Phase == PhaseDone || m.Phase == PhaseError {
				return m, tea.Quit
			}
		case "enter":
			switch m.Phase {
			case PhasePrompt:
				return m.submit()
			case PhaseDone, PhaseError:
				return m, tea.Quit
			}
		}
		if m.Phase == PhasePrompt {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			m.promptError = ""
			return m, cmd
		}

	case SyncDoneMsg:
		m.Phase = PhaseDone
		m.Report = msg.Report
		return m, nil

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.Phase == PhaseSyncing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	default:
		if m.Phase == PhasePrompt {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	path := expandHome(strings.TrimSpace(m.input.Value()))
	if path == "" {
		m.promptError = "Please enter a path"
		return m, nil
	}
	if m.config.Exists != nil {
		ok, err := m.config.Exists(path)
		if err != nil {
			m.promptError = err.Error()
			return m, nil
		}
		if !ok {
			m.promptError = fmt.Sprintf("No such file: %s", path)
			return m, nil
		}
	}
	m.Path = path
	m.Phase = PhaseSyncing
	m.input.Blur()
	return m, tea.Batch(m.spinner.Tick, m.syncCmd(path))
}

func (m Model) syncCmd(path string) tea.Cmd {
	sync := m.config.Sync
	ctx := m.config.Context
	if ctx == nil {
		ctx = context.Background()
	}
	return func() tea.Msg {
		if sync == nil {
			return ErrorMsg{Err: fmt.Errorf("no sync function configured")}
		}
		report, err := sync(ctx, path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return SyncDoneMsg{Report: report}
	}
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.Phase {
	case PhasePrompt:
		b.WriteString(m.renderPrompt())
	case PhaseSyncing:
		b.WriteString(fmt.Sprintf("%s Reading EXIF and updating %s...", m.spinner.View(), fileNameStyle.Render(shortenPath(m.Path))))
	case PhaseDone:
		b.WriteString(m.renderReport())
	case PhaseError:
		b.WriteString(m.renderError())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render(iconCamera + " exifstamp")
	subtitle := subtitleStyle.Render("Set file dates from the EXIF capture date")
	if m.config.DryRun {
		subtitle = lipgloss.JoinHorizontal(lipgloss.Left, subtitle, "  ", warningStyle.Render("(dry run)"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle)
}

func (m Model) renderPrompt() string {
	var b strings.Builder
	b.WriteString(confirmPromptStyle.Render("Enter the path to the image file:"))
	b.WriteString("\n\n  ")
	b.WriteString(m.input.View())
	if m.promptError != "" {
		b.WriteString("\n\n  ")
		b.WriteString(errorStyle.Render(iconError + " " + m.promptError))
	}
	return b.String()
}

func (m Model) renderReport() string {
	r := m.Report
	var b strings.Builder

	b.WriteString(sectionStyle.Render("File"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Path:"), fileNameStyle.Render(shortenPath(r.Path))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Capture date:"), dateStyle.Render(formatDate(r.Capture))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Modified (before):"), dateStyle.Render(formatDate(r.Modified))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Created (before):"), dateStyle.Render(formatDate(r.Created))))

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Steps"))
	b.WriteString("\n\n")
	for _, s := range r.Steps {
		icon, style := statusIcon(s.Status)
		line := fmt.Sprintf("  %s %s", style.Render(icon), statLabelStyle.Render(string(s.Step)))
		line += style.Render(string(s.Status))
		if s.Err != nil {
			detail := appErrors.UserMessage(s.Err)
			if m.config.Verbose {
				detail = s.Err.Error()
			}
			line += "  " + dimStyle.Render(detail)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case r.Failed() && !r.Applied():
		b.WriteString(errorStyle.Render(iconError + " No changes made"))
	case r.Failed():
		b.WriteString(warningStyle.Render(iconWarning + " Completed with errors"))
	case r.DryRun:
		b.WriteString(highlightBoxStyle.Render("🔍 Dry Run - No timestamps were changed"))
	default:
		b.WriteString(successStyle.Render(iconSuccess + " Timestamps updated"))
	}
	return b.String()
}

func (m Model) renderError() string {
	icon := errorStyle.Render(iconError)
	msg := errorStyle.Render(fmt.Sprintf("Error: %s", appErrors.UserMessage(m.Err)))

	return highlightBoxStyle.
		BorderForeground(errorColor).
		Render(fmt.Sprintf("%s %s", icon, msg))
}

func (m Model) renderHelp() string {
	var help string
	switch m.Phase {
	case PhasePrompt:
		help = "Enter to continue • Esc to quit"
	case PhaseSyncing:
		help = "Updating timestamps... Please wait"
	case PhaseDone, PhaseError:
		help = "Press Enter or q to exit"
	}
	return helpStyle.Render(help)
}

func statusIcon(status domain.Status) (string, lipgloss.Style) {
	switch status {
	case domain.StatusOK:
		return iconSuccess, successStyle
	case domain.StatusFailed:
		return iconError, errorStyle
	case domain.StatusWarn:
		return iconWarning, warningStyle
	case domain.StatusPlanned:
		return iconArrow, dateStyle
	default:
		return iconSkipped, dimStyle
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "unknown"
	}
	return t.Format("2006-01-02 15:04:05")
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

// expandHome is the inverse of shortenPath for typed input.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + path[1:]
}
