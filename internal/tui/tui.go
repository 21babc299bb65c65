package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sokinpui/filediffadvanced/filediff"
	"github.com/sokinpui/filediffadvanced/model"
)

// --- Styles ---
var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// --- Messages ---
type progressMsg struct {
	done, total int64
}

type resultMsg struct {
	report model.DiffReport
}

type errorMsg struct{ err error }

func (e errorMsg) Error() string { return e.err.Error() }

// --- Model ---
type Model struct {
	ctx     context.Context
	app     *filediff.App
	spinner spinner.Model
	bar     progress.Model
	state   state
	percent float64

	report model.DiffReport
	err    error
}

type state int

const (
	stateMapping state = iota
	stateScanning
	stateDone
	stateError
)

func New(ctx context.Context, app *filediff.App) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return Model{
		ctx:     ctx,
		app:     app,
		spinner: s,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		state:   stateMapping,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runApp)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.state = stateScanning
		if msg.total > 0 {
			m.percent = float64(msg.done) / float64(msg.total)
		}
		return m, nil

	case resultMsg:
		m.state = stateDone
		m.report = msg.report
		return m, tea.Quit

	case errorMsg:
		m.state = stateError
		m.err = msg.err
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		if m.state == stateMapping {
			m.spinner, cmd = m.spinner.Update(msg)
		}
		return m, cmd
	}
}

// View clears itself once the comparison ends so the report starts on a
// clean line.
func (m Model) View() string {
	switch m.state {
	case stateMapping:
		return fmt.Sprintf("%s %s", m.spinner.View(), faintStyle.Render("Mapping files..."))
	case stateScanning:
		return fmt.Sprintf("%s %s", labelStyle.Render("Comparing"), m.bar.ViewAs(m.percent))
	default:
		return ""
	}
}

// Result returns what the comparison produced.
func (m Model) Result() (model.DiffReport, error) {
	return m.report, m.err
}

func (m *Model) runApp() tea.Msg {
	r, err := m.app.Execute(m.ctx)
	if err != nil {
		return errorMsg{err}
	}
	return resultMsg{report: r}
}

// Run executes app while drawing progress to out. Signals are left to the
// caller; the program neither reads input nor installs a SIGINT handler.
func Run(ctx context.Context, app *filediff.App, out io.Writer) (model.DiffReport, error) {
	p := tea.NewProgram(New(ctx, app),
		tea.WithOutput(out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	lastPercent := -1
	app.SetProgressCallback(func(done, total int64) {
		percent := int(100 * done / max(total, 1))
		if percent == lastPercent {
			return
		}
		lastPercent = percent
		p.Send(progressMsg{done: done, total: total})
	})
	defer app.SetProgressCallback(nil)

	final, err := p.Run()
	if err != nil {
		return model.DiffReport{}, fmt.Errorf("failed to run progress display: %w", err)
	}
	return final.(Model).Result()
}
