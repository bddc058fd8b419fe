package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type workFinishedMsg struct{}

// spinnerModel only animates; the work itself runs outside the program so
// its result never depends on how the program exits.
type spinnerModel struct {
	spinner  spinner.Model
	label    string
	started  time.Time
	wait     tea.Cmd
	finished bool
}

func newSpinnerModel(label string, finished <-chan struct{}) spinnerModel {
	return spinnerModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("39"))),
		),
		label:   label,
		started: time.Now(),
		wait: func() tea.Msg {
			<-finished
			return workFinishedMsg{}
		},
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.wait)
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(workFinishedMsg); ok {
		m.finished = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m spinnerModel) View() string {
	if m.finished {
		return ""
	}

	elapsed := time.Since(m.started).Truncate(time.Second)
	return fmt.Sprintf("%s %s (%s)", m.spinner.View(), m.label, elapsed)
}

// runWithSpinner runs work while a spinner is drawn on output and returns
// once work has returned, even when the program stops first.
func runWithSpinner[T any](ctx context.Context, output io.Writer, label string, work func(context.Context) (T, error)) (T, error) {
	var (
		value   T
		workErr error
	)
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		value, workErr = work(ctx)
	}()

	p := tea.NewProgram(
		newSpinnerModel(label, finished),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)
	_, runErr := p.Run()

	<-finished
	if workErr != nil {
		return value, workErr
	}
	return value, runErr
}
