// Package frame draws a single bubbletea frame off screen and hands back the
// text, for commands that print a styled view once and exit.
package frame

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedModel = errors.New("unexpected final bubbletea model type")

type drawMsg struct{}

type model struct {
	draw  func() string
	drawn string
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg { return drawMsg{} }
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(drawMsg); ok {
		m.drawn = m.draw()
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	return m.drawn
}

// Render runs draw inside a program whose output is discarded and returns
// what draw produced.
func Render(draw func() string) (string, error) {
	finalModel, err := tea.NewProgram(
		model{draw: draw},
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	).Run()
	if err != nil {
		return "", err
	}

	drawn, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedModel
	}

	return drawn.View(), nil
}
