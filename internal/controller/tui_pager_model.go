package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// footerHeight is the number of lines reserved under the viewport.
const footerHeight = 1

type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
}

func newPagerModel(title, content string, width, height int) pagerModel {
	vp := viewport.New(width, max(height-footerHeight, 1))
	vp.SetContent(content)

	return pagerModel{title: title, content: content, viewport: vp}
}

func (p pagerModel) Init() tea.Cmd {
	return nil
}

func (p pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		}
	case tea.WindowSizeMsg:
		p.viewport.Width = msg.Width
		p.viewport.Height = max(msg.Height-footerHeight, 1)
	}

	var cmd tea.Cmd

	p.viewport, cmd = p.viewport.Update(msg)

	return p, cmd
}

func (p pagerModel) View() string {
	footer := lipgloss.NewStyle().Faint(true).Render(
		fmt.Sprintf("%s  %3.0f%%  (q to quit)", p.title, p.viewport.ScrollPercent()*100),
	)

	return p.viewport.View() + "\n" + footer
}
