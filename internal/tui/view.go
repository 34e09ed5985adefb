package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jesswhitlock/verdant/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateDue:
		content = docStyle.Render(m.dueModel.View())
	case constants.StatePlants:
		content = docStyle.Render(m.plantsModel.View())
	case constants.StateSuggestions:
		content = docStyle.Render(m.suggestionsModel.View())
	case constants.StateAddPlant:
		content = m.viewAddPlant()
	case constants.StateConfirmRemove:
		content = m.viewConfirmRemove()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Due", "Plants", "Suggestions"}
	for i, title := range tabTitles {
		if m.state == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	if m.statusMsg == "" {
		return ""
	}
	return statusStyle.Render(m.statusMsg)
}

func (m Model) viewAddPlant() string {
	if m.formError != "" {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			dangerStyle.Render(m.formError),
			m.form.View(),
		)
	}
	return m.form.View()
}

func (m Model) viewConfirmRemove() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Remove %s?", m.plantToRemove)),
			"Its watering history will be kept.",
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
