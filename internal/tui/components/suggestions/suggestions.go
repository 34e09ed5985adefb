// Package suggestions renders pending watering-interval suggestions.
package suggestions

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jesswhitlock/verdant/internal/models"
)

type AcceptSuggestionMsg struct {
	Suggestion models.Suggestion
}

type DismissSuggestionMsg struct {
	Suggestion models.Suggestion
}

type Item struct {
	Suggestion models.Suggestion
}

func (i Item) Title() string {
	return i.Suggestion.Name
}

func (i Item) Description() string {
	return fmt.Sprintf("suggest every %d days (currently %d)",
		i.Suggestion.AverageGapDays, i.Suggestion.CurrentFrequencyDays)
}

func (i Item) FilterValue() string { return i.Suggestion.Name }

type KeyMap struct {
	Accept  key.Binding
	Dismiss key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Accept: key.NewBinding(
			key.WithKeys("a", "enter"),
			key.WithHelp("a", "accept"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dismiss"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(suggestions []models.Suggestion, width, height int) Model {
	l := list.New(toItems(suggestions), list.NewDefaultDelegate(), width, height)
	l.Title = "Suggestions"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Accept, keys.Dismiss}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Accept, keys.Dismiss}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetSuggestions(suggestions []models.Suggestion) {
	m.list.SetItems(toItems(suggestions))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Accept):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return AcceptSuggestionMsg{Suggestion: i.Suggestion} }
			}
		case key.Matches(msg, m.keys.Dismiss):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DismissSuggestionMsg{Suggestion: i.Suggestion} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No suggestions right now.\n  Keep logging waterings!"
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func toItems(suggestions []models.Suggestion) []list.Item {
	items := make([]list.Item, len(suggestions))
	for i, s := range suggestions {
		items[i] = Item{Suggestion: s}
	}
	return items
}
