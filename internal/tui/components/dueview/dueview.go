// Package dueview renders today's watering list.
package dueview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jesswhitlock/verdant/internal/models"
)

type WaterPlantMsg struct {
	ID models.PlantID
}

type SnoozePlantMsg struct {
	ID models.PlantID
}

type Item struct {
	Plant models.PlantRecord
}

func (i Item) Title() string {
	return i.Plant.Name
}

func (i Item) Description() string {
	last := i.Plant.LastWatered
	if last == "" {
		return "never watered"
	}
	return fmt.Sprintf("last watered %s, every %d days", last, i.Plant.FrequencyDays)
}

func (i Item) FilterValue() string { return i.Plant.Name }

type KeyMap struct {
	Water  key.Binding
	Snooze key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Water: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "water"),
		),
		Snooze: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "snooze"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(due []models.PlantRecord, width, height int) Model {
	l := list.New(toItems(due), list.NewDefaultDelegate(), width, height)
	l.Title = "Due"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Water, keys.Snooze}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Water, keys.Snooze}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetDue(due []models.PlantRecord) {
	m.list.SetItems(toItems(due))
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
		case key.Matches(msg, m.keys.Water):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return WaterPlantMsg{ID: i.Plant.ID()} }
			}
		case key.Matches(msg, m.keys.Snooze):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return SnoozePlantMsg{ID: i.Plant.ID()} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  Nothing to water today 🌿"
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func toItems(due []models.PlantRecord) []list.Item {
	items := make([]list.Item, len(due))
	for i, rec := range due {
		items[i] = Item{Plant: rec}
	}
	return items
}
