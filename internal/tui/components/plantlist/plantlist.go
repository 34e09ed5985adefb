// Package plantlist renders the full plant collection.
package plantlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jesswhitlock/verdant/internal/models"
	"github.com/jesswhitlock/verdant/internal/schedule"
)

type AddPlantMsg struct{}

type WaterPlantMsg struct {
	ID models.PlantID
}

type RemovePlantMsg struct {
	ID models.PlantID
}

type Item struct {
	Plant models.PlantRecord
	IsDue bool
}

func (i Item) Title() string {
	title := i.Plant.Name
	if i.IsDue {
		title = "💧 " + title
	}
	return title
}

func (i Item) Description() string {
	last := i.Plant.LastWatered
	if last == "" {
		last = "never"
	}
	desc := fmt.Sprintf("every %d days, last watered %s", i.Plant.FrequencyDays, last)
	if i.Plant.SnoozeUntil != "" {
		desc += fmt.Sprintf(", snoozed until %s", i.Plant.SnoozeUntil)
	}
	return desc
}

func (i Item) FilterValue() string { return i.Plant.Name }

type KeyMap struct {
	Add    key.Binding
	Water  key.Binding
	Remove key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Water: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "water"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(records []models.PlantRecord, today string, width, height int) Model {
	l := list.New(toItems(records, today), list.NewDefaultDelegate(), width, height)
	l.Title = "Plants"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Water, keys.Remove}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Water, keys.Remove}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetPlants(records []models.PlantRecord, today string) {
	m.list.SetItems(toItems(records, today))
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
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddPlantMsg{} }
		case key.Matches(msg, m.keys.Water):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return WaterPlantMsg{ID: i.Plant.ID()} }
			}
		case key.Matches(msg, m.keys.Remove):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return RemovePlantMsg{ID: i.Plant.ID()} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No plants yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func toItems(records []models.PlantRecord, today string) []list.Item {
	items := make([]list.Item, len(records))
	for i, rec := range records {
		items[i] = Item{
			Plant: rec,
			IsDue: schedule.IsDue(rec, today),
		}
	}
	return items
}
