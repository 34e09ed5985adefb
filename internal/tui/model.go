// Package tui implements the interactive terminal interface: a due list,
// the full plant collection, and pending interval suggestions.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/jesswhitlock/verdant/internal/cli"
	"github.com/jesswhitlock/verdant/internal/constants"
	"github.com/jesswhitlock/verdant/internal/frequency"
	"github.com/jesswhitlock/verdant/internal/models"
	"github.com/jesswhitlock/verdant/internal/schedule"
	"github.com/jesswhitlock/verdant/internal/tui/components/dueview"
	"github.com/jesswhitlock/verdant/internal/tui/components/plantlist"
	"github.com/jesswhitlock/verdant/internal/tui/components/suggestions"
)

type PlantFormModel struct {
	Name        string
	Frequency   string
	Acquired    string
	LastWatered string
}

type Model struct {
	ctx   *cli.Context
	state constants.SessionState
	keys  KeyMap
	help  help.Model

	records []models.PlantRecord
	history []models.HistoryEntry

	dueModel         dueview.Model
	plantsModel      plantlist.Model
	suggestionsModel suggestions.Model

	form      *huh.Form
	plantForm *PlantFormModel
	formError string

	plantToRemove models.PlantID
	statusMsg     string

	quitting bool
	width    int
	height   int
}

func NewModel(ctx *cli.Context) Model {
	records, err := ctx.Store.ReadPlants()
	if err != nil {
		records = []models.PlantRecord{}
	}
	history, err := ctx.Store.ReadHistory()
	if err != nil {
		history = []models.HistoryEntry{}
	}

	today := ctx.Today()
	m := Model{
		ctx:              ctx,
		state:            constants.StateDue,
		keys:             DefaultKeyMap(),
		help:             help.New(),
		records:          records,
		history:          history,
		dueModel:         dueview.New(schedule.DueList(records, today), 0, 0),
		plantsModel:      plantlist.New(records, today, 0, 0),
		suggestionsModel: suggestions.New(frequency.SuggestFrequencies(history, records), 0, 0),
	}
	return m
}

// refresh recomputes the derived views from the in-memory record set.
func (m *Model) refresh() {
	today := m.ctx.Today()
	m.dueModel.SetDue(schedule.DueList(m.records, today))
	m.plantsModel.SetPlants(m.records, today)
	m.suggestionsModel.SetSuggestions(frequency.SuggestFrequencies(m.history, m.records))
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}
	return [][]key.Binding{global, navigation}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func newPlantForm(f *PlantFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&f.Name),
			huh.NewInput().
				Title("Watering interval (days)").
				Value(&f.Frequency),
			huh.NewInput().
				Title("Acquired on (YYYY-MM-DD, blank for today)").
				Value(&f.Acquired),
			huh.NewInput().
				Title("Last watered (YYYY-MM-DD, optional)").
				Value(&f.LastWatered),
		),
	)
}
