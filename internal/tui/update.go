package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/jesswhitlock/verdant/internal/constants"
	"github.com/jesswhitlock/verdant/internal/models"
	"github.com/jesswhitlock/verdant/internal/tui/components/dueview"
	"github.com/jesswhitlock/verdant/internal/tui/components/plantlist"
	"github.com/jesswhitlock/verdant/internal/tui/components/suggestions"
)

const numMainTabs = 3

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.state == constants.StateAddPlant {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.formError = ""
			m.state = constants.StatePlants
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			rec := models.PlantRecord{
				Name:            strings.TrimSpace(m.plantForm.Name),
				AcquisitionDate: strings.TrimSpace(m.plantForm.Acquired),
				LastWatered:     strings.TrimSpace(m.plantForm.LastWatered),
			}
			if rec.AcquisitionDate == "" {
				rec.AcquisitionDate = m.ctx.Today()
			}
			if freq, err := strconv.Atoi(strings.TrimSpace(m.plantForm.Frequency)); err == nil {
				rec.FrequencyDays = freq
			}

			next, err := m.ctx.Actions.AddPlant(m.records, rec)
			if err != nil {
				// Stay in the form so the user can correct the input.
				m.formError = err.Error()
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}

			m.records = next
			m.ctx.SavePlants(m.records)
			m.refresh()
			m.formError = ""
			m.statusMsg = fmt.Sprintf("Added %s", rec.Name)
			m.state = constants.StatePlants
		case huh.StateAborted:
			m.formError = ""
			m.state = constants.StatePlants
		}
		return m, tea.Batch(cmds...)
	}

	if m.state == constants.StateConfirmRemove {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				m.ctx.PerformAutomaticBackup()
				next, removed, err := m.ctx.Actions.RemovePlant(m.records, m.plantToRemove)
				if err == nil {
					m.records = next
					if err := m.ctx.Store.AppendGraveyard(models.GraveyardEntry{
						PlantName:       removed.Name,
						AcquisitionDate: removed.AcquisitionDate,
						RIPDate:         m.ctx.Today(),
					}); err != nil {
						m.statusMsg = fmt.Sprintf("Graveyard entry not recorded: %v", err)
					} else {
						m.statusMsg = fmt.Sprintf("Removed %s 🪦", removed.Name)
					}
					m.ctx.SavePlants(m.records)
					m.refresh()
				}
				m.state = constants.StatePlants
				m.plantToRemove = models.PlantID{}
			case "n", "N", "esc", "q":
				m.state = constants.StatePlants
				m.plantToRemove = models.PlantID{}
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		listHeight := msg.Height - 4 // tabs + status + help

		h, v := docStyle.GetFrameSize()
		m.dueModel.SetSize(msg.Width-h, listHeight-v)
		m.plantsModel.SetSize(msg.Width-h, listHeight-v)
		m.suggestionsModel.SetSize(msg.Width-h, listHeight-v)

	case dueview.WaterPlantMsg:
		return m.waterPlant(msg.ID), nil

	case plantlist.WaterPlantMsg:
		return m.waterPlant(msg.ID), nil

	case dueview.SnoozePlantMsg:
		next, err := m.ctx.Actions.Snooze(m.records, msg.ID, m.ctx.Today())
		if err == nil {
			m.records = next
			m.ctx.SavePlants(m.records)
			m.refresh()
			m.statusMsg = fmt.Sprintf("Snoozed %s", msg.ID.Name)
		}
		return m, nil

	case plantlist.AddPlantMsg:
		m.plantForm = &PlantFormModel{
			Frequency: strconv.Itoa(constants.DefaultFrequencyDays),
		}
		m.form = newPlantForm(m.plantForm)
		m.state = constants.StateAddPlant
		return m, m.form.Init()

	case plantlist.RemovePlantMsg:
		m.plantToRemove = msg.ID
		m.state = constants.StateConfirmRemove
		return m, nil

	case suggestions.AcceptSuggestionMsg:
		s := msg.Suggestion
		next, err := m.ctx.Actions.AcceptSuggestion(m.records, s.PlantID(), s.AverageGapDays)
		if err == nil {
			m.records = next
			m.ctx.SavePlants(m.records)
			m.refresh()
			m.statusMsg = fmt.Sprintf("Updated %s to every %d days", s.Name, s.AverageGapDays)
		}
		return m, nil

	case suggestions.DismissSuggestionMsg:
		s := msg.Suggestion
		next, err := m.ctx.Actions.DismissSuggestion(m.records, s.PlantID(), s.AverageGapDays)
		if err == nil {
			m.records = next
			m.ctx.SavePlants(m.records)
			m.refresh()
			m.statusMsg = fmt.Sprintf("Dismissed the %d-day suggestion for %s", s.AverageGapDays, s.Name)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % numMainTabs
			m.statusMsg = ""
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + numMainTabs) % numMainTabs
			m.statusMsg = ""
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateDue:
		m.dueModel, cmd = m.dueModel.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StatePlants:
		m.plantsModel, cmd = m.plantsModel.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateSuggestions:
		m.suggestionsModel, cmd = m.suggestionsModel.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) waterPlant(id models.PlantID) Model {
	next, entry, err := m.ctx.Actions.MarkWatered(m.records, id, m.ctx.Today())
	if err != nil {
		return m
	}

	m.records = next
	m.history = append(m.history, entry)
	m.ctx.SavePlants(m.records)
	m.ctx.AppendHistory(entry)
	m.refresh()
	m.statusMsg = fmt.Sprintf("Watered %s 💧", id.Name)
	return m
}
