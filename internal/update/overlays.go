package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fu0730/ai-life-planner/internal/commands"
	"github.com/fu0730/ai-life-planner/internal/model"
)

func (m Model) handleQuickAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.QuickAddActive = false
		m.quickAddInput.Blur()
		m.Status = StatusBar{}
		return m, nil
	case "enter":
		input := m.quickAddInput.Value()
		m.QuickAddActive = false
		m.quickAddInput.Blur()
		m.quickAddInput.SetValue("")
		return m.dispatchCommand(input)
	}
	var cmd tea.Cmd
	m.quickAddInput, cmd = m.quickAddInput.Update(msg)
	return m, cmd
}

// dispatchCommand parses the quick-add line and routes it to the planner
// core. Parse failures land in the status bar instead of closing the app.
func (m Model) dispatchCommand(input string) (tea.Model, tea.Cmd) {
	cmd, err := commands.Parse(input)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	now := m.clock()
	switch cmd.Type {
	case commands.TypeAdd:
		return m, addTaskCmd(m.svc, *cmd.Add, now)
	case commands.TypeRoutine:
		return m, addRoutineCmd(m.svc, *cmd.Routine, now)
	case commands.TypeReflect:
		m.ReflectActive = true
		m.reflectArea.SetValue(cmd.Reflect.Note)
		m.reflectArea.Focus()
		return m, nil
	case commands.TypeSort:
		m.Settings.SortBy = cmd.Sort.By
		return m, tea.Batch(
			updateSettingsCmd(m.svc, m.Settings),
			loadAgendaCmd(m.svc, m.Day, m.Settings.SortBy),
		)
	}
	return m, nil
}

func (m Model) handleReflectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.ReflectActive = false
		m.reflectArea.Blur()
		m.Status = StatusBar{Text: "reflection discarded"}
		return m, nil
	case "ctrl+s":
		note := strings.TrimSpace(m.reflectArea.Value())
		m.ReflectActive = false
		m.reflectArea.Blur()
		m.reflectArea.SetValue("")
		return m, saveReflectionCmd(
			m.svc, m.Day,
			m.Agenda.CompletedItems(), m.Agenda.TotalItems(),
			note, m.clock(),
		)
	}
	var cmd tea.Cmd
	m.reflectArea, cmd = m.reflectArea.Update(msg)
	return m, cmd
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "s":
		m.SettingsActive = false
		return m, nil
	case "t":
		if m.Settings.Theme == model.ThemeLight {
			m.Settings.Theme = model.ThemeDark
		} else {
			m.Settings.Theme = model.ThemeLight
		}
		return m, updateSettingsCmd(m.svc, m.Settings)
	case "n":
		m.Settings.SoundEnabled = !m.Settings.SoundEnabled
		return m, updateSettingsCmd(m.svc, m.Settings)
	case "o":
		m.Settings.SortBy = nextSortBy(m.Settings.SortBy)
		return m, tea.Batch(
			updateSettingsCmd(m.svc, m.Settings),
			loadAgendaCmd(m.svc, m.Day, m.Settings.SortBy),
		)
	}
	return m, nil
}

// handleCelebrationKey resolves the all-done prompt: plan more (opens the
// quick-add overlay) or rest (closes the day with the reflection editor).
func (m Model) handleCelebrationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "m":
		m.CelebrationActive = false
		m.CelebrationChoice = "more"
		m.QuickAddActive = true
		m.quickAddInput.SetValue("")
		m.quickAddInput.Focus()
		m.Status = StatusBar{Text: "nice, what's next?"}
		return m, nil
	case "z":
		m.CelebrationActive = false
		m.CelebrationChoice = "rest"
		m.ReflectActive = true
		m.reflectArea.Focus()
		m.Status = StatusBar{Text: "enjoy the rest of the day"}
		return m, nil
	case "esc":
		m.CelebrationActive = false
		return m, nil
	}
	return m, nil
}

func nextSortBy(by model.SortBy) model.SortBy {
	switch by {
	case model.SortByPriority:
		return model.SortByDueDate
	case model.SortByDueDate:
		return model.SortByCreatedAt
	default:
		return model.SortByPriority
	}
}
