package update

import tea "github.com/charmbracelet/bubbletea"

func (m Model) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if m.Tasks.CatCursor > 0 {
			m.Tasks.CatCursor--
			m.Tasks.Cursor = 0
			return m, loadTasksCmd(m.svc, m.selectedCategoryID(), m.Settings.SortBy)
		}
	case "right", "l":
		if m.Tasks.CatCursor < len(m.Tasks.Categories)-1 {
			m.Tasks.CatCursor++
			m.Tasks.Cursor = 0
			return m, loadTasksCmd(m.svc, m.selectedCategoryID(), m.Settings.SortBy)
		}
	case "up", "k":
		if m.Tasks.Cursor > 0 {
			m.Tasks.Cursor--
		}
	case "down", "j":
		if m.Tasks.Cursor < len(m.Tasks.Tasks)-1 {
			m.Tasks.Cursor++
		}
	case " ", "enter":
		if task, ok := m.currentTask(); ok {
			return m, toggleTaskCmd(m.svc, task.ID, m.clock())
		}
	case "d":
		if task, ok := m.currentTask(); ok {
			return m, deleteTaskCmd(m.svc, task.ID)
		}
	case "o":
		m.Settings.SortBy = nextSortBy(m.Settings.SortBy)
		return m, tea.Batch(
			updateSettingsCmd(m.svc, m.Settings),
			loadTasksCmd(m.svc, m.selectedCategoryID(), m.Settings.SortBy),
		)
	}
	return m, nil
}
