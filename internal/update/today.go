package update

import tea "github.com/charmbracelet/bubbletea"

func (m Model) handleTodayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Rows)-1 {
			m.Cursor++
		}
	case " ", "enter":
		row, ok := m.currentRow()
		if !ok {
			return m, nil
		}
		now := m.clock()
		if row.Kind == RowRoutine {
			return m, toggleRoutineCmd(m.svc, row.ID, m.Day, now)
		}
		return m, toggleTaskCmd(m.svc, row.ID, now)
	case "d":
		row, ok := m.currentRow()
		if !ok || row.Kind != RowTask {
			return m, nil
		}
		return m, deleteTaskCmd(m.svc, row.ID)
	}
	return m, nil
}
