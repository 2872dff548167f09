package update

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fu0730/ai-life-planner/internal/agenda"
	"github.com/fu0730/ai-life-planner/internal/model"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.Calendar.FocusMonth = addMonths(m.Calendar.FocusMonth, -1)
		return m, loadCalendarCmd(m.svc, m.Calendar.FocusMonth)
	case "right", "l":
		m.Calendar.FocusMonth = addMonths(m.Calendar.FocusMonth, 1)
		return m, loadCalendarCmd(m.svc, m.Calendar.FocusMonth)
	case "t":
		m.Calendar.FocusMonth = m.Day
		return m, loadCalendarCmd(m.svc, m.Calendar.FocusMonth)
	}
	return m, nil
}

// addMonths moves to the first of the target month so repeated navigation
// from a day-31 focus cannot skip February.
func addMonths(t time.Time, delta int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(delta), 1, 0, 0, 0, 0, t.Location())
}

func (m *Model) syncCalendarTable() {
	focus := m.Calendar.FocusMonth
	first := time.Date(focus.Year(), focus.Month(), 1, 0, 0, 0, 0, focus.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	rows := make([]table.Row, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		date := fmt.Sprintf("%04d-%02d-%02d", focus.Year(), int(focus.Month()), d)

		due := "-"
		if tasks := m.Calendar.DueByDate[date]; len(tasks) > 0 {
			open := 0
			for _, task := range tasks {
				if !task.Completed {
					open++
				}
			}
			due = fmt.Sprintf("%d task(s), %d open", len(tasks), open)
		}

		score, pct := "-", "-"
		if row, ok := m.Calendar.Reflections[date]; ok {
			score = fmt.Sprintf("%d/%d", row.CompletedCount, row.TotalCount)
			pct = fmt.Sprintf("%d%%", agenda.CompletionPercentage(row.CompletedCount, row.TotalCount))
		}
		rows = append(rows, table.Row{date, due, score, pct})
	}
	m.calendarTable.SetRows(rows)

	today := model.DateOf(m.Day)
	if focus.Year() == m.Day.Year() && focus.Month() == m.Day.Month() {
		for i, row := range rows {
			if row[0] == today {
				m.calendarTable.SetCursor(i)
				break
			}
		}
	}
}
