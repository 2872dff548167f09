package update

import (
	"fmt"
	"strings"

	"github.com/fu0730/ai-life-planner/internal/model"
	"github.com/fu0730/ai-life-planner/internal/views"
)

func (m Model) View() string {
	if m.Quitting {
		return "bye\n"
	}
	m.syncBubbleData()

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	if m.loading {
		status = strings.TrimSpace(m.loadSpinner.View() + " loading " + status)
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewToday:
		leftPane = m.renderTodayPane()
		rightPane = m.renderMemoPane()
	case ViewTasks:
		leftPane = m.renderTasksPane()
	case ViewCalendar:
		leftPane = m.renderCalendarPane()
	case ViewReview:
		leftPane = m.renderReviewPane()
	}

	if m.CelebrationActive {
		rightPane = views.RenderCelebration(m.Agenda.TotalItems())
	}
	if m.QuickAddActive {
		rightPane = views.RenderQuickAdd(m.quickAddInput.View())
	}
	if m.ReflectActive {
		rightPane = views.RenderReflectionEditor(views.ReflectionEditorData{
			Date:       model.DateOf(m.Day),
			Completed:  m.Agenda.CompletedItems(),
			Total:      m.Agenda.TotalItems(),
			EditorView: m.reflectArea.View(),
		})
	}
	if m.SettingsActive {
		rightPane = views.RenderSettingsPanel(views.SettingsPanelData{
			Theme:        string(m.Settings.Theme),
			SoundEnabled: m.Settings.SoundEnabled,
			SortBy:       string(m.Settings.SortBy),
		})
	}
	if m.HelpVisible {
		rightPane = strings.TrimSpace(rightPane + "\n\n" + m.renderHelpIfVisible())
	}

	header := fmt.Sprintf("lifeplanner | %s | %s | %d%% done",
		m.CurrentView, model.DateOf(m.Day), m.Agenda.Percentage())
	if m.Agenda.AllDone() {
		header += " | all done!"
	}

	return views.RenderApp(views.AppData{
		Header:     header,
		LeftPane:   leftPane,
		RightPane:  rightPane,
		StatusLine: status,
		Footer: fmt.Sprintf("keys: %s today | %s tasks | %s cal | %s review | %s add | %s reflect | %s settings | %s help | %s quit",
			m.Keys.Today, m.Keys.Tasks, m.Keys.Calendar, m.Keys.Review,
			m.Keys.QuickAdd, m.Keys.Reflect, m.Keys.Settings, m.Keys.Help, m.Keys.Quit),
		Dark: m.Settings.Theme == model.ThemeDark,
	})
}

func (m Model) renderTodayPane() string {
	selectedID := ""
	if row, ok := m.currentRow(); ok {
		selectedID = row.ID
	}
	groups := make([]views.BlockGroupData, 0, len(m.Groups))
	for _, group := range m.Groups {
		g := views.BlockGroupData{Block: blockLabel(group.Block)}
		for _, routine := range group.Routines {
			g.Items = append(g.Items, views.TodayItemData{
				ID:      routine.ID,
				Title:   routine.Title,
				Routine: true,
				Done:    m.Agenda.RoutineDone(routine.ID),
				Minutes: routine.EstimatedMinutes,
			})
		}
		for _, task := range group.Tasks {
			g.Items = append(g.Items, views.TodayItemData{
				ID:       task.ID,
				Title:    task.Title,
				Done:     task.Completed,
				Priority: string(task.Priority),
				DueDate:  task.DueDate,
			})
		}
		groups = append(groups, g)
	}
	return views.RenderTodayPanel(views.TodayPanelData{
		Date:         model.DateOf(m.Day),
		Groups:       groups,
		SelectedID:   selectedID,
		ProgressView: m.dayProgress.ViewAs(float64(m.Agenda.Percentage()) / 100),
		Percentage:   m.Agenda.Percentage(),
		AllDone:      m.Agenda.AllDone(),
	})
}

func (m Model) renderMemoPane() string {
	row, ok := m.currentRow()
	if !ok || strings.TrimSpace(row.Memo) == "" {
		return "memo:\n(no memo)"
	}
	return "memo:\n" + m.memoViewport.View()
}

func (m Model) renderTasksPane() string {
	names := make([]string, 0, len(m.Tasks.Categories))
	for i, cat := range m.Tasks.Categories {
		name := cat.Name
		if i == m.Tasks.CatCursor {
			name = "[" + name + "]"
		}
		names = append(names, name)
	}
	return views.RenderTasksPanel(views.TasksPanelData{
		CategoryLine: strings.Join(names, "  "),
		ListView:     m.tasksList.View(),
		SortBy:       string(m.Settings.SortBy),
	})
}

func (m Model) renderCalendarPane() string {
	return views.RenderCalendarPanel(views.CalendarPanelData{
		MonthLabel: m.Calendar.FocusMonth.Format("January 2006"),
		TableView:  m.calendarTable.View(),
	})
}

func (m Model) renderReviewPane() string {
	notes := make([]views.ReflectionNoteData, 0, len(m.Review.RecentNotes))
	for _, row := range m.Review.RecentNotes {
		notes = append(notes, views.ReflectionNoteData{
			Date: row.Date,
			Note: views.RenderMarkdown(row.Note, string(m.Settings.Theme)),
		})
	}
	return views.RenderReviewPanel(views.ReviewPanelData{
		Week: views.PeriodSummaryData{
			Completed:  m.Review.Week.Completed,
			Total:      m.Review.Week.Total,
			Percentage: m.Review.Week.Percentage,
		},
		Month: views.PeriodSummaryData{
			Completed:  m.Review.Month.Completed,
			Total:      m.Review.Month.Total,
			Percentage: m.Review.Month.Percentage,
		},
		Notes: notes,
	})
}

func blockLabel(block model.TimeBlock) string {
	if block == model.BlockNone {
		return "Unscheduled"
	}
	return strings.ToUpper(string(block)[:1]) + string(block)[1:]
}
