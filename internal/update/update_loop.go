package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fu0730/ai-life-planner/internal/model"
	"github.com/fu0730/ai-life-planner/internal/scheduler"
	"github.com/fu0730/ai-life-planner/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		loadSettingsCmd(m.svc),
		loadAgendaCmd(m.svc, m.Day, m.Settings.SortBy),
		m.loadSpinner.Tick,
	}
	if m.engine != nil {
		cmds = append(cmds, waitForClockCmd(m.engine.C()))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer m.syncBubbleData()

	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.QuickAddActive {
			return m.handleQuickAddKey(typed)
		}
		if m.ReflectActive {
			return m.handleReflectKey(typed)
		}
		if m.SettingsActive {
			return m.handleSettingsKey(typed)
		}
		if m.CelebrationActive {
			return m.handleCelebrationKey(typed)
		}

		switch typed.String() {
		case m.Keys.Today:
			m.CurrentView = ViewToday
			return m, loadAgendaCmd(m.svc, m.Day, m.Settings.SortBy)
		case m.Keys.Tasks:
			m.CurrentView = ViewTasks
			return m, loadTasksCmd(m.svc, m.selectedCategoryID(), m.Settings.SortBy)
		case m.Keys.Calendar:
			m.CurrentView = ViewCalendar
			return m, loadCalendarCmd(m.svc, m.Calendar.FocusMonth)
		case m.Keys.Review:
			m.CurrentView = ViewReview
			return m, loadReviewCmd(m.svc, m.Day)
		case m.Keys.QuickAdd:
			m.QuickAddActive = true
			m.quickAddInput.SetValue("")
			m.quickAddInput.Focus()
			m.Status = StatusBar{Text: "quick add active"}
			return m, nil
		case m.Keys.Reflect:
			m.ReflectActive = true
			m.reflectArea.SetValue("")
			m.reflectArea.Focus()
			m.Status = StatusBar{Text: "reflection editor: ctrl+s save, esc cancel"}
			return m, nil
		case m.Keys.Settings:
			m.SettingsActive = true
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewToday:
			return m.handleTodayKey(typed)
		case ViewTasks:
			return m.handleTasksKey(typed)
		case ViewCalendar:
			return m.handleCalendarKey(typed)
		}
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.loadSpinner, cmd = m.loadSpinner.Update(typed)
			return m, cmd
		}

	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, loadAgendaCmd(m.svc, m.Day, m.Settings.SortBy)

	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil

	case AppErrorMsg:
		m.LastError = typed.Err
		m.loading = false
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil

	case AgendaLoadedMsg:
		wasAllDone := m.Agenda.AllDone()
		m.Agenda = typed.Agenda
		m.Groups = typed.Groups
		m.loading = false
		m.rebuildRows()
		if m.pendingChime && m.Settings.SoundEnabled {
			if m.Agenda.AllDone() {
				m.chime.AllCompleted()
			} else {
				m.chime.ItemCompleted()
			}
		}
		if m.pendingChime && !wasAllDone && m.Agenda.AllDone() {
			m.CelebrationActive = true
			m.CelebrationChoice = ""
		}
		if !m.Agenda.AllDone() {
			m.CelebrationActive = false
			m.CelebrationChoice = ""
		}
		m.pendingChime = false
		return m, nil

	case TasksLoadedMsg:
		m.Tasks.Categories = typed.Categories
		m.Tasks.Tasks = typed.Tasks
		if m.Tasks.CatCursor >= len(typed.Categories) {
			m.Tasks.CatCursor = 0
		}
		if m.Tasks.Cursor >= len(typed.Tasks) {
			m.Tasks.Cursor = 0
		}
		return m, nil

	case CalendarLoadedMsg:
		m.Calendar.Reflections = make(map[string]model.DailyReflection, len(typed.Reflections))
		for _, row := range typed.Reflections {
			m.Calendar.Reflections[row.Date] = row
		}
		m.Calendar.DueByDate = make(map[string][]model.Task)
		for _, task := range typed.DueTasks {
			m.Calendar.DueByDate[task.DueDate] = append(m.Calendar.DueByDate[task.DueDate], task)
		}
		return m, nil

	case ReviewLoadedMsg:
		m.Review = typed.Summary
		return m, nil

	case SettingsLoadedMsg:
		changed := m.Settings.SortBy != typed.Settings.SortBy
		m.Settings = typed.Settings
		if changed {
			return m, loadAgendaCmd(m.svc, m.Day, m.Settings.SortBy)
		}
		return m, nil

	case ToggleAppliedMsg:
		m.pendingChime = typed.Completed
		cmds := []tea.Cmd{loadAgendaCmd(m.svc, m.Day, m.Settings.SortBy)}
		if m.CurrentView == ViewTasks {
			cmds = append(cmds, loadTasksCmd(m.svc, m.selectedCategoryID(), m.Settings.SortBy))
		}
		return m, tea.Batch(cmds...)

	case ReflectionSavedMsg:
		m.Status = StatusBar{Text: "reflection saved"}
		if m.CurrentView == ViewReview {
			return m, loadReviewCmd(m.svc, m.Day)
		}
		return m, nil

	case ClockMsg:
		return m.handleClockEvent(typed.Event)
	}

	return m, nil
}

func (m Model) handleClockEvent(ev scheduler.Event) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{}
	if m.engine != nil {
		cmds = append(cmds, waitForClockCmd(m.engine.C()))
	}
	switch ev.Kind {
	case scheduler.KindDayRollover:
		m.Day = m.clock()
		m.Status = StatusBar{Text: fmt.Sprintf("new day: %s", model.DateOf(m.Day))}
		cmds = append(cmds, loadAgendaCmd(m.svc, m.Day, m.Settings.SortBy))
		if m.engine != nil {
			_ = m.engine.ScheduleRollover(m.Day)
		}
	case scheduler.KindReflectionPrompt:
		m.ReflectActive = true
		m.reflectArea.Focus()
		m.Status = StatusBar{Text: "evening check-in: how did the day go?"}
		if m.engine != nil {
			_ = m.engine.ScheduleReflectionPrompt(m.clock())
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) syncBubbleData() {
	taskItems := make([]list.Item, 0, len(m.Tasks.Tasks))
	for _, task := range m.Tasks.Tasks {
		desc := string(task.Priority)
		if task.DueDate != "" {
			desc += " due:" + task.DueDate
		}
		if task.Completed {
			desc += " done"
		}
		taskItems = append(taskItems, listItem{title: task.Title, description: desc})
	}
	m.tasksList.SetItems(taskItems)
	if cat, ok := m.currentCategory(); ok {
		m.tasksList.Title = cat.Name
	}
	if len(taskItems) > 0 && m.Tasks.Cursor < len(taskItems) {
		m.tasksList.Select(m.Tasks.Cursor)
	}

	m.syncCalendarTable()

	if row, ok := m.currentRow(); ok && row.Memo != "" {
		m.memoViewport.SetContent(views.RenderMarkdown(row.Memo, string(m.Settings.Theme)))
	} else {
		m.memoViewport.SetContent("")
	}

	pct := float64(m.Agenda.Percentage()) / 100
	_ = m.dayProgress.SetPercent(pct)
}

func isKnownView(v View) bool {
	switch v {
	case ViewToday, ViewTasks, ViewCalendar, ViewReview:
		return true
	default:
		return false
	}
}

func (m Model) selectedCategoryID() string {
	if cat, ok := m.currentCategory(); ok {
		return cat.ID
	}
	return ""
}

