package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/fu0730/ai-life-planner/internal/agenda"
	"github.com/fu0730/ai-life-planner/internal/model"
	"github.com/fu0730/ai-life-planner/internal/scheduler"
)

type View string

const (
	ViewToday    View = "Today"
	ViewTasks    View = "Tasks"
	ViewCalendar View = "Calendar"
	ViewReview   View = "Review"
)

type RowKind string

const (
	RowTask    RowKind = "task"
	RowRoutine RowKind = "routine"
)

// todayRow is one selectable line on the today screen: a routine or a task
// inside its time block.
type todayRow struct {
	Kind     RowKind
	ID       string
	Title    string
	Block    model.TimeBlock
	Done     bool
	Priority model.Priority
	DueDate  string
	Minutes  int
	Memo     string
}

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Today    string
	Tasks    string
	Calendar string
	Review   string
	QuickAdd string
	Reflect  string
	Settings string
	Help     string
	Quit     string
}

type TasksState struct {
	Categories []model.Category
	CatCursor  int
	Tasks      []model.Task
	Cursor     int
}

type CalendarState struct {
	// FocusMonth is any instant inside the month being shown.
	FocusMonth  time.Time
	Reflections map[string]model.DailyReflection
	DueByDate   map[string][]model.Task
}

type Model struct {
	CurrentView View
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	Day    time.Time
	Agenda agenda.Agenda
	Groups []agenda.BlockGroup
	Rows   []todayRow
	Cursor int

	Tasks    TasksState
	Calendar CalendarState
	Review   agenda.ReviewSummary
	Settings model.Settings

	QuickAddActive bool
	ReflectActive  bool
	SettingsActive bool
	HelpVisible    bool

	// CelebrationActive is raised when the day flips to all done; the user
	// picks between planning more or calling it a day. Session state only,
	// never persisted.
	CelebrationActive bool
	CelebrationChoice string

	svc    *agenda.Service
	engine *scheduler.Engine
	chime  agenda.Chime
	clock  func() time.Time

	// Bubble components used for rich TUI controls
	tasksList     list.Model
	calendarTable table.Model
	quickAddInput textinput.Model
	reflectArea   textarea.Model
	dayProgress   progress.Model
	loadSpinner   spinner.Model
	helpModel     help.Model
	memoViewport  viewport.Model
	loading       bool
	pendingChime  bool
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type AgendaLoadedMsg struct {
	Agenda agenda.Agenda
	Groups []agenda.BlockGroup
}

type TasksLoadedMsg struct {
	Categories []model.Category
	Tasks      []model.Task
}

type CalendarLoadedMsg struct {
	Reflections []model.DailyReflection
	DueTasks    []model.Task
}

type ReviewLoadedMsg struct {
	Summary agenda.ReviewSummary
}

type SettingsLoadedMsg struct {
	Settings model.Settings
}

type ToggleAppliedMsg struct {
	Completed bool
}

type ReflectionSavedMsg struct{}

type ClockMsg struct {
	Event scheduler.Event
}

func NewModel(svc *agenda.Service, engine *scheduler.Engine, chime agenda.Chime) Model {
	if chime == nil {
		chime = agenda.NoopChime{}
	}
	m := Model{
		CurrentView: ViewToday,
		Settings:    model.DefaultSettings(),
		Keys: GlobalKeyMap{
			Today:    "1",
			Tasks:    "2",
			Calendar: "3",
			Review:   "4",
			QuickAdd: "/",
			Reflect:  "r",
			Settings: "s",
			Help:     "?",
			Quit:     "q",
		},
		svc:    svc,
		engine: engine,
		chime:  chime,
		clock:  time.Now,
	}
	m.Day = m.clock()
	m.Calendar.FocusMonth = m.Day
	m.Calendar.Reflections = make(map[string]model.DailyReflection)
	m.loading = true
	m.initBubbleComponents()
	return m
}

func (m *Model) initBubbleComponents() {
	m.tasksList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 12)
	m.tasksList.Title = "Tasks"
	m.tasksList.SetShowHelp(false)
	m.tasksList.SetFilteringEnabled(false)

	cols := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Due", Width: 16},
		{Title: "Score", Width: 8},
		{Title: "Pct", Width: 5},
	}
	m.calendarTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(10))

	m.quickAddInput = textinput.New()
	m.quickAddInput.Prompt = "> "
	m.quickAddInput.Placeholder = "add Buy milk !high due:2026-09-05 block:afternoon"
	m.quickAddInput.CharLimit = 256
	m.quickAddInput.Width = 52

	m.reflectArea = textarea.New()
	m.reflectArea.SetWidth(54)
	m.reflectArea.SetHeight(6)
	m.reflectArea.ShowLineNumbers = false
	m.reflectArea.Placeholder = "How did the day go?"

	m.dayProgress = progress.New(progress.WithDefaultGradient())

	m.loadSpinner = spinner.New()
	m.loadSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
	m.memoViewport = viewport.New(54, 10)
}

// rebuildRows flattens the block groups into the selectable line sequence
// the today screen navigates over. Routines come before tasks inside each
// block, matching the render order.
func (m *Model) rebuildRows() {
	rows := make([]todayRow, 0, m.Agenda.TotalItems())
	for _, group := range m.Groups {
		for _, routine := range group.Routines {
			rows = append(rows, todayRow{
				Kind:    RowRoutine,
				ID:      routine.ID,
				Title:   routine.Title,
				Block:   group.Block,
				Done:    m.Agenda.RoutineDone(routine.ID),
				Minutes: routine.EstimatedMinutes,
			})
		}
		for _, task := range group.Tasks {
			rows = append(rows, todayRow{
				Kind:     RowTask,
				ID:       task.ID,
				Title:    task.Title,
				Block:    group.Block,
				Done:     task.Completed,
				Priority: task.Priority,
				DueDate:  task.DueDate,
				Memo:     task.Memo,
			})
		}
	}
	m.Rows = rows
	if m.Cursor >= len(rows) {
		m.Cursor = len(rows) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m Model) currentRow() (todayRow, bool) {
	if len(m.Rows) == 0 || m.Cursor < 0 || m.Cursor >= len(m.Rows) {
		return todayRow{}, false
	}
	return m.Rows[m.Cursor], true
}

func (m Model) currentCategory() (model.Category, bool) {
	if len(m.Tasks.Categories) == 0 {
		return model.Category{}, false
	}
	i := m.Tasks.CatCursor
	if i < 0 || i >= len(m.Tasks.Categories) {
		return model.Category{}, false
	}
	return m.Tasks.Categories[i], true
}

func (m Model) currentTask() (model.Task, bool) {
	if len(m.Tasks.Tasks) == 0 || m.Tasks.Cursor < 0 || m.Tasks.Cursor >= len(m.Tasks.Tasks) {
		return model.Task{}, false
	}
	return m.Tasks.Tasks[m.Tasks.Cursor], true
}
