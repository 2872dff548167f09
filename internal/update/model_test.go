package update

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fu0730/ai-life-planner/internal/agenda"
	"github.com/fu0730/ai-life-planner/internal/model"
	"github.com/fu0730/ai-life-planner/internal/scheduler"
)

type recordingChime struct {
	items int
	all   int
}

func (c *recordingChime) ItemCompleted() { c.items++ }
func (c *recordingChime) AllCompleted()  { c.all++ }

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel(nil, nil, nil)
	if m.CurrentView != ViewToday {
		t.Fatalf("expected default view %q, got %q", ViewToday, m.CurrentView)
	}
	if m.Settings.SortBy != model.SortByPriority {
		t.Fatalf("expected priority sort, got %q", m.Settings.SortBy)
	}
	if m.Keys.Quit != "q" {
		t.Fatalf("expected quit key q, got %q", m.Keys.Quit)
	}
}

func TestUpdateKeySwitchesView(t *testing.T) {
	m := NewModel(nil, nil, nil)
	updated, _ := m.Update(keyMsg("2"))
	next := updated.(Model)
	if next.CurrentView != ViewTasks {
		t.Fatalf("expected tasks view, got %q", next.CurrentView)
	}

	updated, _ = next.Update(keyMsg("4"))
	next = updated.(Model)
	if next.CurrentView != ViewReview {
		t.Fatalf("expected review view, got %q", next.CurrentView)
	}
}

func TestUpdateStatusAndError(t *testing.T) {
	m := NewModel(nil, nil, nil)
	updated, _ := m.Update(AppErrorMsg{Err: errors.New("boom")})
	next := updated.(Model)
	if next.LastError == nil || next.LastError.Error() != "boom" {
		t.Fatalf("expected last error boom, got: %v", next.LastError)
	}
	if !next.Status.IsError || next.Status.Text != "boom" {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}

	updated, _ = next.Update(ClearStatusMsg{})
	next = updated.(Model)
	if next.Status.Text != "" || next.Status.IsError {
		t.Fatalf("expected cleared status, got: %+v", next.Status)
	}
}

func TestQuickAddParseErrorStaysInStatusBar(t *testing.T) {
	m := NewModel(nil, nil, nil)
	updated, _ := m.Update(keyMsg("/"))
	next := updated.(Model)
	if !next.QuickAddActive {
		t.Fatal("expected quick add overlay active")
	}

	updated, _ = next.Update(keyMsg("enter"))
	next = updated.(Model)
	if next.QuickAddActive {
		t.Fatal("expected overlay closed after submit")
	}
	if !next.Status.IsError || !strings.Contains(next.Status.Text, "empty_input") {
		t.Fatalf("expected empty_input error status, got: %+v", next.Status)
	}
}

func TestReflectionOverlayDiscard(t *testing.T) {
	m := NewModel(nil, nil, nil)
	updated, _ := m.Update(keyMsg("r"))
	next := updated.(Model)
	if !next.ReflectActive {
		t.Fatal("expected reflection editor active")
	}

	updated, _ = next.Update(keyMsg("esc"))
	next = updated.(Model)
	if next.ReflectActive {
		t.Fatal("expected reflection editor closed")
	}
	if next.Status.Text != "reflection discarded" {
		t.Fatalf("unexpected status: %+v", next.Status)
	}
}

func TestSettingsOverlayTogglesTheme(t *testing.T) {
	m := NewModel(nil, nil, nil)
	updated, _ := m.Update(keyMsg("s"))
	next := updated.(Model)
	if !next.SettingsActive {
		t.Fatal("expected settings overlay active")
	}

	updated, _ = next.Update(keyMsg("t"))
	next = updated.(Model)
	if next.Settings.Theme != model.ThemeDark {
		t.Fatalf("expected dark theme, got %q", next.Settings.Theme)
	}

	updated, _ = next.Update(keyMsg("n"))
	next = updated.(Model)
	if next.Settings.SoundEnabled {
		t.Fatal("expected sound toggled off")
	}

	updated, _ = next.Update(keyMsg("esc"))
	next = updated.(Model)
	if next.SettingsActive {
		t.Fatal("expected settings overlay closed")
	}
}

func TestAgendaLoadedRebuildsRowsAndChimes(t *testing.T) {
	chime := &recordingChime{}
	m := NewModel(nil, nil, chime)

	done := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: "t1", Title: "Open", Priority: model.PriorityHigh, Block: model.BlockMorning, CreatedAt: done},
		{ID: "t2", Title: "Done", Priority: model.PriorityLow, Block: model.BlockMorning, Completed: true, CompletedAt: &done, CreatedAt: done},
	}
	snap := agenda.Agenda{Tasks: tasks}
	groups := agenda.GroupByBlock(tasks, nil, model.SortByPriority)

	updated, _ := m.Update(ToggleAppliedMsg{Completed: true})
	next := updated.(Model)
	updated, _ = next.Update(AgendaLoadedMsg{Agenda: snap, Groups: groups})
	next = updated.(Model)

	if len(next.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(next.Rows))
	}
	if next.Rows[0].ID != "t1" || next.Rows[1].ID != "t2" {
		t.Fatalf("unexpected row order: %+v", next.Rows)
	}
	if chime.items != 1 || chime.all != 0 {
		t.Fatalf("expected one item chime, got items=%d all=%d", chime.items, chime.all)
	}
}

func TestChimeSilencedWhenSoundDisabled(t *testing.T) {
	chime := &recordingChime{}
	m := NewModel(nil, nil, chime)
	m.Settings.SoundEnabled = false

	updated, _ := m.Update(ToggleAppliedMsg{Completed: true})
	next := updated.(Model)
	if _, cmd := next.Update(AgendaLoadedMsg{}); cmd != nil {
		t.Fatal("expected no follow-up command")
	}
	if chime.items != 0 || chime.all != 0 {
		t.Fatalf("expected silence, got items=%d all=%d", chime.items, chime.all)
	}
}

func TestCelebrationPromptOnAllDone(t *testing.T) {
	m := NewModel(nil, nil, nil)
	done := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: "t1", Title: "Only", Priority: model.PriorityHigh, Completed: true, CompletedAt: &done, CreatedAt: done},
	}
	snap := agenda.Agenda{Tasks: tasks}

	updated, _ := m.Update(ToggleAppliedMsg{Completed: true})
	next := updated.(Model)
	updated, _ = next.Update(AgendaLoadedMsg{Agenda: snap, Groups: agenda.GroupByBlock(tasks, nil, model.SortByPriority)})
	next = updated.(Model)
	if !next.CelebrationActive {
		t.Fatal("expected celebration prompt when the day flips to all done")
	}

	updated, _ = next.Update(keyMsg("m"))
	next = updated.(Model)
	if next.CelebrationActive || next.CelebrationChoice != "more" || !next.QuickAddActive {
		t.Fatalf("expected more-choice into quick add, got: active=%v choice=%q", next.CelebrationActive, next.CelebrationChoice)
	}
}

func TestClockRolloverAdvancesDay(t *testing.T) {
	m := NewModel(nil, nil, nil)
	tomorrow := time.Date(2026, 9, 2, 0, 0, 5, 0, time.UTC)
	m.clock = func() time.Time { return tomorrow }

	updated, _ := m.Update(ClockMsg{Event: scheduler.Event{Kind: scheduler.KindDayRollover, At: tomorrow}})
	next := updated.(Model)
	if model.DateOf(next.Day) != "2026-09-02" {
		t.Fatalf("expected day advanced, got %s", model.DateOf(next.Day))
	}
	if !strings.Contains(next.Status.Text, "2026-09-02") {
		t.Fatalf("unexpected status: %+v", next.Status)
	}
}

func TestClockReflectionPromptOpensEditor(t *testing.T) {
	m := NewModel(nil, nil, nil)
	updated, _ := m.Update(ClockMsg{Event: scheduler.Event{Kind: scheduler.KindReflectionPrompt, At: time.Now()}})
	next := updated.(Model)
	if !next.ReflectActive {
		t.Fatal("expected reflection editor opened by evening prompt")
	}
}

func TestNextSortByCycles(t *testing.T) {
	order := []model.SortBy{model.SortByPriority, model.SortByDueDate, model.SortByCreatedAt, model.SortByPriority}
	for i := 0; i < len(order)-1; i++ {
		if got := nextSortBy(order[i]); got != order[i+1] {
			t.Fatalf("nextSortBy(%q) = %q, want %q", order[i], got, order[i+1])
		}
	}
}

func TestQuitKey(t *testing.T) {
	m := NewModel(nil, nil, nil)
	updated, cmd := m.Update(keyMsg("q"))
	next := updated.(Model)
	if !next.Quitting {
		t.Fatal("expected quitting state")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}
