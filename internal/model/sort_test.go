package model

import (
	"testing"
	"time"
)

func sortFixture(id, title string, p Priority, completed bool, due string, created time.Time) Task {
	t := Task{
		ID:         id,
		Title:      title,
		CategoryID: "cat-1",
		Priority:   p,
		DueDate:    due,
		Completed:  completed,
		CreatedAt:  created,
	}
	if completed {
		done := created.Add(time.Hour)
		t.CompletedAt = &done
	}
	return t
}

func ids(tasks []Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestSortTasksByPriorityCompletedLast(t *testing.T) {
	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	tasks := []Task{
		sortFixture("a", "high open", PriorityHigh, false, "", base),
		sortFixture("b", "low open", PriorityLow, false, "", base),
		sortFixture("c", "medium done", PriorityMedium, true, "", base),
	}
	got := ids(SortTasks(tasks, SortByPriority))
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order: %v", got)
		}
	}
}

func TestSortTasksByDueDateUndatedLast(t *testing.T) {
	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	tasks := []Task{
		sortFixture("undated", "no date", PriorityHigh, false, "", base),
		sortFixture("late", "later", PriorityLow, false, "2026-09-20", base),
		sortFixture("soon", "sooner", PriorityLow, false, "2026-09-02", base),
	}
	got := ids(SortTasks(tasks, SortByDueDate))
	want := []string{"soon", "late", "undated"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order: %v", got)
		}
	}
}

func TestSortTasksByCreatedAtNewestFirst(t *testing.T) {
	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	tasks := []Task{
		sortFixture("old", "old", PriorityHigh, false, "", base),
		sortFixture("new", "new", PriorityLow, false, "", base.Add(2*time.Hour)),
	}
	got := ids(SortTasks(tasks, SortByCreatedAt))
	if got[0] != "new" || got[1] != "old" {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestSortTasksStableOnTies(t *testing.T) {
	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	tasks := []Task{
		sortFixture("first", "tie", PriorityMedium, false, "", base),
		sortFixture("second", "tie", PriorityMedium, false, "", base),
		sortFixture("third", "tie", PriorityMedium, false, "", base),
	}
	got := ids(SortTasks(tasks, SortByPriority))
	want := []string{"first", "second", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ties must keep input order, got: %v", got)
		}
	}
}

func TestSortTasksDoesNotMutateInput(t *testing.T) {
	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	tasks := []Task{
		sortFixture("z", "low", PriorityLow, false, "", base),
		sortFixture("a", "high", PriorityHigh, false, "", base),
	}
	_ = SortTasks(tasks, SortByPriority)
	if tasks[0].ID != "z" {
		t.Fatal("input slice must not be reordered")
	}
}
