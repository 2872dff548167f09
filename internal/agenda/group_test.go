package agenda

import (
	"testing"
	"time"

	"github.com/fu0730/ai-life-planner/internal/model"
)

func TestGroupByBlockOrderAndOmission(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: "t-night", Title: "Wind down", Priority: model.PriorityLow, Block: model.BlockNight, CreatedAt: now},
		{ID: "t-none", Title: "Someday", Priority: model.PriorityHigh, CreatedAt: now},
		{ID: "t-morning", Title: "Email", Priority: model.PriorityMedium, Block: model.BlockMorning, CreatedAt: now},
	}
	routines := []model.Routine{
		{ID: "r-morning", Title: "Stretch", Block: model.BlockMorning, Order: 0},
		{ID: "r-afternoon", Title: "Walk", Block: model.BlockAfternoon, Order: 0},
	}

	groups := GroupByBlock(tasks, routines, model.SortByPriority)

	wantBlocks := []model.TimeBlock{model.BlockMorning, model.BlockAfternoon, model.BlockNight, model.BlockNone}
	if len(groups) != len(wantBlocks) {
		t.Fatalf("expected %d groups, got %d", len(wantBlocks), len(groups))
	}
	for i, want := range wantBlocks {
		if groups[i].Block != want {
			t.Fatalf("group %d: expected block %q, got %q", i, want, groups[i].Block)
		}
	}
	// Forenoon has no items and must not appear at all.
	for _, g := range groups {
		if g.Block == model.BlockForenoon {
			t.Fatal("empty block must be omitted")
		}
		if len(g.Tasks) == 0 && len(g.Routines) == 0 {
			t.Fatalf("group %q rendered empty", g.Block)
		}
	}
}

func TestGroupByBlockRoutinesKeepManualOrder(t *testing.T) {
	routines := []model.Routine{
		{ID: "r-2", Title: "Journal", Block: model.BlockMorning, Order: 2},
		{ID: "r-0", Title: "Stretch", Block: model.BlockMorning, Order: 0},
		{ID: "r-1", Title: "Plan", Block: model.BlockMorning, Order: 1},
	}

	groups := GroupByBlock(nil, routines, model.SortByPriority)
	if len(groups) != 1 {
		t.Fatalf("expected single morning group, got %d", len(groups))
	}
	got := groups[0].Routines
	for i, wantID := range []string{"r-0", "r-1", "r-2"} {
		if got[i].ID != wantID {
			t.Fatalf("routine %d: expected %s, got %s", i, wantID, got[i].ID)
		}
	}
}

func TestGroupByBlockSortsTasksWithinBlock(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	done := now.Add(time.Hour)
	tasks := []model.Task{
		{ID: "t-low", Title: "Low", Priority: model.PriorityLow, Block: model.BlockMorning, CreatedAt: now},
		{ID: "t-done", Title: "Done", Priority: model.PriorityHigh, Block: model.BlockMorning, Completed: true, CompletedAt: &done, CreatedAt: now},
		{ID: "t-high", Title: "High", Priority: model.PriorityHigh, Block: model.BlockMorning, CreatedAt: now},
	}

	groups := GroupByBlock(tasks, nil, model.SortByPriority)
	got := groups[0].Tasks
	for i, wantID := range []string{"t-high", "t-low", "t-done"} {
		if got[i].ID != wantID {
			t.Fatalf("task %d: expected %s, got %s", i, wantID, got[i].ID)
		}
	}
}
