package agenda

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fu0730/ai-life-planner/internal/model"
	"github.com/fu0730/ai-life-planner/internal/storage"
)

// Agenda is the computed set of tasks and routines belonging to one
// calendar day. It is derived from store state on every Snapshot call and
// never cached; completion counts and AllDone are recomputed on access.
type Agenda struct {
	Date        string // YYYY-MM-DD
	Tasks       []model.Task
	Routines    []model.Routine
	Completions []model.RoutineCompletion

	done map[string]bool // routine id -> completed on Date
}

// RoutineDone reports whether the routine has a completion row for the
// agenda's day.
func (a Agenda) RoutineDone(routineID string) bool {
	return a.done[routineID]
}

func (a Agenda) CompletedItems() int {
	count := 0
	for _, t := range a.Tasks {
		if t.Completed {
			count++
		}
	}
	for _, r := range a.Routines {
		if a.done[r.ID] {
			count++
		}
	}
	return count
}

func (a Agenda) TotalItems() int {
	return len(a.Tasks) + len(a.Routines)
}

// AllDone is true when the day has at least one item and every item is
// completed. An empty agenda is never "all done".
func (a Agenda) AllDone() bool {
	total := a.TotalItems()
	return total > 0 && a.CompletedItems() == total
}

func (a Agenda) Percentage() int {
	return CompletionPercentage(a.CompletedItems(), a.TotalItems())
}

// Snapshot assembles the agenda for the given day. A task belongs when any
// of these hold, evaluated independently per task:
//
//	(a) it was completed on the day;
//	(b) it is due on the day;
//	(c) it is undated and still open — such tasks surface every day until
//	    completed or given a due date.
//
// Routines belong when their weekday set contains the day's weekday; their
// per-day completion state comes from the completion rows for the day.
func (s *Service) Snapshot(ctx context.Context, day time.Time) (Agenda, error) {
	date := model.DateOf(day)

	taskRecords, err := s.repo.ListTasks(ctx, storage.TaskListFilter{})
	if err != nil {
		return Agenda{}, fmt.Errorf("list tasks: %w", err)
	}
	tasks := make([]model.Task, 0, len(taskRecords))
	for _, rec := range taskRecords {
		task := taskModel(rec)
		if task.CompletedOn(date) || task.DueOn(date) || (task.DueDate == "" && !task.Completed) {
			tasks = append(tasks, task)
		}
	}

	routineRecords, err := s.repo.ListRoutines(ctx)
	if err != nil {
		return Agenda{}, fmt.Errorf("list routines: %w", err)
	}
	routines := make([]model.Routine, 0, len(routineRecords))
	for _, rec := range routineRecords {
		routine, err := routineModel(rec)
		if err != nil {
			return Agenda{}, err
		}
		routines = append(routines, routine)
	}
	routines = model.ActiveRoutines(routines, day)
	sort.SliceStable(routines, func(i, j int) bool {
		if routines[i].Block.Rank() != routines[j].Block.Rank() {
			return routines[i].Block.Rank() < routines[j].Block.Rank()
		}
		return routines[i].Order < routines[j].Order
	})

	completionRecords, err := s.repo.ListCompletionsForDay(ctx, date)
	if err != nil {
		return Agenda{}, fmt.Errorf("list completions: %w", err)
	}
	completions := make([]model.RoutineCompletion, 0, len(completionRecords))
	done := make(map[string]bool, len(completionRecords))
	for _, rec := range completionRecords {
		row := completionModel(rec)
		completions = append(completions, row)
		done[row.RoutineID] = true
	}

	return Agenda{
		Date:        date,
		Tasks:       tasks,
		Routines:    routines,
		Completions: completions,
		done:        done,
	}, nil
}
