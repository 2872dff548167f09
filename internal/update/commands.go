package update

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fu0730/ai-life-planner/internal/agenda"
	"github.com/fu0730/ai-life-planner/internal/commands"
	"github.com/fu0730/ai-life-planner/internal/model"
	"github.com/fu0730/ai-life-planner/internal/scheduler"
)

func loadAgendaCmd(svc *agenda.Service, day time.Time, by model.SortBy) tea.Cmd {
	return func() tea.Msg {
		snap, err := svc.Snapshot(context.Background(), day)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		return AgendaLoadedMsg{
			Agenda: snap,
			Groups: agenda.GroupByBlock(snap.Tasks, snap.Routines, by),
		}
	}
}

func loadTasksCmd(svc *agenda.Service, categoryID string, by model.SortBy) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		cats, err := svc.Categories(ctx)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		if categoryID == "" && len(cats) > 0 {
			categoryID = cats[0].ID
		}
		var tasks []model.Task
		if categoryID != "" {
			tasks, err = svc.Tasks(ctx, categoryID, by)
			if err != nil {
				return AppErrorMsg{Err: err}
			}
		}
		return TasksLoadedMsg{Categories: cats, Tasks: tasks}
	}
}

func loadCalendarCmd(svc *agenda.Service, focusMonth time.Time) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		first := time.Date(focusMonth.Year(), focusMonth.Month(), 1, 0, 0, 0, 0, focusMonth.Location())
		rows, err := svc.ReflectionsSince(ctx, first)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		due, err := svc.TasksDueInMonth(ctx, first)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		return CalendarLoadedMsg{Reflections: rows, DueTasks: due}
	}
}

func loadReviewCmd(svc *agenda.Service, day time.Time) tea.Cmd {
	return func() tea.Msg {
		summary, err := svc.Review(context.Background(), day)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		return ReviewLoadedMsg{Summary: summary}
	}
}

func loadSettingsCmd(svc *agenda.Service) tea.Cmd {
	return func() tea.Msg {
		return SettingsLoadedMsg{Settings: svc.Settings(context.Background())}
	}
}

func toggleTaskCmd(svc *agenda.Service, id string, now time.Time) tea.Cmd {
	return func() tea.Msg {
		task, err := svc.ToggleTask(context.Background(), id, now)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		completed := task != nil && task.Completed
		return ToggleAppliedMsg{Completed: completed}
	}
}

func toggleRoutineCmd(svc *agenda.Service, id string, day, now time.Time) tea.Cmd {
	return func() tea.Msg {
		done, err := svc.ToggleRoutine(context.Background(), id, day, now)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		return ToggleAppliedMsg{Completed: done}
	}
}

func addTaskCmd(svc *agenda.Service, args commands.AddArgs, now time.Time) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		categoryID, err := resolveCategory(ctx, svc, args.Category)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		task := model.Task{
			Title:      args.Title,
			CategoryID: categoryID,
			Priority:   args.Priority,
			DueDate:    args.DueDate,
			Block:      args.Block,
		}
		if _, err := svc.AddTask(ctx, task, now); err != nil {
			return AppErrorMsg{Err: err}
		}
		return SetStatusMsg{Text: fmt.Sprintf("added task: %s", args.Title)}
	}
}

func addRoutineCmd(svc *agenda.Service, args commands.RoutineArgs, now time.Time) tea.Cmd {
	return func() tea.Msg {
		routine := model.Routine{
			Title:            args.Title,
			Block:            args.Block,
			Days:             args.Days,
			EstimatedMinutes: args.EstimatedMinutes,
		}
		if _, err := svc.AddRoutine(context.Background(), routine, now); err != nil {
			return AppErrorMsg{Err: err}
		}
		return SetStatusMsg{Text: fmt.Sprintf("added routine: %s", args.Title)}
	}
}

func deleteTaskCmd(svc *agenda.Service, id string) tea.Cmd {
	return func() tea.Msg {
		if err := svc.DeleteTask(context.Background(), id); err != nil {
			return AppErrorMsg{Err: err}
		}
		return SetStatusMsg{Text: "task deleted"}
	}
}

func saveReflectionCmd(svc *agenda.Service, day time.Time, completed, total int, note string, now time.Time) tea.Cmd {
	return func() tea.Msg {
		if err := svc.SaveReflection(context.Background(), day, completed, total, note, now); err != nil {
			return AppErrorMsg{Err: err}
		}
		return ReflectionSavedMsg{}
	}
}

func updateSettingsCmd(svc *agenda.Service, settings model.Settings) tea.Cmd {
	return func() tea.Msg {
		if err := svc.UpdateSettings(context.Background(), settings); err != nil {
			return AppErrorMsg{Err: err}
		}
		return SettingsLoadedMsg{Settings: settings}
	}
}

func waitForClockCmd(ch <-chan scheduler.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return ClockMsg{Event: ev}
	}
}

// resolveCategory maps a quick-add category name to its id, falling back to
// the first category when no name was given.
func resolveCategory(ctx context.Context, svc *agenda.Service, name string) (string, error) {
	cats, err := svc.Categories(ctx)
	if err != nil {
		return "", err
	}
	if len(cats) == 0 {
		return "", fmt.Errorf("no categories configured")
	}
	if name == "" {
		return cats[0].ID, nil
	}
	for _, cat := range cats {
		if strings.EqualFold(cat.Name, name) {
			return cat.ID, nil
		}
	}
	return "", fmt.Errorf("unknown category: %s", name)
}
