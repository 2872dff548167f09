// Package agenda is the daily aggregation core: it decides what belongs to
// a given calendar day, how it is grouped for display, and how completion
// progress is computed. Every operation takes the reference time as an
// explicit parameter; nothing in this package reads the system clock.
package agenda

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fu0730/ai-life-planner/internal/model"
	"github.com/fu0730/ai-life-planner/internal/storage"
)

// CategoryInUseError rejects a category deletion while tasks still
// reference it. Tasks carries the blocking count for display.
type CategoryInUseError struct {
	Tasks int
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("agenda: category still referenced by %d tasks", e.Tasks)
}

type Service struct {
	repo storage.Repository
}

func NewService(repo storage.Repository) *Service {
	return &Service{repo: repo}
}

// AddTask stores a new task. ID, creation time and completion state are
// assigned here; the caller provides the rest.
func (s *Service) AddTask(ctx context.Context, in model.Task, now time.Time) (model.Task, error) {
	in.ID = uuid.NewString()
	in.Completed = false
	in.CompletedAt = nil
	in.CreatedAt = now
	if err := in.Validate(); err != nil {
		return model.Task{}, err
	}
	if err := s.repo.CreateTask(ctx, taskRecord(in)); err != nil {
		return model.Task{}, fmt.Errorf("create task: %w", err)
	}
	return in, nil
}

// UpdateTask rewrites an existing task's editable fields. Completion state
// is owned by ToggleTask and left untouched here.
func (s *Service) UpdateTask(ctx context.Context, in model.Task) error {
	current, err := s.repo.GetTask(ctx, in.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("load task: %w", err)
	}
	in.Completed = current.Completed
	in.CompletedAt = current.CompletedAt
	in.CreatedAt = current.CreatedAt
	if err := in.Validate(); err != nil {
		return err
	}
	if err := s.repo.UpdateTask(ctx, taskRecord(in)); err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

func (s *Service) DeleteTask(ctx context.Context, id string) error {
	if err := s.repo.DeleteTask(ctx, id); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// ToggleTask flips a task's completion. Completed and CompletedAt change
// together in one store write: completing stamps now, reopening clears the
// stamp. A vanished task is a silent no-op and returns nil.
func (s *Service) ToggleTask(ctx context.Context, id string, now time.Time) (*model.Task, error) {
	record, err := s.repo.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load task: %w", err)
	}
	task := taskModel(record)
	if task.Completed {
		task.Completed = false
		task.CompletedAt = nil
	} else {
		task.Completed = true
		stamp := now
		task.CompletedAt = &stamp
	}
	if err := s.repo.UpdateTask(ctx, taskRecord(task)); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return &task, nil
}

// AddRoutine stores a new routine, appending it to its block: the display
// order is the count of routines already in that block.
func (s *Service) AddRoutine(ctx context.Context, in model.Routine, now time.Time) (model.Routine, error) {
	in.ID = uuid.NewString()
	in.CreatedAt = now
	in.Days = model.NormalizeDays(in.Days)
	if err := in.Validate(); err != nil {
		return model.Routine{}, err
	}
	order, err := s.repo.CountRoutinesInBlock(ctx, string(in.Block))
	if err != nil {
		return model.Routine{}, fmt.Errorf("count routines in block: %w", err)
	}
	in.Order = order
	if err := s.repo.CreateRoutine(ctx, routineRecord(in)); err != nil {
		return model.Routine{}, fmt.Errorf("create routine: %w", err)
	}
	return in, nil
}

func (s *Service) UpdateRoutine(ctx context.Context, in model.Routine) error {
	in.Days = model.NormalizeDays(in.Days)
	if err := in.Validate(); err != nil {
		return err
	}
	if err := s.repo.UpdateRoutine(ctx, routineRecord(in)); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("update routine: %w", err)
	}
	return nil
}

// DeleteRoutine removes a routine and every completion row that references
// it, across all dates, so no orphaned rows survive.
func (s *Service) DeleteRoutine(ctx context.Context, id string) error {
	if err := s.repo.DeleteCompletionsForRoutine(ctx, id); err != nil {
		return fmt.Errorf("cascade completions: %w", err)
	}
	if err := s.repo.DeleteRoutine(ctx, id); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("delete routine: %w", err)
	}
	return nil
}

// ToggleRoutine toggles a routine's completion for one calendar day by row
// existence: absent inserts a completion stamped now, present deletes it.
// Returns whether the routine ends up completed for the day.
func (s *Service) ToggleRoutine(ctx context.Context, routineID string, day time.Time, now time.Time) (bool, error) {
	if _, err := s.repo.GetRoutine(ctx, routineID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("load routine: %w", err)
	}
	date := model.DateOf(day)
	existing, err := s.repo.GetCompletionForDay(ctx, routineID, date)
	if err == nil {
		if err := s.repo.DeleteCompletion(ctx, existing.ID); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return false, fmt.Errorf("delete completion: %w", err)
		}
		return false, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return false, fmt.Errorf("load completion: %w", err)
	}
	row := model.RoutineCompletion{
		ID:          uuid.NewString(),
		RoutineID:   routineID,
		Date:        date,
		CompletedAt: now,
	}
	if err := row.Validate(); err != nil {
		return false, err
	}
	if err := s.repo.CreateCompletion(ctx, completionRecord(row)); err != nil {
		return false, fmt.Errorf("create completion: %w", err)
	}
	return true, nil
}

func (s *Service) AddCategory(ctx context.Context, in model.Category) (model.Category, error) {
	in.ID = uuid.NewString()
	if err := in.Validate(); err != nil {
		return model.Category{}, err
	}
	if err := s.repo.CreateCategory(ctx, categoryRecord(in)); err != nil {
		return model.Category{}, fmt.Errorf("create category: %w", err)
	}
	return in, nil
}

// DeleteCategory refuses while any task still references the category; the
// error reports how many block the deletion.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	count, err := s.repo.CountTasksInCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("count referencing tasks: %w", err)
	}
	if count > 0 {
		return &CategoryInUseError{Tasks: count}
	}
	if err := s.repo.DeleteCategory(ctx, id); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (s *Service) Categories(ctx context.Context) ([]model.Category, error) {
	records, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make([]model.Category, 0, len(records))
	for _, rec := range records {
		out = append(out, categoryModel(rec))
	}
	return out, nil
}

// Tasks lists every task under the given sort policy, optionally filtered
// to one category. Empty categoryID means all.
func (s *Service) Tasks(ctx context.Context, categoryID string, by model.SortBy) ([]model.Task, error) {
	records, err := s.repo.ListTasks(ctx, storage.TaskListFilter{CategoryID: categoryID})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	tasks := make([]model.Task, 0, len(records))
	for _, rec := range records {
		tasks = append(tasks, taskModel(rec))
	}
	return model.SortTasks(tasks, by), nil
}

// TasksDueInMonth lists tasks whose due date falls inside the calendar
// month containing day, for the calendar screen.
func (s *Service) TasksDueInMonth(ctx context.Context, day time.Time) ([]model.Task, error) {
	records, err := s.repo.ListTasks(ctx, storage.TaskListFilter{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	prefix := day.Format("2006-01")
	out := make([]model.Task, 0)
	for _, rec := range records {
		task := taskModel(rec)
		if strings.HasPrefix(task.DueDate, prefix) {
			out = append(out, task)
		}
	}
	return out, nil
}

var defaultCategories = []model.Category{
	{Name: "School", Color: "#3B82F6", Order: 0, Type: model.CategoryTask},
	{Name: "Work", Color: "#8B5CF6", Order: 1, Type: model.CategoryTask},
	{Name: "Shopping", Color: "#10B981", Order: 2, Type: model.CategoryTask},
	{Name: "Daily", Color: "#F59E0B", Order: 3, Type: model.CategoryTask},
	{Name: "Packing check", Color: "#EC4899", Order: 4, Type: model.CategoryChecklist},
	{Name: "Someday", Color: "#06B6D4", Order: 5, Type: model.CategoryTask},
}

// SeedCategories installs the default category set on first run. Any
// existing category means the store was already seeded.
func (s *Service) SeedCategories(ctx context.Context) error {
	count, err := s.repo.CountCategories(ctx)
	if err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, cat := range defaultCategories {
		cat.ID = uuid.NewString()
		if err := s.repo.CreateCategory(ctx, categoryRecord(cat)); err != nil {
			return fmt.Errorf("seed category %q: %w", cat.Name, err)
		}
	}
	return nil
}

// Settings returns the singleton settings row, creating it with defaults on
// first read. When the store cannot be read the in-memory defaults are
// returned instead (empty ID marks them unpersisted) so the app degrades
// rather than fails.
func (s *Service) Settings(ctx context.Context) model.Settings {
	record, err := s.repo.GetSettings(ctx)
	if err == nil {
		return settingsModel(record)
	}
	if errors.Is(err, storage.ErrNotFound) {
		fresh := model.DefaultSettings()
		fresh.ID = uuid.NewString()
		if err := s.repo.CreateSettings(ctx, settingsRecord(fresh)); err != nil {
			return model.DefaultSettings()
		}
		return fresh
	}
	return model.DefaultSettings()
}

// UpdateSettings persists changed settings. The unpersisted fallback (empty
// ID) is accepted and dropped silently, mirroring a store that was never
// readable.
func (s *Service) UpdateSettings(ctx context.Context, in model.Settings) error {
	if in.ID == "" {
		return nil
	}
	if err := in.Validate(); err != nil {
		return err
	}
	if err := s.repo.UpdateSettings(ctx, settingsRecord(in)); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}

func categoryRecord(in model.Category) storage.Category {
	return storage.Category{
		ID:           in.ID,
		Name:         in.Name,
		Color:        in.Color,
		DisplayOrder: in.Order,
		Type:         string(in.Type),
	}
}

func categoryModel(in storage.Category) model.Category {
	return model.Category{
		ID:    in.ID,
		Name:  in.Name,
		Color: in.Color,
		Order: in.DisplayOrder,
		Type:  model.CategoryType(in.Type),
	}
}

func taskRecord(in model.Task) storage.Task {
	return storage.Task{
		ID:          in.ID,
		Title:       in.Title,
		Memo:        in.Memo,
		CategoryID:  in.CategoryID,
		Completed:   in.Completed,
		Priority:    string(in.Priority),
		DueDate:     in.DueDate,
		Block:       string(in.Block),
		CreatedAt:   in.CreatedAt,
		CompletedAt: in.CompletedAt,
	}
}

func taskModel(in storage.Task) model.Task {
	return model.Task{
		ID:          in.ID,
		Title:       in.Title,
		Memo:        in.Memo,
		CategoryID:  in.CategoryID,
		Completed:   in.Completed,
		Priority:    model.Priority(in.Priority),
		DueDate:     in.DueDate,
		Block:       model.TimeBlock(in.Block),
		CreatedAt:   in.CreatedAt,
		CompletedAt: in.CompletedAt,
	}
}

func routineRecord(in model.Routine) storage.Routine {
	return storage.Routine{
		ID:               in.ID,
		Title:            in.Title,
		Block:            string(in.Block),
		EstimatedMinutes: in.EstimatedMinutes,
		Days:             daysRecord(in.Days),
		DisplayOrder:     in.Order,
		CreatedAt:        in.CreatedAt,
	}
}

func routineModel(in storage.Routine) (model.Routine, error) {
	days, err := daysModel(in.Days)
	if err != nil {
		return model.Routine{}, fmt.Errorf("routine %s: %w", in.ID, err)
	}
	return model.Routine{
		ID:               in.ID,
		Title:            in.Title,
		Block:            model.TimeBlock(in.Block),
		EstimatedMinutes: in.EstimatedMinutes,
		Days:             days,
		Order:            in.DisplayOrder,
		CreatedAt:        in.CreatedAt,
	}, nil
}

func completionRecord(in model.RoutineCompletion) storage.RoutineCompletion {
	return storage.RoutineCompletion{
		ID:          in.ID,
		RoutineID:   in.RoutineID,
		Date:        in.Date,
		CompletedAt: in.CompletedAt,
	}
}

func completionModel(in storage.RoutineCompletion) model.RoutineCompletion {
	return model.RoutineCompletion{
		ID:          in.ID,
		RoutineID:   in.RoutineID,
		Date:        in.Date,
		CompletedAt: in.CompletedAt,
	}
}

func settingsRecord(in model.Settings) storage.Settings {
	return storage.Settings{
		ID:           in.ID,
		Theme:        string(in.Theme),
		SoundEnabled: in.SoundEnabled,
		SortBy:       string(in.SortBy),
	}
}

func settingsModel(in storage.Settings) model.Settings {
	return model.Settings{
		ID:           in.ID,
		Theme:        model.Theme(in.Theme),
		SoundEnabled: in.SoundEnabled,
		SortBy:       model.SortBy(in.SortBy),
	}
}

func daysRecord(days []time.Weekday) string {
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, strconv.Itoa(int(d)))
	}
	return strings.Join(parts, ",")
}

func daysModel(raw string) ([]time.Weekday, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New("agenda: empty weekday set")
	}
	parts := strings.Split(raw, ",")
	out := make([]time.Weekday, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 6 {
			return nil, fmt.Errorf("agenda: invalid weekday %q", p)
		}
		out = append(out, time.Weekday(n))
	}
	return out, nil
}
